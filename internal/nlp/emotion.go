// Package nlp holds the keyword-based signal extraction used on chat
// messages. It is deliberately simple: fixed phrase tables, no learned
// state, identical output for identical input.
package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// Emotion is the dominant mood label detected in a message.
type Emotion string

const (
	EmotionSad      Emotion = "sad"
	EmotionAnxious  Emotion = "anxious"
	EmotionAngry    Emotion = "angry"
	EmotionHappy    Emotion = "happy"
	EmotionNeutral  Emotion = "neutral"
	EmotionSuicidal Emotion = "suicidal"
)

// RiskLevel is the urgency signal derived from free text.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Exceeds reports whether r is at least as urgent as other.
func (r RiskLevel) Exceeds(other RiskLevel) bool {
	return riskRank[r] >= riskRank[other]
}

var riskRank = map[RiskLevel]int{
	RiskNone:     0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// Risk keyword categories reported in Signals.MatchedKeywords.
const (
	KeywordSuicidalIdeation = "suicidal_ideation"
	KeywordSelfHarm         = "self_harm"
)

var emotionKeywords = map[Emotion][]string{
	EmotionSad:      {"sad", "depressed", "down", "unhappy", "miserable", "hopeless", "empty", "worthless"},
	EmotionAnxious:  {"anxious", "worried", "nervous", "stressed", "panic", "fear", "afraid", "tense"},
	EmotionAngry:    {"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage"},
	EmotionHappy:    {"happy", "joy", "excited", "pleased", "content", "glad", "cheerful", "good"},
	EmotionNeutral:  {"okay", "fine", "alright", "normal", "average"},
	EmotionSuicidal: {"suicide", "kill myself", "end it all", "not worth living", "better off dead"},
}

// Modifiers scale the weight of the keyword they directly precede.
// They never change which emotion is selected, only its confidence.
var intensityModifiers = []struct {
	phrase string
	factor float64
}{
	{"extremely", 2.0},
	{"very", 1.5},
	{"really", 1.3},
	{"quite", 1.2},
	{"somewhat", 0.9},
	{"a bit", 0.8},
	{"slightly", 0.7},
}

// Crisis phrases are matched as plain substrings so that inflections and
// missing word boundaries still hit. False positives are acceptable here;
// false negatives are not.
var suicidalPhrases = []string{
	"suicide", "kill myself", "end it all", "not worth living",
	"better off dead", "want to die", "no point",
}

var selfHarmPhrases = []string{
	"hurt myself", "cut myself", "self harm", "harm myself",
}

// Signals is the full extraction result for one message.
type Signals struct {
	Emotions        map[Emotion]float64
	PrimaryEmotion  Emotion
	Confidence      float64
	RiskLevel       RiskLevel
	MatchedKeywords []string
}

var wordPatterns = buildWordPatterns()

type keywordPattern struct {
	keyword  string
	bare     *regexp.Regexp
	modified []modifiedPattern
}

type modifiedPattern struct {
	re     *regexp.Regexp
	factor float64
}

func buildWordPatterns() map[string]keywordPattern {
	patterns := make(map[string]keywordPattern)
	for _, keywords := range emotionKeywords {
		for _, kw := range keywords {
			if _, ok := patterns[kw]; ok {
				continue
			}
			p := keywordPattern{
				keyword: kw,
				bare:    regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			}
			for _, m := range intensityModifiers {
				p.modified = append(p.modified, modifiedPattern{
					re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(m.phrase) + `\s+` + regexp.QuoteMeta(kw) + `\b`),
					factor: m.factor,
				})
			}
			patterns[kw] = p
		}
	}
	return patterns
}

// DetectEmotions scores each emotion present in the text and normalizes
// the scores into a distribution. An empty result means no keyword hit.
func DetectEmotions(text string) map[Emotion]float64 {
	if strings.TrimSpace(text) == "" {
		return map[Emotion]float64{}
	}

	lower := strings.ToLower(text)
	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}

	scores := make(map[Emotion]float64)
	for emotion, keywords := range emotionKeywords {
		var score float64
		for _, kw := range keywords {
			p := wordPatterns[kw]
			matches := float64(len(p.bare.FindAllStringIndex(lower, -1)))
			if matches == 0 {
				continue
			}
			factor := 1.0
			for _, m := range p.modified {
				if m.re.MatchString(lower) {
					factor = m.factor
					break
				}
			}
			score += matches * factor
		}

		normalized := score / float64(words)
		if normalized > 1 {
			normalized = 1
		}
		if normalized > 0 {
			scores[emotion] = normalized
		}
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for e, s := range scores {
			scores[e] = s / total
		}
	}

	return scores
}

// PrimaryEmotion returns the most likely emotion and its share of the
// distribution. Ties break by label so the result is stable across calls.
func PrimaryEmotion(text string) (Emotion, float64) {
	scores := DetectEmotions(text)
	if len(scores) == 0 {
		return EmotionNeutral, 1.0
	}

	labels := make([]Emotion, 0, len(scores))
	for e := range scores {
		labels = append(labels, e)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	best := labels[0]
	for _, e := range labels[1:] {
		if scores[e] > scores[best] {
			best = e
		}
	}
	return best, scores[best]
}

// DetectRiskKeywords reports which crisis keyword categories the text
// hits. At most one entry per category.
func DetectRiskKeywords(text string) []string {
	lower := strings.ToLower(text)

	var matched []string
	for _, phrase := range suicidalPhrases {
		if strings.Contains(lower, phrase) {
			matched = append(matched, KeywordSuicidalIdeation)
			break
		}
	}
	for _, phrase := range selfHarmPhrases {
		if strings.Contains(lower, phrase) {
			matched = append(matched, KeywordSelfHarm)
			break
		}
	}
	return matched
}

// Detect runs the full extraction pipeline on one message. A crisis
// keyword hit forces RiskCritical no matter what the emotion tables say;
// otherwise risk derives from the dominant emotion.
func Detect(text string) Signals {
	emotions := DetectEmotions(text)
	primary, confidence := PrimaryEmotion(text)
	matched := DetectRiskKeywords(text)

	return Signals{
		Emotions:        emotions,
		PrimaryEmotion:  primary,
		Confidence:      confidence,
		RiskLevel:       assessRisk(primary, emotions, matched),
		MatchedKeywords: matched,
	}
}

// assessRisk maps extraction output to a risk level. Crisis keywords
// always win; after that the dominant emotion decides. Distressed moods
// map to medium, everything else to none.
func assessRisk(primary Emotion, emotions map[Emotion]float64, matchedKeywords []string) RiskLevel {
	if len(matchedKeywords) > 0 {
		return RiskCritical
	}
	if emotions[EmotionSuicidal] > 0 {
		return RiskCritical
	}
	if primary == EmotionSad || primary == EmotionAnxious {
		return RiskMedium
	}
	return RiskNone
}
