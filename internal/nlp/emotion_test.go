package nlp

import (
	"reflect"
	"testing"
)

func TestPrimaryEmotion(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantEmotion Emotion
	}{
		{"plain sadness", "I feel sad today", EmotionSad},
		{"plain anxiety", "I am so worried about tomorrow", EmotionAnxious},
		{"anger", "this makes me furious", EmotionAngry},
		{"happiness", "I am happy and excited", EmotionHappy},
		{"neutral words", "everything is okay I guess", EmotionNeutral},
		{"no keywords at all", "the train leaves at seven", EmotionNeutral},
		{"empty text", "", EmotionNeutral},
		{"repeated keyword dominates", "sad sad sad but a little glad", EmotionSad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotion, confidence := PrimaryEmotion(tt.text)
			if emotion != tt.wantEmotion {
				t.Errorf("PrimaryEmotion() = %s, want %s", emotion, tt.wantEmotion)
			}
			if confidence <= 0 || confidence > 1 {
				t.Errorf("PrimaryEmotion() confidence = %f, want in (0,1]", confidence)
			}
		})
	}
}

func TestPrimaryEmotionDeterministic(t *testing.T) {
	text := "I feel very anxious and quite sad about everything"

	first, firstConf := PrimaryEmotion(text)
	for i := 0; i < 10; i++ {
		emotion, confidence := PrimaryEmotion(text)
		if emotion != first || confidence != firstConf {
			t.Fatalf("PrimaryEmotion() unstable: got (%s, %f) then (%s, %f)",
				first, firstConf, emotion, confidence)
		}
	}
}

func TestIntensityModifiersBoostConfidence(t *testing.T) {
	plain := DetectEmotions("I am sad about it and fine otherwise")
	boosted := DetectEmotions("I am extremely sad about it and fine otherwise")

	if boosted[EmotionSad] <= plain[EmotionSad] {
		t.Errorf("modifier should boost sad share: plain %f, boosted %f",
			plain[EmotionSad], boosted[EmotionSad])
	}

	// The winning label must not change, only its weight.
	plainPrimary, _ := PrimaryEmotion("I am sad about it")
	boostedPrimary, _ := PrimaryEmotion("I am extremely sad about it")
	if plainPrimary != boostedPrimary {
		t.Errorf("modifier changed label: %s vs %s", plainPrimary, boostedPrimary)
	}
}

func TestDetectEmotionsWordBoundaries(t *testing.T) {
	// "madrid" must not match "mad".
	scores := DetectEmotions("we flew to madrid last summer")
	if _, ok := scores[EmotionAngry]; ok {
		t.Errorf("DetectEmotions() matched substring inside a longer word: %v", scores)
	}
}

func TestDetectRiskKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "suicidal phrase",
			text: "sometimes I think about suicide",
			want: []string{KeywordSuicidalIdeation},
		},
		{
			name: "self harm phrase",
			text: "I want to hurt myself",
			want: []string{KeywordSelfHarm},
		},
		{
			name: "both categories",
			text: "I want to end it all and hurt myself",
			want: []string{KeywordSuicidalIdeation, KeywordSelfHarm},
		},
		{
			name: "case insensitive",
			text: "I WANT TO KILL MYSELF",
			want: []string{KeywordSuicidalIdeation},
		},
		{
			name: "no risk content",
			text: "I had a rough day at work",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRiskKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectRiskKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectRiskLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want RiskLevel
	}{
		{"crisis keyword forces critical", "I want to kill myself", RiskCritical},
		{"crisis wins over happy words", "I am happy but I want to end it all", RiskCritical},
		{"sad maps to medium", "I have been feeling down and hopeless", RiskMedium},
		{"anxious maps to medium", "I am nervous and stressed", RiskMedium},
		{"angry maps to none", "I am so annoyed at my neighbor", RiskNone},
		{"happy maps to none", "today was a good day", RiskNone},
		{"no keywords maps to none", "the weather is changing", RiskNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := Detect(tt.text)
			if signals.RiskLevel != tt.want {
				t.Errorf("Detect() risk = %s, want %s", signals.RiskLevel, tt.want)
			}
		})
	}
}

func TestDetectFoldsAllSignals(t *testing.T) {
	signals := Detect("I feel very sad and I want to hurt myself")

	if signals.RiskLevel != RiskCritical {
		t.Errorf("Detect() risk = %s, want %s", signals.RiskLevel, RiskCritical)
	}
	if signals.PrimaryEmotion != EmotionSad {
		t.Errorf("Detect() primary = %s, want %s", signals.PrimaryEmotion, EmotionSad)
	}
	if len(signals.MatchedKeywords) == 0 {
		t.Error("Detect() expected matched risk keywords")
	}
}

func TestRiskLevelExceeds(t *testing.T) {
	if !RiskCritical.Exceeds(RiskHigh) {
		t.Error("critical should exceed high")
	}
	if !RiskMedium.Exceeds(RiskMedium) {
		t.Error("a level should exceed itself")
	}
	if RiskNone.Exceeds(RiskMedium) {
		t.Error("none should not exceed medium")
	}
}
