package intent

import (
	"strings"
	"unicode"
)

// Stopwords removed before vectorization. Words that carry meaning in a
// mental-health context (feel, help, need, want, ...) are deliberately
// kept even though generic stopword lists drop them.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "your": {}, "all": {}, "any": {}, "our": {}, "out": {},
	"was": {}, "were": {}, "been": {}, "being": {}, "have": {}, "has": {},
	"had": {}, "does": {}, "did": {}, "doing": {}, "would": {}, "could": {},
	"with": {}, "about": {}, "into": {}, "through": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "there": {}, "here": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "how": {}, "where": {},
	"when": {}, "why": {}, "some": {}, "such": {}, "only": {}, "own": {},
	"same": {}, "than": {}, "too": {}, "very": {}, "just": {}, "now": {},
	"then": {}, "once": {}, "from": {}, "off": {}, "over": {}, "under": {},
	"again": {}, "further": {}, "more": {}, "most": {}, "other": {},
	"each": {}, "few": {}, "both": {}, "they": {}, "them": {}, "their": {},
	"she": {}, "her": {}, "him": {}, "his": {}, "its": {}, "it's": {},
	"i'm": {}, "i've": {},
}

// normalizeToken collapses trivial inflections so "screenings" and
// "screening" land on the same feature. This is a crude stand-in for
// lemmatization and intentionally conservative.
func normalizeToken(tok string) string {
	switch {
	case strings.HasSuffix(tok, "ies") && len(tok) > 4:
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "sses"):
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") && len(tok) > 3:
		return tok[:len(tok)-1]
	default:
		return tok
	}
}

// tokenize lowercases, strips everything but letters, digits and spaces,
// splits on whitespace, then drops stopwords and tokens shorter than
// three characters. The same function runs at training and inference
// time so features always line up.
func tokenize(text string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, normalizeToken(tok))
	}
	return tokens
}

// terms expands tokens into the unigram and bigram feature terms used
// by the vectorizer. Bigrams are joined with a single space.
func terms(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
