package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
)

// ErrModelUnavailable is returned when a model artifact cannot be
// loaded. Callers are expected to degrade to keyword-only routing
// rather than fail the conversation turn.
var ErrModelUnavailable = errors.New("intent model unavailable")

// Model is a trained TF-IDF + multinomial naive Bayes classifier.
// It is immutable after training; prediction never mutates it.
type Model struct {
	Classes        []Label        `json:"classes"`
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	ClassLogPrior  []float64      `json:"classLogPrior"`
	FeatureLogProb [][]float64    `json:"featureLogProb"`
	Meta           Metadata       `json:"meta"`
}

// Metadata describes how the model was produced, for operators and
// regression tests.
type Metadata struct {
	NumPatterns     int     `json:"numPatterns"`
	NumClasses      int     `json:"numClasses"`
	Alpha           float64 `json:"alpha"`
	MaxFeatures     int     `json:"maxFeatures"`
	Seed            int64   `json:"seed"`
	HoldoutAccuracy float64 `json:"holdoutAccuracy,omitempty"`
}

// Load reads a model artifact written by Save.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: corrupt artifact: %v", ErrModelUnavailable, err)
	}
	if len(m.Classes) == 0 || len(m.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: artifact is empty", ErrModelUnavailable)
	}
	if err := m.checkDimensions(); err != nil {
		return nil, fmt.Errorf("%w: corrupt artifact: %v", ErrModelUnavailable, err)
	}
	return &m, nil
}

// checkDimensions verifies the artifact's arrays agree with each other.
// A truncated or hand-edited file can parse as valid JSON while its
// weight matrices no longer match the vocabulary, which would surface
// later as an index panic during inference.
func (m *Model) checkDimensions() error {
	if len(m.IDF) != len(m.Vocabulary) {
		return fmt.Errorf("idf length %d does not match vocabulary size %d",
			len(m.IDF), len(m.Vocabulary))
	}
	if len(m.ClassLogPrior) != len(m.Classes) {
		return fmt.Errorf("class prior length %d does not match class count %d",
			len(m.ClassLogPrior), len(m.Classes))
	}
	if len(m.FeatureLogProb) != len(m.Classes) {
		return fmt.Errorf("feature matrix has %d rows, want %d",
			len(m.FeatureLogProb), len(m.Classes))
	}
	for c, row := range m.FeatureLogProb {
		if len(row) != len(m.Vocabulary) {
			return fmt.Errorf("feature row %d length %d does not match vocabulary size %d",
				c, len(row), len(m.Vocabulary))
		}
	}
	for term, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.IDF) {
			return fmt.Errorf("vocabulary term %q has out-of-range index %d", term, idx)
		}
	}
	return nil
}

// Save writes the model artifact as indented JSON.
func (m *Model) Save(path string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// vectorize turns text into the sparse l2-normalized TF-IDF vector the
// model was trained on. Terms outside the vocabulary are ignored.
func (m *Model) vectorize(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range terms(tokenize(text)) {
		if idx, ok := m.Vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return counts
	}

	var norm float64
	for idx, tf := range counts {
		w := (1 + math.Log(tf)) * m.IDF[idx]
		counts[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range counts {
		counts[idx] /= norm
	}
	return counts
}

// Predict returns the raw winning class and its posterior probability.
// It applies no confidence threshold; use Classify for thresholded
// predictions. Empty input yields unknown with zero confidence; text
// that is entirely out of vocabulary falls back to the class priors,
// which leaves the posterior spread thin enough that Classify will
// report it as out_of_scope.
func (m *Model) Predict(text string) Prediction {
	if len(tokenize(text)) == 0 {
		return Prediction{Label: LabelUnknown, Confidence: 0}
	}
	vec := m.vectorize(text)

	joint := make([]float64, len(m.Classes))
	for c := range m.Classes {
		score := m.ClassLogPrior[c]
		for idx, w := range vec {
			score += w * m.FeatureLogProb[c][idx]
		}
		joint[c] = score
	}

	// Softmax over joint log-likelihoods gives the posterior.
	max := joint[0]
	for _, s := range joint[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	probs := make([]float64, len(joint))
	for c, s := range joint {
		probs[c] = math.Exp(s - max)
		sum += probs[c]
	}

	best := 0
	for c := range probs {
		probs[c] /= sum
		if probs[c] > probs[best] {
			best = c
		}
	}

	return Prediction{Label: m.Classes[best], Confidence: probs[best]}
}

// Classify predicts and then applies the confidence threshold: a
// winning class below the threshold is reported as out_of_scope while
// keeping the raw confidence, so callers can still log it.
func (m *Model) Classify(text string, threshold float64) Prediction {
	p := m.Predict(text)
	if p.Label == LabelUnknown {
		return p
	}
	if p.Confidence < threshold {
		p.Label = LabelOutOfScope
	}
	return p
}

// Labels returns the trained class list in sorted order.
func (m *Model) Labels() []Label {
	out := make([]Label, len(m.Classes))
	copy(out, m.Classes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
