package intent

import (
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

func trainedModel(t *testing.T) *Model {
	t.Helper()
	ds, err := DefaultDataset()
	if err != nil {
		t.Fatalf("DefaultDataset() error = %v", err)
	}
	model, err := Train(ds, TrainOptions{Seed: 42})
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return model
}

func TestTrainOnDefaultDataset(t *testing.T) {
	model := trainedModel(t)

	if model.Meta.NumClasses != 9 {
		t.Errorf("trained classes = %d, want 9", model.Meta.NumClasses)
	}
	if len(model.Vocabulary) == 0 {
		t.Fatal("trained vocabulary is empty")
	}
	if len(model.IDF) != len(model.Vocabulary) {
		t.Errorf("idf length %d does not match vocabulary size %d",
			len(model.IDF), len(model.Vocabulary))
	}
	for c, probs := range model.FeatureLogProb {
		if len(probs) != len(model.Vocabulary) {
			t.Errorf("class %d feature vector length %d, want %d",
				c, len(probs), len(model.Vocabulary))
		}
	}
}

func TestClassifyCanonicalPhrases(t *testing.T) {
	model := trainedModel(t)

	tests := []struct {
		text string
		want Label
	}{
		{"hello how are you", LabelGreeting},
		{"I want to take a screening test", LabelFindScreening},
		{"I need help finding self-care exercises", LabelFindSelfCare},
		{"show me my dashboard", LabelViewDashboard},
		{"I want to talk to someone", LabelNeedHelp},
		{"I want to end my life", LabelCrisis},
		{"see you later", LabelGoodbye},
		{"thank you so much", LabelThanks},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := model.Classify(tt.text, DefaultConfidenceThreshold)
			if p.Label != tt.want {
				t.Errorf("Classify(%q) = %s (%.2f), want %s", tt.text, p.Label, p.Confidence, tt.want)
			}
		})
	}
}

func TestClassifyGibberishFallsBackToOutOfScope(t *testing.T) {
	model := trainedModel(t)

	p := model.Classify("asdkjf qwoe", DefaultConfidenceThreshold)
	if p.Label != LabelOutOfScope {
		t.Errorf("Classify(gibberish) = %s, want %s", p.Label, LabelOutOfScope)
	}
	if p.Confidence >= DefaultConfidenceThreshold {
		t.Errorf("Classify(gibberish) confidence = %.2f, want below %.2f",
			p.Confidence, DefaultConfidenceThreshold)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	model := trainedModel(t)

	for _, text := range []string{"", "   ", "ab"} {
		p := model.Classify(text, DefaultConfidenceThreshold)
		if p.Label != LabelUnknown {
			t.Errorf("Classify(%q) = %s, want %s", text, p.Label, LabelUnknown)
		}
		if p.Confidence != 0 {
			t.Errorf("Classify(%q) confidence = %f, want 0", text, p.Confidence)
		}
	}
}

func TestTrainDeterministicForSeed(t *testing.T) {
	ds, err := DefaultDataset()
	if err != nil {
		t.Fatalf("DefaultDataset() error = %v", err)
	}

	a, err := Train(ds, TrainOptions{Seed: 42, Holdout: 0.2})
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	b, err := Train(ds, TrainOptions{Seed: 42, Holdout: 0.2})
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	if !reflect.DeepEqual(a.Classes, b.Classes) {
		t.Errorf("classes differ across runs: %v vs %v", a.Classes, b.Classes)
	}
	if !reflect.DeepEqual(a.Vocabulary, b.Vocabulary) {
		t.Error("vocabulary differs across identical training runs")
	}
	if a.Meta.HoldoutAccuracy != b.Meta.HoldoutAccuracy {
		t.Errorf("holdout accuracy differs: %f vs %f",
			a.Meta.HoldoutAccuracy, b.Meta.HoldoutAccuracy)
	}

	// Same predictions for the same phrases.
	phrases := []string{"hello", "show me my dashboard", "thanks a lot"}
	for _, phrase := range phrases {
		pa, pb := a.Predict(phrase), b.Predict(phrase)
		if pa.Label != pb.Label {
			t.Errorf("Predict(%q) unstable: %s vs %s", phrase, pa.Label, pb.Label)
		}
		if math.Abs(pa.Confidence-pb.Confidence) > 1e-9 {
			t.Errorf("Predict(%q) confidence unstable: %f vs %f",
				phrase, pa.Confidence, pb.Confidence)
		}
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	model := trainedModel(t)
	path := filepath.Join(t.TempDir(), "intent_model.json")

	if err := model.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, phrase := range []string{"hello", "I want to take a screening test", "asdkjf qwoe"} {
		want := model.Classify(phrase, DefaultConfidenceThreshold)
		got := loaded.Classify(phrase, DefaultConfidenceThreshold)
		if got.Label != want.Label {
			t.Errorf("loaded model Classify(%q) = %s, want %s", phrase, got.Label, want.Label)
		}
	}
}

func TestLoadRejectsMismatchedArtifact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Model)
	}{
		{"idf shorter than vocabulary", func(m *Model) { m.IDF = m.IDF[:0] }},
		{"missing class priors", func(m *Model) { m.ClassLogPrior = nil }},
		{"feature matrix missing a row", func(m *Model) { m.FeatureLogProb = m.FeatureLogProb[:1] }},
		{"feature row truncated", func(m *Model) { m.FeatureLogProb[0] = m.FeatureLogProb[0][:0] }},
		{"vocabulary index out of range", func(m *Model) { m.Vocabulary["__bogus__"] = len(m.IDF) + 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := trainedModel(t)
			tt.mutate(model)

			path := filepath.Join(t.TempDir(), "intent_model.json")
			if err := model.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			_, err := Load(path)
			if !errors.Is(err, ErrModelUnavailable) {
				t.Fatalf("Load() error = %v, want ErrModelUnavailable", err)
			}
		})
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Load() expected error for missing artifact")
	}
}

func TestLabelsSorted(t *testing.T) {
	model := trainedModel(t)
	labels := model.Labels()
	for i := 1; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			t.Fatalf("Labels() not sorted: %v", labels)
		}
	}
}
