package intent

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	defaultAlpha       = 0.1
	defaultMaxFeatures = 5000
	maxDocFrequency    = 0.95
)

// TrainOptions tune the offline training step. Zero values fall back to
// the defaults the shipped model was trained with.
type TrainOptions struct {
	Alpha       float64
	MaxFeatures int
	Seed        int64
	// Holdout is the fraction of patterns reserved for the accuracy
	// estimate in the artifact metadata. Zero disables evaluation and
	// trains on everything.
	Holdout float64
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.Alpha <= 0 {
		o.Alpha = defaultAlpha
	}
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = defaultMaxFeatures
	}
	return o
}

type sample struct {
	terms []string
	label Label
}

// Train fits a TF-IDF + multinomial naive Bayes model on the labeled
// pattern set. Training is deterministic for a given dataset and seed:
// the only randomness is the holdout split, and iteration orders are
// fixed by sorting.
func Train(ds *Dataset, opts TrainOptions) (*Model, error) {
	opts = opts.withDefaults()

	samples := make([]sample, 0, 128)
	for _, in := range ds.Intents {
		for _, pattern := range in.Patterns {
			toks := tokenize(pattern)
			if len(toks) == 0 {
				continue
			}
			samples = append(samples, sample{terms: terms(toks), label: Label(in.Tag)})
		}
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("dataset has no usable patterns")
	}

	var holdout []sample
	train := samples
	if opts.Holdout > 0 && opts.Holdout < 1 {
		rng := rand.New(rand.NewSource(opts.Seed))
		shuffled := make([]sample, len(samples))
		copy(shuffled, samples)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		cut := int(float64(len(shuffled)) * opts.Holdout)
		if cut < 1 {
			cut = 1
		}
		holdout = shuffled[:cut]
		train = shuffled[cut:]
	}

	vocab, idf := buildVocabulary(train, opts.MaxFeatures)
	classes := collectClasses(train)

	classIndex := make(map[Label]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	// Accumulate per-class TF-IDF mass per feature, then smooth.
	counts := make([][]float64, len(classes))
	for i := range counts {
		counts[i] = make([]float64, len(vocab))
	}
	classDocs := make([]float64, len(classes))

	for _, s := range train {
		c, ok := classIndex[s.label]
		if !ok {
			continue
		}
		classDocs[c]++
		for idx, w := range vectorizeTerms(s.terms, vocab, idf) {
			counts[c][idx] += w
		}
	}

	model := &Model{
		Classes:        classes,
		Vocabulary:     vocab,
		IDF:            idf,
		ClassLogPrior:  make([]float64, len(classes)),
		FeatureLogProb: make([][]float64, len(classes)),
		Meta: Metadata{
			NumPatterns: len(samples),
			NumClasses:  len(classes),
			Alpha:       opts.Alpha,
			MaxFeatures: opts.MaxFeatures,
			Seed:        opts.Seed,
		},
	}

	total := float64(len(train))
	for c := range classes {
		model.ClassLogPrior[c] = math.Log(classDocs[c] / total)

		var mass float64
		for _, w := range counts[c] {
			mass += w
		}
		denom := math.Log(mass + opts.Alpha*float64(len(vocab)))

		probs := make([]float64, len(vocab))
		for idx, w := range counts[c] {
			probs[idx] = math.Log(w+opts.Alpha) - denom
		}
		model.FeatureLogProb[c] = probs
	}

	if len(holdout) > 0 {
		correct := 0
		for _, s := range holdout {
			p := predictTerms(model, s.terms)
			if p.Label == s.label {
				correct++
			}
		}
		model.Meta.HoldoutAccuracy = float64(correct) / float64(len(holdout))
	}

	return model, nil
}

// buildVocabulary selects unigram/bigram features by document frequency.
// Terms above the max-df ceiling are dropped; when the feature budget is
// exceeded the most frequent terms win, ties broken alphabetically so
// the vocabulary is stable across runs.
func buildVocabulary(train []sample, maxFeatures int) (map[string]int, []float64) {
	df := make(map[string]int)
	for _, s := range train {
		seen := make(map[string]struct{}, len(s.terms))
		for _, t := range s.terms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	ceiling := int(math.Ceil(maxDocFrequency * float64(len(train))))
	type termDF struct {
		term string
		df   int
	}
	kept := make([]termDF, 0, len(df))
	for t, n := range df {
		if n > ceiling {
			continue
		}
		kept = append(kept, termDF{t, n})
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].df != kept[j].df {
			return kept[i].df > kept[j].df
		}
		return kept[i].term < kept[j].term
	})
	if len(kept) > maxFeatures {
		kept = kept[:maxFeatures]
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].term < kept[j].term })

	vocab := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	n := float64(len(train))
	for i, td := range kept {
		vocab[td.term] = i
		idf[i] = math.Log((1+n)/(1+float64(td.df))) + 1
	}
	return vocab, idf
}

func collectClasses(train []sample) []Label {
	set := make(map[Label]struct{})
	for _, s := range train {
		set[s.label] = struct{}{}
	}
	classes := make([]Label, 0, len(set))
	for c := range set {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

func vectorizeTerms(termList []string, vocab map[string]int, idf []float64) map[int]float64 {
	counts := make(map[int]float64)
	for _, t := range termList {
		if idx, ok := vocab[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return counts
	}
	var norm float64
	for idx, tf := range counts {
		w := (1 + math.Log(tf)) * idf[idx]
		counts[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range counts {
		counts[idx] /= norm
	}
	return counts
}

func predictTerms(m *Model, termList []string) Prediction {
	vec := vectorizeTerms(termList, m.Vocabulary, m.IDF)
	if len(vec) == 0 {
		return Prediction{Label: LabelUnknown}
	}
	best, bestScore := 0, math.Inf(-1)
	for c := range m.Classes {
		score := m.ClassLogPrior[c]
		for idx, w := range vec {
			score += w * m.FeatureLogProb[c][idx]
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return Prediction{Label: m.Classes[best]}
}
