package intent

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/intents.json
var embeddedData embed.FS

// Dataset is the labeled pattern set the classifier trains on.
type Dataset struct {
	Intents []IntentDef `json:"intents"`
}

// IntentDef groups the example phrases for one label.
type IntentDef struct {
	Tag      string   `json:"tag"`
	Patterns []string `json:"patterns"`
}

// DefaultDataset returns the pattern set shipped with the binary. It is
// the fallback when no external dataset is configured, and what the
// bundled model artifact was trained on.
func DefaultDataset() (*Dataset, error) {
	raw, err := embeddedData.ReadFile("data/intents.json")
	if err != nil {
		return nil, err
	}
	return parseDataset(raw)
}

// LoadDataset reads a pattern set from disk, for retraining with
// curated data.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseDataset(raw)
}

func parseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse intents dataset: %w", err)
	}
	if len(ds.Intents) == 0 {
		return nil, fmt.Errorf("intents dataset is empty")
	}
	for _, in := range ds.Intents {
		if in.Tag == "" {
			return nil, fmt.Errorf("intents dataset has an entry without a tag")
		}
		if len(in.Patterns) == 0 {
			return nil, fmt.Errorf("intent %q has no patterns", in.Tag)
		}
	}
	return &ds, nil
}
