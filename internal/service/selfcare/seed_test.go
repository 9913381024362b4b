package selfcare

import (
	"testing"

	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

func TestCatalogCoversEveryRecommendableModule(t *testing.T) {
	modules := []string{
		triage.ModuleBreathing478,
		triage.ModuleMindfulness,
		triage.ModuleMuscleRelaxation,
		triage.ModuleJournaling,
		triage.ModuleGuidedRelaxation,
	}

	bySlug := make(map[string]seedExercise, len(catalog))
	for _, e := range catalog {
		if _, dup := bySlug[e.slug]; dup {
			t.Errorf("duplicate catalog slug %q", e.slug)
		}
		bySlug[e.slug] = e
	}

	for _, id := range modules {
		e, ok := bySlug[id]
		if !ok {
			t.Errorf("module %q has no catalog entry", id)
			continue
		}
		if e.name != triage.ModuleTitle(id) {
			t.Errorf("module %q: catalog name %q does not match title %q", id, e.name, triage.ModuleTitle(id))
		}
	}

	if len(catalog) != len(modules) {
		t.Errorf("catalog has %d entries, expected %d", len(catalog), len(modules))
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, e := range catalog {
		if e.slug == "" || e.name == "" || e.description == "" || e.instructions == "" || e.benefits == "" {
			t.Errorf("catalog entry %q has empty fields", e.slug)
		}
		if e.duration <= 0 {
			t.Errorf("catalog entry %q has non-positive duration %d", e.slug, e.duration)
		}
	}
}
