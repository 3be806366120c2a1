package engine

import (
	"math/rand"
	"testing"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// testEngine returns an engine with the default schema and a fixed-seed
// random source so sampling and augmentation are reproducible.
func testEngine(seed int64) *Engine {
	return New(dataset.DefaultSchema(), rand.New(rand.NewSource(seed)))
}

func penguin(species, island, culmenLen, culmenDepth, flipper, mass, sex string) map[string]string {
	return map[string]string{
		"species":           species,
		"island":            island,
		"culmen_length_mm":  culmenLen,
		"culmen_depth_mm":   culmenDepth,
		"flipper_length_mm": flipper,
		"body_mass_g":       mass,
		"sex":               sex,
	}
}

// fourPenguins is the worked example from the test plan: masses
// [3750, 5000, 3200, 3750] with species Adelie, Gentoo, Adelie, Chinstrap.
func fourPenguins() dataset.Dataset {
	return dataset.New([]map[string]string{
		penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("Gentoo", "Biscoe", "46.1", "13.2", "211", "5000", "FEMALE"),
		penguin("Adelie", "Dream", "38.8", "17.2", "180", "3200", "FEMALE"),
		penguin("Chinstrap", "Dream", "46.5", "17.9", "192", "3750", "FEMALE"),
	})
}

func masses(t *testing.T, ds dataset.Dataset) []string {
	t.Helper()
	out := make([]string, len(ds))
	for i, r := range ds {
		out[i] = r.Get("body_mass_g")
	}
	return out
}

func sameIDMultiset(a, b dataset.Dataset) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int64]int, len(a))
	for _, r := range a {
		counts[r.ID]++
	}
	for _, r := range b {
		counts[r.ID]--
		if counts[r.ID] < 0 {
			return false
		}
	}
	return true
}
