package engine

import (
	"strconv"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// Stats holds descriptive statistics for one numeric column.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Describe computes min, max, and arithmetic mean of a numeric attribute.
// Cells that fail to parse are skipped; if none survive, a data error is
// returned rather than a zeroed result.
func (e *Engine) Describe(ds dataset.Dataset, attribute string) (Stats, error) {
	if len(ds) == 0 {
		return Stats{}, dataset.ErrNotLoaded
	}
	if !ds.HasColumn(attribute) {
		return Stats{}, &dataset.InvalidColumnError{Column: attribute}
	}
	if !e.schema.IsNumeric(attribute) {
		return Stats{}, &dataset.NonNumericError{Column: attribute}
	}

	var (
		sum   float64
		count int
		st    Stats
	)
	for _, r := range ds {
		v, err := strconv.ParseFloat(r.Get(attribute), 64)
		if err != nil {
			continue
		}
		if count == 0 || v < st.Min {
			st.Min = v
		}
		if count == 0 || v > st.Max {
			st.Max = v
		}
		sum += v
		count++
	}
	if count == 0 {
		return Stats{}, dataset.NewDataError("no valid numeric values found for %q", attribute)
	}
	st.Mean = sum / float64(count)
	return st, nil
}

// UniqueCounts tallies the distinct non-empty values of an attribute.
// Map iteration order is unspecified; callers sort for display.
func (e *Engine) UniqueCounts(ds dataset.Dataset, attribute string) (map[string]int, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	if !ds.HasColumn(attribute) {
		return nil, &dataset.InvalidColumnError{Column: attribute}
	}
	counts := make(map[string]int)
	for _, r := range ds {
		if v := r.Get(attribute); v != "" {
			counts[v]++
		}
	}
	return counts, nil
}
