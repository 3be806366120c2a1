package engine

import (
	"strconv"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// Filter selects rows by attribute. For a numeric attribute the filter
// value is parsed as a number and rows whose parsed cell is strictly
// greater than it are kept; rows with unparsable cells are dropped. A
// filter value that itself fails to parse returns the dataset unchanged
// with no error — a long-standing quirk that callers rely on. For a
// categorical attribute rows must match the value exactly,
// case-sensitively. Relative order is preserved either way.
func (e *Engine) Filter(ds dataset.Dataset, attribute, value string) (dataset.Dataset, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	if !ds.HasColumn(attribute) {
		return nil, &dataset.InvalidColumnError{Column: attribute}
	}

	if e.schema.IsNumeric(attribute) {
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return ds, nil
		}
		out := make(dataset.Dataset, 0, len(ds))
		for _, r := range ds {
			v, err := strconv.ParseFloat(r.Get(attribute), 64)
			if err != nil {
				continue
			}
			if v > threshold {
				out = append(out, r)
			}
		}
		return out, nil
	}

	out := make(dataset.Dataset, 0, len(ds))
	for _, r := range ds {
		if r.Get(attribute) == value {
			out = append(out, r)
		}
	}
	return out, nil
}
