package engine

import (
	"math"
	"strconv"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// Augmentation methods.
const (
	MethodDuplicate = "duplicate"
	MethodCreate    = "create"
)

// Augment grows the dataset by floor(len*percent/100) rows. "duplicate"
// appends shallow copies drawn uniformly with replacement; "create"
// synthesizes rows column by column — numeric columns sample uniformly
// from [min, max] of the existing parsed values rounded to one decimal
// ("0" when nothing parses), categorical columns pick uniformly from the
// existing non-empty values ("" when there are none), unknown columns
// stay empty. The original rows come first, in their original order. An
// unrecognized method returns the copy unchanged; callers validate the
// token before calling.
func (e *Engine) Augment(ds dataset.Dataset, percent int, method string) (dataset.Dataset, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}

	numToAdd := len(ds) * percent / 100
	result := ds.Copy()

	switch method {
	case MethodDuplicate:
		for i := 0; i < numToAdd; i++ {
			result = append(result, ds[e.rng.Intn(len(ds))].Clone())
		}
	case MethodCreate:
		columns := ds.Columns()
		for i := 0; i < numToAdd; i++ {
			result = append(result, e.synthesize(ds, columns))
		}
	}
	return result, nil
}

// synthesize builds one random row from the value ranges of the dataset.
func (e *Engine) synthesize(ds dataset.Dataset, columns []string) dataset.Record {
	fields := make(map[string]string, len(columns))
	for _, col := range columns {
		switch {
		case e.schema.IsNumeric(col):
			lo, hi, ok := numericRange(ds, col)
			if !ok {
				fields[col] = "0"
				continue
			}
			v := lo + e.rng.Float64()*(hi-lo)
			fields[col] = strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
		case e.schema.Categorical[col]:
			vals := nonEmptyValues(ds, col)
			if len(vals) == 0 {
				fields[col] = ""
				continue
			}
			fields[col] = vals[e.rng.Intn(len(vals))]
		default:
			fields[col] = ""
		}
	}
	return dataset.NewRecord(fields)
}

// Sample returns k distinct records chosen uniformly at random, without
// replacement. Result order is whatever the shuffle produces.
func (e *Engine) Sample(ds dataset.Dataset, k int) (dataset.Dataset, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	if k < 0 || k > len(ds) {
		return nil, dataset.NewDataError("sample size %d out of range for %d records", k, len(ds))
	}
	perm := e.rng.Perm(len(ds))
	out := make(dataset.Dataset, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, ds[idx])
	}
	return out, nil
}

func numericRange(ds dataset.Dataset, column string) (lo, hi float64, ok bool) {
	for _, r := range ds {
		v, err := strconv.ParseFloat(r.Get(column), 64)
		if err != nil {
			continue
		}
		if !ok || v < lo {
			lo = v
		}
		if !ok || v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}

func nonEmptyValues(ds dataset.Dataset, column string) []string {
	var vals []string
	for _, r := range ds {
		if v := r.Get(column); v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}
