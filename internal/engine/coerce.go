package engine

import (
	"math"
	"strconv"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// Key is the comparable form of one (record, column) cell: a float for
// numeric columns, raw text for categorical ones.
type Key struct {
	Num     float64
	Str     string
	Numeric bool
}

// Coerce derives the comparable key for a record's cell. Numeric columns
// parse as float64; a cell that fails to parse coerces to +Inf rather
// than erroring, so malformed rows sort deterministically last in
// ascending order instead of aborting the whole sort. Categorical
// columns return the raw text, missing keys the empty string.
func (e *Engine) Coerce(r dataset.Record, column string) Key {
	raw := r.Get(column)
	if e.schema.IsNumeric(column) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Key{Num: math.Inf(1), Numeric: true}
		}
		return Key{Num: v, Numeric: true}
	}
	return Key{Str: raw}
}

// Less orders two keys of the same kind.
func (k Key) Less(other Key) bool {
	if k.Numeric {
		return k.Num < other.Num
	}
	return k.Str < other.Str
}

// Greater is the reverse ordering predicate.
func (k Key) Greater(other Key) bool { return other.Less(k) }
