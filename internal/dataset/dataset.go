// Package dataset defines the in-memory data model for penguin records:
// rows of textual cells keyed by column name, with a declared numeric vs.
// categorical schema and a stable identity handle per record.
package dataset

import "sync/atomic"

// idSeq hands out record identity handles. Identity, not value equality,
// distinguishes records: a dataset may contain value-duplicate rows, and
// group/partition logic must still tell them apart.
var idSeq atomic.Int64

// Record is one row of data. Values are stored as text even for numeric
// columns and parsed on demand.
type Record struct {
	// ID is the stable identity handle assigned at record creation.
	// Copies made via Clone receive a fresh identity.
	ID     int64
	Fields map[string]string
}

// NewRecord builds a record around the given fields and assigns it a
// fresh identity. The map is taken over, not copied.
func NewRecord(fields map[string]string) Record {
	return Record{ID: idSeq.Add(1), Fields: fields}
}

// Get returns the cell for a column, or the empty string when the key is
// missing.
func (r Record) Get(column string) string { return r.Fields[column] }

// Lookup returns the first non-empty cell among the given column aliases.
// CSV files come in raw-header and snake_case variants, so callers pass
// both spellings.
func (r Record) Lookup(columns ...string) string {
	for _, c := range columns {
		if v, ok := r.Fields[c]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Clone returns a shallow copy of the record's fields under a new identity.
func (r Record) Clone() Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return NewRecord(fields)
}

// Dataset is an ordered sequence of records sharing a key set. Transforms
// return new datasets; they never mutate their input in place.
type Dataset []Record

// New assigns identities to a sequence of raw rows, preserving order.
func New(rows []map[string]string) Dataset {
	ds := make(Dataset, 0, len(rows))
	for _, row := range rows {
		ds = append(ds, NewRecord(row))
	}
	return ds
}

// Copy returns a new slice over the same records (identities shared).
func (ds Dataset) Copy() Dataset {
	out := make(Dataset, len(ds))
	copy(out, ds)
	return out
}

// HasColumn reports whether the column is part of the dataset's key set,
// taken from the first record.
func (ds Dataset) HasColumn(column string) bool {
	if len(ds) == 0 {
		return false
	}
	_, ok := ds[0].Fields[column]
	return ok
}

// Columns returns the key set of the first record. Order is unspecified.
func (ds Dataset) Columns() []string {
	if len(ds) == 0 {
		return nil
	}
	cols := make([]string, 0, len(ds[0].Fields))
	for k := range ds[0].Fields {
		cols = append(cols, k)
	}
	return cols
}

// IDSet returns the identity set of the dataset.
func (ds Dataset) IDSet() map[int64]bool {
	set := make(map[int64]bool, len(ds))
	for _, r := range ds {
		set[r.ID] = true
	}
	return set
}
