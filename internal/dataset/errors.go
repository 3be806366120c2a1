package dataset

import (
	"errors"
	"fmt"
)

// ErrNotLoaded indicates an operation was attempted on an empty or absent dataset.
var ErrNotLoaded = errors.New("no data loaded")

// InvalidColumnError indicates the referenced column is not part of the dataset schema.
type InvalidColumnError struct {
	Column string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist", e.Column)
}

// NonNumericError indicates a numeric-only operation was requested on a categorical column.
type NonNumericError struct {
	Column string
}

func (e *NonNumericError) Error() string {
	return fmt.Sprintf("column %q is not numeric", e.Column)
}

// InvalidSortOrderError indicates the sort direction token was neither "asc" nor "desc".
type InvalidSortOrderError struct {
	Order string
}

func (e *InvalidSortOrderError) Error() string {
	return fmt.Sprintf("sort order must be 'asc' or 'desc', got %q", e.Order)
}

// InvalidFilterError is reserved for filter-argument validation.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s", e.Reason)
}

// DataError is the catch-all for computed-but-empty results and constraint
// violations (no parsable values, group size out of range, ceiling exceeded).
type DataError struct {
	Reason string
}

func (e *DataError) Error() string { return e.Reason }

// NewDataError formats a catch-all data error.
func NewDataError(format string, args ...any) *DataError {
	return &DataError{Reason: fmt.Sprintf(format, args...)}
}
