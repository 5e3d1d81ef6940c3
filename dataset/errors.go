package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader indicates an input without a header record.
	ErrNoHeader = errors.New("dataset: missing header row")

	// ErrInconsistentRow indicates a record whose field count differs from the header's.
	ErrInconsistentRow = errors.New("dataset: inconsistent column count")

	// ErrNotNumeric indicates a feature cell that does not parse as a float.
	ErrNotNumeric = errors.New("dataset: value is not numeric")

	// ErrColumnRange indicates a column range that selects nothing or exceeds the header.
	ErrColumnRange = errors.New("dataset: invalid column range")
)

// FormatError reports malformed input at a specific record (1-based, the
// header being line 1) and, where known, column.
type FormatError struct {
	Line   int
	Column int // -1 when the whole record is at fault
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("dataset: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
