package stats

import "errors"

var (
	// ErrEmpty indicates a series with no values.
	ErrEmpty = errors.New("stats: empty series")

	// ErrNaN indicates a NaN value in a series.
	ErrNaN = errors.New("stats: NaN in series")

	// ErrLengthMismatch indicates correlation inputs of different lengths.
	ErrLengthMismatch = errors.New("stats: series lengths differ")

	// ErrTooShort indicates correlation inputs with fewer than two samples.
	ErrTooShort = errors.New("stats: need at least 2 samples")
)
