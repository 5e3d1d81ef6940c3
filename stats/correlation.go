package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Correlation returns the Pearson correlation coefficient of a and b.
//
// Both series must have the same length, at least 2. When either series has
// zero variance the coefficient is undefined and NaN is returned with a nil
// error; callers decide what an undefined correlation means. Otherwise the
// result is clamped to [-1,1] to absorb rounding.
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooShort, len(a))
	}
	if floats.HasNaN(a) || floats.HasNaN(b) {
		return 0, ErrNaN
	}

	if constant(a) || constant(b) {
		return math.NaN(), nil
	}

	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) {
		return r, nil
	}

	return math.Max(-1, math.Min(1, r)), nil
}

func constant(x []float64) bool {
	return floats.Max(x) == floats.Min(x)
}
