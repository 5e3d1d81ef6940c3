package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	// kolmogorovSwitch selects between the two series expansions of K(x);
	// each converges quickly on its own side.
	kolmogorovSwitch = 1.0

	kolmogorovMaxTerms = 100
	kolmogorovTol      = 1e-16
)

// KolmogorovCDF returns P(K <= x) for the Kolmogorov distribution
// K = sup|B(t)| of a Brownian bridge.
//
// For x < 1 it uses sqrt(2π)/x · Σ exp(-(2k-1)²π²/(8x²)); otherwise
// 1 - 2·Σ (-1)^(k-1) exp(-2k²x²).
func KolmogorovCDF(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}

	var sum, term float64
	if x < kolmogorovSwitch {
		c := -math.Pi * math.Pi / (8 * x * x)
		for k := 1; k <= kolmogorovMaxTerms; k++ {
			odd := float64(2*k - 1)
			term = math.Exp(odd * odd * c)
			sum += term
			if term < kolmogorovTol*sum {
				break
			}
		}
		return clamp01(math.Sqrt(2*math.Pi) / x * sum)
	}

	sign := 1.0
	for k := 1; k <= kolmogorovMaxTerms; k++ {
		kf := float64(k)
		term = math.Exp(-2 * kf * kf * x * x)
		sum += sign * term
		sign = -sign
		if term < kolmogorovTol {
			break
		}
	}

	return clamp01(1 - 2*sum)
}

// GoodnessOfFit returns the two-sided Kolmogorov–Smirnov statistic
// D = max(D+, D-) between the empirical distribution of values and the
// Kolmogorov distribution.
func GoodnessOfFit(values []float64) (float64, error) {
	return KSStatistic(values, KolmogorovCDF)
}

// KSStatistic computes the one-sample two-sided KS statistic of values
// against the reference CDF cdf.
func KSStatistic(values []float64, cdf func(float64) float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmpty
	}
	if floats.HasNaN(values) {
		return 0, ErrNaN
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	nf := float64(n)
	var dPlus, dMinus float64
	for i, x := range sorted {
		f := cdf(x)
		if v := float64(i+1)/nf - f; v > dPlus {
			dPlus = v
		}
		if v := f - float64(i)/nf; v > dMinus {
			dMinus = v
		}
	}

	return math.Max(dPlus, dMinus), nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
