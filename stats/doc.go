// Package stats supplies the two per-feature statistics the clique pipeline
// consumes: a goodness-of-fit score for one series and the Pearson
// correlation between two series.
//
//   - GoodnessOfFit: one-sample, two-sided Kolmogorov–Smirnov statistic D of
//     the sample against the Kolmogorov limiting distribution (the law of
//     sqrt(n)·D_n as n→∞). D lies in [0,1]; higher is more deviant.
//   - KolmogorovCDF: the CDF of that limiting distribution.
//   - Correlation: Pearson r in [-1,1] computed with gonum/stat; NaN when a
//     series is constant.
//
// Errors:
//
//   - ErrEmpty           no values to score
//   - ErrNaN             a NaN in the input
//   - ErrLengthMismatch  correlation inputs differ in length
//   - ErrTooShort        correlation inputs shorter than 2
package stats
