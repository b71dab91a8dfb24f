// Package growth provides the asymptotic cost models used to extrapolate
// running times, and the overflow-safe ratio between model costs at two
// input sizes.
//
// Models whose raw cost leaves the float64 range for moderate sizes (2^n and
// n!) carry a log-domain companion so that ratios across large size gaps are
// computed as differences of logarithms. The thresholds at which models give
// up and return +Inf come from a Limits value rather than package constants.
package growth
