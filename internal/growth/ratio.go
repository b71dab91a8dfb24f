package growth

import "math"

// Ratio returns Cost(target)/Cost(reference) without overflowing.
//
// Models with a log-domain companion are compared in log2 space: when the
// log ratio exceeds maxLog2Ratio the result is +Inf, otherwise it is
// 2^(log ratio). Other models divide directly, clamping the reference cost
// to at least 1.
//
// Ratio(m, n, n, h) is 1 for every model and every n at which Cost(n) is
// finite and at least 1; below 1 the clamp makes it Cost(n). If Cost(n) is
// +Inf for a model without a companion the result is NaN (Inf/Inf), which
// FormatWordTime renders as "inf".
func Ratio(m Model, target, reference, maxLog2Ratio float64) float64 {
	if m.Log2Cost == nil {
		return m.Cost(target) / math.Max(m.Cost(reference), 1)
	}
	diff := m.Log2Cost(target) - m.Log2Cost(reference)
	if diff > maxLog2Ratio {
		return math.Inf(1)
	}
	return math.Exp2(diff)
}

// Extrapolate scales a measured time in seconds from the reference size to
// the target size under model m. The log-domain headroom is derived from the
// measured time so that the final multiplication cannot overflow.
func (l Limits) Extrapolate(m Model, target, reference, seconds float64) float64 {
	return seconds * Ratio(m, target, reference, l.Headroom(seconds))
}
