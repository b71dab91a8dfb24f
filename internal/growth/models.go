package growth

import "math"

// Model is a named asymptotic cost function.
//
// Cost must be non-decreasing in n for extrapolation to make sense; this is
// assumed, not checked. Log2Cost, when set, returns log2(Cost(n)) without
// ever forming Cost(n), and is used for models whose raw values overflow
// long before the sizes that matter.
type Model struct {
	Name     string
	Cost     func(n float64) float64
	Log2Cost func(n float64) float64
}

// String returns the model name.
func (m Model) String() string { return m.Name }

// HasLog2 reports whether the model carries a log-domain companion.
func (m Model) HasLog2() bool { return m.Log2Cost != nil }

// Model names.
const (
	LinearName    = "linear"
	NLog2NName    = "nlog2n"
	SquareName    = "square"
	CubeName      = "cube"
	ExpName       = "exp"
	FactorialName = "fact"
)

// Linear returns n.
func Linear(n float64) float64 { return n }

// NLog2N returns n*log2(n).
func (l Limits) NLog2N(n float64) float64 {
	if n > l.sqrtMax {
		return math.Inf(1)
	}
	return n * math.Log2(n)
}

// Square returns n*n.
func Square(n float64) float64 { return n * n }

// Cube returns n^3.
func (l Limits) Cube(n float64) float64 {
	if n > l.cbrtMax {
		return math.Inf(1)
	}
	return n * n * n
}

// Exp returns 2^n.
func (l Limits) Exp(n float64) float64 {
	if n > l.maxExp2 {
		return math.Inf(1)
	}
	return math.Exp2(n)
}

// Factorial returns the Stirling approximation sqrt(2πn)·(n/e)^n.
func (l Limits) Factorial(n float64) float64 {
	if n > l.maxFactorial {
		return math.Inf(1)
	}
	return math.Sqrt(2*math.Pi*n) * math.Pow(n/math.E, n)
}

// Log2Factorial is the exact base-2 logarithm of the Stirling approximation.
func Log2Factorial(n float64) float64 {
	return 0.5*math.Log2(2*math.Pi*n) + n*math.Log2(n) - n*math.Log2E
}

// Log2Exp is the base-2 logarithm of 2^n, which is n itself.
func Log2Exp(n float64) float64 { return n }
