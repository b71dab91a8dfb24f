package growth

import "math"

// Limits describes the floating-point range the models must stay inside.
// Every overflow threshold used by the models is derived from MaxValue so the
// thresholds can be exercised deterministically with a smaller range.
type Limits struct {
	// MaxValue is the largest finite value of the target float type.
	MaxValue float64

	log2Max      float64
	sqrtMax      float64
	cbrtMax      float64
	maxExp2      float64
	maxFactorial float64
}

// Float64Limits is the range of IEEE 754 double precision values.
var Float64Limits = NewLimits(math.MaxFloat64)

// Float32Limits is the range of IEEE 754 single precision values.
var Float32Limits = NewLimits(math.MaxFloat32)

// NewLimits derives the overflow thresholds for a maximum representable value.
func NewLimits(maxValue float64) Limits {
	l := Limits{
		MaxValue: maxValue,
		log2Max:  math.Log2(maxValue),
		sqrtMax:  math.Sqrt(maxValue),
		cbrtMax:  math.Cbrt(maxValue),
		// 2^n stays finite while n does not exceed the binary exponent of max.
		maxExp2: float64(math.Ilogb(maxValue)),
	}
	n := 1.0
	for Log2Factorial(n+1) < l.log2Max {
		n++
	}
	l.maxFactorial = n
	return l
}

// Log2Max returns log2(MaxValue).
func (l Limits) Log2Max() float64 { return l.log2Max }

// SqrtMax returns the largest n for which n*n stays in range.
func (l Limits) SqrtMax() float64 { return l.sqrtMax }

// CbrtMax returns the largest n for which n*n*n stays in range.
func (l Limits) CbrtMax() float64 { return l.cbrtMax }

// MaxExp2 returns the largest n for which 2^n stays in range (1023 for float64).
func (l Limits) MaxExp2() float64 { return l.maxExp2 }

// MaxFactorial returns the largest integer n whose Stirling factorial stays
// in range (170 for float64).
func (l Limits) MaxFactorial() float64 { return l.maxFactorial }

// Headroom returns how many powers of two a ratio may span before
// multiplying it by seconds would leave the representable range.
func (l Limits) Headroom(seconds float64) float64 {
	return l.log2Max - math.Log2(math.Max(seconds, 1))
}
