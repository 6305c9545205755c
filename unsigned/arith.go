// SPDX-License-Identifier: MIT

package unsigned

// Arithmetic follows a fixed closure policy. An operation returns F64 only
// when a non-negative result is guaranteed for every pair of non-negative
// operands; otherwise it returns float64 and the caller must re-validate.

// Add returns f + o. Closed: the sum of two non-negatives is non-negative.
func (f F64) Add(o F64) F64 {
	return F64{v: f.v + o.v}
}

// AddFloat returns f + x as a raw float64, since x may be negative.
func (f F64) AddFloat(x float64) float64 {
	return f.v + x
}

// Sub returns f - o as a raw float64. Subtraction is not closed: 2 - 3 = -1.
func (f F64) Sub(o F64) float64 {
	return f.v - o.v
}

// SubFloat returns f - x as a raw float64.
func (f F64) SubFloat(x float64) float64 {
	return f.v - x
}

// Mul returns f · o. Closed, with one IEEE exception: +Inf · 0 (either
// order, either zero) is NaN, which then lives inside an F64.
func (f F64) Mul(o F64) F64 {
	return F64{v: f.v * o.v}
}

// MulFloat returns f · x as a raw float64.
func (f F64) MulFloat(x float64) float64 {
	return f.v * x
}

// Div returns f / o without re-validating the result.
//
// Two IEEE artifacts pass through:
//   - 0/0 (and Inf/Inf) is NaN, which then lives inside an F64;
//   - dividing a positive value by -0.0 yields -Inf, because -0.0 is a valid
//     F64 whose sign bit is set.
func (f F64) Div(o F64) F64 {
	return F64{v: f.v / o.v}
}

// DivFloat returns f / x as a raw float64.
func (f F64) DivFloat(x float64) float64 {
	return f.v / x
}

// Neg returns -f as a raw float64. Neg of +0.0 is -0.0.
func (f F64) Neg() float64 {
	return -f.v
}

// AddAssign sets f to f + o.
func (f *F64) AddAssign(o F64) {
	f.v += o.v
}

// MulAssign sets f to f · o, with the same +Inf · 0 NaN as Mul.
func (f *F64) MulAssign(o F64) {
	f.v *= o.v
}

// DivAssign sets f to f / o, with the same NaN and -Inf artifacts as Div.
// There is deliberately no SubAssign.
func (f *F64) DivAssign(o F64) {
	f.v /= o.v
}
