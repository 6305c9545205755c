// SPDX-License-Identifier: MIT

package unsigned

import "math"

// Forwarded math surface.
//
// Every method below applies the math package function of the same meaning
// to the payload. The return type records whether a non-negative receiver
// guarantees a non-negative result: F64 when it does, float64 when the result
// can go negative (logarithms of values in [0, 1), trigonometric functions)
// or when the sign bit of -0.0 leaks through (Signum, Copysign, Atan2).

const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

// Floor returns the greatest integer value <= f.
func (f F64) Floor() F64 { return F64{v: math.Floor(f.v)} }

// Ceil returns the least integer value >= f.
func (f F64) Ceil() F64 { return F64{v: math.Ceil(f.v)} }

// Round returns the nearest integer, rounding half away from zero.
func (f F64) Round() F64 { return F64{v: math.Round(f.v)} }

// RoundToEven returns the nearest integer, rounding ties to even.
func (f F64) RoundToEven() F64 { return F64{v: math.RoundToEven(f.v)} }

// Trunc returns the integer part of f.
func (f F64) Trunc() F64 { return F64{v: math.Trunc(f.v)} }

// Fract returns f - Trunc(f), which lies in [0, 1) for finite f.
// Fract of +Inf is NaN.
func (f F64) Fract() F64 { return F64{v: f.v - math.Trunc(f.v)} }

// Abs returns |f|. It clears the sign bit of -0.0.
func (f F64) Abs() F64 { return F64{v: math.Abs(f.v)} }

// Signum returns 1.0 for a positive sign bit, -1.0 for a negative one and NaN
// for NaN.
//
// Signum of -0.0 is -1.0 even though -0.0 satisfies the invariant: the sign
// bit is reported as is.
func (f F64) Signum() float64 {
	if math.IsNaN(f.v) {
		return math.NaN()
	}

	return math.Copysign(1, f.v)
}

// Copysign returns a value with the magnitude of f and the sign of sign.
// The result is float64 because any negative sign argument makes it negative.
func (f F64) Copysign(sign float64) float64 {
	return math.Copysign(f.v, sign)
}

// MulAdd returns f·a + b computed with a single rounding. Like Mul, it is NaN
// when one factor is +Inf and the other is zero.
func (f F64) MulAdd(a, b F64) F64 {
	return F64{v: math.FMA(f.v, a.v, b.v)}
}

// RemEuclid returns the least non-negative remainder of f / rhs.
// RemEuclid by zero is NaN.
func (f F64) RemEuclid(rhs F64) F64 {
	r := math.Mod(f.v, rhs.v)
	if r < 0 {
		r += math.Abs(rhs.v)
	}

	return F64{v: r}
}

// DivEuclid returns the quotient q such that f = rhs·q + f.RemEuclid(rhs).
// For non-negative operands this is Trunc(f / rhs), hence non-negative,
// except for division by -0.0 which yields -Inf as Div does.
func (f F64) DivEuclid(rhs F64) F64 {
	q := math.Trunc(f.v / rhs.v)
	if math.Mod(f.v, rhs.v) < 0 {
		if rhs.v > 0 {
			q--
		} else {
			q++
		}
	}

	return F64{v: q}
}

// Powi returns f raised to the integer power n. Powi(n=0) is 1 for every f.
// A -0.0 receiver with a negative odd n gives -Inf.
func (f F64) Powi(n int) F64 {
	return F64{v: math.Pow(f.v, float64(n))}
}

// Powf returns f raised to the power n. A non-negative base never yields a
// negative result (apart from the -0.0 sign-bit cases of Powi). A NaN n passes
// through: Powf(NaN) is NaN for every f except 1.
func (f F64) Powf(n float64) F64 {
	return F64{v: math.Pow(f.v, n)}
}

// Sqrt returns the square root of f.
//
// Sqrt never returns NaN for a receiver that satisfies the invariant: the
// domain of math.Sqrt is exactly [-0, +Inf]. Sqrt(-0.0) is -0.0.
func (f F64) Sqrt() F64 { return F64{v: math.Sqrt(f.v)} }

// Cbrt returns the cube root of f.
func (f F64) Cbrt() F64 { return F64{v: math.Cbrt(f.v)} }

// Hypot returns sqrt(f² + other²) without undue overflow. A NaN other gives
// NaN, unless f is +Inf.
func (f F64) Hypot(other float64) F64 { return F64{v: math.Hypot(f.v, other)} }

// Exp returns e**f.
func (f F64) Exp() F64 { return F64{v: math.Exp(f.v)} }

// Exp2 returns 2**f.
func (f F64) Exp2() F64 { return F64{v: math.Exp2(f.v)} }

// ExpM1 returns e**f - 1, accurate for f near zero.
func (f F64) ExpM1() F64 { return F64{v: math.Expm1(f.v)} }

// Ln1p returns ln(1 + f), accurate for f near zero.
func (f F64) Ln1p() F64 { return F64{v: math.Log1p(f.v)} }

// Ln returns the natural logarithm. Negative for f in [0, 1); -Inf at zero.
func (f F64) Ln() float64 { return math.Log(f.v) }

// Log returns the logarithm of f in the given base, computed as ln f / ln base.
func (f F64) Log(base float64) float64 { return math.Log(f.v) / math.Log(base) }

// Log2 returns the binary logarithm.
func (f F64) Log2() float64 { return math.Log2(f.v) }

// Log10 returns the decimal logarithm.
func (f F64) Log10() float64 { return math.Log10(f.v) }

// Sin returns the sine of the radian argument f.
func (f F64) Sin() float64 { return math.Sin(f.v) }

// Cos returns the cosine of the radian argument f.
func (f F64) Cos() float64 { return math.Cos(f.v) }

// Tan returns the tangent of the radian argument f.
func (f F64) Tan() float64 { return math.Tan(f.v) }

// SinCos returns Sin and Cos together.
func (f F64) SinCos() (sin, cos float64) { return math.Sincos(f.v) }

// Asin returns the arcsine, in [0, π/2] for f in [0, 1] and NaN above 1.
func (f F64) Asin() F64 { return F64{v: math.Asin(f.v)} }

// Acos returns the arccosine, in [0, π/2] for f in [0, 1] and NaN above 1.
func (f F64) Acos() F64 { return F64{v: math.Acos(f.v)} }

// Atan returns the arctangent, in [0, π/2]. Atan(+Inf) is π/2.
func (f F64) Atan() F64 { return F64{v: math.Atan(f.v)} }

// Atan2 returns the angle of the point (x, f). The result is float64: a -0.0
// receiver with negative x yields -π.
func (f F64) Atan2(x float64) float64 { return math.Atan2(f.v, x) }

// Sinh returns the hyperbolic sine.
func (f F64) Sinh() F64 { return F64{v: math.Sinh(f.v)} }

// Cosh returns the hyperbolic cosine, always >= 1.
func (f F64) Cosh() F64 { return F64{v: math.Cosh(f.v)} }

// Tanh returns the hyperbolic tangent, in [0, 1].
func (f F64) Tanh() F64 { return F64{v: math.Tanh(f.v)} }

// Asinh returns the inverse hyperbolic sine.
func (f F64) Asinh() F64 { return F64{v: math.Asinh(f.v)} }

// Acosh returns the inverse hyperbolic cosine; NaN for f < 1.
func (f F64) Acosh() F64 { return F64{v: math.Acosh(f.v)} }

// Atanh returns the inverse hyperbolic tangent; +Inf at 1 and NaN above 1.
func (f F64) Atanh() F64 { return F64{v: math.Atanh(f.v)} }

// Recip returns 1 / f. Recip of +0.0 is +Inf, of -0.0 is -Inf.
func (f F64) Recip() F64 { return F64{v: 1 / f.v} }

// ToDegrees converts radians to degrees.
func (f F64) ToDegrees() F64 { return F64{v: f.v * degPerRad} }

// ToRadians converts degrees to radians.
func (f F64) ToRadians() F64 { return F64{v: f.v * radPerDeg} }

// Max returns the larger of f and o. A NaN operand is ignored: the other
// operand is returned.
func (f F64) Max(o F64) F64 {
	switch {
	case math.IsNaN(f.v):
		return o
	case math.IsNaN(o.v):
		return f
	}

	return F64{v: math.Max(f.v, o.v)}
}

// Min returns the smaller of f and o. A NaN operand is ignored: the other
// operand is returned.
func (f F64) Min(o F64) F64 {
	switch {
	case math.IsNaN(f.v):
		return o
	case math.IsNaN(o.v):
		return f
	}

	return F64{v: math.Min(f.v, o.v)}
}

// Clamp restricts f to [lo, hi]. A NaN receiver stays NaN.
//
// Clamp panics if lo > hi or if either bound is NaN; that is a programming
// error, not a data error.
func (f F64) Clamp(lo, hi F64) F64 {
	if !(lo.v <= hi.v) {
		panic("unsigned: Clamp requires lo <= hi")
	}

	switch {
	case f.v < lo.v:
		return lo
	case f.v > hi.v:
		return hi
	}

	return f
}
