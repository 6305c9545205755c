// SPDX-License-Identifier: MIT

package unsigned

import "math"

// minNormal is the smallest positive normal float64 (2^-1022).
const minNormal = 0x1p-1022

// IsNaN reports whether f is NaN.
func (f F64) IsNaN() bool { return math.IsNaN(f.v) }

// IsInf reports whether f is an infinity of either sign.
func (f F64) IsInf() bool { return math.IsInf(f.v, 0) }

// IsFinite reports whether f is neither infinite nor NaN.
func (f F64) IsFinite() bool { return !math.IsInf(f.v, 0) && !math.IsNaN(f.v) }

// IsSubnormal reports whether f is non-zero, finite and below minNormal.
func (f F64) IsSubnormal() bool { return f.Classify() == CategorySubnormal }

// IsNormal reports whether f is finite, non-zero and not subnormal.
func (f F64) IsNormal() bool { return f.Classify() == CategoryNormal }

// Classify returns the IEEE class of f.
func (f F64) Classify() Category {
	a := math.Abs(f.v)
	switch {
	case math.IsNaN(f.v):
		return CategoryNaN
	case math.IsInf(a, 1):
		return CategoryInfinite
	case a == 0:
		return CategoryZero
	case a < minNormal:
		return CategorySubnormal
	}

	return CategoryNormal
}

// IsSignPositive reports whether the sign bit is clear. It is false for -0.0.
func (f F64) IsSignPositive() bool { return !math.Signbit(f.v) }

// IsSignNegative reports whether the sign bit is set. It is true for -0.0.
func (f F64) IsSignNegative() bool { return math.Signbit(f.v) }

// TotalCmp compares f and o under the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. Unlike Compare it distinguishes -0.0 < +0.0 and
// orders NaN payloads by their bits (positive NaN after +Inf).
//
// Complexity: O(1).
func (f F64) TotalCmp(o F64) int {
	a, b := totalKey(f.v), totalKey(o.v)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// totalKey maps a float64 to an int64 whose signed order is the totalOrder of
// the floats: negative values have their magnitude bits flipped.
func totalKey(v float64) int64 {
	k := int64(math.Float64bits(v))

	return k ^ int64(uint64(k>>63)>>1)
}
