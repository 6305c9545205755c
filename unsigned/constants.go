// SPDX-License-Identifier: MIT

package unsigned

import "math"

// Constants at the F64 type. Each payload is the correctly rounded float64 of
// the corresponding math constant, so Pi.Float64() == math.Pi bit for bit.
//
// They are variables because Go has no struct constants; reassigning one can
// only ever store another valid F64.
var (
	Pi              = F64{v: math.Pi}
	E               = F64{v: math.E}
	Tau             = F64{v: 2 * math.Pi}
	Frac1Pi         = F64{v: 1 / math.Pi}
	Frac2Pi         = F64{v: 2 / math.Pi}
	Frac1Sqrt2      = F64{v: 1 / math.Sqrt2}
	Frac2SqrtPi     = F64{v: 2 / math.SqrtPi}
	FracPi2         = F64{v: math.Pi / 2}
	FracPi3         = F64{v: math.Pi / 3}
	FracPi4         = F64{v: math.Pi / 4}
	FracPi6         = F64{v: math.Pi / 6}
	FracPi8         = F64{v: math.Pi / 8}
	Ln2             = F64{v: math.Ln2}
	Ln10            = F64{v: math.Ln10}
	Log2E           = F64{v: math.Log2E}
	Log10E          = F64{v: math.Log10E}
	Sqrt2           = F64{v: math.Sqrt2}
	SqrtE           = F64{v: math.SqrtE}
	SqrtPi          = F64{v: math.SqrtPi}
	Phi             = F64{v: math.Phi}
	SqrtPhi         = F64{v: math.SqrtPhi}
	Epsilon         = F64{v: 0x1p-52} // math.Nextafter(1, 2) - 1
	MinPositive     = F64{v: minNormal}
	SmallestNonzero = F64{v: math.SmallestNonzeroFloat64}
	MaxValue        = F64{v: math.MaxFloat64}
	Infinity        = F64{v: math.Inf(1)}
	Zero            = F64{}
	One             = F64{v: 1}
)
