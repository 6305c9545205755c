// SPDX-License-Identifier: MIT

package unsigned

import (
	"cmp"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// valid reports whether v satisfies the invariant.
// NaN compares false against everything and is therefore rejected.
func valid(v float64) bool {
	return v >= 0
}

// New wraps v if v >= 0 (so -0.0 and +Inf are accepted, NaN is not).
// The boolean is false when the invariant does not hold; no reason is given.
//
// Complexity: O(1).
func New(v float64) (F64, bool) {
	if !valid(v) {
		return F64{}, false
	}

	return F64{v: v}, true
}

// TryFrom is New in error style. It returns ErrInvariant, unwrapped, for a
// negative or NaN v, and accepts exactly the values New accepts.
//
// Complexity: O(1).
func TryFrom(v float64) (F64, error) {
	if !valid(v) {
		return F64{}, ErrInvariant
	}

	return F64{v: v}, nil
}

// MustNew is like New but panics with ErrInvariant when v is negative or NaN.
// Use it for literals and test fixtures.
func MustNew(v float64) F64 {
	f, ok := New(v)
	if !ok {
		panic(ErrInvariant)
	}

	return f
}

// Unchecked wraps v without validating it.
//
// Contract: the caller has already proven v >= 0. Passing a negative or NaN
// value does not corrupt memory, but every guarantee built on the invariant
// (closure of Add/Mul/Div, Sqrt never returning NaN, comparisons) is void for
// values derived from it. Prefer New or TryFrom outside hot paths.
func Unchecked(v float64) F64 {
	return F64{v: v}
}

// Abs returns |v|. It never fails; Abs(NaN) is NaN, which this constructor
// passes through without validation.
func Abs(v float64) F64 {
	return F64{v: math.Abs(v)}
}

// Square returns v·v. It never fails; Square(NaN) is NaN.
func Square(v float64) F64 {
	return F64{v: v * v}
}

// FromUnsigned converts any unsigned integer. It cannot fail; values above
// 2^53 round to the nearest representable float64 like any conversion.
func FromUnsigned[T constraints.Unsigned](v T) F64 {
	return F64{v: float64(v)}
}

// FromInteger converts a signed or unsigned integer, reporting false for
// negative input.
func FromInteger[T constraints.Integer](v T) (F64, bool) {
	if v < 0 {
		return F64{}, false
	}

	return F64{v: float64(v)}, true
}

// Float64 returns the raw payload unchanged.
func (f F64) Float64() float64 {
	return f.v
}

// String formats the payload in the shortest 'g' form that round-trips.
func (f F64) String() string {
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

// Equal reports f == o under IEEE equality (-0.0 equals +0.0, NaN equals nothing).
func (f F64) Equal(o F64) bool {
	return f.v == o.v
}

// EqualFloat reports whether the payload equals the raw value x.
func (f F64) EqualFloat(x float64) bool {
	return f.v == x
}

// Less reports f < o under IEEE ordering.
func (f F64) Less(o F64) bool {
	return f.v < o.v
}

// LessFloat reports whether the payload is less than the raw value x.
func (f F64) LessFloat(x float64) bool {
	return f.v < x
}

// Compare returns -1, 0 or +1 following cmp.Compare: NaN sorts before every
// other value and -0.0 equals +0.0. Use TotalCmp to tell the zeros apart.
func (f F64) Compare(o F64) int {
	return cmp.Compare(f.v, o.v)
}

// Sum adds vals left to right starting from +0.0. The sum of no values is Zero.
// A NaN element (for example the result of +Inf · 0) makes the sum NaN.
//
// Complexity: O(n).
func Sum(vals ...F64) F64 {
	var acc F64
	for _, x := range vals {
		acc.AddAssign(x)
	}

	return acc
}
