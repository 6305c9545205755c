// SPDX-License-Identifier: MIT

package unsigned

// F64 is a float64 that is >= 0 under IEEE comparison.
//
// The zero value is +0.0 and is ready to use. F64 is comparable with ==, which
// compares payloads the IEEE way (-0.0 == +0.0, NaN != NaN).
type F64 struct {
	v float64
}

// Category is the IEEE class of a value, as reported by Classify.
type Category int

const (
	// CategoryNaN is the class of NaN. A NaN F64 comes from Unchecked, from the
	// IEEE artifacts of closed operations (0/0, Inf/Inf, +Inf·0), from a NaN raw
	// operand (Powf, Hypot) or from a math method outside its domain.
	CategoryNaN Category = iota
	// CategoryInfinite is the class of +Inf (and -Inf produced by dividing by -0.0).
	CategoryInfinite
	// CategoryZero is the class of +0.0 and -0.0.
	CategoryZero
	// CategorySubnormal is the class of values below the smallest normal magnitude.
	CategorySubnormal
	// CategoryNormal is the class of every other finite value.
	CategoryNormal
)

// String returns the lower-case class name.
func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "nan"
	case CategoryInfinite:
		return "infinite"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	default:
		return "unknown"
	}
}
