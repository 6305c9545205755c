package euclid

import "github.com/katalvlaran/nonneg/unsigned"

// Distance2D returns the Euclidean distance between two points of the plane.
//
// Complexity: O(1).
func Distance2D(p, q [2]float64) unsigned.F64 {
	return unsigned.Square(p[0] - q[0]).Add(unsigned.Square(p[1] - q[1])).Sqrt()
}

// SquaredDistance returns Σ (a[i] - b[i])².
//
// Returns ErrEmptyInput if either vector is empty and ErrDimensionMismatch if
// their lengths differ.
//
// Complexity: O(n).
func SquaredDistance(a, b []float64) (unsigned.F64, error) {
	if err := validatePair(a, b); err != nil {
		return unsigned.Zero, err
	}

	var sum unsigned.F64
	for i := range a {
		sum.AddAssign(unsigned.Square(a[i] - b[i]))
	}

	return sum, nil
}

// Distance returns the Euclidean distance between a and b, i.e. the square
// root of SquaredDistance. Errors are those of SquaredDistance.
//
// Complexity: O(n).
func Distance(a, b []float64) (unsigned.F64, error) {
	sq, err := SquaredDistance(a, b)
	if err != nil {
		return unsigned.Zero, err
	}

	return sq.Sqrt(), nil
}

// Norm returns the Euclidean length of v. The norm of an empty vector is 0.
//
// Complexity: O(n).
func Norm(v []float64) unsigned.F64 {
	var sum unsigned.F64
	for _, x := range v {
		sum.AddAssign(unsigned.Square(x))
	}

	return sum.Sqrt()
}

// validatePair checks the shape preconditions shared by the pairwise helpers.
func validatePair(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}
