// Package euclid computes Euclidean distances and norms as unsigned.F64,
// staying inside the non-negative type from the first squared delta to the
// final square root.
//
// The chain is closed at every step:
//
//	unsigned.Square(a[i]-b[i])  → F64 (a square is never negative)
//	sum.Add(...)                → F64 (non-negative + non-negative)
//	sum.Sqrt()                  → F64 (never NaN on a non-negative input)
//
// so no intermediate result needs re-validation.
//
// ⚙️ Usage:
//
//	d := euclid.Distance2D([2]float64{3, 4}, [2]float64{5, 12})
//	fmt.Println(d) // 8.246211251235321
//
//	d, err := euclid.Distance([]float64{1, 2, 3}, []float64{4, 6, 3})
//	// d == 5, err == nil
//
// Errors:
//   - ErrEmptyInput         — a vector has no components.
//   - ErrDimensionMismatch  — vectors differ in length.
//
// Complexity: O(n) time, O(1) extra space for n components.
package euclid
