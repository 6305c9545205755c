// Package nonneg is a small toolkit around one idea: a float64 that the
// compiler guarantees is never negative.
//
// 🚀 What is in nonneg?
//
//	unsigned/      — F64, the non-negative float64: validated constructors,
//	                 closure-aware arithmetic, forwarded math functions,
//	                 constants, and text/JSON/YAML/SQL codecs
//	euclid/        — Euclidean distance and norm computed entirely in F64
//	cmd/distance/  — command-line demonstration of the distance idiom
//
// ✨ Why a type instead of a check?
//
//   - A negative value reaching Sqrt, a probability or a distance is caught
//     where it enters the program, not where it explodes.
//   - Operations that preserve non-negativity (Add, Mul, Div, Sqrt, Exp, …)
//     keep the type; those that do not (Sub, Neg, Ln, Sin, …) return float64,
//     so re-validation is forced exactly where it is needed.
//   - Pure Go, no cgo in the library, no allocation, no hidden state.
//
// Quick example:
//
//	d := unsigned.Square(3-5).Add(unsigned.Square(4-12)).Sqrt()
//	fmt.Println(d) // 8.246211251235321
//
//	go get github.com/katalvlaran/nonneg/unsigned
package nonneg
