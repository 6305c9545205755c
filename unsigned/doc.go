// SPDX-License-Identifier: MIT

// Package unsigned provides F64, a float64 that is guaranteed to be
// non-negative (zero included) by construction.
//
// 🚀 What is F64?
//
//	A tiny value type wrapping one float64. The payload is unexported, so a
//	negative number can only enter through the explicitly named Unchecked
//	bypass. Code that receives an F64 never has to re-check the sign before
//	taking a square root, a logarithm of a probability or a distance.
//
// ✨ Key features:
//   - validated constructors: New (comma-ok) and TryFrom (error)
//   - always-valid constructors: Abs, Square, FromUnsigned
//   - closure-aware arithmetic: Add/Mul/Div keep F64, Sub/Neg drop to float64
//   - forwarded math surface re-typed per operation (Sqrt → F64, Ln → float64)
//   - constants (Pi, E, Tau, Infinity, …) at the F64 type
//   - text, JSON, YAML and database/sql codecs that validate on decode
//
// Closure table:
//
//	F64 + F64 → F64        F64 + float64 → float64
//	F64 − F64 → float64    F64 − float64 → float64
//	F64 × F64 → F64        F64 × float64 → float64
//	F64 ÷ F64 → F64        F64 ÷ float64 → float64
//	−F64      → float64
//	AddAssign / MulAssign / DivAssign mutate in place; there is no SubAssign.
//
// The invariant is "v >= 0" under IEEE comparison. That admits -0.0 and +Inf
// and rejects NaN. Two consequences are kept on purpose:
//
//   - -0.0 carries a negative sign bit. Signum, Copysign, IsSignNegative and
//     division by -0.0 (which yields -Inf) expose it. Construction never
//     normalizes -0.0 to +0.0.
//   - Closed operations do not re-validate their result, so the IEEE
//     artifacts 0/0, Inf/Inf and +Inf·0 produce a NaN inside F64.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nonneg/unsigned"
//
//	dx, dy := 3.0-5.0, 4.0-12.0
//	d := unsigned.Square(dx).Add(unsigned.Square(dy)).Sqrt()
//	fmt.Println(d) // 8.246211251235321
//
// Concurrency: F64 is a plain value; copies are independent and no operation
// touches shared state.
package unsigned
