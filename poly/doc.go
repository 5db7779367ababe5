// Package poly models a univariate polynomial as a sparse collection of
// (degree, coefficient) terms, with term-level mutation and the three
// ring operations: addition, subtraction, multiplication.
//
// 🚀 What is poly?
//
//	One value type — Polynomial — owning its Term records, plus:
//	  • Construction: New (empty), FromTerm / FromPair (single term),
//	    FromTerms (permissive bulk load)
//	  • Access: Count, Degree, Find, Contains, Coefficient, Terms
//	  • Mutation: AddMember (strict), RemoveMember, SetCoefficient
//	  • Arithmetic: Add, Sub, Mul — package-level binary forms, method
//	    forms, and (degree, coefficient) pair overloads
//
// ⚙️ Numeric policy:
//
//	A single tolerance, Epsilon = 1e-5, governs everything numeric:
//	a coefficient with |c| ≤ Epsilon counts as zero and is never stored;
//	two degrees closer than Epsilon are the same degree. Every entry
//	point funnels through the same two helpers, so Find, AddMember,
//	RemoveMember and the indexed accessor can never disagree about
//	equality.
//
// Two insertion paths with different strictness — on purpose:
//
//   - FromTerms is permissive: it filters zero coefficients but appends
//     duplicate degrees as-is (bulk load mirrors the input).
//   - AddMember is strict: an exactly-zero coefficient returns
//     ErrZeroCoefficient, a colliding degree returns ErrDuplicateDegree,
//     and the polynomial stays untouched on error.
//
// SetCoefficient is the single mutation primitive: set-to-zero removes,
// set-to-nonzero overwrites or inserts. The arithmetic routes every
// coefficient write through it, which is how cancelling terms (e.g.
// 3x² + (−3x²)) vanish from a sum instead of lingering as zeros.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlpoly/poly"
//
//	p := poly.FromTerms([]poly.Term{{Degree: 2, Coefficient: 3}, {Degree: 0, Coefficient: 1}}) // 3x² + 1
//	q := poly.FromTerms([]poly.Term{{Degree: 2, Coefficient: -3}, {Degree: 1, Coefficient: 5}}) // −3x² + 5x
//
//	sum, err := poly.Add(p, q) // 5x + 1 — the x² terms cancel
//	prod, err := poly.Mul(p, q) // −9x⁴ + 15x³ + 3x² + 5x
//
// Errors:
//   - ErrNilPolynomial   — nil operand to Add/Sub/Mul/Negate.
//   - ErrZeroCoefficient — AddMember with an exactly-zero coefficient.
//   - ErrDuplicateDegree — AddMember onto an occupied degree.
//   - ErrEmptyPolynomial — Degree of the zero-term polynomial.
//
// Concurrency:
//
//	No internal locking. Arithmetic only reads its operands and
//	allocates a fresh result, so concurrent readers of one polynomial
//	are safe as long as no mutator runs at the same time; anything more
//	needs external synchronization.
//
// Performance:
//
//   - Add/Sub: O(n·m) degree lookups
//   - Mul:     O(n·m) term pairs, each a lookup in the accumulating result
//
// See examples in example_test.go.
package poly
