// Package poly: sentinel error set.
// All user-triggered failures return one of these sentinels; tests and
// callers match them via errors.Is. No operation panics on user input,
// and no operation leaves its receiver partially mutated after an error.

package poly

import "errors"

var (
	// ErrNilPolynomial indicates that an arithmetic operation received a
	// nil operand (either side of the package-level form, or the receiver
	// or argument of a method form).
	ErrNilPolynomial = errors.New("poly: nil polynomial operand")

	// ErrZeroCoefficient indicates that AddMember was given a term whose
	// coefficient is exactly zero. Note the asymmetry with the
	// constructors and the indexed setter, which silently drop any
	// coefficient with |c| ≤ Epsilon: AddMember is the strict entry
	// point and rejects only the exact zero.
	ErrZeroCoefficient = errors.New("poly: term coefficient is zero")

	// ErrDuplicateDegree indicates that AddMember was given a term whose
	// degree collides (within Epsilon) with a term already stored.
	ErrDuplicateDegree = errors.New("poly: term degree already present")

	// ErrEmptyPolynomial indicates that Degree was queried on a
	// polynomial with no terms, where the maximum degree is undefined.
	ErrEmptyPolynomial = errors.New("poly: polynomial has no terms")
)
