// Package poly: core value types and the numeric policy.
package poly

import "math"

// Numeric policy.
const (
	// Epsilon is the non-negative tolerance used across the whole package.
	// It plays two roles, deliberately tied to a single constant:
	//
	//   - a coefficient with |c| ≤ Epsilon counts as zero and is never
	//     persisted by the constructors or the indexed setter;
	//   - two degrees closer than Epsilon are considered the same degree
	//     by Find, Contains, AddMember, RemoveMember and the indexed
	//     accessor.
	//
	// All tolerance checks go through nearZero and sameDegree below, so
	// equality semantics cannot drift between entry points.
	Epsilon = 1e-5
)

// Term is a single (degree, coefficient) pair — the atomic unit of a
// polynomial's sparse representation. Degree identifies the term within
// its polynomial; only the coefficient is meant to change after creation,
// and only through the owning Polynomial's mutation methods.
type Term struct {
	Degree      float64
	Coefficient float64
}

// Polynomial is a sparse univariate polynomial: an ordered sequence of
// terms with pairwise-distinct degrees (within Epsilon) and non-zero
// coefficients (above Epsilon). Insertion order is an implementation
// detail and carries no semantic meaning.
//
// The zero value is a valid empty polynomial, but the constructors in
// polynomial.go are the intended entry points.
//
// A Polynomial owns its term slice exclusively: Terms() hands out copies,
// and the arithmetic in ops.go always allocates a fresh result. There is
// no internal locking — treat each instance as owned by a single
// goroutine, or add external synchronization when a mutator
// (AddMember, RemoveMember, SetCoefficient) may run concurrently with
// readers.
type Polynomial struct {
	terms []Term
}

// nearZero reports whether c counts as a zero coefficient under Epsilon.
func nearZero(c float64) bool {
	return math.Abs(c) <= Epsilon
}

// sameDegree reports whether a and b identify the same term degree.
func sameDegree(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
