package poly

import (
	"math"
	"strconv"
	"strings"
)

// New returns an empty polynomial (zero terms).
func New() *Polynomial {
	return &Polynomial{}
}

// FromTerm returns a polynomial holding t, or an empty polynomial when
// |t.Coefficient| ≤ Epsilon (zero terms are never persisted).
func FromTerm(t Term) *Polynomial {
	p := New()
	if !nearZero(t.Coefficient) {
		p.terms = append(p.terms, t)
	}

	return p
}

// FromPair is the explicit (degree, coefficient) → one-term polynomial
// promotion. The pair-overload sugar in ops.go delegates through it; the
// same zero-coefficient filter as FromTerm applies.
func FromPair(degree, coefficient float64) *Polynomial {
	return FromTerm(Term{Degree: degree, Coefficient: coefficient})
}

// FromTerms bulk-loads a polynomial from ts. Each term passes the
// zero-coefficient filter independently and is appended in input order.
//
// Unlike AddMember, FromTerms does NOT reject duplicate degrees: two
// input terms within Epsilon in degree are both stored. Bulk load is the
// permissive path; AddMember is the strict one. This asymmetry is
// intentional — callers that need uniqueness enforced should insert
// term-by-term through AddMember.
func FromTerms(ts []Term) *Polynomial {
	p := New()
	for _, t := range ts {
		if !nearZero(t.Coefficient) {
			p.terms = append(p.terms, t)
		}
	}

	return p
}

// Clone returns a deep copy of p: same terms, independent storage.
func (p *Polynomial) Clone() *Polynomial {
	c := New()
	if len(p.terms) > 0 {
		c.terms = make([]Term, len(p.terms))
		copy(c.terms, p.terms)
	}

	return c
}

// Count returns the number of stored terms.
func (p *Polynomial) Count() int {
	return len(p.terms)
}

// IsZero reports whether p has no terms (the zero polynomial).
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Degree returns the polynomial's degree — the maximum degree among its
// stored terms. It returns ErrEmptyPolynomial when no terms exist, since
// the maximum is undefined on an empty set.
func (p *Polynomial) Degree() (float64, error) {
	if len(p.terms) == 0 {
		return 0, ErrEmptyPolynomial
	}

	max := math.Inf(-1)
	for _, t := range p.terms {
		if t.Degree > max {
			max = t.Degree
		}
	}

	return max, nil
}

// Find returns the stored term whose degree matches degree within
// Epsilon, and whether such a term exists. When bulk construction left
// several terms on the same degree, the first stored match wins.
func (p *Polynomial) Find(degree float64) (Term, bool) {
	if i := p.indexOf(degree); i >= 0 {
		return p.terms[i], true
	}

	return Term{}, false
}

// Contains reports whether a term with a matching degree is stored.
func (p *Polynomial) Contains(degree float64) bool {
	return p.indexOf(degree) >= 0
}

// AddMember appends t to the polynomial. It is the strict insertion
// path:
//
//   - a coefficient of exactly zero returns ErrZeroCoefficient;
//   - a degree already present (within Epsilon) returns ErrDuplicateDegree.
//
// On error the polynomial is left unmodified.
func (p *Polynomial) AddMember(t Term) error {
	if t.Coefficient == 0 {
		return ErrZeroCoefficient
	}
	if p.indexOf(t.Degree) >= 0 {
		return ErrDuplicateDegree
	}
	p.terms = append(p.terms, t)

	return nil
}

// RemoveMember removes the term matching degree within Epsilon and
// reports whether a removal occurred. Absence is not an error.
func (p *Polynomial) RemoveMember(degree float64) bool {
	i := p.indexOf(degree)
	if i < 0 {
		return false
	}
	p.terms = append(p.terms[:i], p.terms[i+1:]...)

	return true
}

// Coefficient is the indexed get: it returns the coefficient of the term
// matching degree within Epsilon, or 0 when absent. It never errors.
func (p *Polynomial) Coefficient(degree float64) float64 {
	if i := p.indexOf(degree); i >= 0 {
		return p.terms[i].Coefficient
	}

	return 0
}

// SetCoefficient is the indexed set and the package's single mutation
// primitive — the arithmetic in ops.go routes every write through it:
//
//   - |coeff| ≤ Epsilon: remove the matching term if present, otherwise
//     do nothing (zero terms are never persisted);
//   - otherwise: overwrite the matching term's coefficient (its stored
//     degree stays untouched), or append a new term when none matches.
func (p *Polynomial) SetCoefficient(degree, coeff float64) {
	i := p.indexOf(degree)
	if nearZero(coeff) {
		if i >= 0 {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)
		}

		return
	}
	if i >= 0 {
		p.terms[i].Coefficient = coeff

		return
	}
	p.terms = append(p.terms, Term{Degree: degree, Coefficient: coeff})
}

// Terms returns a snapshot of the stored terms in their internal order.
// The result is independent storage: mutating it does not affect the
// polynomial, and later mutation of the polynomial does not affect it.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, len(p.terms))
	copy(out, p.terms)

	return out
}

// String renders the polynomial for debugging and examples, e.g.
// "3x^2 + 1" or "0" for the empty polynomial. Formatting only — lvlpoly
// does not parse string representations back.
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, t := range p.terms {
		c := t.Coefficient
		if i == 0 {
			if c < 0 {
				sb.WriteString("-")
				c = -c
			}
		} else {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case t.Degree == 0:
			sb.WriteString(trimFloat(c))
		case c == 1:
			sb.WriteString("x" + expSuffix(t.Degree))
		default:
			sb.WriteString(trimFloat(c) + "x" + expSuffix(t.Degree))
		}
	}

	return sb.String()
}

// indexOf returns the position of the first term matching degree within
// Epsilon, or -1. Linear scan: term counts are small by design and the
// slice order is load-bearing for the permissive bulk path.
func (p *Polynomial) indexOf(degree float64) int {
	for i, t := range p.terms {
		if sameDegree(t.Degree, degree) {
			return i
		}
	}

	return -1
}

// trimFloat formats f without trailing zeros ("3", "0.5", "1.25").
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// expSuffix renders the "^d" part of a term; degree 1 needs none.
func expSuffix(degree float64) string {
	if degree == 1 {
		return ""
	}

	return "^" + trimFloat(degree)
}
