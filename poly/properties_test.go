package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvlpoly/poly"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPolynomial builds sparse polynomials with integer coefficients on
// degrees 0..len-1. Integer coefficients keep the additive properties
// exact: sums and differences introduce no floating-point residue near
// the Epsilon drop threshold, so cancellation is all-or-nothing.
func genPolynomial() gopter.Gen {
	return gen.SliceOf(gen.IntRange(-50, 50)).Map(func(coeffs []int) *poly.Polynomial {
		p := poly.New()
		for i, c := range coeffs {
			p.SetCoefficient(float64(i), float64(c))
		}

		return p
	})
}

// TestProperties_RingLaws checks the algebraic laws of the three ring
// operations over randomly generated sparse polynomials.
func TestProperties_RingLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("p + q == q + p", prop.ForAll(
		func(p, q *poly.Polynomial) bool {
			left, err := poly.Add(p, q)
			if err != nil {
				return false
			}
			right, err := poly.Add(q, p)
			if err != nil {
				return false
			}

			return poly.Equal(left, right)
		},
		genPolynomial(), genPolynomial(),
	))

	properties.Property("p * q == q * p", prop.ForAll(
		func(p, q *poly.Polynomial) bool {
			left, err := poly.Mul(p, q)
			if err != nil {
				return false
			}
			right, err := poly.Mul(q, p)
			if err != nil {
				return false
			}

			return poly.Equal(left, right)
		},
		genPolynomial(), genPolynomial(),
	))

	properties.Property("(p + q) - q == p", prop.ForAll(
		func(p, q *poly.Polynomial) bool {
			sum, err := poly.Add(p, q)
			if err != nil {
				return false
			}
			back, err := poly.Sub(sum, q)
			if err != nil {
				return false
			}

			return poly.Equal(p, back)
		},
		genPolynomial(), genPolynomial(),
	))

	properties.Property("p - q == -(q - p)", prop.ForAll(
		func(p, q *poly.Polynomial) bool {
			left, err := poly.Sub(p, q)
			if err != nil {
				return false
			}
			flipped, err := poly.Sub(q, p)
			if err != nil {
				return false
			}
			right, err := poly.Negate(flipped)
			if err != nil {
				return false
			}

			return poly.Equal(left, right)
		},
		genPolynomial(), genPolynomial(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProperties_ZeroFilter checks that no constructor and no indexed
// write ever persists a coefficient with |c| ≤ Epsilon.
func TestProperties_ZeroFilter(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("FromTerms drops near-zero coefficients", prop.ForAll(
		func(degree, tiny float64) bool {
			p := poly.FromTerms([]poly.Term{{Degree: degree, Coefficient: tiny}})

			return p.Count() == 0
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-poly.Epsilon, poly.Epsilon),
	))

	properties.Property("SetCoefficient drops near-zero coefficients", prop.ForAll(
		func(degree, tiny float64) bool {
			p := poly.FromPair(degree, 7)
			p.SetCoefficient(degree, tiny)

			return p.Count() == 0
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-poly.Epsilon, poly.Epsilon),
	))

	properties.Property("stored terms always carry |c| > Epsilon", prop.ForAll(
		func(p *poly.Polynomial) bool {
			for _, term := range p.Terms() {
				if c := term.Coefficient; -poly.Epsilon <= c && c <= poly.Epsilon {
					return false
				}
			}

			return true
		},
		genPolynomial(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
