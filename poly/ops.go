package poly

// Ring operations over sparse polynomials.
//
// The package-level functions Add, Sub and Mul are the canonical "binary
// operator" forms: they validate both operands and carry the actual
// algorithms. The method forms and the (degree, coefficient) pair
// overloads below are thin convenience layers that delegate — logic
// lives in exactly one place.
//
// Every operation reads its operands and allocates a fresh result;
// neither input is ever mutated. All coefficient writes go through
// (*Polynomial).SetCoefficient, so cancellation to zero (within Epsilon)
// drops terms automatically.

// Add returns a + b. It errors with ErrNilPolynomial when either operand
// is nil. Addition is commutative; the empty polynomial is its identity.
//
// Complexity: O(n·m) degree lookups for n, m stored terms.
func Add(a, b *Polynomial) (*Polynomial, error) {
	if a == nil || b == nil {
		return nil, ErrNilPolynomial
	}

	r := a.Clone()
	for _, t := range b.terms {
		r.SetCoefficient(t.Degree, r.Coefficient(t.Degree)+t.Coefficient)
	}

	return r, nil
}

// Sub returns a - b. It errors with ErrNilPolynomial when either operand
// is nil. Not commutative: Sub(a, b) equals Negate(Sub(b, a)).
func Sub(a, b *Polynomial) (*Polynomial, error) {
	if a == nil || b == nil {
		return nil, ErrNilPolynomial
	}

	r := a.Clone()
	for _, t := range b.terms {
		r.SetCoefficient(t.Degree, r.Coefficient(t.Degree)-t.Coefficient)
	}

	return r, nil
}

// Mul returns a * b by distributive expansion: every term pair
// contributes coeffA·coeffB at degree degreeA+degreeB. It errors with
// ErrNilPolynomial when either operand is nil.
//
// Pairs where either coefficient is within Epsilon of zero are skipped.
// Stored terms never carry such coefficients, but Mul guards anyway so
// degenerate inputs cannot smuggle ghost terms into the product.
//
// Multiplication is commutative; FromPair(0, 1) is its identity and the
// empty polynomial annihilates any product. Complexity is O(n·m) term
// pairs — acceptable for sparse term sets, so no degree-indexed
// optimization is attempted.
func Mul(a, b *Polynomial) (*Polynomial, error) {
	if a == nil || b == nil {
		return nil, ErrNilPolynomial
	}

	r := New()
	for _, ta := range a.terms {
		if nearZero(ta.Coefficient) {
			continue
		}
		for _, tb := range b.terms {
			if nearZero(tb.Coefficient) {
				continue
			}
			d := ta.Degree + tb.Degree
			r.SetCoefficient(d, r.Coefficient(d)+ta.Coefficient*tb.Coefficient)
		}
	}

	return r, nil
}

// Negate returns -p: every coefficient sign-flipped. It errors with
// ErrNilPolynomial when p is nil.
func Negate(p *Polynomial) (*Polynomial, error) {
	if p == nil {
		return nil, ErrNilPolynomial
	}

	r := p.Clone()
	for i := range r.terms {
		r.terms[i].Coefficient = -r.terms[i].Coefficient
	}

	return r, nil
}

// Equal reports whether a and b hold the same terms: every degree of one
// is matched (within Epsilon) in the other with coefficients within
// Epsilon of each other. Two nil polynomials are equal; nil never equals
// non-nil.
func Equal(a, b *Polynomial) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.terms) != len(b.terms) {
		return false
	}
	for _, t := range a.terms {
		got, ok := b.Find(t.Degree)
		if !ok || !nearZero(got.Coefficient-t.Coefficient) {
			return false
		}
	}

	return true
}

// Add returns p + q. See the package-level Add.
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) {
	return Add(p, q)
}

// Sub returns p - q. See the package-level Sub.
func (p *Polynomial) Sub(q *Polynomial) (*Polynomial, error) {
	return Sub(p, q)
}

// Mul returns p * q. See the package-level Mul.
func (p *Polynomial) Mul(q *Polynomial) (*Polynomial, error) {
	return Mul(p, q)
}

// Negate returns -p. See the package-level Negate.
func (p *Polynomial) Negate() (*Polynomial, error) {
	return Negate(p)
}

// AddPair returns p + the single term (degree, coefficient). The pair is
// promoted through FromPair, so a near-zero coefficient degenerates to
// adding the empty polynomial.
func (p *Polynomial) AddPair(degree, coefficient float64) (*Polynomial, error) {
	return Add(p, FromPair(degree, coefficient))
}

// SubPair returns p - the single term (degree, coefficient).
func (p *Polynomial) SubPair(degree, coefficient float64) (*Polynomial, error) {
	return Sub(p, FromPair(degree, coefficient))
}

// MulPair returns p * the single term (degree, coefficient). A near-zero
// coefficient promotes to the empty polynomial, so the product is empty.
func (p *Polynomial) MulPair(degree, coefficient float64) (*Polynomial, error) {
	return Mul(p, FromPair(degree, coefficient))
}
