package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvlpoly/poly"
)

// makePolynomial builds a dense-ish polynomial with n terms on integer
// degrees 0..n-1 and alternating-sign coefficients.
func makePolynomial(n int) *poly.Polynomial {
	p := poly.New()
	for i := 0; i < n; i++ {
		c := float64(i%7 + 1)
		if i%2 == 1 {
			c = -c
		}
		p.SetCoefficient(float64(i), c)
	}

	return p
}

// benchmarkAdd runs Add over two n-term and m-term polynomials.
func benchmarkAdd(b *testing.B, n, m int) {
	p := makePolynomial(n)
	q := makePolynomial(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Add(p, q); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// benchmarkMul runs Mul over two n-term and m-term polynomials.
func benchmarkMul(b *testing.B, n, m int) {
	p := makePolynomial(n)
	q := makePolynomial(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Mul(p, q); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkAdd_Small benchmarks addition of two 16-term polynomials.
func BenchmarkAdd_Small(b *testing.B) { benchmarkAdd(b, 16, 16) }

// BenchmarkAdd_Medium benchmarks addition of two 128-term polynomials.
func BenchmarkAdd_Medium(b *testing.B) { benchmarkAdd(b, 128, 128) }

// BenchmarkMul_Small benchmarks multiplication of two 16-term polynomials.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 16, 16) }

// BenchmarkMul_Medium benchmarks multiplication of two 64-term polynomials.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 64, 64) }
