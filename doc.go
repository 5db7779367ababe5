// Package lvlpoly is your in-memory toolkit for building and combining
// sparse univariate polynomials — from term-level edits to the full set
// of ring operations.
//
// 🚀 What is lvlpoly?
//
//	A small, focused library that models a polynomial as a sparse
//	collection of (degree, coefficient) terms and brings together:
//		• Construction: empty, single-term, or permissive bulk load
//		• Term access: lookup, membership, coefficient get/set by degree
//		• Mutation: strict single-term insertion, removal by degree
//		• Arithmetic: addition, subtraction, multiplication — fresh
//		  results every time, operands never touched
//
// ✨ Why choose lvlpoly?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – one tolerance (poly.Epsilon) governs both
//     coefficient-zero tests and degree equality, everywhere
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors matched with errors.Is, no panics
//     on user input
//
// Under the hood, everything is organized under one subpackage:
//
//	poly/ — the Polynomial and Term types, construction, mutation and
//	        the ring operations (Add, Sub, Mul)
//
// Quick sketch:
//
//	p = 3x² + 1        q = −3x² + 5x
//	p + q = 5x + 1     (the x² terms cancel and are dropped)
//	p · q = −9x⁴ + 15x³ + 3x² + 5x
//
// Dive into poly/doc.go for the full API walkthrough and numeric policy.
//
//	go get github.com/katalvlaran/lvlpoly/poly
package lvlpoly
