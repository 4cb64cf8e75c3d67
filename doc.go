// Package intmatrix is a small library for exact integer matrix arithmetic,
// built around a recursive cofactor (Laplace) determinant.
//
// 🚀 What is intmatrix?
//
//	A dependency-light Go library that brings together:
//		• Dense integer matrices with 1-based coordinates and strict validation
//		• Structural predicates: square, zero, identity, shape, transpose checks
//		• Kernels: add, subtract, scale, transpose, dot product, product
//		• Determinant engine: recursive first-row expansion with minors,
//		  cofactors and per-call recursion statistics
//		• intmat: a command-line front end for all of the above
//
// ✨ Why choose intmatrix?
//
//   - Exact: Go int arithmetic, no floating-point rounding
//   - Predictable: sentinel errors matched with errors.Is, no panics on input
//   - Transparent: Expand reports recursion depth and minors built
//
// Layout:
//
//	matrix/           : Matrix interface, Dense, kernels, determinant engine
//	internal/literal/ : "1,2;3,4" matrix literals for the CLI
//	cmd/intmat/       : cobra/viper command-line tool
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{3, 5}, {2, 4}})
//	d, _ := matrix.Determinant(m) // 2
//
// Cofactor expansion costs O(n!) operations; bound untrusted input with
// matrix.WithMaxOrder.
package intmatrix
