// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the breedlab engines.
//
// What & Why:
//
//	Relationship matrices, design matrices and mixed-model coefficient matrices
//	are all small, dense, row-major float64 arrays. Dense stores them in a flat
//	slice and every kernel in this package works on the Matrix interface with a
//	fast path for *Dense operands.
//
// Kernels:
//
//	Add, Scale, Mul, Transpose, MatVec: element-wise and product kernels
//	LU, Inverse: Doolittle factorization without pivoting
//	FactorLUP, Solve: Gaussian elimination with partial pivoting, reusable factors
//	ColSums, CenterColumns: column statistics (allele counts, genotype centring)
//	Cond: 2-norm condition number (gonum backed)
//
// Errors:
//
//	All kernels return package sentinels (ErrDimensionMismatch, ErrSingular, ...)
//	wrapped as "<Op>: <sentinel>"; match them with errors.Is.
//
// Determinism:
//
//	Every loop runs in a fixed i→j(→k) order, so identical inputs produce
//	bit-identical outputs on the same platform.
//
// Complexity:
//
//	Element-wise kernels are O(r*c). Mul is O(r*n*c). LU, Inverse and Solve are O(n³).
//	There is no sparse storage: at thousands of animals the O(n³) solves dominate
//	and an iterative or sparse method is required instead.
package matrix
