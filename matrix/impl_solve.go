// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// SingularTol is the relative pivot threshold used by FactorLUP: a pivot whose
// magnitude is below SingularTol·max|A| is treated as zero.
const SingularTol = 1e-12

// LUP is a row-pivoted factorization P·A = L·U of a square matrix.
// It is immutable once built and may be reused for any number of right-hand sides.
type LUP struct {
	// lu holds U on and above the diagonal and the multipliers of the
	// unit-lower L strictly below it.
	lu *Dense
	// perm[i] is the row of A that ends up in row i.
	perm []int
}

// Size returns n for an n×n factorization.
func (f *LUP) Size() int { return f.lu.r }

// FactorLUP factors A with Gaussian elimination and partial (row) pivoting on a
// private copy of A.
//
// Implementation:
//   - Stage 1: Validate A square; derive the scale-aware pivot threshold.
//   - Stage 2: For each column k pick the row with the largest |A[r,k]| (r ≥ k),
//     swap it into place, and eliminate below the pivot, storing multipliers.
//
// Behavior highlights:
//   - Ties between equal pivot magnitudes resolve to the lowest row index, so the
//     elimination order (and therefore every rounding) is reproducible.
//   - A is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular (best pivot below SingularTol·max|A|, or A is all zeros).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func FactorLUP(a Matrix) (*LUP, error) {
	f, err := factorLUP(a)
	if err != nil {
		return nil, matrixErrorf(opFactorLUP, err)
	}

	return f, nil
}

func factorLUP(a Matrix) (*LUP, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	src, err := asDense(a)
	if err != nil {
		return nil, err
	}
	n := src.r
	w := src.clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var maxAbs float64
	for _, v := range w.data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	if maxAbs == 0 {
		return nil, ErrSingular
	}
	tol := SingularTol * maxAbs

	var (
		i, j, k, p int
		best, m    float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if av := math.Abs(w.data[i*n+k]); av > best {
				p, best = i, av
			}
		}
		if best <= tol {
			return nil, fmt.Errorf("pivot %d below %.3g: %w", k, tol, ErrSingular)
		}
		if p != k {
			// Whole rows move, so earlier multipliers follow their row.
			swapRows(w, p, k)
			perm[p], perm[k] = perm[k], perm[p]
		}

		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			m = w.data[rowI+k] / w.data[rowK+k]
			w.data[rowI+k] = m
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[rowI+j] -= m * w.data[rowK+j]
			}
		}
	}

	return &LUP{lu: w, perm: perm}, nil
}

// Solve returns x with A·x = b for the factored A. b is not mutated.
//
// Errors:
//   - ErrDimensionMismatch (len(b) ≠ n), ErrNaNInf (non-finite b).
//
// Complexity:
//   - Time O(n²).
func (f *LUP) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	x := make([]float64, n)
	var (
		i, k int
		sum  float64
		d    = f.lu.data
	)
	for i = 0; i < n; i++ {
		x[i] = b[f.perm[i]]
	}
	// Forward: L·z = P·b, column by column.
	for k = 0; k < n; k++ {
		if x[k] == 0 {
			continue
		}
		for i = k + 1; i < n; i++ {
			x[i] -= d[i*n+k] * x[k]
		}
	}
	// Backward: U·x = z.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum / d[i*n+i]
	}

	return x, nil
}

// Solve returns x such that A·x = b. It is FactorLUP followed by LUP.Solve;
// factor once instead when several right-hand sides share A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNaNInf (non-finite entries in b).
//   - ErrSingular (see FactorLUP).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := factorLUP(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// swapRows exchanges rows r1 and r2 of d in place.
func swapRows(d *Dense, r1, r2 int) {
	c := d.c
	a := d.data[r1*c : (r1+1)*c]
	b := d.data[r2*c : (r2+1)*c]
	for j := 0; j < c; j++ {
		a[j], b[j] = b[j], a[j]
	}
}
