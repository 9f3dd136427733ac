// SPDX-License-Identifier: MIT
// Public API facades of package matrix.
//
// Purpose:
//   - Provide thin entry points for common tasks across the engines.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CrossProduct returns aᵀ·b, the building block of normal equations (XᵀX, XᵀZ, ...).
// Composition: Transpose → Mul. Complexity: O(r*ca*cb).
func CrossProduct(a, b Matrix) (*Dense, error) {
	at, err := Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("CrossProduct: %w", err)
	}
	out, err := Mul(at, b)
	if err != nil {
		return nil, fmt.Errorf("CrossProduct: %w", err)
	}

	return out, nil
}

// TransposeVec returns aᵀ·x without materializing aᵀ.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != a.Rows()).
// Complexity: O(r*c).
func TransposeVec(a Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Rows()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		if x[i] == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out[j] += d.data[base+j] * x[i]
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (false, nil) on the first violation; shape errors are reported as errors.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for idx, av := range da.data {
		bv := db.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
