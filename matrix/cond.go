// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cond returns the 2-norm condition number κ₂(m) = σ_max/σ_min.
// A singular matrix reports +Inf; callers decide whether that is fatal.
//
// The SVD behind it comes from gonum; only this diagnostic crosses into
// gonum types, the solvers themselves stay on Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n³).
func Cond(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	// gonum takes ownership of the slice it is given, so pass a copy.
	g := mat.NewDense(d.r, d.c, d.clone().data)
	k := mat.Cond(g, 2)
	if math.IsNaN(k) {
		return math.Inf(1), nil
	}

	return k, nil
}
