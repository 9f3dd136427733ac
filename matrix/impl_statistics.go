// SPDX-License-Identifier: MIT
// Column statistics over the canonical kernels.
//
// Exposed API:
//   - ColSums(X)       -> sums      // Σ_i X[i,j]
//   - CenterColumns(X) -> (Xc, means) // X − mean(X, by columns)
//
// Determinism:
//   - Fixed i→j traversal; *Dense operands use the flat buffer directly.

package matrix

const (
	opColSums       = "ColSums"
	opCenterColumns = "CenterColumns"
)

// ColSums returns c where c[j] = Σ_i m[i,j].
// Composition: TransposeVec with a ones vector. Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	ones := make([]float64, m.Rows())
	for i := range ones {
		ones[i] = 1.0
	}
	sums, err := TransposeVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return sums, nil
}

// CenterColumns returns a centred copy Xc[i,j] = X[i,j] − mean_j and the
// column means (length Cols(X)). X is never mutated.
//
// Implementation:
//   - Stage 1: ColSums, then divide by the row count.
//   - Stage 2: Broadcast-subtract the means into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (validation); wrapped materialization errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	invR := 1.0 / float64(r)
	for j := range means {
		means[j] *= invR
	}

	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] - means[j]
		}
	}

	return out, means, nil
}
