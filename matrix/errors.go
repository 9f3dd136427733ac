// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Kernels check in this order: nil, shape, dimension mismatch, then numeric
// (NaN/Inf, singular). Callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged is returned when a [][]float64 input has rows of unequal length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero (or numerically negligible) pivot is
	// encountered during LU, Inverse or Solve.
	ErrSingular = errors.New("matrix: singular matrix")
)
