// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view every kernel accepts: relationship matrices,
// incidence (design) matrices and genotype tables all satisfy it through
// *Dense, and callers may supply their own storage.
// At and Set are O(1) and bounds-checked; Clone is O(r*c).
type Matrix interface {
	Rows() int
	Cols() int

	// At reads element (i, j); out-of-range indices yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes element (i, j); out-of-range indices yield ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
