// SPDX-License-Identifier: MIT

package genomic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/breedlab/matrix"
)

var (
	// ErrStructural marks a genotype matrix whose shape or coding is unusable.
	ErrStructural = errors.New("genomic: structural input error")

	// ErrNumerical marks genotypes whose values leave G undefined.
	ErrNumerical = errors.New("genomic: numerical error")

	// ErrInvalidGenotype is returned for a dosage outside {0, 1, 2}.
	ErrInvalidGenotype = errors.New("genomic: genotype must be 0, 1 or 2")

	// ErrMonomorphic is returned when every marker is fixed (scale s = 0).
	ErrMonomorphic = errors.New("genomic: all markers monomorphic")

	// ErrNegativeRidge is returned by Regularized for λ < 0, NaN or +Inf.
	ErrNegativeRidge = errors.New("genomic: ridge must be finite and non-negative")
)

// Result is the output of Build.
type Result struct {
	// G is the n×n genomic relationship matrix.
	G *matrix.Dense
	// Z is the n×m centred genotype matrix M − 2p.
	Z *matrix.Dense
	// Freqs holds the frequency p_j of the counted allele per marker.
	Freqs []float64
	// Scale is s = 2·Σ p_j(1 − p_j); always > 0 in a returned Result.
	Scale float64
}

// Regularized returns G + λI. G is singular whenever n exceeds the number of
// informative markers, or two animals share a genotype; a small ridge makes it
// invertible so it can replace A in the mixed-model equations.
func (r *Result) Regularized(lambda float64) (*matrix.Dense, error) {
	if !(lambda >= 0) || math.IsInf(lambda, 1) {
		return nil, fmt.Errorf("%w: λ=%g", ErrNegativeRidge, lambda)
	}
	id, err := matrix.NewIdentity(r.G.Rows())
	if err != nil {
		return nil, err
	}
	ridge, err := matrix.Scale(id, lambda)
	if err != nil {
		return nil, err
	}

	return matrix.Add(r.G, ridge)
}
