// SPDX-License-Identifier: MIT

package genomic

import (
	"fmt"

	"github.com/katalvlaran/breedlab/matrix"
)

// Build returns G, the centred matrix, allele frequencies and the scale for
// an n×m genotype table.
//
// Errors:
//   - ErrStructural: empty or ragged input, NaN/Inf, or ErrInvalidGenotype.
//   - ErrNumerical wrapping ErrMonomorphic: s = 0.
func Build(genotypes [][]float64) (*Result, error) {
	m, err := matrix.NewFromRows(genotypes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}

	return build(m)
}

// BuildMatrix is Build for a genotype table already held as a matrix.
// genotypes is never mutated.
func BuildMatrix(genotypes matrix.Matrix) (*Result, error) {
	if err := matrix.ValidateNotNil(genotypes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}

	return build(genotypes)
}

func build(m matrix.Matrix) (*Result, error) {
	n, markers := m.Rows(), m.Cols()

	// Stage 1: validate coding.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < markers; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrStructural, err)
			}
			if v != 0 && v != 1 && v != 2 {
				return nil, fmt.Errorf("%w: %w: M[%d][%d]=%g", ErrStructural, ErrInvalidGenotype, i, j, v)
			}
		}
	}

	// Stage 2: Z = M − 2p. The column means of M are the 2p_j.
	z, means, err := matrix.CenterColumns(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	freqs := make([]float64, markers)
	var scale float64
	for j = range means {
		freqs[j] = means[j] / 2
		scale += 2 * freqs[j] * (1 - freqs[j])
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %w (%d markers)", ErrNumerical, ErrMonomorphic, markers)
	}

	// Stage 3: G = ZZᵀ/s.
	zt, err := matrix.Transpose(z)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	zzt, err := matrix.Mul(z, zt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	g, err := matrix.Scale(zzt, 1/scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumerical, err)
	}

	return &Result{G: g, Z: z, Freqs: freqs, Scale: scale}, nil
}
