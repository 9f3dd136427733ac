// SPDX-License-Identifier: MIT

package mme

import (
	"fmt"
	"math"

	"github.com/katalvlaran/breedlab/matrix"
)

// Solve assembles and solves the mixed-model equations.
//
// Implementation:
//   - Stage 1: Validate shapes (structural) and variance components (numerical).
//   - Stage 2: Form X'X, X'Z, Z'X, Z'Z, X'y, Z'y and A⁻¹.
//   - Stage 3: Assemble the (p+q)×(p+q) LHS with A⁻¹α added to the Z'Z block.
//   - Stage 4: Factor the LHS once with partial pivoting; the same factors give
//     the solution and the animal-block diagonal of LHS⁻¹.
//
// Inputs:
//   - y: phenotypes, length n_obs.
//   - X: n_obs×p fixed-effect incidence.
//   - Z: n_obs×q animal incidence.
//   - A: q×q relationship matrix (must be invertible).
//   - sigmaE2, sigmaA2: residual and additive variances (> 0).
//
// Errors:
//   - ErrStructural: empty y, nil matrices, X or Z rows ≠ len(y), A not q×q.
//   - ErrNumerical: non-positive/non-finite variances or phenotypes,
//     singular A, singular LHS.
//
// Complexity:
//   - Time O((p+q)³ + n_obs·(p+q)² + q·(p+q)²), Space O((p+q)²).
func Solve(y []float64, X, Z, A matrix.Matrix, sigmaE2, sigmaA2 float64) (*Solution, error) {
	// Stage 1: structural checks first, then value checks.
	if err := validateShapes(y, X, Z, A); err != nil {
		return nil, err
	}
	if !positiveFinite(sigmaE2) || !positiveFinite(sigmaA2) {
		return nil, fmt.Errorf("%w: %w (σ²e=%g, σ²a=%g)", ErrNumerical, ErrNonPositiveVariance, sigmaE2, sigmaA2)
	}
	if err := matrix.ValidateFinite(y); err != nil {
		return nil, fmt.Errorf("%w: phenotypes: %w", ErrNumerical, err)
	}
	alpha := sigmaE2 / sigmaA2
	p, q := X.Cols(), Z.Cols()

	// Stage 2: normal-equation blocks.
	XtX, err := matrix.CrossProduct(X, X)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	XtZ, err := matrix.CrossProduct(X, Z)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	ZtZ, err := matrix.CrossProduct(Z, Z)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	Xty, err := matrix.TransposeVec(X, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	Zty, err := matrix.TransposeVec(Z, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	AInv, err := matrix.Inverse(A)
	if err != nil {
		return nil, fmt.Errorf("%w: relationship matrix: %w", ErrNumerical, err)
	}

	// Stage 3: assemble LHS and RHS. Z'X is read as the transpose of X'Z.
	dim := p + q
	lhs, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	rhs := make([]float64, dim)
	var (
		i, j int
		v, w float64
	)
	for i = 0; i < p; i++ {
		for j = 0; j < p; j++ {
			v, _ = XtX.At(i, j)
			_ = lhs.Set(i, j, v)
		}
		for j = 0; j < q; j++ {
			v, _ = XtZ.At(i, j)
			_ = lhs.Set(i, p+j, v)
			_ = lhs.Set(p+j, i, v)
		}
		rhs[i] = Xty[i]
	}
	for i = 0; i < q; i++ {
		for j = 0; j < q; j++ {
			v, _ = ZtZ.At(i, j)
			w, _ = AInv.At(i, j)
			_ = lhs.Set(p+i, p+j, v+alpha*w)
		}
		rhs[p+i] = Zty[i]
	}

	// Stage 4: factor once, solve, and derive diagnostics.
	lup, err := matrix.FactorLUP(lhs)
	if err != nil {
		return nil, fmt.Errorf("%w: coefficient matrix: %w", ErrNumerical, err)
	}
	sol, err := lup.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: coefficient matrix: %w", ErrNumerical, err)
	}
	cond, err := matrix.Cond(lhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumerical, err)
	}
	rel, err := reliabilities(lup, p, q, alpha)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumerical, err)
	}

	return &Solution{
		Fixed:       sol[:p:p],
		Breeding:    sol[p:],
		LHS:         lhs,
		RHS:         rhs,
		AInv:        AInv,
		Alpha:       alpha,
		Cond:        cond,
		Reliability: rel,
	}, nil
}

// reliabilities returns 1 − α·C^{aa}_{ii} for each animal, where C = LHS⁻¹.
// PEV_i = C^{aa}_{ii}·σ²e, so PEV_i/σ²a = α·C^{aa}_{ii}.
// Each diagonal element costs one O((p+q)²) substitution against a unit vector.
func reliabilities(lup *matrix.LUP, p, q int, alpha float64) ([]float64, error) {
	rel := make([]float64, q)
	e := make([]float64, lup.Size())
	for i := 0; i < q; i++ {
		e[p+i] = 1
		col, err := lup.Solve(e)
		if err != nil {
			return nil, err
		}
		e[p+i] = 0
		rel[i] = clamp01(1 - alpha*col[p+i])
	}
	return rel, nil
}

func validateShapes(y []float64, X, Z, A matrix.Matrix) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: %w", ErrStructural, ErrNoObservations)
	}
	for _, m := range []struct {
		name string
		m    matrix.Matrix
	}{{"X", X}, {"Z", Z}, {"A", A}} {
		if err := matrix.ValidateNotNil(m.m); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrStructural, m.name, err)
		}
	}
	if X.Rows() != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d: %w", ErrStructural, X.Rows(), len(y), matrix.ErrDimensionMismatch)
	}
	if Z.Rows() != len(y) {
		return fmt.Errorf("%w: Z has %d rows, y has %d: %w", ErrStructural, Z.Rows(), len(y), matrix.ErrDimensionMismatch)
	}
	if A.Rows() != Z.Cols() || A.Cols() != Z.Cols() {
		return fmt.Errorf("%w: A is %dx%d, Z has %d columns: %w", ErrStructural, A.Rows(), A.Cols(), Z.Cols(), matrix.ErrDimensionMismatch)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
