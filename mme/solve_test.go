package mme_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedlab/matrix"
	"github.com/katalvlaran/breedlab/mme"
	"github.com/katalvlaran/breedlab/pedigree"
)

const eps = 1e-9

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func mustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	return m
}

// oneGroupSetup is the overall-mean model with three unrelated animals,
// one record each. Its solution has a closed form:
// b̂ = mean(y), âᵢ = (yᵢ − mean)/(1+α), r²ᵢ = 2/(3(1+α)).
func oneGroupSetup(t *testing.T) ([]float64, *matrix.Dense, *matrix.Dense, *matrix.Dense) {
	t.Helper()
	y := []float64{10, 12, 14}
	X := mustRows(t, [][]float64{{1}, {1}, {1}})
	Z := mustIdentity(t, 3)
	A := mustIdentity(t, 3)
	return y, X, Z, A
}

func TestSolve_ClosedForm(t *testing.T) {
	y, X, Z, A := oneGroupSetup(t)

	for _, alpha := range []float64{0.5, 1, 3} {
		sol, err := mme.Solve(y, X, Z, A, alpha, 1)
		require.NoError(t, err)
		assert.InDelta(t, alpha, sol.Alpha, eps)
		require.Len(t, sol.Fixed, 1)
		require.Len(t, sol.Breeding, 3)
		assert.InDelta(t, 12.0, sol.Fixed[0], 1e-8)
		for i, yi := range y {
			assert.InDelta(t, (yi-12)/(1+alpha), sol.Breeding[i], 1e-8, "alpha=%g animal %d", alpha, i)
			assert.InDelta(t, 2/(3*(1+alpha)), sol.Reliability[i], 1e-8, "alpha=%g animal %d", alpha, i)
		}
	}
}

func TestSolve_SmallAlphaTracksDeviations(t *testing.T) {
	y, X, Z, A := oneGroupSetup(t)

	sol, err := mme.Solve(y, X, Z, A, 1e-4, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, sol.Breeding[0], 1e-3)
	assert.InDelta(t, 0.0, sol.Breeding[1], 1e-3)
	assert.InDelta(t, 2.0, sol.Breeding[2], 1e-3)
}

func TestSolve_LargeAlphaShrinksToZero(t *testing.T) {
	y, X, Z, A := oneGroupSetup(t)

	sol, err := mme.Solve(y, X, Z, A, 1e6, 1)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, sol.Fixed[0], 1e-6)
	for i, a := range sol.Breeding {
		assert.InDelta(t, 0.0, a, 1e-5, "animal %d", i)
		assert.InDelta(t, 0.0, sol.Reliability[i], 1e-5)
	}
}

func TestSolve_SatisfiesSystem(t *testing.T) {
	ped, err := pedigree.Build([]pedigree.Record{
		{ID: "S"}, {ID: "D1"}, {ID: "D2"},
		{ID: "O1", Sire: "S", Dam: "D1"},
		{ID: "O2", Sire: "S", Dam: "D2"},
	})
	require.NoError(t, err)

	d, err := mme.BuildDesign([]mme.Observation{
		{Value: 250, Group: "H1", Animal: "D1"},
		{Value: 270, Group: "H2", Animal: "D2"},
		{Value: 262, Group: "H1", Animal: "O1"},
		{Value: 281, Group: "H2", Animal: "O2"},
		{Value: 266, Group: "H2", Animal: "O1"},
	}, ped.IDs)
	require.NoError(t, err)

	sol, err := mme.Solve(d.Y, d.X, d.Z, ped.A, 40, 20)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.Alpha, eps)
	require.Len(t, sol.Fixed, 2)
	require.Len(t, sol.Breeding, 5)

	require.NoError(t, matrix.ValidateSymmetric(sol.LHS, eps))
	x := append(append([]float64{}, sol.Fixed...), sol.Breeding...)
	got, err := matrix.MatVec(sol.LHS, x)
	require.NoError(t, err)
	for i := range got {
		assert.InDelta(t, sol.RHS[i], got[i], 1e-8, "row %d", i)
	}

	for i, r := range sol.Reliability {
		assert.GreaterOrEqual(t, r, 0.0, "animal %d", i)
		assert.LessOrEqual(t, r, 1.0, "animal %d", i)
	}
	assert.False(t, math.IsNaN(sol.Cond))
	assert.GreaterOrEqual(t, sol.Cond, 1.0)
}

func TestSolve_StructuralErrors(t *testing.T) {
	y, X, Z, A := oneGroupSetup(t)

	cases := []struct {
		name    string
		y       []float64
		X, Z, A matrix.Matrix
	}{
		{"empty y", nil, X, Z, A},
		{"nil X", y, nil, Z, A},
		{"typed nil Z", y, X, (*matrix.Dense)(nil), A},
		{"X rows", y[:2], X, mustIdentity(t, 2), mustIdentity(t, 2)},
		{"Z rows", y, X, mustRows(t, [][]float64{{1, 0}, {0, 1}}), mustIdentity(t, 2)},
		{"A shape", y, X, Z, mustIdentity(t, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mme.Solve(tc.y, tc.X, tc.Z, tc.A, 1, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, mme.ErrStructural)
			assert.False(t, errors.Is(err, mme.ErrNumerical))
		})
	}
}

func TestSolve_NilMatricesReportedInOrder(t *testing.T) {
	y, X, _, _ := oneGroupSetup(t)

	for i := 0; i < 20; i++ {
		_, err := mme.Solve(y, nil, nil, nil, 1, 1)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		assert.Contains(t, err.Error(), ": X: ")

		_, err = mme.Solve(y, X, nil, nil, 1, 1)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		assert.Contains(t, err.Error(), ": Z: ")
	}
}

func TestSolve_NumericalErrors(t *testing.T) {
	y, X, Z, A := oneGroupSetup(t)

	t.Run("zero residual variance", func(t *testing.T) {
		_, err := mme.Solve(y, X, Z, A, 0, 1)
		assert.ErrorIs(t, err, mme.ErrNumerical)
		assert.ErrorIs(t, err, mme.ErrNonPositiveVariance)
	})
	t.Run("negative additive variance", func(t *testing.T) {
		_, err := mme.Solve(y, X, Z, A, 1, -2)
		assert.ErrorIs(t, err, mme.ErrNonPositiveVariance)
	})
	t.Run("infinite variance", func(t *testing.T) {
		_, err := mme.Solve(y, X, Z, A, math.Inf(1), 1)
		assert.ErrorIs(t, err, mme.ErrNumerical)
	})
	t.Run("NaN phenotype", func(t *testing.T) {
		_, err := mme.Solve([]float64{10, math.NaN(), 14}, X, Z, A, 1, 1)
		assert.ErrorIs(t, err, mme.ErrNumerical)
		assert.ErrorIs(t, err, matrix.ErrNaNInf)
	})
	t.Run("singular A", func(t *testing.T) {
		ones := mustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
		_, err := mme.Solve(y, X, Z, ones, 1, 1)
		assert.ErrorIs(t, err, mme.ErrNumerical)
		assert.ErrorIs(t, err, matrix.ErrSingular)
		assert.False(t, errors.Is(err, mme.ErrStructural))
	})
}
