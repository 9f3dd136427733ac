package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/breedlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-10

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestAddScale(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.RawRows())

	sc, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, sc.RawRows())

	_, err = matrix.Add(a, mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.RawRows())

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.RawRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// aᵀ·a through the facade equals the explicit composition.
	cp, err := matrix.CrossProduct(a, a)
	require.NoError(t, err)
	ex, err := matrix.Mul(at, a)
	require.NoError(t, err)
	ok, err := matrix.AllClose(cp, ex, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatVecAndTransposeVec(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	z, err := matrix.TransposeVec(a, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12}, z)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.TransposeVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLUReconstructs(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 3, 2}, {2, 1, 3}, {3, 2, 1}})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, a, 0, eps)
	require.NoError(t, err)
	assert.True(t, ok, "L·U must reproduce A")
}

// TestInverseMatchesGonum cross-checks the LU inverse against gonum on an SPD matrix.
func TestInverseMatchesGonum(t *testing.T) {
	rows := [][]float64{{1, 0, 0.5}, {0, 1, 0.5}, {0.5, 0.5, 1}}
	a := mustRows(t, rows)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	g := mat.NewDense(3, 3, []float64{1, 0, 0.5, 0, 1, 0.5, 0.5, 0.5, 1})
	var gi mat.Dense
	require.NoError(t, gi.Inverse(g))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := inv.At(i, j)
			assert.InDelta(t, gi.At(i, j), v, eps)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	_, err := matrix.Inverse(mustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolveNeedsPivoting uses a system with a zero leading pivot, which the
// unpivoted LU rejects but Solve handles.
func TestSolveNeedsPivoting(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 1}, {1, 1}})

	_, _, err := matrix.LU(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	x, err := matrix.Solve(a, []float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], eps)
	assert.InDelta(t, 2.0, x[1], eps)
}

func TestSolveErrors(t *testing.T) {
	_, err := matrix.Solve(mustRows(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(mustRows(t, [][]float64{{0, 0}, {0, 0}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(mustRows(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(mustRows(t, [][]float64{{1, 0}, {0, 1}}), []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCond(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	k, err := matrix.Cond(id)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, k, eps)

	k, err = matrix.Cond(mustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.True(t, k > 1e12 || math.IsInf(k, 1), "singular matrix must report a huge or infinite condition number, got %g", k)
}

func TestValidateSymmetric(t *testing.T) {
	require.NoError(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}, {2, 1}}), 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}, {2.1, 1}}), 0.01), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}, {2, 1}}), math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

func TestFactorLUP_ReusedAcrossRightHandSides(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 2, 1}, {4, 1, 0}, {1, 3, 5}})
	f, err := matrix.FactorLUP(a)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Size())

	for _, b := range [][]float64{{1, 0, 0}, {0, 1, 0}, {3, -2, 7}} {
		x, err := f.Solve(b)
		require.NoError(t, err)
		direct, err := matrix.Solve(a, b)
		require.NoError(t, err)
		assert.Equal(t, direct, x)

		back, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		for i := range b {
			assert.InDelta(t, b[i], back[i], eps)
		}
	}

	_, err = f.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = f.Solve([]float64{1, math.NaN(), 2})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FactorLUP(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCenterColumns(t *testing.T) {
	x := mustRows(t, [][]float64{{0, 2, 1}, {2, 0, 1}, {1, 1, 1}, {1, 1, 1}})

	sums, err := matrix.ColSums(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, sums)

	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, means)
	assert.Equal(t, [][]float64{{-1, 1, 0}, {1, -1, 0}, {0, 0, 0}, {0, 0, 0}}, xc.RawRows())
	assert.Equal(t, [][]float64{{0, 2, 1}, {2, 0, 1}, {1, 1, 1}, {1, 1, 1}}, x.RawRows(), "input must not change")

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
