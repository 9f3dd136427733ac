package mme_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedlab/mme"
	"github.com/katalvlaran/breedlab/pedigree"
)

func TestBuildDesign(t *testing.T) {
	ids := []string{"A", "B", "C"}
	d, err := mme.BuildDesign([]mme.Observation{
		{Value: 5, Group: "herd2", Animal: "C"},
		{Value: math.NaN(), Group: "herd9", Animal: "A"},
		{Value: 7, Group: "herd1", Animal: "A"},
	}, ids)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 7}, d.Y)
	assert.Equal(t, []string{"herd1", "herd2"}, d.Levels, "NaN records contribute no level")
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, d.X.RawRows())
	assert.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}}, d.Z.RawRows())
}

func TestBuildDesign_Errors(t *testing.T) {
	ids := []string{"A"}

	_, err := mme.BuildDesign([]mme.Observation{{Value: 1, Group: "g", Animal: "X"}}, ids)
	assert.ErrorIs(t, err, mme.ErrStructural)
	assert.ErrorIs(t, err, mme.ErrUnknownAnimal)

	_, err = mme.BuildDesign([]mme.Observation{{Value: math.NaN(), Group: "g", Animal: "A"}}, ids)
	assert.ErrorIs(t, err, mme.ErrNoObservations)

	_, err = mme.BuildDesign(nil, nil)
	assert.ErrorIs(t, err, mme.ErrStructural)
}

func TestEvaluate(t *testing.T) {
	ped := []pedigree.Record{
		{ID: "S"}, {ID: "D"},
		{ID: "O", Sire: "S", Dam: "D", Generation: 1},
	}
	obs := []mme.Observation{
		{Value: 10, Group: "g", Animal: "D"},
		{Value: 14, Group: "g", Animal: "O"},
	}

	ev, err := mme.Evaluate(ped, obs, 2, 1)
	require.NoError(t, err)
	require.Len(t, ev.Solution.Breeding, 3)

	o, ok := ev.EBV("O")
	require.True(t, ok)
	dam, ok := ev.EBV("D")
	require.True(t, ok)
	assert.Greater(t, o, dam)

	r, ok := ev.Reliability("S")
	require.True(t, ok)
	assert.GreaterOrEqual(t, r, 0.0)

	_, ok = ev.EBV("nobody")
	assert.False(t, ok)
}

func TestEvaluate_PedigreeErrors(t *testing.T) {
	_, err := mme.Evaluate(nil, nil, 1, 1)
	assert.ErrorIs(t, err, mme.ErrStructural)
	assert.ErrorIs(t, err, pedigree.ErrEmptyPedigree)

	_, err = mme.Evaluate([]pedigree.Record{
		{ID: "O", Sire: "S"},
		{ID: "S"},
	}, []mme.Observation{{Value: 1, Group: "g", Animal: "O"}}, 1, 1, pedigree.WithStrictOrder())
	assert.ErrorIs(t, err, pedigree.ErrParentAfterOffspring)
}
