package pedigree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedlab/pedigree"
)

func ids(recs []pedigree.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestSort_ParentsFirst(t *testing.T) {
	got, err := pedigree.Sort([]pedigree.Record{
		{ID: "G", Sire: "S", Dam: "D"},
		{ID: "X"},
		{ID: "D", Sire: "DS"},
		{ID: "S", Sire: "unknown"},
		{ID: "DS"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "DS", "D", "G", "X"}, ids(got))
}

func TestSort_OrderedInputUnchanged(t *testing.T) {
	in := fourGeneration()
	got, err := pedigree.Sort(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestSort_Errors(t *testing.T) {
	_, err := pedigree.Sort([]pedigree.Record{
		{ID: "A", Sire: "B"},
		{ID: "B", Dam: "A"},
	})
	assert.ErrorIs(t, err, pedigree.ErrCycle)

	_, err = pedigree.Sort([]pedigree.Record{{ID: "A", Sire: "A"}})
	assert.ErrorIs(t, err, pedigree.ErrCycle)

	_, err = pedigree.Sort([]pedigree.Record{{ID: "A"}, {ID: "A"}})
	assert.ErrorIs(t, err, pedigree.ErrDuplicateID)

	_, err = pedigree.Sort([]pedigree.Record{{ID: ""}})
	assert.ErrorIs(t, err, pedigree.ErrEmptyID)
}

func TestBuild_WithSortMatchesOrderedPedigree(t *testing.T) {
	shuffled := []pedigree.Record{
		{ID: "C", Sire: "A", Dam: "B"},
		{ID: "D", Sire: "A", Dam: "B"},
		{ID: "A"},
		{ID: "B"},
	}
	sorted, err := pedigree.Build(shuffled, pedigree.WithSort(), pedigree.WithStrictOrder())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, sorted.IDs)

	v, ok := sorted.Relationship("C", "D")
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	// Without sorting, the same input silently loses both parents.
	raw, err := pedigree.Build(shuffled)
	require.NoError(t, err)
	v, ok = raw.Relationship("C", "D")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}
