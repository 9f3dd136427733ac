package breeding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedlab/breeding"
	"github.com/katalvlaran/breedlab/quantgen"
)

func TestCompare_MatchesSequentialRuns(t *testing.T) {
	p := smallParams(breeding.Random)
	got, err := breeding.Compare(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, got, len(breeding.Strategies))

	for _, s := range breeding.Strategies {
		q := p
		q.Strategy = s
		want, err := breeding.Run(q)
		require.NoError(t, err)
		assert.Equal(t, want, got[s], s.String())
	}
}

func TestCompare_Subset(t *testing.T) {
	got, err := breeding.Compare(context.Background(), smallParams(breeding.Random), breeding.Avoidance)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, breeding.Avoidance, got[breeding.Avoidance].Params.Strategy)
}

func TestCompare_Errors(t *testing.T) {
	_, err := breeding.Compare(context.Background(), smallParams(breeding.Random), breeding.Strategy(-1))
	assert.ErrorIs(t, err, breeding.ErrUnknownStrategy)

	bad := smallParams(breeding.Random)
	bad.PopSize = 1
	_, err = breeding.Compare(context.Background(), bad)
	assert.ErrorIs(t, err, breeding.ErrInvalidParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = breeding.Compare(ctx, smallParams(breeding.Random))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunID(t *testing.T) {
	p := smallParams(breeding.Random)
	id := breeding.RunID(p)
	assert.Equal(t, id, breeding.RunID(p))
	assert.EqualValues(t, 5, id.Version())

	q := p
	q.Strategy = breeding.Avoidance
	assert.NotEqual(t, id, breeding.RunID(q))

	q = p
	q.H2 += 1e-9
	assert.NotEqual(t, id, breeding.RunID(q))
}

func TestStrategy_Text(t *testing.T) {
	for _, s := range breeding.Strategies {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back breeding.Strategy
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	s, err := breeding.ParseStrategy(" Optimal ")
	require.NoError(t, err)
	assert.Equal(t, breeding.OptimalContribution, s)

	_, err = breeding.ParseStrategy("clone")
	assert.ErrorIs(t, err, breeding.ErrUnknownStrategy)
	assert.ErrorIs(t, err, breeding.ErrInvalidParams)

	_, err = breeding.Strategy(7).MarshalText()
	assert.ErrorIs(t, err, breeding.ErrUnknownStrategy)
}

func TestPoolSizes(t *testing.T) {
	cases := []struct {
		n            int
		i            float64
		sires, dams  int
		selectedFrac float64
	}{
		{4, 2.5, 2, 2, 0.02},
		{200, 1.76, 8, 12, 0.10},
		{200, 0.5, 40, 60, 0.50},
		{1000, 2.0, 20, 30, 0.05},
		{100, 1.0, 14, 21, 0.35},
		{100, 0.8, 18, 27, 0.45},
		{100, 1.4, 8, 12, 0.20},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.selectedFrac, quantgen.ProportionForIntensity(tc.i), "i=%g", tc.i)
		s, d := breeding.PoolSizes(tc.n, tc.i)
		assert.Equal(t, tc.sires, s, "n=%d i=%g", tc.n, tc.i)
		assert.Equal(t, tc.dams, d, "n=%d i=%g", tc.n, tc.i)
	}
}
