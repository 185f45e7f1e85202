package vote

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/clause"

func TestClip(t *testing.T) {
	for _, tc := range []struct {
		raw       int
		threshold float64
		want      float64
	}{
		{0, 1, 0},
		{3, 1, 1},
		{-3, 1, -1},
		{2, 2.5, 2},
		{5, 2.5, 2.5},
		{-5, 2.5, -2.5},
	} {
		assert.Equal(t, tc.want, Clip(tc.raw, tc.threshold), "raw=%d T=%v", tc.raw, tc.threshold)
	}
}

func TestClassifyFreshBankTies(t *testing.T) {
	b, err := automaton.New(2, 6, 100)
	require.NoError(t, err)
	var in = clause.NewInput(2)
	in.Load([]bool{true, false})
	var outputs = make([]bool, 6)
	res := Classify(b, in, 2, outputs)
	assert.Equal(t, Result{Label: false, Margin: 0, Raw: 0}, res)
	assert.Equal(t, []bool{true, true, true, true, true, true}, outputs)
}

func TestClassifySignedSum(t *testing.T) {
	b, err := automaton.New(1, 6, 1)
	require.NoError(t, err)
	// negative clauses 1 and 3 require x0, positive clauses require nothing
	require.NoError(t, b.Penalize(1, 0))
	require.NoError(t, b.Penalize(3, 0))
	var in = clause.NewInput(1)

	in.Load([]bool{false})
	res := Classify(b, in, 10, nil)
	assert.Equal(t, 2, res.Raw)
	assert.Equal(t, 2.0, res.Margin)
	assert.True(t, res.Label)

	in.Load([]bool{true})
	res = Classify(b, in, 10, nil)
	assert.Equal(t, 0, res.Raw)
	assert.False(t, res.Label)

	// clipping leaves the label alone
	in.Load([]bool{false})
	res = Classify(b, in, 1, nil)
	assert.Equal(t, 2, res.Raw)
	assert.Equal(t, 1.0, res.Margin)
	assert.True(t, res.Label)
}
