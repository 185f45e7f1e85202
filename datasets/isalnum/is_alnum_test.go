package isalnum

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestDataset(t *testing.T) {
	d := Dataset()
	require.Equal(t, 256, d.Len())
	for _, row := range d.Features {
		require.Len(t, row, Width)
	}

	var positives int
	for _, v := range d.Labels {
		if v {
			positives++
		}
	}
	assert.Equal(t, 62, positives)

	// 'A' is 0x41: bits 0 and 6
	assert.Equal(t, []bool{true, false, false, false, false, false, true, false}, d.Features['A'])
	assert.True(t, d.Labels['A'])
	assert.False(t, d.Labels[' '])
}
