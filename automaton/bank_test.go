package automaton

import "errors"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestNewStartsAtWeakestExclude(t *testing.T) {
	b, err := New(3, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Clauses())
	assert.Equal(t, 6, b.Literals())
	assert.Equal(t, 1, b.Words())
	assert.Equal(t, 10, b.Depth())
	for j := 0; j < b.Clauses(); j++ {
		for k := 0; k < b.Literals(); k++ {
			s, err := b.State(j, k)
			require.NoError(t, err)
			assert.Equal(t, 10, s)
			a, err := b.Action(j, k)
			require.NoError(t, err)
			assert.Equal(t, Exclude, a)
		}
		inc, err := b.Included(j)
		require.NoError(t, err)
		assert.Empty(t, inc)
	}
	assert.Zero(t, b.IncludedCount())
}

func TestNewInvalidSize(t *testing.T) {
	for _, tc := range []struct {
		name                     string
		features, clauses, depth int
	}{
		{"no features", 0, 2, 10},
		{"no clauses", 2, 0, 10},
		{"zero depth", 2, 2, 0},
		{"too deep", 2, 2, MaxDepth + 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.features, tc.clauses, tc.depth)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestPenalizeFlipsAtBoundary(t *testing.T) {
	b, err := New(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, b.Penalize(1, 0))
	a, _ := b.Action(1, 0)
	assert.Equal(t, Include, a)
	s, _ := b.State(1, 0)
	assert.Equal(t, 4, s)
	inc, _ := b.Included(1)
	assert.Equal(t, []int{0}, inc)

	require.NoError(t, b.Penalize(1, 0))
	a, _ = b.Action(1, 0)
	assert.Equal(t, Exclude, a)
	inc, _ = b.Included(1)
	assert.Empty(t, inc)

	// the other clause is untouched
	s, _ = b.State(0, 0)
	assert.Equal(t, 3, s)
}

func TestRewardSaturates(t *testing.T) {
	const depth = 4
	b, err := New(1, 2, depth)
	require.NoError(t, err)

	for i := 0; i < 3*depth; i++ {
		require.NoError(t, b.Reward(0, 0))
	}
	s, _ := b.State(0, 0)
	assert.Equal(t, 1, s)
	a, _ := b.Action(0, 0)
	assert.Equal(t, Exclude, a)

	require.NoError(t, b.Penalize(0, 1))
	for i := 0; i < 3*depth; i++ {
		require.NoError(t, b.Reward(0, 1))
	}
	s, _ = b.State(0, 1)
	assert.Equal(t, 2*depth, s)
	a, _ = b.Action(0, 1)
	assert.Equal(t, Include, a)
}

func TestRowRewardReportsMove(t *testing.T) {
	b, err := New(1, 1, 2)
	require.NoError(t, err)
	r, err := b.Row(0)
	require.NoError(t, err)
	assert.True(t, r.Reward(0), "2 -> 1")
	assert.False(t, r.Reward(0), "saturated at 1")
	r.Penalize(1)
	r.Penalize(1)
	assert.Equal(t, 4, r.State(1))
	assert.False(t, r.Reward(1), "saturated at 2N")
	r.Penalize(1)
	assert.True(t, r.Reward(1), "3 -> 4")
}

func TestIndexOutOfRange(t *testing.T) {
	b, err := New(2, 2, 5)
	require.NoError(t, err)
	for _, tc := range []struct {
		name string
		j, k int
	}{
		{"negative clause", -1, 0},
		{"clause past end", 2, 0},
		{"negative literal", 0, -1},
		{"literal past end", 0, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var before = b.Fingerprint()
			_, err := b.State(tc.j, tc.k)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, err = b.Action(tc.j, tc.k)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, b.Reward(tc.j, tc.k), ErrIndexOutOfRange)
			assert.ErrorIs(t, b.Penalize(tc.j, tc.k), ErrIndexOutOfRange)
			assert.Equal(t, before, b.Fingerprint())
		})
	}
	_, err = b.Row(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestMaskSpansWords(t *testing.T) {
	b, err := New(40, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, b.Words())

	require.NoError(t, b.Penalize(1, 3))
	require.NoError(t, b.Penalize(1, 70))
	r, err := b.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1 << 3, 1 << 6}, r.Mask())
	assert.False(t, r.Empty())
	inc, _ := b.Included(1)
	assert.Equal(t, []int{3, 70}, inc)
	assert.Equal(t, 2, b.IncludedCount())

	r0, _ := b.Row(0)
	assert.True(t, r0.Empty())
}

func TestCloneAndFingerprint(t *testing.T) {
	b, err := New(2, 2, 5)
	require.NoError(t, err)
	c := b.Clone()
	assert.Equal(t, b.Fingerprint(), c.Fingerprint())

	require.NoError(t, c.Penalize(0, 0))
	assert.NotEqual(t, b.Fingerprint(), c.Fingerprint())
	a, _ := b.Action(0, 0)
	assert.Equal(t, Exclude, a, "clone must not share state")
}

// saturation law and mask consistency under arbitrary update sequences
func FuzzBankUpdates(f *testing.F) {
	f.Add(byte(3), []byte{0, 1, 2, 3, 255, 128})
	f.Add(byte(1), []byte{1, 1, 1, 1, 1, 1, 1})
	f.Fuzz(func(t *testing.T, depth byte, ops []byte) {
		if depth == 0 {
			depth = 1
		}
		b, err := New(3, 2, int(depth))
		if err != nil {
			t.Fatal(err)
		}
		for _, op := range ops {
			var j = int(op>>1) % b.Clauses()
			var k = int(op>>2) % b.Literals()
			if op&1 == 0 {
				err = b.Reward(j, k)
			} else {
				err = b.Penalize(j, k)
			}
			if err != nil {
				t.Fatal(err)
			}
		}
		for j := 0; j < b.Clauses(); j++ {
			r, _ := b.Row(j)
			for k := 0; k < b.Literals(); k++ {
				s := r.State(k)
				if s < 1 || s > 2*int(depth) {
					t.Fatalf("state %d of (%d,%d) outside [1,%d]", s, j, k, 2*int(depth))
				}
				var bit = r.Mask()[k>>6]>>(uint(k)&63)&1 == 1
				if bit != (r.Action(k) == Include) {
					t.Fatalf("mask bit %v disagrees with action %v at (%d,%d)", bit, r.Action(k), j, k)
				}
			}
		}
	})
}

func BenchmarkPenalizeReward(b *testing.B) {
	bank, _ := New(64, 64, 100)
	r, _ := bank.Row(7)
	for i := 0; i < b.N; i++ {
		r.Penalize(i & 127)
		r.Reward((i + 1) & 127)
	}
}
