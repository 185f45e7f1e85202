package parallel

import "context"
import "errors"
import "sync/atomic"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestForEachVisitsAll(t *testing.T) {
	for _, limit := range []int{0, 1, 3, 16} {
		var seen = make([]int32, 100)
		err := ForEach(context.Background(), len(seen), limit, func(_ context.Context, i int) error {
			atomic.AddInt32(&seen[i], 1)
			return nil
		})
		require.NoError(t, err)
		for i, n := range seen {
			assert.Equal(t, int32(1), n, "limit %d index %d", limit, i)
		}
	}
}

func TestForEachBoundsConcurrency(t *testing.T) {
	var running, peak int32
	err := ForEach(context.Background(), 64, 4, func(_ context.Context, i int) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(4))
}

func TestForEachStopsOnError(t *testing.T) {
	var boom = errors.New("boom")
	for _, limit := range []int{1, 4} {
		err := ForEach(context.Background(), 50, limit, func(_ context.Context, i int) error {
			if i == 7 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom, "limit %d", limit)
	}
}

func TestForEachCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int32
	for _, limit := range []int{1, 4} {
		err := ForEach(ctx, 10, limit, func(_ context.Context, i int) error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestForEachEmpty(t *testing.T) {
	assert.NoError(t, ForEach(context.Background(), 0, 4, func(context.Context, int) error {
		t.Fatal("called")
		return nil
	}))
}
