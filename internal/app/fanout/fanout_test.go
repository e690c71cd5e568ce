package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/app/fanout"
)

func TestRun_EmptyInputs(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 5, []int{}, func(_ context.Context, _ int) (string, error) {
		t.Fatal("fn should not be called for empty inputs")
		return "", nil
	})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_PreservesOrderWithPartialFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	inputs := []int{1, 2, 3, 4, 5}

	results := fanout.Run(context.Background(), 2, inputs, func(_ context.Context, n int) (int, error) {
		// Later inputs finish first.
		time.Sleep(time.Duration(len(inputs)-n) * time.Millisecond)
		if n == 3 {
			return 0, errBoom
		}
		return n * 10, nil
	})

	require.Len(t, results, len(inputs))
	for i, r := range results {
		if inputs[i] == 3 {
			assert.ErrorIs(t, r.Err, errBoom)
			continue
		}
		assert.NoError(t, r.Err)
		assert.Equal(t, inputs[i]*10, r.Value)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3
	var running, peak atomic.Int32

	fanout.Run(context.Background(), maxWorkers, make([]int, 12), func(_ context.Context, _ int) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(maxWorkers))
	assert.Positive(t, peak.Load())
}

func TestRun_CancelledContextSkipsWaitingInputs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		cancel()
		return n, nil
	})

	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestValues(t *testing.T) {
	t.Parallel()

	vals, err := fanout.Values([]fanout.Result[int]{{Value: 1}, {Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, vals)

	errBoom := errors.New("boom")
	_, err = fanout.Values([]fanout.Result[int]{{Value: 1}, {Err: errBoom}})
	assert.ErrorIs(t, err, errBoom)
}
