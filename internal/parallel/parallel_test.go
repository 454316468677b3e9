package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_AllTasksComplete(t *testing.T) {
	var sum atomic.Int64
	tasks := make([]Task, 100)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			sum.Add(int64(i))
			return nil
		}
	}

	require.NoError(t, Run(context.Background(), 8, tasks))
	require.Equal(t, int64(99*100/2), sum.Load())
}

func TestRun_Empty(t *testing.T) {
	require.NoError(t, Run(context.Background(), 4, nil))
}

func TestRun_SequentialWhenConcurrencyOne(t *testing.T) {
	var order []int
	tasks := make([]Task, 5)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			order = append(order, i)
			return nil
		}
	}

	require.NoError(t, Run(context.Background(), 1, tasks))
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRun_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}

	err := Run(context.Background(), 3, tasks)
	require.ErrorIs(t, err, boom)
}

func TestRun_RecoversPanic(t *testing.T) {
	tasks := []Task{
		func(context.Context) error { return nil },
		func(context.Context) error { panic("graph handle exploded") },
	}

	err := Run(context.Background(), 2, tasks)
	require.ErrorIs(t, err, ErrTaskPanicked)
	require.Contains(t, err.Error(), "graph handle exploded")

	err = Run(context.Background(), 1, tasks)
	require.ErrorIs(t, err, ErrTaskPanicked)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := Run(ctx, 1, []Task{func(context.Context) error {
		ran = true
		return nil
	}})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ran)
}

func TestRangePartition(t *testing.T) {
	parts := RangePartition(4, 10, 1)
	require.Equal(t, []Partition{
		{Start: 0, Count: 3},
		{Start: 3, Count: 3},
		{Start: 6, Count: 3},
		{Start: 9, Count: 1},
	}, parts)

	// Minimum batch size collapses small inputs into one partition.
	parts = RangePartition(8, 100, DefaultMinBatchSize)
	require.Equal(t, []Partition{{Start: 0, Count: 100}}, parts)
	require.Equal(t, int64(100), parts[0].End())

	require.Nil(t, RangePartition(4, 0, 1))
}

func TestRangePartition_CoversIdSpace(t *testing.T) {
	for _, n := range []int64{1, 7, 64, 1000, 12345} {
		for _, c := range []int{1, 2, 3, 8, 16} {
			parts := RangePartition(c, n, 1)
			require.LessOrEqual(t, len(parts), c)

			next := int64(0)
			for _, p := range parts {
				require.Equal(t, next, p.Start)
				require.Positive(t, p.Count)
				next = p.End()
			}
			require.Equal(t, n, next)
		}
	}
}

func TestAdjustedBatchSize(t *testing.T) {
	require.Equal(t, int64(25), AdjustedBatchSize(100, 4, 1))
	require.Equal(t, int64(50), AdjustedBatchSize(100, 4, 50))
	require.Equal(t, int64(100), AdjustedBatchSize(100, 0, 1))
	require.Equal(t, int64(1), AdjustedBatchSize(0, 4, 0))
}
