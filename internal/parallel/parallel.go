// Package parallel runs batches of tasks to completion with bounded
// concurrency and splits node id spaces into contiguous partitions.
//
// Run is a barrier: it returns only after every started task has returned.
// The first task error cancels the context seen by the remaining tasks and is
// returned to the caller. A panicking task is converted into an error
// wrapping ErrTaskPanicked so that a misbehaving collaborator fails the whole
// computation instead of crashing the process.
package parallel

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultMinBatchSize is the smallest partition RangePartition produces
// unless the whole id space is smaller.
const DefaultMinBatchSize = 10_000

// ErrTaskPanicked indicates that a task panicked; the panic value is part of
// the error message.
var ErrTaskPanicked = errors.New("parallel: task panicked")

// Task is one unit of work executed by Run.
type Task func(ctx context.Context) error

// Run executes tasks with at most concurrency of them in flight and waits for
// all of them. concurrency < 1 is treated as 1.
func Run(ctx context.Context, concurrency int, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	// Single task: run inline, no goroutine hop.
	if len(tasks) == 1 || concurrency == 1 {
		for i, task := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := safeCall(ctx, i, task); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, task := range tasks {
		g.Go(func() error {
			return safeCall(gctx, i, task)
		})
	}

	return g.Wait()
}

// safeCall invokes task and converts a panic into an error.
func safeCall(ctx context.Context, index int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: task %d: %v", ErrTaskPanicked, index, r)
		}
	}()

	return task(ctx)
}

// Partition is a contiguous id range [Start, Start+Count).
type Partition struct {
	Start int64
	Count int64
}

// End returns the exclusive upper bound of the partition.
func (p Partition) End() int64 { return p.Start + p.Count }

// AdjustedBatchSize returns ceil(nodeCount/concurrency), raised to minBatchSize.
func AdjustedBatchSize(nodeCount int64, concurrency int, minBatchSize int64) int64 {
	if concurrency < 1 {
		concurrency = 1
	}
	batch := (nodeCount + int64(concurrency) - 1) / int64(concurrency)

	return max(batch, minBatchSize, 1)
}

// RangePartition splits [0, nodeCount) into at most concurrency contiguous
// partitions of roughly equal size, none smaller than minBatchSize except the
// last one.
func RangePartition(concurrency int, nodeCount int64, minBatchSize int64) []Partition {
	if nodeCount <= 0 {
		return nil
	}
	batch := AdjustedBatchSize(nodeCount, concurrency, minBatchSize)

	partitions := make([]Partition, 0, (nodeCount+batch-1)/batch)
	for start := int64(0); start < nodeCount; start += batch {
		partitions = append(partitions, Partition{
			Start: start,
			Count: min(batch, nodeCount-start),
		})
	}

	return partitions
}
