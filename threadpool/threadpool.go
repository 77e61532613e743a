// Package threadpool provides the thread-pool collaborator interface
// consumed by the transform and spectrum operators, plus a default
// implementation built on golang.org/x/sync/errgroup.
package threadpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work submitted to a ThreadPool.
type Task func() error

// ThreadPool is the collaborator interface: a fixed set of worker tasks
// executed to completion, and a hint about how many tasks are worth
// scheduling at once.
type ThreadPool interface {
	// PerformTasks runs tasks to completion. If any task errors the
	// remainder still run to completion; the first error is returned after
	// all tasks join.
	PerformTasks(tasks []Task) error

	// RecommendedParallelism returns the number of tasks this pool can
	// usefully run concurrently.
	RecommendedParallelism() int
}

// Default is a ThreadPool backed by errgroup.Group. It recommends
// runtime.GOMAXPROCS(0) tasks but runs every submitted task in its own
// goroutine without a cap.
type Default struct{}

// NewDefault returns the default goroutine-per-task thread pool.
func NewDefault() *Default { return &Default{} }

// PerformTasks runs every task in its own goroutine via errgroup, letting
// all tasks finish (errgroup.Group does not cancel siblings unless given a
// context) and returning the first error observed once every task has run
// to completion.
func (d *Default) PerformTasks(tasks []Task) error {
	var eg errgroup.Group
	for _, t := range tasks {
		t := t
		eg.Go(func() error { return t() })
	}
	return eg.Wait()
}

// RecommendedParallelism returns GOMAXPROCS.
func (d *Default) RecommendedParallelism() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Sequential is a ThreadPool that runs every task inline on the caller's
// goroutine. Used when the parallelism-gating rule disables parallel
// execution, or in tests that need deterministic ordering.
type Sequential struct{}

// PerformTasks runs tasks one at a time, stopping at the first error only
// after every task has been attempted, mirroring Default's join semantics.
func (Sequential) PerformTasks(tasks []Task) error {
	var first error
	for _, t := range tasks {
		if err := t(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RecommendedParallelism always reports 1.
func (Sequential) RecommendedParallelism() int { return 1 }

// Partition splits n outer-loop steps into at most parallelism tasks of
// contiguous ranges, each invoking fn(lo, hi).
func Partition(n, parallelism int, fn func(lo, hi int) error) []Task {
	if parallelism < 1 {
		parallelism = 1
	}
	if parallelism > n {
		parallelism = n
	}
	if parallelism < 1 {
		return nil
	}
	tasks := make([]Task, 0, parallelism)
	chunk := (n + parallelism - 1) / parallelism
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		tasks = append(tasks, func() error { return fn(lo, hi) })
	}
	return tasks
}
