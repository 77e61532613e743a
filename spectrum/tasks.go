package spectrum

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/pool"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/threadpool"
)

// TaskConfig controls how the conversion/convolution operators parallelize
// their outer k1 iteration and cap their temporary slab allocations.
type TaskConfig struct {
	// Pool runs the outer k1 iteration across tasks when Contiguous is true
	// and Pool reports usable parallelism; a nil Pool always runs
	// sequentially as a single task.
	Pool threadpool.ThreadPool
	// Progress receives cancellation checks; a nil Progress never cancels.
	Progress *progress.Context
	// Contiguous gates parallelization: the outer iteration over k1 only
	// splits across tasks when every backing array is contiguous in-memory
	// storage; paged/remote-backed operands always run as a single
	// sequential task.
	Contiguous bool
	// MaxTempMemory caps, in bytes, how much pooled scratch memory the
	// recursion may hold open at once. Requests beyond the remaining
	// budget fall back to a plain, unpooled make. Zero disables pooling.
	MaxTempMemory uint64
}

func (tc TaskConfig) budget() *pool.Budget {
	if tc.MaxTempMemory == 0 {
		return nil
	}
	return pool.NewBudget(tc.MaxTempMemory)
}

// runPartitioned splits [0,total) across cfg.Pool when cfg.Contiguous and
// the pool reports more than one usable worker; otherwise fn runs once
// over the whole range as a single sequential task.
func runPartitioned(total int, cfg TaskConfig, fn func(lo, hi int) error) error {
	if total <= 0 {
		return nil
	}
	if !cfg.Contiguous || cfg.Pool == nil || cfg.Pool.RecommendedParallelism() <= 1 {
		return fn(0, total)
	}
	tasks := threadpool.Partition(total, cfg.Pool.RecommendedParallelism(), fn)
	return cfg.Pool.PerformTasks(tasks)
}

// runK1 iterates k1 in [0, n/2], parallelized per runPartitioned, checking
// cfg.Progress for cancellation between steps.
func runK1(n int, cfg TaskConfig, fn func(k1 int) error) error {
	steps := n/2 + 1
	return runPartitioned(steps, cfg, func(lo, hi int) error {
		for k1 := lo; k1 < hi; k1++ {
			if cfg.Progress.CheckInterruption() {
				return errs.Cancelled()
			}
			if err := fn(k1); err != nil {
				return err
			}
		}
		return nil
	})
}

// scratch is a temporary slab charged against a TaskConfig's memory
// budget: pooled when the budget allows it, a plain make otherwise.
type scratch[T buffer.Float] struct {
	buf      []T
	reserved uint64
	budget   *pool.Budget
}

func acquireScratch[T buffer.Float](n int, budget *pool.Budget) scratch[T] {
	bytes := uint64(n) * pool.SizeOfFloat[T]()
	if budget != nil && budget.TryReserve(bytes) {
		return scratch[T]{buf: pool.AcquireFloat[T](n)[:n], reserved: bytes, budget: budget}
	}
	return scratch[T]{buf: make([]T, n)}
}

// release returns the slab to the pool (if it came from one) and frees its
// reservation against the budget.
func (s scratch[T]) release() {
	if s.reserved > 0 {
		pool.ReleaseFloat[T](s.buf)
		s.budget.Release(s.reserved)
	}
}
