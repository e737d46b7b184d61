package seek

import (
	"context"
	"fmt"
	"time"

	"github.com/tamirms/seek/internal/race"
)

// Result is the outcome of a ParallelSearch.
type Result struct {
	Index    int           // position in the original slice, or NotFound
	Worker   Worker        // who found it; WorkerNone on a miss
	Inline   bool          // true when the small-input path ran and no goroutines started
	TimedOut bool          // true when the deadline expired before resolution
	Elapsed  time.Duration // wall time of the whole call
}

// Found reports whether the target was located.
func (r Result) Found() bool { return r.Index != NotFound }

// scanFunc searches one span of s. Swappable so tests can inject slow or
// failing workers.
type scanFunc[T comparable] func(ctx context.Context, s []T, target T, sp span, interval int) (int, bool, error)

// ParallelSearch is a linear search split across two worker goroutines,
// one per half of s. It resolves as soon as the outcome is decided: on a
// match (subject to the Policy) or once both halves have reported a miss.
// The losing worker is cancelled and has exited by the time ParallelSearch
// returns.
//
// Inputs shorter than the threshold (WithThreshold, default 10,000) are
// scanned inline without starting goroutines, and so is the empty slice.
// The inline path does not consult ctx.
//
// A worker that fails is logged through the Observer and counted as a miss;
// it is not reported to the caller. The only errors returned are option
// validation errors, errors.ErrTimeout when the WithTimeout deadline expires,
// and the cause of ctx when the caller cancels. In every error case the
// Result's Index is NotFound.
//
// This is a thought experiment, not a recommendation: for unsorted data a
// plain Index is cheaper at almost every size, BinarySearch wins on sorted
// data, and a HashIndex wins for repeated lookups.
func ParallelSearch[T comparable](ctx context.Context, s []T, target T, opts ...ParallelOption) (Result, error) {
	cfg := defaultParallelConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return Result{Index: NotFound, Worker: WorkerNone}, err
	}
	return parallelSearch(ctx, s, target, cfg, scanSpan[T])
}

func parallelSearch[T comparable](ctx context.Context, s []T, target T, cfg *parallelConfig, scan scanFunc[T]) (Result, error) {
	start := time.Now()

	if len(s) == 0 || len(s) < cfg.threshold {
		res := Result{Index: Index(s, target), Worker: WorkerNone, Inline: true}
		if res.Found() {
			res.Worker = WorkerInline
		}
		res.Elapsed = time.Since(start)
		cfg.observer.Resolved(res)
		return res, nil
	}

	spans := splitHalves(len(s), cfg.order)
	tasks := make([]race.Task, len(spans))
	for i, sp := range spans {
		tasks[i] = func(ctx context.Context) (int, bool, error) {
			return scan(ctx, s, target, sp, cfg.checkInterval)
		}
	}

	out, err := race.Run(ctx, tasks, race.Options{
		Ordered: cfg.policy == LowestIndex,
		Timeout: cfg.timeout,
		OnReport: func(r race.Report) {
			w := Worker(r.Task)
			if r.Err != nil {
				cfg.observer.WorkerFailed(w, r.Err)
				return
			}
			cfg.observer.WorkerReported(WorkerReport{
				Worker: w,
				Index:  r.Index,
				Found:  r.Found,
				At:     time.Since(start),
			})
		},
	})

	res := Result{Index: NotFound, Worker: WorkerNone, TimedOut: out.TimedOut}
	if err == nil && out.Found() {
		res.Index = out.Winner.Index
		res.Worker = Worker(out.Winner.Task)
	}
	res.Elapsed = time.Since(start)
	cfg.observer.Resolved(res)

	if err != nil {
		return res, fmt.Errorf("parallel search: %w", err)
	}
	return res, nil
}
