// Package race runs a fixed set of search tasks concurrently and resolves on
// the first success.
//
// Each task runs on its own goroutine and sends exactly one report to the
// coordinator over a buffered channel; tasks never talk to each other. The
// coordinator feeds reports into a Tracker, cancels every task once the
// Tracker resolves, and waits for all goroutines to exit before returning.
package race

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	seekerrors "github.com/tamirms/seek/errors"
)

// Task searches its share of the input. It returns the absolute position of
// a match and true, or false when its share holds no match. A task must
// return promptly once ctx is cancelled.
type Task func(ctx context.Context) (index int, found bool, err error)

// Options configures a Run.
type Options struct {
	// Ordered selects lowest-task-wins resolution instead of first-report-wins.
	Ordered bool

	// Timeout bounds the whole run. Zero means no deadline beyond ctx.
	Timeout time.Duration

	// OnReport, if set, is called on the coordinator goroutine for every
	// report that arrives before resolution, including failed ones.
	OnReport func(Report)
}

// Outcome is the resolution of a Run.
type Outcome struct {
	Winner   Report // Task and Index are -1 when nothing was found
	Received int    // reports observed before resolution
	Failed   int    // of those, how many carried an error
	TimedOut bool
}

// Found reports whether the run resolved on a positive report.
func (o Outcome) Found() bool { return o.Winner.Found }

// Run executes tasks concurrently and returns once the outcome is decided.
//
// Failed tasks (an error return or a panic) count as negative reports. If
// ctx is cancelled or the timeout expires first, Run returns a negative
// Outcome with an error: errors.ErrTimeout for the timeout, otherwise the
// cause of ctx.
func Run(ctx context.Context, tasks []Task, opts Options) (Outcome, error) {
	notFound := Outcome{Winner: Report{Task: -1, Index: -1}}
	if len(tasks) == 0 {
		return notFound, seekerrors.ErrNoTasks
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, opts.Timeout, seekerrors.ErrTimeout)
		defer cancel()
	}

	// Separate cancel so resolution can stop the tasks without touching ctx.
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	g, gctx := errgroup.WithContext(workerCtx)

	// Capacity len(tasks): a send never blocks, so a task that reports after
	// resolution still exits.
	reports := make(chan Report, len(tasks))
	for i, task := range tasks {
		g.Go(func() error {
			reports <- runTask(gctx, i, task)
			return nil
		})
	}

	tr := NewTracker(len(tasks), opts.Ordered)
	out := notFound
	var runErr error
	for !tr.Resolved() && runErr == nil {
		select {
		case r := <-reports:
			if r.Err != nil && ctx.Err() != nil {
				// The task gave up because the run itself was cancelled.
				runErr = context.Cause(ctx)
				break
			}
			out.Received++
			if r.Err != nil {
				out.Failed++
			}
			if opts.OnReport != nil {
				opts.OnReport(r)
			}
			tr.Observe(r)
		case <-ctx.Done():
			runErr = context.Cause(ctx)
		}
	}

	cancelWorkers()
	_ = g.Wait()

	if runErr != nil {
		out.TimedOut = opts.Timeout > 0 && errors.Is(runErr, seekerrors.ErrTimeout)
		if out.TimedOut {
			return out, fmt.Errorf("after %v: %w", opts.Timeout, runErr)
		}
		return out, runErr
	}

	out.Winner, _ = tr.Winner()
	return out, nil
}

// runTask calls task and converts its result, error, or panic into a Report.
func runTask(ctx context.Context, i int, task Task) (r Report) {
	defer func() {
		if p := recover(); p != nil {
			r = Report{Task: i, Index: -1, Err: fmt.Errorf("%w: %v", seekerrors.ErrWorkerPanic, p)}
		}
	}()

	idx, found, err := task(ctx)
	switch {
	case err != nil:
		return Report{Task: i, Index: -1, Err: err}
	case !found:
		return Report{Task: i, Index: -1}
	default:
		return Report{Task: i, Index: idx, Found: true}
	}
}
