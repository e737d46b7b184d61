package seek

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Worker identifies who produced a parallel search result.
type Worker int8

const (
	// WorkerNone means no worker matched: a miss, a timeout, or an empty input.
	WorkerNone Worker = -1
	// WorkerLower scans the lower half of the input.
	WorkerLower Worker = 0
	// WorkerUpper scans the upper half of the input.
	WorkerUpper Worker = 1
	// WorkerInline is the caller's goroutine on the small-input path.
	WorkerInline Worker = 2
)

func (w Worker) String() string {
	switch w {
	case WorkerNone:
		return "none"
	case WorkerLower:
		return "lower"
	case WorkerUpper:
		return "upper"
	case WorkerInline:
		return "inline"
	default:
		return fmt.Sprintf("worker(%d)", int8(w))
	}
}

// WorkerReport is one worker's answer as seen by the coordinator.
type WorkerReport struct {
	Worker Worker
	Index  int
	Found  bool
	At     time.Duration // since the search started
}

// Observer receives diagnostics from ParallelSearch. Calls are made on the
// coordinating goroutine, never concurrently, and only before
// ParallelSearch returns.
type Observer interface {
	// WorkerReported is called for every successful report that arrives
	// before resolution.
	WorkerReported(WorkerReport)
	// WorkerFailed is called when a worker returned an error or panicked.
	// The failure has already been counted as a miss.
	WorkerFailed(w Worker, err error)
	// Resolved is called exactly once per search, including the inline path.
	Resolved(Result)
}

// NopObserver discards all diagnostics.
type NopObserver struct{}

func (NopObserver) WorkerReported(WorkerReport) {}
func (NopObserver) WorkerFailed(Worker, error)  {}
func (NopObserver) Resolved(Result)             {}

// ZapObserver logs diagnostics to a zap.Logger: reports at Debug, failures at
// Warn, resolutions at Info.
type ZapObserver struct {
	logger *zap.Logger
}

var _ Observer = (*ZapObserver)(nil)

// NewZapObserver returns an Observer writing to logger. A nil logger is
// replaced by zap.NewNop().
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.Named("parallel")}
}

func (o *ZapObserver) WorkerReported(r WorkerReport) {
	o.logger.Debug("worker reported",
		zap.Stringer("worker", r.Worker),
		zap.Bool("found", r.Found),
		zap.Int("index", r.Index),
		zap.Duration("at", r.At))
}

func (o *ZapObserver) WorkerFailed(w Worker, err error) {
	o.logger.Warn("worker failed, counting as miss",
		zap.Stringer("worker", w),
		zap.Error(err))
}

func (o *ZapObserver) Resolved(r Result) {
	o.logger.Info("search resolved",
		zap.Stringer("worker", r.Worker),
		zap.Bool("found", r.Found()),
		zap.Int("index", r.Index),
		zap.Bool("inline", r.Inline),
		zap.Bool("timed_out", r.TimedOut),
		zap.Duration("elapsed", r.Elapsed))
}
