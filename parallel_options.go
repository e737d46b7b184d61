package seek

import (
	"fmt"
	"time"

	seekerrors "github.com/tamirms/seek/errors"
)

const (
	// DefaultInlineThreshold is the input size below which ParallelSearch
	// scans on the caller's goroutine. Starting two goroutines costs more
	// than scanning this many elements.
	DefaultInlineThreshold = 10_000

	// DefaultCheckInterval is how many elements a worker scans between
	// cancellation checks.
	DefaultCheckInterval = 4096
)

// Policy decides which positive report resolves a parallel search.
type Policy uint8

const (
	// LowestIndex holds a match from the upper half until the lower half has
	// reported a miss, so the result always equals Index(s, target).
	LowestIndex Policy = iota
	// FirstReport resolves on whichever match the coordinator sees first.
	// With duplicates spanning both halves the result may differ between runs.
	FirstReport
)

func (p Policy) String() string {
	switch p {
	case LowestIndex:
		return "lowest-index"
	case FirstReport:
		return "first-report"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a flag spelling to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "lowest-index":
		return LowestIndex, nil
	case "first-report":
		return FirstReport, nil
	default:
		return 0, fmt.Errorf("%w: policy %q", seekerrors.ErrUnknownOption, s)
	}
}

// ScanOrder decides how the two halves are laid out and walked.
type ScanOrder uint8

const (
	// Forward splits at n/2 and scans both halves ascending.
	Forward ScanOrder = iota
	// OuterFirst splits at (n-1)/2 and scans the upper half from the end
	// backwards, so both workers start at the outer ends of the slice.
	// Requires FirstReport.
	OuterFirst
)

func (o ScanOrder) String() string {
	switch o {
	case Forward:
		return "forward"
	case OuterFirst:
		return "outer-first"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseScanOrder maps a flag spelling to a ScanOrder.
func ParseScanOrder(s string) (ScanOrder, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "outer-first":
		return OuterFirst, nil
	default:
		return 0, fmt.Errorf("%w: scan order %q", seekerrors.ErrUnknownOption, s)
	}
}

// ParallelOption is a functional option for configuring ParallelSearch.
type ParallelOption func(*parallelConfig)

type parallelConfig struct {
	threshold     int
	timeout       time.Duration
	policy        Policy
	order         ScanOrder
	checkInterval int
	observer      Observer
}

func defaultParallelConfig() *parallelConfig {
	return &parallelConfig{
		threshold:     DefaultInlineThreshold,
		checkInterval: DefaultCheckInterval,
		observer:      NopObserver{},
	}
}

func (c *parallelConfig) validate() error {
	if c.threshold < 0 {
		return seekerrors.ErrInvalidThreshold
	}
	if c.checkInterval <= 0 {
		return seekerrors.ErrInvalidInterval
	}
	if c.order == OuterFirst && c.policy != FirstReport {
		return seekerrors.ErrIncompatibleOptions
	}
	return nil
}

// WithThreshold sets the input size below which no goroutines are started.
// Zero always spawns workers for non-empty input.
func WithThreshold(n int) ParallelOption {
	return func(c *parallelConfig) {
		c.threshold = n
	}
}

// WithTimeout bounds the search. On expiry the workers are cancelled and
// ParallelSearch returns a NotFound result with errors.ErrTimeout.
// Zero (the default) means no deadline beyond the caller's context.
func WithTimeout(d time.Duration) ParallelOption {
	return func(c *parallelConfig) {
		c.timeout = d
	}
}

// WithPolicy sets the resolution policy. Default is LowestIndex.
func WithPolicy(p Policy) ParallelOption {
	return func(c *parallelConfig) {
		c.policy = p
	}
}

// WithScanOrder sets how the halves are scanned. Default is Forward.
func WithScanOrder(o ScanOrder) ParallelOption {
	return func(c *parallelConfig) {
		c.order = o
	}
}

// WithCheckInterval sets how many elements a worker scans between
// cancellation checks. Smaller values cancel faster and scan slower.
func WithCheckInterval(n int) ParallelOption {
	return func(c *parallelConfig) {
		c.checkInterval = n
	}
}

// WithObserver sets the diagnostics collaborator. A nil observer restores
// the no-op default.
func WithObserver(o Observer) ParallelOption {
	return func(c *parallelConfig) {
		if o == nil {
			o = NopObserver{}
		}
		c.observer = o
	}
}
