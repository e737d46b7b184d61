package main

import (
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tamirms/seek"
)

// parallelFlags are the ParallelSearch options shared by run and sweep.
type parallelFlags struct {
	threshold     int
	timeout       time.Duration
	policy        string
	order         string
	checkInterval int
}

func (f *parallelFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.threshold, "threshold", seek.DefaultInlineThreshold, "input size below which the scan runs inline")
	fs.DurationVar(&f.timeout, "timeout", 0, "parallel search deadline (0 = none)")
	fs.StringVar(&f.policy, "policy", seek.LowestIndex.String(), "resolution policy: lowest-index or first-report")
	fs.StringVar(&f.order, "order", seek.Forward.String(), "scan order: forward or outer-first")
	fs.IntVar(&f.checkInterval, "check-interval", seek.DefaultCheckInterval, "elements scanned between cancellation checks")
}

// applyProfile copies profile values into flags the user left unset.
func (f *parallelFlags) applyProfile(fs *pflag.FlagSet, p parallelProfile) error {
	if err := fillInt(fs, "threshold", p.Threshold); err != nil {
		return err
	}
	if err := fill(fs, "timeout", p.Timeout); err != nil {
		return err
	}
	if err := fill(fs, "policy", p.Policy); err != nil {
		return err
	}
	if err := fill(fs, "order", p.Order); err != nil {
		return err
	}
	return fillInt(fs, "check-interval", p.CheckInterval)
}

// options converts the flags to ParallelSearch options. Validation of the
// combination is left to ParallelSearch.
func (f *parallelFlags) options(logger *zap.Logger) ([]seek.ParallelOption, error) {
	policy, err := seek.ParsePolicy(f.policy)
	if err != nil {
		return nil, err
	}
	order, err := seek.ParseScanOrder(f.order)
	if err != nil {
		return nil, err
	}
	return []seek.ParallelOption{
		seek.WithThreshold(f.threshold),
		seek.WithTimeout(f.timeout),
		seek.WithPolicy(policy),
		seek.WithScanOrder(order),
		seek.WithCheckInterval(f.checkInterval),
		seek.WithObserver(seek.NewZapObserver(logger)),
	}, nil
}
