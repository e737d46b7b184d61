package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamirms/seek"
	"github.com/tamirms/seek/internal/dataset"
)

// errDisagreement is returned by run when an algorithm's answer differs
// from linear search.
var errDisagreement = errors.New("algorithms disagree")

// measurement is one row of the run table.
type measurement struct {
	name    string
	index   int
	elapsed time.Duration
	note    string
}

type runFlags struct {
	data     string
	n        int
	target   int64
	hasher   string
	parallel parallelFlags
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every algorithm on one input and compare the answers",
		Long: `Run searches one input with every algorithm and prints the index each
returned and how long it took. The command fails if any algorithm disagrees
with linear search. Binary search only runs when the input is sorted.

Without --target the value at 7/8 of the input is searched for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.parallel.applyProfile(cmd.Flags(), a.profile.Parallel); err != nil {
				return err
			}

			values, sorted, release, err := loadInput(f.data, f.n)
			if err != nil {
				return err
			}
			defer release()

			target := f.target
			if !cmd.Flags().Changed("target") && len(values) > 0 {
				target = values[len(values)*7/8]
			}

			rows, err := runAll(cmd.Context(), a.logger, values, sorted, target, &f)
			if err != nil {
				return err
			}
			printRun(cmd, len(values), target, rows)
			return checkAgreement(values, target, rows)
		},
	}

	cmd.Flags().StringVar(&f.data, "data", "", "dataset file written by bench gen")
	cmd.Flags().IntVar(&f.n, "n", 1_000_000, "size of the generated input when --data is not set")
	cmd.Flags().Int64Var(&f.target, "target", 0, "value to search for")
	cmd.Flags().StringVar(&f.hasher, "hasher", seek.HasherXXH3.String(), "hash index hasher: xxh3, xxhash or murmur3")
	f.parallel.register(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("data", "n")
	return cmd
}

// loadInput maps the dataset at path, or generates n sequential values when
// path is empty. release must be called once values are no longer used.
func loadInput(path string, n int) (values []int64, sorted bool, release func(), err error) {
	if path == "" {
		values, err = dataset.Generate(dataset.Sequential, n, 0)
		return values, true, func() {}, err
	}

	d, err := dataset.Open(path)
	if err != nil {
		return nil, false, nil, fmt.Errorf("open dataset: %w", err)
	}
	if err := d.Verify(); err != nil {
		return nil, false, nil, errors.Join(fmt.Errorf("verify dataset %s: %w", path, err), d.Close())
	}
	return d.Values(), d.Sorted(), func() { _ = d.Close() }, nil
}

func runAll(ctx context.Context, logger *zap.Logger, values []int64, sorted bool, target int64, f *runFlags) ([]measurement, error) {
	opts, err := f.parallel.options(logger)
	if err != nil {
		return nil, err
	}
	hasher, err := seek.ParseHasher(f.hasher)
	if err != nil {
		return nil, err
	}

	var rows []measurement

	start := time.Now()
	idx := seek.Index(values, target)
	rows = append(rows, measurement{name: "linear", index: idx, elapsed: time.Since(start)})

	start = time.Now()
	m, _ := seek.Find(values, target)
	rows = append(rows, measurement{name: "find", index: m.Index, elapsed: time.Since(start)})

	start = time.Now()
	res, err := seek.ParallelSearch(ctx, values, target, opts...)
	if err != nil {
		return nil, err
	}
	note := "worker=" + res.Worker.String()
	if res.Inline {
		note = "inline"
	}
	rows = append(rows, measurement{name: "parallel", index: res.Index, elapsed: time.Since(start), note: note})

	if sorted {
		start = time.Now()
		idx = seek.BinarySearch(values, target)
		rows = append(rows, measurement{name: "binary", index: idx, elapsed: time.Since(start)})
	} else {
		logger.Debug("skipping binary search on unsorted input")
	}

	start = time.Now()
	hi, err := seek.NewHashIndex(values, seek.WithHasher(hasher))
	if err != nil {
		return nil, err
	}
	build := time.Since(start)
	start = time.Now()
	idx = hi.Lookup(target)
	rows = append(rows, measurement{
		name:    "hash",
		index:   idx,
		elapsed: time.Since(start),
		note:    fmt.Sprintf("%s, build %v, max bucket %d", hasher, build, hi.MaxBucket()),
	})

	return rows, nil
}

func printRun(cmd *cobra.Command, n int, target int64, rows []measurement) {
	cmd.Printf("n=%d target=%d peak-rss=%.1fMB\n\n", n, target, float64(maxRSS())/1_000_000)
	cmd.Printf("%-10s %10s %14s  %s\n", "algorithm", "index", "elapsed", "note")
	for _, r := range rows {
		cmd.Printf("%-10s %10d %14v  %s\n", r.name, r.index, r.elapsed, r.note)
	}
}

// checkAgreement compares every row against the linear row. Binary search
// may land on any of several equal elements, so it only has to find an
// element equal to target whenever linear does.
func checkAgreement(values []int64, target int64, rows []measurement) error {
	want := rows[0].index
	var errs []error
	for _, r := range rows[1:] {
		agree := r.index == want
		if r.name == "binary" && r.index != seek.NotFound && want != seek.NotFound {
			agree = values[r.index] == target
		}
		if !agree {
			errs = append(errs, fmt.Errorf("%w: %s returned %d, linear returned %d", errDisagreement, r.name, r.index, want))
		}
	}
	return errors.Join(errs...)
}
