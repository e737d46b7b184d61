package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamirms/seek"
	"github.com/tamirms/seek/internal/dataset"
)

var defaultSweepSizes = []int{1_000, 10_000, 100_000, 1_000_000, 10_000_000}

// sweepRow is one size of the breakeven table.
type sweepRow struct {
	n        int
	linear   time.Duration
	parallel time.Duration
}

func (r sweepRow) speedup() float64 {
	if r.parallel == 0 {
		return 0
	}
	return float64(r.linear) / float64(r.parallel)
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		sizes    []int
		reps     int
		parallel parallelFlags
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Find the size at which the parallel scan beats a linear scan",
		Long: `Sweep times a linear scan against ParallelSearch for each size, searching
for the value 7/8 of the way through an ascending input. The threshold is
forced to 0 so every size runs on workers. Each timing is the best of --reps
runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if err := parallel.applyProfile(fs, a.profile.Parallel); err != nil {
				return err
			}
			if err := fill(fs, "sizes", joinInts(a.profile.Sweep.Sizes)); err != nil {
				return err
			}
			if err := fillInt(fs, "reps", a.profile.Sweep.Reps); err != nil {
				return err
			}
			if reps < 1 {
				return fmt.Errorf("--reps must be at least 1, got %d", reps)
			}

			opts, err := parallel.options(a.logger)
			if err != nil {
				return err
			}
			opts = append(opts, seek.WithThreshold(0))

			rows := make([]sweepRow, 0, len(sizes))
			for _, n := range sizes {
				row, err := sweepOne(cmd.Context(), n, reps, opts)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			printSweep(cmd, rows)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", defaultSweepSizes, "input sizes to time")
	cmd.Flags().IntVar(&reps, "reps", 5, "runs per size; the fastest is reported")
	parallel.register(cmd.Flags())
	return cmd
}

func sweepOne(ctx context.Context, n, reps int, opts []seek.ParallelOption) (sweepRow, error) {
	if n < 1 {
		return sweepRow{}, fmt.Errorf("sweep size must be positive, got %d", n)
	}
	values, err := dataset.Generate(dataset.Sequential, n, 0)
	if err != nil {
		return sweepRow{}, err
	}
	want := n * 7 / 8
	target := values[want]

	row := sweepRow{n: n}
	for range reps {
		start := time.Now()
		got := seek.Index(values, target)
		row.linear = fastest(row.linear, time.Since(start))
		if got != want {
			return row, fmt.Errorf("%w: linear returned %d at n=%d, want %d", errDisagreement, got, n, want)
		}

		start = time.Now()
		res, err := seek.ParallelSearch(ctx, values, target, opts...)
		row.parallel = fastest(row.parallel, time.Since(start))
		if err != nil {
			return row, err
		}
		if res.Index != want {
			return row, fmt.Errorf("%w: parallel returned %d at n=%d, want %d", errDisagreement, res.Index, n, want)
		}
	}
	return row, nil
}

func fastest(best, d time.Duration) time.Duration {
	if best == 0 || d < best {
		return d
	}
	return best
}

func printSweep(cmd *cobra.Command, rows []sweepRow) {
	cmd.Printf("%12s %14s %14s %8s\n", "n", "linear", "parallel", "speedup")
	breakeven := -1
	for _, r := range rows {
		cmd.Printf("%12d %14v %14v %7.2fx\n", r.n, r.linear, r.parallel, r.speedup())
		if breakeven < 0 && r.parallel < r.linear {
			breakeven = r.n
		}
	}
	if breakeven < 0 {
		cmd.Println("\nparallel never beat linear at the sizes tried")
		return
	}
	cmd.Printf("\nparallel first beat linear at n=%d\n", breakeven)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
