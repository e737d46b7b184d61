// Bench compares the search algorithms in package seek on generated or
// memory-mapped int64 inputs.
//
// Usage:
//
//	go run ./cmd/bench gen --n 1000000 --kind shuffled --out values.skds
//	go run ./cmd/bench run --data values.skds --target 879654
//	go run ./cmd/bench sweep --sizes 1000,100000,10000000
//
// Global flags:
//
//	--verbose  Debug-level logging, including per-worker reports
//	--profile  TOML file supplying defaults for the parallel and sweep flags
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	verbose     bool
	profilePath string

	logger  *zap.Logger
	profile *profile
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), profile: &profile{}}

	root := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark linear, parallel, binary and hashed search",
		Long: `Bench runs every search algorithm in package seek on the same input and
reports where each found the target and how long it took.

Inputs come from a dataset file written by "bench gen" or are generated in
memory. "bench sweep" prints the size at which the two-worker parallel scan
starts to beat a plain linear scan.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			if a.profilePath != "" {
				p, err := loadProfile(a.profilePath)
				if err != nil {
					return err
				}
				a.profile = p
				a.logger.Debug("loaded profile", zap.String("path", a.profilePath))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.profilePath, "profile", "", "TOML profile with flag defaults")

	root.AddCommand(newGenCmd(a), newRunCmd(a), newSweepCmd(a))
	return root
}

func main() {
	// Ctrl-C cancels a running search through its context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
