package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamirms/seek/internal/dataset"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		n    int
		kind string
		seed uint64
		out  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a dataset file of n int64 values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := dataset.ParseKind(kind)
			if err != nil {
				return err
			}
			values, err := dataset.Generate(k, n, seed)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := dataset.Write(out, values); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}
			a.logger.Debug("dataset written",
				zap.String("path", out),
				zap.Int("n", n),
				zap.Stringer("kind", k),
				zap.Duration("elapsed", time.Since(start)))

			cmd.Printf("wrote %d %s values to %s\n", n, k, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 1_000_000, "number of values")
	cmd.Flags().StringVar(&kind, "kind", dataset.Sequential.String(), "sequential or shuffled")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "permutation seed for shuffled datasets")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
