package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/funcspan/funcspan/estimate"
)

func newSolveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [expression...]",
		Short: "Estimate the domain and range of each expression",
		Long: `Estimate the real domain and range of each expression argument.
With no arguments, expressions are read from standard input, one per line;
blank lines and lines starting with # are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			est, log, err := newEstimator(v)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			rep := newReporter(cmd.OutOrStdout(), !v.GetBool("no-color"))
			memo := estimate.NewMemo(est)

			if len(args) > 0 {
				for _, src := range args {
					rep.print(memo.Estimate(src))
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				rep.print(memo.Estimate(line))
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		},
	}
}
