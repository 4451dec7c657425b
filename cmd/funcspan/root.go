package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/funcspan/funcspan/estimate"
)

const envPrefix = "FUNCSPAN"

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "funcspan",
		Short: "Estimate the real domain and range of a function of one variable",
		Long: `funcspan parses a single-variable expression and reports its real
domain and range, preferring exact symbolic answers and degrading to
numerical estimation when the expression resists analysis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfig(v, cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.Duration("deadline", estimate.DefaultSymbolicDeadline,
		"per-stage time limit for symbolic work (negative disables the symbolic layer)")
	pf.Int64("seed", 0, "seed for randomized optimization (0 = fixed default)")
	pf.Float64("snap-tol", 0, "canonical-constant snap tolerance (0 = default)")
	pf.Bool("verbose", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colorized output")

	root.AddCommand(newSolveCmd(v), newSuiteCmd(v))
	return root
}

// bindConfig wires flags to the environment: every flag is overridable as
// FUNCSPAN_<NAME> with dashes mapped to underscores.
func bindConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Root().PersistentFlags())
}

// newEstimator assembles an Estimator from the resolved configuration.
func newEstimator(v *viper.Viper) (*estimate.Estimator, *zap.Logger, error) {
	log := zap.NewNop()
	if v.GetBool("verbose") {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}
	est := estimate.New(estimate.Options{
		SymbolicDeadline: v.GetDuration("deadline"),
		Seed:             v.GetInt64("seed"),
		SnapTol:          v.GetFloat64("snap-tol"),
		Logger:           log,
	})
	return est, log, nil
}
