package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Built-in expression suites, in rising order of hostility to symbolic
// analysis.
var suites = map[string][]string{
	"standard": {
		"x",
		"x**2",
		"abs(x)",
		"sin(x)",
		"cos(x)",
		"exp(x)",
		"log(x)",
		"sqrt(x)",
		"1/x",
		"x**2 - 4*x + 1",
		"exp(-x**2)",
		"atan(x)",
	},
	"hard": {
		"x**3 - 3*x",
		"x**4 - x**2",
		"(x**2 - 1)/(x**2 + 1)",
		"x*sin(x)",
		"x + sin(x)",
		"sin(x) + cos(x)",
		"x**2*exp(-x)",
		"sin(x)/x",
		"1/(x - 3)",
		"sqrt(1 - x**2)",
	},
	"extreme": {
		"x**x",
		"exp(-x)*sin(x)",
		"tan(x)",
		"exp(x) - x",
		"log(abs(x))",
		"sin(x)*cos(x)",
		"asin(x)",
		"1/(1 + x**2)",
		"x*exp(-abs(x))",
	},
}

var suiteOrder = []string{"standard", "hard", "extreme"}

func newSuiteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "suite [standard|hard|extreme|all]",
		Short:     "Run a built-in expression suite",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(append([]string(nil), suiteOrder...), "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "standard"
			if len(args) == 1 {
				name = args[0]
			}
			var names []string
			switch {
			case name == "all":
				names = suiteOrder
			case suites[name] != nil:
				names = []string{name}
			default:
				return fmt.Errorf("unknown suite %q", name)
			}

			est, log, err := newEstimator(v)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			rep := newReporter(cmd.OutOrStdout(), !v.GetBool("no-color"))
			for _, n := range names {
				rep.heading(n)
				for _, src := range suites[n] {
					rep.print(est.Estimate(src))
				}
			}
			rep.summary()
			return nil
		},
	}
}
