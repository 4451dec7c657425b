package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/funcspan/funcspan/estimate"
)

// reporter renders results with a color per strategy family: green for
// exact, cyan for hybrid, yellow for numerical, red for errors.
type reporter struct {
	out   io.Writer
	color bool

	total  int
	errors int
	exact  int
}

func newReporter(out io.Writer, colorize bool) *reporter {
	return &reporter{out: out, color: colorize}
}

func (r *reporter) paint(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *reporter) methodColor(method string) *color.Color {
	switch {
	case strings.HasPrefix(method, "Exact"):
		return color.New(color.FgGreen)
	case strings.HasPrefix(method, "Hybrid"):
		return color.New(color.FgCyan)
	case method == estimate.MethodNumerical:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func (r *reporter) heading(name string) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(color.New(color.Bold), "== "+name+" =="))
}

func (r *reporter) print(res estimate.Result) {
	r.total++
	tag := r.paint(r.methodColor(res.Method), res.Method)
	elapsed := r.paint(color.New(color.Faint), res.Timing.Total.Round(time.Microsecond).String())

	if res.Err != nil {
		r.errors++
		fmt.Fprintf(r.out, "%-24s %s %s: %v\n", res.Input, tag, elapsed, res.Err)
		return
	}
	if strings.HasPrefix(res.Method, "Exact") {
		r.exact++
	}
	fmt.Fprintf(r.out, "%-24s domain=%s range=%s %s %s\n",
		res.Input, res.Domain, res.Range, tag, elapsed)
}

func (r *reporter) summary() {
	fmt.Fprintf(r.out, "\n%d expressions: %d exact, %d errors\n",
		r.total, r.exact, r.errors)
}
