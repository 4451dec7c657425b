package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/estimate"
)

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	rep := newReporter(&buf, false)
	est := estimate.New(estimate.Options{SymbolicDeadline: 30 * time.Second})

	rep.print(est.Estimate("abs(x)"))
	rep.print(est.Estimate("sin("))
	rep.summary()

	out := buf.String()
	assert.Contains(t, out, "range=Interval(0, oo)")
	assert.Contains(t, out, estimate.MethodExactRange)
	assert.Contains(t, out, estimate.MethodError)
	assert.Contains(t, out, "2 expressions: 1 exact, 1 errors")
}

func TestSolveCmd_EstimatesArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"solve", "--no-color", "x**2"})
	var buf bytes.Buffer
	root.SetOut(&buf)
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Interval(0, oo)")
}

func TestSuiteNamesAreKnown(t *testing.T) {
	for _, n := range suiteOrder {
		assert.NotEmpty(t, suites[n], "suite %q", n)
	}
}
