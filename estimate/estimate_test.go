package estimate_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/funcspan/funcspan/estimate"
)

func newEstimator(t *testing.T) *estimate.Estimator {
	t.Helper()
	return estimate.New(estimate.Options{SymbolicDeadline: 30 * time.Second})
}

func TestEstimate_ExactImages(t *testing.T) {
	est := newEstimator(t)
	cases := []struct {
		src        string
		wantRange  string
		wantDomain string
	}{
		{"abs(x)", "Interval(0, oo)", "Reals"},
		{"sin(x)", "Interval(-1, 1)", "Reals"},
		{"cos(x)", "Interval(-1, 1)", "Reals"},
		{"1/x", "Union(Interval.open(-oo, 0), Interval.open(0, oo))",
			"Union(Interval.open(-oo, 0), Interval.open(0, oo))"},
		{"exp(-x**2)", "Interval.Lopen(0, 1)", "Reals"},
		{"exp(x)", "Interval.open(0, oo)", "Reals"},
		{"x**2 - 4*x + 1", "Interval(-3, oo)", "Reals"},
		{"sqrt(x)", "Interval(0, oo)", "Interval(0, oo)"},
		{"log(x)", "Reals", "Interval.open(0, oo)"},
	}
	for _, tc := range cases {
		res := est.Estimate(tc.src)
		require.NoError(t, res.Err, "estimate %q", tc.src)
		assert.Equal(t, estimate.MethodExactRange, res.Method, "method for %q", tc.src)
		assert.Equal(t, tc.wantRange, res.Range.String(), "range of %q", tc.src)
		assert.Equal(t, tc.wantDomain, res.Domain.String(), "domain of %q", tc.src)
	}
}

func TestEstimate_ExactMinMax(t *testing.T) {
	res := newEstimator(t).Estimate("x**4 - x**2")
	require.NoError(t, res.Err)
	assert.Equal(t, estimate.MethodExactMinMax, res.Method)
	assert.Equal(t, "Interval(-0.25, oo)", res.Range.String())
}

func TestEstimate_LimitAnalysis(t *testing.T) {
	est := newEstimator(t)
	for _, src := range []string{"x*sin(x)", "exp(-x)*sin(x)", "x + sin(x)"} {
		res := est.Estimate(src)
		require.NoError(t, res.Err, "estimate %q", src)
		assert.Equal(t, estimate.MethodExactLimits, res.Method, "method for %q", src)
		assert.Equal(t, "Reals", res.Range.String(), "range of %q", src)
	}
}

func TestEstimate_HybridSelfPower(t *testing.T) {
	res := newEstimator(t).Estimate("x**x")
	require.NoError(t, res.Err)
	assert.Equal(t, estimate.MethodHybridMin, res.Method)
	assert.Equal(t, "Interval.open(0, oo)", res.Domain.String())

	lo, attained, err := res.Range.Inf()
	require.NoError(t, err)
	assert.True(t, attained)
	assert.InDelta(t, math.Pow(1/math.E, 1/math.E), lo, 1e-3)
	assert.False(t, res.Range.BoundedAbove())
}

func TestEstimate_NumericalFallback(t *testing.T) {
	res := newEstimator(t).Estimate("sin(x) + cos(x)")
	require.NoError(t, res.Err)
	assert.Equal(t, estimate.MethodNumerical, res.Method)

	lo, _, err := res.Range.Inf()
	require.NoError(t, err)
	hi, _, err := res.Range.Sup()
	require.NoError(t, err)
	// Bounds snap to the canonical ±sqrt(2).
	assert.Equal(t, -math.Sqrt2, lo)
	assert.Equal(t, math.Sqrt2, hi)
}

func TestEstimate_ConstantExpression(t *testing.T) {
	res := newEstimator(t).Estimate("2*pi")
	require.NoError(t, res.Err)
	assert.Equal(t, estimate.MethodExactRange, res.Method)
	assert.Equal(t, "Reals", res.Domain.String())
	assert.Equal(t, "{6.283185}", res.Range.String())
}

func TestEstimate_Errors(t *testing.T) {
	est := newEstimator(t)

	res := est.Estimate("sin(")
	assert.Equal(t, estimate.MethodError, res.Method)
	assert.Error(t, res.Err)

	res = est.Estimate("x + y")
	assert.Equal(t, estimate.MethodError, res.Method)
	assert.ErrorIs(t, res.Err, estimate.ErrMultiVariable)

	res = est.Estimate("sqrt(-1 - x**2)")
	assert.Equal(t, estimate.MethodError, res.Method)
	assert.ErrorIs(t, res.Err, estimate.ErrEmptyDomain)
}

func TestEstimate_DisabledSymbolicLayerStillAnswers(t *testing.T) {
	// A negative deadline times out every symbolic stage; the numerical
	// strategy must still produce a result.
	est := estimate.New(estimate.Options{SymbolicDeadline: -1})
	res := est.Estimate("sin(x)")
	require.NoError(t, res.Err)
	assert.Equal(t, estimate.MethodNumerical, res.Method)

	lo, _, err := res.Range.Inf()
	require.NoError(t, err)
	hi, _, err := res.Range.Sup()
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestEstimate_DomainDegradationWarns(t *testing.T) {
	// tan(x) resists symbolic domain resolution, so the domain degrades to
	// the whole line and the degradation is reported at Warn.
	core, logs := observer.New(zapcore.WarnLevel)
	est := estimate.New(estimate.Options{
		SymbolicDeadline: 30 * time.Second,
		Logger:           zap.New(core),
	})
	res := est.Estimate("tan(x)")
	require.NoError(t, res.Err)
	assert.Equal(t, "Reals", res.Domain.String())
	assert.NotEmpty(t, logs.FilterMessage("domain resolution degraded").All())
}

func TestEstimate_LowerNeverExceedsUpper(t *testing.T) {
	est := newEstimator(t)
	exprs := []string{
		"x", "x**2", "x**3 - 3*x", "sin(x)*cos(x)", "1/(1+x**2)",
		"exp(x) - x", "abs(x - 2) + 1", "x**2*exp(-x)", "atan(x)",
	}
	for _, src := range exprs {
		res := est.Estimate(src)
		require.NoError(t, res.Err, "estimate %q", src)
		lo, _, err := res.Range.Inf()
		require.NoError(t, err, "inf of %q", src)
		hi, _, err := res.Range.Sup()
		require.NoError(t, err, "sup of %q", src)
		assert.LessOrEqual(t, lo, hi, "bounds of %q", src)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	est := newEstimator(t)
	a := est.Estimate("sin(x) + cos(x)")
	b := est.Estimate("sin(x) + cos(x)")
	assert.True(t, a.Range.Equal(b.Range))
	assert.Equal(t, a.Method, b.Method)
}

func TestEstimate_RecordsTiming(t *testing.T) {
	res := newEstimator(t).Estimate("x**2")
	assert.Greater(t, res.Timing.Total, time.Duration(0))
}

func TestMemo_CachesAndCollapses(t *testing.T) {
	m := estimate.NewMemo(newEstimator(t))
	first := m.Estimate("x**2")
	second := m.Estimate("x**2")
	assert.Equal(t, first.Method, second.Method)
	assert.True(t, first.Range.Equal(second.Range))
	assert.Equal(t, 1, m.Len())
}
