package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/numeric"
)

func TestWrap_DiscardsComplexSamples(t *testing.T) {
	// Principal sqrt: real for x >= 0, complex below.
	f := numeric.Wrap(func(z complex128) complex128 {
		r := real(z)
		if r < 0 {
			return complex(0, math.Sqrt(-r))
		}
		return complex(math.Sqrt(r), 0)
	})
	assert.InDelta(t, 2, f(4), 1e-12)
	assert.True(t, math.IsNaN(f(-4)))
}

func TestFiniteSamples(t *testing.T) {
	f := func(x float64) float64 {
		if x == 0 {
			return math.Inf(1)
		}
		if x < 0 {
			return math.NaN()
		}
		return 1 / x
	}
	in, out := numeric.FiniteSamples(f, []float64{-1, 0, 1, 2})
	assert.Equal(t, []float64{1, 2}, in)
	assert.Equal(t, []float64{1, 0.5}, out)
}

func TestMultiScaleGrid_CoversScalesAndSorts(t *testing.T) {
	g := numeric.MultiScaleGrid(-numeric.GenBound, numeric.GenBound)
	require.NotEmpty(t, g)
	assert.Equal(t, -numeric.GenBound, g[0])
	assert.Equal(t, numeric.GenBound, g[len(g)-1])
	for i := 1; i < len(g); i++ {
		assert.Less(t, g[i-1], g[i])
	}
	// The inner ring must be denser than the outer one.
	inner := countWithin(g, -1, 1)
	outer := countWithin(g, 500, 502)
	assert.Greater(t, inner, outer)
}

func countWithin(g []float64, lo, hi float64) int {
	n := 0
	for _, x := range g {
		if x >= lo && x <= hi {
			n++
		}
	}
	return n
}

func TestDomainGrid_RespectsOpenEndsAndGaps(t *testing.T) {
	dom := interval.WholeLine().Without(0)
	g := numeric.DomainGrid(dom, nil)
	for _, x := range g {
		assert.NotEqual(t, 0.0, x)
	}
	// Gap probes approach the puncture from both flanks.
	assert.Contains(t, g, 1e-7)
	assert.Contains(t, g, -1e-7)
}

func TestDomainGrid_AdaptiveDensification(t *testing.T) {
	dom := interval.NewSet(interval.Closed(-1, 1))
	flat := numeric.DomainGrid(dom, nil)
	steep := numeric.DomainGrid(dom, func(x float64) float64 { return math.Atan(500 * x) })
	// The slope-adaptive pass adds samples where the function moves fastest.
	assert.Greater(t, len(steep), len(flat))
	assert.Greater(t,
		countWithin(steep, -0.05, 0.05)-countWithin(flat, -0.05, 0.05),
		countWithin(steep, 0.9, 1.0)-countWithin(flat, 0.9, 1.0))
}

func TestSpecialPoints_SmallMagnitudes(t *testing.T) {
	pts := numeric.SpecialPoints()
	for _, want := range []float64{0.001, -0.001, 0.01, -0.01, 0.1, -0.1, 5, -5} {
		assert.Contains(t, pts, want)
	}
}

func TestBrentMinimize_Parabola(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }
	x, fx := numeric.BrentMinimize(f, -10, 10, 0, 0)
	assert.InDelta(t, 2, x, 1e-6)
	assert.InDelta(t, 0, fx, 1e-10)
}

func TestBrentMinimize_AsymmetricWell(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 2*x }
	x, _ := numeric.BrentMinimize(f, -4, 4, 0, 0)
	assert.InDelta(t, math.Log(2), x, 1e-6)
}

func TestDifferentialEvolution_GlobalMinimum(t *testing.T) {
	// A double well with the deeper basin on the right.
	f := func(x float64) float64 { return x*x*x*x - 4*x*x + x }
	x, fx := numeric.DifferentialEvolution(f, -5, 5, 0, 0)
	assert.InDelta(t, -1.47, x, 0.05)
	assert.Less(t, fx, -5.0)
}

func TestDifferentialEvolution_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Abs(x - 0.3) }
	x1, _ := numeric.DifferentialEvolution(f, -1, 1, 0, 0)
	x2, _ := numeric.DifferentialEvolution(f, -1, 1, 0, 0)
	assert.Equal(t, x1, x2)
}

func TestDifferentialEvolution_AllInvalid(t *testing.T) {
	f := func(float64) float64 { return math.NaN() }
	x, fx := numeric.DifferentialEvolution(f, -1, 1, 0, 0)
	assert.True(t, math.IsNaN(x))
	assert.True(t, math.IsNaN(fx))
}

func TestSignChanges(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }
	roots := numeric.SignChanges(f, numeric.Linspace(-3, 3, 601))
	require.Len(t, roots, 2)
	assert.InDelta(t, -1, roots[0], 1e-6)
	assert.InDelta(t, 1, roots[1], 1e-6)
}

func TestCriticalPoints(t *testing.T) {
	// d/dx (x**3 - 3x) = 3x**2 - 3, stationary at ±1.
	df := func(x float64) float64 { return 3*x*x - 3 }
	cps := numeric.CriticalPoints(df, -5, 5, 0)
	require.Len(t, cps, 2)
	assert.InDelta(t, -1, cps[0], 1e-4)
	assert.InDelta(t, 1, cps[1], 1e-4)
}

func TestPureKernel_Minimize(t *testing.T) {
	var k numeric.Kernel = numeric.PureKernel{}
	x, fx := k.Minimize(func(x float64) float64 { return math.Cosh(x - 1) }, -50, 50, 0)
	assert.InDelta(t, 1, x, 1e-3)
	assert.InDelta(t, 1, fx, 1e-6)
}

func TestAdaptiveGrid_RefinesSteepCells(t *testing.T) {
	f := func(x float64) float64 { return math.Atan(50 * x) }
	base := numeric.AdaptiveGrid(f, -1, 1, 101, 8)
	assert.Greater(t, len(base), 101)
	near := countWithin(base, -0.1, 0.1)
	far := countWithin(base, 0.8, 1.0)
	assert.Greater(t, near, far)
}
