package interval_test

import (
	"math"
	"testing"

	"github.com/funcspan/funcspan/interval"
	"github.com/stretchr/testify/assert"
)

// TestFormatBound covers the four rendering regimes: infinities, near-zero,
// extreme magnitudes, and trimmed fixed-point.
func TestFormatBound(t *testing.T) {
	assert.Equal(t, "oo", interval.FormatBound(math.Inf(1)))
	assert.Equal(t, "-oo", interval.FormatBound(math.Inf(-1)))
	assert.Equal(t, "0", interval.FormatBound(3e-12), "sub-tolerance noise prints as 0")
	assert.Equal(t, "1", interval.FormatBound(1.0), "trailing zeros and point trimmed")
	assert.Equal(t, "-0.5", interval.FormatBound(-0.5))
	assert.Equal(t, "2.50e+10", interval.FormatBound(2.5e10), "huge magnitudes go scientific")
}

// TestInterval_String checks the calculator-style open/closed suffixes.
func TestInterval_String(t *testing.T) {
	assert.Equal(t, "Interval(0, 1)", interval.Closed(0, 1).String())
	assert.Equal(t, "Interval.open(0, 1)", interval.Open(0, 1).String())
	assert.Equal(t, "Interval.Lopen(0, 1)", interval.LeftOpen(0, 1).String())
	assert.Equal(t, "Interval.Ropen(0, 1)", interval.RightOpen(0, 1).String())
	assert.Equal(t, "{2}", interval.Point(2).String())
	assert.Equal(t, "Interval.Lopen(0, 1)", interval.LeftOpen(0, 1).String())
}

// TestSet_String covers EmptySet, Reals, single-interval, and Union forms.
func TestSet_String(t *testing.T) {
	assert.Equal(t, "EmptySet", interval.Set{}.String())
	assert.Equal(t, "Reals", interval.WholeLine().String())
	assert.Equal(t, "Interval(0, 1)", interval.NewSet(interval.Closed(0, 1)).String())
	assert.Equal(t,
		"Union(Interval.open(-oo, 0), Interval.open(0, oo))",
		interval.NewSet(interval.LessThan(0), interval.GreaterThan(0)).String())
}

// TestSnap verifies canonical-constant and simple-fraction snapping, and that
// values outside the tolerance pass through untouched.
func TestSnap(t *testing.T) {
	assert.Equal(t, 1.0, interval.Snap(0.9999997, 1e-6), "near-1 noise snaps to 1")
	assert.Equal(t, -math.Pi/2, interval.Snap(-1.5707965, 1e-6))
	assert.Equal(t, 1/math.E, interval.Snap(1/math.E+2e-7, 1e-6))
	assert.Equal(t, 0.0, interval.Snap(-3e-7, 1e-6), "near-zero snaps to exact 0")
	assert.Equal(t, -0.25, interval.Snap(-0.2500004, 1e-6), "quarter fraction")
	assert.Equal(t, 0.4290123, interval.Snap(0.4290123, 1e-6), "non-canonical value unchanged")
	assert.True(t, math.IsInf(interval.Snap(math.Inf(1), 1e-6), 1), "infinity passes through")
}
