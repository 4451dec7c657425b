package numeric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/funcspan/funcspan/interval"
)

const (
	// GenBound clamps unbounded domain ends for sampling purposes.
	GenBound = 1000.0
	// EdgeBuffer nudges samples off open endpoints.
	EdgeBuffer = 1e-8
	// gridPoints is the sample count per scale ring.
	gridPoints = 2000
	// adaptiveBase and adaptiveExtra size the slope-driven refinement pass
	// layered on top of the uniform grids.
	adaptiveBase  = 301
	adaptiveExtra = 8
)

// gridScales are the nested sampling windows of the multi-scale grid: a
// dense look near the origin plus progressively wider, coarser rings.
var gridScales = []float64{10, 100, 1000}

// gapEpsilons are the offsets probed on both sides of an excluded point.
var gapEpsilons = []float64{1e-3, 1e-5, 1e-7}

// SpecialPoints returns the landmark inputs sampled in addition to the
// uniform grids: origin, magnitudes from 1e-3 up through 100 symmetric
// around 0, and the usual constants.
func SpecialPoints() []float64 {
	return []float64{
		0, 0.001, -0.001, 0.01, -0.01, 0.1, -0.1, 0.5, -0.5,
		1, -1, 2, -2, 3, -3, 5, -5, 10, -10, 100, -100,
		math.E, -math.E, math.Pi, -math.Pi, 1 / math.E, -1 / math.E,
	}
}

// Linspace returns n evenly spaced points spanning [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 || lo >= hi {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// MultiScaleGrid builds the union of scale-windowed uniform grids clipped to
// [lo, hi], sorted and deduplicated.
func MultiScaleGrid(lo, hi float64) []float64 {
	var out []float64
	for _, scale := range gridScales {
		a := math.Max(lo, -scale)
		b := math.Min(hi, scale)
		if a >= b {
			continue
		}
		out = append(out, Linspace(a, b, gridPoints)...)
	}
	if len(out) == 0 && lo <= hi {
		out = Linspace(lo, hi, gridPoints)
	}
	return sortDedup(out)
}

// DomainGrid assembles the full sampling plan for a domain: a multi-scale
// grid per interval piece (clamped to ±GenBound, nudged off open ends),
// a slope-adaptive refinement of each piece when f is non-nil, landmark
// points, and probes on both flanks of every interior gap.
func DomainGrid(dom interval.Set, f Fn) []float64 {
	var out []float64
	for _, iv := range dom.Intervals() {
		lo, hi := iv.Lo, iv.Hi
		if math.IsInf(lo, -1) {
			lo = -GenBound
		} else if iv.LoOpen {
			lo += EdgeBuffer
		}
		if math.IsInf(hi, 1) {
			hi = GenBound
		} else if iv.HiOpen {
			hi -= EdgeBuffer
		}
		if lo > hi {
			continue
		}
		out = append(out, MultiScaleGrid(lo, hi)...)
		if f != nil && lo < hi {
			out = append(out, AdaptiveGrid(f, lo, hi, adaptiveBase, adaptiveExtra)...)
		}
	}
	for _, p := range SpecialPoints() {
		if dom.Contains(p) {
			out = append(out, p)
		}
	}
	for _, p := range GapProbes(dom.Gaps()) {
		if dom.Contains(p) {
			out = append(out, p)
		}
	}
	return sortDedup(out)
}

// GapProbes returns approach samples on both sides of each excluded point.
func GapProbes(points []float64) []float64 {
	out := make([]float64, 0, 2*len(gapEpsilons)*len(points))
	for _, p := range points {
		for _, eps := range gapEpsilons {
			out = append(out, p-eps, p+eps)
		}
	}
	return out
}

// AdaptiveGrid refines a uniform base grid where f changes fastest: each
// consecutive pair whose secant slope magnitude lands in the top quarter
// gets midpoint subdivisions. The result is sorted and deduplicated.
func AdaptiveGrid(f Fn, lo, hi float64, base, extraPerCell int) []float64 {
	if base < 2 {
		base = 2
	}
	xs := Linspace(lo, hi, base)
	slopes := make([]float64, 0, len(xs)-1)
	maxSlope := 0.0
	for i := 0; i+1 < len(xs); i++ {
		a, b := f(xs[i]), f(xs[i+1])
		s := math.Abs(b-a) / (xs[i+1] - xs[i])
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		slopes = append(slopes, s)
		if s > maxSlope {
			maxSlope = s
		}
	}
	if maxSlope == 0 {
		return xs
	}
	out := append([]float64(nil), xs...)
	for i, s := range slopes {
		if s < 0.25*maxSlope {
			continue
		}
		out = append(out, Linspace(xs[i], xs[i+1], extraPerCell+2)...)
	}
	return sortDedup(out)
}

func sortDedup(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	sort.Float64s(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
