package estimate

import (
	"math"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/numeric"
	"github.com/funcspan/funcspan/symbolic"
)

// optBound clamps the optimizer search window; the sampling grid reaches
// further (numeric.GenBound) but randomized search stays near the origin
// where the interesting structure of typical inputs lives.
const optBound = 100.0

// numericalRange is the estimation of last resort: dense sampling over the
// domain plan, stationary points of a numerically evaluated derivative, and
// a global optimization pass for each bound. It cannot fail as long as the
// function has at least one real sample.
func (est *Estimator) numericalRange(e symbolic.Expr, varName string, dom interval.Set, f numeric.Fn, b Behavior) (interval.Set, error) {
	grid := est.opts.Kernel.Grid(dom, f)
	_, vals := numeric.FiniteSamples(f, grid)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// Stationary points of the derivative refine the bounds between grid
	// nodes. The derivative is evaluated numerically, so this works even
	// when the symbolic layer gave up on the expression.
	if df, err := symbolic.Compile(e.Diff(varName).Simplify(), varName); err == nil {
		dfn := numeric.Wrap(df)
		for _, iv := range clampPieces(dom) {
			for _, cp := range numeric.CriticalPoints(dfn, iv.Lo, iv.Hi, 0) {
				v := f(cp)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
		}
	}

	// Global optimization for each bound, per domain piece.
	for _, iv := range clampPieces(dom) {
		if _, fmin := est.opts.Kernel.Minimize(f, iv.Lo, iv.Hi, est.opts.Seed); !math.IsNaN(fmin) && fmin < lo {
			lo = fmin
		}
		neg := func(x float64) float64 { return -f(x) }
		if _, fneg := est.opts.Kernel.Minimize(neg, iv.Lo, iv.Hi, est.opts.Seed); !math.IsNaN(fneg) && -fneg > hi {
			hi = -fneg
		}
	}

	if lo > hi {
		return interval.Set{}, ErrNoRealValues
	}

	lo = interval.Snap(lo, est.opts.SnapTol)
	hi = interval.Snap(hi, est.opts.SnapTol)

	loOpen, hiOpen := false, false
	if b.UnboundedBelow {
		lo, loOpen = math.Inf(-1), true
	}
	if b.UnboundedAbove {
		hi, hiOpen = math.Inf(1), true
	}
	iv, err := interval.New(lo, hi, loOpen, hiOpen)
	if err != nil {
		return interval.Set{}, err
	}
	return interval.NewSet(iv), nil
}

// clampPieces restricts domain pieces to the optimizer window, nudging open
// endpoints inward.
func clampPieces(dom interval.Set) []interval.Interval {
	var out []interval.Interval
	for _, iv := range dom.Intervals() {
		lo, hi := iv.Lo, iv.Hi
		if math.IsInf(lo, -1) {
			lo = -optBound
		} else if iv.LoOpen {
			lo += numeric.EdgeBuffer
		}
		if math.IsInf(hi, 1) {
			hi = optBound
		} else if iv.HiOpen {
			hi -= numeric.EdgeBuffer
		}
		if lo >= hi {
			continue
		}
		out = append(out, interval.Interval{Lo: lo, Hi: hi})
	}
	return out
}

// hybridRange resolves the bounded side of a half-unbounded function
// numerically and takes the other side from the behavior flags.
func (est *Estimator) hybridRange(dom interval.Set, f numeric.Fn, b Behavior) (interval.Set, string, error) {
	grid := est.opts.Kernel.Grid(dom, f)
	_, vals := numeric.FiniteSamples(f, grid)
	if len(vals) == 0 {
		return interval.Set{}, "", ErrNoRealValues
	}

	if b.UnboundedAbove && !b.UnboundedBelow {
		lo := math.Inf(1)
		for _, v := range vals {
			if v < lo {
				lo = v
			}
		}
		for _, iv := range clampPieces(dom) {
			if _, fmin := est.opts.Kernel.Minimize(f, iv.Lo, iv.Hi, est.opts.Seed); !math.IsNaN(fmin) && fmin < lo {
				lo = fmin
			}
		}
		lo = interval.Snap(lo, est.opts.SnapTol)
		return interval.NewSet(interval.AtLeast(lo)), MethodHybridMin, nil
	}

	hi := math.Inf(-1)
	for _, v := range vals {
		if v > hi {
			hi = v
		}
	}
	neg := func(x float64) float64 { return -f(x) }
	for _, iv := range clampPieces(dom) {
		if _, fneg := est.opts.Kernel.Minimize(neg, iv.Lo, iv.Hi, est.opts.Seed); !math.IsNaN(fneg) && -fneg > hi {
			hi = -fneg
		}
	}
	hi = interval.Snap(hi, est.opts.SnapTol)
	return interval.NewSet(interval.AtMost(hi)), MethodHybridMax, nil
}
