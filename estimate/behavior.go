package estimate

import (
	"math"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/numeric"
	"github.com/funcspan/funcspan/symbolic"
)

const (
	// divergenceThreshold marks a probe magnitude as unbounded growth.
	divergenceThreshold = 1e10
	// extremeThreshold is the dense-sweep cutoff for spike detection.
	extremeThreshold = 1e12
	// oscillationRatio is the minimum consecutive growth factor of an
	// oscillation ring before it counts toward divergence.
	oscillationRatio = 2.0
	// oscillationStreak is how many consecutive ratio exceedances, together
	// with a sign change, flag growing oscillation.
	oscillationStreak = 3
)

// probeRing holds the magnitudes sampled when probing behavior toward an
// infinity. The multiplicative steps are dense enough that decaying
// envelopes still leave several finite samples.
var probeRing = []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 1e4, 2e4, 5e4, 1e5}

// Behavior captures what the function does toward the edges of its domain.
type Behavior struct {
	// UnboundedAbove and UnboundedBelow report detected divergence in the
	// respective direction of the value axis.
	UnboundedAbove bool
	UnboundedBelow bool
	// LimitLeft and LimitRight are the limits toward -inf and +inf when the
	// domain reaches that far.
	LimitLeft  symbolic.LimitResult
	LimitRight symbolic.LimitResult
}

// analyzeBehavior combines symbolic limits at the infinities, numeric probe
// rings, pole scans and a dense magnitude sweep. Oversensitivity is
// deliberate: a false unbounded flag widens the estimate, a missed one
// truncates it.
func analyzeBehavior(e symbolic.Expr, varName string, dom interval.Set, f numeric.Fn) Behavior {
	var b Behavior

	if !dom.BoundedBelow() {
		b.LimitLeft = symbolic.LimitAtInfinity(e, varName, false)
		b.absorb(b.LimitLeft)
		b.probeToward(f, -1)
	}
	if !dom.BoundedAbove() {
		b.LimitRight = symbolic.LimitAtInfinity(e, varName, true)
		b.absorb(b.LimitRight)
		b.probeToward(f, 1)
	}

	b.scanPoles(e, varName, f)
	b.denseSweep(f, dom)
	return b
}

// absorb folds a symbolic limit outcome into the divergence flags.
func (b *Behavior) absorb(r symbolic.LimitResult) {
	switch r.Kind {
	case symbolic.LimitPosInf:
		b.UnboundedAbove = true
	case symbolic.LimitNegInf:
		b.UnboundedBelow = true
	case symbolic.LimitRange:
		if math.IsInf(r.Hi, 1) {
			b.UnboundedAbove = true
		}
		if math.IsInf(r.Lo, -1) {
			b.UnboundedBelow = true
		}
	}
}

// probeToward samples the ring of magnitudes toward one infinity, looking
// for monotone divergence and for growing oscillation.
func (b *Behavior) probeToward(f numeric.Fn, sign float64) {
	var (
		vals    []float64
		streak  int
		flipped bool
	)
	for _, m := range probeRing {
		v := f(sign * m)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if len(vals) > 0 {
			prev := vals[len(vals)-1]
			if math.Abs(prev) > 0 && math.Abs(v) > oscillationRatio*math.Abs(prev) {
				streak++
			} else {
				streak = 0
			}
			if v*prev < 0 {
				flipped = true
			}
		}
		vals = append(vals, v)
		if math.Abs(v) > divergenceThreshold {
			if v > 0 {
				b.UnboundedAbove = true
			} else {
				b.UnboundedBelow = true
			}
		}
	}
	// Growing oscillation sweeps both directions of the value axis.
	if streak >= oscillationStreak && flipped {
		b.UnboundedAbove = true
		b.UnboundedBelow = true
	}
}

// scanPoles inspects the zeros of every denominator and takes one-sided
// limits there.
func (b *Behavior) scanPoles(e symbolic.Expr, varName string, f numeric.Fn) {
	for _, den := range symbolic.Denominators(e) {
		zeros, err := symbolic.ZeroSet(den, varName)
		if err != nil {
			continue
		}
		for _, z := range zeros {
			b.probePole(f, z)
		}
	}
}

// probePole approaches a pole from both flanks on shrinking offsets. A
// magnitude that keeps escalating as the offset shrinks marks divergence in
// the direction of the last sample's sign.
func (b *Behavior) probePole(f numeric.Fn, z float64) {
	for _, side := range []float64{-1, 1} {
		var last float64
		escalating := true
		seen := 0
		for _, eps := range []float64{1e-3, 1e-5, 1e-7} {
			v := f(z + side*eps)
			if math.IsNaN(v) {
				continue
			}
			if math.IsInf(v, 0) || math.Abs(v) > divergenceThreshold {
				b.flagSign(v)
				escalating = false
				break
			}
			if seen > 0 && math.Abs(v) <= math.Abs(last) {
				escalating = false
			}
			last = v
			seen++
		}
		if escalating && seen >= 2 && math.Abs(last) > 1e5 {
			b.flagSign(last)
		}
	}
}

func (b *Behavior) flagSign(v float64) {
	if v > 0 {
		b.UnboundedAbove = true
	} else {
		b.UnboundedBelow = true
	}
}

// denseSweep looks for magnitude spikes across the whole sampling plan.
func (b *Behavior) denseSweep(f numeric.Fn, dom interval.Set) {
	for _, x := range numeric.DomainGrid(dom, f) {
		v := f(x)
		switch {
		case math.IsInf(v, 1) || v > extremeThreshold:
			b.UnboundedAbove = true
		case math.IsInf(v, -1) || v < -extremeThreshold:
			b.UnboundedBelow = true
		}
	}
}
