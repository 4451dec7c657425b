package estimate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/numeric"
	"github.com/funcspan/funcspan/symbolic"
)

// Method tags name the strategy that produced a result, in cascade order.
const (
	MethodExactRange  = "Exact (function_range)"
	MethodExactMinMax = "Exact (min/max)"
	MethodExactLimits = "Exact (limit analysis)"
	MethodHybridMin   = "Hybrid (limits + min)"
	MethodHybridMax   = "Hybrid (limits + max)"
	MethodNumerical   = "Numerical"
	MethodError       = "Error"
)

var (
	// ErrMultiVariable rejects expressions of more than one symbol.
	ErrMultiVariable = errors.New("estimate: expression has more than one variable")
	// ErrNoRealValues means the expression is never real on the sampled set.
	ErrNoRealValues = errors.New("estimate: no real values on the domain")
	// ErrEmptyDomain means the continuous domain is empty.
	ErrEmptyDomain = errors.New("estimate: empty real domain")
)

// DefaultSymbolicDeadline bounds each symbolic stage before the cascade
// abandons the symbolic layer and falls through to numerics.
const DefaultSymbolicDeadline = 2 * time.Second

// Options configures an Estimator. The zero value is usable: every field
// has a default filled in by New.
type Options struct {
	// SymbolicDeadline is the per-stage time limit for symbolic work. Zero
	// selects DefaultSymbolicDeadline; negative disables the symbolic layer
	// entirely, which forces the numerical strategy.
	SymbolicDeadline time.Duration
	// Seed feeds randomized optimization. Zero selects the fixed default.
	Seed int64
	// SnapTol is the canonical-constant snap tolerance for numeric bounds.
	// Zero selects interval.DefaultSnapTol.
	SnapTol float64
	// Kernel supplies grid generation and bounded minimization. Nil selects
	// numeric.PureKernel.
	Kernel numeric.Kernel
	// Logger receives per-stage debug events. Nil selects a no-op logger.
	Logger *zap.Logger
}

// Timing records where an estimation spent its time.
type Timing struct {
	Symbolic time.Duration
	Numeric  time.Duration
	Total    time.Duration
}

// Result is a completed estimation. When Err is non-nil, Method is
// MethodError and the sets are empty.
type Result struct {
	Input    string
	Variable string
	Domain   interval.Set
	Range    interval.Set
	Method   string
	Err      error
	Timing   Timing
}

// Estimator runs the strategy cascade. It is safe for concurrent use.
type Estimator struct {
	opts Options
	log  *zap.Logger
}

// New builds an Estimator, filling zero-valued options with defaults.
func New(opts Options) *Estimator {
	if opts.SymbolicDeadline == 0 {
		opts.SymbolicDeadline = DefaultSymbolicDeadline
	}
	if opts.Kernel == nil {
		opts.Kernel = numeric.PureKernel{}
	}
	if opts.SnapTol <= 0 {
		opts.SnapTol = interval.DefaultSnapTol
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Estimator{opts: opts, log: opts.Logger}
}

// Estimate parses src and runs the cascade: exact image, exact extrema,
// limit analysis (pure or hybrid), then the numerical fallback. The first
// strategy to accept wins. A timeout in any symbolic stage skips the
// remaining symbolic stages and goes straight to numerics.
func (est *Estimator) Estimate(src string) Result {
	start := time.Now()
	res := est.estimate(src)
	res.Timing.Total = time.Since(start)
	res.Input = src
	if res.Err != nil {
		res.Method = MethodError
	}
	return res
}

func (est *Estimator) estimate(src string) Result {
	e, err := symbolic.Parse(src)
	if err != nil {
		return Result{Err: err}
	}
	e = e.Simplify()

	varName, err := soleVariable(e)
	if err != nil {
		return Result{Err: err}
	}

	// Constant expressions short-circuit the whole cascade.
	if varName == "" {
		v, ok := e.Eval()
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{Err: fmt.Errorf("%w: constant does not evaluate", ErrNoRealValues)}
		}
		return Result{
			Variable: "x",
			Domain:   interval.WholeLine(),
			Range:    interval.NewSet(interval.Point(v)),
			Method:   MethodExactRange,
		}
	}

	cf, err := symbolic.Compile(e, varName)
	if err != nil {
		return Result{Err: err}
	}
	f := numeric.Wrap(cf)

	deadline := est.opts.SymbolicDeadline
	symStart := time.Now()
	timedOut := false

	// Domain resolution. Unsupported or timed-out resolution degrades to
	// the whole line: the numeric layer discards non-real samples anyway.
	dom := interval.WholeLine()
	domKnown := false
	if d, ok := runWithTimeout(deadline, func() domainResult {
		s, derr := symbolic.ContinuousDomain(e, varName)
		return domainResult{s, derr}
	}); ok {
		switch {
		case d.err == nil:
			dom, domKnown = d.set, true
		default:
			est.log.Warn("domain resolution degraded",
				zap.String("expr", src), zap.Error(d.err))
		}
	} else {
		timedOut = true
		est.log.Warn("domain resolution timed out", zap.String("expr", src))
	}
	if domKnown && dom.IsEmpty() {
		return Result{Variable: varName, Err: ErrEmptyDomain}
	}

	res := Result{Variable: varName, Domain: dom}

	// Stage 1: exact image.
	if !timedOut {
		if out, ok := runWithTimeout(deadline, func() rangeResult {
			s, rerr := symbolic.Image(e, varName, dom)
			return rangeResult{s, rerr}
		}); !ok {
			timedOut = true
		} else if out.err == nil && !out.set.IsEmpty() {
			res.Range, res.Method = out.set, MethodExactRange
			res.Timing.Symbolic = time.Since(symStart)
			return res
		}
	}

	// Stage 2: exact extrema.
	if !timedOut {
		if out, ok := runWithTimeout(deadline, func() extremaResult {
			min, max, xerr := symbolic.Extrema(e, varName, dom)
			return extremaResult{min, max, xerr}
		}); !ok {
			timedOut = true
		} else if out.err == nil {
			if s, serr := extremaSet(out.min, out.max); serr == nil {
				res.Range, res.Method = s, MethodExactMinMax
				res.Timing.Symbolic = time.Since(symStart)
				return res
			}
		}
	}

	// Stage 3: limit analysis, pure or hybrid.
	var (
		b        Behavior
		haveFlag bool
	)
	if !timedOut {
		if out, ok := runWithTimeout(deadline, func() Behavior {
			return analyzeBehavior(e, varName, dom, f)
		}); !ok {
			timedOut = true
		} else {
			b, haveFlag = out, true
		}
	}
	res.Timing.Symbolic = time.Since(symStart)

	numStart := time.Now()
	if haveFlag {
		switch {
		case b.UnboundedAbove && b.UnboundedBelow:
			res.Range, res.Method = interval.WholeLine(), MethodExactLimits
			return res
		case b.UnboundedAbove != b.UnboundedBelow:
			if s, method, herr := est.hybridRange(dom, f, b); herr == nil {
				res.Range, res.Method = s, method
				res.Timing.Numeric = time.Since(numStart)
				return res
			}
		}
	}

	// Stage 4: numerical fallback. Behavior flags may be absent after a
	// timeout; re-derive the cheap numeric-only subset.
	if !haveFlag {
		b = numericOnlyBehavior(f, dom)
	}
	s, nerr := est.numericalRange(e, varName, dom, f, b)
	res.Timing.Numeric = time.Since(numStart)
	if nerr != nil {
		return Result{Variable: varName, Domain: dom, Err: nerr}
	}
	res.Range, res.Method = s, MethodNumerical
	return res
}

type domainResult struct {
	set interval.Set
	err error
}

type rangeResult struct {
	set interval.Set
	err error
}

type extremaResult struct {
	min, max symbolic.Bound
	err      error
}

// soleVariable returns the single free variable of e, "" for constants, and
// ErrMultiVariable otherwise.
func soleVariable(e symbolic.Expr) (string, error) {
	vars := symbolic.FreeVars(e)
	switch len(vars) {
	case 0:
		return "", nil
	case 1:
		for name := range vars {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %d symbols", ErrMultiVariable, len(vars))
}

// extremaSet builds the range interval from extremum bounds, open at any
// bound that is approached but not attained.
func extremaSet(min, max symbolic.Bound) (interval.Set, error) {
	loOpen := !min.Attained || math.IsInf(min.Value, 0)
	hiOpen := !max.Attained || math.IsInf(max.Value, 0)
	iv, err := interval.New(min.Value, max.Value, loOpen, hiOpen)
	if err != nil {
		return interval.Set{}, err
	}
	return interval.NewSet(iv), nil
}

// numericOnlyBehavior derives divergence flags without the symbolic layer,
// for use after a symbolic timeout.
func numericOnlyBehavior(f numeric.Fn, dom interval.Set) Behavior {
	var b Behavior
	if !dom.BoundedBelow() {
		b.probeToward(f, -1)
	}
	if !dom.BoundedAbove() {
		b.probeToward(f, 1)
	}
	b.denseSweep(f, dom)
	return b
}
