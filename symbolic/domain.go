package symbolic

import (
	"math"
	"sort"

	"github.com/funcspan/funcspan/interval"
)

// ContinuousDomain computes the subset of the real line on which e is
// real-valued and continuous, as a normalized interval set. Shapes whose
// exclusion sets are not finitely describable (tan, sin inside a
// denominator) return ErrUnsupported, and the caller is expected to degrade
// to a numeric treatment.
func ContinuousDomain(e Expr, varName string) (interval.Set, error) {
	return domainOf(e.Simplify(), varName)
}

func domainOf(e Expr, varName string) (interval.Set, error) {
	switch t := e.(type) {
	case *Num, *Sym:
		return interval.WholeLine(), nil
	case *Add:
		acc := interval.WholeLine()
		for _, term := range t.terms {
			d, err := domainOf(term, varName)
			if err != nil {
				return interval.Set{}, err
			}
			acc = interval.Intersect(acc, d)
		}
		return acc, nil
	case *Mul:
		acc := interval.WholeLine()
		for _, f := range t.factors {
			d, err := domainOf(f, varName)
			if err != nil {
				return interval.Set{}, err
			}
			acc = interval.Intersect(acc, d)
		}
		return acc, nil
	case *Pow:
		return powDomain(t, varName)
	case *Call:
		return callDomain(t, varName)
	}
	return interval.Set{}, ErrUnsupported
}

func powDomain(p *Pow, varName string) (interval.Set, error) {
	bd, err := domainOf(p.base, varName)
	if err != nil {
		return interval.Set{}, err
	}
	ed, err := domainOf(p.exp, varName)
	if err != nil {
		return interval.Set{}, err
	}
	d := interval.Intersect(bd, ed)

	en, constExp := p.exp.(*Num)
	if !constExp {
		// Symbolic exponent: defined where the base is strictly positive.
		pos, err := SolveSign(p.base, varName, true)
		if err != nil {
			return interval.Set{}, err
		}
		return interval.Intersect(d, pos), nil
	}

	switch {
	case en.IsInteger() && en.val >= 0:
		return d, nil
	case en.IsInteger():
		// Negative integer power: puncture the zeros of the base.
		zeros, err := ZeroSet(p.base, varName)
		if err != nil {
			return interval.Set{}, err
		}
		return d.Without(zeros...), nil
	case en.val > 0:
		// Fractional positive power (even roots included): base >= 0.
		nn, err := SolveSign(p.base, varName, false)
		if err != nil {
			return interval.Set{}, err
		}
		return interval.Intersect(d, nn), nil
	default:
		pos, err := SolveSign(p.base, varName, true)
		if err != nil {
			return interval.Set{}, err
		}
		return interval.Intersect(d, pos), nil
	}
}

func callDomain(c *Call, varName string) (interval.Set, error) {
	ad, err := domainOf(c.arg, varName)
	if err != nil {
		return interval.Set{}, err
	}
	switch c.name {
	case fnLn:
		pos, err := SolveSign(c.arg, varName, true)
		if err != nil {
			return interval.Set{}, err
		}
		return interval.Intersect(ad, pos), nil
	case fnAsin, fnAcos:
		// Requires -1 <= arg <= 1.
		lo, err := SolveSign(AddOf(c.arg, N(1)), varName, false)
		if err != nil {
			return interval.Set{}, err
		}
		hi, err := SolveSign(SubExpr(N(1), c.arg), varName, false)
		if err != nil {
			return interval.Set{}, err
		}
		return interval.Intersect(ad, interval.Intersect(lo, hi)), nil
	case fnTan:
		// Periodic pole set, not finitely describable.
		return interval.Set{}, ErrUnsupported
	default:
		return ad, nil
	}
}

// SolveSign returns the region where e > 0 (strict) or e >= 0. The region
// is assembled from the algebraic breakpoints of e (zeros of its polynomial
// kernel and of its denominators) with a sign test at interior sample
// points. ErrUnsupported when the breakpoints cannot be enumerated.
func SolveSign(e Expr, varName string, strict bool) (interval.Set, error) {
	e = e.Simplify()
	if v, ok := e.Eval(); ok {
		if v > 0 || (!strict && v == 0) {
			return interval.WholeLine(), nil
		}
		return interval.NewSet(), nil
	}

	breaks, err := signBreakpoints(e, varName)
	if err != nil {
		return interval.Set{}, err
	}

	f, err := Compile(e, varName)
	if err != nil {
		return interval.Set{}, err
	}
	sampleSign := func(x float64) int {
		z := f(complex(x, 0))
		if math.Abs(imag(z)) > 1e-9 {
			return -1 // non-real counts as excluded
		}
		v := real(z)
		switch {
		case math.IsNaN(v):
			return -1
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	}

	var ivs []interval.Interval
	addRegion := func(lo, hi float64) {
		mid := midpoint(lo, hi)
		if sampleSign(mid) <= 0 {
			return
		}
		loOpen := strict || !zeroAt(e, varName, lo)
		hiOpen := strict || !zeroAt(e, varName, hi)
		if math.IsInf(lo, 0) {
			loOpen = true
		}
		if math.IsInf(hi, 0) {
			hiOpen = true
		}
		iv, err := interval.New(lo, hi, loOpen, hiOpen)
		if err != nil {
			return
		}
		ivs = append(ivs, iv)
	}

	if len(breaks) == 0 {
		if sampleSign(0) > 0 || sampleSign(1) > 0 || sampleSign(-1) > 0 {
			return interval.WholeLine(), nil
		}
		return interval.NewSet(), nil
	}

	addRegion(math.Inf(-1), breaks[0])
	for i := 0; i+1 < len(breaks); i++ {
		addRegion(breaks[i], breaks[i+1])
	}
	addRegion(breaks[len(breaks)-1], math.Inf(1))

	if !strict {
		// Isolated zeros between two negative regions still belong to >= 0.
		for _, b := range breaks {
			if zeroAt(e, varName, b) {
				ivs = append(ivs, interval.Point(b))
			}
		}
	}
	return interval.NewSet(ivs...), nil
}

func signBreakpoints(e Expr, varName string) ([]float64, error) {
	var pts []float64
	if num, den, ok := AsQuotient(e); ok {
		nz, err := ZeroSet(num, varName)
		if err != nil {
			return nil, err
		}
		dz, err := ZeroSet(den, varName)
		if err != nil {
			return nil, err
		}
		pts = append(append(pts, nz...), dz...)
	} else {
		z, err := ZeroSet(e, varName)
		if err != nil {
			return nil, err
		}
		pts = append(pts, z...)
	}
	sort.Float64s(pts)
	return dedupSorted(pts, 1e-12), nil
}

func midpoint(lo, hi float64) float64 {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(lo, -1):
		return hi - 1
	case math.IsInf(hi, 1):
		return lo + 1
	}
	return 0.5 * (lo + hi)
}

func zeroAt(e Expr, varName string, x float64) bool {
	if math.IsInf(x, 0) {
		return false
	}
	v, ok := e.Sub(varName, N(x)).Simplify().Eval()
	return ok && math.Abs(v) <= 1e-12
}
