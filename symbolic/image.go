package symbolic

import (
	"math"

	"github.com/funcspan/funcspan/interval"
)

// Image computes the exact image of e over dom when the expression's shape
// admits it: quadratic polynomials (vertex rule) and trees in which the
// variable occurs exactly once (monotone and piecewise interval maps).
// Everything else returns ErrUnsupported.
func Image(e Expr, varName string, dom interval.Set) (interval.Set, error) {
	e = e.Simplify()
	if dom.IsEmpty() {
		return interval.Set{}, ErrUndefined
	}
	if v, ok := e.Eval(); ok {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return interval.Set{}, ErrUndefined
		}
		return interval.NewSet(interval.Point(v)), nil
	}
	if coeffs, ok := PolyCoeffs(e, varName); ok && trimDeg(coeffs) <= 2 {
		return polyImage(coeffs, dom)
	}
	if occurrences(e, varName) == 1 {
		return treeImage(e, varName, dom)
	}
	return interval.Set{}, ErrUnsupported
}

// polyImage maps dom through a polynomial of degree at most two.
func polyImage(coeffs []float64, dom interval.Set) (interval.Set, error) {
	for len(coeffs) < 3 {
		coeffs = append(coeffs, 0)
	}
	c, b, a := coeffs[0], coeffs[1], coeffs[2]
	f := func(x float64) float64 { return (a*x+b)*x + c }
	fLin := func(x float64) float64 {
		if math.IsInf(x, 0) {
			return math.Copysign(x, b*x)
		}
		return b*x + c
	}

	var out []interval.Interval
	for _, iv := range dom.Intervals() {
		if a == 0 {
			out = append(out, monotoneMap(iv, fLin, b >= 0))
			continue
		}
		vertex := -b / (2 * a)
		if iv.Contains(vertex) {
			// Split at the attained extremum.
			left := interval.Interval{Lo: iv.Lo, Hi: vertex, LoOpen: iv.LoOpen}
			right := interval.Interval{Lo: vertex, Hi: iv.Hi, HiOpen: iv.HiOpen}
			out = append(out,
				monotoneMap(left, f, a < 0),
				monotoneMap(right, f, a > 0))
			continue
		}
		increasing := (a > 0) == (iv.Lo >= vertex)
		out = append(out, monotoneMap(iv, f, increasing))
	}
	return interval.NewSet(out...), nil
}

// monotoneMap maps an interval through a monotone function, carrying the
// open/closed flags to the matching image endpoints. Infinite endpoints are
// resolved by the function's own extended-value behavior.
func monotoneMap(iv interval.Interval, f func(float64) float64, increasing bool) interval.Interval {
	lo, hi := f(iv.Lo), f(iv.Hi)
	loOpen, hiOpen := iv.LoOpen, iv.HiOpen
	if !increasing {
		lo, hi = hi, lo
		loOpen, hiOpen = hiOpen, loOpen
	}
	if lo > hi {
		lo, hi = hi, lo
		loOpen, hiOpen = hiOpen, loOpen
	}
	out, err := interval.New(lo, hi, loOpen, hiOpen)
	if err != nil {
		return interval.Point(lo)
	}
	return out
}

// treeImage maps dom through an expression containing exactly one variable
// occurrence, composing interval maps from the leaf outward.
func treeImage(e Expr, varName string, s interval.Set) (interval.Set, error) {
	switch t := e.(type) {
	case *Sym:
		if t.name == varName {
			return s, nil
		}
		return interval.Set{}, ErrUnsupported
	case *Add:
		shift := 0.0
		var inner Expr
		for _, term := range t.terms {
			if occurrences(term, varName) > 0 {
				inner = term
				continue
			}
			v, ok := term.Eval()
			if !ok {
				return interval.Set{}, ErrUnsupported
			}
			shift += v
		}
		is, err := treeImage(inner, varName, s)
		if err != nil {
			return interval.Set{}, err
		}
		return mapSet(is, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, func(x float64) float64 { return x + shift }, true)}
		}), nil
	case *Mul:
		scale := 1.0
		var inner Expr
		for _, f := range t.factors {
			if occurrences(f, varName) > 0 {
				inner = f
				continue
			}
			v, ok := f.Eval()
			if !ok {
				return interval.Set{}, ErrUnsupported
			}
			scale *= v
		}
		is, err := treeImage(inner, varName, s)
		if err != nil {
			return interval.Set{}, err
		}
		if scale == 0 {
			return interval.NewSet(interval.Point(0)), nil
		}
		k := scale
		return mapSet(is, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, func(x float64) float64 { return k * x }, k > 0)}
		}), nil
	case *Pow:
		return powImage(t, varName, s)
	case *Call:
		is, err := treeImage(t.arg, varName, s)
		if err != nil {
			return interval.Set{}, err
		}
		return callImage(t.name, is)
	}
	return interval.Set{}, ErrUnsupported
}

func mapSet(s interval.Set, f func(interval.Interval) []interval.Interval) interval.Set {
	var out []interval.Interval
	for _, iv := range s.Intervals() {
		out = append(out, f(iv)...)
	}
	return interval.NewSet(out...)
}

func powImage(p *Pow, varName string, s interval.Set) (interval.Set, error) {
	if en, ok := p.exp.(*Num); ok {
		is, err := treeImage(p.base, varName, s)
		if err != nil {
			return interval.Set{}, err
		}
		return constExpImage(is, en.val)
	}
	bn, ok := p.base.(*Num)
	if !ok || bn.val <= 0 {
		return interval.Set{}, ErrUnsupported
	}
	is, err := treeImage(p.exp, varName, s)
	if err != nil {
		return interval.Set{}, err
	}
	base := bn.val
	if base == 1 {
		return interval.NewSet(interval.Point(1)), nil
	}
	f := func(x float64) float64 {
		if math.IsInf(x, 0) {
			if (x > 0) == (base > 1) {
				return math.Inf(1)
			}
			return 0
		}
		return math.Pow(base, x)
	}
	return mapSet(is, func(iv interval.Interval) []interval.Interval {
		return []interval.Interval{monotoneMap(iv, f, base > 1)}
	}), nil
}

// constExpImage maps an interval set through x^k for constant k.
func constExpImage(s interval.Set, k float64) (interval.Set, error) {
	switch {
	case k == 0:
		return interval.NewSet(interval.Point(1)), nil
	case k == 1:
		return s, nil
	case k == -1:
		return mapSet(s, recipPieces), nil
	case k < 0:
		// x^k = (x^|k|)^-1
		pos, err := constExpImage(s, -k)
		if err != nil {
			return interval.Set{}, err
		}
		return mapSet(pos, recipPieces), nil
	case k == math.Trunc(k) && int64(k)%2 == 0:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return evenPowPieces(iv, k)
		}), nil
	case k == math.Trunc(k):
		f := func(x float64) float64 { return oddPow(x, k) }
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, f, true)}
		}), nil
	default:
		// Fractional exponent: the continuous domain already restricts the
		// base to nonnegative reals, where x^k is monotone increasing.
		f := func(x float64) float64 {
			if x < 0 {
				return math.NaN()
			}
			return math.Pow(x, k)
		}
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, f, true)}
		}), nil
	}
}

func oddPow(x, k float64) float64 {
	if x < 0 {
		return -math.Pow(-x, k)
	}
	return math.Pow(x, k)
}

// recipPieces maps an interval through 1/x, splitting at zero.
func recipPieces(iv interval.Interval) []interval.Interval {
	if iv.Lo < 0 && iv.Hi > 0 {
		neg := interval.Interval{Lo: iv.Lo, Hi: 0, LoOpen: iv.LoOpen, HiOpen: true}
		pos := interval.Interval{Lo: 0, Hi: iv.Hi, LoOpen: true, HiOpen: iv.HiOpen}
		return append(recipPieces(neg), recipPieces(pos)...)
	}
	if iv.Lo == 0 && iv.Hi == 0 {
		return nil
	}
	// The interval sits on one side of zero: 1/x is monotone decreasing on
	// it, and a zero endpoint maps to the infinity of the interval's side.
	signedRecip := func(x float64) float64 {
		if x == 0 {
			if iv.Lo < 0 {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return 1 / x
	}
	lo := signedRecip(iv.Hi)
	hi := signedRecip(iv.Lo)
	loOpen, hiOpen := iv.HiOpen, iv.LoOpen
	if lo > hi {
		lo, hi = hi, lo
		loOpen, hiOpen = hiOpen, loOpen
	}
	out, err := interval.New(lo, hi, loOpen, hiOpen)
	if err != nil {
		return nil
	}
	return []interval.Interval{out}
}

// evenPowPieces maps an interval through x^k for even positive k.
func evenPowPieces(iv interval.Interval, k float64) []interval.Interval {
	f := func(x float64) float64 {
		if math.IsInf(x, 0) {
			return math.Inf(1)
		}
		return math.Pow(math.Abs(x), k)
	}
	if iv.Contains(0) {
		left := interval.Interval{Lo: iv.Lo, Hi: 0, LoOpen: iv.LoOpen}
		right := interval.Interval{Lo: 0, Hi: iv.Hi, HiOpen: iv.HiOpen}
		return []interval.Interval{
			monotoneMap(left, f, false),
			monotoneMap(right, f, true),
		}
	}
	return []interval.Interval{monotoneMap(iv, f, iv.Lo >= 0)}
}

func callImage(name string, s interval.Set) (interval.Set, error) {
	switch name {
	case fnSin:
		return trigImage(s, 0), nil
	case fnCos:
		return trigImage(s, math.Pi/2), nil
	case fnExp:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, extExp, true)}
		}), nil
	case fnLn:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			if iv.Hi <= 0 {
				return nil
			}
			if iv.Lo < 0 {
				iv.Lo, iv.LoOpen = 0, true
			}
			return []interval.Interval{monotoneMap(iv, extLn, true)}
		}), nil
	case fnAbs:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return evenPowPieces(iv, 1)
		}), nil
	case fnAtan:
		return mapSet(s, monoPiece(extAtan)), nil
	case fnTanh:
		return mapSet(s, monoPiece(extTanh)), nil
	case fnSinh:
		return mapSet(s, monoPiece(math.Sinh)), nil
	case fnAsin:
		return mapSet(s, monoPiece(math.Asin)), nil
	case fnAcos:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			return []interval.Interval{monotoneMap(iv, math.Acos, false)}
		}), nil
	case fnCosh:
		return mapSet(s, func(iv interval.Interval) []interval.Interval {
			f := func(x float64) float64 { return math.Cosh(x) }
			if iv.Contains(0) {
				left := interval.Interval{Lo: iv.Lo, Hi: 0, LoOpen: iv.LoOpen}
				right := interval.Interval{Lo: 0, Hi: iv.Hi, HiOpen: iv.HiOpen}
				return []interval.Interval{monotoneMap(left, f, false), monotoneMap(right, f, true)}
			}
			return []interval.Interval{monotoneMap(iv, f, iv.Lo >= 0)}
		}), nil
	}
	// floor, ceil, sign and tan do not have interval images.
	return interval.Set{}, ErrUnsupported
}

func monoPiece(f func(float64) float64) func(interval.Interval) []interval.Interval {
	return func(iv interval.Interval) []interval.Interval {
		return []interval.Interval{monotoneMap(iv, f, true)}
	}
}

func extExp(x float64) float64 {
	if math.IsInf(x, -1) {
		return 0
	}
	return math.Exp(x)
}

func extLn(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log(x)
}

func extAtan(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(math.Pi/2, x)
	}
	return math.Atan(x)
}

func extTanh(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	return math.Tanh(x)
}

// trigImage maps a set through sin (phase 0) or cos (phase pi/2): an
// interval spanning a full period covers [-1, 1]; shorter windows take the
// endpoint values plus any interior crest or trough.
func trigImage(s interval.Set, phase float64) interval.Set {
	var out []interval.Interval
	for _, iv := range s.Intervals() {
		out = append(out, trigPiece(iv, phase))
	}
	return interval.NewSet(out...)
}

func trigPiece(iv interval.Interval, phase float64) interval.Interval {
	// sin(x + phase) with phase 0 for sin, pi/2 for cos.
	if math.IsInf(iv.Lo, 0) || math.IsInf(iv.Hi, 0) || iv.Hi-iv.Lo >= 2*math.Pi {
		return interval.Closed(-1, 1)
	}
	f := func(x float64) float64 { return math.Sin(x + phase) }
	lo, hi := f(iv.Lo), f(iv.Hi)
	loOpen, hiOpen := iv.LoOpen, iv.HiOpen
	if lo > hi {
		lo, hi = hi, lo
		loOpen, hiOpen = hiOpen, loOpen
	}
	// Crests at x+phase = pi/2 + 2k*pi, troughs at -pi/2 + 2k*pi.
	if containsPhasePoint(iv, math.Pi/2-phase) {
		hi, hiOpen = 1, false
	}
	if containsPhasePoint(iv, -math.Pi/2-phase) {
		lo, loOpen = -1, false
	}
	out, err := interval.New(lo, hi, loOpen, hiOpen)
	if err != nil {
		return interval.Point(lo)
	}
	return out
}

// containsPhasePoint reports whether iv contains base + 2k*pi for some
// integer k.
func containsPhasePoint(iv interval.Interval, base float64) bool {
	k := math.Ceil((iv.Lo - base) / (2 * math.Pi))
	x := base + 2*math.Pi*k
	return iv.Contains(x)
}
