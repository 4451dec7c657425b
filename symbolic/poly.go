package symbolic

import (
	"math"
	"sort"
)

// maxPolyDegree bounds the polynomial machinery; beyond this the expression
// is treated as non-polynomial.
const maxPolyDegree = 64

// PolyCoeffs extracts dense polynomial coefficients of e in the named
// variable, constant term first. ok is false when e is not a polynomial in
// that variable (or exceeds maxPolyDegree).
func PolyCoeffs(e Expr, varName string) (coeffs []float64, ok bool) {
	m, ok := polyMap(e.Simplify(), varName)
	if !ok {
		return nil, false
	}
	deg := 0
	for d := range m {
		if d > deg {
			deg = d
		}
	}
	out := make([]float64, deg+1)
	for d, c := range m {
		out[d] = c
	}
	return out, true
}

func polyMap(e Expr, varName string) (map[int]float64, bool) {
	switch t := e.(type) {
	case *Num:
		if math.IsInf(t.val, 0) {
			return nil, false
		}
		return map[int]float64{0: t.val}, true
	case *Sym:
		if t.name == varName {
			return map[int]float64{1: 1}, true
		}
		return nil, false
	case *Add:
		out := map[int]float64{}
		for _, term := range t.terms {
			m, ok := polyMap(term, varName)
			if !ok {
				return nil, false
			}
			for d, c := range m {
				out[d] += c
			}
		}
		return out, true
	case *Mul:
		out := map[int]float64{0: 1}
		for _, f := range t.factors {
			m, ok := polyMap(f, varName)
			if !ok {
				return nil, false
			}
			out = convolve(out, m)
			if out == nil {
				return nil, false
			}
		}
		return out, true
	case *Pow:
		en, ok := t.exp.(*Num)
		if !ok || !en.IsInteger() || en.val < 0 || en.val > maxPolyDegree {
			return nil, false
		}
		base, ok := polyMap(t.base, varName)
		if !ok {
			return nil, false
		}
		out := map[int]float64{0: 1}
		for i := 0; i < int(en.val); i++ {
			out = convolve(out, base)
			if out == nil {
				return nil, false
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func convolve(a, b map[int]float64) map[int]float64 {
	out := map[int]float64{}
	for da, ca := range a {
		for db, cb := range b {
			if da+db > maxPolyDegree {
				return nil
			}
			out[da+db] += ca * cb
		}
	}
	return out
}

// polyRoots returns the real roots of the polynomial given by dense
// coefficients (constant term first), ascending and deduplicated. Linear and
// quadratic cases are closed-form; higher degrees use a sign-change scan with
// bisection over a Cauchy root bound.
func polyRoots(coeffs []float64) ([]float64, error) {
	// Trim vanishing leading coefficients.
	deg := len(coeffs) - 1
	for deg > 0 && coeffs[deg] == 0 {
		deg--
	}
	switch deg {
	case 0:
		if coeffs[0] == 0 {
			// Identically zero: every real is a root.
			return nil, ErrUnsupported
		}
		return nil, nil
	case 1:
		return []float64{-coeffs[0] / coeffs[1]}, nil
	case 2:
		a, b, c := coeffs[2], coeffs[1], coeffs[0]
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return nil, nil
		case disc == 0:
			return []float64{-b / (2 * a)}, nil
		}
		sq := math.Sqrt(disc)
		r1, r2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		return []float64{r1, r2}, nil
	}

	// Cauchy bound: all real roots lie within 1 + max|a_i / a_n|.
	bound := 0.0
	for i := 0; i < deg; i++ {
		if r := math.Abs(coeffs[i] / coeffs[deg]); r > bound {
			bound = r
		}
	}
	bound++

	evalPoly := func(x float64) float64 {
		v := 0.0
		for i := deg; i >= 0; i-- {
			v = v*x + coeffs[i]
		}
		return v
	}

	const scanPoints = 4096
	var (
		roots []float64
		step  = 2 * bound / scanPoints
		prevX = -bound
		prevV = evalPoly(-bound)
	)
	for i := 1; i <= scanPoints; i++ {
		x := -bound + float64(i)*step
		v := evalPoly(x)
		switch {
		case v == 0:
			roots = append(roots, x)
		case prevV*v < 0:
			roots = append(roots, bisect(evalPoly, prevX, x))
		}
		prevX, prevV = x, v
	}

	sort.Float64s(roots)
	return dedupSorted(roots, 1e-9), nil
}

// bisect refines a bracketing interval [a, b] with f(a)·f(b) < 0.
func bisect(f func(float64) float64, a, b float64) float64 {
	fa := f(a)
	for i := 0; i < 100 && b-a > 1e-13*(1+math.Abs(a)); i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return 0.5 * (a + b)
}

func dedupSorted(vals []float64, tol float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	out := vals[:1]
	for _, v := range vals[1:] {
		if v-out[len(out)-1] > tol {
			out = append(out, v)
		}
	}
	return out
}

// ZeroSet returns the finite set of real roots of e in the named variable,
// ascending. Non-algebraic shapes yield ErrUnsupported.
func ZeroSet(e Expr, varName string) ([]float64, error) {
	e = e.Simplify()
	if coeffs, ok := PolyCoeffs(e, varName); ok {
		return polyRoots(coeffs)
	}
	switch t := e.(type) {
	case *Mul:
		// A product vanishes where a non-inverted factor vanishes.
		var roots []float64
		for _, f := range t.factors {
			if p, ok := f.(*Pow); ok {
				if en, ok2 := p.exp.(*Num); ok2 && en.val < 0 {
					continue // denominator factor: poles, not zeros
				}
			}
			rs, err := ZeroSet(f, varName)
			if err != nil {
				return nil, err
			}
			roots = append(roots, rs...)
		}
		sort.Float64s(roots)
		return dedupSorted(roots, 1e-9), nil
	case *Pow:
		if en, ok := t.exp.(*Num); ok {
			if en.val > 0 {
				return ZeroSet(t.base, varName)
			}
			return nil, nil // b^negative never vanishes
		}
		return nil, nil // c^u with symbolic exponent never vanishes on its domain
	case *Call:
		switch t.name {
		case fnExp, fnCosh:
			return nil, nil // strictly positive
		case fnLn:
			// ln(u) = 0 ⇔ u = 1
			return ZeroSet(SubExpr(t.arg, N(1)), varName)
		case fnAbs:
			return ZeroSet(t.arg, varName)
		}
		return nil, ErrUnsupported
	default:
		return nil, ErrUnsupported
	}
}

// collectDenominators gathers subexpressions whose zeros are poles of e:
// bases of negative powers and, for tan, the underlying cosine.
func collectDenominators(e Expr, out *[]Expr) {
	switch t := e.(type) {
	case *Add:
		for _, term := range t.terms {
			collectDenominators(term, out)
		}
	case *Mul:
		for _, f := range t.factors {
			collectDenominators(f, out)
		}
	case *Pow:
		if en, ok := t.exp.(*Num); ok && en.val < 0 {
			*out = append(*out, t.base)
		}
		collectDenominators(t.base, out)
		collectDenominators(t.exp, out)
	case *Call:
		if t.name == fnTan {
			*out = append(*out, CosOf(t.arg))
		}
		collectDenominators(t.arg, out)
	}
}

// Denominators returns the pole-generating subexpressions of e.
func Denominators(e Expr) []Expr {
	var out []Expr
	collectDenominators(e, &out)
	return out
}

// AsQuotient decomposes e into num/den when e is a product containing at
// least one negative power. ok is false for non-quotient shapes.
func AsQuotient(e Expr) (num, den Expr, ok bool) {
	m, isMul := e.(*Mul)
	if !isMul {
		return nil, nil, false
	}
	var numF, denF []Expr
	for _, f := range m.factors {
		if p, isPow := f.(*Pow); isPow {
			if en, isNum := p.exp.(*Num); isNum && en.val < 0 {
				if en.val == -1 {
					denF = append(denF, p.base)
				} else {
					denF = append(denF, PowOf(p.base, N(-en.val)))
				}
				continue
			}
		}
		numF = append(numF, f)
	}
	if len(denF) == 0 {
		return nil, nil, false
	}
	if len(numF) == 0 {
		numF = []Expr{N(1)}
	}
	return MulOf(numF...), MulOf(denF...), true
}
