package symbolic

import "math"

// LimitKind classifies a limit outcome.
type LimitKind int

const (
	// LimitUnknown means the engine could not determine the limit.
	LimitUnknown LimitKind = iota
	// LimitValue is a finite limit, carried in Value.
	LimitValue
	// LimitPosInf and LimitNegInf are signed divergence.
	LimitPosInf
	LimitNegInf
	// LimitRange means the expression accumulates over [Lo, Hi] without
	// converging (bounded or unbounded oscillation).
	LimitRange
)

// LimitResult is the outcome of a limit query.
type LimitResult struct {
	Kind   LimitKind
	Value  float64
	Lo, Hi float64
}

func limVal(v float64) LimitResult {
	switch {
	case math.IsInf(v, 1):
		return LimitResult{Kind: LimitPosInf}
	case math.IsInf(v, -1):
		return LimitResult{Kind: LimitNegInf}
	case math.IsNaN(v):
		return LimitResult{Kind: LimitUnknown}
	}
	return LimitResult{Kind: LimitValue, Value: v}
}

func limRange(lo, hi float64) LimitResult {
	if lo == hi {
		return limVal(lo)
	}
	return LimitResult{Kind: LimitRange, Lo: lo, Hi: hi}
}

func limUnknown() LimitResult { return LimitResult{Kind: LimitUnknown} }

// Bounded reports whether the limit certifies a bounded outcome.
func (r LimitResult) Bounded() bool {
	switch r.Kind {
	case LimitValue:
		return true
	case LimitRange:
		return !math.IsInf(r.Lo, 0) && !math.IsInf(r.Hi, 0)
	}
	return false
}

// Direction selects the approach side for a finite-point limit.
type Direction int

const (
	FromBoth Direction = iota
	FromLeft
	FromRight
)

// LimitAtInfinity computes the limit of e as the variable tends to +inf
// (positive true) or -inf. The analysis is structural: polynomial and
// rational shapes get exact degree rules, everything else propagates
// extended-real values through the tree. Oscillating subterms widen to
// accumulation ranges rather than failing, so products like x*sin(x) report
// unbounded accumulation instead of an unknown.
func LimitAtInfinity(e Expr, varName string, positive bool) LimitResult {
	return extLimit(e.Simplify(), varName, positive)
}

func extLimit(e Expr, varName string, positive bool) LimitResult {
	// Exact rules for polynomial and rational shapes first: structural
	// term-wise propagation would lose cancellations such as x^4 - x^2.
	if r, ok := polyLimit(e, varName, positive); ok {
		return r
	}
	if num, den, ok := AsQuotient(e); ok {
		if r, ok2 := rationalLimit(num, den, varName, positive); ok2 {
			return r
		}
	}

	switch t := e.(type) {
	case *Num:
		return limVal(t.val)
	case *Sym:
		if t.name != varName {
			return limUnknown()
		}
		if positive {
			return LimitResult{Kind: LimitPosInf}
		}
		return LimitResult{Kind: LimitNegInf}
	case *Add:
		acc := limVal(0)
		for _, term := range t.terms {
			acc = extAdd(acc, extLimit(term, varName, positive))
			if acc.Kind == LimitUnknown {
				return acc
			}
		}
		return acc
	case *Mul:
		acc := limVal(1)
		for _, f := range t.factors {
			acc = extMul(acc, extLimit(f, varName, positive))
			if acc.Kind == LimitUnknown {
				return acc
			}
		}
		return acc
	case *Pow:
		return extPow(t, varName, positive)
	case *Call:
		return extCall(t, varName, positive)
	}
	return limUnknown()
}

// polyLimit handles polynomial expressions by leading-term sign.
func polyLimit(e Expr, varName string, positive bool) (LimitResult, bool) {
	coeffs, ok := PolyCoeffs(e, varName)
	if !ok {
		return limUnknown(), false
	}
	deg := len(coeffs) - 1
	for deg > 0 && coeffs[deg] == 0 {
		deg--
	}
	if deg == 0 {
		return limVal(coeffs[0]), true
	}
	lead := coeffs[deg]
	if !positive && deg%2 == 1 {
		lead = -lead
	}
	if lead > 0 {
		return LimitResult{Kind: LimitPosInf}, true
	}
	return LimitResult{Kind: LimitNegInf}, true
}

// rationalLimit compares polynomial degrees of a quotient.
func rationalLimit(num, den Expr, varName string, positive bool) (LimitResult, bool) {
	nc, ok := PolyCoeffs(num, varName)
	if !ok {
		return limUnknown(), false
	}
	dc, ok := PolyCoeffs(den, varName)
	if !ok {
		return limUnknown(), false
	}
	nd, dd := trimDeg(nc), trimDeg(dc)
	if dd == 0 && dc[0] == 0 {
		return limUnknown(), false
	}
	switch {
	case nd < dd:
		return limVal(0), true
	case nd == dd:
		return limVal(nc[nd] / dc[dd]), true
	}
	lead := nc[nd] / dc[dd]
	if !positive && (nd-dd)%2 == 1 {
		lead = -lead
	}
	if lead > 0 {
		return LimitResult{Kind: LimitPosInf}, true
	}
	return LimitResult{Kind: LimitNegInf}, true
}

func trimDeg(coeffs []float64) int {
	deg := len(coeffs) - 1
	for deg > 0 && coeffs[deg] == 0 {
		deg--
	}
	return deg
}

func extAdd(a, b LimitResult) LimitResult {
	if a.Kind == LimitUnknown || b.Kind == LimitUnknown {
		return limUnknown()
	}
	// Normalize so the "larger" kind is on the left.
	if a.Kind < b.Kind {
		a, b = b, a
	}
	switch a.Kind {
	case LimitValue:
		return limVal(a.Value + b.Value)
	case LimitPosInf:
		switch b.Kind {
		case LimitValue, LimitPosInf:
			return a
		}
		return limUnknown() // +inf + -inf
	case LimitNegInf:
		if b.Kind == LimitValue || b.Kind == LimitNegInf {
			return a
		}
		return limUnknown()
	case LimitRange:
		switch b.Kind {
		case LimitValue:
			return limRange(a.Lo+b.Value, a.Hi+b.Value)
		case LimitPosInf:
			if !math.IsInf(a.Lo, -1) {
				return b
			}
			return limRange(math.Inf(-1), math.Inf(1))
		case LimitNegInf:
			if !math.IsInf(a.Hi, 1) {
				return b
			}
			return limRange(math.Inf(-1), math.Inf(1))
		case LimitRange:
			return limRange(infAdd(a.Lo, b.Lo, -1), infAdd(a.Hi, b.Hi, 1))
		}
	}
	return limUnknown()
}

// infAdd adds bounds, widening indeterminate inf sums toward sign.
func infAdd(x, y float64, sign int) float64 {
	s := x + y
	if math.IsNaN(s) {
		return math.Inf(sign)
	}
	return s
}

func extMul(a, b LimitResult) LimitResult {
	if a.Kind == LimitUnknown || b.Kind == LimitUnknown {
		return limUnknown()
	}
	if a.Kind < b.Kind {
		a, b = b, a
	}
	switch a.Kind {
	case LimitValue:
		return limVal(a.Value * b.Value)
	case LimitPosInf, LimitNegInf:
		sign := 1
		if a.Kind == LimitNegInf {
			sign = -1
		}
		if b.Kind == LimitValue {
			switch {
			case b.Value > 0:
				return infResult(sign)
			case b.Value < 0:
				return infResult(-sign)
			}
			return limUnknown() // inf * 0
		}
		// inf * inf
		other := 1
		if b.Kind == LimitNegInf {
			other = -1
		}
		return infResult(sign * other)
	case LimitRange:
		switch b.Kind {
		case LimitValue:
			return scaleRange(a, b.Value)
		case LimitPosInf, LimitNegInf:
			sign := 1
			if b.Kind == LimitNegInf {
				sign = -1
			}
			switch {
			case a.Lo > 0:
				return infResult(sign)
			case a.Hi < 0:
				return infResult(-sign)
			}
			// The range straddles zero: the product sweeps both tails.
			return limRange(math.Inf(-1), math.Inf(1))
		case LimitRange:
			if a.Bounded() && b.Bounded() {
				lo, hi := hullMul(a.Lo, a.Hi, b.Lo, b.Hi)
				return limRange(lo, hi)
			}
			return limRange(math.Inf(-1), math.Inf(1))
		}
	}
	return limUnknown()
}

func infResult(sign int) LimitResult {
	if sign >= 0 {
		return LimitResult{Kind: LimitPosInf}
	}
	return LimitResult{Kind: LimitNegInf}
}

func scaleRange(r LimitResult, v float64) LimitResult {
	if v == 0 {
		if r.Bounded() {
			return limVal(0)
		}
		return limUnknown()
	}
	lo, hi := r.Lo*v, r.Hi*v
	if lo > hi {
		lo, hi = hi, lo
	}
	return limRange(lo, hi)
}

func hullMul(alo, ahi, blo, bhi float64) (float64, float64) {
	lo, hi := alo*blo, alo*blo
	for _, p := range []float64{alo * bhi, ahi * blo, ahi * bhi} {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}

func extPow(p *Pow, varName string, positive bool) LimitResult {
	b := extLimit(p.base, varName, positive)
	if en, ok := p.exp.(*Num); ok {
		return extPowConst(b, en.val)
	}
	ex := extLimit(p.exp, varName, positive)
	if bn, ok := p.base.(*Num); ok {
		return extConstPow(bn.val, ex)
	}
	// Both base and exponent vary, as in x**x.
	switch {
	case b.Kind == LimitPosInf && ex.Kind == LimitPosInf:
		return LimitResult{Kind: LimitPosInf}
	case b.Kind == LimitPosInf && ex.Kind == LimitNegInf:
		return limVal(0)
	case b.Kind == LimitValue && ex.Kind == LimitValue && b.Value > 0:
		return limVal(math.Pow(b.Value, ex.Value))
	}
	return limUnknown()
}

func extPowConst(b LimitResult, exp float64) LimitResult {
	switch b.Kind {
	case LimitValue:
		v := math.Pow(b.Value, exp)
		if math.IsNaN(v) {
			return limUnknown()
		}
		return limVal(v)
	case LimitPosInf:
		switch {
		case exp > 0:
			return LimitResult{Kind: LimitPosInf}
		case exp < 0:
			return limVal(0)
		}
		return limVal(1)
	case LimitNegInf:
		switch {
		case exp == 0:
			return limVal(1)
		case exp < 0:
			return limVal(0)
		case exp == math.Trunc(exp):
			if int(exp)%2 == 0 {
				return LimitResult{Kind: LimitPosInf}
			}
			return LimitResult{Kind: LimitNegInf}
		}
		return limUnknown() // fractional power of -inf
	case LimitRange:
		if exp == math.Trunc(exp) && exp > 0 && b.Bounded() {
			// Monotone pieces of an integer power over the hull.
			k := int(exp)
			lo, hi := math.Pow(b.Lo, float64(k)), math.Pow(b.Hi, float64(k))
			if lo > hi {
				lo, hi = hi, lo
			}
			if k%2 == 0 && b.Lo <= 0 && b.Hi >= 0 {
				return limRange(0, math.Max(lo, hi))
			}
			return limRange(lo, hi)
		}
	}
	return limUnknown()
}

func extConstPow(base float64, ex LimitResult) LimitResult {
	if base <= 0 {
		return limUnknown()
	}
	grow := base > 1
	switch ex.Kind {
	case LimitValue:
		return limVal(math.Pow(base, ex.Value))
	case LimitPosInf:
		if grow {
			return LimitResult{Kind: LimitPosInf}
		}
		if base == 1 {
			return limVal(1)
		}
		return limVal(0)
	case LimitNegInf:
		if grow {
			return limVal(0)
		}
		if base == 1 {
			return limVal(1)
		}
		return LimitResult{Kind: LimitPosInf}
	case LimitRange:
		if ex.Bounded() {
			lo, hi := math.Pow(base, ex.Lo), math.Pow(base, ex.Hi)
			if lo > hi {
				lo, hi = hi, lo
			}
			return limRange(lo, hi)
		}
	}
	return limUnknown()
}

func extCall(c *Call, varName string, positive bool) LimitResult {
	a := extLimit(c.arg, varName, positive)
	switch a.Kind {
	case LimitValue:
		if v, ok := evalFunc(c.name, a.Value); ok {
			return limVal(v)
		}
		return limUnknown()
	case LimitPosInf:
		return callAtInf(c.name, true)
	case LimitNegInf:
		return callAtInf(c.name, false)
	case LimitRange:
		return callOverRange(c.name, a)
	}
	return limUnknown()
}

func callAtInf(name string, positive bool) LimitResult {
	switch name {
	case fnSin, fnCos:
		return limRange(-1, 1)
	case fnTan:
		return limRange(math.Inf(-1), math.Inf(1))
	case fnExp:
		if positive {
			return LimitResult{Kind: LimitPosInf}
		}
		return limVal(0)
	case fnLn:
		if positive {
			return LimitResult{Kind: LimitPosInf}
		}
		return limUnknown()
	case fnAbs:
		return LimitResult{Kind: LimitPosInf}
	case fnAtan:
		if positive {
			return limVal(math.Pi / 2)
		}
		return limVal(-math.Pi / 2)
	case fnTanh, fnSign:
		if positive {
			return limVal(1)
		}
		return limVal(-1)
	case fnSinh, fnFloor, fnCeil:
		if positive {
			return LimitResult{Kind: LimitPosInf}
		}
		return LimitResult{Kind: LimitNegInf}
	case fnCosh:
		return LimitResult{Kind: LimitPosInf}
	}
	return limUnknown()
}

// callOverRange propagates an accumulation range through a function.
func callOverRange(name string, a LimitResult) LimitResult {
	switch name {
	case fnSin, fnCos:
		return limRange(-1, 1)
	case fnTan:
		return limRange(math.Inf(-1), math.Inf(1))
	case fnAbs:
		lo, hi := a.Lo, a.Hi
		m := math.Max(math.Abs(lo), math.Abs(hi))
		if lo <= 0 && hi >= 0 {
			return limRange(0, m)
		}
		return limRange(math.Min(math.Abs(lo), math.Abs(hi)), m)
	case fnExp, fnAtan, fnTanh, fnSinh:
		// Monotone increasing over the whole line.
		loR := callMono(name, a.Lo)
		hiR := callMono(name, a.Hi)
		return limRange(loR, hiR)
	}
	return limUnknown()
}

// callMono applies a monotone function with infinite-endpoint extension.
func callMono(name string, v float64) float64 {
	if math.IsInf(v, 0) {
		switch name {
		case fnExp:
			if v > 0 {
				return math.Inf(1)
			}
			return 0
		case fnAtan:
			return math.Copysign(math.Pi/2, v)
		case fnTanh:
			return math.Copysign(1, v)
		case fnSinh:
			return v
		}
	}
	r, _ := evalFunc(name, v)
	return r
}

// maxLHopital bounds the derivative-quotient recursion.
const maxLHopital = 4

// Limit computes the limit of e as the variable approaches a finite point
// from the given direction. Infinite points delegate to LimitAtInfinity.
// Resolution order: direct substitution, then L'Hopital on 0/0 quotients,
// then one-sided numeric probes.
func Limit(e Expr, varName string, point float64, dir Direction) LimitResult {
	if math.IsInf(point, 0) {
		return LimitAtInfinity(e, varName, point > 0)
	}
	return limitAt(e.Simplify(), varName, point, dir, 0)
}

func limitAt(e Expr, varName string, point float64, dir Direction, depth int) LimitResult {
	// Direct substitution settles the limit only when it lands on a finite
	// value: an infinity from a raw division says nothing about the side.
	sub := e.Sub(varName, N(point)).Simplify()
	if v, ok := sub.Eval(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return limVal(v)
	}

	if depth < maxLHopital {
		if num, den, ok := AsQuotient(e); ok {
			nv, nok := num.Sub(varName, N(point)).Simplify().Eval()
			dv, dok := den.Sub(varName, N(point)).Simplify().Eval()
			if nok && dok && nv == 0 && dv == 0 {
				ratio := DivExpr(num.Diff(varName), den.Diff(varName)).Simplify()
				if r := limitAt(ratio, varName, point, dir, depth+1); r.Kind != LimitUnknown {
					return r
				}
			}
		}
	}

	return probeLimit(e, varName, point, dir)
}

// probeLimit estimates a one-sided or two-sided finite limit numerically by
// approaching the point on shrinking offsets.
func probeLimit(e Expr, varName string, point float64, dir Direction) LimitResult {
	f, err := Compile(e, varName)
	if err != nil {
		return limUnknown()
	}
	side := func(sign float64) LimitResult {
		var vals []float64
		for _, h := range []float64{1e-3, 1e-4, 1e-5, 1e-6, 1e-7, 1e-8} {
			z := f(complex(point+sign*h, 0))
			if math.Abs(imag(z)) > 1e-9 {
				continue
			}
			v := real(z)
			if math.IsNaN(v) {
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) < 3 {
			return limUnknown()
		}
		last, prev := vals[len(vals)-1], vals[len(vals)-2]
		if math.IsInf(last, 0) {
			return limVal(last)
		}
		if math.Abs(last) > 1e7 && math.Abs(last) > 2*math.Abs(vals[0]) {
			return limVal(math.Copysign(math.Inf(1), last))
		}
		if math.Abs(last-prev) <= 1e-6*(1+math.Abs(last)) {
			return limVal(last)
		}
		return limUnknown()
	}

	switch dir {
	case FromLeft:
		return side(-1)
	case FromRight:
		return side(1)
	}
	l, r := side(-1), side(1)
	if l.Kind == LimitValue && r.Kind == LimitValue {
		if l.Value == r.Value || math.Abs(l.Value-r.Value) <= 1e-9*(1+math.Abs(l.Value)) {
			return l
		}
	}
	if l.Kind == r.Kind && (l.Kind == LimitPosInf || l.Kind == LimitNegInf) {
		return l
	}
	return limUnknown()
}
