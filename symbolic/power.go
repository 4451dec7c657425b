package symbolic

import "math"

// Pow is base^exp.
type Pow struct{ base, exp Expr }

// PowOf builds and simplifies a power.
func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Base returns the base subexpression.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent subexpression.
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		switch {
		case en.IsZero():
			return N(1) // 0^0 folds to 1 by the usual computing convention
		case en.val == 1:
			return base
		}
		if bn, ok := base.(*Num); ok {
			v := math.Pow(bn.val, en.val)
			// Leave symbolic when real arithmetic fails (negative base with a
			// fractional exponent) or overflows to an infinity.
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return N(v)
			}
		}
		// (b^c1)^c2 with integer outer exponent folds into one power.
		if inner, ok := base.(*Pow); ok && en.IsInteger() {
			if ie, ok2 := inner.exp.(*Num); ok2 {
				return PowOf(inner.base, N(ie.val*en.val))
			}
		}
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

// Diff handles the constant-exponent power rule directly and falls back to
// the general exponential form b^e·(e'·ln b + e·b'/b) otherwise.
func (p *Pow) Diff(varName string) Expr {
	if en, ok := p.exp.(*Num); ok {
		// d/dx b^c = c·b^(c-1)·b'
		return MulOf(N(en.val), PowOf(p.base, N(en.val-1)), p.base.Diff(varName))
	}
	dexp := p.exp.Diff(varName)
	dbase := p.base.Diff(varName)
	return MulOf(
		&Pow{base: p.base, exp: p.exp},
		AddOf(
			MulOf(dexp, LnOf(p.base)),
			MulOf(p.exp, dbase, PowOf(p.base, N(-1))),
		),
	)
}

func (p *Pow) Eval() (float64, bool) {
	b, ok := p.base.Eval()
	if !ok {
		return 0, false
	}
	e, ok := p.exp.Eval()
	if !ok {
		return 0, false
	}
	v := math.Pow(b, e)
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) node() {}

func (p *Pow) String() string { return p.base.String() + "^" + p.exp.String() }
