package symbolic

import "math"

// Call is the application of a known unary function to an argument.
type Call struct {
	name string
	arg  Expr
}

// Function vocabulary. Names are canonical after parsing (log→ln, sqrt→x^½,
// asinh/acosh/atanh→log/sqrt rewrites), so this list is closed.
const (
	fnSin   = "sin"
	fnCos   = "cos"
	fnTan   = "tan"
	fnExp   = "exp"
	fnLn    = "ln"
	fnAbs   = "abs"
	fnAsin  = "asin"
	fnAcos  = "acos"
	fnAtan  = "atan"
	fnSinh  = "sinh"
	fnCosh  = "cosh"
	fnTanh  = "tanh"
	fnFloor = "floor"
	fnCeil  = "ceil"
	fnSign  = "sign"
)

func callOf(name string, arg Expr) Expr { return (&Call{name: name, arg: arg}).Simplify() }

// Constructors for the closed function vocabulary.
func SinOf(arg Expr) Expr   { return callOf(fnSin, arg) }
func CosOf(arg Expr) Expr   { return callOf(fnCos, arg) }
func TanOf(arg Expr) Expr   { return callOf(fnTan, arg) }
func ExpOf(arg Expr) Expr   { return callOf(fnExp, arg) }
func LnOf(arg Expr) Expr    { return callOf(fnLn, arg) }
func AbsOf(arg Expr) Expr   { return callOf(fnAbs, arg) }
func AsinOf(arg Expr) Expr  { return callOf(fnAsin, arg) }
func AcosOf(arg Expr) Expr  { return callOf(fnAcos, arg) }
func AtanOf(arg Expr) Expr  { return callOf(fnAtan, arg) }
func SinhOf(arg Expr) Expr  { return callOf(fnSinh, arg) }
func CoshOf(arg Expr) Expr  { return callOf(fnCosh, arg) }
func TanhOf(arg Expr) Expr  { return callOf(fnTanh, arg) }
func FloorOf(arg Expr) Expr { return callOf(fnFloor, arg) }
func CeilOf(arg Expr) Expr  { return callOf(fnCeil, arg) }
func SignOf(arg Expr) Expr  { return callOf(fnSign, arg) }

// SqrtOf returns arg^(1/2); square roots are powers in this engine.
func SqrtOf(arg Expr) Expr { return PowOf(arg, N(0.5)) }

// FuncName returns the canonical function name.
func (c *Call) FuncName() string { return c.name }

// Arg returns the argument subexpression.
func (c *Call) Arg() Expr { return c.arg }

// evalFunc applies the named function numerically. ok is false outside the
// function's real domain or on an unknown name.
func evalFunc(name string, v float64) (float64, bool) {
	var out float64
	switch name {
	case fnSin:
		out = math.Sin(v)
	case fnCos:
		out = math.Cos(v)
	case fnTan:
		out = math.Tan(v)
	case fnExp:
		out = math.Exp(v)
	case fnLn:
		if v <= 0 {
			return 0, false
		}
		out = math.Log(v)
	case fnAbs:
		out = math.Abs(v)
	case fnAsin:
		if v < -1 || v > 1 {
			return 0, false
		}
		out = math.Asin(v)
	case fnAcos:
		if v < -1 || v > 1 {
			return 0, false
		}
		out = math.Acos(v)
	case fnAtan:
		out = math.Atan(v)
	case fnSinh:
		out = math.Sinh(v)
	case fnCosh:
		out = math.Cosh(v)
	case fnTanh:
		out = math.Tanh(v)
	case fnFloor:
		out = math.Floor(v)
	case fnCeil:
		out = math.Ceil(v)
	case fnSign:
		switch {
		case v > 0:
			out = 1
		case v < 0:
			out = -1
		default:
			out = 0
		}
	default:
		return 0, false
	}
	if math.IsNaN(out) {
		return 0, false
	}
	return out, true
}

func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()
	if n, ok := arg.(*Num); ok && !math.IsInf(n.val, 0) {
		if v, ok2 := evalFunc(c.name, n.val); ok2 && !math.IsInf(v, 0) {
			return N(v)
		}
	}
	switch c.name {
	case fnLn:
		if inner, ok := arg.(*Call); ok && inner.name == fnExp {
			return inner.arg
		}
	case fnExp:
		if inner, ok := arg.(*Call); ok && inner.name == fnLn {
			return inner.arg
		}
	case fnAbs:
		if inner, ok := arg.(*Call); ok && inner.name == fnAbs {
			return inner
		}
		// abs(-u) = abs(u)
		if m, ok := arg.(*Mul); ok && len(m.factors) >= 2 {
			if n, ok2 := m.factors[0].(*Num); ok2 && n.val == -1 {
				return AbsOf((&Mul{factors: m.factors[1:]}).Simplify())
			}
		}
	}
	return &Call{name: c.name, arg: arg}
}

func (c *Call) Sub(varName string, value Expr) Expr {
	return callOf(c.name, c.arg.Sub(varName, value))
}

// Diff applies the chain rule with the tabulated outer derivatives.
func (c *Call) Diff(varName string) Expr {
	u := c.arg
	du := c.arg.Diff(varName)
	var outer Expr
	switch c.name {
	case fnSin:
		outer = CosOf(u)
	case fnCos:
		outer = Neg(SinOf(u))
	case fnTan:
		outer = AddOf(N(1), PowOf(TanOf(u), N(2)))
	case fnExp:
		outer = ExpOf(u)
	case fnLn:
		outer = PowOf(u, N(-1))
	case fnAbs:
		outer = SignOf(u)
	case fnAsin:
		outer = PowOf(AddOf(N(1), Neg(PowOf(u, N(2)))), N(-0.5))
	case fnAcos:
		outer = Neg(PowOf(AddOf(N(1), Neg(PowOf(u, N(2)))), N(-0.5)))
	case fnAtan:
		outer = PowOf(AddOf(N(1), PowOf(u, N(2))), N(-1))
	case fnSinh:
		outer = CoshOf(u)
	case fnCosh:
		outer = SinhOf(u)
	case fnTanh:
		outer = AddOf(N(1), Neg(PowOf(TanhOf(u), N(2))))
	case fnFloor, fnCeil, fnSign:
		// Zero almost everywhere; the step points are handled numerically.
		return N(0)
	default:
		return N(0)
	}
	return MulOf(outer, du)
}

func (c *Call) Eval() (float64, bool) {
	v, ok := c.arg.Eval()
	if !ok {
		return 0, false
	}
	return evalFunc(c.name, v)
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.name == o.name && c.arg.Equal(o.arg)
}

func (c *Call) node() {}

func (c *Call) String() string { return c.name + "(" + c.arg.String() + ")" }
