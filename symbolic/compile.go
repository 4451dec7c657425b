package symbolic

import (
	"fmt"
	"math"
	"math/cmplx"
)

// CFunc is a compiled evaluator over the complex plane. Real inputs that pass
// through transiently-complex territory (sqrt of a negative, non-integer
// powers of negatives) come back with an imaginary component the caller can
// inspect and discard.
type CFunc func(x complex128) complex128

// Compile lowers e to a closure of the named variable. Any other free symbol
// is an error wrapping ErrUnsupported.
//
// Complexity: one tree walk at compile time; evaluation is allocation-free.
func Compile(e Expr, varName string) (CFunc, error) {
	switch t := e.(type) {
	case *Num:
		c := complex(t.val, 0)
		return func(complex128) complex128 { return c }, nil
	case *Sym:
		if t.name != varName {
			return nil, fmt.Errorf("%w: unknown symbol %q", ErrUnsupported, t.name)
		}
		return func(x complex128) complex128 { return x }, nil
	case *Add:
		fns := make([]CFunc, len(t.terms))
		for i, term := range t.terms {
			fn, err := Compile(term, varName)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return func(x complex128) complex128 {
			var sum complex128
			for _, fn := range fns {
				sum += fn(x)
			}
			return sum
		}, nil
	case *Mul:
		fns := make([]CFunc, len(t.factors))
		for i, f := range t.factors {
			fn, err := Compile(f, varName)
			if err != nil {
				return nil, err
			}
			fns[i] = fn
		}
		return func(x complex128) complex128 {
			prod := complex(1, 0)
			for _, fn := range fns {
				prod *= fn(x)
			}
			return prod
		}, nil
	case *Pow:
		base, err := Compile(t.base, varName)
		if err != nil {
			return nil, err
		}
		exp, err := Compile(t.exp, varName)
		if err != nil {
			return nil, err
		}
		// Integer exponents keep negative real bases real: (-2)^3 must be -8,
		// not the principal complex branch value.
		if en, ok := t.exp.(*Num); ok && en.IsInteger() && math.Abs(en.val) <= 64 {
			k := int(en.val)
			return func(x complex128) complex128 { return intPow(base(x), k) }, nil
		}
		return func(x complex128) complex128 {
			b := base(x)
			if b == 0 {
				// cmplx.Pow(0, e) is NaN-prone; settle 0^e directly.
				e := exp(x)
				if real(e) > 0 && imag(e) == 0 {
					return 0
				}
				return cmplx.Inf()
			}
			return cmplx.Pow(b, exp(x))
		}, nil
	case *Call:
		arg, err := Compile(t.arg, varName)
		if err != nil {
			return nil, err
		}
		op, err := complexFunc(t.name)
		if err != nil {
			return nil, err
		}
		return func(x complex128) complex128 { return op(arg(x)) }, nil
	default:
		return nil, fmt.Errorf("%w: cannot compile %T", ErrUnsupported, e)
	}
}

// intPow computes z^k by repeated squaring, staying on the real line for real
// inputs.
func intPow(z complex128, k int) complex128 {
	if k == 0 {
		return 1
	}
	neg := k < 0
	if neg {
		k = -k
	}
	out := complex(1, 0)
	for base := z; k > 0; k >>= 1 {
		if k&1 == 1 {
			out *= base
		}
		base *= base
	}
	if neg {
		return 1 / out
	}
	return out
}

// realOnly lifts a real-only operation (floor, ceil, sign, abs ordering) to
// the complex evaluator: inputs with a non-negligible imaginary part are
// undefined.
func realOnly(f func(float64) float64) func(complex128) complex128 {
	return func(z complex128) complex128 {
		if math.Abs(imag(z)) > 1e-12 {
			return cmplx.NaN()
		}
		return complex(f(real(z)), 0)
	}
}

func complexFunc(name string) (func(complex128) complex128, error) {
	switch name {
	case fnSin:
		return cmplx.Sin, nil
	case fnCos:
		return cmplx.Cos, nil
	case fnTan:
		return cmplx.Tan, nil
	case fnExp:
		return cmplx.Exp, nil
	case fnLn:
		return func(z complex128) complex128 {
			if z == 0 {
				return cmplx.Inf()
			}
			return cmplx.Log(z)
		}, nil
	case fnAbs:
		return func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) }, nil
	case fnAsin:
		return cmplx.Asin, nil
	case fnAcos:
		return cmplx.Acos, nil
	case fnAtan:
		return cmplx.Atan, nil
	case fnSinh:
		return cmplx.Sinh, nil
	case fnCosh:
		return cmplx.Cosh, nil
	case fnTanh:
		return cmplx.Tanh, nil
	case fnFloor:
		return realOnly(math.Floor), nil
	case fnCeil:
		return realOnly(math.Ceil), nil
	case fnSign:
		return realOnly(func(v float64) float64 {
			switch {
			case v > 0:
				return 1
			case v < 0:
				return -1
			}
			return 0
		}), nil
	default:
		return nil, fmt.Errorf("%w: unknown function %q", ErrUnsupported, name)
	}
}
