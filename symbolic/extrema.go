package symbolic

import (
	"math"

	"github.com/funcspan/funcspan/interval"
)

// Bound is an extremum candidate: a value and whether the function actually
// attains it (as opposed to approaching it at an open or infinite end).
type Bound struct {
	Value    float64
	Attained bool
}

// Extrema computes the global minimum and maximum of e over dom by the
// critical-point method: roots of a polynomial derivative plus boundary
// limits. ErrUnsupported when the derivative is not polynomial or a
// boundary limit cannot be resolved; ErrUndefined when dom is empty.
func Extrema(e Expr, varName string, dom interval.Set) (min, max Bound, err error) {
	if dom.IsEmpty() {
		return Bound{}, Bound{}, ErrUndefined
	}
	e = e.Simplify()

	deriv := e.Diff(varName).Simplify()
	coeffs, ok := PolyCoeffs(deriv, varName)
	if !ok {
		return Bound{}, Bound{}, ErrUnsupported
	}
	roots, rerr := polyRoots(coeffs)
	if rerr != nil {
		// An identically-zero derivative means e is constant on each piece.
		if v, cok := e.Eval(); cok {
			b := Bound{Value: v, Attained: true}
			return b, b, nil
		}
		return Bound{}, Bound{}, ErrUnsupported
	}

	var cands []Bound
	addValueAt := func(x float64, attained bool) bool {
		v, vok := e.Sub(varName, N(x)).Simplify().Eval()
		if !vok || math.IsNaN(v) {
			return false
		}
		cands = append(cands, Bound{Value: v, Attained: attained})
		return true
	}

	for _, r := range roots {
		if dom.Contains(r) {
			if !addValueAt(r, true) {
				return Bound{}, Bound{}, ErrUnsupported
			}
		}
	}

	addLimit := func(point float64, dir Direction) error {
		var lr LimitResult
		if math.IsInf(point, 0) {
			lr = LimitAtInfinity(e, varName, point > 0)
		} else {
			lr = Limit(e, varName, point, dir)
		}
		switch lr.Kind {
		case LimitValue:
			cands = append(cands, Bound{Value: lr.Value})
		case LimitPosInf:
			cands = append(cands, Bound{Value: math.Inf(1)})
		case LimitNegInf:
			cands = append(cands, Bound{Value: math.Inf(-1)})
		case LimitRange:
			cands = append(cands,
				Bound{Value: lr.Lo},
				Bound{Value: lr.Hi})
		default:
			return ErrUnsupported
		}
		return nil
	}

	for _, iv := range dom.Intervals() {
		switch {
		case math.IsInf(iv.Lo, -1):
			if err := addLimit(iv.Lo, FromRight); err != nil {
				return Bound{}, Bound{}, err
			}
		case iv.LoOpen:
			if err := addLimit(iv.Lo, FromRight); err != nil {
				return Bound{}, Bound{}, err
			}
		default:
			if !addValueAt(iv.Lo, true) {
				return Bound{}, Bound{}, ErrUnsupported
			}
		}
		switch {
		case math.IsInf(iv.Hi, 1):
			if err := addLimit(iv.Hi, FromLeft); err != nil {
				return Bound{}, Bound{}, err
			}
		case iv.HiOpen:
			if err := addLimit(iv.Hi, FromLeft); err != nil {
				return Bound{}, Bound{}, err
			}
		default:
			if !addValueAt(iv.Hi, true) {
				return Bound{}, Bound{}, ErrUnsupported
			}
		}
	}

	if len(cands) == 0 {
		return Bound{}, Bound{}, ErrUnsupported
	}

	min, max = cands[0], cands[0]
	for _, c := range cands[1:] {
		switch {
		case c.Value < min.Value:
			min = c
		case c.Value == min.Value && c.Attained:
			min.Attained = true
		}
		switch {
		case c.Value > max.Value:
			max = c
		case c.Value == max.Value && c.Attained:
			max.Attained = true
		}
	}
	return min, max, nil
}
