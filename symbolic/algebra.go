package symbolic

import (
	"math"
	"strings"
)

// ────────────────────────────────────────────────────────────────────────────
// Add: n-ary sum
// ────────────────────────────────────────────────────────────────────────────

// Add is a flattened n-ary sum.
type Add struct{ terms []Expr }

// AddOf builds and simplifies a sum.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Terms returns the summands. The slice must not be mutated.
func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) Simplify() Expr {
	var (
		flat  []Expr
		con   float64
		stack = append([]Expr(nil), a.terms...)
	)
	for len(stack) > 0 {
		t := stack[0].Simplify()
		stack = stack[1:]
		switch v := t.(type) {
		case *Add:
			stack = append(v.terms, stack...)
		case *Num:
			con += v.val
		default:
			flat = append(flat, t)
		}
	}

	// Collect like terms: coefficient * identical residue. Keyed on residue
	// rendering; first-seen order is preserved for determinism.
	type bucket struct {
		coeff float64
		rest  Expr
	}
	var (
		order   []string
		buckets = make(map[string]*bucket)
	)
	for _, t := range flat {
		c, rest := splitCoeff(t)
		key := rest.String()
		if b, ok := buckets[key]; ok {
			b.coeff += c
		} else {
			buckets[key] = &bucket{coeff: c, rest: rest}
			order = append(order, key)
		}
	}

	out := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		b := buckets[key]
		switch {
		case b.coeff == 0:
			// dropped
		case b.coeff == 1:
			out = append(out, b.rest)
		default:
			out = append(out, MulOf(N(b.coeff), b.rest))
		}
	}
	if con != 0 || len(out) == 0 {
		out = append(out, N(con))
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Add{terms: out}
}

// splitCoeff splits e into a numeric coefficient and a residue expression.
func splitCoeff(e Expr) (float64, Expr) {
	m, ok := e.(*Mul)
	if !ok || len(m.factors) == 0 {
		return 1, e
	}
	n, ok := m.factors[0].(*Num)
	if !ok {
		return 1, e
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return n.val, rest[0]
	}
	return n.val, &Mul{factors: rest}
}

func (a *Add) Sub(varName string, value Expr) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Sub(varName, value)
	}
	return AddOf(out...)
}

func (a *Add) Diff(varName string) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Diff(varName)
	}
	return AddOf(out...)
}

func (a *Add) Eval() (float64, bool) {
	sum := 0.0
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return 0, false
		}
		sum += v
	}
	if math.IsNaN(sum) {
		return 0, false
	}
	return sum, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) node() {}

func (a *Add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// ────────────────────────────────────────────────────────────────────────────
// Mul: n-ary product
// ────────────────────────────────────────────────────────────────────────────

// Mul is a flattened n-ary product with any numeric coefficient held first.
type Mul struct{ factors []Expr }

// MulOf builds and simplifies a product.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Factors returns the factors. The slice must not be mutated.
func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) Simplify() Expr {
	var (
		flat  []Expr
		coeff = 1.0
		stack = append([]Expr(nil), m.factors...)
	)
	for len(stack) > 0 {
		f := stack[0].Simplify()
		stack = stack[1:]
		switch v := f.(type) {
		case *Mul:
			stack = append(v.factors, stack...)
		case *Num:
			coeff *= v.val
		default:
			flat = append(flat, f)
		}
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		// ±Inf crept into the coefficient: keep the product symbolic so a
		// later 0 factor cannot silently annihilate it.
		return &Mul{factors: append([]Expr{N(coeff)}, flat...)}
	}
	if coeff == 0 {
		// 0 annihilates the product only when no remaining factor is
		// infinite at evaluation (0 * 1/0 is indeterminate, not 0).
		for _, f := range flat {
			if v, ok := f.Eval(); ok && math.IsInf(v, 0) {
				return &Mul{factors: append([]Expr{N(0)}, flat...)}
			}
		}
		return N(0)
	}
	if len(flat) == 0 {
		return N(coeff)
	}
	out := flat
	if coeff != 1 {
		out = append([]Expr{N(coeff)}, flat...)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Mul{factors: out}
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	out := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		out[i] = f.Sub(varName, value)
	}
	return MulOf(out...)
}

// Diff applies the product rule: Σ_i f_i' · Π_{j≠i} f_j.
func (m *Mul) Diff(varName string) Expr {
	terms := make([]Expr, 0, len(m.factors))
	for i := range m.factors {
		parts := make([]Expr, 0, len(m.factors))
		parts = append(parts, m.factors[i].Diff(varName))
		for j, f := range m.factors {
			if j != i {
				parts = append(parts, f)
			}
		}
		terms = append(terms, MulOf(parts...))
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (float64, bool) {
	prod := 1.0
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return 0, false
		}
		prod *= v
	}
	if math.IsNaN(prod) {
		return 0, false
	}
	return prod, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) node() {}

func (m *Mul) String() string {
	// Render a leading -1 coefficient as a sign.
	if len(m.factors) >= 2 {
		if n, ok := m.factors[0].(*Num); ok && n.val == -1 {
			rest := &Mul{factors: m.factors[1:]}
			if len(rest.factors) == 1 {
				return "-" + rest.factors[0].String()
			}
			return "-" + rest.String()
		}
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }

// SubExpr returns a - b.
func SubExpr(a, b Expr) Expr { return AddOf(a, Neg(b)) }

// DivExpr returns a / b as a * b^-1.
func DivExpr(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }
