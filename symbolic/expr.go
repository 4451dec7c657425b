package symbolic

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors for the whole package.
var (
	// ErrParse indicates malformed expression text.
	ErrParse = errors.New("symbolic: parse error")

	// ErrUnsupported indicates a construct outside the engine's tractable
	// class; callers fall through to cheaper-confidence strategies.
	ErrUnsupported = errors.New("symbolic: unsupported construct")

	// ErrUndefined indicates an expression that is never real-valued.
	ErrUndefined = errors.New("symbolic: expression undefined over the reals")
)

// Expr is an immutable symbolic expression. All mutating-looking operations
// return new trees; sharing subtrees is safe across goroutines.
type Expr interface {
	// Simplify returns a canonicalized equivalent (constants folded, sums and
	// products flattened, identities applied).
	Simplify() Expr

	// Sub substitutes value for every occurrence of the named symbol.
	Sub(varName string, value Expr) Expr

	// Diff returns the derivative with respect to the named symbol.
	Diff(varName string) Expr

	// Eval reports the numeric value of a constant expression. ok is false
	// when free symbols remain or the value is indeterminate (NaN).
	Eval() (v float64, ok bool)

	// Equal reports structural equality after no additional simplification.
	Equal(other Expr) bool

	String() string

	node() // sealed: expression kinds live in this package only
}

// ────────────────────────────────────────────────────────────────────────────
// Num: numeric constant
// ────────────────────────────────────────────────────────────────────────────

// Num is a numeric constant. ±Inf is representable (extended reals); NaN is
// never stored by the constructors in this package.
type Num struct{ val float64 }

// N wraps a float64 constant.
func N(v float64) *Num { return &Num{val: v} }

func (n *Num) Simplify() Expr            { return n }
func (n *Num) Sub(string, Expr) Expr     { return n }
func (n *Num) Diff(string) Expr          { return N(0) }
func (n *Num) Equal(other Expr) bool     { o, ok := other.(*Num); return ok && n.val == o.val }
func (n *Num) node()                     {}
func (n *Num) Value() float64            { return n.val }
func (n *Num) Eval() (float64, bool)     { return n.val, !math.IsNaN(n.val) }
func (n *Num) IsZero() bool              { return n.val == 0 }
func (n *Num) IsInteger() bool           { return n.val == math.Trunc(n.val) && !math.IsInf(n.val, 0) }

func (n *Num) String() string {
	if n.val == math.Trunc(n.val) && math.Abs(n.val) < 1e15 && !math.IsInf(n.val, 0) {
		return strconv.FormatInt(int64(n.val), 10)
	}
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

// ────────────────────────────────────────────────────────────────────────────
// Sym: free symbol
// ────────────────────────────────────────────────────────────────────────────

// Sym is a named real-valued symbol.
type Sym struct{ name string }

// S constructs a symbol.
func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Simplify() Expr        { return s }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) String() string        { return s.name }
func (s *Sym) Eval() (float64, bool) { return 0, false }
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) node()                 {}

func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}

func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

// ────────────────────────────────────────────────────────────────────────────
// Symbol inspection helpers
// ────────────────────────────────────────────────────────────────────────────

// FreeVars returns the set of symbol names occurring in e.
func FreeVars(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectVars(e, out)
	return out
}

func collectVars(e Expr, out map[string]struct{}) {
	switch t := e.(type) {
	case *Sym:
		out[t.name] = struct{}{}
	case *Add:
		for _, term := range t.terms {
			collectVars(term, out)
		}
	case *Mul:
		for _, f := range t.factors {
			collectVars(f, out)
		}
	case *Pow:
		collectVars(t.base, out)
		collectVars(t.exp, out)
	case *Call:
		collectVars(t.arg, out)
	}
}

// occurrences counts how many leaves of e are the named symbol. A count of 1
// is what makes the exact interval-image strategy applicable.
func occurrences(e Expr, varName string) int {
	switch t := e.(type) {
	case *Sym:
		if t.name == varName {
			return 1
		}
		return 0
	case *Add:
		n := 0
		for _, term := range t.terms {
			n += occurrences(term, varName)
		}
		return n
	case *Mul:
		n := 0
		for _, f := range t.factors {
			n += occurrences(f, varName)
		}
		return n
	case *Pow:
		return occurrences(t.base, varName) + occurrences(t.exp, varName)
	case *Call:
		return occurrences(t.arg, varName)
	default:
		return 0
	}
}

// IsConstant reports whether e has no free symbols.
func IsConstant(e Expr) bool { return len(FreeVars(e)) == 0 }
