package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts infix expression text into a simplified Expr.
//
// Grammar notes:
//   - Implicit multiplication: "2x", "x sin(x)", "(x+1)(x-1)" all multiply.
//   - Both "^" and "**" spell exponentiation (right-associative).
//   - "pi", "e" are numeric constants; any other bare identifier is a symbol.
//   - Aliases: log→ln, sqrt(u)→u^(1/2), arcsin→asin (etc.),
//     sec/csc/cot→cos/sin forms, asinh/acosh/atanh→log/sqrt identities,
//     ceiling→ceil.
//
// Errors wrap ErrParse with the offending position.
func Parse(input string) (Expr, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tkEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, t.text, t.pos)
	}
	return e.Simplify(), nil
}

// ────────────────────────────────────────────────────────────────────────────
// Tokenizer
// ────────────────────────────────────────────────────────────────────────────

type tokenKind int

const (
	tkEOF tokenKind = iota
	tkNum
	tkIdent
	tkOp     // + - * / ^
	tkLParen // (
	tkRParen // )
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(input string) ([]token, error) {
	var (
		toks []token
		rs   = []rune(input)
		i    = 0
	)
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			seenDot := false
			for i < len(rs) && (rs[i] >= '0' && rs[i] <= '9' || rs[i] == '.') {
				if rs[i] == '.' {
					if seenDot {
						return nil, fmt.Errorf("%w: malformed number at position %d", ErrParse, start)
					}
					seenDot = true
				}
				i++
			}
			text := string(rs[start:i])
			if text == "." {
				return nil, fmt.Errorf("%w: malformed number at position %d", ErrParse, start)
			}
			toks = append(toks, token{kind: tkNum, text: text, pos: start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tkIdent, text: string(rs[start:i]), pos: start})
		case r == '*':
			if i+1 < len(rs) && rs[i+1] == '*' {
				toks = append(toks, token{kind: tkOp, text: "^", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tkOp, text: "*", pos: i})
				i++
			}
		case r == '+' || r == '-' || r == '/' || r == '^':
			toks = append(toks, token{kind: tkOp, text: string(r), pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tkLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tkRParen, text: ")", pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, string(r), i)
		}
	}
	toks = append(toks, token{kind: tkEOF, pos: len(rs)})
	return toks, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Pratt parser
// ────────────────────────────────────────────────────────────────────────────

// Binding powers. Implicit multiplication binds like explicit "*"; unary
// minus sits between additive and multiplicative so that -x*y = -(x*y) and
// -x^2 = -(x^2), matching the usual calculator convention.
const (
	precAdd   = 10
	precUnary = 15
	precMul   = 20
	precPow   = 30
)

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }
func (p *parser) next() token { t := p.toks[p.i]; p.i++; return t }

func (p *parser) parseExpr(minPrec int) (Expr, error) {
	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch {
		case t.kind == tkOp && (t.text == "+" || t.text == "-") && precAdd > minPrec:
			p.next()
			rhs, err := p.parseExpr(precAdd)
			if err != nil {
				return nil, err
			}
			if t.text == "+" {
				lhs = AddOf(lhs, rhs)
			} else {
				lhs = SubExpr(lhs, rhs)
			}
		case t.kind == tkOp && (t.text == "*" || t.text == "/") && precMul > minPrec:
			p.next()
			rhs, err := p.parseExpr(precMul)
			if err != nil {
				return nil, err
			}
			if t.text == "*" {
				lhs = MulOf(lhs, rhs)
			} else {
				lhs = DivExpr(lhs, rhs)
			}
		case t.kind == tkOp && t.text == "^" && precPow > minPrec:
			p.next()
			// Right-associative: recurse at precPow-1.
			rhs, err := p.parseExpr(precPow - 1)
			if err != nil {
				return nil, err
			}
			lhs = PowOf(lhs, rhs)
		case (t.kind == tkNum || t.kind == tkIdent || t.kind == tkLParen) && precMul > minPrec:
			// Implicit multiplication: the next token starts a new operand.
			rhs, err := p.parseExpr(precMul)
			if err != nil {
				return nil, err
			}
			lhs = MulOf(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parsePrefix() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tkNum:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed number %q at position %d", ErrParse, t.text, t.pos)
		}
		return N(v), nil
	case tkIdent:
		return p.parseIdent(t)
	case tkLParen:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tkRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis at position %d", ErrParse, c.pos)
		}
		return inner, nil
	case tkOp:
		switch t.text {
		case "-":
			operand, err := p.parseExpr(precUnary)
			if err != nil {
				return nil, err
			}
			return Neg(operand), nil
		case "+":
			return p.parseExpr(precUnary)
		}
	}
	return nil, fmt.Errorf("%w: expected operand at position %d", ErrParse, t.pos)
}

// parseIdent resolves constants, function applications, and bare symbols.
func (p *parser) parseIdent(t token) (Expr, error) {
	name := strings.ToLower(t.text)

	if p.peek().kind == tkLParen {
		if funcAliases[name] == "" {
			return nil, fmt.Errorf("%w: unknown function %q at position %d", ErrParse, t.text, t.pos)
		}
		p.next() // consume "("
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tkRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis at position %d", ErrParse, c.pos)
		}
		return applyFunc(funcAliases[name], arg), nil
	}

	switch name {
	case "pi":
		return N(math.Pi), nil
	case "e":
		return N(math.E), nil
	}
	return S(t.text), nil
}

// funcAliases maps accepted spellings to canonical names. Entries whose
// canonical name is not in the closed Call vocabulary are rewritten by
// applyFunc.
var funcAliases = map[string]string{
	"sin": fnSin, "cos": fnCos, "tan": fnTan,
	"exp": fnExp, "ln": fnLn, "log": fnLn,
	"abs": fnAbs, "floor": fnFloor, "ceil": fnCeil, "ceiling": fnCeil,
	"sign": fnSign,
	"asin": fnAsin, "arcsin": fnAsin,
	"acos": fnAcos, "arccos": fnAcos,
	"atan": fnAtan, "arctan": fnAtan,
	"sinh": fnSinh, "cosh": fnCosh, "tanh": fnTanh,
	"sqrt": "sqrt",
	"sec":  "sec", "csc": "csc", "cot": "cot",
	"asinh": "asinh", "acosh": "acosh", "atanh": "atanh",
}

// applyFunc builds the canonical tree for a named application, rewriting the
// spellings that have no Call node of their own.
func applyFunc(canonical string, arg Expr) Expr {
	switch canonical {
	case "sqrt":
		return SqrtOf(arg)
	case "sec":
		return DivExpr(N(1), CosOf(arg))
	case "csc":
		return DivExpr(N(1), SinOf(arg))
	case "cot":
		return DivExpr(CosOf(arg), SinOf(arg))
	case "asinh":
		// ln(u + sqrt(u² + 1))
		return LnOf(AddOf(arg, SqrtOf(AddOf(PowOf(arg, N(2)), N(1)))))
	case "acosh":
		// ln(u + sqrt(u² - 1))
		return LnOf(AddOf(arg, SqrtOf(AddOf(PowOf(arg, N(2)), N(-1)))))
	case "atanh":
		// ½·ln((1+u)/(1−u))
		return MulOf(N(0.5), LnOf(DivExpr(AddOf(N(1), arg), AddOf(N(1), Neg(arg)))))
	default:
		return callOf(canonical, arg)
	}
}
