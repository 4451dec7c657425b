package symbolic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/symbolic"
)

// evalAt parses src and evaluates it at x, failing the test on parse or
// compile errors.
func evalAt(t *testing.T, src string, x float64) float64 {
	t.Helper()
	e, err := symbolic.Parse(src)
	require.NoError(t, err, "parse %q", src)
	f, err := symbolic.Compile(e, "x")
	require.NoError(t, err, "compile %q", src)
	z := f(complex(x, 0))
	require.LessOrEqual(t, math.Abs(imag(z)), 1e-9, "non-real value for %q at %v", src, x)
	return real(z)
}

func TestParse_Arithmetic(t *testing.T) {
	assert.InDelta(t, 7, evalAt(t, "1 + 2*3", 0), 1e-12)
	assert.InDelta(t, 9, evalAt(t, "(1+2)*3", 0), 1e-12)
	assert.InDelta(t, 0.5, evalAt(t, "1/2", 0), 1e-12)
	assert.InDelta(t, -4, evalAt(t, "2 - 3*2", 0), 1e-12)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	// 2**3**2 must parse as 2**(3**2) = 512.
	assert.InDelta(t, 512, evalAt(t, "2**3**2", 0), 1e-9)
	assert.InDelta(t, 512, evalAt(t, "2^3^2", 0), 1e-9)
}

func TestParse_UnaryMinusBindsLooserThanPower(t *testing.T) {
	// -x**2 is -(x**2).
	assert.InDelta(t, -9, evalAt(t, "-x**2", 3), 1e-12)
	assert.InDelta(t, 9, evalAt(t, "(-x)**2", 3), 1e-12)
}

func TestParse_ImplicitMultiplication(t *testing.T) {
	assert.InDelta(t, 6, evalAt(t, "2x", 3), 1e-12)
	assert.InDelta(t, 2*math.Sin(1.5), evalAt(t, "2sin(x)", 1.5), 1e-12)
	assert.InDelta(t, 12, evalAt(t, "3(x+1)", 3), 1e-12)
}

func TestParse_Constants(t *testing.T) {
	assert.InDelta(t, math.Pi, evalAt(t, "pi", 0), 1e-15)
	assert.InDelta(t, math.E, evalAt(t, "e", 0), 1e-15)
	assert.InDelta(t, 2*math.Pi, evalAt(t, "2*pi", 0), 1e-15)
}

func TestParse_FunctionAliases(t *testing.T) {
	assert.InDelta(t, math.Log(5), evalAt(t, "log(x)", 5), 1e-12)
	assert.InDelta(t, math.Asin(0.5), evalAt(t, "arcsin(x)", 0.5), 1e-12)
	assert.InDelta(t, 3, evalAt(t, "sqrt(x)", 9), 1e-12)
	assert.InDelta(t, 1/math.Cos(0.7), evalAt(t, "sec(x)", 0.7), 1e-12)
	assert.InDelta(t, math.Cos(0.7)/math.Sin(0.7), evalAt(t, "cot(x)", 0.7), 1e-12)
	assert.InDelta(t, math.Asinh(2), evalAt(t, "asinh(x)", 2), 1e-12)
	assert.InDelta(t, math.Acosh(2), evalAt(t, "acosh(x)", 2), 1e-12)
	assert.InDelta(t, math.Atanh(0.3), evalAt(t, "atanh(x)", 0.3), 1e-12)
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{"", "1 +", "sin(", "2 ** ", ")", "1..2", "foo#bar"} {
		_, err := symbolic.Parse(src)
		assert.ErrorIs(t, err, symbolic.ErrParse, "source %q", src)
	}
}

func TestParse_UnknownFunction(t *testing.T) {
	_, err := symbolic.Parse("frobnicate(x)")
	require.ErrorIs(t, err, symbolic.ErrParse)
}
