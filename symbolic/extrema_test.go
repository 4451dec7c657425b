package symbolic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/symbolic"
)

func TestExtrema_Quartic(t *testing.T) {
	// x**4 - x**2 dips to -1/4 at ±1/sqrt(2) and grows without bound.
	min, max, err := symbolic.Extrema(mustParse(t, "x**4 - x**2"), "x", interval.WholeLine())
	require.NoError(t, err)
	assert.InDelta(t, -0.25, min.Value, 1e-9)
	assert.True(t, min.Attained)
	assert.True(t, math.IsInf(max.Value, 1))
	assert.False(t, max.Attained)
}

func TestExtrema_ClosedWindow(t *testing.T) {
	dom := interval.NewSet(interval.Closed(-1, 3))
	min, max, err := symbolic.Extrema(mustParse(t, "x**2 - 2*x"), "x", dom)
	require.NoError(t, err)
	assert.InDelta(t, -1, min.Value, 1e-12) // vertex at x=1
	assert.True(t, min.Attained)
	assert.InDelta(t, 3, max.Value, 1e-12) // boundary x=-1 and x=3
	assert.True(t, max.Attained)
}

func TestExtrema_OpenEndpointNotAttained(t *testing.T) {
	dom := interval.NewSet(interval.Open(0, 2))
	min, max, err := symbolic.Extrema(mustParse(t, "3*x + 1"), "x", dom)
	require.NoError(t, err)
	assert.InDelta(t, 1, min.Value, 1e-9)
	assert.False(t, min.Attained)
	assert.InDelta(t, 7, max.Value, 1e-9)
	assert.False(t, max.Attained)
}

func TestExtrema_CubicUnboundedBothWays(t *testing.T) {
	min, max, err := symbolic.Extrema(mustParse(t, "x**3"), "x", interval.WholeLine())
	require.NoError(t, err)
	assert.True(t, math.IsInf(min.Value, -1))
	assert.True(t, math.IsInf(max.Value, 1))
}

func TestExtrema_NonPolynomialDerivativeUnsupported(t *testing.T) {
	_, _, err := symbolic.Extrema(mustParse(t, "sin(x)"), "x", interval.WholeLine())
	assert.ErrorIs(t, err, symbolic.ErrUnsupported)
}

func TestExtrema_EmptyDomain(t *testing.T) {
	_, _, err := symbolic.Extrema(mustParse(t, "x"), "x", interval.NewSet())
	assert.ErrorIs(t, err, symbolic.ErrUndefined)
}
