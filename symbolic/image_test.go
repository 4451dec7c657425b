package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/symbolic"
)

func imageOf(t *testing.T, src string, dom interval.Set) interval.Set {
	t.Helper()
	img, err := symbolic.Image(mustParse(t, src), "x", dom)
	require.NoError(t, err, "image of %q", src)
	return img
}

func TestImage_Canonical(t *testing.T) {
	whole := interval.WholeLine()
	cases := []struct {
		src  string
		want string
	}{
		{"abs(x)", "Interval(0, oo)"},
		{"sin(x)", "Interval(-1, 1)"},
		{"cos(x)", "Interval(-1, 1)"},
		{"x**2", "Interval(0, oo)"},
		{"exp(x)", "Interval.open(0, oo)"},
		{"atan(x)", "Interval.open(-1.570796, 1.570796)"},
		{"x**2 + 1", "Interval(1, oo)"},
		{"-2*x + 3", "Reals"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, imageOf(t, tc.src, whole).String(), "image of %q", tc.src)
	}
}

func TestImage_ReciprocalSplitsAtZero(t *testing.T) {
	dom := interval.WholeLine().Without(0)
	img := imageOf(t, "1/x", dom)
	assert.Equal(t, "Union(Interval.open(-oo, 0), Interval.open(0, oo))", img.String())
}

func TestImage_GaussianBell(t *testing.T) {
	// exp(-x**2) attains 1 at the origin and decays to an open 0.
	img := imageOf(t, "exp(-x**2)", interval.WholeLine())
	assert.Equal(t, "Interval.Lopen(0, 1)", img.String())
}

func TestImage_QuadraticVertex(t *testing.T) {
	img := imageOf(t, "x**2 - 4*x + 1", interval.WholeLine())
	assert.Equal(t, "Interval(-3, oo)", img.String())

	img = imageOf(t, "-x**2 + 2*x", interval.WholeLine())
	assert.Equal(t, "Interval(-oo, 1)", img.String())
}

func TestImage_RestrictedDomain(t *testing.T) {
	dom := interval.NewSet(interval.Closed(0, 2))
	img := imageOf(t, "x**2", dom)
	assert.Equal(t, "Interval(0, 4)", img.String())

	img = imageOf(t, "2*x + 1", dom)
	assert.Equal(t, "Interval(1, 5)", img.String())
}

func TestImage_SinOnPartialWindow(t *testing.T) {
	// sin over [0, pi/2] climbs from 0 to an attained 1.
	dom := interval.NewSet(interval.Closed(0, 1.5707963267948966))
	img := imageOf(t, "sin(x)", dom)
	assert.Equal(t, "Interval(0, 1)", img.String())
}

func TestImage_SqrtShape(t *testing.T) {
	dom := interval.NewSet(interval.AtLeast(2))
	img := imageOf(t, "sqrt(x-2)", dom)
	assert.Equal(t, "Interval(0, oo)", img.String())
}

func TestImage_MultipleOccurrencesUnsupported(t *testing.T) {
	_, err := symbolic.Image(mustParse(t, "x + sin(x)"), "x", interval.WholeLine())
	assert.ErrorIs(t, err, symbolic.ErrUnsupported)
}

func TestImage_EmptyDomain(t *testing.T) {
	_, err := symbolic.Image(mustParse(t, "x"), "x", interval.NewSet())
	assert.ErrorIs(t, err, symbolic.ErrUndefined)
}
