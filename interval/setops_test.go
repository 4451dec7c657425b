package interval_test

import (
	"testing"

	"github.com/funcspan/funcspan/interval"
	"github.com/stretchr/testify/assert"
)

// TestIntersect covers endpoint-openness resolution and disjoint pieces.
func TestIntersect(t *testing.T) {
	a := interval.NewSet(interval.Closed(0, 10))
	b := interval.NewSet(interval.Open(5, 20))
	got := interval.Intersect(a, b)
	assert.Equal(t, interval.NewSet(interval.LeftOpen(5, 10)), got, "open bound wins at shared endpoint")

	// Punctured line ∩ [−1, 1] keeps the puncture.
	p := interval.NewSet(interval.LessThan(0), interval.GreaterThan(0))
	q := interval.NewSet(interval.Closed(-1, 1))
	got = interval.Intersect(p, q)
	assert.Equal(t, interval.NewSet(interval.RightOpen(-1, 0), interval.LeftOpen(0, 1)), got)

	// Disjoint operands: empty result.
	assert.True(t, interval.Intersect(
		interval.NewSet(interval.Closed(0, 1)),
		interval.NewSet(interval.Closed(2, 3)),
	).IsEmpty())
}

// TestWithout verifies puncturing at interior points and at closed endpoints.
func TestWithout(t *testing.T) {
	s := interval.WholeLine().Without(0)
	assert.Equal(t, interval.NewSet(interval.LessThan(0), interval.GreaterThan(0)), s)
	assert.False(t, s.Contains(0))

	s = interval.NewSet(interval.Closed(0, 2)).Without(0, 1)
	assert.Equal(t,
		interval.NewSet(interval.Open(0, 1), interval.LeftOpen(1, 2)), s)

	// Removing a point outside the set is a no-op.
	s = interval.NewSet(interval.Closed(0, 1)).Without(5)
	assert.Equal(t, interval.NewSet(interval.Closed(0, 1)), s)
}
