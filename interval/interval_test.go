package interval_test

import (
	"math"
	"testing"

	"github.com/funcspan/funcspan/interval"
	"github.com/stretchr/testify/assert"
)

// TestNew_InvalidBounds verifies that reversed or NaN bounds are rejected
// with ErrInvalidInterval.
func TestNew_InvalidBounds(t *testing.T) {
	_, err := interval.New(2, 1, false, false)
	assert.ErrorIs(t, err, interval.ErrInvalidInterval, "Lo > Hi must error")

	_, err = interval.New(math.NaN(), 1, false, false)
	assert.ErrorIs(t, err, interval.ErrInvalidInterval, "NaN bound must error")
}

// TestInterval_InfiniteEndsAreOpen verifies that ±Inf endpoints are forced
// open by every constructor, giving a single canonical form.
func TestInterval_InfiniteEndsAreOpen(t *testing.T) {
	iv := interval.AtLeast(0) // [0, +oo)
	assert.False(t, iv.LoOpen, "finite closed end stays closed")
	assert.True(t, iv.HiOpen, "infinite end must be open")

	all := interval.All()
	assert.True(t, all.LoOpen)
	assert.True(t, all.HiOpen)
}

// TestInterval_Contains exercises open/closed endpoint membership.
func TestInterval_Contains(t *testing.T) {
	iv := interval.LeftOpen(0, 1) // (0, 1]
	assert.False(t, iv.Contains(0), "open lower endpoint excluded")
	assert.True(t, iv.Contains(1), "closed upper endpoint included")
	assert.True(t, iv.Contains(0.5))
	assert.False(t, iv.Contains(1.000001))
	assert.False(t, iv.Contains(math.NaN()), "NaN is never a member")
}

// TestInterval_Empty covers the degenerate-open cases.
func TestInterval_Empty(t *testing.T) {
	assert.False(t, interval.IsEmpty(interval.Point(3)), "[3,3] holds one point")
	assert.True(t, interval.IsEmpty(interval.Open(3, 3)), "(3,3) is empty")
	assert.True(t, interval.IsEmpty(interval.LeftOpen(3, 3)), "(3,3] is empty")
}

// TestSet_NormalizationMergesOverlaps verifies sort + merge of overlapping
// and touching members.
func TestSet_NormalizationMergesOverlaps(t *testing.T) {
	s := interval.NewSet(
		interval.Closed(5, 9),
		interval.Closed(0, 3),
		interval.Closed(2, 6),
	)
	ivs := s.Intervals()
	assert.Len(t, ivs, 1, "chained overlaps collapse to one interval")
	assert.Equal(t, interval.Closed(0, 9), ivs[0])
}

// TestSet_TouchingOpenEndpointsKeepGap verifies that (a,b) ∪ (b,c) does NOT
// merge: the shared point b is excluded on both sides.
func TestSet_TouchingOpenEndpointsKeepGap(t *testing.T) {
	s := interval.NewSet(interval.Open(0, 1), interval.Open(1, 2))
	assert.Len(t, s.Intervals(), 2, "gap at the doubly-open point must survive")
	assert.False(t, s.Contains(1))

	// One closed side is enough to merge.
	m := interval.NewSet(interval.Open(0, 1), interval.LeftOpen(1, 2))
	assert.Len(t, m.Intervals(), 2, "(0,1) ∪ (1,2] still excludes 1")

	m2 := interval.NewSet(interval.Closed(0, 1), interval.Open(1, 2))
	assert.Len(t, m2.Intervals(), 1, "[0,1] ∪ (1,2) covers [0,2)")
	assert.Equal(t, interval.RightOpen(0, 2), m2.Intervals()[0])
}

// TestSet_InfSupAndGaps checks the punctured-line shape used for 1/x.
func TestSet_InfSupAndGaps(t *testing.T) {
	s := interval.NewSet(interval.LessThan(0), interval.GreaterThan(0))

	lo, loClosed, err := s.Inf()
	assert.NoError(t, err)
	assert.True(t, math.IsInf(lo, -1))
	assert.False(t, loClosed)

	hi, hiClosed, err := s.Sup()
	assert.NoError(t, err)
	assert.True(t, math.IsInf(hi, 1))
	assert.False(t, hiClosed)

	assert.Equal(t, []float64{0}, s.Gaps())
	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(-1e-12))
	assert.False(t, s.IsWholeLine(), "punctured line is not the whole line")
}

// TestSet_EmptyOperations verifies ErrEmptySet surfaces on bound queries.
func TestSet_EmptyOperations(t *testing.T) {
	var s interval.Set
	assert.True(t, s.IsEmpty())

	_, _, err := s.Inf()
	assert.ErrorIs(t, err, interval.ErrEmptySet)
	_, err2 := s.Hull()
	assert.ErrorIs(t, err2, interval.ErrEmptySet)
}

// TestSet_Equal verifies that normalization yields structural equality for
// equal sets built from different pieces.
func TestSet_Equal(t *testing.T) {
	a := interval.NewSet(interval.Closed(0, 1), interval.Closed(1, 2))
	b := interval.NewSet(interval.Closed(0, 2))
	assert.True(t, a.Equal(b))

	c := interval.NewSet(interval.Open(0, 2))
	assert.False(t, a.Equal(c))
}
