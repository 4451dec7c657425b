package interval

import (
	"math"
	"sort"
)

// Set is a normalized union of disjoint intervals: sorted by lower bound,
// with no overlapping or mergeable-touching members and no empty members.
// The zero value is the empty set.
type Set struct {
	ivs []Interval
}

// NewSet builds a normalized Set from the given intervals. Empty members are
// dropped; overlapping or touching members are merged.
func NewSet(ivs ...Interval) Set {
	kept := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !IsEmpty(iv) {
			kept = append(kept, canonical(iv))
		}
	}
	if len(kept) == 0 {
		return Set{}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Lo != kept[j].Lo {
			return kept[i].Lo < kept[j].Lo
		}
		// Closed lower bound sorts before open at the same point.
		return !kept[i].LoOpen && kept[j].LoOpen
	})

	out := kept[:1]
	for _, iv := range kept[1:] {
		last := &out[len(out)-1]
		if overlapsOrTouches(*last, iv) {
			*last = merge(*last, iv)
		} else {
			out = append(out, iv)
		}
	}
	return Set{ivs: out}
}

// WholeLine returns the Set covering all reals.
func WholeLine() Set { return NewSet(All()) }

// Intervals returns the member intervals in ascending order. The slice is a
// copy; mutating it does not affect s.
func (s Set) Intervals() []Interval {
	out := make([]Interval, len(s.ivs))
	copy(out, s.ivs)
	return out
}

// IsEmpty reports whether s contains no reals.
func (s Set) IsEmpty() bool { return len(s.ivs) == 0 }

// IsWholeLine reports whether s is exactly (-oo, +oo).
func (s Set) IsWholeLine() bool {
	return len(s.ivs) == 1 && math.IsInf(s.ivs[0].Lo, -1) && math.IsInf(s.ivs[0].Hi, 1)
}

// Contains reports whether x lies in any member interval.
func (s Set) Contains(x float64) bool {
	// Binary search for the first member whose Hi is >= x, then test it.
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].Hi >= x })
	return i < len(s.ivs) && s.ivs[i].Contains(x)
}

// Inf returns the infimum of s and whether that bound is attained (closed).
// Calling Inf on an empty set returns (NaN, false, ErrEmptySet).
func (s Set) Inf() (float64, bool, error) {
	if len(s.ivs) == 0 {
		return math.NaN(), false, ErrEmptySet
	}
	first := s.ivs[0]
	return first.Lo, !first.LoOpen, nil
}

// Sup returns the supremum of s and whether that bound is attained (closed).
func (s Set) Sup() (float64, bool, error) {
	if len(s.ivs) == 0 {
		return math.NaN(), false, ErrEmptySet
	}
	last := s.ivs[len(s.ivs)-1]
	return last.Hi, !last.HiOpen, nil
}

// BoundedBelow reports whether the infimum is finite. Empty sets are bounded.
func (s Set) BoundedBelow() bool {
	return len(s.ivs) == 0 || s.ivs[0].BoundedBelow()
}

// BoundedAbove reports whether the supremum is finite. Empty sets are bounded.
func (s Set) BoundedAbove() bool {
	return len(s.ivs) == 0 || s.ivs[len(s.ivs)-1].BoundedAbove()
}

// Hull returns the smallest single interval containing every member of s.
func (s Set) Hull() (Interval, error) {
	if len(s.ivs) == 0 {
		return Interval{}, ErrEmptySet
	}
	first, last := s.ivs[0], s.ivs[len(s.ivs)-1]
	return Interval{Lo: first.Lo, Hi: last.Hi, LoOpen: first.LoOpen, HiOpen: last.HiOpen}, nil
}

// Gaps returns the finite interior boundary points separating consecutive
// members: for (-oo,0) ∪ (0,oo) the single gap point is 0. Degenerate and
// infinite boundaries are skipped.
func (s Set) Gaps() []float64 {
	if len(s.ivs) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(s.ivs)-1)
	for i := 0; i < len(s.ivs)-1; i++ {
		hi := s.ivs[i].Hi
		if !math.IsInf(hi, 0) {
			gaps = append(gaps, hi)
		}
	}
	return gaps
}

// Equal reports whether s and t denote the same set of reals. Both are
// normalized, so structural equality suffices.
func (s Set) Equal(t Set) bool {
	if len(s.ivs) != len(t.ivs) {
		return false
	}
	for i := range s.ivs {
		if s.ivs[i] != t.ivs[i] {
			return false
		}
	}
	return true
}
