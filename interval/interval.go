package interval

import (
	"errors"
	"math"
)

// Sentinel errors. Only these are returned from this package; callers are
// expected to match with errors.Is.
var (
	// ErrInvalidInterval indicates Lo > Hi or a NaN bound.
	ErrInvalidInterval = errors.New("interval: invalid bounds")

	// ErrEmptySet indicates an operation that needs a non-empty set.
	ErrEmptySet = errors.New("interval: empty set")
)

// Interval is a contiguous span of reals. Either bound may be ±Inf, in which
// case that side is always treated as open regardless of the flag.
//
// The zero value is the degenerate closed interval [0, 0].
type Interval struct {
	Lo, Hi         float64
	LoOpen, HiOpen bool
}

// New validates bounds and returns the interval [lo, hi] with the given
// openness. Infinite bounds are forced open.
func New(lo, hi float64, loOpen, hiOpen bool) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, ErrInvalidInterval
	}
	return canonical(Interval{Lo: lo, Hi: hi, LoOpen: loOpen, HiOpen: hiOpen}), nil
}

// Closed returns [lo, hi].
func Closed(lo, hi float64) Interval {
	return canonical(Interval{Lo: lo, Hi: hi})
}

// Open returns (lo, hi).
func Open(lo, hi float64) Interval {
	return canonical(Interval{Lo: lo, Hi: hi, LoOpen: true, HiOpen: true})
}

// LeftOpen returns (lo, hi].
func LeftOpen(lo, hi float64) Interval {
	return canonical(Interval{Lo: lo, Hi: hi, LoOpen: true})
}

// RightOpen returns [lo, hi).
func RightOpen(lo, hi float64) Interval {
	return canonical(Interval{Lo: lo, Hi: hi, HiOpen: true})
}

// AtLeast returns [lo, +oo).
func AtLeast(lo float64) Interval { return canonical(Interval{Lo: lo, Hi: math.Inf(1)}) }

// GreaterThan returns (lo, +oo).
func GreaterThan(lo float64) Interval {
	return canonical(Interval{Lo: lo, Hi: math.Inf(1), LoOpen: true})
}

// AtMost returns (-oo, hi].
func AtMost(hi float64) Interval { return canonical(Interval{Lo: math.Inf(-1), Hi: hi}) }

// LessThan returns (-oo, hi).
func LessThan(hi float64) Interval {
	return canonical(Interval{Lo: math.Inf(-1), Hi: hi, HiOpen: true})
}

// All returns (-oo, +oo), the full real line.
func All() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), LoOpen: true, HiOpen: true}
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval { return Interval{Lo: v, Hi: v} }

// canonical forces infinite endpoints open so every interval has a single
// representation.
func canonical(iv Interval) Interval {
	if math.IsInf(iv.Lo, -1) {
		iv.LoOpen = true
	}
	if math.IsInf(iv.Hi, 1) {
		iv.HiOpen = true
	}
	return iv
}

// IsEmpty reports whether no real belongs to iv.
func IsEmpty(iv Interval) bool {
	if iv.Lo > iv.Hi {
		return true
	}
	return iv.Lo == iv.Hi && (iv.LoOpen || iv.HiOpen)
}

// IsPoint reports whether iv contains exactly one real.
func (iv Interval) IsPoint() bool {
	return iv.Lo == iv.Hi && !iv.LoOpen && !iv.HiOpen
}

// Contains reports whether x lies in iv.
func (iv Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if x < iv.Lo || x > iv.Hi {
		return false
	}
	if x == iv.Lo && iv.LoOpen {
		return false
	}
	if x == iv.Hi && iv.HiOpen {
		return false
	}
	return true
}

// BoundedBelow reports whether Lo is finite.
func (iv Interval) BoundedBelow() bool { return !math.IsInf(iv.Lo, -1) }

// BoundedAbove reports whether Hi is finite.
func (iv Interval) BoundedAbove() bool { return !math.IsInf(iv.Hi, 1) }

// overlapsOrTouches reports whether a ∪ b is itself an interval, assuming
// a.Lo <= b.Lo. Touching endpoints merge unless both sides are open there
// (the shared point would be excluded, leaving a genuine gap).
func overlapsOrTouches(a, b Interval) bool {
	if b.Lo < a.Hi {
		return true
	}
	if b.Lo == a.Hi {
		return !(a.HiOpen && b.LoOpen)
	}
	return false
}

// merge returns the interval covering a ∪ b; callers must have established
// overlapsOrTouches(a, b) with a.Lo <= b.Lo.
func merge(a, b Interval) Interval {
	out := a
	if b.Lo == a.Lo {
		out.LoOpen = a.LoOpen && b.LoOpen
	}
	switch {
	case b.Hi > a.Hi:
		out.Hi, out.HiOpen = b.Hi, b.HiOpen
	case b.Hi == a.Hi:
		out.HiOpen = a.HiOpen && b.HiOpen
	}
	return out
}
