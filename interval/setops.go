package interval

// intersect2 returns the overlap of two intervals; the result may be empty.
func intersect2(a, b Interval) Interval {
	out := a
	if b.Lo > out.Lo || (b.Lo == out.Lo && b.LoOpen) {
		out.Lo, out.LoOpen = b.Lo, b.LoOpen
	}
	if b.Hi < out.Hi || (b.Hi == out.Hi && b.HiOpen) {
		out.Hi, out.HiOpen = b.Hi, b.HiOpen
	}
	if out.Lo > out.Hi {
		return Interval{Lo: 1, Hi: 0, LoOpen: true, HiOpen: true} // canonical empty
	}
	return out
}

// Intersect returns s ∩ t as a normalized Set.
//
// Complexity: O(n·m) pairwise; member counts are tiny in practice.
func Intersect(s, t Set) Set {
	var pieces []Interval
	for _, a := range s.ivs {
		for _, b := range t.ivs {
			if p := intersect2(a, b); !IsEmpty(p) {
				pieces = append(pieces, p)
			}
		}
	}
	return NewSet(pieces...)
}

// Without returns s with the given points removed, splitting any member
// interval that contains one of them into two open-ended halves.
func (s Set) Without(points ...float64) Set {
	out := s
	for _, p := range points {
		var pieces []Interval
		for _, iv := range out.ivs {
			if !iv.Contains(p) {
				pieces = append(pieces, iv)
				continue
			}
			left := Interval{Lo: iv.Lo, Hi: p, LoOpen: iv.LoOpen, HiOpen: true}
			right := Interval{Lo: p, Hi: iv.Hi, LoOpen: true, HiOpen: iv.HiOpen}
			if !IsEmpty(left) {
				pieces = append(pieces, left)
			}
			if !IsEmpty(right) {
				pieces = append(pieces, right)
			}
		}
		out = Set{ivs: pieces} // pieces stay sorted and disjoint
	}
	return out
}
