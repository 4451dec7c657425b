package interval

import (
	"fmt"
	"math"
	"strings"
)

// Formatting thresholds. A bound within zeroTol of 0 prints as exactly "0";
// magnitudes above sciThreshold switch to scientific notation.
const (
	zeroTol      = 1e-9
	sciThreshold = 1e10
)

// DefaultSnapTol is the absolute tolerance used by Snap when callers have no
// better estimate of their numeric noise.
const DefaultSnapTol = 1e-6

// FormatBound renders a single bound value: "oo"/"-oo" for infinities, "0"
// near zero, scientific notation for extreme magnitudes, and fixed-point with
// trailing zeros (and a trailing point) trimmed otherwise.
func FormatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "oo"
	case math.IsInf(v, -1):
		return "-oo"
	case math.IsNaN(v):
		return "nan"
	case math.Abs(v) < zeroTol:
		return "0"
	case math.Abs(v) > sciThreshold:
		return fmt.Sprintf("%.2e", v)
	}
	s := strings.TrimRight(fmt.Sprintf("%.6f", v), "0")
	return strings.TrimRight(s, ".")
}

// String renders iv in the calculator notation: Interval(a, b) when both ends
// are closed, with ".open", ".Lopen" or ".Ropen" suffixes otherwise. A
// degenerate point renders as {a}.
func (iv Interval) String() string {
	if IsEmpty(iv) {
		return "EmptySet"
	}
	if iv.IsPoint() {
		return "{" + FormatBound(iv.Lo) + "}"
	}
	var suffix string
	switch {
	case iv.LoOpen && iv.HiOpen:
		suffix = ".open"
	case iv.LoOpen:
		suffix = ".Lopen"
	case iv.HiOpen:
		suffix = ".Ropen"
	}
	return fmt.Sprintf("Interval%s(%s, %s)", suffix, FormatBound(iv.Lo), FormatBound(iv.Hi))
}

// String renders s as EmptySet, Reals, a plain interval, or Union(...).
func (s Set) String() string {
	switch {
	case len(s.ivs) == 0:
		return "EmptySet"
	case s.IsWholeLine():
		return "Reals"
	case len(s.ivs) == 1:
		return s.ivs[0].String()
	}
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}
	return "Union(" + strings.Join(parts, ", ") + ")"
}

// canonicalValues is the snap table of named constants: small integers and
// halves, π multiples, e and 1/e, √2 and √3 families. Simple fractions are
// handled separately by a denominator sweep.
var canonicalValues = []float64{
	0, 1, -1, 0.5, -0.5,
	math.Pi, -math.Pi, math.Pi / 2, -math.Pi / 2, math.Pi / 4, -math.Pi / 4,
	math.E, -math.E, 1 / math.E, -1 / math.E,
	math.Sqrt2, -math.Sqrt2, math.Sqrt2 / 2, -math.Sqrt2 / 2,
	math.Sqrt(3), -math.Sqrt(3), math.Sqrt(3) / 2, -math.Sqrt(3) / 2,
}

// Snap returns the canonical constant nearest to v when one lies within tol,
// otherwise v unchanged. Infinite and NaN values pass through. tol <= 0
// selects DefaultSnapTol.
//
// This exists to undo floating-point noise from numeric optimization
// (0.9999999971 is reported as 1, not as itself).
func Snap(v, tol float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	if tol <= 0 {
		tol = DefaultSnapTol
	}
	for _, c := range canonicalValues {
		if math.Abs(v-c) < tol {
			return c
		}
	}
	// Simple fractions n/d with small numerator; mirrors the accelerated
	// kernel's symbolic-value matcher.
	for _, d := range []float64{2, 3, 4, 5, 6, 8, 10} {
		n := math.Round(v * d)
		if math.Abs(n) < 100 && math.Abs(v-n/d) < tol {
			return n / d
		}
	}
	return v
}
