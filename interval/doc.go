// Package interval models sets of real numbers as intervals and normalized
// unions of disjoint intervals, with open/closed and unbounded endpoints.
//
// What:
//
//   - Interval: a contiguous span {x | Lo <op> x <op> Hi} where each side is
//     open or closed and either bound may be ±Inf.
//   - Set: an ordered union of disjoint Intervals, normalized on construction
//     (sorted by lower bound, overlapping or touching members merged).
//   - Formatting helpers that render bounds the way a symbolic calculator
//     prints them: "oo"/"-oo" for infinities, exact 0 near zero, scientific
//     notation for extreme magnitudes, trimmed fixed-point otherwise.
//   - Snap: replacement of a floating-point value by a nearby canonical
//     mathematical constant (0, ±1, ±π/2, ±e, ±√2, simple fractions, …)
//     within a small absolute tolerance, to suppress optimizer noise.
//
// Why:
//
//   - Function domains and images are naturally unions of intervals
//     (1/x is defined on (-oo, 0) ∪ (0, oo)); a single-interval model
//     cannot express them.
//   - Normalization gives every set exactly one representation, so results
//     compare and print deterministically.
//
// Complexity:
//
//   - NewSet: O(n log n) for n member intervals (sort + single merge pass).
//   - Contains: O(log n) on Set, O(1) on Interval.
//
// Errors:
//
//   - ErrInvalidInterval: Lo > Hi, or NaN bound.
//   - ErrEmptySet: operation requires at least one non-empty interval.
package interval
