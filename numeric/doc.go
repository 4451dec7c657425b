// Package numeric provides the sampling and optimization kernel behind the
// numerical range strategy: multi-scale evaluation grids, adaptive
// refinement near interesting regions, a Brent minimizer for bracketed
// one-dimensional problems, and a small differential-evolution search for
// global structure.
//
// What: pure-float64 primitives over functions of one real variable.
// Functions are represented as Fn; complex-tolerant evaluators produced by
// the symbolic compiler are adapted with Wrap, which discards samples that
// stray off the real line.
//
// Why a kernel seam: grid generation and bounded minimization are the two
// hot operations of the numerical strategy. Kernel isolates them behind an
// interface so an accelerated implementation can slot in without touching
// callers; PureKernel is the portable default.
//
// Determinism: every randomized routine takes an explicit seed. Seed 0
// selects the fixed default, so runs are reproducible unless a caller opts
// into a different stream.
//
// Errors: routines in this package degrade instead of failing. Empty grids,
// all-NaN samples and unbracketed minima come back as NaN results for the
// caller to interpret.
package numeric
