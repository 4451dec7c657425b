// Package estimate computes the real domain and range of a single-variable
// expression given as text.
//
// What: an Estimator parses the expression and runs a strategy cascade in
// decreasing order of exactness. The exact image strategy handles shapes
// whose image is computable by interval arithmetic; the extrema strategy
// handles functions with polynomial derivatives; limit analysis classifies
// divergence toward the domain edges, alone or combined with a numeric
// bound (the hybrid methods); and the numerical strategy samples, scans
// stationary points and globally optimizes when everything symbolic has
// failed. The first strategy to accept wins, and its name is recorded on
// the Result.
//
// Why a cascade: exact answers carry openness information ("(0, 1]") that
// sampling can never recover, but only some expressions admit them. The
// cascade serves exact results when possible and degrades gracefully,
// never failing outright while a single real sample exists.
//
// Timeouts: each symbolic stage runs under Options.SymbolicDeadline with
// run-detached weak cancellation: on expiry the stage's goroutine is
// abandoned mid-flight and the cascade skips the remaining symbolic stages,
// going straight to numerics. Abandoned goroutines finish in the background
// and their results are dropped.
//
// Determinism: randomized optimization is seeded through Options.Seed, so
// identical inputs produce identical Results.
//
// Errors: Result.Err (with Method set to MethodError) reports parse
// failures, multi-variable inputs (ErrMultiVariable), empty real domains
// (ErrEmptyDomain) and expressions with no real values (ErrNoRealValues).
package estimate
