// Package symbolic is the narrow symbolic-algebra engine behind funcspan's
// range estimation: parsing, differentiation, limits, continuous domains,
// symbolic extrema, zero sets, and compilation to fast numeric evaluators.
//
// What:
//
//   - Expr: an immutable expression tree over one or more real symbols, built
//     from numeric constants, symbols, sums, products, powers, and the
//     standard function vocabulary (sin, cos, tan, exp, ln, abs, floor, ceil,
//     sign, inverse-trig and hyperbolic variants; sqrt and log are parsed as
//     aliases, asinh/acosh/atanh are rewritten into log/sqrt form).
//   - Parse: infix grammar with implicit multiplication ("2x sin(x)") and
//     both ^ and ** exponent spellings.
//   - Diff: exact symbolic derivative.
//   - Limit / LimitAtInfinity: extended-real structural limits. An
//     oscillating-but-bounded limit is reported as an accumulation range
//     (Kind == LimitRange) rather than a point, mirroring how persistent
//     oscillation must be classified for unboundedness analysis.
//   - ContinuousDomain: the subset of ℝ on which the expression is
//     real-valued and continuous, as an interval.Set.
//   - Image: exact range of the expression over a domain, available for the
//     tractable class (single occurrence of the variable, or low-degree
//     polynomials); ErrUnsupported otherwise.
//   - Extrema: symbolic global minimum/maximum via critical points of a
//     polynomial derivative plus boundary limits.
//   - Compile: lowering to a complex128 evaluator closure; complex arithmetic
//     is used so that transiently-complex constructs (sqrt of a negative,
//     x**x left of zero) surface as discardable samples, not panics.
//
// Why:
//
//   - Range estimation needs a symbolic collaborator, and Go has no canonical
//     computer-algebra library to lean on; this package provides exactly the
//     surface the estimation pipeline consumes, nothing more.
//
// Numbers are float64 throughout: the estimator is numeric at heart, and IEEE
// arithmetic doubles as the extended-real model (±Inf propagate through
// folding; NaN marks indeterminate forms for the limit machinery).
//
// Errors:
//
//   - ErrParse: malformed input text.
//   - ErrUnsupported: the construct is outside this engine's tractable class
//     (callers degrade or fall through to numerics).
//   - ErrUndefined: the expression is never real-valued.
package symbolic
