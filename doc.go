// Package funcspan estimates the real domain and range of single-variable
// mathematical expressions given as text.
//
// The work happens in four packages:
//
//   - interval: normalized sets of disjoint real intervals with open/closed
//     endpoint tracking, plus the bound formatting and constant snapping
//     used in reports.
//   - symbolic: the expression engine. Parsing, simplification,
//     differentiation, continuous-domain resolution, extended-real limits,
//     exact interval-arithmetic images, and compilation to complex-plane
//     evaluators.
//   - numeric: sampling grids, sign-change scans and bounded global
//     optimization behind the numerical strategy.
//   - estimate: the strategy cascade tying it together, from exact symbolic
//     answers down to the numerical fallback, with per-stage timeouts.
//
// The funcspan command under cmd/funcspan exposes the cascade as a CLI.
package funcspan
