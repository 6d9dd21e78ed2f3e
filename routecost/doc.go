// Package routecost implements the Path Cost Evaluator and the Candidate
// Enumerator: scoring a candidate path against the current grid, and
// producing the finite family of L/Z candidates for a non-collinear wire.
//
// What:
//
//   - Evaluate sums grid values along a candidate's cells, plus the wire's
//     fixed route length, applied uniformly to every candidate (spec.md
//     §9, "Secondary term application" — resolved uniformly since a
//     per-wire constant never changes the argmin).
//   - Enumerate produces exactly |Δx|+|Δy| candidates for a non-collinear
//     wire: the horizontal-first and vertical-first L/Z families of
//     spec.md §4.4, sweeping the full inclusive bend range (spec.md §9,
//     "Candidate parity bug" — not reproduced).
//
// See: spec.md §4.3, §4.4, §9.
package routecost
