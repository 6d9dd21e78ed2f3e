// Package wire defines the Wire type and its Path geometry: the axis-aligned,
// at-most-two-bend polyline connecting a wire's fixed endpoints.
//
// What:
//
//   - Wire holds fixed (Start, End) cell coordinates plus a mutable Path.
//   - Path is a tagged variant over three shapes: Straight, OneBend, TwoBend.
//   - Cells walks a Path start-to-end, each cell exactly once.
//   - IsCollinear reports whether start and end share a row or column.
//
// Why:
//
//   - Every grid operation (stamp, unstamp, cost-sum) folds over Cells, so a
//     single generic segment walker replaces the eight direction-specific
//     loops a naive port of the reference would otherwise need.
//
// Complexity:
//
//   - Cells: O(L) where L is the Manhattan length of the path.
//   - IsCollinear: O(1).
//
// See: SPEC_FULL.md §"wire" and spec.md §3, §4.1.
package wire
