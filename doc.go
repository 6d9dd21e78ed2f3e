// Package lvlath is a grid-based Manhattan wire-routing toolkit: given a
// fixed set of two-pin nets on a rectangular routing grid, it assigns each
// net an L-shaped or Z-shaped path and then iteratively re-routes congested
// nets in parallel to reduce shared-track contention.
//
// Under the hood, everything is organized under subpackages:
//
//	wire/      — Wire, Cell and Path types, and the segment walker shared
//	             by every path shape
//	grid/      — the shared contention grid nets are stamped onto
//	routecost/ — path cost evaluation and bend-candidate enumeration
//	placement/ — initial placement and session construction
//	router/    — the parallel iterative re-routing engine
//	wireio/    — session/cost/wires file I/O
//	cmd/wireroute/ — the command-line driver
//
// The surrounding graph primitives this module grew from — core, dijkstra,
// gridgraph — remain available and feed two real command-line-visible
// features: cmd/wireroute's "-seed dijkstra" flag runs placement's
// dijkstra-guided seeding instead of the fixed-corner default, and every run
// ends with a contention report built by grouping the final cost grid into
// gridgraph connected components.
package lvlath
