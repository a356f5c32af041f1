// Package pursuit is a cooperative multi-agent pursuit simulator on a 2-D
// grid: a handful of pursuers chase one or more moving targets until every
// target is captured or an iteration cap is hit.
//
// The work is organized under subpackages, each owning one stage of the
// pipeline:
//
//	grid/          — map geometry: points, directions, tiles, the static Map
//	oracle/        — compressed all-pairs shortest-path/first-step lookup
//	matching/      — bipartite matching (Hopcroft-Karp and augmenting-path)
//	assignment/    — minimal-makespan agent-to-target assignment
//	maxflow/       — dense-integer-id max-flow engine
//	planner/       — time-expanded collision-free multi-agent planner
//	targetmotion/  — target motion models (random, pre-materialised, evasive)
//	agentstrategy/ — dispatch between the greedy and collision-free regimes
//	world/         — mutable agent/target runtime state
//	simrunner/     — the per-tick simulation loop
//	gif/           — animated-GIF frame recording
//	scenario/      — random placement and procedural maze generation
//	bench/         — timing comparisons across agent strategies
//	cmd/pursuitsim — the CLI entry point
//
// See SPEC_FULL.md for the full design and DESIGN.md for how each piece maps
// back to its grounding.
package pursuit
