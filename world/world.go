// Package world holds the mutable runtime state of a simulation: agents and
// targets. Everything here mutates tick by tick under the exclusive
// ownership of simrunner.Runner (spec 3 "Ownership").
package world

import "github.com/mooshroom4422/honours-project/grid"

// Unassigned is the sentinel value of Agent.Assigned before any target has
// been committed to this agent.
const Unassigned = -1

// Agent is a pursuer. Once Assigned >= 0 it remains assigned until the agent
// deactivates (Open Question resolution, spec 9).
type Agent struct {
	Pos      grid.Point
	Active   bool
	Assigned int
}

// NewAgent creates an active, unassigned agent at pos.
func NewAgent(pos grid.Point) *Agent {
	return &Agent{Pos: pos, Active: true, Assigned: Unassigned}
}

// Target is an evader following a precomputed path. Rest is the must-rest
// countdown: it resets to RestPeriod on every Stay step and is drained by
// one on every other step (spec 4.G).
type Target struct {
	Pos        grid.Point
	RestPeriod int
	Rest       int
	Path       []grid.Point
	Idx        int
	Captured   bool
}

// NewTarget creates a target at the head of path with rest period d.
func NewTarget(idx int, path []grid.Point, d int) *Target {
	pos := grid.Point{}
	if len(path) > 0 {
		pos = path[0]
	}
	return &Target{Pos: pos, RestPeriod: d, Rest: d, Path: path, Idx: idx}
}

// AtTime returns the target's position at tick k, clamped to the last
// position of its precomputed path once k exceeds the path length
// (spec 4.D: "τ.at_time(k) = path[min(k, |path|-1)]").
func (t *Target) AtTime(k int) grid.Point {
	if len(t.Path) == 0 {
		return t.Pos
	}
	if k < 0 {
		k = 0
	}
	if k >= len(t.Path) {
		k = len(t.Path) - 1
	}
	return t.Path[k]
}

// SetPath replaces the target's precomputed path wholesale, resetting its
// current position to the new path's head. Exposed for tests and scripted
// scenarios (spec 4.G).
func (t *Target) SetPath(path []grid.Point) {
	t.Path = path
	if len(path) > 0 {
		t.Pos = path[0]
	}
}
