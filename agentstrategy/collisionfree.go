package agentstrategy

import (
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/planner"
	"github.com/mooshroom4422/honours-project/world"
)

// CollisionFree computes a full time-expanded collision-free plan once
// (component F) and replays each agent's precomputed move per tick
// (spec.md §4.F / original_source/src/agent_strategies.rs's
// CollisionFree/NoCollisionFree variants).
type CollisionFree struct {
	Oracle oracle
	TCap   int

	solved bool
	plan   planner.Plan
	err    error
}

// NewCollisionFree constructs a CollisionFree strategy. tCap bounds the
// binary search over candidate makespans; 0 lets planner.Solve derive a
// safe bound from the map diameter.
func NewCollisionFree(o oracle, tCap int) *CollisionFree {
	return &CollisionFree{Oracle: o, TCap: tCap}
}

// Step implements Strategy.
func (c *CollisionFree) Step(m *grid.Map, agents []*world.Agent, targets []*world.Target, tick int) []grid.Direction {
	if !c.solved {
		c.plan, c.err = planner.Solve(m, c.Oracle, agents, targets, c.TCap)
		c.solved = true
	}

	moves := make([]grid.Direction, len(agents))
	for i, a := range agents {
		if !a.Active || c.err != nil || i >= len(c.plan.Agents) {
			moves[i] = grid.Stay
			continue
		}
		ap := c.plan.Agents[i]
		if tick < 0 || tick >= len(ap.Moves) {
			moves[i] = grid.Stay
			continue
		}
		moves[i] = ap.Moves[tick]
	}
	return moves
}

// Err returns the error from the most recent plan computation, if any.
func (c *CollisionFree) Err() error {
	return c.err
}
