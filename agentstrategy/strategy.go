// Package agentstrategy binds components D (assignment) and F (planner)
// behind one Strategy interface consumed by simrunner, mirroring the
// teacher's dispatch-table idiom (prim_kruskal.MSTOptions.Method +
// prim_kruskal.Compute) adapted from algorithm-selection to agent-behaviour
// selection. Names are grounded on
// original_source/src/agent_strategies.rs's strategy variants
// (MakeSpanHopcroft / NoCollisionSingle / CollisionAssigned / CollisionFree
// / NoCollisionFree), collapsed here to the two regimes spec.md actually
// specifies: makespan assignment (collisions permitted) and the
// time-expanded collision-free planner.
package agentstrategy

import (
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// Strategy computes one Direction per active agent for the given tick.
// Implementations may precompute an assignment or a full plan on first use
// and replay it thereafter; both of this package's implementations do so.
type Strategy interface {
	Step(m *grid.Map, agents []*world.Agent, targets []*world.Target, tick int) []grid.Direction
}
