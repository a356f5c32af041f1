package agentstrategy

import (
	"github.com/mooshroom4422/honours-project/assignment"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/matching"
	"github.com/mooshroom4422/honours-project/world"
)

// oracle is the subset of oracle.Oracle this package consumes, declared
// locally the way grid.Map declares its own Oracle interface, so callers can
// inject a fake in tests without importing the oracle package.
type oracle interface {
	Dist(s, t grid.Point) (int, error)
	FirstStep(s, t grid.Point) (grid.Direction, error)
}

// MakespanGreedy computes a minimal-makespan assignment once (component D)
// and thereafter moves each agent one oracle first-step per tick toward its
// assigned target, without regard to collisions between agents
// (spec.md §4.D / original_source/src/agent_strategies.rs's
// MakeSpanHopcroft/CollisionAssigned variants).
type MakespanGreedy struct {
	Oracle  oracle
	Matcher matching.Matcher

	solved     bool
	assignment []int
}

// NewMakespanGreedy constructs a MakespanGreedy using the given oracle and
// bipartite matcher (typically a *matching.HopcroftKarp).
func NewMakespanGreedy(o oracle, m matching.Matcher) *MakespanGreedy {
	return &MakespanGreedy{Oracle: o, Matcher: m}
}

// Step implements Strategy.
func (g *MakespanGreedy) Step(m *grid.Map, agents []*world.Agent, targets []*world.Target, tick int) []grid.Direction {
	if !g.solved {
		res, err := assignment.Solve(g.Oracle, agents, targets, g.Matcher)
		if err == nil {
			g.assignment = res.AgentTarget
		} else {
			g.assignment = make([]int, len(agents))
			for i := range g.assignment {
				g.assignment[i] = -1
			}
		}
		g.solved = true
	}

	moves := make([]grid.Direction, len(agents))
	for i, a := range agents {
		if !a.Active || i >= len(g.assignment) || g.assignment[i] < 0 {
			moves[i] = grid.Stay
			continue
		}
		tgt := targets[g.assignment[i]]
		d, err := g.Oracle.FirstStep(a.Pos, tgt.AtTime(tick))
		if err != nil {
			d = grid.Stay
		}
		moves[i] = d
	}
	return moves
}
