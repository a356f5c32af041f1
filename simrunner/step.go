package simrunner

import (
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// step executes one tick's sequence exactly as spec.md §4.H orders it:
// target move, agent move, capture resolution. No two of these sub-steps
// interleave across ticks (spec.md §5 "Scheduling model").
func (r *Runner) step() {
	r.moveTargets()
	r.prevPos = r.snapshotAgentPositions()
	r.moveAgents()
	r.resolveCaptures()
}

func (r *Runner) moveTargets() {
	for _, t := range r.Targets {
		if t.Captured {
			continue
		}
		d := r.TargetStrategy.Step(r.Map, t, r.tick, r.Agents, r.rng)
		if q, ok := r.Map.Step(t.Pos, d); ok {
			t.Pos = q
		}
		if d == grid.Stay {
			t.Rest = t.RestPeriod
		} else {
			t.Rest--
		}
	}
}

func (r *Runner) snapshotAgentPositions() []pointSnapshot {
	snap := make([]pointSnapshot, len(r.Agents))
	for i, a := range r.Agents {
		snap[i] = pointSnapshot{x: a.Pos.X, y: a.Pos.Y}
	}
	return snap
}

func (r *Runner) moveAgents() {
	moves := r.AgentStrategy.Step(r.Map, r.Agents, r.Targets, r.tick)
	for i, a := range r.Agents {
		if !a.Active || i >= len(moves) {
			continue
		}
		if q, ok := r.Map.Step(a.Pos, moves[i]); ok {
			a.Pos = q
		}
	}
}

// resolveCaptures implements spec.md §4.H step 3: every active agent a
// captures a target whose position coincides with a's new position, when a
// is unassigned or assigned to exactly that target. Captures are collected
// before any mutation so the decision snapshot precedes all inactivation.
func (r *Runner) resolveCaptures() {
	type hit struct {
		agent, target int
	}
	var hits []hit
	for ai, a := range r.Agents {
		if !a.Active {
			continue
		}
		for ti, t := range r.Targets {
			if t.Captured || t.Pos != a.Pos {
				continue
			}
			if a.Assigned == world.Unassigned || a.Assigned == t.Idx {
				hits = append(hits, hit{ai, ti})
				break
			}
		}
	}
	for _, h := range hits {
		r.Agents[h.agent].Active = false
		r.Targets[h.target].Captured = true
	}
}

type pointSnapshot struct{ x, y int }
