package simrunner

import (
	"fmt"

	"github.com/mooshroom4422/honours-project/grid"
)

// checkInvariants verifies the per-tick assertions of spec.md §8. The two
// collision checks only apply under the collision-free planner regime; the
// greedy makespan regime permits agents to share cells and swap edges.
func (r *Runner) checkInvariants() error {
	for _, a := range r.Agents {
		if !a.Active {
			continue
		}
		if !r.Map.Valid(a.Pos) {
			return fmt.Errorf("simrunner: invariant violated: active agent at %v is not a free tile", a.Pos)
		}
	}
	for _, t := range r.Targets {
		if t.Captured {
			continue
		}
		if !r.Map.Valid(t.Pos) {
			return fmt.Errorf("simrunner: invariant violated: target at %v is not a free tile", t.Pos)
		}
	}

	if !r.Opts.CollisionFreeRegime {
		return nil
	}

	occupied := make(map[grid.Point]int, len(r.Agents))
	for i, a := range r.Agents {
		if !a.Active {
			continue
		}
		if other, ok := occupied[a.Pos]; ok {
			return fmt.Errorf("simrunner: invariant violated: agents %d and %d share cell %v", other, i, a.Pos)
		}
		occupied[a.Pos] = i
	}

	type edgeUse struct {
		from grid.Point
		dir  grid.Direction
	}
	used := make(map[edgeUse]int, len(r.Agents))
	for i, a := range r.Agents {
		if !a.Active || i >= len(r.prevPos) {
			continue
		}
		from := grid.Point{X: r.prevPos[i].x, Y: r.prevPos[i].y}
		if from == a.Pos {
			continue
		}
		dir, err := grid.DirectionBetween(from, a.Pos)
		if err != nil {
			continue
		}
		opp := edgeUse{from: a.Pos, dir: dir.Opposite()}
		if other, ok := used[opp]; ok {
			return fmt.Errorf("simrunner: invariant violated: agents %d and %d cross the same edge head-on", other, i)
		}
		used[edgeUse{from: from, dir: dir}] = i
	}
	return nil
}
