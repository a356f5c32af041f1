package planner

import (
	"errors"
	"fmt"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/maxflow"
	"github.com/mooshroom4422/honours-project/world"
)

// ErrInfeasible indicates the binary search for T exhausted TCap without
// finding a feasible collision-free plan (spec.md §7 "Infeasible plan").
var ErrInfeasible = errors.New("planner: no feasible collision-free plan within TCap")

// Oracle is the subset of oracle.Oracle.Dist the planner needs to compute a
// safe upper bound for the binary search.
type Oracle interface {
	Dist(s, t grid.Point) (int, error)
}

// AgentPlan is one agent's reconstructed trajectory: the Direction taken at
// each tick (length <= T) and the target index it captured, or -1 if it
// never captures within T (should not happen for a feasible plan).
type AgentPlan struct {
	Moves    []grid.Direction
	Captured int
}

// Plan is the outcome of Solve: the minimum feasible makespan and one
// AgentPlan per agent, in input order.
type Plan struct {
	Makespan int
	Agents   []AgentPlan
}

// moveOrder is the fixed tie-break order of spec.md §4.F: "edges are
// inserted in a fixed order N,E,S,W,Stay at each cell".
var moveOrder = []grid.Direction{grid.North, grid.East, grid.South, grid.West, grid.Stay}

// Solve binary-searches t in [0,TCap] for the minimum feasible collision-free
// makespan and reconstructs per-agent paths (spec.md §4.F). When tCap <= 0 is
// passed, TCap defaults to safeDiameterBound: three times the largest oracle
// distance from the first free cell, plus one (a safe bound per spec.md §4.F
// "T_cap is a safe bound on the diameter of the map multiplied by a small
// constant").
func Solve(m *grid.Map, o Oracle, agents []*world.Agent, targets []*world.Target, tCap int) (Plan, error) {
	if tCap <= 0 {
		d, err := safeDiameterBound(m, o)
		if err != nil {
			return Plan{}, err
		}
		tCap = d
	}

	ix := newIndexer(m)

	feasible := func(t int) (*maxflow.Graph, *layout, bool, error) {
		l := newLayout(ix, t, len(targets))
		g := buildGraph(m, ix, l, agents, targets, t)
		flow, err := g.MaxFlow()
		if err != nil {
			return nil, nil, false, err
		}
		return g, l, flow == len(agents), nil
	}

	lo, hi := 0, tCap
	g, l, ok, err := feasible(hi)
	if err != nil {
		return Plan{}, err
	}
	if !ok {
		return Plan{}, ErrInfeasible
	}
	bestG, bestL := g, l

	for lo < hi {
		mid := (lo + hi) / 2
		g, l, ok, err := feasible(mid)
		if err != nil {
			return Plan{}, err
		}
		if ok {
			hi = mid
			bestG, bestL = g, l
		} else {
			lo = mid + 1
		}
	}

	plans := reconstruct(ix, bestL, bestG, agents, lo)
	return Plan{Makespan: lo, Agents: plans}, nil
}

// safeDiameterBound computes max over free cells of Dist(arbitrary fixed
// cell, that cell) x3 + 1, a cheap safe over-approximation of the map's BFS
// diameter multiplied by a small constant.
func safeDiameterBound(m *grid.Map, o Oracle) (int, error) {
	var anchor grid.Point
	found := false
	for y := 0; y < m.Height && !found; y++ {
		for x := 0; x < m.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if m.Valid(p) {
				anchor = p
				found = true
				break
			}
		}
	}
	if !found {
		return 0, fmt.Errorf("planner: map has no free tiles")
	}
	maxDist := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if !m.Valid(p) {
				continue
			}
			d, err := o.Dist(anchor, p)
			if err != nil {
				return 0, err
			}
			if d > maxDist {
				maxDist = d
			}
		}
	}
	return maxDist*3 + 1, nil
}

func buildGraph(m *grid.Map, ix *indexer, l *layout, agents []*world.Agent, targets []*world.Target, t int) *maxflow.Graph {
	g := maxflow.NewGraph(l.numVertices())
	g.SetTerminals(l.source(), l.sink())

	for _, a := range agents {
		ci := ix.cellIdx[a.Pos]
		g.AddEdge(l.source(), l.cellNode(0, ci), 1)
	}

	for k := 0; k < t; k++ {
		for ci, p := range ix.cells {
			for _, dir := range moveOrder {
				if dir == grid.Stay {
					sn := l.stayNode(k, ci)
					g.AddEdge(l.cellNode(k, ci), sn, 1)
					g.AddEdge(sn, l.filterNode(k, ci), 1)
					continue
				}
				q, ok := m.Step(p, dir)
				if !ok {
					continue
				}
				key := canonicalEdge(p, dir)
				ei := ix.edgeIdx[key]
				in, out := l.edgeInNode(k, ei), l.edgeOutNode(k, ei)
				// The (in,out) split enforces edge-capacity 1 regardless of
				// which of the two endpoints the traversal originates from
				// (spec.md §4.F anti-head-on-swap constraint).
				g.AddEdge(l.cellNode(k, ci), in, 1)
				g.AddEdge(in, out, 1)
				qi := ix.cellIdx[q]
				g.AddEdge(out, l.filterNode(k, qi), 1)
			}
		}
		for ci := range ix.cells {
			g.AddEdge(l.filterNode(k, ci), l.cellNode(k+1, ci), 1)
		}
	}

	for j, tgt := range targets {
		col := l.collector(j)
		g.AddEdge(col, l.sink(), 1)
		for k := 0; k <= t; k++ {
			p := tgt.AtTime(k)
			if ci, ok := ix.cellIdx[p]; ok {
				g.AddEdge(l.cellNode(k, ci), col, 1)
			}
		}
	}

	return g
}

// reconstruct walks saturated edges per spec.md §4.F "Reconstruction":
// starting at cell(0,agent.Pos), repeatedly follow SaturatedEdge until
// landing on either the next tick's cell node or a collector node
// (terminal capture).
func reconstruct(ix *indexer, l *layout, g *maxflow.Graph, agents []*world.Agent, t int) []AgentPlan {
	plans := make([]AgentPlan, len(agents))
	for i, a := range agents {
		plans[i] = AgentPlan{Captured: -1}
		cur := l.cellNode(0, ix.cellIdx[a.Pos])
		curPoint := a.Pos

		for k := 0; k < t; k++ {
			next, ok := g.SaturatedEdge(cur)
			if !ok {
				break
			}
			if tgt, isCol := l.classifyCollector(next); isCol {
				plans[i].Captured = tgt
				break
			}
			// Walk through the edge-node (and possibly in->out) / stay-node
			// chain until the next cell node is reached.
			for {
				if _, _, isCell := l.classifyCell(next); isCell {
					break
				}
				if tgt, isCol := l.classifyCollector(next); isCol {
					plans[i].Captured = tgt
					break
				}
				nn, ok := g.SaturatedEdge(next)
				if !ok {
					break
				}
				next = nn
			}
			if plans[i].Captured >= 0 {
				break
			}
			_, nextCi, isCell := l.classifyCell(next)
			if !isCell {
				break
			}
			nextPoint := ix.cells[nextCi]
			dir, err := grid.DirectionBetween(curPoint, nextPoint)
			if err != nil {
				break
			}
			plans[i].Moves = append(plans[i].Moves, dir)
			cur = next
			curPoint = nextPoint
		}

		if plans[i].Captured < 0 {
			if n, ok := g.SaturatedEdge(cur); ok {
				if tgt, isCol := l.classifyCollector(n); isCol {
					plans[i].Captured = tgt
				}
			}
		}
	}
	return plans
}
