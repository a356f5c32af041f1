// Package planner implements the time-expanded collision-free planner of
// spec.md §4.F: a layered flow network over T ticks is built so that a
// feasible unit flow from a virtual source (one edge per agent) to a virtual
// sink (via per-target collector nodes) corresponds exactly to a set of
// collision-free agent trajectories. Grounded on spec.md's own "3t+1 layers"
// description, cross-checked against
// original_source/src/agent_strategies.rs's NoCollisionFree (conv_expl,
// conv_edge_expl, reconv_point, and its collector reverse-mapping trick),
// using spec.md's cleaner layer description as the primary source of truth
// (see DESIGN.md Open Questions).
package planner

import (
	"sort"

	"github.com/mooshroom4422/honours-project/grid"
)

// edgeKey canonicalizes an undirected grid edge as its "lower" endpoint plus
// the positive direction (North or East) toward the other endpoint, so that
// (p,East) and (p+East,West) resolve to the same key (spec.md §4.F "The
// edge-node identity must be symmetric").
type edgeKey struct {
	p   grid.Point
	dir grid.Direction
}

// canonicalEdge normalizes any of the four cardinal directions from p to its
// canonical edgeKey.
func canonicalEdge(p grid.Point, dir grid.Direction) edgeKey {
	switch dir {
	case grid.North, grid.East:
		return edgeKey{p: p, dir: dir}
	case grid.South:
		return edgeKey{p: p.Add(grid.South), dir: grid.North}
	default: // West
		return edgeKey{p: p.Add(grid.West), dir: grid.East}
	}
}

// indexer assigns dense ids to free cells and canonical edges, in
// deterministic row-major order, so that two runs over the same map produce
// identical node numbering (spec.md §4.F "Ordering/tie-breaks").
type indexer struct {
	m        *grid.Map
	cellIdx  map[grid.Point]int
	cells    []grid.Point
	edgeIdx  map[edgeKey]int
	edgeKeys []edgeKey
}

func newIndexer(m *grid.Map) *indexer {
	ix := &indexer{m: m, cellIdx: make(map[grid.Point]int), edgeIdx: make(map[edgeKey]int)}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if m.Valid(p) {
				ix.cellIdx[p] = len(ix.cells)
				ix.cells = append(ix.cells, p)
			}
		}
	}
	// Deterministic edge enumeration: for each cell in row-major order, its
	// North and East neighbour (the two "positive" canonical directions).
	for _, p := range ix.cells {
		for _, dir := range []grid.Direction{grid.North, grid.East} {
			q, ok := m.Step(p, dir)
			if !ok {
				continue
			}
			key := edgeKey{p: p, dir: dir}
			if _, exists := ix.edgeIdx[key]; !exists {
				ix.edgeIdx[key] = len(ix.edgeKeys)
				ix.edgeKeys = append(ix.edgeKeys, key)
			}
			_ = q
		}
	}
	return ix
}

func (ix *indexer) nCells() int { return len(ix.cells) }
func (ix *indexer) nEdges() int { return len(ix.edgeKeys) }

// sortedPoints is a small helper kept for test determinism when callers need
// a stable point ordering outside the indexer itself.
func sortedPoints(pts []grid.Point) []grid.Point {
	out := append([]grid.Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// layout computes the contiguous vertex-id ranges of the time-expanded graph
// for a fixed makespan T, per the node-id packing of spec.md §3
// ("Time-expanded node id"): dense int ids, source/sink and per-target
// collector nodes as small sentinel offsets at the end of the id space.
type layout struct {
	ix        *indexer
	t         int
	nCells    int
	nEdges    int
	nTargets  int
	coreTotal int // number of vertices before source/sink/collectors
}

func newLayout(ix *indexer, t, nTargets int) *layout {
	l := &layout{ix: ix, t: t, nCells: ix.nCells(), nEdges: ix.nEdges(), nTargets: nTargets}
	// cellNodes: (t+1)*nCells
	// per-tick block (k=0..t-1): edgeIn(nEdges) + edgeOut(nEdges) + stay(nCells)
	// filterNodes: t*nCells (ticks 1..t)
	l.coreTotal = (t+1)*l.nCells + t*(2*l.nEdges+l.nCells) + t*l.nCells
	return l
}

func (l *layout) cellNode(k, ci int) int { return k*l.nCells + ci }

func (l *layout) tickBase(k int) int {
	return (l.t+1)*l.nCells + k*(2*l.nEdges+l.nCells)
}

func (l *layout) edgeInNode(k, ei int) int  { return l.tickBase(k) + ei }
func (l *layout) edgeOutNode(k, ei int) int { return l.tickBase(k) + l.nEdges + ei }
func (l *layout) stayNode(k, ci int) int    { return l.tickBase(k) + 2*l.nEdges + ci }

// filterNode addresses the cell-filter node arriving at tick k+1 (so k
// ranges over [0,t-1], matching the transition it gates).
func (l *layout) filterNode(k, ci int) int {
	base := (l.t+1)*l.nCells + l.t*(2*l.nEdges+l.nCells)
	return base + k*l.nCells + ci
}

func (l *layout) source() int       { return l.coreTotal }
func (l *layout) sink() int         { return l.coreTotal + 1 }
func (l *layout) collector(j int) int { return l.coreTotal + 2 + j }
func (l *layout) numVertices() int  { return l.coreTotal + 2 + l.nTargets }

// classifyCell reports whether id addresses a cell node, and if so its tick
// and cell index.
func (l *layout) classifyCell(id int) (tick, ci int, ok bool) {
	max := (l.t + 1) * l.nCells
	if id < 0 || id >= max {
		return 0, 0, false
	}
	return id / l.nCells, id % l.nCells, true
}

// classifyCollector reports whether id addresses a per-target collector node.
func (l *layout) classifyCollector(id int) (target int, ok bool) {
	base := l.collector(0)
	if id < base || id >= base+l.nTargets {
		return 0, false
	}
	return id - base, true
}
