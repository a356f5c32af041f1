package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// Oracle is the subset of oracle.Oracle that Map needs, declared here to
// avoid an import cycle between grid and oracle (oracle.Oracle is built from
// a *grid.Map, so grid cannot import oracle).
type Oracle interface {
	FirstStep(s, t Point) (Direction, error)
	Dist(s, t Point) (int, error)
}

// Map is the static grid substrate: dimensions, tiles and (once attached) the
// compressed shortest-path oracle. Immutable after New/Load return.
type Map struct {
	Width, Height int
	tiles         []Tile // row-major, index = y*Width+x
	oracle        Oracle
}

// New builds a Map from a rectangular tile grid addressed tiles[y][x], with y
// the row index directly (tiles[0] is the northernmost/top row, South
// increases y). Returns ErrEmptyMap, ErrNonRectangular or ErrBorderNotWall on
// malformed input.
func New(tiles [][]Tile) (*Map, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyMap
	}
	h, w := len(tiles), len(tiles[0])
	for _, row := range tiles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]Tile, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			flat[y*w+x] = tiles[y][x]
		}
	}
	m := &Map{Width: w, Height: h, tiles: flat}
	if err := m.checkBorder(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) checkBorder() error {
	for x := 0; x < m.Width; x++ {
		if m.tileAt(x, 0) != Wall || m.tileAt(x, m.Height-1) != Wall {
			return ErrBorderNotWall
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.tileAt(0, y) != Wall || m.tileAt(m.Width-1, y) != Wall {
			return ErrBorderNotWall
		}
	}
	return nil
}

func (m *Map) tileAt(x, y int) Tile {
	return m.tiles[y*m.Width+x]
}

// InBounds reports whether p lies within the map's dimensions.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TileAt returns the tile at p, or Wall if p is out of bounds.
func (m *Map) TileAt(p Point) Tile {
	if !m.InBounds(p) {
		return Wall
	}
	return m.tileAt(p.X, p.Y)
}

// Valid reports whether p is in-bounds and Free.
func (m *Map) Valid(p Point) bool {
	return m.InBounds(p) && m.tileAt(p.X, p.Y) == Free
}

// Step returns the neighbour of p in direction d, and whether that neighbour
// is a valid (in-bounds, Free) tile. Stay always returns (p, Valid(p)).
func (m *Map) Step(p Point, d Direction) (Point, bool) {
	q := p.Add(d)
	return q, m.Valid(q)
}

// DirectionBetween returns the Direction taking p to q when they are equal or
// orthogonally adjacent (|p-q|_1 <= 1). Returns ErrNotNeighbors otherwise,
// matching the teacher's precondition-violation contract (spec 4.A).
func DirectionBetween(p, q Point) (Direction, error) {
	if p == q {
		return Stay, nil
	}
	dx, dy := q.X-p.X, q.Y-p.Y
	switch {
	case dx == 0 && dy == -1:
		return North, nil
	case dx == 0 && dy == 1:
		return South, nil
	case dx == 1 && dy == 0:
		return East, nil
	case dx == -1 && dy == 0:
		return West, nil
	default:
		return Unreachable, ErrNotNeighbors
	}
}

// AttachOracle binds a compressed shortest-path oracle to the map. Called
// once by the package that builds the oracle (package oracle); Map itself
// never constructs one, avoiding an import cycle.
func (m *Map) AttachOracle(o Oracle) {
	m.oracle = o
}

// FirstStep delegates to the attached oracle. Panics if no oracle has been
// attached, since that is a programmer error (spec 4.B: oracle lookup failure
// is fatal).
func (m *Map) FirstStep(s, t Point) (Direction, error) {
	if m.oracle == nil {
		panic("grid: Map.FirstStep called before AttachOracle")
	}
	return m.oracle.FirstStep(s, t)
}

// Dist delegates to the attached oracle.
func (m *Map) Dist(s, t Point) (int, error) {
	if m.oracle == nil {
		panic("grid: Map.Dist called before AttachOracle")
	}
	return m.oracle.Dist(s, t)
}

func (m *Map) vertexID(p Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ToCoreGraph converts the Free tiles of m into a weighted, undirected
// *core.Graph with unit-weight edges between orthogonally adjacent Free
// cells, adapted from gridgraph.GridGraph.ToCoreGraph (here Wall tiles are
// simply excluded from the vertex set rather than gated by LandThreshold).
func (m *Map) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			if m.Valid(p) {
				_ = g.AddVertex(m.vertexID(p))
			}
		}
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			if !m.Valid(p) {
				continue
			}
			for _, d := range Cardinals() {
				q := p.Add(d)
				if m.Valid(q) {
					_, _ = g.AddEdge(m.vertexID(p), m.vertexID(q), 1)
				}
			}
		}
	}
	return g
}

// Connected reports whether every Free tile is reachable from every other
// Free tile, using dfs.DFS in full-traversal mode over ToCoreGraph as a
// pre-flight diagnostic (grounded on dfs.DFSOptions.FullTraversal and
// gridgraph.ConnectedComponents' component-counting idea).
func (m *Map) Connected() (bool, error) {
	g := m.ToCoreGraph()
	verts := g.Vertices()
	if len(verts) == 0 {
		return true, nil
	}
	res, err := dfs.DFS(g, verts[0], dfs.WithFullTraversal())
	if err != nil {
		return false, fmt.Errorf("grid: Connected: %w", err)
	}
	return len(res.Visited) == len(verts), nil
}

// AsGridGraph reinterprets m's tiles as a gridgraph.GridGraph (Free=1,
// Wall=0, LandThreshold=1), giving callers access to the teacher's
// ConnectedComponents for diagnostics without duplicating that algorithm.
func (m *Map) AsGridGraph() (*gridgraph.GridGraph, error) {
	values := make([][]int, m.Height)
	for y := 0; y < m.Height; y++ {
		values[y] = make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			if m.tileAt(x, y) == Free {
				values[y][x] = 1
			}
		}
	}
	return gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
}
