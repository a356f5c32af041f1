// Package oracle implements the compressed shortest-path oracle of spec.md
// §4.B: for every free source tile s it answers first_step(s,t) and dist(s,t)
// in sublinear space by encoding the per-source first-step direction field as
// a small set of axis-aligned rectangles, instead of a dense W·H table per
// source. Grounded on bfs.BFS's walker/queue discipline (adapted from
// core.Graph string-vertex traversal to a dense 2-D array, since the oracle's
// per-source BFS runs once per free tile and string-keyed adjacency would
// dominate the cost it exists to avoid).
package oracle

import (
	"errors"

	"github.com/mooshroom4422/honours-project/grid"
)

// Sentinel errors for oracle construction and lookup.
var (
	// ErrNotBuilt indicates a lookup was attempted before Build/Load completed.
	ErrNotBuilt = errors.New("oracle: not built")
	// ErrSourceNotFree indicates the requested source tile is not a Free tile.
	ErrSourceNotFree = errors.New("oracle: source is not a free tile")
	// ErrTargetNotFree indicates the requested target tile is not a Free tile.
	ErrTargetNotFree = errors.New("oracle: target is not a free tile")
	// ErrCorrupt indicates a lookup found no rectangle containing the target.
	// Per spec.md §4.B/§7 this is a programmer error and is fatal.
	ErrCorrupt = errors.New("oracle: corrupt rectangle set (no containing rect)")
	// ErrVersionMismatch indicates a loaded cache file has an incompatible
	// version tag or map dimensions (spec.md §9 "Serialisation").
	ErrVersionMismatch = errors.New("oracle: cache version or dimensions mismatch")
)

// Rect is an axis-aligned rectangle [X0,X1]x[Y0,Y1] (inclusive) tagged with
// the first-step Direction shared by every free tile it covers, for one
// fixed source (spec.md §3 "Rect").
type Rect struct {
	X0, X1, Y0, Y1 int
	Dir            grid.Direction
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p grid.Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Oracle is the compressed shortest-path structure over a fixed grid.Map:
// a mapping source -> []Rect, one slice per free source tile, such that the
// rectangles of each source partition its reachable free tiles disjointly
// (spec.md §3 "Compressed oracle").
type Oracle struct {
	width, height int
	bySource      [][]Rect // indexed by y*width+x; nil for Wall sources
}

func idx(width int, p grid.Point) int { return p.Y*width + p.X }
