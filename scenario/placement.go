// Package scenario builds simulation inputs: random agent/target placement
// within a rectangular region, and procedural maze/arena map generation,
// supplementing spec.md's component list per
// original_source/src/bench.rs and compress_maps.rs (which both construct
// scenarios programmatically rather than loading only hand-authored map
// files).
package scenario

import (
	"errors"
	"math/rand"

	"github.com/mooshroom4422/honours-project/grid"
)

// ErrNoFreeCells indicates a placement request could not find enough Free
// tiles within the requested rectangle.
var ErrNoFreeCells = errors.New("scenario: not enough free cells in region to place that many points")

// Rect is an axis-aligned, inclusive coordinate rectangle constraining
// random placement to a sub-region of the map (e.g. "agents only spawn in
// the left third").
type Rect struct {
	X0, X1, Y0, Y1 int
}

// Contains reports whether p lies within r, inclusive.
func (r Rect) Contains(p grid.Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// FullMap returns a Rect covering m's entire extent.
func FullMap(m *grid.Map) Rect {
	return Rect{X0: 0, X1: m.Width - 1, Y0: 0, Y1: m.Height - 1}
}

// PlacePoints samples n distinct Free cells within region, uniformly at
// random without replacement, in deterministic iteration order (sorted free
// cells, Fisher-Yates shuffle) so a fixed rng seed reproduces a fixed
// placement.
func PlacePoints(m *grid.Map, region Rect, n int, rng *rand.Rand) ([]grid.Point, error) {
	return PlacePointsExcluding(m, region, n, nil, rng)
}

// PlacePointsExcluding is PlacePoints with an additional set of cells that
// must not be chosen, letting callers place several disjoint groups (e.g.
// agents then targets) within possibly-overlapping regions without
// double-booking a cell (original_source/src/bench.rs's gen_set threads a
// single generated_so_far list through both groups for the same reason).
func PlacePointsExcluding(m *grid.Map, region Rect, n int, excluded map[grid.Point]bool, rng *rand.Rand) ([]grid.Point, error) {
	var free []grid.Point
	for y := region.Y0; y <= region.Y1; y++ {
		for x := region.X0; x <= region.X1; x++ {
			p := grid.Point{X: x, Y: y}
			if excluded[p] {
				continue
			}
			if m.InBounds(p) && m.Valid(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) < n {
		return nil, ErrNoFreeCells
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	return free[:n], nil
}
