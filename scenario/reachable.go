package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"

	"github.com/mooshroom4422/honours-project/grid"
)

// Reachable reports whether to is reachable from from on m's free-tile
// graph, using bfs.BFS directly rather than m.Connected's full-traversal
// diagnostic — a point-to-point query doesn't need every component
// enumerated. Used to reject a placement pair before a caller wastes an
// oracle/planner solve on two points separated by a wall.
func Reachable(m *grid.Map, from, to grid.Point) (bool, error) {
	if !m.Valid(from) || !m.Valid(to) {
		return false, nil
	}
	if from == to {
		return true, nil
	}
	g := m.ToCoreGraph()
	res, err := bfs.BFS(g, vertexID(from))
	if err != nil {
		return false, fmt.Errorf("scenario: Reachable: %w", err)
	}
	_, ok := res.Depth[vertexID(to)]
	return ok, nil
}

func vertexID(p grid.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
