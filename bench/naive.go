package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/dijkstra"

	"github.com/mooshroom4422/honours-project/grid"
)

func vertexID(p grid.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// DijkstraDist computes the shortest-path distance from s to t by running
// dijkstra.Dijkstra over m.ToCoreGraph(), independently of the compressed
// oracle's own BFS. Grid edges are unit-weight so this degenerates to plain
// BFS distance; it exists as an independent correctness oracle for the
// compressed oracle's dist, per spec.md §8's "dist_bfs ... reference" —
// here sourced from the teacher's own shortest-path package instead of a
// hand-written BFS.
func DijkstraDist(m *grid.Map, s, t grid.Point) (int, error) {
	g := m.ToCoreGraph()
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(vertexID(s)))
	if err != nil {
		return 0, fmt.Errorf("bench: DijkstraDist: %w", err)
	}
	d, ok := dist[vertexID(t)]
	if !ok || d == math.MaxInt64 {
		return -1, nil
	}
	return int(d), nil
}
