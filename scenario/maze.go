package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/prim_kruskal"

	"github.com/mooshroom4422/honours-project/grid"
)

// GenerateMaze builds a perfect maze (exactly one path between any two
// rooms) on a cw x ch grid of rooms, using a randomly-weighted *core.Graph
// of room-adjacency edges and prim_kruskal.Kruskal's minimum spanning tree
// to decide which adjacent rooms are connected. This is the classic
// MST-based maze algorithm, grounded here on the teacher's own Kruskal
// implementation rather than a hand-rolled union-find.
//
// The returned map has dimensions (2*cw+1) x (2*ch+1): rooms sit at odd
// coordinates, with a wall or carved passage at the even coordinate between
// each pair of orthogonally adjacent rooms, and a solid Wall border.
func GenerateMaze(cw, ch int, rng *rand.Rand) (*grid.Map, error) {
	if cw < 1 || ch < 1 {
		return nil, fmt.Errorf("scenario: GenerateMaze: cw and ch must be >= 1")
	}

	g := core.NewGraph(core.WithWeighted())
	roomID := func(i, j int) string { return fmt.Sprintf("%d,%d", i, j) }
	for j := 0; j < ch; j++ {
		for i := 0; i < cw; i++ {
			_ = g.AddVertex(roomID(i, j))
		}
	}
	for j := 0; j < ch; j++ {
		for i := 0; i < cw; i++ {
			if i+1 < cw {
				_, _ = g.AddEdge(roomID(i, j), roomID(i+1, j), int64(rng.Intn(1<<20)))
			}
			if j+1 < ch {
				_, _ = g.AddEdge(roomID(i, j), roomID(i, j+1), int64(rng.Intn(1<<20)))
			}
		}
	}

	mst, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, fmt.Errorf("scenario: GenerateMaze: %w", err)
	}

	width, height := 2*cw+1, 2*ch+1
	tiles := make([][]grid.Tile, height)
	for y := range tiles {
		tiles[y] = make([]grid.Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = grid.Wall
		}
	}
	roomCell := func(i, j int) (int, int) { return 2*i + 1, 2*j + 1 }
	for j := 0; j < ch; j++ {
		for i := 0; i < cw; i++ {
			x, y := roomCell(i, j)
			tiles[y][x] = grid.Free
		}
	}

	parseRoom := func(id string) (int, int) {
		var i, j int
		_, _ = fmt.Sscanf(id, "%d,%d", &i, &j)
		return i, j
	}
	for _, e := range mst {
		ai, aj := parseRoom(e.From)
		bi, bj := parseRoom(e.To)
		ax, ay := roomCell(ai, aj)
		bx, by := roomCell(bi, bj)
		wx, wy := (ax+bx)/2, (ay+by)/2
		tiles[wy][wx] = grid.Free
	}

	return grid.New(tiles)
}
