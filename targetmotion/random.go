package targetmotion

import (
	"math/rand"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// RandomTarget samples a uniformly random valid move (including Stay) each
// tick, with no long-term path (spec.md §4.G).
type RandomTarget struct{}

// Step implements Strategy.
func (RandomTarget) Step(m *grid.Map, t *world.Target, _ int, _ []*world.Agent, rng *rand.Rand) grid.Direction {
	candidates := make([]grid.Direction, 0, 5)
	candidates = append(candidates, grid.Stay)
	for _, d := range grid.Cardinals() {
		if _, ok := m.Step(t.Pos, d); ok {
			candidates = append(candidates, d)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
