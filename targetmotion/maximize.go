package targetmotion

import (
	"math/rand"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// MaximizeMinDist greedily steps toward the move that maximises the minimum
// oracle distance to any active agent (spec.md §4.G).
type MaximizeMinDist struct {
	Oracle interface {
		Dist(s, t grid.Point) (int, error)
	}
}

// Step implements Strategy.
func (s MaximizeMinDist) Step(m *grid.Map, t *world.Target, _ int, agents []*world.Agent, rng *rand.Rand) grid.Direction {
	best := grid.Stay
	bestScore := -1
	var tied []grid.Direction

	score := func(p grid.Point) int {
		min := -1
		for _, a := range agents {
			if !a.Active {
				continue
			}
			d, err := s.Oracle.Dist(p, a.Pos)
			if err != nil {
				continue
			}
			if min == -1 || d < min {
				min = d
			}
		}
		return min
	}

	candidates := []grid.Direction{grid.Stay}
	candidates = append(candidates, grid.Cardinals()[:]...)
	for _, d := range candidates {
		q, ok := m.Step(t.Pos, d)
		if d != grid.Stay && !ok {
			continue
		}
		if d == grid.Stay {
			q = t.Pos
		}
		sc := score(q)
		switch {
		case sc > bestScore:
			bestScore = sc
			best = d
			tied = []grid.Direction{d}
		case sc == bestScore:
			tied = append(tied, d)
		}
	}
	if len(tied) > 1 {
		return tied[rng.Intn(len(tied))]
	}
	return best
}
