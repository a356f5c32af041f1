package targetmotion

import (
	"math/rand"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// FollowPath is a Strategy over an already-materialised world.Target.Path
// (built by GeneratePaths). At runtime it simply reads off the precomputed
// step for the given tick (spec.md §4.G "pre-materialised paths").
type FollowPath struct{}

// Step implements Strategy by returning the direction from t's position at
// tick to its position at tick+1 along the precomputed path.
func (FollowPath) Step(_ *grid.Map, t *world.Target, tick int, _ []*world.Agent, _ *rand.Rand) grid.Direction {
	cur := t.AtTime(tick)
	next := t.AtTime(tick + 1)
	d, err := grid.DirectionBetween(cur, next)
	if err != nil {
		return grid.Stay
	}
	return d
}

type occupiedKey struct {
	p grid.Point
	t int
}

// GeneratePaths materialises a random walk path for every target, honoring:
//
//   - every move is to a valid free neighbour or Stay;
//   - at most d consecutive non-Stay moves before a mandatory Stay, via a
//     per-target countdown reset on Stay and drained on any move;
//   - no two targets occupy the same cell at the same tick, via a shared
//     occupied-(cell,tick) set consulted before each candidate step;
//   - after maxAttempts failed random-step attempts for a tick, Stay is
//     chosen (spec.md §4.G).
//
// Direction-repetition-weighted sampling (continuing the previous direction
// is weighted higher than switching) is carried over from
// original_source/src/target_strategies.rs as a supplemental feature.
func GeneratePaths(m *grid.Map, targets []*world.Target, rng *rand.Rand, opts ...Option) {
	cfg := defaultGenConfig()
	for _, o := range opts {
		o(&cfg)
	}

	occupied := make(map[occupiedKey]bool, len(targets)*cfg.pathLen)
	paths := make([][]grid.Point, len(targets))
	lastDir := make([]grid.Direction, len(targets))
	countdown := make([]int, len(targets))

	for i, t := range targets {
		paths[i] = make([]grid.Point, 1, cfg.pathLen+1)
		paths[i][0] = t.Pos
		occupied[occupiedKey{p: t.Pos, t: 0}] = true
		lastDir[i] = grid.Stay
		countdown[i] = cfg.restPeriod
	}

	for tick := 0; tick < cfg.pathLen; tick++ {
		for i := range targets {
			cur := paths[i][tick]
			next, dir := pickStep(m, cur, tick+1, occupied, lastDir[i], countdown[i], cfg, rng)
			paths[i] = append(paths[i], next)
			occupied[occupiedKey{p: next, t: tick + 1}] = true
			if dir == grid.Stay {
				countdown[i] = cfg.restPeriod
			} else {
				countdown[i]--
			}
			lastDir[i] = dir
		}
	}

	for i, t := range targets {
		t.SetPath(paths[i])
	}
}

func pickStep(
	m *grid.Map,
	cur grid.Point,
	tick int,
	occupied map[occupiedKey]bool,
	lastDir grid.Direction,
	countdown int,
	cfg genConfig,
	rng *rand.Rand,
) (grid.Point, grid.Direction) {
	allowMove := countdown > 0
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		if !allowMove {
			break
		}
		d := sampleDirection(m, cur, lastDir, cfg, rng)
		if d == grid.Stay {
			continue
		}
		q, ok := m.Step(cur, d)
		// Also refuse a cell another target holds at tick-1: that target may
		// still Stay there, and a Stay is never checked against the set.
		if !ok || occupied[occupiedKey{p: q, t: tick}] || occupied[occupiedKey{p: q, t: tick - 1}] {
			continue
		}
		return q, d
	}
	return cur, grid.Stay
}

// sampleDirection samples a cardinal direction weighted toward repeating
// lastDir (original_source/src/target_strategies.rs), or Stay if no
// cardinal neighbour is valid.
func sampleDirection(m *grid.Map, cur grid.Point, lastDir grid.Direction, cfg genConfig, rng *rand.Rand) grid.Direction {
	type weighted struct {
		d grid.Direction
		w float64
	}
	var options []weighted
	total := 0.0
	for _, d := range grid.Cardinals() {
		if _, ok := m.Step(cur, d); !ok {
			continue
		}
		w := 1.0
		if d == lastDir {
			w = cfg.repeatBias
		}
		options = append(options, weighted{d: d, w: w})
		total += w
	}
	if len(options) == 0 {
		return grid.Stay
	}
	r := rng.Float64() * total
	for _, o := range options {
		if r < o.w {
			return o.d
		}
		r -= o.w
	}
	return options[len(options)-1].d
}
