// Package targetmotion implements the target motion models of spec.md §4.G:
// RandomTarget, FollowPath (over paths built by GeneratePaths) and
// MaximizeMinDist, behind one Strategy
// interface. Grounded on the teacher's functional-options idiom
// (dfs.Option, prim_kruskal.Option) for configuring rest period, path length
// and retry budget.
package targetmotion

import (
	"math/rand"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/world"
)

// Strategy picks one Direction for a target at the given simulation tick.
// agents is passed read-only so strategies such as MaximizeMinDist can react
// to pursuer positions.
type Strategy interface {
	Step(m *grid.Map, t *world.Target, tick int, agents []*world.Agent, rng *rand.Rand) grid.Direction
}

// Option configures GeneratePaths' path-generation parameters.
type Option func(*genConfig)

type genConfig struct {
	restPeriod  int
	pathLen     int
	maxAttempts int
	repeatBias  float64
}

func defaultGenConfig() genConfig {
	return genConfig{restPeriod: 4, pathLen: 64, maxAttempts: 20, repeatBias: 2.0}
}

// WithRestPeriod sets the must-rest cadence d (spec.md §4.G).
func WithRestPeriod(d int) Option { return func(c *genConfig) { c.restPeriod = d } }

// WithPathLength sets the length of the pre-generated random walk.
func WithPathLength(n int) Option { return func(c *genConfig) { c.pathLen = n } }

// WithMaxAttempts sets the retry budget before a tick is forced to Stay
// (spec.md §4.G "after 20 failed random-step attempts for a tick, Stay is
// chosen").
func WithMaxAttempts(n int) Option { return func(c *genConfig) { c.maxAttempts = n } }

// WithRepeatBias sets the relative sampling weight of continuing the
// previous direction versus switching, supplementing spec.md's prose from
// original_source/src/target_strategies.rs's direction-repetition-weighted
// path generation (see SPEC_FULL.md "Supplemented features").
func WithRepeatBias(bias float64) Option { return func(c *genConfig) { c.repeatBias = bias } }
