package targetmotion_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/targetmotion"
	"github.com/mooshroom4422/honours-project/world"
)

const ring5x5 = `type ring
height 5
width 5
map
XXXXX
X...X
X.X.X
X...X
XXXXX
`

func loadRing(t *testing.T) *grid.Map {
	t.Helper()
	m, err := grid.Load(strings.NewReader(ring5x5))
	require.NoError(t, err)
	return m
}

func TestGeneratePathsRespectsRestPeriod(t *testing.T) {
	m := loadRing(t)
	targets := []*world.Target{world.NewTarget(0, []grid.Point{{X: 1, Y: 1}}, 2)}
	rng := rand.New(rand.NewSource(42))

	targetmotion.GeneratePaths(m, targets, rng, targetmotion.WithRestPeriod(2), targetmotion.WithPathLength(30))

	path := targets[0].Path
	require.Len(t, path, 31)
	for _, p := range path {
		assert.True(t, m.Valid(p))
	}

	// No more than 2 consecutive non-Stay moves before a Stay.
	run := 0
	for i := 1; i < len(path); i++ {
		if path[i] == path[i-1] {
			run = 0
			continue
		}
		run++
		assert.LessOrEqual(t, run, 2)
	}
}

func TestGeneratePathsNoSharedCellAtSameTick(t *testing.T) {
	m := loadRing(t)
	targets := []*world.Target{
		world.NewTarget(0, []grid.Point{{X: 1, Y: 1}}, 2),
		world.NewTarget(1, []grid.Point{{X: 3, Y: 1}}, 2),
	}
	rng := rand.New(rand.NewSource(7))
	targetmotion.GeneratePaths(m, targets, rng, targetmotion.WithPathLength(20))

	for tick := 0; tick <= 20; tick++ {
		assert.NotEqual(t, targets[0].AtTime(tick), targets[1].AtTime(tick))
	}
}

func TestFollowPathStep(t *testing.T) {
	m := loadRing(t)
	tgt := world.NewTarget(0, []grid.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 1}}, 2)
	var s targetmotion.FollowPath
	rng := rand.New(rand.NewSource(1))
	d := s.Step(m, tgt, 0, nil, rng)
	assert.Equal(t, grid.East, d)
	d = s.Step(m, tgt, 1, nil, rng)
	assert.Equal(t, grid.Stay, d)
}

func TestRandomTargetStepIsValid(t *testing.T) {
	m := loadRing(t)
	tgt := world.NewTarget(0, []grid.Point{{X: 1, Y: 1}}, 0)
	rng := rand.New(rand.NewSource(3))
	var s targetmotion.RandomTarget
	for i := 0; i < 20; i++ {
		d := s.Step(m, tgt, 0, nil, rng)
		q, ok := m.Step(tgt.Pos, d)
		assert.True(t, d == grid.Stay || ok)
		_ = q
	}
}
