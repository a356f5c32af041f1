package agentstrategy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/agentstrategy"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/matching"
	"github.com/mooshroom4422/honours-project/oracle"
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
	o := oracle.Build(m)
	m.AttachOracle(o)
	return m
}

func TestMakespanGreedyMovesTowardTarget(t *testing.T) {
	m := loadRing(t)
	agents := []*world.Agent{world.NewAgent(grid.Point{X: 1, Y: 1})}
	targets := []*world.Target{world.NewTarget(0, []grid.Point{{X: 3, Y: 3}}, 2)}

	var hk matching.HopcroftKarp
	strat := agentstrategy.NewMakespanGreedy(m, &hk)

	moves := strat.Step(m, agents, targets, 0)
	require.Len(t, moves, 1)
	assert.NotEqual(t, grid.Stay, moves[0])

	q, ok := m.Step(agents[0].Pos, moves[0])
	require.True(t, ok)
	d0, _ := m.Dist(agents[0].Pos, targets[0].Pos)
	d1, _ := m.Dist(q, targets[0].Pos)
	assert.Less(t, d1, d0)
}

func TestCollisionFreeReplaysPrecomputedPlan(t *testing.T) {
	m := loadRing(t)
	agents := []*world.Agent{world.NewAgent(grid.Point{X: 1, Y: 1})}
	targets := []*world.Target{world.NewTarget(0, []grid.Point{{X: 3, Y: 3}}, 2)}

	strat := agentstrategy.NewCollisionFree(m, 0)

	pos := agents[0].Pos
	var moves []grid.Direction
	for tick := 0; tick < 8; tick++ {
		step := strat.Step(m, agents, targets, tick)
		require.NoError(t, strat.Err())
		require.Len(t, step, 1)
		moves = append(moves, step[0])
		if step[0] != grid.Stay {
			q, ok := m.Step(pos, step[0])
			require.True(t, ok)
			pos = q
		}
	}
	assert.Equal(t, targets[0].Pos, pos)
}
