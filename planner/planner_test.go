package planner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/oracle"
	"github.com/mooshroom4422/honours-project/planner"
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

func TestSingleAgentCollisionFree(t *testing.T) {
	m, err := grid.Load(strings.NewReader(ring5x5))
	require.NoError(t, err)
	o := oracle.Build(m)
	m.AttachOracle(o)

	agents := []*world.Agent{world.NewAgent(grid.Point{X: 1, Y: 1})}
	targets := []*world.Target{world.NewTarget(0, []grid.Point{{X: 3, Y: 3}}, 2)}

	plan, err := planner.Solve(m, m, agents, targets, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Makespan)
	require.Len(t, plan.Agents, 1)
	assert.Equal(t, 0, plan.Agents[0].Captured)
	assert.Len(t, plan.Agents[0].Moves, 4)
}
