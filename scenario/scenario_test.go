package scenario_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/scenario"
)

func TestGenerateMazeHasSolidBorderAndIsConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m, err := scenario.GenerateMaze(4, 3, rng)
	require.NoError(t, err)
	assert.Equal(t, 9, m.Width)
	assert.Equal(t, 7, m.Height)

	connected, err := m.Connected()
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestPlacePointsNoOverlapAcrossGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, err := scenario.GenerateMaze(5, 5, rng)
	require.NoError(t, err)

	region := scenario.FullMap(m)
	agents, err := scenario.PlacePoints(m, region, 4, rng)
	require.NoError(t, err)

	excluded := make(map[grid.Point]bool, len(agents))
	for _, p := range agents {
		excluded[p] = true
	}
	targets, err := scenario.PlacePointsExcluding(m, region, 4, excluded, rng)
	require.NoError(t, err)

	for _, a := range agents {
		for _, tg := range targets {
			assert.NotEqual(t, a, tg)
		}
	}
}

func TestReachableWithinConnectedMaze(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m, err := scenario.GenerateMaze(3, 3, rng)
	require.NoError(t, err)

	ok, err := scenario.Reachable(m, grid.Point{X: 1, Y: 1}, grid.Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = scenario.Reachable(m, grid.Point{X: 1, Y: 1}, grid.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlacePointsErrorsWhenRegionTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, err := scenario.GenerateMaze(2, 2, rng)
	require.NoError(t, err)
	_, err = scenario.PlacePoints(m, scenario.FullMap(m), 1000, rng)
	assert.ErrorIs(t, err, scenario.ErrNoFreeCells)
}
