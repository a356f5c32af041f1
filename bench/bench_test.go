package bench_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/agentstrategy"
	"github.com/mooshroom4422/honours-project/bench"
	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/matching"
	"github.com/mooshroom4422/honours-project/oracle"
	"github.com/mooshroom4422/honours-project/scenario"
	"github.com/mooshroom4422/honours-project/targetmotion"
)

const arena = `type arena
height 9
width 9
map
XXXXXXXXX
X.......X
X.......X
X.......X
X.......X
X.......X
X.......X
X.......X
XXXXXXXXX
`

func loadArena(t testing.TB) *grid.Map {
	t.Helper()
	m, err := grid.Load(strings.NewReader(arena))
	require.NoError(t, err)
	m.AttachOracle(oracle.Build(m))
	return m
}

func makespanFactory(m *grid.Map, _ bench.Scenario) agentstrategy.Strategy {
	var hk matching.HopcroftKarp
	return agentstrategy.NewMakespanGreedy(m, &hk)
}

func randomTargetFactory(_ *grid.Map, _ bench.Scenario, _ *rand.Rand) targetmotion.Strategy {
	return targetmotion.RandomTarget{}
}

func TestDijkstraDistMatchesOracle(t *testing.T) {
	m := loadArena(t)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			s := grid.Point{X: x, Y: y}
			want, err := bench.DijkstraDist(m, s, grid.Point{X: 1, Y: 1})
			require.NoError(t, err)
			got, err := m.Dist(s, grid.Point{X: 1, Y: 1})
			require.NoError(t, err)
			assert.Equal(t, want, got, "dist(%v,(1,1))", s)
		}
	}
}

func TestGenerateSetAndRun(t *testing.T) {
	m := loadArena(t)
	rng := rand.New(rand.NewSource(5))

	set, err := bench.GenerateSet(m, 3, 2, 2, 2, scenario.FullMap(m), scenario.FullMap(m), rng)
	require.NoError(t, err)
	require.Len(t, set, 3)

	res, err := bench.Run(m, set, 200, makespanFactory, randomTargetFactory, rng, true)
	require.NoError(t, err)
	assert.Len(t, res.IndividualLen, 3)
	assert.GreaterOrEqual(t, res.AvgLength, 0.0)
}

func BenchmarkMakespanGreedyVsRandomTarget(b *testing.B) {
	m := loadArena(b)
	rng := rand.New(rand.NewSource(42))
	set, err := bench.GenerateSet(m, 20, 3, 3, 2, scenario.FullMap(m), scenario.FullMap(m), rng)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bench.Run(m, set, 500, makespanFactory, randomTargetFactory, rng, false)
	}
}
