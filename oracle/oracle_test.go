package oracle_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/grid"
	"github.com/mooshroom4422/honours-project/oracle"
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

// bfsDist is a brute-force reference breadth-first distance used to
// cross-validate the oracle (spec.md §8 "dist_bfs ... reference").
func bfsDist(m *grid.Map, s, t grid.Point) int {
	if s == t {
		return 0
	}
	visited := map[grid.Point]bool{s: true}
	queue := []grid.Point{s}
	dist := map[grid.Point]int{s: 0}
	for i := 0; i < len(queue); i++ {
		p := queue[i]
		for _, d := range grid.Cardinals() {
			q := p.Add(d)
			if !m.Valid(q) || visited[q] {
				continue
			}
			visited[q] = true
			dist[q] = dist[p] + 1
			if q == t {
				return dist[q]
			}
			queue = append(queue, q)
		}
	}
	return -1
}

func TestOracleMatchesBFS(t *testing.T) {
	m := loadRing(t)
	o := oracle.Build(m)
	m.AttachOracle(o)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			s := grid.Point{X: x, Y: y}
			if !m.Valid(s) {
				continue
			}
			for ty := 0; ty < m.Height; ty++ {
				for tx := 0; tx < m.Width; tx++ {
					tt := grid.Point{X: tx, Y: ty}
					if !m.Valid(tt) {
						continue
					}
					want := bfsDist(m, s, tt)
					got, err := m.Dist(s, tt)
					require.NoError(t, err)
					assert.Equal(t, want, got, "dist(%v,%v)", s, tt)
				}
			}
		}
	}
}

func TestOracleFirstStepAndDistFixture(t *testing.T) {
	m := loadRing(t)
	o := oracle.Build(m)
	m.AttachOracle(o)

	d, err := m.FirstStep(grid.Point{X: 1, Y: 3}, grid.Point{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Contains(t, []grid.Direction{grid.North, grid.East}, d)

	dist, err := m.Dist(grid.Point{X: 1, Y: 3}, grid.Point{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, dist)
}

func TestOracleRoundTrip(t *testing.T) {
	m := loadRing(t)
	o := oracle.Build(m)

	var buf bytes.Buffer
	require.NoError(t, o.Save(&buf))

	loaded, err := oracle.Load(&buf, m.Width, m.Height)
	require.NoError(t, err)

	m.AttachOracle(loaded)
	d, err := m.FirstStep(grid.Point{X: 1, Y: 3}, grid.Point{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Contains(t, []grid.Direction{grid.North, grid.East}, d)

	dist, err := m.Dist(grid.Point{X: 1, Y: 3}, grid.Point{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, dist)
}

// TestOracleRoundTripFileExactFixture reproduces the end-to-end scenario:
// "persist .dist, reload, reassert first_step((1,1),(3,3)) == East and
// dist((1,1),(3,3)) == 4" on the 5x5 ring map.
func TestOracleRoundTripFileExactFixture(t *testing.T) {
	m := loadRing(t)
	o := oracle.Build(m)

	path := t.TempDir() + "/ring.dist"
	require.NoError(t, o.SaveToFile(path))

	loaded, err := oracle.LoadFromFile(path, m.Width, m.Height)
	require.NoError(t, err)
	m.AttachOracle(loaded)

	d, err := m.FirstStep(grid.Point{X: 1, Y: 1}, grid.Point{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, grid.East, d)

	dist, err := m.Dist(grid.Point{X: 1, Y: 1}, grid.Point{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, dist)
}

func TestOracleLoadVersionMismatch(t *testing.T) {
	m := loadRing(t)
	o := oracle.Build(m)
	var buf bytes.Buffer
	require.NoError(t, o.Save(&buf))

	_, err := oracle.Load(&buf, m.Width+1, m.Height)
	assert.ErrorIs(t, err, oracle.ErrVersionMismatch)
}
