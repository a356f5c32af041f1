package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooshroom4422/honours-project/maxflow"
)

// TestSimpleChain is spec.md §8's first max-flow fixture:
// 0->1 cap 3, 1->2 cap 2; flow=2.
func TestSimpleChain(t *testing.T) {
	g := maxflow.NewGraph(3)
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 2)
	g.SetTerminals(0, 2)
	flow, err := g.MaxFlow()
	require.NoError(t, err)
	assert.Equal(t, 2, flow)
}

// TestDiamond is spec.md §8's second fixture:
// 0->1 cap 3, 0->2 cap 2, 1->2 cap 1, 1->3 cap 2, 2->3 cap 3; flow=5.
func TestDiamond(t *testing.T) {
	g := maxflow.NewGraph(4)
	g.AddEdge(0, 1, 3)
	g.AddEdge(0, 2, 2)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 3, 3)
	g.SetTerminals(0, 3)
	flow, err := g.MaxFlow()
	require.NoError(t, err)
	assert.Equal(t, 5, flow)

	for v := 1; v <= 2; v++ {
		assert.True(t, g.FlowBalanced(v), "vertex %d not flow-balanced", v)
	}
}

// TestTieredSevenNode is spec.md §8's third fixture: a tiered 7-node network
// (classic textbook max-flow example) with max flow 10.
func TestTieredSevenNode(t *testing.T) {
	// vertices: 0=s, 1,2,3=tier1, 4,5=tier2, 6=t
	g := maxflow.NewGraph(7)
	g.AddEdge(0, 1, 3)
	g.AddEdge(0, 2, 3)
	g.AddEdge(0, 3, 4)
	g.AddEdge(1, 4, 3)
	g.AddEdge(2, 4, 2)
	g.AddEdge(2, 5, 2)
	g.AddEdge(3, 5, 4)
	g.AddEdge(4, 6, 5)
	g.AddEdge(5, 6, 5)
	g.SetTerminals(0, 6)
	flow, err := g.MaxFlow()
	require.NoError(t, err)
	assert.Equal(t, 10, flow)
}

func TestSaturatedEdgeRetrieval(t *testing.T) {
	g := maxflow.NewGraph(3)
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 2)
	g.SetTerminals(0, 2)
	_, err := g.MaxFlow()
	require.NoError(t, err)

	to, ok := g.SaturatedEdge(0)
	require.True(t, ok)
	assert.Equal(t, 1, to)

	to, ok = g.SaturatedEdge(1)
	require.True(t, ok)
	assert.Equal(t, 2, to)

	_, ok = g.SaturatedEdge(2)
	assert.False(t, ok)
}

func TestResetClearsState(t *testing.T) {
	g := maxflow.NewGraph(3)
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 2)
	g.SetTerminals(0, 2)
	_, err := g.MaxFlow()
	require.NoError(t, err)

	g.Reset(2)
	g.AddEdge(0, 1, 1)
	g.SetTerminals(0, 1)
	flow, err := g.MaxFlow()
	require.NoError(t, err)
	assert.Equal(t, 1, flow)
}

func TestMaxFlowWithoutTerminals(t *testing.T) {
	g := maxflow.NewGraph(2)
	_, err := g.MaxFlow()
	assert.ErrorIs(t, err, maxflow.ErrNoSourceSink)
}
