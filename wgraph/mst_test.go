package wgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegraph/wgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMST_Triangle(t *testing.T) {
	g := triangle(t)

	mst := g.MinimumSpanningTree()
	require.Len(t, mst, 2)
	assert.InDelta(t, 3.0, wgraph.TotalWeight[string](mst), 1e-12)
	for _, x := range mst {
		assert.NotEqual(t, 5.0, x.w, "A-C must be skipped")
	}
}

func TestMST_LeavesEdgeOrderIntact(t *testing.T) {
	es := []*edge{e("A", "B", 9), e("B", "C", 1), e("C", "A", 4)}
	g := mustGraph(t, []string{"A", "B", "C"}, es...)

	_ = g.MinimumSpanningTree()
	assert.Equal(t, es, g.Edges())
}

func TestMST_SelfLoopsAndParallelEdges(t *testing.T) {
	heavy, light := e("A", "B", 7), e("A", "B", 2)
	g := mustGraph(t, []string{"A", "B"}, e("A", "A", 0), heavy, light, e("B", "B", 0))

	assert.Equal(t, []*edge{light}, g.MinimumSpanningTree())
}

func TestMST_TiesKeepInputOrder(t *testing.T) {
	first, second := e("A", "B", 1), e("A", "B", 1)
	g := mustGraph(t, []string{"A", "B"}, first, second)

	assert.Equal(t, []*edge{first}, g.MinimumSpanningTree())
}

func TestMST_TrivialGraphs(t *testing.T) {
	empty := mustGraph(t, nil)
	assert.Empty(t, empty.MinimumSpanningTree())

	single := mustGraph(t, []string{"A"})
	assert.Empty(t, single.MinimumSpanningTree())
	tree, err := single.SpanningTree()
	require.NoError(t, err)
	assert.Empty(t, tree)

	_, err = empty.SpanningTree()
	assert.ErrorIs(t, err, wgraph.ErrDisconnected)
}

func TestMST_DisconnectedIsForest(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"},
		e("A", "B", 1), e("C", "D", 2), e("C", "D", 3))

	forest := g.MinimumSpanningTree()
	assert.Len(t, forest, 2)
	assert.InDelta(t, 3.0, wgraph.TotalWeight[string](forest), 1e-12)

	_, err := g.SpanningTree()
	assert.ErrorIs(t, err, wgraph.ErrDisconnected)
	assert.NotErrorIs(t, err, wgraph.ErrInvalidArgument)
}

func TestMST_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(25)
		m := n - 1 + r.Intn(3*n)
		vs, es := randomGraph(r, n, m, true)
		g := mustGraph(t, vs, es...)

		mst, err := g.SpanningTree()
		require.NoError(t, err)
		require.Len(t, mst, n-1, "round %d", round)
		assert.InDelta(t, primWeight(vs, es), wgraph.TotalWeight[string](mst), 1e-9, "round %d", round)

		// The tree must be acyclic and spanning: a fresh graph over it is connected.
		tg := mustGraph(t, vs, mst...)
		for _, v := range vs[1:] {
			_, err := tg.ShortestPath(vs[0], v)
			require.NoError(t, err)
		}
	}
}
