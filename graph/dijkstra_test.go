// Package graph_test validates ShortestPath: Dijkstra correctness, path
// formatting, the degenerate self-path, unreachable targets, and fractional
// weights.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/physiokit/physiokit/graph"
)

// TestShortestPath_TriangleDetour verifies the canonical case: a two-hop
// route of total cost 2 beats a direct edge of cost 5.
func TestShortestPath_TriangleDetour(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1)) // weight 1
	require.NoError(t, g.AddEdge(1, 2)) // weight 1
	require.NoError(t, g.AddEdge(0, 2, graph.WithWeight(5)))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2", path)
}

// TestShortestPath_DirectWhenCheaper takes the single edge when the detour
// costs more.
func TestShortestPath_DirectWhenCheaper(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, graph.WithWeight(3)))
	require.NoError(t, g.AddEdge(1, 2, graph.WithWeight(3)))
	require.NoError(t, g.AddEdge(0, 2, graph.WithWeight(4)))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "0-2", path)
}

// TestShortestPath_Chain walks a longer path and checks the full id
// sequence in the formatted string.
func TestShortestPath_Chain(t *testing.T) {
	// 0—1—2—3—4 chain plus an expensive shortcut 0—4.
	g := graph.New(5)
	for u := 0; u < 4; u++ {
		require.NoError(t, g.AddEdge(u, u+1))
	}
	require.NoError(t, g.AddEdge(0, 4, graph.WithWeight(10)))

	path, err := g.ShortestPath(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2-3-4", path)

	// The same query runs back-to-front too (undirected symmetry).
	path, err = g.ShortestPath(4, 0)
	require.NoError(t, err)
	assert.Equal(t, "4-3-2-1-0", path)
}

// TestShortestPath_SelfTarget preserves the degenerate literal behavior:
// source == target formats the node id twice.
func TestShortestPath_SelfTarget(t *testing.T) {
	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 1))

	path, err := g.ShortestPath(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0-0", path)
}

// TestShortestPath_Unreachable signals "no route" with an empty string and
// a nil error.
func TestShortestPath_Unreachable(t *testing.T) {
	// Two disconnected components: {0,1} and {2,3}.
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	path, err := g.ShortestPath(0, 3)
	require.NoError(t, err, "unreachable target is a normal outcome")
	assert.Equal(t, "", path)
}

// TestShortestPath_IsolatedNode covers a target with no edges at all.
func TestShortestPath_IsolatedNode(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

// TestShortestPath_IndexValidation rejects out-of-range endpoints.
func TestShortestPath_IndexValidation(t *testing.T) {
	g := graph.New(2)

	_, err := g.ShortestPath(-1, 0)
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)

	_, err = g.ShortestPath(0, 2)
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)
}

// TestShortestPath_FractionalWeights ensures distances accumulate in
// floating point end-to-end: three hops of 0.4 (total 1.2) lose to a direct
// edge of 1.0, which integer truncation would have gotten backwards.
func TestShortestPath_FractionalWeights(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, graph.WithWeight(0.4)))
	require.NoError(t, g.AddEdge(1, 2, graph.WithWeight(0.4)))
	require.NoError(t, g.AddEdge(2, 3, graph.WithWeight(0.4)))
	require.NoError(t, g.AddEdge(0, 3, graph.WithWeight(1.0)))

	path, err := g.ShortestPath(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "0-3", path)
}

// TestShortestPath_FractionalDetour is the mirror case: fractional hops
// summing below the direct edge must win.
func TestShortestPath_FractionalDetour(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, graph.WithWeight(0.25)))
	require.NoError(t, g.AddEdge(1, 2, graph.WithWeight(0.25)))
	require.NoError(t, g.AddEdge(0, 2, graph.WithWeight(0.75)))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2", path)
}

// TestShortestPath_TopologyAppendsBetweenQueries confirms per-query state
// does not leak: adding an edge between queries changes the answer.
func TestShortestPath_TopologyAppendsBetweenQueries(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	require.Equal(t, "", path)

	require.NoError(t, g.AddEdge(1, 2))
	path, err = g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2", path)
}

// TestShortestPath_ZeroWeightEdges allows zero-cost hops.
func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, graph.WithWeight(0)))
	require.NoError(t, g.AddEdge(1, 2, graph.WithWeight(0)))
	require.NoError(t, g.AddEdge(0, 2, graph.WithWeight(1)))

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "0-1-2", path)
}
