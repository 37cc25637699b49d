// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reactnet/core"
)

const (
	vertexA = "calcium"
	vertexB = "oxygen"
	vertexC = "hydrogen"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(vertexA))
	require.NoError(t, g.AddVertex(vertexA))

	assert.True(t, g.HasVertex(vertexA))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeConstraints verifies weight, loop and multi-edge policies.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	unweighted := core.NewGraph()
	_, err := unweighted.AddEdge(vertexA, vertexB, 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	noLoops := core.NewGraph(core.WithWeighted())
	_, err = noLoops.AddEdge(vertexA, vertexA, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	simple := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err = simple.AddEdge(vertexA, vertexB, 1)
	require.NoError(t, err)
	_, err = simple.AddEdge(vertexA, vertexB, 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// reverse orientation is a different pair in a directed graph
	_, err = simple.AddEdge(vertexB, vertexA, 2)
	require.NoError(t, err)

	undirected := core.NewGraph(core.WithWeighted())
	_, err = undirected.AddEdge(vertexA, vertexB, 1)
	require.NoError(t, err)
	_, err = undirected.AddEdge(vertexB, vertexA, 1)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithWeighted(), core.WithDirected(true), core.WithMultiEdges())
	e1, err := multi.AddEdge(vertexA, vertexB, 7)
	require.NoError(t, err)
	e2, err := multi.AddEdge(vertexA, vertexB, 4)
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, multi.EdgeCount())
}

// TestGraph_Degree verifies loop and parallel-edge accounting.
func TestGraph_Degree(t *testing.T) {
	t.Run("directed", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
		mustEdge(t, g, vertexA, vertexB, 1)
		mustEdge(t, g, vertexA, vertexB, 2)
		mustEdge(t, g, vertexB, vertexB, 1)

		in, out, und, err := g.Degree(vertexB)
		require.NoError(t, err)
		assert.Equal(t, 3, in)
		assert.Equal(t, 1, out)
		assert.Zero(t, und)
		assert.Equal(t, 2, g.TotalDegree(vertexA))
	})

	t.Run("undirected", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted(), core.WithLoops())
		mustEdge(t, g, vertexA, vertexB, 1)
		mustEdge(t, g, vertexB, vertexB, 1)

		_, _, und, err := g.Degree(vertexB)
		require.NoError(t, err)
		assert.Equal(t, 3, und)
	})

	t.Run("missing", func(t *testing.T) {
		g := core.NewGraph()
		_, _, _, err := g.Degree(vertexC)
		require.ErrorIs(t, err, core.ErrVertexNotFound)
		assert.Zero(t, g.TotalDegree(vertexC))
	})
}

// TestGraph_Neighborhoods verifies successor, predecessor and adjacency views.
func TestGraph_Neighborhoods(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, vertexA, vertexB, 1)
	mustEdge(t, g, vertexC, vertexA, 1)

	succ, err := g.Successors(vertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{vertexB}, succ)

	pred, err := g.Predecessors(vertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{vertexC}, pred)

	adj, err := g.Adjacent(vertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{vertexC, vertexB}, adj)

	edges, err := g.Neighbors(vertexA)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, vertexB, edges[0].To)

	_, err = g.Successors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_RemoveSelfLoops verifies filtered removal keeps counters in sync.
func TestGraph_RemoveSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	mustEdge(t, g, vertexA, vertexA, 1)
	mustEdge(t, g, vertexA, vertexB, 1)

	assert.Equal(t, 1, g.Stats().SelfLoops)
	assert.Equal(t, 1, g.RemoveSelfLoops())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.TotalDegree(vertexA))
	assert.Zero(t, g.Stats().SelfLoops)
	assert.False(t, g.HasEdge(vertexA, vertexA))
	assert.True(t, g.HasEdge(vertexB, vertexA))
}

// TestInducedSubgraph verifies vertex filtering and edge ID preservation.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, vertexA, vertexB, 2)
	eid := mustEdge(t, g, vertexB, vertexC, 3)

	sub := core.InducedSubgraph(g, map[string]bool{vertexB: true, vertexC: true})
	assert.Equal(t, []string{vertexC, vertexB}, sub.Vertices())
	require.Len(t, sub.Edges(), 1)
	assert.Equal(t, eid, sub.Edges()[0].ID)
	assert.True(t, sub.Directed())

	// the copy is independent of its source
	next, err := sub.AddEdge(vertexC, vertexB, 1)
	require.NoError(t, err)
	assert.NotEqual(t, eid, next)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestUniformWeightView verifies weights are replaced on the copy only.
func TestUniformWeightView(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, vertexA, vertexB, 5)

	view := core.UniformWeightView(g, 1)
	assert.Equal(t, int64(1), view.Edges()[0].Weight)
	assert.Equal(t, int64(5), g.Edges()[0].Weight)
}

// TestInducedSubgraph_UnknownKeepIDs verifies keep entries absent from the
// source add no vertices.
func TestInducedSubgraph_UnknownKeepIDs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, vertexA, vertexB, 1)

	sub := core.InducedSubgraph(g, map[string]bool{vertexA: true, "argon": true, "": true})
	assert.Equal(t, []string{vertexA}, sub.Vertices())
	assert.Zero(t, sub.EdgeCount())

	in, out, _, err := sub.Degree(vertexA)
	require.NoError(t, err)
	assert.Zero(t, in+out)
	_, err = sub.Successors(vertexA)
	require.NoError(t, err)
}

// TestDirectedView verifies undirected edges become opposite arcs.
func TestDirectedView(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	mustEdge(t, g, vertexA, vertexB, 3)
	mustEdge(t, g, vertexC, vertexC, 1)

	view := core.DirectedView(g)
	assert.True(t, view.Directed())
	assert.False(t, g.Directed())
	assert.Equal(t, 3, view.EdgeCount())
	assert.True(t, view.HasEdge(vertexA, vertexB))
	assert.True(t, view.HasEdge(vertexB, vertexA))
	for _, e := range view.Edges() {
		if e.From != e.To {
			assert.Equal(t, int64(3), e.Weight)
		}
	}
	in, out, _, err := view.Degree(vertexB)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)

	directed := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, directed, vertexA, vertexB, 2)
	assert.Equal(t, 1, core.DirectedView(directed).EdgeCount())
}

func mustEdge(t *testing.T, g *core.Graph, from, to string, w int64) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, w)
	require.NoError(t, err)

	return eid
}
