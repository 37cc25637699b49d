// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/metrics"
)

type arc struct {
	from, to string
	w        int64
}

func build(t *testing.T, directed bool, arcs ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	for _, a := range arcs {
		_, err := g.AddEdge(a.from, a.to, a.w)
		require.NoError(t, err)
	}

	return g
}

func TestFromCore(t *testing.T) {
	g := build(t, true,
		arc{"glucose", "ethanol", 4},
		arc{"glucose", "ethanol", 2},
		arc{"ethanol", "ethanol", 1},
	)
	a := metrics.FromCore(g)
	assert.True(t, a.Directed())
	assert.Equal(t, 2, a.Len())

	id, ok := a.ID("glucose")
	require.True(t, ok)
	eth, ok := a.ID("ethanol")
	require.True(t, ok)
	w, ok := a.Graph().Weight(id, eth)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.False(t, a.Graph().HasEdgeBetween(eth, eth))
	_, ok = a.Graph().Weight(eth, id)
	assert.False(t, ok)

	assert.Equal(t, "glucose", a.Name(id))
	assert.Equal(t, []string{"ethanol", "glucose"}, a.Names(a.Nodes([]string{"glucose", "argon", "ethanol"})))
	assert.NotNil(t, a.Undirected())
}

func TestBetweenness(t *testing.T) {
	t.Run("directed path", func(t *testing.T) {
		g := build(t, true, arc{"a", "b", 1}, arc{"b", "c", 1})
		bc := metrics.Betweenness(g, false)
		assert.InDelta(t, 0.5, bc["b"], 1e-12)
		assert.Zero(t, bc["a"])
		assert.Contains(t, bc, "c")
	})

	t.Run("weights reroute paths", func(t *testing.T) {
		g := build(t, true, arc{"a", "b", 1}, arc{"b", "c", 1}, arc{"a", "c", 5})
		assert.Zero(t, metrics.Betweenness(g, false)["b"])
		assert.InDelta(t, 0.5, metrics.Betweenness(g, true)["b"], 1e-12)
	})

	t.Run("undirected path matches directed normalization", func(t *testing.T) {
		g := build(t, false, arc{"a", "b", 1}, arc{"b", "c", 1})
		assert.InDelta(t, 1.0, metrics.Betweenness(g, false)["b"], 1e-12)
		assert.InDelta(t, 1.0, metrics.Betweenness(g, true)["b"], 1e-12)
		assert.Zero(t, metrics.Betweenness(g, false)["a"])
	})

	t.Run("undirected star", func(t *testing.T) {
		g := build(t, false, arc{"hub", "a", 1}, arc{"hub", "b", 1}, arc{"hub", "c", 1}, arc{"hub", "d", 1})
		bc := metrics.Betweenness(g, false)
		assert.InDelta(t, 1.0, bc["hub"], 1e-12)

		cpd, err := metrics.CentralPointDominance(bc)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, cpd, 1e-12)

		top := metrics.Top(metrics.RankBetweenness(g, false), 2)
		require.Len(t, top, 2)
		assert.Equal(t, "hub", top[0].Name)
		assert.Equal(t, "a", top[1].Name)
	})
}

func TestCentralPointDominance(t *testing.T) {
	_, err := metrics.CentralPointDominance(map[string]float64{"a": 1})
	require.ErrorIs(t, err, metrics.ErrTooFewNodes)

	cpd, err := metrics.CentralPointDominance(map[string]float64{"a": 0.2, "b": 0.2, "c": 0.2})
	require.NoError(t, err)
	assert.Zero(t, cpd)
}

func TestRankDegreeAndTop(t *testing.T) {
	g := build(t, true, arc{"b", "a", 1}, arc{"c", "a", 1}, arc{"a", "d", 1}, arc{"b", "c", 1})
	ranked := metrics.RankDegree(g)
	assert.Equal(t, []metrics.Score{
		{Name: "a", Value: 3},
		{Name: "b", Value: 2},
		{Name: "c", Value: 2},
		{Name: "d", Value: 1},
	}, ranked)
	assert.Empty(t, metrics.Top(ranked, -1))
	assert.Len(t, metrics.Top(ranked, 10), 4)

	assert.Equal(t, []int{2, 0, 1, 1}, metrics.Degrees(g, metrics.InDegree))
}

func TestParseDegreeType(t *testing.T) {
	for s, want := range map[string]metrics.DegreeType{
		"in": metrics.InDegree, "OUT": metrics.OutDegree, " total ": metrics.TotalDegree,
	} {
		got, err := metrics.ParseDegreeType(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := metrics.ParseDegreeType("sideways")
	require.ErrorIs(t, err, metrics.ErrUnknownDegreeType)
	assert.Equal(t, "out", metrics.OutDegree.String())
}

func TestClustering(t *testing.T) {
	g := build(t, false, arc{"a", "b", 1}, arc{"b", "c", 1}, arc{"c", "a", 1}, arc{"c", "d", 1}, arc{"d", "d", 1})
	cc := metrics.Clustering(g)
	assert.InDelta(t, 1.0, cc["a"], 1e-12)
	assert.InDelta(t, 1.0/3, cc["c"], 1e-12)
	assert.Zero(t, cc["d"])
	assert.InDelta(t, 7.0/12, metrics.AverageClustering(g), 1e-12)
	assert.Zero(t, metrics.AverageClustering(core.NewGraph()))
}

func TestDegreeConnectivity(t *testing.T) {
	g := build(t, true, arc{"a", "b", 1}, arc{"a", "c", 1}, arc{"b", "c", 1})

	assert.Equal(t, []metrics.ConnectivityPoint{
		{Degree: 0, Average: 0},
		{Degree: 1, Average: 0},
		{Degree: 2, Average: 0.5},
	}, metrics.DegreeConnectivity(g, metrics.OutDegree))

	assert.Equal(t, []metrics.ConnectivityPoint{
		{Degree: 0, Average: 0},
		{Degree: 1, Average: 0},
		{Degree: 2, Average: 0.5},
	}, metrics.DegreeConnectivity(g, metrics.InDegree))
}
