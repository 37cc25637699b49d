// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/reactnet/core"
)

// weightedBuilder is satisfied by both gonum simple weighted graphs.
type weightedBuilder interface {
	graph.Weighted
	AddNode(graph.Node)
	NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge
	SetWeightedEdge(e graph.WeightedEdge)
}

// Adapter is a gonum view of a core.Graph.
//
// Parallel edges collapse to their minimum weight and self-loops are dropped:
// gonum simple graphs reject both, and neither affects shortest paths.
type Adapter struct {
	g        weightedBuilder
	directed bool
	ids      map[string]int64
	names    []string
}

// FromCore builds the gonum view of g.
// Complexity: O(V log V + E).
func FromCore(g *core.Graph) *Adapter {
	a := &Adapter{directed: g.Directed(), ids: make(map[string]int64, g.VertexCount())}
	if a.directed {
		a.g = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		a.g = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}

	for i, v := range g.Vertices() {
		a.ids[v] = int64(i)
		a.names = append(a.names, v)
		a.g.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := a.ids[e.From], a.ids[e.To]
		w := float64(e.Weight)
		if cur, ok := a.g.Weight(u, v); ok && cur <= w {
			continue
		}
		a.g.SetWeightedEdge(a.g.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
	}

	return a
}

// Graph returns the gonum graph.
func (a *Adapter) Graph() graph.Weighted { return a.g }

// Directed reports whether the source graph was directed.
func (a *Adapter) Directed() bool { return a.directed }

// Undirected returns the graph with direction ignored.
func (a *Adapter) Undirected() graph.Undirected {
	if u, ok := a.g.(graph.Undirected); ok {
		return u
	}

	return graph.Undirect{G: a.g.(graph.Directed)}
}

// Len returns the number of nodes.
func (a *Adapter) Len() int { return len(a.names) }

// ID returns the gonum node ID of a chemical.
func (a *Adapter) ID(name string) (int64, bool) {
	id, ok := a.ids[name]
	return id, ok
}

// Name returns the chemical behind a gonum node ID.
func (a *Adapter) Name(id int64) string { return a.names[id] }

// Names maps gonum nodes back to sorted chemical names.
func (a *Adapter) Names(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = a.names[n.ID()]
	}
	sortStrings(out)

	return out
}

// Nodes maps chemicals to gonum nodes; unknown names are skipped.
func (a *Adapter) Nodes(names []string) []graph.Node {
	out := make([]graph.Node, 0, len(names))
	for _, name := range names {
		if id, ok := a.ids[name]; ok {
			out = append(out, simple.Node(id))
		}
	}

	return out
}
