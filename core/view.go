// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Edge IDs and insertion order are preserved.

package core

// Clone returns a deep copy of g: same flags, vertices, edge IDs and weights.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. A nil keep retains everything. The input graph
// is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	out := NewGraph(g.options()...)
	for id := range g.vertices {
		if kept(id) {
			out.addVertex(id)
		}
	}
	for _, e := range g.Edges() {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, seq: e.seq}
		out.edges[ne.ID] = ne
		out.link(ne)
	}
	// carry the counter so later AddEdge calls cannot collide with copied IDs
	out.edgeSeq = g.edgeSeq

	return out
}

// UniformWeightView returns a copy of g where every edge weighs w. The copy is
// weighted whenever w != 0.
//
// Complexity: O(V + E).
func UniformWeightView(g *Graph, w int64) *Graph {
	out := g.Clone()
	out.weighted = out.weighted || w != 0
	for _, e := range out.edges {
		e.Weight = w
	}

	return out
}

// DirectedView returns a directed copy of g. Each undirected edge becomes a
// pair of opposite arcs with its weight; self-loops stay single arcs. A
// directed g is cloned.
//
// Complexity: O(V + E).
func DirectedView(g *Graph) *Graph {
	if g.directed {
		return g.Clone()
	}
	out := NewGraph(append(g.options(), WithDirected(true))...)
	for id := range g.vertices {
		out.addVertex(id)
	}
	for _, e := range g.Edges() {
		out.arc(e.From, e.To, e.Weight)
		if e.From != e.To {
			out.arc(e.To, e.From, e.Weight)
		}
	}

	return out
}

// arc stores a new edge between existing vertices without policy checks.
func (g *Graph) arc(from, to string, w int64) {
	e := &Edge{ID: g.nextEdgeID(), From: from, To: to, Weight: w}
	e.seq = g.edgeSeq
	g.edges[e.ID] = e
	g.link(e)
}
