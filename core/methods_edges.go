// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount,
//       plus filtered removals. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Missing endpoints are added.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Check multi-edge constraint (either orientation for undirected graphs).
//  4. Store the edge and update adjacency and degree counters.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}
	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := g.nextEdgeID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, seq: g.edgeSeq}
	g.edges[eid] = e
	g.link(e)

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Undirected graphs answer symmetrically.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	return len(g.out[from][to]) > 0
}

// Edges returns every edge in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges; parallel edges count individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// FilterEdges removes every edge for which keep returns false and reports how
// many were removed.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) int {
	removed := 0
	for eid, e := range g.edges {
		if keep(e) {
			continue
		}
		delete(g.edges, eid)
		g.unlink(e)
		removed++
	}

	return removed
}

// RemoveSelfLoops strips every edge whose endpoints coincide.
func (g *Graph) RemoveSelfLoops() int {
	return g.FilterEdges(func(e *Edge) bool { return e.From != e.To })
}

// link records e in adjacency and degree counters.
func (g *Graph) link(e *Edge) {
	addAdj(g.out, e.From, e.To, e.ID)
	g.outDeg[e.From]++
	if g.directed {
		addAdj(g.in, e.To, e.From, e.ID)
		g.inDeg[e.To]++
		return
	}
	// undirected: mirror, loops count twice on the same vertex
	if e.From != e.To {
		addAdj(g.out, e.To, e.From, e.ID)
	}
	g.outDeg[e.To]++
}

// unlink reverses link.
func (g *Graph) unlink(e *Edge) {
	removeAdj(g.out, e.From, e.To, e.ID)
	g.outDeg[e.From]--
	if g.directed {
		removeAdj(g.in, e.To, e.From, e.ID)
		g.inDeg[e.To]--
		return
	}
	if e.From != e.To {
		removeAdj(g.out, e.To, e.From, e.ID)
	}
	g.outDeg[e.To]--
}

func addAdj(a adjacency, u, v, eid string) {
	inner, ok := a[u]
	if !ok {
		inner = make(map[string]map[string]struct{})
		a[u] = inner
	}
	set, ok := inner[v]
	if !ok {
		set = make(map[string]struct{})
		inner[v] = set
	}
	set[eid] = struct{}{}
}

func removeAdj(a adjacency, u, v, eid string) {
	set := a[u][v]
	delete(set, eid)
	if len(set) == 0 {
		delete(a[u], v)
	}
}

// nextEdgeID produces "e1", "e2", ... without fmt.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
