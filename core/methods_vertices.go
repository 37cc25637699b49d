// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and degree queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.addVertex(id)

	return nil
}

// addVertex inserts a known-valid id.
func (g *Graph) addVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]map[string]struct{})
	if g.directed {
		g.in[id] = make(map[string]map[string]struct{})
	}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Degree returns the in-, out- and undirected degree of id.
//
// Directed graphs fill in/out: a self-loop adds one to each, parallel edges
// count individually. Undirected graphs fill undirected only; a self-loop
// counts twice.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}
	if g.directed {
		return g.inDeg[id], g.outDeg[id], 0, nil
	}

	return 0, 0, g.outDeg[id], nil
}

// TotalDegree returns in+out for directed graphs and the undirected degree
// otherwise. Unknown vertices have degree zero.
func (g *Graph) TotalDegree(id string) int {
	in, out, undirected, err := g.Degree(id)
	if err != nil {
		return 0
	}

	return in + out + undirected
}
