// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Successors, Predecessors, Adjacent).
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - ID-returning methods return unique IDs sorted ascending.

package core

import "sort"

// Neighbors returns the edges leaving id: outgoing edges for directed graphs,
// incident edges for undirected graphs. Self-loops appear once; parallel
// edges appear individually.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	var out []*Edge
	for _, set := range g.out[id] {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// Successors returns the distinct vertices reachable from id by one edge.
// For undirected graphs this is every adjacent vertex.
func (g *Graph) Successors(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}

	return sortedKeys(g.out[id]), nil
}

// Predecessors returns the distinct vertices with an edge into id.
// For undirected graphs it equals Successors.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	if !g.directed {
		return sortedKeys(g.out[id]), nil
	}

	return sortedKeys(g.in[id]), nil
}

// Adjacent returns the union of successors and predecessors, i.e. the
// neighborhood of id once edge direction is ignored.
func (g *Graph) Adjacent(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	if !g.directed {
		return sortedKeys(g.out[id]), nil
	}
	seen := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
	for v := range g.out[id] {
		seen[v] = struct{}{}
	}
	for v := range g.in[id] {
		seen[v] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

func (g *Graph) checkVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	return nil
}

func sortedKeys(m map[string]map[string]struct{}) []string {
	ids := make([]string, 0, len(m))
	for v := range m {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
