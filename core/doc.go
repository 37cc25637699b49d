// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph that reaction networks are
// materialized into.
//
// The Graph G = (V,E) is configured once, at construction time:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage is a pair of nested maps, out[from][to][edgeID] and in[to][from][edgeID],
// so edge insertion, membership and degree lookups are constant time. Undirected
// edges are mirrored in out; in is only populated for directed graphs.
//
// A Graph is built fresh for every analysis and is not safe for concurrent
// mutation. Read-only views (Clone, InducedSubgraph, UniformWeightView, DirectedView) never
// touch their source.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	Vertices() []string                        // O(V·log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, w int64) (string, error) // O(1)
//	HasEdge(from, to string) bool              // O(1)
//	Edges() []*Edge                            // O(E·log E), insertion order
//	FilterEdges(pred func(*Edge) bool) int     // O(E)
//	RemoveSelfLoops() int                      // O(E)
//
//	// Neighborhoods and degrees
//	Neighbors(id string) ([]*Edge, error)      // outgoing (directed) or incident (undirected)
//	Successors(id string) ([]string, error)    // unique, sorted
//	Predecessors(id string) ([]string, error)  // unique, sorted
//	Adjacent(id string) ([]string, error)      // successors ∪ predecessors
//	Degree(id string) (in, out, undirected int, err error)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
