// SPDX-License-Identifier: MIT

package core

import "github.com/pkg/errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge connects two chemicals.
//
// In a reaction network From is a reactant, To a product and Weight the
// number of reaction steps. For undirected graphs From/To keep the order the
// edge was inserted with.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost; zero in unweighted graphs.
	Weight int64

	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of every edge
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// adjacency maps vertex → neighbor → set of edge IDs.
type adjacency map[string]map[string]map[string]struct{}

// Graph is the in-memory graph data structure behind every analysis.
//
// It supports directed vs. undirected, weighted vs. unweighted,
// parallel edges and self-loops, all fixed at construction.
type Graph struct {
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	edgeSeq  uint64
	vertices map[string]struct{}
	edges    map[string]*Edge

	// out[from][to][eid]; mirrored for undirected edges.
	out adjacency
	// in[to][from][eid]; directed graphs only.
	in adjacency

	inDeg  map[string]int
	outDeg map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(adjacency),
		in:       make(adjacency),
		inDeg:    make(map[string]int),
		outDeg:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Stats produces a snapshot of flags and catalog sizes.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			s.SelfLoops++
		}
	}

	return s
}

// options reproduces the construction flags of g.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
