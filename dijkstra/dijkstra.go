// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/reactnet/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g. dist maps each vertex to its minimum cost, Unreachable when there is
// no path.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight. A cancelled context aborts with its
// error.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// AllPairs runs Dijkstra from every vertex and returns, per source, only the
// reachable targets other than the source itself.
//
// Complexity: O(V·(V + E) log V).
func AllPairs(ctx context.Context, g *core.Graph) (map[string]map[string]int64, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	out := make(map[string]map[string]int64, g.VertexCount())
	for _, src := range g.Vertices() {
		dist, err := Dijkstra(g, Source(src), WithContext(ctx))
		if err != nil {
			return nil, errors.Wrapf(err, "dijkstra: from %q", src)
		}
		row := make(map[string]int64)
		for v, d := range dist {
			if v != src && d != Unreachable {
				row[v] = d
			}
		}
		out[src] = row
	}

	return out, nil
}

func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return errors.Wrapf(ErrNegativeWeight, "edge %s→%s weight=%d", e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	ctx     context.Context
	dist    map[string]int64
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		ctx:     cfg.Ctx,
		dist:    make(map[string]int64, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for _, v := range g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process pops the closest unvisited vertex until the heap drains or the
// context is cancelled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the neighbors of the finalized vertex u.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return errors.Wrapf(err, "dijkstra: neighbors of %q", u)
	}
	for _, e := range edges {
		v := e.To
		if v == u {
			v = e.From
		}
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a vertex with a tentative distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then ID.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
