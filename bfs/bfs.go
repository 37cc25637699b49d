// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/reactnet/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, a context error, or any error
// returned by the visit hook.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit error at %q", item.id)
		}

		nbrs, err := w.neighbors(item.id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}

func (w *walker) neighbors(id string) ([]string, error) {
	if w.opts.IgnoreDirection {
		return w.graph.Adjacent(id)
	}

	return w.graph.Successors(id)
}
