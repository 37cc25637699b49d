// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/reaction"
)

// Directed builds the reactant → product graph of t.
// With KeepParallel the result is a multigraph.
func Directed(t *reaction.Table, opts ...BuilderOption) (*core.Graph, *ChemicalIndex, error) {
	return build(t, true, opts...)
}

// Undirected builds the simple undirected graph of t. Edges sharing unordered
// endpoints, a→b and b→a included, collapse to the minimum weight regardless
// of the configured policy.
func Undirected(t *reaction.Table, opts ...BuilderOption) (*core.Graph, *ChemicalIndex, error) {
	return build(t, false, opts...)
}

func build(t *reaction.Table, directed bool, opts ...BuilderOption) (*core.Graph, *ChemicalIndex, error) {
	if t == nil {
		return nil, nil, ErrNilTable
	}
	idx := ExtractChemicals(t)
	set, err := ExtractEdges(t, idx, opts...)
	if err != nil {
		return nil, nil, err
	}
	g, err := Assemble(idx, set, directed, opts...)
	if err != nil {
		return nil, nil, err
	}

	return g, idx, nil
}

// Assemble materializes idx and edges into a core.Graph.
//
// Every chemical becomes a vertex, isolated or not. Self-loops are allowed.
// Directed graphs accept parallel edges when edges were collected with
// KeepParallel; undirected graphs are always simple.
//
// Complexity: O(V + E).
func Assemble(idx *ChemicalIndex, edges *EdgeSet, directed bool, opts ...BuilderOption) (*core.Graph, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	if edges == nil {
		return nil, ErrNilTable
	}
	cfg := newBuilderConfig(opts...)
	cfg.logger.Info("number of chemicals", zap.Int("count", idx.Len()), zap.Bool("directed", directed))

	gopts := []core.GraphOption{core.WithDirected(directed), core.WithWeighted(), core.WithLoops()}
	if directed && edges.Policy == KeepParallel {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for _, key := range idx.Keys(edges.Mode) {
		if err := g.AddVertex(key); err != nil {
			return nil, errors.Wrap(err, "builder: add chemical")
		}
	}

	if directed {
		for _, e := range edges.Edges {
			if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, errors.Wrapf(err, "builder: edge %s→%s", e.From, e.To)
			}
		}
		return g, nil
	}

	for _, e := range collapseUnordered(edges.Edges) {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "builder: edge %s->%s", e.From, e.To)
		}
	}

	return g, nil
}

// collapseUnordered keeps the first orientation of each unordered pair and
// the minimum weight seen for it.
func collapseUnordered(edges []Edge) []Edge {
	var (
		out = make([]Edge, 0, len(edges))
		at  = make(map[endpoints]int, len(edges))
	)
	for _, e := range edges {
		pair := endpoints{e.From, e.To}
		if e.To < e.From {
			pair = endpoints{e.To, e.From}
		}
		if i, ok := at[pair]; ok {
			if e.Weight < out[i].Weight {
				out[i].Weight = e.Weight
			}
			continue
		}
		at[pair] = len(out)
		out = append(out, e)
	}

	return out
}
