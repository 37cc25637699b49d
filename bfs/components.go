// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/reactnet/core"
)

// Components partitions g into connected components with edge direction
// ignored. Each component lists its members ascending; components are ordered
// by size descending, ties by their first member. Cancelling ctx stops the
// traversal with the context error.
//
// Complexity: O(V + E).
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		var comp []string
		visit := func(id string, _ int) error {
			seen[id] = true
			comp = append(comp, id)
			return nil
		}
		if _, err := BFS(g, v, WithIgnoreDirection(), WithContext(ctx), WithOnVisit(visit)); err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}

// LargestComponent returns the members of the largest connected component,
// or nil for an empty graph.
func LargestComponent(ctx context.Context, g *core.Graph) ([]string, error) {
	comps, err := Components(ctx, g)
	if err != nil || len(comps) == 0 {
		return nil, err
	}

	return comps[0], nil
}

// LargestComponentGraph returns the subgraph induced by LargestComponent.
func LargestComponentGraph(ctx context.Context, g *core.Graph) (*core.Graph, error) {
	lcc, err := LargestComponent(ctx, g)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(lcc))
	for _, v := range lcc {
		keep[v] = true
	}

	return core.InducedSubgraph(g, keep), nil
}
