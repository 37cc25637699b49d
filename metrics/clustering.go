// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/reactnet/core"

// Clustering returns the local clustering coefficient of every vertex:
// the share of neighbor pairs that are themselves adjacent. Direction,
// weights, parallel edges and self-loops are ignored. Vertices with fewer
// than two neighbors score 0.
//
// Complexity: O(Σ d²).
func Clustering(g *core.Graph) map[string]float64 {
	out := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		adj, err := g.Adjacent(v)
		if err != nil {
			continue
		}
		nbrs := adj[:0]
		for _, u := range adj {
			if u != v {
				nbrs = append(nbrs, u)
			}
		}
		d := len(nbrs)
		if d < 2 {
			out[v] = 0
			continue
		}
		links := 0
		for i := range nbrs {
			for j := i + 1; j < d; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) || g.HasEdge(nbrs[j], nbrs[i]) {
					links++
				}
			}
		}
		out[v] = 2 * float64(links) / float64(d*(d-1))
	}

	return out
}

// AverageClustering is the mean of Clustering over all vertices, zeros
// included. An empty graph scores 0.
func AverageClustering(g *core.Graph) float64 {
	cc := Clustering(g)
	if len(cc) == 0 {
		return 0
	}
	var sum float64
	for _, c := range cc {
		sum += c
	}

	return sum / float64(len(cc))
}
