// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/reactnet/core"
)

// Score is one chemical's value under some metric.
type Score struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Betweenness returns the normalized betweenness centrality of every vertex.
// With weighted set, shortest paths minimize the sum of reaction steps;
// otherwise they minimize hop count.
//
// Scores are divided by (n-1)(n-2), the number of ordered pairs that can
// pass through a vertex. Undirected graphs are measured on their
// DirectedView so that every pair is counted in both orientations.
//
// Complexity: O(V·E) unweighted, O(V·E + V² log V) weighted.
func Betweenness(g *core.Graph, weighted bool) map[string]float64 {
	if !g.Directed() {
		g = core.DirectedView(g)
	}
	a := FromCore(g)

	var raw map[int64]float64
	if weighted {
		raw = network.BetweennessWeighted(a.Graph(), path.DijkstraAllPaths(a.Graph()))
	} else {
		raw = network.Betweenness(a.Graph())
	}

	n := float64(a.Len())
	scale := 0.0
	if n > 2 {
		scale = 1 / ((n - 1) * (n - 2))
	}
	out := make(map[string]float64, a.Len())
	for i, name := range a.names {
		out[name] = raw[int64(i)] * scale
	}

	return out
}

// Rank orders scores descending, ties by name ascending.
func Rank(scores map[string]float64) []Score {
	out := make([]Score, 0, len(scores))
	for name, v := range scores {
		out = append(out, Score{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// RankBetweenness ranks vertices of g by betweenness.
func RankBetweenness(g *core.Graph, weighted bool) []Score {
	return Rank(Betweenness(g, weighted))
}

// Top returns at most k leading entries of a ranking.
func Top(ranked []Score, k int) []Score {
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}

	return ranked[:k]
}

func sortStrings(s []string) { sort.Strings(s) }
