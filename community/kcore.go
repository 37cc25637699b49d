// SPDX-License-Identifier: MIT

package community

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/metrics"
)

// CoreNumbers returns the core number of every chemical: the largest k such
// that the chemical belongs to the k-core. Direction and self-loops are
// ignored.
//
// Complexity: O(V + E).
func CoreNumbers(g *core.Graph) map[string]int {
	a := metrics.FromCore(g)
	_, cores := topo.DegeneracyOrdering(a.Undirected())

	out := make(map[string]int, a.Len())
	for k, shell := range cores {
		for _, n := range shell {
			out[a.Name(n.ID())] = k
		}
	}

	return out
}

// Levels returns the distinct core numbers present, ascending.
func Levels(numbers map[string]int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, k := range numbers {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// KCore returns the sorted members of the k-core of g: the maximal subgraph
// in which every chemical has at least k neighbors.
func KCore(g *core.Graph, k int) []string {
	var members []string
	for name, c := range CoreNumbers(g) {
		if c >= k {
			members = append(members, name)
		}
	}
	sort.Strings(members)

	return members
}

// KCoreGraph returns the subgraph of g induced by KCore(g, k).
func KCoreGraph(g *core.Graph, k int) *core.Graph {
	keep := make(map[string]bool)
	for _, v := range KCore(g, k) {
		keep[v] = true
	}

	return core.InducedSubgraph(g, keep)
}
