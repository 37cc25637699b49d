// SPDX-License-Identifier: MIT

package community

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/metrics"
)

// Partition is a set of disjoint communities covering a graph's vertices.
// Communities are sorted by size descending, then by first member; members
// are sorted ascending.
type Partition [][]string

// Len returns the number of communities.
func (p Partition) Len() int { return len(p) }

// Membership maps every chemical to its community index.
func (p Partition) Membership() map[string]int {
	out := make(map[string]int)
	for i, c := range p {
		for _, v := range c {
			out[v] = i
		}
	}

	return out
}

// GirvanNewman yields at most steps successive partitions of g.
//
// Steps:
//  1. Work on an unweighted, undirected, loop-free copy of g.
//  2. Remove the edge of highest edge betweenness (ties: lowest endpoint
//     IDs) until the number of connected components grows.
//  3. Record the resulting partition; repeat while edges remain.
//
// An edgeless graph yields its components once.
//
// Complexity: O(steps · E² · V) in the worst case.
func GirvanNewman(g *core.Graph, steps int) []Partition {
	if steps <= 0 {
		return nil
	}
	a := metrics.FromCore(g)
	src := a.Undirected()
	work := simple.NewUndirectedGraph()
	for _, u := range graph.NodesOf(src.Nodes()) {
		work.AddNode(u)
	}
	for _, u := range graph.NodesOf(src.Nodes()) {
		for _, v := range graph.NodesOf(src.From(u.ID())) {
			if u.ID() < v.ID() {
				work.SetEdge(work.NewEdge(u, v))
			}
		}
	}

	if work.Edges().Len() == 0 {
		return []Partition{partitionOf(a, topo.ConnectedComponents(work))}
	}

	var out []Partition
	for len(out) < steps && work.Edges().Len() > 0 {
		before := len(topo.ConnectedComponents(work))
		var comps [][]graph.Node
		for {
			u, v := mostCentralEdge(work)
			work.RemoveEdge(u, v)
			comps = topo.ConnectedComponents(work)
			if len(comps) > before {
				break
			}
		}
		out = append(out, partitionOf(a, comps))
	}

	return out
}

// mostCentralEdge returns the edge of highest betweenness.
func mostCentralEdge(g graph.Undirected) (int64, int64) {
	var (
		best  [2]int64
		score = -1.0
	)
	for e, c := range network.EdgeBetweenness(g) {
		if c > score || (c == score && (e[0] < best[0] || (e[0] == best[0] && e[1] < best[1]))) {
			best, score = e, c
		}
	}

	return best[0], best[1]
}

func partitionOf(a *metrics.Adapter, comps [][]graph.Node) Partition {
	p := make(Partition, len(comps))
	for i, c := range comps {
		p[i] = a.Names(c)
	}
	sort.Slice(p, func(i, j int) bool {
		if len(p[i]) != len(p[j]) {
			return len(p[i]) > len(p[j])
		}
		return p[i][0] < p[j][0]
	})

	return p
}
