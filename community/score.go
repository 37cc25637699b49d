// SPDX-License-Identifier: MIT

package community

import (
	"gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/metrics"
)

// Performance rates a partition of g by intra- versus inter-community edges:
// the mean over communities of 2·intra/inter. Every edge of g counts once,
// parallel edges and self-loops included; an inter-community edge counts for
// both of its communities. A community without inter edges divides by 1.
// A single community scores -1. Edges touching chemicals outside the
// partition are ignored.
//
// Complexity: O(V + E).
func Performance(p Partition, g *core.Graph) float64 {
	if p.Len() <= 1 {
		return -1
	}
	member := p.Membership()
	intra := make([]int, p.Len())
	inter := make([]int, p.Len())
	for _, e := range g.Edges() {
		cu, okU := member[e.From]
		cv, okV := member[e.To]
		if !okU || !okV {
			continue
		}
		if cu == cv {
			intra[cu]++
			continue
		}
		inter[cu]++
		inter[cv]++
	}

	var sum float64
	for i := range p {
		den := inter[i]
		if den == 0 {
			den = 1
		}
		sum += 2 * float64(intra[i]) / float64(den)
	}

	return sum / float64(p.Len())
}

// Modularity returns the Newman modularity Q of p on g at resolution 1,
// using collapsed edge weights. Directed graphs use the directed form of Q.
func Modularity(p Partition, g *core.Graph) float64 {
	if g.EdgeCount()-g.Stats().SelfLoops == 0 {
		return 0
	}
	a := metrics.FromCore(g)
	comms := make([][]graph.Node, 0, p.Len())
	for _, c := range p {
		comms = append(comms, a.Nodes(c))
	}

	return gcommunity.Q(a.Graph(), comms, 1)
}

// Best returns the index of the partition with the highest positive
// Performance on g, or -1 when none beats zero, together with every score.
func Best(parts []Partition, g *core.Graph) (int, []float64) {
	best, top := -1, 0.0
	scores := make([]float64, len(parts))
	for i, p := range parts {
		scores[i] = Performance(p, g)
		if scores[i] > top {
			best, top = i, scores[i]
		}
	}

	return best, scores
}
