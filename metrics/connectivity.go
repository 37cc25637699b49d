// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"

	"github.com/katalvlaran/reactnet/core"
)

// ConnectivityPoint is the average neighbor degree of all vertices sharing
// one source degree.
type ConnectivityPoint struct {
	Degree  int     `json:"degree" yaml:"degree"`
	Average float64 `json:"average" yaml:"average"`
}

// DegreeConnectivity returns the average nearest-neighbor degree per degree
// class. For each vertex v of degree k (under t) the degrees (under t) of its
// distinct neighbors are summed: successors for OutDegree, predecessors for
// InDegree, both for TotalDegree. The class average divides the sum by
// Σ k; class 0 reports 0. Points are sorted by degree.
//
// Complexity: O(V + E).
func DegreeConnectivity(g *core.Graph, t DegreeType) []ConnectivityPoint {
	sum := make(map[int]float64)
	norm := make(map[int]float64)
	for _, v := range g.Vertices() {
		k := DegreeOf(g, v, t)
		var s int
		for _, u := range neighborsFor(g, v, t) {
			s += DegreeOf(g, u, t)
		}
		sum[k] += float64(s)
		norm[k] += float64(k)
	}

	out := make([]ConnectivityPoint, 0, len(sum))
	for k, s := range sum {
		avg := s
		if norm[k] != 0 {
			avg = s / norm[k]
		}
		out = append(out, ConnectivityPoint{Degree: k, Average: avg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out
}

func neighborsFor(g *core.Graph, v string, t DegreeType) []string {
	var (
		ids []string
		err error
	)
	switch {
	case !g.Directed() || t == TotalDegree:
		ids, err = g.Adjacent(v)
	case t == InDegree:
		ids, err = g.Predecessors(v)
	default:
		ids, err = g.Successors(v)
	}
	if err != nil {
		return nil
	}

	return ids
}
