// SPDX-License-Identifier: MIT

package distribution

import (
	"context"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/dijkstra"
)

// PathLengths is the distribution of shortest-path lengths of a graph.
type PathLengths struct {
	// Lengths runs 1..max observed length.
	Lengths []int `json:"lengths" yaml:"lengths"`
	// Probability[i] is the share of connected pairs at Lengths[i].
	Probability []float64 `json:"probability" yaml:"probability"`
	Average     float64   `json:"average" yaml:"average"`
	// Pairs counts the ordered, distinct, connected vertex pairs.
	Pairs int `json:"pairs" yaml:"pairs"`
}

// Series returns the distribution as plottable points.
func (p PathLengths) Series() Series {
	s := Series{X: make([]float64, len(p.Lengths)), Y: append([]float64(nil), p.Probability...)}
	for i, l := range p.Lengths {
		s.X[i] = float64(l)
	}

	return s
}

// ShortestPathLengths measures weighted shortest paths between all ordered
// pairs of distinct vertices of g, skipping unreachable pairs. Parallel edges
// contribute their cheapest weight. Cancelling ctx aborts the search.
//
// Complexity: O(V·(V + E) log V).
func ShortestPathLengths(ctx context.Context, g *core.Graph) (PathLengths, error) {
	all, err := dijkstra.AllPairs(ctx, g)
	if err != nil {
		return PathLengths{}, errors.Wrap(err, "distribution: shortest paths")
	}

	var (
		lengths []float64
		counts  = make(map[int64]int)
		longest int64
	)
	for _, row := range all {
		for _, d := range row {
			lengths = append(lengths, float64(d))
			counts[d]++
			if d > longest {
				longest = d
			}
		}
	}
	if len(lengths) == 0 {
		return PathLengths{}, nil
	}

	out := PathLengths{Pairs: len(lengths), Average: stat.Mean(lengths, nil)}
	n := float64(len(lengths))
	for l := int64(1); l <= longest; l++ {
		out.Lengths = append(out.Lengths, int(l))
		out.Probability = append(out.Probability, float64(counts[l])/n)
	}

	return out, nil
}
