// SPDX-License-Identifier: MIT

package metrics

import "github.com/pkg/errors"

// ErrTooFewNodes is returned when a metric needs at least two vertices.
var ErrTooFewNodes = errors.New("metrics: at least two nodes required")

// CentralPointDominance computes Freeman's central point dominance
//
//	CPD = Σ (c_max − c_i) / (n − 1)
//
// over betweenness scores. A star scores 1, a graph where every vertex is
// equally central scores 0.
func CentralPointDominance(scores map[string]float64) (float64, error) {
	n := len(scores)
	if n < 2 {
		return 0, ErrTooFewNodes
	}
	var highest float64
	first := true
	for _, c := range scores {
		if first || c > highest {
			highest, first = c, false
		}
	}
	var sum float64
	for _, c := range scores {
		sum += highest - c
	}

	return sum / float64(n-1), nil
}
