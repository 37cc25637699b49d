// SPDX-License-Identifier: MIT

package distribution

import (
	"sort"

	"github.com/katalvlaran/reactnet/builder"
)

// Series is a plottable sequence of (X, Y) points.
type Series struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// Histogram counts how many vertices have each degree, sorted by degree.
func Histogram(degrees []int) Series {
	values, counts := builder.CountDegrees(degrees)
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	s := Series{X: make([]float64, len(idx)), Y: make([]float64, len(idx))}
	for i, j := range idx {
		s.X[i] = float64(values[j])
		s.Y[i] = float64(counts[j])
	}

	return s
}

// EmpiricalPDF returns P(k), the share of positive observations equal to k,
// for every observed k. Non-positive values are dropped.
func EmpiricalPDF(data []int) Series {
	pos := positive(data)
	h := Histogram(pos)
	n := float64(len(pos))
	for i := range h.Y {
		h.Y[i] /= n
	}

	return h
}

// positive returns the strictly positive values of data, sorted.
func positive(data []int) []int {
	out := make([]int, 0, len(data))
	for _, v := range data {
		if v > 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}
