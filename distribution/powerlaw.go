// SPDX-License-Identifier: MIT

package distribution

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/optimize"
)

// ErrNotEnoughData is returned when a fit has fewer than two observations
// at or above k_min.
var ErrNotEnoughData = errors.New("distribution: not enough data to fit")

// Fit is a discrete power law fitted to degree data.
type Fit struct {
	Alpha float64 `json:"alpha" yaml:"alpha"`
	XMin  int     `json:"xmin" yaml:"xmin"`
	// KS is the Kolmogorov–Smirnov distance between tail data and fit.
	KS float64 `json:"ks" yaml:"ks"`
	// N is the number of observations at or above XMin.
	N int `json:"n" yaml:"n"`
}

// PDF returns the fitted probability of k; zero below XMin.
func (f Fit) PDF(k int) float64 {
	if k < f.XMin {
		return 0
	}

	return math.Pow(float64(k), -f.Alpha) / mathext.Zeta(f.Alpha, float64(f.XMin))
}

// Curve evaluates PDF on every integer from XMin to upto.
func (f Fit) Curve(upto int) Series {
	var s Series
	for k := f.XMin; k <= upto; k++ {
		s.X = append(s.X, float64(k))
		s.Y = append(s.Y, f.PDF(k))
	}

	return s
}

// FitPowerLaw fits a discrete power law to the positive values of data.
// With xmin > 0 the tail starts at xmin; otherwise every distinct value but
// the largest is tried and the one with the smallest KS distance wins.
func FitPowerLaw(data []int, xmin int) (Fit, error) {
	pos := positive(data)
	if xmin > 0 {
		return fitAt(pos, xmin)
	}

	var (
		best  Fit
		found bool
	)
	for _, cand := range candidates(pos) {
		f, err := fitAt(pos, cand)
		if err != nil {
			continue
		}
		if !found || f.KS < best.KS {
			best, found = f, true
		}
	}
	if !found {
		return Fit{}, ErrNotEnoughData
	}

	return best, nil
}

// candidates lists the distinct values of sorted data except the largest.
func candidates(sorted []int) []int {
	var out []int
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}

	return out
}

// fitAt maximizes the likelihood of the tail of sorted data starting at xmin.
func fitAt(sorted []int, xmin int) (Fit, error) {
	start := sort.SearchInts(sorted, xmin)
	tail := sorted[start:]
	if len(tail) < 2 {
		return Fit{}, errors.Wrapf(ErrNotEnoughData, "xmin=%d n=%d", xmin, len(tail))
	}
	n := float64(len(tail))
	var sumLog float64
	for _, v := range tail {
		sumLog += math.Log(float64(v))
	}
	q := float64(xmin)

	// α = 1 + e^θ keeps the search inside the domain of ζ.
	alphaOf := func(theta float64) float64 { return 1 + math.Exp(theta) }
	nll := func(x []float64) float64 {
		a := alphaOf(x[0])
		z := mathext.Zeta(a, q)
		if math.IsInf(z, 0) || z <= 0 {
			return math.Inf(1)
		}
		return n*math.Log(z) + a*sumLog
	}

	res, err := optimize.Minimize(optimize.Problem{Func: nll}, []float64{math.Log(1.5)}, nil, &optimize.NelderMead{})
	if err != nil {
		return Fit{}, errors.Wrap(err, "distribution: power-law likelihood")
	}
	f := Fit{Alpha: alphaOf(res.X[0]), XMin: xmin, N: len(tail)}
	f.KS = ksDistance(tail, f)

	return f, nil
}

// ksDistance is the largest gap between the empirical and fitted CDFs,
// evaluated at every distinct tail value.
func ksDistance(tail []int, f Fit) float64 {
	n := float64(len(tail))
	norm := mathext.Zeta(f.Alpha, float64(f.XMin))
	var d float64
	for i := 0; i < len(tail); {
		j := i
		for j < len(tail) && tail[j] == tail[i] {
			j++
		}
		emp := float64(j) / n
		theo := 1 - mathext.Zeta(f.Alpha, float64(tail[i]+1))/norm
		if gap := math.Abs(emp - theo); gap > d {
			d = gap
		}
		i = j
	}

	return d
}
