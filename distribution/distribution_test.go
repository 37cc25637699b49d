// SPDX-License-Identifier: MIT

package distribution_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/distribution"
)

func TestHistogram(t *testing.T) {
	h := distribution.Histogram([]int{3, 1, 3, 0, 1, 3})
	assert.Equal(t, []float64{0, 1, 3}, h.X)
	assert.Equal(t, []float64{1, 2, 3}, h.Y)
	assert.Equal(t, 3, h.Len())

	assert.Zero(t, distribution.Histogram(nil).Len())
}

func TestEmpiricalPDF(t *testing.T) {
	pdf := distribution.EmpiricalPDF([]int{0, 1, 1, 2, 4})
	assert.Equal(t, []float64{1, 2, 4}, pdf.X)
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, pdf.Y, 1e-12)
}

// zetaSample draws a deterministic sample whose counts follow k^-alpha.
func zetaSample(alpha float64, total float64) []int {
	norm := mathext.Zeta(alpha, 1)
	var out []int
	for k := 1; k <= 1000; k++ {
		c := int(math.Round(total * math.Pow(float64(k), -alpha) / norm))
		for i := 0; i < c; i++ {
			out = append(out, k)
		}
	}

	return out
}

func TestFitPowerLaw(t *testing.T) {
	data := zetaSample(2.5, 100000)

	t.Run("fixed xmin", func(t *testing.T) {
		fit, err := distribution.FitPowerLaw(data, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, fit.Alpha, 0.05)
		assert.Equal(t, 1, fit.XMin)
		assert.Equal(t, len(data), fit.N)
		assert.Less(t, fit.KS, 0.01)

		tail, err := distribution.FitPowerLaw(data, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, tail.XMin)
		assert.Less(t, tail.N, fit.N)
	})

	t.Run("scanned xmin", func(t *testing.T) {
		fit, err := distribution.FitPowerLaw(data, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fit.XMin, 1)
		assert.Greater(t, fit.Alpha, 1.0)
		assert.GreaterOrEqual(t, fit.KS, 0.0)
	})

	t.Run("curve", func(t *testing.T) {
		fit := distribution.Fit{Alpha: 2, XMin: 1}
		c := fit.Curve(3)
		assert.Equal(t, []float64{1, 2, 3}, c.X)
		assert.InDelta(t, 6/(math.Pi*math.Pi), c.Y[0], 1e-9)
		assert.Zero(t, distribution.Fit{Alpha: 2, XMin: 3}.PDF(2))
	})

	t.Run("not enough data", func(t *testing.T) {
		_, err := distribution.FitPowerLaw([]int{0, 5}, 1)
		require.ErrorIs(t, err, distribution.ErrNotEnoughData)
		_, err = distribution.FitPowerLaw([]int{4, 4, 4}, 0)
		require.ErrorIs(t, err, distribution.ErrNotEnoughData)
	})
}

func TestLoadReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, distribution.RefOutDegree)
	require.NoError(t, os.WriteFile(path, []byte("1,0.5\n2, 0.25\n4,0.125\n"), 0o600))

	s, err := distribution.LoadReference(dir, distribution.RefOutDegree)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, s.X)
	assert.Equal(t, []float64{0.5, 0.25, 0.125}, s.Y)

	_, err = distribution.LoadReference(dir, distribution.RefInDegree)
	require.Error(t, err)

	_, err = distribution.ReadReference(strings.NewReader("1,x\n"))
	require.ErrorIs(t, err, distribution.ErrBadReference)
	_, err = distribution.ReadReference(strings.NewReader("1\n"))
	require.ErrorIs(t, err, distribution.ErrBadReference)
}

func TestShortestPathLengths(t *testing.T) {
	chain := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		_, err := chain.AddEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}

	d, err := distribution.ShortestPathLengths(context.Background(), chain)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Pairs)
	assert.Equal(t, []int{1, 2, 3}, d.Lengths)
	assert.InDeltaSlice(t, []float64{0.5, 1.0 / 3, 1.0 / 6}, d.Probability, 1e-12)
	assert.InDelta(t, 10.0/6, d.Average, 1e-12)
	assert.Equal(t, []float64{1, 2, 3}, d.Series().X)

	t.Run("weight gaps", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		_, err := g.AddEdge("a", "b", 3)
		require.NoError(t, err)

		d, err := distribution.ShortestPathLengths(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, d.Lengths)
		assert.Equal(t, []float64{0, 0, 1}, d.Probability)
	})

	t.Run("edgeless", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		require.NoError(t, g.AddVertex("a"))
		d, err := distribution.ShortestPathLengths(context.Background(), g)
		require.NoError(t, err)
		assert.Zero(t, d.Pairs)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := distribution.ShortestPathLengths(ctx, chain)
		require.ErrorIs(t, err, context.Canceled)
	})
}
