// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/bfs"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// Page names of the fragmentation analyses.
const (
	FragmentationPage       = "graph_fragmentation"
	MergedFragmentationPage = "graph_fragmentation_merged_data"
)

// SizeCount is how many components share one size.
type SizeCount struct {
	Size  int `json:"size" yaml:"size"`
	Count int `json:"count" yaml:"count"`
}

// FragmentationResult describes the connected components of a network.
type FragmentationResult struct {
	Edges      int  `json:"edges" yaml:"edges"`
	Nodes      int  `json:"nodes" yaml:"nodes"`
	Connected  bool `json:"connected" yaml:"connected"`
	Components int  `json:"components" yaml:"components"`
	// ComponentSizes lists component sizes descending.
	ComponentSizes []int `json:"component_sizes" yaml:"component_sizes"`
	// SizeDistribution groups equal sizes, largest size first.
	SizeDistribution []SizeCount `json:"size_distribution" yaml:"size_distribution"`
	// LargestShare is the percentage of chemicals in the largest component,
	// rounded to two decimals.
	LargestShare float64 `json:"largest_share_percent" yaml:"largest_share_percent"`
}

// Fragmentation analyses the components of the undirected network of t. The
// whole network is drawn on a page called page. Cancelling ctx stops the
// component search.
func (a *Analyzer) Fragmentation(ctx context.Context, t *reaction.Table, page string) (*Outcome, error) {
	g, _, err := a.undirected(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: fragmentation graph")
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	a.logSize(GraphFragmentation, g)

	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: components")
	}
	res := &FragmentationResult{
		Edges:      g.EdgeCount(),
		Nodes:      g.VertexCount(),
		Connected:  len(comps) == 1,
		Components: len(comps),
	}
	for _, c := range comps {
		res.ComponentSizes = append(res.ComponentSizes, len(c))
	}
	res.SizeDistribution = groupSizes(res.ComponentSizes)
	res.LargestShare = math.Round(float64(res.ComponentSizes[0])*100/float64(res.Nodes)*100) / 100

	a.log.Info("fragmentation",
		zap.Bool("connected", res.Connected),
		zap.Int("components", res.Components),
		zap.Float64("largest_share_percent", res.LargestShare),
	)

	out := &Outcome{Kind: GraphFragmentation, Result: res}
	out.addPage(page, report.NetworkFrom(g))

	rows := make([][]string, 0, len(res.SizeDistribution))
	for _, sc := range res.SizeDistribution {
		rows = append(rows, []string{strconv.Itoa(sc.Size), strconv.Itoa(sc.Count)})
	}
	out.Summary = report.NewSummary("Graph fragmentation").
		Fact("edges", res.Edges).
		Fact("nodes", res.Nodes).
		Fact("fully connected", res.Connected).
		Fact("components", res.Components).
		Fact("largest component share (%)", res.LargestShare).
		Section("Component size distribution").
		Table([]string{"size", "components"}, rows)

	return out, nil
}

// groupSizes run-length encodes sizes.
func groupSizes(sizes []int) []SizeCount {
	var out []SizeCount
	for _, s := range sizes {
		if n := len(out); n > 0 && out[n-1].Size == s {
			out[n-1].Count++
			continue
		}
		out = append(out, SizeCount{Size: s, Count: 1})
	}

	return out
}
