// SPDX-License-Identifier: MIT

package analysis

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/bfs"
	"github.com/katalvlaran/reactnet/distribution"
	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// GraphPropertyResult holds the small-world indicators of a network.
type GraphPropertyResult struct {
	// PathLengths is measured on the whole directed network.
	PathLengths distribution.PathLengths `json:"path_lengths" yaml:"path_lengths"`
	// AverageClustering is measured on the largest component of the
	// undirected network.
	AverageClustering float64 `json:"average_clustering" yaml:"average_clustering"`
	LargestComponent  int     `json:"largest_component" yaml:"largest_component"`
	// Reference is the NOC path-length distribution, if compared.
	Reference *distribution.Series `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// GraphProperty measures shortest-path lengths and clustering of t. The
// all-pairs search and the component search stop once ctx is cancelled.
func (a *Analyzer) GraphProperty(ctx context.Context, t *reaction.Table) (*Outcome, error) {
	dg, _, err := a.directed(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: graph property directed graph")
	}
	if dg.VertexCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	a.logSize(GraphProperty, dg)

	res := &GraphPropertyResult{}
	if res.PathLengths, err = distribution.ShortestPathLengths(ctx, dg); err != nil {
		return nil, errors.Wrap(err, "analysis: path lengths")
	}
	a.log.Info("average shortest path length", zap.Float64("value", res.PathLengths.Average))

	ug, _, err := a.undirected(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: graph property undirected graph")
	}
	lcc, err := bfs.LargestComponentGraph(ctx, ug)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: largest component")
	}
	res.LargestComponent = lcc.VertexCount()
	res.AverageClustering = metrics.AverageClustering(lcc)
	a.log.Info("average clustering coefficient", zap.Float64("value", res.AverageClustering))

	if a.opts.ReferenceDir != "" {
		ref, err := distribution.LoadReference(a.opts.ReferenceDir, distribution.RefPathLength)
		if err != nil {
			return nil, errors.Wrap(err, "analysis: NOC path lengths")
		}
		res.Reference = &ref
	}

	out := &Outcome{Kind: GraphProperty, Result: res}
	out.Summary = report.NewSummary("Graph property").
		Fact("average shortest path length", res.PathLengths.Average).
		Fact("connected pairs", res.PathLengths.Pairs).
		Fact("largest component", res.LargestComponent).
		Fact("average clustering coefficient", res.AverageClustering)

	return out, nil
}
