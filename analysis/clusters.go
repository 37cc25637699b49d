// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/bfs"
	"github.com/katalvlaran/reactnet/community"
	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// KCorePage names the page of the k-core.
func KCorePage(k int) string { return "graph_clusters_" + strconv.Itoa(k) + "core" }

// BetweennessPage names the page of the best Girvan–Newman partition.
func BetweennessPage(communities int) string {
	return "graph_clusters_betweenness" + strconv.Itoa(communities)
}

// KCoreLevel lists the members of one drawn k-core.
type KCoreLevel struct {
	K       int      `json:"k" yaml:"k"`
	Members []string `json:"members" yaml:"members"`
}

// PartitionScore rates one Girvan–Newman partition.
type PartitionScore struct {
	Communities int     `json:"communities" yaml:"communities"`
	Performance float64 `json:"performance" yaml:"performance"`
	Modularity  float64 `json:"modularity" yaml:"modularity"`
}

// GraphClustersResult holds the k-core and Girvan–Newman clusterings.
type GraphClustersResult struct {
	CoreNumbers map[string]int   `json:"core_numbers" yaml:"core_numbers"`
	Levels      []int            `json:"levels" yaml:"levels"`
	KCores      []KCoreLevel     `json:"kcores" yaml:"kcores"`
	Scores      []PartitionScore `json:"scores" yaml:"scores"`
	// Best indexes Scores; -1 when no partition scored above zero.
	Best          int                 `json:"best" yaml:"best"`
	BestPartition community.Partition `json:"best_partition" yaml:"best_partition"`
}

// GraphClusters clusters t twice: by k-core decomposition of the loop-free
// undirected network, and by Girvan–Newman on the directed network
// restricted to the largest undirected component. The highest k-cores and
// the best partition are drawn. ctx bounds the component search only;
// Girvan–Newman runs to completion.
func (a *Analyzer) GraphClusters(ctx context.Context, t *reaction.Table) (*Outcome, error) {
	ug, _, err := a.undirected(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: clusters undirected graph")
	}
	if ug.VertexCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	a.logSize(GraphClusters, ug)

	out := &Outcome{Kind: GraphClusters}
	res := &GraphClustersResult{Best: -1}
	out.Result = res

	loopFree := ug.Clone()
	loopFree.RemoveSelfLoops()
	res.CoreNumbers = community.CoreNumbers(loopFree)
	res.Levels = community.Levels(res.CoreNumbers)
	top := res.Levels[len(res.Levels)-1]
	a.log.Info("k-core numbers found", zap.Ints("levels", res.Levels), zap.Int("visualised", a.opts.KCoreLevels))
	for k := max(top-a.opts.KCoreLevels+1, 0); k <= top; k++ {
		kc := community.KCoreGraph(loopFree, k)
		res.KCores = append(res.KCores, KCoreLevel{K: k, Members: kc.Vertices()})
		out.addPage(KCorePage(k), report.NetworkFrom(kc))
	}

	dg, _, err := a.directed(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: clusters directed graph")
	}
	lcc, err := bfs.LargestComponent(ctx, ug)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: largest component")
	}
	keep := make(map[string]bool, len(lcc))
	for _, v := range lcc {
		keep[v] = true
	}
	dlcc := core.InducedSubgraph(dg, keep)

	a.log.Info("running girvan-newman", zap.Int("steps", a.opts.GNSteps), zap.Int("nodes", dlcc.VertexCount()))
	parts := community.GirvanNewman(dlcc, a.opts.GNSteps)
	best, perf := community.Best(parts, dlcc)
	for i, p := range parts {
		res.Scores = append(res.Scores, PartitionScore{
			Communities: p.Len(),
			Performance: perf[i],
			Modularity:  community.Modularity(p, dlcc),
		})
	}
	res.Best = best
	if best >= 0 {
		res.BestPartition = parts[best]
		a.log.Info("best performance found",
			zap.Float64("performance", perf[best]),
			zap.Int("clusters", parts[best].Len()),
		)
	}
	out.addPage(BetweennessPage(res.BestPartition.Len()), a.paintPartition(dlcc, res.BestPartition))

	rows := make([][]string, 0, len(res.Scores))
	for _, s := range res.Scores {
		rows = append(rows, []string{
			strconv.Itoa(s.Communities),
			fmt.Sprintf("%.4f", s.Performance),
			fmt.Sprintf("%.4f", s.Modularity),
		})
	}
	out.Summary = report.NewSummary("Graph clusters").
		Fact("k-core numbers", fmt.Sprint(res.Levels)).
		Fact("partitions examined", len(parts)).
		Fact("best partition size", res.BestPartition.Len()).
		Section("Girvan–Newman partitions").
		Table([]string{"communities", "performance", "modularity"}, rows)

	return out, nil
}

// paintPartition draws g with every community in its palette colour.
func (a *Analyzer) paintPartition(g *core.Graph, p community.Partition) *report.Network {
	n := report.NetworkFrom(g)
	for i, c := range p {
		n.Paint(report.Solid(a.opts.clusterColor(i)), c...)
	}

	return n
}
