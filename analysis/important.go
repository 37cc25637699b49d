// SPDX-License-Identifier: MIT

package analysis

import (
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// Page names of important_molecules.
const (
	CentralityPage = "important_molecules_centrality"
	DegreePage     = "important_molecules_degree"
)

// ImportantMoleculesResult ranks chemicals by weighted betweenness and by
// total degree.
type ImportantMoleculesResult struct {
	Edges int `json:"edges" yaml:"edges"`
	Nodes int `json:"nodes" yaml:"nodes"`
	// Betweenness and Degree hold the top-k of each ranking.
	Betweenness []metrics.Score `json:"betweenness" yaml:"betweenness"`
	Degree      []metrics.Score `json:"degree" yaml:"degree"`
	// BetweennessPlot is the plotted head of the betweenness ranking.
	BetweennessPlot []metrics.Score `json:"betweenness_plot" yaml:"betweenness_plot"`
}

// ImportantMolecules finds the chemicals that dominate the directed network
// of t and draws each ranking with its leaders highlighted.
func (a *Analyzer) ImportantMolecules(t *reaction.Table) (*Outcome, error) {
	g, _, err := a.directed(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: important molecules graph")
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	a.logSize(ImportantMolecules, g)
	if a.opts.SameWidthEdges {
		g = core.UniformWeightView(g, 1)
	}

	res := &ImportantMoleculesResult{
		Edges:       g.EdgeCount(),
		Nodes:       g.VertexCount(),
		Betweenness: metrics.Top(metrics.RankBetweenness(g, true), a.opts.TopK),
		Degree:      metrics.Top(metrics.RankDegree(g), a.opts.TopK),
	}
	res.BetweennessPlot = metrics.Top(res.Betweenness, a.opts.NumToPlot)

	out := &Outcome{Kind: ImportantMolecules, Result: res}
	out.addPage(CentralityPage, a.highlighted(g, res.Betweenness, a.opts.BetweennessScale))
	out.addPage(DegreePage, a.highlighted(g, res.Degree, a.opts.DegreeScale))

	a.logScores("betweenness centrality", res.Betweenness)
	a.logScores("degree", res.Degree)

	out.Summary = report.NewSummary("Important molecules").
		Fact("edges", res.Edges).
		Fact("nodes", res.Nodes).
		Section("Top chemicals by betweenness centrality").
		Table([]string{"chemical", "score"}, scoreRows(res.Betweenness)).
		Section("Top chemicals by degree").
		Table([]string{"chemical", "degree"}, scoreRows(res.Degree))

	return out, nil
}

// highlighted draws g with every scored chemical as a star sized scale×score.
func (a *Analyzer) highlighted(g *core.Graph, top []metrics.Score, scale float64) *report.Network {
	n := report.NetworkFrom(g)
	if a.opts.SameWidthEdges {
		n.UniformWidth(1)
	}
	for _, s := range top {
		n.Highlight(s.Name, scale*s.Value)
	}

	return n
}

func (a *Analyzer) logScores(metric string, top []metrics.Score) {
	for i, s := range top {
		a.log.Info("top chemical",
			zap.String("metric", metric),
			zap.Int("rank", i+1),
			zap.String("chemical", s.Name),
			zap.Float64("score", s.Value),
		)
	}
}

func scoreRows(scores []metrics.Score) [][]string {
	rows := make([][]string, len(scores))
	for i, s := range scores {
		rows[i] = []string{s.Name, strconv.FormatFloat(s.Value, 'g', 6, 64)}
	}

	return rows
}
