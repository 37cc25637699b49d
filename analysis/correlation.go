// SPDX-License-Identifier: MIT

package analysis

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// DegreeCorrelationResult is the degree connectivity of the network per
// selected degree type. Unselected types stay empty.
type DegreeCorrelationResult struct {
	Out   []metrics.ConnectivityPoint `json:"out,omitempty" yaml:"out,omitempty"`
	In    []metrics.ConnectivityPoint `json:"in,omitempty" yaml:"in,omitempty"`
	Total []metrics.ConnectivityPoint `json:"total,omitempty" yaml:"total,omitempty"`
}

func (r *DegreeCorrelationResult) slot(dt DegreeType) *[]metrics.ConnectivityPoint {
	switch dt {
	case metrics.OutDegree:
		return &r.Out
	case metrics.InDegree:
		return &r.In
	default:
		return &r.Total
	}
}

// DegreeCorrelation measures the average neighbor degree per degree class of
// the directed, index-keyed network of t, once per Options.CorrelationDegrees
// entry.
func (a *Analyzer) DegreeCorrelation(t *reaction.Table) (*Outcome, error) {
	g, _, err := a.directed(t, false)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: degree correlation graph")
	}
	a.logSize(DegreeCorrelation, g)

	res := &DegreeCorrelationResult{}
	sum := report.NewSummary("Degree correlation")
	names := make([]string, 0, len(a.opts.CorrelationDegrees))
	for _, dt := range a.opts.CorrelationDegrees {
		points := metrics.DegreeConnectivity(g, dt)
		*res.slot(dt) = points
		names = append(names, dt.String())
		sum.Fact(dt.String()+"-degree classes", len(points))
		a.log.Info("degree correlation", zap.Stringer("degree", dt), zap.Int("classes", len(points)))
	}
	sum.Text("Average neighbour degree per degree class, measured for %s degrees.", strings.Join(names, ", "))

	return &Outcome{
		Kind:    DegreeCorrelation,
		Result:  res,
		Summary: sum,
	}, nil
}

// CentralPointDominanceResult is the CPD of the network.
type CentralPointDominanceResult struct {
	Value float64 `json:"value" yaml:"value"`
	// Central is the chemical of highest betweenness.
	Central metrics.Score `json:"central" yaml:"central"`
}

// CentralPointDominance computes the CPD of the directed network of t from
// unweighted betweenness.
func (a *Analyzer) CentralPointDominance(t *reaction.Table) (*Outcome, error) {
	g, _, err := a.directed(t, true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: central point dominance graph")
	}
	a.logSize(CentralPointDominance, g)

	scores := metrics.Betweenness(g, false)
	cpd, err := metrics.CentralPointDominance(scores)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: central point dominance")
	}
	res := &CentralPointDominanceResult{Value: cpd, Central: metrics.Rank(scores)[0]}
	a.log.Info("central point dominance", zap.Float64("value", cpd), zap.String("central", res.Central.Name))

	return &Outcome{
		Kind:   CentralPointDominance,
		Result: res,
		Summary: report.NewSummary("Central point dominance").
			Fact("central point dominance", res.Value).
			Fact("most central chemical", res.Central.Name),
	}, nil
}
