// SPDX-License-Identifier: MIT

package analysis

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/builder"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// CombinedPage names the dataset_comparison page.
const CombinedPage = "graph_combined"

// DatasetComparisonResult compares the chemicals of two datasets.
type DatasetComparisonResult struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
	// Common lists shared chemicals ascending.
	Common []string `json:"common" yaml:"common"`
	// SharePercentOfSecond is 100·|common| / |second|.
	SharePercentOfSecond float64 `json:"share_percent_of_second" yaml:"share_percent_of_second"`
	// MissingImportant lists configured important molecules absent from
	// the common set, in configuration order.
	MissingImportant []string `json:"missing_important" yaml:"missing_important"`
	Jaccard          float64  `json:"jaccard" yaml:"jaccard"`
}

// DatasetComparison compares the chemical sets of first and second and
// draws their union coloured by origin.
func (a *Analyzer) DatasetComparison(first, second *reaction.Table) (*Outcome, error) {
	if first == nil || second == nil {
		return nil, errors.Wrap(builder.ErrNilTable, "analysis: dataset comparison")
	}
	names1 := builder.ExtractChemicals(first).Names()
	names2 := builder.ExtractChemicals(second).Names()
	if len(names2) == 0 {
		return nil, errors.Wrap(ErrEmptyNetwork, "analysis: second dataset")
	}

	set1 := toSet(names1)
	set2 := toSet(names2)
	res := &DatasetComparisonResult{First: len(set1), Second: len(set2), Common: []string{}, MissingImportant: []string{}}
	for name := range set1 {
		if set2[name] {
			res.Common = append(res.Common, name)
		}
	}
	sort.Strings(res.Common)
	common := toSet(res.Common)

	res.SharePercentOfSecond = float64(len(res.Common)) * 100 / float64(len(set2))
	seen := make(map[string]bool)
	for _, m := range a.opts.ImportantMolecules {
		if !common[m] && !seen[m] {
			res.MissingImportant = append(res.MissingImportant, m)
		}
		seen[m] = true
	}
	union := len(set1) + len(set2) - len(res.Common)
	res.Jaccard = float64(len(res.Common)) / float64(union)

	a.log.Info("dataset comparison",
		zap.Int("common", len(res.Common)),
		zap.Float64("share_percent_of_second", res.SharePercentOfSecond),
		zap.Float64("jaccard", res.Jaccard),
	)
	for _, m := range res.MissingImportant {
		a.log.Info("important molecule missing from the other dataset", zap.String("chemical", m))
	}

	g, _, err := a.undirected(reaction.Merge(first, second), true)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: combined graph")
	}
	n := report.NetworkFrom(g)
	n.Physics = &report.Physics{
		BarnesHut:   report.BarnesHut{SpringLength: 10, SpringConstant: 0.015},
		MinVelocity: 0.75,
	}
	pal := a.opts.ComparisonPalette
	n.Paint(report.Solid(pal.First), names1...)
	n.Paint(report.Solid(pal.Second), names2...)
	n.Paint(report.Solid(pal.Common), res.Common...)

	out := &Outcome{Kind: DatasetComparison, Result: res}
	out.addPage(CombinedPage, n)
	out.Summary = report.NewSummary("Dataset comparison").
		Fact("chemicals in the first dataset", res.First).
		Fact("chemicals in the second dataset", res.Second).
		Fact("common chemicals", len(res.Common)).
		Fact("share of the second dataset (%)", res.SharePercentOfSecond).
		Fact("Jaccard similarity", res.Jaccard).
		Section("Important molecules missing from the second dataset")
	for _, m := range res.MissingImportant {
		out.Summary.Fact("missing", m)
	}

	return out, nil
}

func toSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}

	return out
}
