// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/reactnet/metrics"
)

// ErrInvalidArgument is returned for unknown kinds, plot options and degree
// types, and for unusable Options.
var ErrInvalidArgument = errors.New("analysis: invalid argument")

// ErrEmptyNetwork is returned when an analysis needs at least one chemical.
var ErrEmptyNetwork = errors.New("analysis: network has no chemicals")

// Kind selects an analysis.
type Kind int

const (
	GraphFragmentation Kind = iota
	MergeAndGraphFragmentation
	ImportantMolecules
	DegreeDistribution
	GraphProperty
	GraphClusters
	DegreeCorrelation
	CentralPointDominance
	DatasetComparison
)

var kindNames = [...]string{
	GraphFragmentation:         "graph_fragmentation",
	MergeAndGraphFragmentation: "merge_and_graph_fragmentation",
	ImportantMolecules:         "important_molecules",
	DegreeDistribution:         "degree_distribution",
	GraphProperty:              "graph_property",
	GraphClusters:              "graph_clusters",
	DegreeCorrelation:          "degree_correlation",
	CentralPointDominance:      "central_point_dominance",
	DatasetComparison:          "dataset_comparison",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Kinds lists every analysis in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind maps an analysis name to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidArgument, "unknown analysis %q", s)
}

// Weighted reports whether the analysis reads the reaction step column.
func (k Kind) Weighted() bool {
	switch k {
	case ImportantMolecules, DegreeDistribution, GraphProperty,
		GraphClusters, DegreeCorrelation, CentralPointDominance:
		return true
	case GraphFragmentation, MergeAndGraphFragmentation, DatasetComparison:
		return false
	default:
		return false
	}
}

// PlotOption selects the degree_distribution output.
type PlotOption int

const (
	// PlotBar and PlotScatter emit in, out and total degree histograms.
	PlotBar PlotOption = iota
	PlotScatter
	// PlotExponent fits power laws to total, in and out degrees.
	PlotExponent
	// PlotScatterComparison pairs in and out histograms with the NOC ones.
	PlotScatterComparison
	// PlotDistributionComparison pairs fitted densities with the NOC ones.
	PlotDistributionComparison
)

var plotNames = [...]string{
	PlotBar:                    "bar",
	PlotScatter:                "scatter",
	PlotExponent:               "exponent",
	PlotScatterComparison:      "scatter_comparison_plot",
	PlotDistributionComparison: "distribution_comparison_plot",
}

// String implements fmt.Stringer.
func (p PlotOption) String() string {
	if p < 0 || int(p) >= len(plotNames) {
		return "unknown"
	}

	return plotNames[p]
}

// ParsePlotOption maps a plot name to its PlotOption.
func ParsePlotOption(s string) (PlotOption, error) {
	for i, name := range plotNames {
		if name == s {
			return PlotOption(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidArgument, "unknown plot option %q", s)
}

// DegreeType re-exports metrics.DegreeType.
type DegreeType = metrics.DegreeType

// ParseDegreeType accepts "in", "out" or "total".
func ParseDegreeType(s string) (DegreeType, error) {
	t, err := metrics.ParseDegreeType(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "%v", err)
	}

	return t, nil
}
