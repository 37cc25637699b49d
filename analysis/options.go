// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/reactnet/metrics"
)

// ComparisonPalette colours the combined dataset_comparison network.
type ComparisonPalette struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
	Common string `json:"common" yaml:"common"`
}

// Options configures every analysis.
type Options struct {
	// TopK chemicals are reported per important_molecules ranking.
	TopK int
	// NumToPlot leading betweenness scores go into the plotted series.
	NumToPlot int
	// SameWidthEdges sets every weight to 1 before important_molecules.
	SameWidthEdges bool
	// GNSteps bounds the number of Girvan–Newman partitions examined.
	GNSteps int
	// KCoreLevels is how many of the highest k-cores are drawn.
	KCoreLevels int
	// ClusterPalette colours partition communities in order; the last
	// entry is reused once the palette runs out.
	ClusterPalette    []string
	ComparisonPalette ComparisonPalette
	// ImportantMolecules are checked for presence in the compared dataset.
	ImportantMolecules []string
	// CorrelationDegrees are the degree types degree_correlation measures,
	// in order.
	CorrelationDegrees []DegreeType
	// ReferenceDir holds the NOC tables; empty skips every comparison with them.
	ReferenceDir string
	Plot         PlotOption
	// BetweennessScale and DegreeScale size highlighted nodes.
	BetweennessScale float64
	DegreeScale      float64
}

// DefaultClusterPalette is the community colour sequence.
var DefaultClusterPalette = []string{
	"#ff8c00", "#ffff00", "#00ff00", "#008000", "#00ffff", "#ff00ff", "#2f4f4f",
	"#ff69b4", "#7f0000", "#00008b", "#1e90ff", "#ffdead", "gray",
}

// DefaultImportantMolecules are the key biorefinery chemicals.
var DefaultImportantMolecules = []string{
	"2-methoxy-phenol",
	"formic acid",
	"methanol",
	"syringic aldehyde",
	"carbon dioxide",
	"1-(4-hydroxy-3,5-dimethoxyphenyl)-2-(2'-methoxyphenoxy)-1,3-propanediol",
	"5-hydroxymethyl-2-furfuraldehyde",
	"levulinic acid",
	"furfural",
	"vanillin",
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		TopK:               6,
		NumToPlot:          5,
		GNSteps:            100,
		KCoreLevels:        4,
		ClusterPalette:     append([]string(nil), DefaultClusterPalette...),
		ComparisonPalette:  ComparisonPalette{First: "#1abc9c", Second: "#ff6b81", Common: "#a29bfe"},
		ImportantMolecules: append([]string(nil), DefaultImportantMolecules...),
		CorrelationDegrees: []DegreeType{metrics.OutDegree, metrics.InDegree},
		Plot:               PlotDistributionComparison,
		BetweennessScale:   10000,
		DegreeScale:        1.5,
	}
}

// Validate rejects options no analysis can run with.
func (o Options) Validate() error {
	switch {
	case o.TopK < 1:
		return errors.Wrapf(ErrInvalidArgument, "top-k %d", o.TopK)
	case o.NumToPlot < 0:
		return errors.Wrapf(ErrInvalidArgument, "plot count %d", o.NumToPlot)
	case o.GNSteps < 1:
		return errors.Wrapf(ErrInvalidArgument, "girvan-newman steps %d", o.GNSteps)
	case o.KCoreLevels < 1:
		return errors.Wrapf(ErrInvalidArgument, "k-core levels %d", o.KCoreLevels)
	case len(o.ClusterPalette) == 0:
		return errors.Wrap(ErrInvalidArgument, "empty cluster palette")
	case o.Plot.String() == "unknown":
		return errors.Wrapf(ErrInvalidArgument, "plot option %d", o.Plot)
	case len(o.CorrelationDegrees) == 0:
		return errors.Wrap(ErrInvalidArgument, "no correlation degree types")
	}
	for _, dt := range o.CorrelationDegrees {
		if dt.String() == "unknown" {
			return errors.Wrapf(ErrInvalidArgument, "correlation degree type %d", dt)
		}
	}

	return nil
}

// clusterColor picks the palette entry of the i-th community.
func (o Options) clusterColor(i int) string {
	if i >= len(o.ClusterPalette) || i >= o.GNSteps {
		return o.ClusterPalette[len(o.ClusterPalette)-1]
	}

	return o.ClusterPalette[i]
}
