// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/distribution"
	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// Published fits of the NOC degree distributions.
var (
	NOCOutFit = distribution.Fit{Alpha: 2.0935, XMin: 1}
	NOCInFit  = distribution.Fit{Alpha: 3.0436, XMin: 3}
)

// exponentXMin is the tail start used by fixed-k_min fits.
const exponentXMin = 2

// DegreeHistogram counts chemicals per degree.
type DegreeHistogram struct {
	Degree string              `json:"degree" yaml:"degree"`
	Counts distribution.Series `json:"counts" yaml:"counts"`
	// Reference is the NOC histogram of the same degree type, if compared.
	Reference *distribution.Series `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// ReferencePDF is a NOC degree density with its published fit.
type ReferencePDF struct {
	Fit       distribution.Fit    `json:"fit" yaml:"fit"`
	Empirical distribution.Series `json:"empirical" yaml:"empirical"`
	Discrete  distribution.Series `json:"discrete" yaml:"discrete"`
}

// DegreeFit is a power-law fit of one degree sequence.
type DegreeFit struct {
	Degree    string              `json:"degree" yaml:"degree"`
	Fit       distribution.Fit    `json:"fit" yaml:"fit"`
	Empirical distribution.Series `json:"empirical" yaml:"empirical"`
	Fitted    distribution.Series `json:"fitted" yaml:"fitted"`
	Reference *ReferencePDF       `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// DegreeDistributionResult holds what the chosen PlotOption produces.
type DegreeDistributionResult struct {
	Plot       string            `json:"plot" yaml:"plot"`
	Histograms []DegreeHistogram `json:"histograms,omitempty" yaml:"histograms,omitempty"`
	Fits       []DegreeFit       `json:"fits,omitempty" yaml:"fits,omitempty"`
	// Skipped names degree types with too little data to fit.
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// DegreeDistribution analyses the degree distribution of the directed,
// index-keyed network of t according to Options.Plot.
func (a *Analyzer) DegreeDistribution(t *reaction.Table) (*Outcome, error) {
	g, _, err := a.directed(t, false)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: degree distribution graph")
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	a.logSize(DegreeDistribution, g)

	res := &DegreeDistributionResult{Plot: a.opts.Plot.String()}
	switch a.opts.Plot {
	case PlotBar, PlotScatter:
		for _, dt := range []DegreeType{metrics.InDegree, metrics.OutDegree, metrics.TotalDegree} {
			res.Histograms = append(res.Histograms, histogramOf(g, dt))
		}
	case PlotScatterComparison:
		refs := map[DegreeType]string{metrics.OutDegree: distribution.RefOutDegree, metrics.InDegree: distribution.RefInDegree}
		for _, dt := range []DegreeType{metrics.OutDegree, metrics.InDegree} {
			h := histogramOf(g, dt)
			if a.opts.ReferenceDir != "" {
				ref, err := distribution.LoadReference(a.opts.ReferenceDir, refs[dt])
				if err != nil {
					return nil, errors.Wrap(err, "analysis: NOC degree histogram")
				}
				h.Reference = &ref
			}
			res.Histograms = append(res.Histograms, h)
		}
	case PlotExponent:
		for _, dt := range []DegreeType{metrics.TotalDegree, metrics.InDegree, metrics.OutDegree} {
			if err := a.fit(g, dt, exponentXMin, nil, res); err != nil {
				return nil, err
			}
		}
	case PlotDistributionComparison:
		out, in, err := a.referencePDFs()
		if err != nil {
			return nil, err
		}
		if err := a.fit(g, metrics.OutDegree, exponentXMin, out, res); err != nil {
			return nil, err
		}
		if err := a.fit(g, metrics.InDegree, 0, in, res); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "plot option %d", a.opts.Plot)
	}

	out := &Outcome{Kind: DegreeDistribution, Result: res}
	s := report.NewSummary("Degree distribution").Fact("plot", res.Plot)
	for _, h := range res.Histograms {
		s.Fact(h.Degree+"-degree classes", h.Counts.Len())
	}
	if len(res.Fits) > 0 {
		rows := make([][]string, 0, len(res.Fits))
		for _, f := range res.Fits {
			rows = append(rows, []string{
				f.Degree,
				fmt.Sprintf("%.4f", f.Fit.Alpha),
				fmt.Sprint(f.Fit.XMin),
				fmt.Sprintf("%.4f", f.Fit.KS),
				fmt.Sprint(f.Fit.N),
			})
		}
		s.Section("Power-law fits").Table([]string{"degree", "alpha", "k_min", "KS", "n"}, rows)
	}
	out.Summary = s

	return out, nil
}

func histogramOf(g *core.Graph, dt DegreeType) DegreeHistogram {
	return DegreeHistogram{Degree: dt.String(), Counts: distribution.Histogram(metrics.Degrees(g, dt))}
}

// fit appends a power-law fit of the dt degrees of g to res. Sequences too
// short to fit are recorded in res.Skipped.
func (a *Analyzer) fit(g *core.Graph, dt DegreeType, xmin int, ref *ReferencePDF, res *DegreeDistributionResult) error {
	data := metrics.Degrees(g, dt)
	f, err := distribution.FitPowerLaw(data, xmin)
	if errors.Is(err, distribution.ErrNotEnoughData) {
		a.log.Warn("degree sequence too short to fit", zap.Stringer("degree", dt), zap.Error(err))
		res.Skipped = append(res.Skipped, dt.String())
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "analysis: fit %s-degree", dt)
	}

	emp := distribution.EmpiricalPDF(data)
	kmax := 0
	if n := emp.Len(); n > 0 {
		kmax = int(emp.X[n-1])
	}
	res.Fits = append(res.Fits, DegreeFit{
		Degree:    dt.String(),
		Fit:       f,
		Empirical: emp,
		Fitted:    f.Curve(kmax),
		Reference: ref,
	})
	a.log.Info("power-law fit",
		zap.Stringer("degree", dt),
		zap.Float64("exponent", f.Alpha),
		zap.Int("k_min", f.XMin),
		zap.Float64("ks", f.KS),
	)

	return nil
}

// referencePDFs loads the NOC out- and in-degree densities, or returns nils
// when no reference directory is configured.
func (a *Analyzer) referencePDFs() (*ReferencePDF, *ReferencePDF, error) {
	if a.opts.ReferenceDir == "" {
		return nil, nil, nil
	}
	load := func(fit distribution.Fit, empirical, discrete string) (*ReferencePDF, error) {
		emp, err := distribution.LoadReference(a.opts.ReferenceDir, empirical)
		if err != nil {
			return nil, err
		}
		dis, err := distribution.LoadReference(a.opts.ReferenceDir, discrete)
		if err != nil {
			return nil, err
		}
		return &ReferencePDF{Fit: fit, Empirical: emp, Discrete: dis}, nil
	}

	out, err := load(NOCOutFit, distribution.RefOutPDFEmpirical, distribution.RefOutPDFDiscrete)
	if err != nil {
		return nil, nil, errors.Wrap(err, "analysis: NOC out-degree density")
	}
	in, err := load(NOCInFit, distribution.RefInPDFEmpirical, distribution.RefInPDFDiscrete)
	if err != nil {
		return nil, nil, errors.Wrap(err, "analysis: NOC in-degree density")
	}

	return out, in, nil
}
