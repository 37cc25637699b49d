// SPDX-License-Identifier: MIT

package analysis

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// Inputs locates the reaction tables.
type Inputs struct {
	// Main is the dataset every analysis reads.
	Main string
	// Merge is appended to Main by merge_and_graph_fragmentation.
	Merge string
	// Compare is the second dataset of dataset_comparison.
	Compare string
}

// Runner reads tables, runs one analysis and writes its artifacts.
type Runner struct {
	in       Inputs
	analyzer *Analyzer
	writer   *report.Writer
	log      *zap.Logger
}

// NewRunner wires an Analyzer over opts to w.
func NewRunner(in Inputs, opts Options, w *report.Writer, log *zap.Logger) (*Runner, error) {
	if w == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil report writer")
	}
	if log == nil {
		log = zap.NewNop()
	}
	a, err := NewAnalyzer(opts, log)
	if err != nil {
		return nil, err
	}

	return &Runner{in: in, analyzer: a, writer: w, log: log}, nil
}

// Run executes k and writes its result, pages and summary. The returned
// paths list every written file.
//
// Steps:
//  1. Read Inputs.Main with the columns k needs and preprocess it.
//  2. Read the merge or comparison table when k needs one.
//  3. Run the analysis.
//  4. Write result, pages and summary through the report writer.
func (r *Runner) Run(ctx context.Context, k Kind) (*Outcome, []string, error) {
	log := r.log.With(zap.Stringer("analysis", k), zap.String("run_id", r.writer.RunID()))
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	base, err := r.read(log, r.in.Main, k.Weighted())
	if err != nil {
		return nil, nil, err
	}

	out, err := r.dispatch(ctx, log, k, base)
	if err != nil {
		return nil, nil, err
	}
	out.Kind = k
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	paths, err := r.persist(out)
	if err != nil {
		return nil, nil, err
	}
	log.Info("analysis finished", zap.Int("artifacts", len(paths)))

	return out, paths, nil
}

func (r *Runner) dispatch(ctx context.Context, log *zap.Logger, k Kind, base *reaction.Table) (*Outcome, error) {
	switch k {
	case GraphFragmentation:
		return r.analyzer.Fragmentation(ctx, base, FragmentationPage)
	case MergeAndGraphFragmentation:
		extra, err := r.read(log, r.in.Merge, false)
		if err != nil {
			return nil, err
		}
		return r.analyzer.Fragmentation(ctx, reaction.Merge(base, extra), MergedFragmentationPage)
	case ImportantMolecules:
		return r.analyzer.ImportantMolecules(base)
	case DegreeDistribution:
		return r.analyzer.DegreeDistribution(base)
	case GraphProperty:
		return r.analyzer.GraphProperty(ctx, base)
	case GraphClusters:
		return r.analyzer.GraphClusters(ctx, base)
	case DegreeCorrelation:
		return r.analyzer.DegreeCorrelation(base)
	case CentralPointDominance:
		return r.analyzer.CentralPointDominance(base)
	case DatasetComparison:
		other, err := r.read(log, r.in.Compare, false)
		if err != nil {
			return nil, err
		}
		return r.analyzer.DatasetComparison(base, other)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "analysis %d", k)
	}
}

// read loads and preprocesses one table.
func (r *Runner) read(log *zap.Logger, path string, weighted bool) (*reaction.Table, error) {
	if path == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "input path is empty")
	}
	t, err := reaction.ReadFile(path, reaction.ColumnsFor(weighted)...)
	if err != nil {
		return nil, err
	}
	log.Info("reaction table read",
		zap.String("path", path),
		zap.Int("records", t.Len()),
		zap.Int("dropped", t.Dropped),
		zap.Bool("steps", t.HasSteps),
	)

	return reaction.Preprocess(t), nil
}

func (r *Runner) persist(out *Outcome) ([]string, error) {
	var paths []string
	p, err := r.writer.WriteResult(out.Kind.String(), out.Result)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)
	for _, page := range out.Pages {
		if p, err = r.writer.WriteNetwork(page.Name, page.Network); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if out.Summary != nil {
		if p, err = r.writer.WriteSummary(out.Kind.String()+"_summary", out.Summary); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}
