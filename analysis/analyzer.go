// SPDX-License-Identifier: MIT

package analysis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/builder"
	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/reaction"
	"github.com/katalvlaran/reactnet/report"
)

// Page is one network to draw, stored as <Name>.html.
type Page struct {
	Name    string
	Network *report.Network
}

// Outcome is everything one analysis produced.
type Outcome struct {
	Kind    Kind
	Result  any
	Pages   []Page
	Summary *report.Summary
}

func (o *Outcome) addPage(name string, n *report.Network) {
	n.Title = name
	o.Pages = append(o.Pages, Page{Name: name, Network: n})
}

// Analyzer runs analyses on in-memory reaction tables.
type Analyzer struct {
	opts Options
	log  *zap.Logger
}

// NewAnalyzer validates opts and returns an Analyzer. A nil logger discards
// everything.
func NewAnalyzer(opts Options, log *zap.Logger) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{opts: opts, log: log}, nil
}

// Options returns the configuration in use.
func (a *Analyzer) Options() Options { return a.opts }

func (a *Analyzer) directed(t *reaction.Table, names bool) (*core.Graph, *builder.ChemicalIndex, error) {
	return builder.Directed(t, a.builderOptions(names)...)
}

func (a *Analyzer) undirected(t *reaction.Table, names bool) (*core.Graph, *builder.ChemicalIndex, error) {
	return builder.Undirected(t, a.builderOptions(names)...)
}

func (a *Analyzer) builderOptions(names bool) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithLogger(a.log)}
	if names {
		opts = append(opts, builder.WithChemicalNames())
	}

	return opts
}

// logSize reports the size of a freshly built graph.
func (a *Analyzer) logSize(k Kind, g *core.Graph) {
	a.log.Info("graph built",
		zap.Stringer("analysis", k),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("nodes", g.VertexCount()),
		zap.Bool("directed", g.Directed()),
	)
}
