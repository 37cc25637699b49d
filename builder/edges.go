// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/reaction"
)

// Edge is a weighted reactant → product relation keyed per KeyMode.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// EdgeSet is the final edge collection of one extraction.
type EdgeSet struct {
	// Edges in first-generation order.
	Edges []Edge

	Mode   KeyMode
	Policy EdgePolicy

	// DefaultedWeights reports that the table had no step column and every
	// edge weighs 1.
	DefaultedWeights bool
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int { return len(s.Edges) }

type endpoints struct{ from, to string }

// ExtractEdges expands every record of t into reactant × product edges.
//
// Steps:
//  1. Without a step column every record weighs 1 (logged at info level).
//  2. Each record contributes the cross product of its trimmed reactant and
//     product tokens, all carrying the record's weight.
//  3. KeepParallel emits each distinct (from, to, weight) triple once;
//     CollapseMinWeight emits one edge per (from, to) with the minimum weight.
//
// Self-loops are kept. Returns ErrNilTable or ErrNilIndex for nil inputs,
// ErrInvalidWeight when a table with a step column holds a count below 1,
// and ErrUnknownChemical when a token is missing from idx.
//
// Complexity: O(Σ |reactants|·|products|).
func ExtractEdges(t *reaction.Table, idx *ChemicalIndex, opts ...BuilderOption) (*EdgeSet, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if idx == nil {
		return nil, ErrNilIndex
	}
	cfg := newBuilderConfig(opts...)

	set := &EdgeSet{Mode: cfg.keyMode, Policy: cfg.policy, DefaultedWeights: !t.HasSteps}
	if set.DefaultedWeights {
		cfg.logger.Info("number of reaction steps not given, defaulting edge weights",
			zap.Int64("weight", defaultWeight))
	}

	var (
		triples = make(map[Edge]struct{})
		minimum = make(map[endpoints]int) // pair → position in set.Edges
	)
	for row, rec := range t.Records {
		w := defaultWeight
		if t.HasSteps {
			if rec.Steps < 1 {
				return nil, errors.Wrapf(ErrInvalidWeight, "record %d: %d", row, rec.Steps)
			}
			w = rec.Steps
		}
		froms, err := keys(idx, reaction.Split(rec.Reactant), cfg.keyMode)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d reactant", row)
		}
		tos, err := keys(idx, reaction.Split(rec.Product), cfg.keyMode)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d product", row)
		}

		for _, from := range froms {
			for _, to := range tos {
				e := Edge{From: from, To: to, Weight: w}
				switch cfg.policy {
				case KeepParallel:
					if _, seen := triples[e]; seen {
						continue
					}
					triples[e] = struct{}{}
					set.Edges = append(set.Edges, e)
				case CollapseMinWeight:
					pair := endpoints{from, to}
					if at, seen := minimum[pair]; seen {
						if w < set.Edges[at].Weight {
							set.Edges[at].Weight = w
						}
						continue
					}
					minimum[pair] = len(set.Edges)
					set.Edges = append(set.Edges, e)
				}
			}
		}
	}

	return set, nil
}

func keys(idx *ChemicalIndex, names []string, mode KeyMode) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		k, err := idx.Key(name, mode)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", name)
		}
		out[i] = k
	}

	return out, nil
}
