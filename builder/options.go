// SPDX-License-Identifier: MIT

package builder

import "go.uber.org/zap"

// KeyMode selects how chemicals are keyed in edges and graph vertices.
type KeyMode int

const (
	// ByIndex keys chemicals by their decimal 1-based index.
	ByIndex KeyMode = iota
	// ByName keys chemicals by their normalized name.
	ByName
)

// String implements fmt.Stringer.
func (m KeyMode) String() string {
	switch m {
	case ByIndex:
		return "index"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// EdgePolicy selects how edges sharing endpoints are collected.
type EdgePolicy int

const (
	// CollapseMinWeight keeps one edge per (from, to) with the minimum weight.
	CollapseMinWeight EdgePolicy = iota
	// KeepParallel keeps every distinct (from, to, weight) triple.
	KeepParallel
)

// String implements fmt.Stringer.
func (p EdgePolicy) String() string {
	switch p {
	case CollapseMinWeight:
		return "collapse-min-weight"
	case KeepParallel:
		return "keep-parallel"
	default:
		return "unknown"
	}
}

// defaultWeight is the edge weight used when a table carries no step counts.
const defaultWeight = int64(1)

// builderConfig aggregates all knobs used by the builder.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	keyMode KeyMode
	policy  EdgePolicy
	logger  *zap.Logger
}

// BuilderOption customizes ExtractEdges and the assembly helpers.
type BuilderOption func(*builderConfig)

// WithKeyMode selects index- or name-keyed vertices.
func WithKeyMode(m KeyMode) BuilderOption {
	return func(c *builderConfig) { c.keyMode = m }
}

// WithChemicalNames is shorthand for WithKeyMode(ByName).
func WithChemicalNames() BuilderOption {
	return WithKeyMode(ByName)
}

// WithPolicy selects the multi-edge policy.
func WithPolicy(p EdgePolicy) BuilderOption {
	return func(c *builderConfig) { c.policy = p }
}

// WithMultiEdges is shorthand for WithPolicy(KeepParallel).
func WithMultiEdges() BuilderOption {
	return WithPolicy(KeepParallel)
}

// WithLogger routes informational notes (chemical counts, defaulted weights).
// Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// newBuilderConfig applies options over the defaults: ByIndex keys,
// CollapseMinWeight, no-op logger. Later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		keyMode: ByIndex,
		policy:  CollapseMinWeight,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
