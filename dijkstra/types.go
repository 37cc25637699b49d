// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	ErrEmptySource     = errors.New("dijkstra: source vertex ID is empty")
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")
	ErrVertexNotFound  = errors.New("dijkstra: source vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Source is the starting vertex ID.
	Source string
	// Ctx aborts the search when cancelled.
	Ctx context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext sets a context checked before every vertex is settled.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options for source under a background context.
func DefaultOptions(source string) Options {
	return Options{Source: source, Ctx: context.Background()}
}
