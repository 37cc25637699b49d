// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/pkg/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. A returned error aborts BFS.
	OnVisit func(id string, depth int) error

	// IgnoreDirection explores predecessors as well as successors.
	IgnoreDirection bool
}

// DefaultOptions returns background context, a no-op visit hook and
// direction-respecting traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithIgnoreDirection treats every edge as two-way.
func WithIgnoreDirection() Option {
	return func(o *Options) { o.IgnoreDirection = true }
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []string
	// Depth maps a vertex to its hop distance from the start.
	Depth map[string]int
}
