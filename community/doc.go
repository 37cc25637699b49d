// SPDX-License-Identifier: MIT

// Package community finds dense groups of chemicals: k-core shells and
// Girvan–Newman partitions, plus the scores used to compare partitions.
//
// All decompositions run on the undirected, loop-free view of a graph
// provided by metrics.FromCore. Scores that depend on edge direction
// (Performance) read the core.Graph directly.
package community
