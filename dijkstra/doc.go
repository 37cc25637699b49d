// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values, single-source and all-pairs.
//
// Edges are followed in their direction on directed graphs and both ways on
// undirected ones. Parallel edges are all relaxed, so the cheapest one wins.
// Self-loops never improve a distance.
//
// Complexity:
//
//   - Dijkstra: O((V + E) log V) time, O(V + E) space (lazy decrease-key).
//   - AllPairs: V runs of Dijkstra.
//
// Errors (sentinel):
//
//   - ErrEmptySource     if the source ID is empty.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrUnweightedGraph if the graph does not carry weights.
//   - ErrVertexNotFound  if the source is not a vertex of the graph.
//   - ErrNegativeWeight  if any edge weighs less than zero.
//
// Both entry points stop with the context error once their context is
// cancelled.
package dijkstra
