// SPDX-License-Identifier: MIT

// Package metrics computes node-level network statistics of reaction graphs.
//
// Library algorithms run on gonum graphs obtained through FromCore, which
// maps chemical vertex IDs onto dense int64 node IDs (sorted vertex order).
// Hand-written metrics (clustering, degree connectivity, degree ranking) read
// the core.Graph directly.
//
// Conventions:
//   - betweenness is normalized by (n-1)(n-2) for directed and undirected
//     graphs alike, so values stay comparable across graph kinds;
//   - every vertex of the input appears in the output, zero scores included;
//   - rankings sort by score descending, ties by chemical name ascending.
package metrics
