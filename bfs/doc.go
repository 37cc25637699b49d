// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Graph and the
// connectivity queries built on it.
//
// BFS explores vertices in increasing hop distance from a start vertex; edge
// weights are ignored. Traversal follows edge direction unless
// WithIgnoreDirection is given, in which case predecessors are explored too.
//
// Components and LargestComponent partition a graph into connected
// components with direction ignored (weak connectivity for directed graphs).
//
// Determinism:
//   - neighbors are expanded in ascending ID order;
//   - components are ordered by size descending, then by smallest member.
//
// Complexity: O(V + E) time, O(V) memory per traversal.
package bfs
