// SPDX-License-Identifier: MIT

// Package builder turns reaction tables into weighted graphs.
//
// Construction runs in three stages:
//
//  1. ExtractChemicals assigns every distinct chemical a 1-based index in
//     first-seen order (all Reactant cells, then all Product cells).
//  2. ExtractEdges expands each record into the cross product of its
//     reactants and products, every pair inheriting the record's weight
//     (the number of reaction steps, 1 when the table has none).
//  3. Assemble materializes a core.Graph from the chemicals and edges.
//
// Edge policy:
//
//	KeepParallel       every generated (from, to, weight) triple is kept once;
//	                   directed graphs become multigraphs.
//	CollapseMinWeight  one edge per (from, to), carrying the minimum weight.
//
// Undirected graphs are always simple: edges whose unordered endpoints
// coincide (a→b and b→a included) collapse to the minimum weight whatever the
// policy. Self-loops are preserved; analyses strip them when they need to.
//
// Vertex keys follow the KeyMode: ByIndex uses the decimal index ("1", "2",
// ...), ByName the normalized chemical name.
//
// CountBy groups tuples by one field and is used for degree histograms.
package builder
