// SPDX-License-Identifier: MIT

// Package analysis runs the network analyses of a biorefinery reaction
// dataset.
//
// Each Kind names one analysis. An Analyzer builds the graph the analysis
// needs from a reaction.Table, measures it with the metrics, community and
// distribution packages, and returns an Outcome: a serializable result, the
// decorated networks to draw, and a Markdown summary. A Runner adds file
// ingestion in front and a report.Writer behind.
//
// Graph used per kind:
//
//	graph_fragmentation            undirected, chemical names
//	merge_and_graph_fragmentation  same, on the main table plus the merge table
//	important_molecules            directed, chemical names
//	degree_distribution            directed, chemical indices
//	graph_property                 directed names; undirected largest component
//	graph_clusters                 undirected without loops; directed largest component
//	degree_correlation             directed, chemical indices
//	central_point_dominance        directed, chemical names
//	dataset_comparison             chemical sets of two tables; undirected union
//
// All configuration travels in Options; there is no package state.
package analysis
