// SPDX-License-Identifier: MIT

// Package reactnet analyses chemical reaction networks of biorefinery
// processes.
//
// A reaction table (reactant, product, optional number of steps) becomes a
// directed or undirected graph of chemicals. The analyses then measure it:
// fragmentation into components, important molecules by betweenness and
// degree, degree distributions against the Network of Organic Chemistry,
// path lengths and clustering, k-cores and Girvan-Newman communities,
// degree correlation, central point dominance and the overlap of two
// datasets.
//
// Layout:
//
//	reaction/     TSV ingestion, preprocessing and merging of reaction tables
//	builder/      chemical index, edge extraction and graph assembly
//	core/         the Graph type shared by every algorithm
//	bfs/          breadth-first reachability and connected components
//	dijkstra/     single-source and all-pairs shortest paths
//	metrics/      centralities, clustering and degree connectivity (gonum)
//	community/    k-core decomposition and Girvan-Newman splitting
//	distribution/ histograms, power-law fits and NOC reference data
//	report/       JSON/YAML results, vis-network pages and summaries
//	analysis/     the analyses and the runner that writes their artifacts
//	cmd/reactnet  command-line front end
//
// Quick start:
//
//	reactnet kinds
//	reactnet run important_molecules --input resources/reaction_data.tsv
package reactnet
