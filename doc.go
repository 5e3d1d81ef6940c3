// Package corrclique finds groups of features in a table that are both
// tightly correlated with each other and distinctly distributed.
//
// A run scores every feature with a one-sample Kolmogorov–Smirnov statistic,
// keeps the mildly deviant ones, links pairs whose correlation sits in a
// moderate band, enumerates every maximal clique of the resulting graph and
// picks the clique with the best composite score.
//
// Packages:
//
//	feature/   — Node and Edge types, node filter, edge builder and filter
//	stats/     — goodness-of-fit (KS vs. Kolmogorov) and Pearson correlation
//	adjacency/ — dense symmetric (id, id) → edge index
//	clique/    — Bron–Kerbosch maximal-clique enumeration, optional fan-out
//	scoring/   — composite subgraph score, best-subgraph selection, ranking
//	dataset/   — CSV loading of a column range with labels
//	config/    — run parameters, YAML loading and validation
//	pipeline/  — the end-to-end pass with structured logging
//	cmd/corrclique — command-line front end
//
// Quick ASCII example of a clique search input:
//
//	0───1
//	 \ /
//	  2───3───4
//
// has maximal cliques {0,1,2}, {2,3} and {3,4}.
//
//	go install github.com/katalvlaran/corrclique/cmd/corrclique@latest
package corrclique
