package clique_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrclique/adjacency"
	"github.com/katalvlaran/corrclique/clique"
	"github.com/katalvlaran/corrclique/feature"
)

// nodesN returns nodes with IDs 0..n-1.
func nodesN(n int) []feature.Node {
	out := make([]feature.Node, n)
	for i := range out {
		out[i] = feature.Node{ID: feature.ID(i), Score: 0.5}
	}

	return out
}

// buildIndex creates an index over IDs 0..n-1 with the given undirected pairs.
func buildIndex(t testing.TB, n int, pairs ...[2]int) *adjacency.Index {
	t.Helper()
	edges := make([]feature.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, feature.Edge{A: feature.ID(p[0]), B: feature.ID(p[1]), Weight: 0.5})
	}
	idx, err := adjacency.New(edges, feature.ID(n-1))
	require.NoError(t, err)

	return idx
}

// randomIndex draws a G(n,p) graph from a seeded source.
func randomIndex(t testing.TB, rng *rand.Rand, n int, p float64) *adjacency.Index {
	t.Helper()
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return buildIndex(t, n, pairs...)
}

// keys returns the canonical keys of sgs, sorted.
func keys(sgs []clique.Subgraph) []string {
	out := make([]string, len(sgs))
	for i, sg := range sgs {
		out[i] = sg.Key()
	}
	sort.Strings(out)

	return out
}

// bruteForce lists the maximal cliques by checking every subset of nodes.
func bruteForce(adj clique.Adjacency, nodes []feature.Node) []string {
	var out []string
	total := 1 << len(nodes)
	for mask := 1; mask < total; mask++ {
		var sg clique.Subgraph
		for i := range nodes {
			if mask&(1<<i) != 0 {
				sg = append(sg, nodes[i])
			}
		}
		if clique.IsMaximal(adj, sg, nodes) {
			out = append(out, sg.Key())
		}
	}
	sort.Strings(out)

	return out
}
