package clique

import "github.com/katalvlaran/corrclique/feature"

// IsClique reports whether every pair of distinct nodes in sg is adjacent.
// Empty and single-node subgraphs are cliques.
func IsClique(adj Adjacency, sg Subgraph) bool {
	for i := 0; i < len(sg); i++ {
		for j := i + 1; j < len(sg); j++ {
			if !adj.Has(sg[i].ID, sg[j].ID) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether sg is a clique that no node of universe outside
// sg could extend.
func IsMaximal(adj Adjacency, sg Subgraph, universe []feature.Node) bool {
	if !IsClique(adj, sg) {
		return false
	}

	var n, m feature.Node
	for _, n = range universe {
		if sg.Contains(n.ID) {
			continue
		}
		extends := true
		for _, m = range sg {
			if !adj.Has(n.ID, m.ID) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}

	return true
}
