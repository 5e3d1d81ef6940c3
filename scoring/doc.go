// Package scoring ranks maximal cliques by a composite quality metric and
// picks the best one.
//
//	Score = EdgeWeight·(1 − edgeMean) + NodeWeight·nodeMean
//
// edgeMean is the mean |r| over the clique's internal edges and nodeMean the
// mean goodness-of-fit of its members. Both weights default to 1. A clique
// with no internal edges (a single node, say) takes edgeMean = 0 so that it
// stays comparable with the rest; an empty clique scores 0 for both means.
//
// FindBest scans once, keeps the first maximum on ties, and returns
// ErrNoCandidates for an empty collection.
package scoring
