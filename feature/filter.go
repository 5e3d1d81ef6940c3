package feature

import (
	"math"
	"sort"
)

// FilterNodes keeps the nodes whose Score is strictly greater than the
// threshold, ordered ascending by score (ties by ID), and truncated to
// MaxNodes entries. The least extreme qualifying features survive the cap.
// The input slice is left untouched.
func FilterNodes(nodes []Node, opts ...Option) []Node {
	o := gatherOptions(opts)

	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Score > o.ScoreThreshold {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > o.MaxNodes {
		out = out[:o.MaxNodes]
	}

	return out
}

// BuildEdges returns one Edge per unordered pair of nodes, in (i<j) input
// order, weighted by corr(nodes[i].Values, nodes[j].Values). A NaN
// correlation is undefined and produces no edge for that pair. The first
// correlation error aborts the build.
func BuildEdges(nodes []Node, corr CorrelationFunc) ([]Edge, error) {
	if corr == nil {
		return nil, ErrNilCorrelation
	}

	seen := make(map[ID]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n.ID]; dup {
			return nil, wrapID(ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	edges := make([]Edge, 0, len(nodes)*(len(nodes)-1)/2+1)
	var i, j int
	for i = 0; i < len(nodes); i++ {
		for j = i + 1; j < len(nodes); j++ {
			r, err := corr(nodes[i].Values, nodes[j].Values)
			if err != nil {
				return nil, wrapPair(err, nodes[i].ID, nodes[j].ID)
			}
			if math.IsNaN(r) {
				continue
			}
			e, err := NewEdge(nodes[i].ID, nodes[j].ID, r)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}

	return edges, nil
}

// FilterEdges sorts a copy of edges descending by |Weight| (stable), drops
// the first floor(DropFraction×len) of them, and keeps only the remainder
// with |Weight| <= MaxAbsWeight.
func FilterEdges(edges []Edge, opts ...Option) []Edge {
	o := gatherOptions(opts)

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Abs() > sorted[j].Abs()
	})

	drop := DropCount(len(sorted), o.DropFraction)
	out := make([]Edge, 0, len(sorted)-drop)
	for _, e := range sorted[drop:] {
		if e.Abs() <= o.MaxAbsWeight {
			out = append(out, e)
		}
	}

	return out
}

// DropCount is the number of strongest edges FilterEdges discards from n
// edges: floor(fraction × n), clamped to [0, n].
func DropCount(n int, fraction float64) int {
	if n <= 0 || fraction <= 0 {
		return 0
	}
	d := int(math.Floor(fraction * float64(n)))
	if d > n {
		d = n
	}

	return d
}
