// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/corrclique/feature"
)

// Index is a dense symmetric lookup from (id, id) to the edge joining them.
//   - size is maxID+1; both buffers have size*size cells.
//   - present marks which cells carry an edge; edges holds the edge itself.
type Index struct {
	size    int
	present []bool
	edges   []feature.Edge
}

var _ fmt.Stringer = (*Index)(nil)

// New builds an Index sized (maxID+1)² holding every edge symmetrically.
// MAIN DESCRIPTION:
//   - Allocate "no edge" everywhere, then write each edge at [a][b] and [b][a].
//
// Behavior highlights:
//   - When two edges name the same pair, the later one wins.
//   - An empty edge list is legal and yields an index with no edges.
//
// Errors:
//   - ErrNegativeSize, ErrUnknownID, ErrSelfLoop.
//
// Complexity:
//   - Time O(size² + len(edges)), Space O(size²).
func New(edges []feature.Edge, maxID feature.ID) (*Index, error) {
	if maxID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, maxID)
	}
	size := int(maxID) + 1
	idx := &Index{
		size:    size,
		present: make([]bool, size*size),
		edges:   make([]feature.Edge, size*size),
	}

	var a, b int
	for _, e := range edges {
		a, b = int(e.A), int(e.B)
		if a == b {
			return nil, indexErrorf(a, b, ErrSelfLoop)
		}
		if !idx.inRange(a) || !idx.inRange(b) {
			return nil, indexErrorf(a, b, ErrUnknownID)
		}
		idx.present[a*size+b] = true
		idx.present[b*size+a] = true
		idx.edges[a*size+b] = e
		idx.edges[b*size+a] = e
	}

	return idx, nil
}

// Size returns the side length maxID+1.
func (x *Index) Size() int {
	if x == nil {
		return 0
	}

	return x.size
}

// Has reports whether an edge joins i and j. Out-of-range IDs have no edges.
func (x *Index) Has(i, j feature.ID) bool {
	off, ok := x.offset(i, j)
	return ok && x.present[off]
}

// Edge returns the edge joining i and j, if any.
func (x *Index) Edge(i, j feature.ID) (feature.Edge, bool) {
	off, ok := x.offset(i, j)
	if !ok || !x.present[off] {
		return feature.Edge{}, false
	}

	return x.edges[off], true
}

// Weight returns the correlation weight between i and j, or 0 without an edge.
// Use Has to tell a zero-weight edge from a missing one.
func (x *Index) Weight(i, j feature.ID) float64 {
	e, ok := x.Edge(i, j)
	if !ok {
		return 0
	}

	return e.Weight
}

// Neighbors returns the IDs adjacent to i in ascending order.
func (x *Index) Neighbors(i feature.ID) []feature.ID {
	if !x.inRange(int(i)) {
		return nil
	}
	var out []feature.ID
	base := int(i) * x.size
	for j := 0; j < x.size; j++ {
		if x.present[base+j] {
			out = append(out, feature.ID(j))
		}
	}

	return out
}

// Degree returns the number of edges incident to i.
func (x *Index) Degree(i feature.ID) int {
	return len(x.Neighbors(i))
}

// EdgeCount returns the number of distinct undirected edges stored.
func (x *Index) EdgeCount() int {
	n := 0
	if x == nil {
		return 0
	}
	for i := 0; i < x.size; i++ {
		for j := i + 1; j < x.size; j++ {
			if x.present[i*x.size+j] {
				n++
			}
		}
	}

	return n
}

// String renders the weight matrix, "." marking absent edges.
func (x *Index) String() string {
	var sb strings.Builder
	size := x.Size()
	for i := 0; i < size; i++ {
		sb.WriteString("[")
		for j := 0; j < size; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if x.present[i*size+j] {
				fmt.Fprintf(&sb, "%.3f", x.edges[i*size+j].Weight)
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func (x *Index) inRange(i int) bool { return x != nil && i >= 0 && i < x.size }

func (x *Index) offset(i, j feature.ID) (int, bool) {
	if !x.inRange(int(i)) || !x.inRange(int(j)) {
		return 0, false
	}

	return int(i)*x.size + int(j), true
}
