// SPDX-License-Identifier: MIT

// Package adjacency provides the dense, symmetric edge index that the clique
// enumerator consults on every extension test.
//
// Purpose:
//   - Map any pair of feature IDs to the edge joining them, or to "no edge", in O(1).
//   - Keep presence explicit: a zero-correlation edge is still an edge.
//   - Stay read-only after construction so concurrent readers need no locks.
//
// Layout:
//   - (maxID+1)×(maxID+1) row-major buffers: offset = i*size + j.
//   - Every edge is written at [a][b] and [b][a]; the diagonal is always empty.
//
// Complexity quicksheet:
//   - New: O(size² + e); Has/Edge/Weight: O(1); Neighbors/Degree: O(size).
//
// Errors:
//   - ErrNegativeSize  maxID < 0
//   - ErrUnknownID     an edge endpoint lies outside [0, maxID]
//   - ErrSelfLoop      an edge joins an ID to itself
package adjacency
