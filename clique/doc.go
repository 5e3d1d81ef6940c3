// Package clique enumerates every maximal clique of a small correlated-feature
// graph with a Bron–Kerbosch search (no pivoting).
//
// What:
//
//   - Enumerate(adj, nodes, opts...): all maximal cliques among nodes, where
//     adj.Has(i, j) decides adjacency. Each maximal clique is reported once.
//   - IsClique / IsMaximal: validators for a reported Subgraph.
//
// How:
//
// Every search frame owns three node sets: the current clique, the remaining
// candidates that could still extend it, and the excluded nodes already
// explored as extensions from this frame. A frame with nothing remaining and
// nothing excluded holds a maximal clique. Otherwise each remaining node v is
// tried in turn: the child frame receives fresh copies of remaining and
// excluded, both cut down to v's neighbors, and after the child returns v
// moves from remaining to excluded in the current frame only.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked on entry to every frame
//   - WithWorkers(n)       fan the root's branches out over n goroutines
//   - WithMaxCliques(n)    abort with ErrTooManyCliques past n results
//   - WithOnClique(fn)     hook invoked for each maximal clique as it is found
//
// With no nodes the search reports no cliques: the empty set is never emitted.
//
// Complexity:
//
//   - Time:   O(3^(n/3)) maximal cliques in the worst case, each costing O(n²)
//     adjacency tests to reach; bounded in practice by the node cap upstream.
//   - Memory: O(n²) for the live frames along one search path.
//
// Errors:
//
//   - ErrNilAdjacency     adj is nil
//   - ErrDuplicateNode    two nodes share an ID
//   - ErrTooManyCliques   the WithMaxCliques guard tripped
//   - context errors      ctx canceled or past its deadline
//   - hook errors         returned from OnClique, wrapped
package clique
