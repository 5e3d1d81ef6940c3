// Package feature defines the scored feature nodes and correlation edges that
// make up a correlated-feature graph, and the filters that shape that graph
// before clique search.
//
// What:
//
//   - Node: a value series with an integer identity and a goodness-of-fit
//     score. Equality is by ID alone.
//   - Edge: an unordered pair of distinct node IDs and a correlation weight.
//   - BuildNodes: scores each series and wraps it as a Node (ID = index).
//   - FilterNodes: keeps nodes scoring strictly above a threshold, ascending
//     by score, capped at a maximum count (lowest scores win).
//   - BuildEdges: one edge per unordered pair of nodes via a CorrelationFunc;
//     a NaN (undefined) correlation yields no edge.
//   - FilterEdges: drops the strongest floor(fraction×len) edges by |r| and
//     then every edge whose |r| exceeds an upper bound.
//
// Defaults:
//
//	DefaultScoreThreshold = 0.1
//	DefaultMaxNodes       = 19
//	DefaultDropFraction   = 0.099
//	DefaultMaxAbsWeight   = 0.9
//
// Complexity:
//
//   - FilterNodes: O(n log n)
//   - BuildEdges:  O(n² · m) for n nodes with m samples each
//   - FilterEdges: O(e log e)
//
// Errors:
//
//   - ErrNegativeID       node identity is negative
//   - ErrSelfEdge         edge endpoints are the same ID
//   - ErrBadWeight        edge weight is NaN or outside [-1,1]
//   - ErrNilCorrelation   BuildEdges called without a CorrelationFunc
//   - ErrNilGoodness      BuildNodes called without a GoodnessFunc
//   - ErrDuplicateID      BuildEdges saw the same ID twice
package feature
