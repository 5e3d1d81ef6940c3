package scoring

import (
	"errors"
	"math"

	"github.com/katalvlaran/corrclique/feature"
)

// ErrNoCandidates is returned by FindBest when there is nothing to choose from.
var ErrNoCandidates = errors.New("scoring: no candidate subgraphs")

// EdgeLookup returns the edge joining two features, if any.
// *adjacency.Index satisfies it.
type EdgeLookup interface {
	Edge(i, j feature.ID) (feature.Edge, bool)
}

// Breakdown is the score of one subgraph together with its parts.
type Breakdown struct {
	EdgeMean  float64 // mean |r| over internal edges, 0 without any
	EdgeCount int     // number of internal edges
	NodeMean  float64 // mean goodness-of-fit of the members
	Score     float64
}

// Option configures the scorer.
type Option func(*Options)

// Options holds the term weights.
type Options struct {
	EdgeWeight float64
	NodeWeight float64
}

// DefaultOptions weighs both terms equally.
func DefaultOptions() Options {
	return Options{EdgeWeight: 1, NodeWeight: 1}
}

// WithEdgeWeight scales the (1 − edgeMean) term. Negative or non-finite values are ignored.
func WithEdgeWeight(w float64) Option {
	return func(o *Options) {
		if validWeight(w) {
			o.EdgeWeight = w
		}
	}
}

// WithNodeWeight scales the nodeMean term. Negative or non-finite values are ignored.
func WithNodeWeight(w float64) Option {
	return func(o *Options) {
		if validWeight(w) {
			o.NodeWeight = w
		}
	}
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
