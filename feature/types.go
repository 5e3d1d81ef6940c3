package feature

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for feature construction and filtering.
var (
	// ErrNegativeID indicates a node was created with a negative identity.
	ErrNegativeID = errors.New("feature: negative node id")

	// ErrSelfEdge indicates an edge whose endpoints are the same node.
	ErrSelfEdge = errors.New("feature: edge endpoints must be distinct")

	// ErrBadWeight indicates an edge weight that is NaN or outside [-1,1].
	ErrBadWeight = errors.New("feature: edge weight must be in [-1,1]")

	// ErrNilCorrelation indicates BuildEdges was called without a correlation function.
	ErrNilCorrelation = errors.New("feature: correlation function is nil")

	// ErrNilGoodness indicates BuildNodes was called without a scoring function.
	ErrNilGoodness = errors.New("feature: goodness-of-fit function is nil")

	// ErrDuplicateID indicates two nodes with the same identity were passed to BuildEdges.
	ErrDuplicateID = errors.New("feature: duplicate node id")
)

// Defaults for node and edge filtering.
const (
	DefaultScoreThreshold = 0.1
	DefaultMaxNodes       = 19
	DefaultDropFraction   = 0.099
	DefaultMaxAbsWeight   = 0.9
)

// ID identifies a feature (its column index within the loaded range).
type ID int

// Node is one feature: its identity, its value series and its
// goodness-of-fit score. Nodes are immutable once built.
type Node struct {
	ID     ID
	Values []float64
	Score  float64
}

// NewNode returns a Node owning a private copy of values.
func NewNode(id ID, values []float64, score float64) (Node, error) {
	if id < 0 {
		return Node{}, fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return Node{ID: id, Values: cp, Score: score}, nil
}

// Equal reports whether n and o are the same feature. Only IDs are compared.
func (n Node) Equal(o Node) bool { return n.ID == o.ID }

func (n Node) String() string { return fmt.Sprintf("%d", n.ID) }

// Edge connects two distinct features with a correlation weight.
// The pair is unordered; A and B keep the order the edge was built in.
type Edge struct {
	A, B   ID
	Weight float64
}

// NewEdge validates the endpoints and weight and returns the Edge.
func NewEdge(a, b ID, weight float64) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("%w: %d", ErrSelfEdge, a)
	}
	if a < 0 || b < 0 {
		return Edge{}, fmt.Errorf("%w: (%d,%d)", ErrNegativeID, a, b)
	}
	if math.IsNaN(weight) || weight < -1 || weight > 1 {
		return Edge{}, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	return Edge{A: a, B: b, Weight: weight}, nil
}

// Abs returns |Weight|.
func (e Edge) Abs() float64 { return math.Abs(e.Weight) }

// Other returns the endpoint opposite id, and false if id is not an endpoint.
func (e Edge) Other(id ID) (ID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}

	return 0, false
}

func (e Edge) String() string { return fmt.Sprintf("%d-%d(%.4f)", e.A, e.B, e.Weight) }

// CorrelationFunc computes a correlation coefficient in [-1,1] between two series.
type CorrelationFunc func(a, b []float64) (float64, error)

// Option configures FilterNodes and FilterEdges.
type Option func(*Options)

// Options holds the filter thresholds. Use DefaultOptions and the WithX helpers.
type Options struct {
	// ScoreThreshold: nodes must score strictly above this value.
	ScoreThreshold float64

	// MaxNodes caps the retained node count; the lowest scores are kept.
	MaxNodes int

	// DropFraction is the share of strongest edges discarded, truncated toward zero.
	DropFraction float64

	// MaxAbsWeight is the largest |r| an edge may carry after the drop.
	MaxAbsWeight float64
}

// DefaultOptions returns the documented filter defaults.
func DefaultOptions() Options {
	return Options{
		ScoreThreshold: DefaultScoreThreshold,
		MaxNodes:       DefaultMaxNodes,
		DropFraction:   DefaultDropFraction,
		MaxAbsWeight:   DefaultMaxAbsWeight,
	}
}

// WithScoreThreshold sets the strict lower bound on node scores. NaN is ignored.
func WithScoreThreshold(t float64) Option {
	return func(o *Options) {
		if !math.IsNaN(t) {
			o.ScoreThreshold = t
		}
	}
}

// WithMaxNodes caps the number of retained nodes. Values < 1 are ignored.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// WithDropFraction sets the fraction of strongest edges to drop. Values outside [0,1) are ignored.
func WithDropFraction(f float64) Option {
	return func(o *Options) {
		if f >= 0 && f < 1 {
			o.DropFraction = f
		}
	}
}

// WithMaxAbsWeight sets the upper bound on |r|. Values outside [0,1] are ignored.
func WithMaxAbsWeight(w float64) Option {
	return func(o *Options) {
		if w >= 0 && w <= 1 {
			o.MaxAbsWeight = w
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
