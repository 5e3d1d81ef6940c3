package clique

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/corrclique/feature"
)

var (
	// ErrNilAdjacency is returned when Enumerate receives a nil Adjacency.
	ErrNilAdjacency = errors.New("clique: adjacency is nil")

	// ErrDuplicateNode indicates two input nodes with the same ID.
	ErrDuplicateNode = errors.New("clique: duplicate node id")

	// ErrTooManyCliques indicates the WithMaxCliques limit was exceeded.
	ErrTooManyCliques = errors.New("clique: too many cliques")
)

// Adjacency answers whether two feature IDs are joined by an edge.
// It must be symmetric and report false for i == j.
type Adjacency interface {
	Has(i, j feature.ID) bool
}

// Subgraph is one maximal clique, nodes in the order the search added them.
type Subgraph []feature.Node

// Len returns the number of nodes.
func (s Subgraph) Len() int { return len(s) }

// IDs returns the node IDs in search order.
func (s Subgraph) IDs() []feature.ID {
	return feature.IDs(s)
}

// SortedIDs returns the node IDs in ascending numeric order.
func (s Subgraph) SortedIDs() []feature.ID {
	ids := s.IDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Sorted returns a copy of s ordered by ascending ID.
func (s Subgraph) Sorted() Subgraph {
	out := make(Subgraph, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Contains reports whether id is a member of s.
func (s Subgraph) Contains(id feature.ID) bool {
	for _, n := range s {
		if n.ID == id {
			return true
		}
	}

	return false
}

// Key is a canonical set signature: the sorted IDs joined by commas.
// Two subgraphs have equal keys exactly when they hold the same nodes.
func (s Subgraph) Key() string {
	ids := s.SortedIDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}

	return strings.Join(parts, ",")
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds the enumeration settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Workers > 1 explores the root's branches concurrently. Output order is
	// the same as the sequential search. Default 1.
	Workers int

	// MaxCliques, if positive, aborts the search with ErrTooManyCliques once
	// more than MaxCliques maximal cliques have been found. Default 0 (no limit).
	MaxCliques int

	// OnClique, if non-nil, is called for every maximal clique as it is found.
	// Calls are serialized even when Workers > 1. Returning an error aborts.
	OnClique func(Subgraph) error
}

// DefaultOptions returns sequential, unlimited, hook-free settings.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    1,
		MaxCliques: 0,
		OnClique:   nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used for root branches.
// Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithMaxCliques caps the number of reported cliques. Values < 0 are ignored.
func WithMaxCliques(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxCliques = n
		}
	}
}

// WithOnClique installs fn as the per-clique hook.
func WithOnClique(fn func(Subgraph) error) Option {
	return func(o *Options) {
		o.OnClique = fn
	}
}
