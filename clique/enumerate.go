package clique

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/corrclique/feature"
)

// enumerator carries the read-only search inputs and one result collector.
// Frames themselves live on the Go stack as slice arguments to search.
type enumerator struct {
	adj     Adjacency
	opts    Options
	found   *atomic.Int64 // cliques found across all enumerators of one run
	hookMu  *sync.Mutex   // serializes OnClique
	results []Subgraph
}

// Enumerate returns every maximal clique among nodes under adj.
// Results appear in discovery order; each clique lists its nodes in the
// order they were added. An empty node set yields no cliques.
func Enumerate(adj Adjacency, nodes []feature.Node, opts ...Option) ([]Subgraph, error) {
	// 1. Validate input
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	seen := make(map[feature.ID]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Nothing to search: the empty clique is not reported
	if len(nodes) == 0 {
		return []Subgraph{}, nil
	}

	found := new(atomic.Int64)
	hookMu := new(sync.Mutex)

	if o.Workers > 1 && len(nodes) > 1 {
		return enumerateParallel(adj, nodes, o, found, hookMu)
	}

	// 4. Root frame: everything remaining, nothing excluded
	e := &enumerator{adj: adj, opts: o, found: found, hookMu: hookMu}
	remaining := make([]feature.Node, len(nodes))
	copy(remaining, nodes)
	if err := e.search(nil, remaining, nil); err != nil {
		return nil, err
	}

	return e.results, nil
}

// search explores one frame. The frame owns remaining and excluded and may
// mutate them; current is never mutated.
func (e *enumerator) search(current, remaining, excluded []feature.Node) error {
	// 1. Cancellation check
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	// 2. Nothing can extend current and nothing explored elsewhere could
	// either: current is maximal.
	if len(remaining) == 0 && len(excluded) == 0 {
		return e.emit(current)
	}

	// 3. Try each remaining node as the next member, over a snapshot since
	// remaining shrinks as we go.
	snapshot := make([]feature.Node, len(remaining))
	copy(snapshot, remaining)

	var v feature.Node
	for _, v = range snapshot {
		if err := e.branch(current, remaining, excluded, v); err != nil {
			return err
		}
		remaining = without(remaining, v.ID)
		excluded = append(excluded, v)
	}

	return nil
}

// branch recurses into the child frame that adds v to current.
func (e *enumerator) branch(current, remaining, excluded []feature.Node, v feature.Node) error {
	child := make([]feature.Node, len(current), len(current)+1)
	copy(child, current)
	child = append(child, v)

	return e.search(child, e.neighbors(v.ID, remaining), e.neighbors(v.ID, excluded))
}

// neighbors returns a fresh slice of the members of set adjacent to id.
// id itself is never its own neighbor.
func (e *enumerator) neighbors(id feature.ID, set []feature.Node) []feature.Node {
	out := make([]feature.Node, 0, len(set))
	for _, n := range set {
		if n.ID != id && e.adj.Has(id, n.ID) {
			out = append(out, n)
		}
	}

	return out
}

// emit records a maximal clique, honoring the clique limit and hook.
func (e *enumerator) emit(current []feature.Node) error {
	if len(current) == 0 {
		return nil
	}
	total := e.found.Add(1)
	if e.opts.MaxCliques > 0 && total > int64(e.opts.MaxCliques) {
		return fmt.Errorf("%w: limit %d", ErrTooManyCliques, e.opts.MaxCliques)
	}

	sg := make(Subgraph, len(current))
	copy(sg, current)

	if e.opts.OnClique != nil {
		e.hookMu.Lock()
		err := e.opts.OnClique(sg)
		e.hookMu.Unlock()
		if err != nil {
			return fmt.Errorf("clique: OnClique hook for [%s]: %w", sg.Key(), err)
		}
	}
	e.results = append(e.results, sg)

	return nil
}

// without removes the node with the given ID from set in place.
func without(set []feature.Node, id feature.ID) []feature.Node {
	for i, n := range set {
		if n.ID == id {
			return append(set[:i], set[i+1:]...)
		}
	}

	return set
}
