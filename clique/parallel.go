package clique

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/corrclique/feature"
)

// enumerateParallel runs each root branch as its own task. Branch k sees the
// frame the sequential root would hand it: nodes[:k] already excluded and
// nodes[k+1:] still remaining, each cut down to nodes[k]'s neighbors. Every
// branch owns its slices and its result slot, so nothing is shared but the
// clique counter and the hook lock.
func enumerateParallel(adj Adjacency, nodes []feature.Node, o Options, found *atomic.Int64, hookMu *sync.Mutex) ([]Subgraph, error) {
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)

	branchOpts := o
	branchOpts.Ctx = ctx

	slots := make([][]Subgraph, len(nodes))
	for k := range nodes {
		k := k // per-iteration copy; the module's go directive predates 1.22 loop semantics
		g.Go(func() error {
			e := &enumerator{adj: adj, opts: branchOpts, found: found, hookMu: hookMu}
			v := nodes[k]
			if err := e.branch(nil, nodes[k+1:], nodes[:k], v); err != nil {
				return err
			}
			slots[k] = e.results

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Subgraph, 0, len(nodes))
	for _, s := range slots {
		out = append(out, s...)
	}

	return out, nil
}
