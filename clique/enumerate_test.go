package clique_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrclique/clique"
	"github.com/katalvlaran/corrclique/feature"
)

func TestEnumerate_NilAdjacency(t *testing.T) {
	res, err := clique.Enumerate(nil, nodesN(2))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, clique.ErrNilAdjacency)
}

func TestEnumerate_DuplicateNode(t *testing.T) {
	idx := buildIndex(t, 2, [2]int{0, 1})
	_, err := clique.Enumerate(idx, []feature.Node{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, clique.ErrDuplicateNode)
}

func TestEnumerate_EmptyNodesYieldsNoCliques(t *testing.T) {
	idx := buildIndex(t, 1)
	res, err := clique.Enumerate(idx, nil)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestEnumerate_NoEdges(t *testing.T) {
	idx := buildIndex(t, 4)
	res, err := clique.Enumerate(idx, nodesN(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, keys(res))
}

func TestEnumerate_CompleteGraph(t *testing.T) {
	idx := buildIndex(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	res, err := clique.Enumerate(idx, nodesN(4))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []feature.ID{0, 1, 2, 3}, res[0].IDs())
}

func TestEnumerate_TriangleWithTail(t *testing.T) {
	idx := buildIndex(t, 5,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, // triangle
		[2]int{2, 3}, [2]int{3, 4}, // tail
	)
	nodes := nodesN(5)
	res, err := clique.Enumerate(idx, nodes)
	require.NoError(t, err)

	// Discovery order follows node order.
	got := make([][]feature.ID, len(res))
	for i, sg := range res {
		got[i] = sg.IDs()
	}
	assert.Equal(t, [][]feature.ID{{0, 1, 2}, {2, 3}, {3, 4}}, got)

	if diff := cmp.Diff(bruteForce(idx, nodes), keys(res)); diff != "" {
		t.Errorf("cliques mismatch (-brute +got):\n%s", diff)
	}
}

func TestEnumerate_SubsetOfIndex(t *testing.T) {
	// Only the listed nodes take part, even if the index knows more IDs.
	idx := buildIndex(t, 6, [2]int{1, 3}, [2]int{3, 5}, [2]int{1, 5}, [2]int{0, 1})
	nodes := []feature.Node{{ID: 5}, {ID: 3}, {ID: 1}}
	res, err := clique.Enumerate(idx, nodes)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,3,5"}, keys(res))
}

func TestEnumerate_DoesNotMutateInput(t *testing.T) {
	idx := buildIndex(t, 3, [2]int{0, 1}, [2]int{1, 2})
	nodes := nodesN(3)
	_, err := clique.Enumerate(idx, nodes)
	require.NoError(t, err)
	assert.Equal(t, nodesN(3), nodes)
}

// selfAdj claims every pair is adjacent, including i == i.
type selfAdj struct{}

func (selfAdj) Has(i, j feature.ID) bool { return true }

func TestEnumerate_IgnoresSelfAdjacency(t *testing.T) {
	res, err := clique.Enumerate(selfAdj{}, nodesN(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1,2"}, keys(res))
}

func TestEnumerate_RandomGraphsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.Intn(11)
		p := []float64{0.2, 0.5, 0.8}[trial%3]
		idx := randomIndex(t, rng, n, p)
		nodes := nodesN(n)

		res, err := clique.Enumerate(idx, nodes)
		require.NoError(t, err)

		seen := make(map[string]bool, len(res))
		for _, sg := range res {
			// soundness and maximality
			assert.True(t, clique.IsClique(idx, sg), "trial %d: %s not a clique", trial, sg.Key())
			assert.True(t, clique.IsMaximal(idx, sg, nodes), "trial %d: %s not maximal", trial, sg.Key())
			// no duplication
			assert.False(t, seen[sg.Key()], "trial %d: %s reported twice", trial, sg.Key())
			seen[sg.Key()] = true
		}

		// completeness
		if diff := cmp.Diff(bruteForce(idx, nodes), keys(res)); diff != "" {
			t.Fatalf("trial %d (n=%d p=%.1f) mismatch (-brute +got):\n%s", trial, n, p, diff)
		}
	}
}

func TestEnumerate_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(12)
		idx := randomIndex(t, rng, n, 0.6)
		nodes := nodesN(n)

		seq, err := clique.Enumerate(idx, nodes)
		require.NoError(t, err)
		par, err := clique.Enumerate(idx, nodes, clique.WithWorkers(4))
		require.NoError(t, err)

		// Same cliques, same order, same node order within each.
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Fatalf("trial %d: parallel differs (-seq +par):\n%s", trial, diff)
		}
	}
}

func TestEnumerate_ContextCanceled(t *testing.T) {
	idx := buildIndex(t, 3, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := clique.Enumerate(idx, nodesN(3), clique.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = clique.Enumerate(idx, nodesN(3), clique.WithContext(ctx), clique.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerate_MaxCliques(t *testing.T) {
	idx := buildIndex(t, 5) // five isolated nodes, five cliques
	_, err := clique.Enumerate(idx, nodesN(5), clique.WithMaxCliques(3))
	assert.ErrorIs(t, err, clique.ErrTooManyCliques)

	res, err := clique.Enumerate(idx, nodesN(5), clique.WithMaxCliques(5))
	require.NoError(t, err)
	assert.Len(t, res, 5)

	_, err = clique.Enumerate(idx, nodesN(5), clique.WithMaxCliques(2), clique.WithWorkers(3))
	assert.ErrorIs(t, err, clique.ErrTooManyCliques)
}

func TestEnumerate_OnCliqueHook(t *testing.T) {
	idx := buildIndex(t, 4, [2]int{0, 1}, [2]int{2, 3})
	var seen []string
	res, err := clique.Enumerate(idx, nodesN(4), clique.WithOnClique(func(sg clique.Subgraph) error {
		seen = append(seen, sg.Key())
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "2,3"}, seen)
	assert.Len(t, res, 2)

	stop := errors.New("stop")
	_, err = clique.Enumerate(idx, nodesN(4), clique.WithOnClique(func(clique.Subgraph) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestEnumerate_OptionsIgnoreNonsense(t *testing.T) {
	o := clique.DefaultOptions()
	for _, fn := range []clique.Option{
		clique.WithWorkers(0),
		clique.WithMaxCliques(-1),
		clique.WithContext(nil), //nolint:staticcheck // nil is ignored on purpose
	} {
		fn(&o)
	}
	assert.Equal(t, 1, o.Workers)
	assert.Equal(t, 0, o.MaxCliques)
	assert.NotNil(t, o.Ctx)
}
