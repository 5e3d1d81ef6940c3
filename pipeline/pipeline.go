package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/corrclique/adjacency"
	"github.com/katalvlaran/corrclique/clique"
	"github.com/katalvlaran/corrclique/config"
	"github.com/katalvlaran/corrclique/feature"
	"github.com/katalvlaran/corrclique/scoring"
	"github.com/katalvlaran/corrclique/stats"
)

// ErrLabelMismatch indicates labels and series of different lengths.
var ErrLabelMismatch = errors.New("pipeline: label count does not match series count")

// Result is everything one run produced, stage by stage.
type Result struct {
	Labels    []string
	Nodes     []feature.Node // every feature, scored
	Filtered  []feature.Node // features entering the graph
	Edges     []feature.Edge // all pairwise edges among Filtered
	Kept      []feature.Edge // edges after filtering
	Index     *adjacency.Index
	Subgraphs []clique.Subgraph // every maximal clique
	Best      clique.Subgraph
	BestScore scoring.Breakdown
	Found     bool
}

// Label returns the label of id, or its number when labels are missing.
func (r *Result) Label(id feature.ID) string {
	if int(id) >= 0 && int(id) < len(r.Labels) {
		return r.Labels[id]
	}

	return fmt.Sprintf("%d", id)
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	cfg    config.Config
	log    *zap.Logger
	gof    feature.GoodnessFunc
	corr   feature.CorrelationFunc
	onSubg func(clique.Subgraph) error
}

// WithConfig replaces the default parameters.
func WithConfig(cfg config.Config) Option {
	return func(r *runner) { r.cfg = cfg }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithGoodnessFunc replaces stats.GoodnessOfFit. A nil fn is ignored.
func WithGoodnessFunc(fn feature.GoodnessFunc) Option {
	return func(r *runner) {
		if fn != nil {
			r.gof = fn
		}
	}
}

// WithCorrelationFunc replaces stats.Correlation. A nil fn is ignored.
func WithCorrelationFunc(fn feature.CorrelationFunc) Option {
	return func(r *runner) {
		if fn != nil {
			r.corr = fn
		}
	}
}

// WithOnClique observes every maximal clique as the search finds it.
func WithOnClique(fn func(clique.Subgraph) error) Option {
	return func(r *runner) { r.onSubg = fn }
}

// Run executes the whole pass over series (one per feature, all the same
// length) labeled by labels. labels may be nil.
func Run(ctx context.Context, series [][]float64, labels []string, opts ...Option) (*Result, error) {
	r := &runner{
		cfg:  config.Default(),
		log:  zap.NewNop(),
		gof:  stats.GoodnessOfFit,
		corr: stats.Correlation,
	}
	for _, fn := range opts {
		fn(r)
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if labels != nil && len(labels) != len(series) {
		return nil, fmt.Errorf("%w: %d labels, %d series", ErrLabelMismatch, len(labels), len(series))
	}

	res := &Result{Labels: labels}
	var err error

	// 1. Score every feature.
	if res.Nodes, err = feature.BuildNodes(series, r.gof); err != nil {
		return nil, fmt.Errorf("pipeline: score features: %w", err)
	}

	// 2. Keep the mildly deviant ones.
	filterOpts := r.cfg.FilterOptions()
	res.Filtered = feature.FilterNodes(res.Nodes, filterOpts...)
	r.log.Debug("nodes filtered",
		zap.Int("features", len(res.Nodes)),
		zap.Int("kept", len(res.Filtered)),
		zap.Float64("threshold", r.cfg.ScoreThreshold))

	// 3. Correlate every retained pair and trim the edge set.
	if res.Edges, err = feature.BuildEdges(res.Filtered, r.corr); err != nil {
		return nil, fmt.Errorf("pipeline: correlate features: %w", err)
	}
	res.Kept = feature.FilterEdges(res.Edges, filterOpts...)
	r.log.Debug("edges filtered",
		zap.Int("edges", len(res.Edges)),
		zap.Int("dropped_strongest", feature.DropCount(len(res.Edges), r.cfg.DropFraction)),
		zap.Int("kept", len(res.Kept)))

	// 4. Index the graph.
	if res.Index, err = adjacency.New(res.Kept, feature.MaxID(res.Filtered)); err != nil {
		return nil, fmt.Errorf("pipeline: index edges: %w", err)
	}

	// 5. Enumerate maximal cliques.
	cliqueOpts := []clique.Option{
		clique.WithContext(ctx),
		clique.WithWorkers(r.cfg.Workers),
		clique.WithMaxCliques(r.cfg.MaxCliques),
	}
	if r.onSubg != nil {
		cliqueOpts = append(cliqueOpts, clique.WithOnClique(r.onSubg))
	}
	if res.Subgraphs, err = clique.Enumerate(res.Index, res.Filtered, cliqueOpts...); err != nil {
		return nil, fmt.Errorf("pipeline: enumerate cliques: %w", err)
	}
	r.log.Debug("cliques enumerated", zap.Int("subgraphs", len(res.Subgraphs)))

	// 6. Pick the best.
	scorer := scoring.NewScorer(res.Index,
		scoring.WithEdgeWeight(r.cfg.EdgeWeight),
		scoring.WithNodeWeight(r.cfg.NodeWeight))
	res.Best, res.BestScore, err = scorer.FindBest(res.Subgraphs)
	switch {
	case errors.Is(err, scoring.ErrNoCandidates):
		r.log.Info("no candidate subgraph found", zap.Int("features", len(res.Nodes)))
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("pipeline: score subgraphs: %w", err)
	}
	res.Found = true

	r.log.Info("best subgraph selected",
		zap.Ints("ids", toInts(res.Best.SortedIDs())),
		zap.Float64("score", res.BestScore.Score),
		zap.Int("subgraphs", len(res.Subgraphs)))

	return res, nil
}

func toInts(ids []feature.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}

	return out
}
