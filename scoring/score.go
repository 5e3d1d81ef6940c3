package scoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/corrclique/clique"
)

// Scorer evaluates subgraphs against one edge lookup.
type Scorer struct {
	edges EdgeLookup
	opts  Options
}

// NewScorer returns a Scorer reading edges from lookup.
func NewScorer(lookup EdgeLookup, opts ...Option) *Scorer {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Scorer{edges: lookup, opts: o}
}

// Evaluate scores sg.
func (s *Scorer) Evaluate(sg clique.Subgraph) Breakdown {
	var b Breakdown

	var sum float64
	for i := 0; i < len(sg); i++ {
		for j := i + 1; j < len(sg); j++ {
			if e, ok := s.edges.Edge(sg[i].ID, sg[j].ID); ok {
				sum += e.Abs()
				b.EdgeCount++
			}
		}
	}
	if b.EdgeCount > 0 {
		b.EdgeMean = sum / float64(b.EdgeCount)
	}

	if len(sg) > 0 {
		scores := make([]float64, len(sg))
		for i, n := range sg {
			scores[i] = n.Score
		}
		b.NodeMean = stat.Mean(scores, nil)
	}

	b.Score = s.opts.EdgeWeight*(1-b.EdgeMean) + s.opts.NodeWeight*b.NodeMean

	return b
}

// FindBest returns the highest-scoring subgraph. Only a strictly greater
// score displaces the current best, so the earliest of equal scores wins.
func (s *Scorer) FindBest(sgs []clique.Subgraph) (clique.Subgraph, Breakdown, error) {
	if len(sgs) == 0 {
		return nil, Breakdown{}, ErrNoCandidates
	}

	best, bestB := sgs[0], s.Evaluate(sgs[0])
	for _, sg := range sgs[1:] {
		if b := s.Evaluate(sg); b.Score > bestB.Score {
			best, bestB = sg, b
		}
	}

	return best, bestB, nil
}

// Ranked pairs a subgraph with its score.
type Ranked struct {
	Subgraph  clique.Subgraph
	Breakdown Breakdown
}

// Rank scores every subgraph and orders them by descending score, keeping
// input order among equal scores. Rank(sgs)[0] is FindBest's choice.
func (s *Scorer) Rank(sgs []clique.Subgraph) []Ranked {
	out := make([]Ranked, len(sgs))
	for i, sg := range sgs {
		out[i] = Ranked{Subgraph: sg, Breakdown: s.Evaluate(sg)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Breakdown.Score > out[j].Breakdown.Score
	})

	return out
}

// Evaluate scores sg with default weights.
func Evaluate(sg clique.Subgraph, lookup EdgeLookup) Breakdown {
	return NewScorer(lookup).Evaluate(sg)
}

// FindBest picks the best subgraph with default weights.
func FindBest(sgs []clique.Subgraph, lookup EdgeLookup) (clique.Subgraph, Breakdown, error) {
	return NewScorer(lookup).FindBest(sgs)
}
