package feature

import "fmt"

// GoodnessFunc scores how far a value series deviates from a reference
// distribution. Higher means more deviant.
type GoodnessFunc func(values []float64) (float64, error)

// BuildNodes wraps each series as a Node whose ID is its index in series
// and whose Score is gof(series[i]). The first scoring error aborts.
func BuildNodes(series [][]float64, gof GoodnessFunc) ([]Node, error) {
	if gof == nil {
		return nil, ErrNilGoodness
	}

	nodes := make([]Node, 0, len(series))
	for i, values := range series {
		score, err := gof(values)
		if err != nil {
			return nil, fmt.Errorf("feature: score series %d: %w", i, err)
		}
		n, err := NewNode(ID(i), values, score)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return nodes, nil
}

// MaxID returns the largest ID among nodes, or 0 when nodes is empty.
func MaxID(nodes []Node) ID {
	var m ID
	for _, n := range nodes {
		if n.ID > m {
			m = n.ID
		}
	}

	return m
}

// IDs returns the node identities in slice order.
func IDs(nodes []Node) []ID {
	out := make([]ID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
