package feature

import "fmt"

func wrapID(err error, id ID) error {
	return fmt.Errorf("%w: %d", err, id)
}

// wrapPair attaches the node pair to a correlation failure.
func wrapPair(err error, a, b ID) error {
	return fmt.Errorf("feature: correlation(%d,%d): %w", a, b, err)
}
