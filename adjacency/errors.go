// SPDX-License-Identifier: MIT

package adjacency

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned when the requested maximum ID is negative.
	ErrNegativeSize = errors.New("adjacency: negative max id")

	// ErrUnknownID indicates an edge endpoint outside [0, maxID].
	ErrUnknownID = errors.New("adjacency: edge endpoint out of range")

	// ErrSelfLoop indicates an edge from an ID to itself.
	ErrSelfLoop = errors.New("adjacency: self-loop edge")
)

// indexErrorf attaches the offending endpoints to a sentinel.
func indexErrorf(a, b int, err error) error {
	return fmt.Errorf("adjacency.New(%d,%d): %w", a, b, err)
}
