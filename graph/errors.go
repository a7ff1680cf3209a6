// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "graph: ..." so it greps cleanly in logs.
// Methods wrap these sentinels with their own context
// ("Sparse.SetCoupling(3,7): ..."); callers match with errors.Is.

var (
	// ErrOutOfRange indicates that a spin index is outside [0, NumSpins).
	// Only reported when error checking is enabled.
	ErrOutOfRange = errors.New("graph: index out of range")

	// ErrEdgeCapacityExceeded indicates that registering a new neighbour would
	// push a Sparse node's adjacency list past its NumEdges cap.
	// Only reported when error checking is enabled.
	ErrEdgeCapacityExceeded = errors.New("graph: edge capacity exceeded")

	// ErrInvalidSize indicates a non-positive spin count, a non-positive
	// edge cap, or a spin vector whose length does not match NumSpins.
	ErrInvalidSize = errors.New("graph: invalid size")
)

// indexErrorf wraps err with the method tag and the offending coordinates.
func indexErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, i, j, err)
}
