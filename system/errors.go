// SPDX-License-Identifier: MIT

package system

import "errors"

var (
	// ErrInvalidParameter reports a non-positive β, an anneal fraction S
	// outside [0,1], a negative Γ or a replica count below 1.
	ErrInvalidParameter = errors.New("system: invalid parameter")

	// ErrDimensionMismatch reports a spin vector or replica whose length
	// differs from the graph's NumSpins.
	ErrDimensionMismatch = errors.New("system: dimension mismatch")

	// ErrInvalidSpin reports an initial spin that is neither -1 nor +1.
	ErrInvalidSpin = errors.New("system: spin must be -1 or +1")
)
