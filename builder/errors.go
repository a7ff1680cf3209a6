// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices reports a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability reports p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource reports a stochastic constructor run without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports a nil constructor or an exhausted retry budget.
var ErrConstructFailed = errors.New("builder: construction failed")
