// SPDX-License-Identifier: MIT

// Package sampler is the high-level entry point: it compiles a model into a
// graph, anneals NumReads independent copies and collects the final states
// into a Response.
//
// Read r draws from its own generator seeded with Seed+r and owns its own
// system, so a Response depends only on the sampler fields, never on how
// reads were scheduled across goroutines. The compiled graph is shared and
// only read.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/model"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig reports sampler fields that cannot describe an anneal.
var ErrInvalidConfig = errors.New("sampler: invalid config")

// Sampler anneals binary quadratic models.
type Sampler interface {
	Sample(ctx context.Context, m *model.BQM) (*Response, error)
}

// readFunc anneals one read over g and returns its final spins.
type readFunc func(ctx context.Context, g graph.Graph, rng prng.Source) (graph.Spins, error)

// run is shared by every sampler: compile m, fan reads out and gather.
func run(ctx context.Context, m *model.BQM, dense bool, reads, workers int, seed uint64, logger *log.Logger, read readFunc) (*Response, error) {
	if m == nil {
		return nil, fmt.Errorf("sampler: nil model: %w", ErrInvalidConfig)
	}
	g, err := m.Graph(dense)
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	resp := newResponse(m, reads)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for r := 0; r < reads; r++ {
		eg.Go(func() error {
			spins, err := read(ctx, g, prng.New(seed+uint64(r)))
			if err != nil {
				return fmt.Errorf("sampler: read %d: %w", r, err)
			}
			state := m.SpinsToSample(spins)
			energy, err := m.Energy(state)
			if err != nil {
				return fmt.Errorf("sampler: read %d: %w", r, err)
			}
			resp.States[r], resp.Energies[r] = state, energy
			logger.Debug("read finished", "read", r, "energy", energy)

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return resp, nil
}

// sampleIsing and sampleQUBO build the model and delegate to s.
func sampleIsing(ctx context.Context, s Sampler, h model.Linear, J model.Quadratic) (*Response, error) {
	m, err := model.NewIsing(h, J)
	if err != nil {
		return nil, err
	}

	return s.Sample(ctx, m)
}

func sampleQUBO(ctx context.Context, s Sampler, Q model.Quadratic) (*Response, error) {
	m, err := model.NewQUBO(Q)
	if err != nil {
		return nil, err
	}

	return s.Sample(ctx, m)
}

func checkShape(method string, stepNum, stepLength, reads int, rep system.Representation) error {
	switch {
	case rep != system.Naive && rep != system.Matrix:
		return fmt.Errorf("%s: representation %v: %w", method, rep, ErrInvalidConfig)
	case stepNum < 1:
		return fmt.Errorf("%s: StepNum %d: %w", method, stepNum, ErrInvalidConfig)
	case stepLength < 1:
		return fmt.Errorf("%s: StepLength %d: %w", method, stepLength, ErrInvalidConfig)
	case reads < 1:
		return fmt.Errorf("%s: NumReads %d: %w", method, reads, ErrInvalidConfig)
	default:
		return nil
	}
}
