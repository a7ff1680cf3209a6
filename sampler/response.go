// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"slices"

	"github.com/MShaffar19/OpenJij/model"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Response collects the reads of one sampling call.
// States[r] is the final assignment of read r, ordered like Indices and
// expressed in Vartype; Energies[r] is its model energy, offset included.
type Response struct {
	ID       uuid.UUID
	Vartype  model.Vartype
	Indices  []int
	States   [][]int
	Energies []float64
}

func newResponse(m *model.BQM, reads int) *Response {
	return &Response{
		ID:       uuid.New(),
		Vartype:  m.Vartype(),
		Indices:  m.Indices(),
		States:   make([][]int, reads),
		Energies: make([]float64, reads),
	}
}

// Len returns the number of reads.
func (r *Response) Len() int { return len(r.States) }

// Lowest returns a copy of the lowest-energy state and its energy; ties go
// to the earliest read. An empty response yields (nil, NaN).
func (r *Response) Lowest() ([]int, float64) {
	if len(r.Energies) == 0 {
		return nil, math.NaN()
	}
	k := floats.MinIdx(r.Energies)

	return slices.Clone(r.States[k]), r.Energies[k]
}

// MeanEnergy returns the unweighted mean energy over all reads.
func (r *Response) MeanEnergy() float64 {
	if len(r.Energies) == 0 {
		return math.NaN()
	}

	return stat.Mean(r.Energies, nil)
}

// Sample returns state k as a label → value map.
func (r *Response) Sample(k int) map[int]int {
	out := make(map[int]int, len(r.Indices))
	for p, label := range r.Indices {
		out[label] = r.States[k][p]
	}

	return out
}
