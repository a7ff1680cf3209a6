// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrKingGraph reports a king-graph entry off the lattice, between
// non-adjacent cells, or with a value the machine cannot represent.
var ErrKingGraph = errors.New("model: invalid king graph")

// MachineType selects the lattice and coupling precision of a king-graph
// annealer.
type MachineType int

const (
	// ASIC is a 352×176 lattice with integer interactions in [-3,3].
	ASIC MachineType = iota
	// FPGA is an 80×80 lattice with integer interactions in [-127,127].
	FPGA
)

// String implements fmt.Stringer.
func (t MachineType) String() string {
	switch t {
	case ASIC:
		return "ASIC"
	case FPGA:
		return "FPGA"
	default:
		return fmt.Sprintf("MachineType(%d)", int(t))
	}
}

// ParseMachineType accepts ASIC and FPGA, case-insensitively.
func ParseMachineType(s string) (MachineType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASIC":
		return ASIC, nil
	case "FPGA":
		return FPGA, nil
	default:
		return 0, fmt.Errorf("ParseMachineType(%q): %w", s, ErrKingGraph)
	}
}

// geometry returns width, height and the largest absolute value.
func (t MachineType) geometry() (w, h int, prec float64, ok bool) {
	switch t {
	case ASIC:
		return 352, 176, 3, true
	case FPGA:
		return 80, 80, 127, true
	default:
		return 0, 0, 0, false
	}
}

// KingEntry is one term on the lattice. A field has (X1,Y1) == (X2,Y2);
// an interaction joins two cells that touch horizontally, vertically or
// diagonally.
type KingEntry struct {
	X1, Y1, X2, Y2 int
	Value          float64
}

// KingGraph is a spin model whose labels are cells x + y·width of a
// king-graph lattice. It embeds the BQM, so it can be sampled and
// evaluated like any other model.
type KingGraph struct {
	*BQM
	machine MachineType
	entries []KingEntry
}

// KingIndex returns the label of cell (x,y).
func KingIndex(x, y int, machine MachineType) (int, error) {
	w, h, _, ok := machine.geometry()
	if !ok {
		return 0, fmt.Errorf("KingIndex: %v: %w", machine, ErrKingGraph)
	}
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, fmt.Errorf("KingIndex(x=%d, y=%d) on %v: %w", x, y, machine, ErrKingGraph)
	}

	return x + y*w, nil
}

// NewKingGraph lays the spin model (h, J) out on the machine's lattice.
// Entries list the interactions in sorted pair order, then the fields in
// label order.
func NewKingGraph(machine MachineType, h Linear, J Quadratic) (*KingGraph, error) {
	w, _, _, ok := machine.geometry()
	if !ok {
		return nil, fmt.Errorf("NewKingGraph: %v: %w", machine, ErrKingGraph)
	}
	m, err := NewIsing(h, J)
	if err != nil {
		return nil, fmt.Errorf("NewKingGraph: %w", err)
	}

	entries := make([]KingEntry, 0, len(m.quadKeys)+len(m.linKeys))
	for _, k := range m.quadKeys {
		entries = append(entries, KingEntry{
			X1: k[0] % w, Y1: k[0] / w,
			X2: k[1] % w, Y2: k[1] / w,
			Value: m.quadratic[k],
		})
	}
	for _, i := range m.linKeys {
		entries = append(entries, KingEntry{X1: i % w, Y1: i / w, X2: i % w, Y2: i / w, Value: m.linear[i]})
	}
	for _, e := range entries {
		if err = checkKingEntry(e, machine); err != nil {
			return nil, fmt.Errorf("NewKingGraph: %w", err)
		}
	}

	return &KingGraph{BQM: m, machine: machine, entries: entries}, nil
}

// NewKingGraphFromEntries rebuilds a model from lattice entries, as an
// annealer reports them. Repeated terms are summed.
func NewKingGraphFromEntries(machine MachineType, entries []KingEntry) (*KingGraph, error) {
	if _, _, _, ok := machine.geometry(); !ok {
		return nil, fmt.Errorf("NewKingGraphFromEntries: %v: %w", machine, ErrKingGraph)
	}
	h := make(Linear)
	J := make(Quadratic)
	for _, e := range entries {
		if err := checkKingEntry(e, machine); err != nil {
			return nil, fmt.Errorf("NewKingGraphFromEntries: %w", err)
		}
		a, _ := KingIndex(e.X1, e.Y1, machine)
		b, _ := KingIndex(e.X2, e.Y2, machine)
		if a == b {
			h[a] += e.Value
			continue
		}
		J[[2]int{a, b}] += e.Value
	}
	m, err := NewIsing(h, J)
	if err != nil {
		return nil, fmt.Errorf("NewKingGraphFromEntries: %w", err)
	}

	return &KingGraph{BQM: m, machine: machine, entries: slices.Clone(entries)}, nil
}

// Machine returns the target machine.
func (k *KingGraph) Machine() MachineType { return k.machine }

// Entries returns a copy of the lattice terms.
func (k *KingGraph) Entries() []KingEntry { return slices.Clone(k.entries) }

func checkKingEntry(e KingEntry, machine MachineType) error {
	_, _, prec, _ := machine.geometry()
	if _, err := KingIndex(e.X1, e.Y1, machine); err != nil {
		return err
	}
	if _, err := KingIndex(e.X2, e.Y2, machine); err != nil {
		return err
	}
	if d := max(abs(e.X1-e.X2), abs(e.Y1-e.Y2)); d > 1 {
		return fmt.Errorf("(%d,%d)-(%d,%d) not adjacent: %w", e.X1, e.Y1, e.X2, e.Y2, ErrKingGraph)
	}
	if e.Value != math.Trunc(e.Value) || math.Abs(e.Value) > prec {
		return fmt.Errorf("value %g outside integers in [%g,%g] on %v: %w", e.Value, -prec, prec, machine, ErrKingGraph)
	}

	return nil
}
