// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

// ErrChimeraIndex reports cell coordinates outside an L×L Chimera lattice.
var ErrChimeraIndex = errors.New("model: chimera index out of range")

// chimeraCell is the number of qubits per unit cell: a K4,4 whose left
// shore (z < 4) couples vertically and right shore (z >= 4) horizontally.
const (
	chimeraCell  = 8
	chimeraShore = 4
)

// ChimeraIndex returns the linear label of qubit z in cell (r,c) of an
// L×L Chimera lattice: r·L·8 + c·8 + z.
func ChimeraIndex(r, c, z, L int) (int, error) {
	if r < 0 || r >= L || c < 0 || c >= L || z < 0 || z >= chimeraCell {
		return 0, fmt.Errorf("ChimeraIndex(r=%d, c=%d, z=%d, L=%d): %w", r, c, z, L, ErrChimeraIndex)
	}

	return r*L*chimeraCell + c*chimeraCell + z, nil
}

// chimeraCoord inverts ChimeraIndex.
func chimeraCoord(label, L int) (r, c, z int, ok bool) {
	if label < 0 || label >= L*L*chimeraCell {
		return 0, 0, 0, false
	}
	z = label % chimeraCell
	cell := label / chimeraCell

	return cell / L, cell % L, z, true
}

// IsChimeraEdge reports whether labels a and b are coupled on an L×L
// Chimera lattice.
func IsChimeraEdge(a, b, L int) bool {
	ra, ca, za, okA := chimeraCoord(a, L)
	rb, cb, zb, okB := chimeraCoord(b, L)
	if !okA || !okB || a == b {
		return false
	}
	leftA, leftB := za < chimeraShore, zb < chimeraShore

	switch {
	case ra == rb && ca == cb:
		// intra-cell: opposite shores only
		return leftA != leftB
	case za != zb:
		return false
	case leftA && ca == cb:
		return abs(ra-rb) == 1
	case !leftA && ra == rb:
		return abs(ca-cb) == 1
	default:
		return false
	}
}

// ValidateChimera reports whether every label fits an L×L lattice and every
// interaction of m is a Chimera edge.
func (m *BQM) ValidateChimera(L int) bool {
	if L <= 0 {
		return false
	}
	for _, label := range m.indices {
		if _, _, _, ok := chimeraCoord(label, L); !ok {
			return false
		}
	}
	for _, k := range m.quadKeys {
		if !IsChimeraEdge(k[0], k[1], L) {
			return false
		}
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
