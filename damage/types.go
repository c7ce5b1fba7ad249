// Package damage implements the Wöhler/Basquin S-N curve and the
// running pseudo-damage accumulator that the residue matcher feeds
// with every closed cycle.
package damage

import (
	"errors"
	"fmt"
)

// ErrInvalidWohler indicates SD, ND, or k violate NewWohler's contract.
var ErrInvalidWohler = errors.New("damage: invalid wohler parameters")

// Wohler holds the S-N curve parameters: fatigue strength amplitude
// SD, cycles-to-failure at SD (ND), and slope k.
type Wohler struct {
	SD float64
	ND float64
	K  float64
}

// DefaultWohler returns the engine's built-in defaults (SD=1e3,
// ND=1e6, k=5), used when no explicit curve is supplied at Engine
// construction.
func DefaultWohler() Wohler {
	return Wohler{SD: 1e3, ND: 1e6, K: 5}
}

// NewWohler validates and constructs a Wohler curve. SD and ND must be
// positive, k must be > 0.
func NewWohler(sd, nd, k float64) (Wohler, error) {
	if sd <= 0 {
		return Wohler{}, fmt.Errorf("NewWohler: SD=%g must be > 0: %w", sd, ErrInvalidWohler)
	}
	if nd <= 0 {
		return Wohler{}, fmt.Errorf("NewWohler: ND=%g must be > 0: %w", nd, ErrInvalidWohler)
	}
	if k <= 0 {
		return Wohler{}, fmt.Errorf("NewWohler: k=%g must be > 0: %w", k, ErrInvalidWohler)
	}

	return Wohler{SD: sd, ND: nd, K: k}, nil
}

// Accumulator is a monotonically non-decreasing, non-negative running
// pseudo-damage total.
type Accumulator struct {
	value float64
}

// Value reads the current accumulated damage.
func (a Accumulator) Value() float64 {
	return a.value
}
