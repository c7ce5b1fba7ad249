// Package residue implements the rainflow counting engine's residue
// stack and four-point closure test: the core 35% of the engine's
// implementation budget.
//
// A Stack holds the currently-open tail of turning points. Every Push
// re-examines the last four entries and closes zero or more cycles
// greedily, exactly as described by the four-point method in ASTM
// E1049: a pair (B, C) closes whenever it is nested inside its
// neighbors (A, D).
package residue

import "github.com/katalvlaran/rainflow/turningpoint"

// Closure describes one cycle the four-point test extracted from the
// stack: a full cycle running B -> C in stream order.
type Closure struct {
	From turningpoint.TurningPoint
	To   turningpoint.TurningPoint
}

// Stack is the residue buffer. Its capacity is bounded: at most 2*N
// elements are ever required before some closure occurs (by class
// nesting — see Push), so the backing slice is allocated with one
// spare slot (2*N+1) for the interim point flushed at finalize.
type Stack struct {
	Points []turningpoint.TurningPoint
	store  turningpoint.Store
}

// New returns an empty Stack sized for a class lattice of n classes.
// store may be nil, meaning no external turning-point storage is
// installed and the Stack's own slice is the only record kept.
func New(n uint32, store turningpoint.Store) *Stack {
	limit := int(2 * n)
	return &Stack{
		Points: make([]turningpoint.TurningPoint, 0, limit+1),
		store:  store,
	}
}

// Len reports the number of turning points currently held.
func (s *Stack) Len() int {
	return len(s.Points)
}

// Reset empties the stack in place, used by the DISCARD finalize
// policy.
func (s *Stack) Reset() {
	s.Points = s.Points[:0]
}
