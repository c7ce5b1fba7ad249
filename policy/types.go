// Package policy implements the finalize-time residue policies: what
// happens to the turning points still open when a stream ends.
package policy

import "errors"

// ErrNotImplemented indicates a standards-defined residual policy is
// named and typed but intentionally not implemented by the core.
var ErrNotImplemented = errors.New("policy: residual method not implemented")

// ErrUnknownPolicy indicates a ResiduePolicy value outside the defined
// enum was supplied.
var ErrUnknownPolicy = errors.New("policy: unknown residue policy")

// ResiduePolicy selects how finalize treats the residue left over once
// a stream ends.
type ResiduePolicy int

const (
	// None leaves the residue in place without further counting; the
	// matrix and damage reflect only cycles already closed. This
	// is the minimal core's required behavior. Ignore is its alias.
	None ResiduePolicy = iota
	// Ignore is an alias of None.
	Ignore
	// Discard behaves like None but also clears the residue buffer.
	Discard
	// HalfCycles counts each adjacent residue pair as half a cycle.
	HalfCycles
	// FullCycles counts each adjacent residue pair as a full cycle.
	FullCycles
	// Repeated conceptually appends a copy of the residue to itself
	// and re-runs the four-point matcher against the doubled sequence.
	Repeated
	// ClormannSeeger is the Clormann-Seeger residual method. Not
	// implemented by the core; see ErrNotImplemented.
	ClormannSeeger
	// RPDIN45667 is the DIN 45667 range-pair residual method. Not
	// implemented by the core; see ErrNotImplemented.
	RPDIN45667
)

// String renders a ResiduePolicy for diagnostics.
func (p ResiduePolicy) String() string {
	switch p {
	case None, Ignore:
		return "None"
	case Discard:
		return "Discard"
	case HalfCycles:
		return "HalfCycles"
	case FullCycles:
		return "FullCycles"
	case Repeated:
		return "Repeated"
	case ClormannSeeger:
		return "ClormannSeeger"
	case RPDIN45667:
		return "RPDIN45667"
	default:
		return "Unknown"
	}
}
