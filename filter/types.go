// Package filter reduces a raw sample stream to a sequence of turning
// points using a hysteresis + peak/valley rule: a reversal is only
// recognized once the signal has moved more than the configured
// hysteresis threshold away from the running extremum.
package filter

import (
	"github.com/katalvlaran/rainflow/class"
)

// ErrOutOfRange indicates a sample fell outside the class lattice's
// valid range; Feed returns it unchanged from class.ClassOf.
var ErrOutOfRange = class.ErrOutOfRange

// slope tracks the running direction of the signal; it starts at zero
// ("no turning points yet") and locks to +1/-1 once hysteresis is
// first exceeded.
type slope int8

const (
	slopeFlat    slope = 0
	slopeRising  slope = 1
	slopeFalling slope = -1
)

// extremum is the filter's running candidate turning point: the most
// extreme value seen since the last emission (or since the stream
// began), biased toward the later sample on ties.
type extremum struct {
	value    float64
	position uint64
}

// Filter is the hysteresis + peak/valley state machine of the counting
// engine's filter stage. A zero Filter is not usable; construct with
// New.
type Filter struct {
	params  class.Params
	current extremum
	slope   slope
	started bool
}

// New returns a Filter bound to the given class lattice; H is read
// from params.H.
func New(params class.Params) *Filter {
	return &Filter{params: params}
}
