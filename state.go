package rainflow

// State is the counting engine's lifecycle stage, mirroring the
// init/feed/finalize/deinit state machine of the counting library this
// package descends from.
type State int8

const (
	// StateInit0 is the pre-construction / post-Deinit rest state: no
	// class lattice is bound and Feed/Finalize are refused.
	StateInit0 State = iota
	// StateInit is entered by New or Reinit: parameters are bound, no
	// sample has been fed yet.
	StateInit
	// StateBusy means at least one sample has been fed and the filter
	// holds no uncommitted running extremum.
	StateBusy
	// StateBusyInterim means the filter holds a running extremum that
	// has not yet been emitted as a turning point.
	StateBusyInterim
	// StateFinalize is held only for the duration of a Finalize call.
	StateFinalize
	// StateFinished is entered once Finalize completes; Feed is refused,
	// Finalize itself becomes a no-op, and every read-only accessor
	// keeps reporting the final counts.
	StateFinished
	// StateError is entered from any state once an irrecoverable error
	// occurs (most commonly ErrOutOfRange). Counts already committed
	// remain readable; Feed and Finalize keep returning the stored
	// error.
	StateError
)

// String renders a State for diagnostics and log fields.
func (s State) String() string {
	switch s {
	case StateInit0:
		return "Init0"
	case StateInit:
		return "Init"
	case StateBusy:
		return "Busy"
	case StateBusyInterim:
		return "BusyInterim"
	case StateFinalize:
		return "Finalize"
	case StateFinished:
		return "Finished"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}
