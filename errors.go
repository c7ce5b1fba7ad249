package rainflow

import (
	"errors"

	"github.com/katalvlaran/rainflow/class"
)

// ErrOutOfRange re-exports class.ErrOutOfRange: Feed returns it,
// wrapped (match with errors.Is), for any sample outside the bound
// class lattice.
var ErrOutOfRange = class.ErrOutOfRange

// ErrInvalidState indicates the call is not permitted in the engine's
// current State (for example, Feed after Finalize, or Feed after
// Deinit). An engine that latched StateError returns its stored error
// instead.
var ErrInvalidState = errors.New("rainflow: operation invalid in current state")

// ErrInvalidParams indicates New was called with a class.Params that
// fails its own validity constraints.
var ErrInvalidParams = class.ErrInvalidParams
