// Package rainflow implements an ASTM E1049 four-point rainflow
// counting engine: a streaming reduction of a load signal into a
// class-discretized cycle matrix and a running Wöhler pseudo-damage
// total.
//
// The public lifecycle mirrors the source counting library's
// init/feed/finalize/deinit calls: New binds a class lattice and
// optional Wöhler curve, Feed streams samples through the hysteresis
// filter and residue matcher, Finalize flushes the interim point and
// dispatches the chosen residue policy, and Deinit (or Reinit) returns
// the engine to its rest state for reuse.
package rainflow

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/filter"
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/policy"
	"github.com/katalvlaran/rainflow/residue"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithWohler overrides the default Wöhler/Basquin curve used for the
// running pseudo-damage total.
func WithWohler(w damage.Wohler) Option {
	return func(e *Engine) { e.wohler = w }
}

// WithFloatMatrix selects a float-backed matrix (half-cycle unit 0.5)
// instead of the default integer-backed matrix (half-cycle unit 1).
func WithFloatMatrix() Option {
	return func(e *Engine) { e.floatMode = true }
}

// WithStore installs external turning-point storage, delegated to on
// every residue push instead of relying solely on the in-memory
// residue slice.
func WithStore(store turningpoint.Store) Option {
	return func(e *Engine) { e.store = store }
}

// Engine is the counting engine. A zero Engine is not usable; build
// one with New. Engine is safe for concurrent use; callers typically
// serialize Feed calls from a single producer goroutine and read the
// accessors from others.
type Engine struct {
	mu sync.Mutex

	params    class.Params
	wohler    damage.Wohler
	floatMode bool
	store     turningpoint.Store

	filt  *filter.Filter
	stack *residue.Stack
	mat   *matrix.Matrix
	acc   damage.Accumulator

	state    State
	position uint64
	seeded   bool
	err      error
}

// New validates p, applies opts, and returns an Engine in StateInit.
// This is the counting engine's init call.
func New(p class.Params, opts ...Option) (*Engine, error) {
	if _, err := class.NewParams(p.N, p.W, p.O, p.H); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Engine{params: p, wohler: damage.DefaultWohler()}
	for _, opt := range opts {
		opt(e)
	}
	e.arm()

	return e, nil
}

// arm (re)builds the filter, residue stack, and matrix from e.params
// and transitions to StateInit. Caller must hold e.mu.
func (e *Engine) arm() {
	e.filt = filter.New(e.params)
	e.stack = residue.New(e.params.N, e.store)
	if e.floatMode {
		e.mat = matrix.NewFloat(e.params.N)
	} else {
		e.mat = matrix.NewInt(e.params.N)
	}
	e.acc = damage.Accumulator{}
	e.position = 0
	e.seeded = false
	e.err = nil
	e.state = StateInit
}

// N, W, O, H read back the class lattice the Engine was constructed
// with.
func (e *Engine) N() uint32   { return e.params.N }
func (e *Engine) W() float64  { return e.params.W }
func (e *Engine) O() float64  { return e.params.O }
func (e *Engine) H() float64  { return e.params.H }
func (e *Engine) Wohler() damage.Wohler { return e.wohler }

// FullIncrement reports the matrix's full-cycle increment (half-cycle
// increment is half of it).
func (e *Engine) FullIncrement() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mat.FullIncrement()
}

// State reports the engine's current lifecycle stage.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Matrix returns the engine's live cycle matrix. Callers must treat it
// as read-only; the engine keeps writing to it until Finalize.
func (e *Engine) Matrix() *matrix.Matrix {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mat
}

// Damage returns the current running pseudo-damage total.
func (e *Engine) Damage() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.acc.Value()
}

// Residue returns a snapshot of the turning points currently held open
// (not yet closed into a cycle).
func (e *Engine) Residue() []turningpoint.TurningPoint {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]turningpoint.TurningPoint, len(e.stack.Points))
	copy(out, e.stack.Points)

	return out
}

// Err returns the error that latched StateError, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Feed streams samples through the hysteresis filter and residue
// matcher, committing every cycle the four-point test closes into the
// matrix and damage accumulator. Feed refuses to run once the engine
// has latched StateError or reached StateFinished, returning
// ErrInvalidState (or the original error, for StateError).
func (e *Engine) Feed(samples []float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateError {
		return fmt.Errorf("Feed: %w", e.err)
	}
	if e.state == StateFinished || e.state == StateInit0 {
		return fmt.Errorf("Feed: %w", ErrInvalidState)
	}

	for _, v := range samples {
		if err := e.feedOne(v); err != nil {
			e.state = StateError
			e.err = err
			return fmt.Errorf("Feed: %w", err)
		}
	}

	if e.filt.HasPending() {
		e.state = StateBusyInterim
	} else {
		e.state = StateBusy
	}

	return nil
}

// feedOne processes a single sample. The engine seeds the residue with
// the very first raw sample directly (the filter itself never emits a
// turning point for the first sample it sees), so a strictly monotone
// stream still leaves a two-element residue of first-and-last sample
// as required by the lattice's edge-case contract.
func (e *Engine) feedOne(value float64) error {
	e.position++
	position := e.position

	tp, emitted, err := e.filt.Feed(value, position)
	if err != nil {
		return err
	}

	if !e.seeded {
		cls, err := e.params.ClassOf(value)
		if err != nil {
			return err
		}
		if err := e.commitPush(turningpoint.TurningPoint{Value: value, Class: cls, Position: position}); err != nil {
			return err
		}
		e.seeded = true
	}

	if emitted {
		if err := e.commitPush(tp); err != nil {
			return err
		}
	}

	return nil
}

// commitPush pushes tp into the residue and commits every cycle the
// four-point test closes as a full cycle into the matrix and damage
// accumulator.
func (e *Engine) commitPush(tp turningpoint.TurningPoint) error {
	closures, err := e.stack.Push(tp)
	if err != nil {
		return err
	}

	for _, c := range closures {
		if err := e.mat.AddFull(c.From.Class, c.To.Class); err != nil {
			return err
		}
		sa := amplitude(c.From.Value, c.To.Value)
		e.acc = e.acc.AddFull(e.wohler, sa)
	}

	return nil
}

func amplitude(from, to float64) float64 {
	diff := from - to
	if diff < 0 {
		diff = -diff
	}
	return diff / 2
}

// Finalize flushes the filter's interim extremum into the residue,
// then dispatches the leftover residue to p. Finalize is idempotent:
// calling it again after StateFinished is a no-op returning nil. This
// is the counting engine's finalize call.
func (e *Engine) Finalize(p policy.ResiduePolicy) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateError {
		return fmt.Errorf("Finalize: %w", e.err)
	}
	if e.state == StateFinished {
		return nil
	}
	if e.state == StateInit0 {
		return fmt.Errorf("Finalize: %w", ErrInvalidState)
	}

	e.state = StateFinalize

	if tp, ok, err := e.filt.FlushInterim(); err != nil {
		e.state = StateError
		e.err = err
		return fmt.Errorf("Finalize: %w", err)
	} else if ok {
		if err := e.commitPush(tp); err != nil {
			e.state = StateError
			e.err = err
			return fmt.Errorf("Finalize: %w", err)
		}
	}

	if err := policy.Apply(p, e.stack, e.mat, &e.acc, e.wohler); err != nil {
		e.state = StateError
		e.err = err
		return fmt.Errorf("Finalize: %w", err)
	}

	e.state = StateFinished

	return nil
}

// Deinit releases the engine's buffers and returns it to StateInit0.
// This is the counting engine's deinit call; call Reinit (or construct
// a new Engine with New) to use it again.
func (e *Engine) Deinit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.filt = nil
	e.stack = nil
	e.mat = nil
	e.acc = damage.Accumulator{}
	e.position = 0
	e.seeded = false
	e.err = nil
	e.state = StateInit0
}

// Reinit rebuilds the engine's filter, residue stack, and matrix from
// its bound class.Params and returns it to StateInit, without
// reallocating a new Engine value.
func (e *Engine) Reinit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.arm()
}
