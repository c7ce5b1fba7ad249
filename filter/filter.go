package filter

import "github.com/katalvlaran/rainflow/turningpoint"

// Feed processes one sample through the hysteresis + peak/valley rules
// and reports whether a turning point was emitted.
//
// The hysteresis comparison is strict (>, not >=): equal-valued
// plateaus never trigger a reversal. Position is the caller-supplied
// 1-based absolute index of value in the input stream.
func (f *Filter) Feed(value float64, position uint64) (turningpoint.TurningPoint, bool, error) {
	if _, err := f.params.ClassOf(value); err != nil {
		return turningpoint.TurningPoint{}, false, err
	}

	if !f.started {
		f.current = extremum{value: value, position: position}
		f.slope = slopeFlat
		f.started = true
		return turningpoint.TurningPoint{}, false, nil
	}

	if f.slope == slopeFlat {
		diff := value - f.current.value
		switch {
		case diff > f.params.H:
			f.slope = slopeRising
			return f.advance(value, position)
		case diff < -f.params.H:
			f.slope = slopeFalling
			return f.advance(value, position)
		case diff == 0:
			f.current = extremum{value: value, position: position}
			return turningpoint.TurningPoint{}, false, nil
		default:
			return turningpoint.TurningPoint{}, false, nil
		}
	}

	return f.advance(value, position)
}

// advance applies the locked-slope rules (spec rules 3 and 4) for one
// sample against the running extremum.
func (f *Filter) advance(value float64, position uint64) (turningpoint.TurningPoint, bool, error) {
	switch f.slope {
	case slopeRising:
		if value >= f.current.value {
			f.current = extremum{value: value, position: position}
			return turningpoint.TurningPoint{}, false, nil
		}
		if f.current.value-value > f.params.H {
			return f.reverse(value, position, slopeFalling)
		}
		return turningpoint.TurningPoint{}, false, nil

	case slopeFalling:
		if value <= f.current.value {
			f.current = extremum{value: value, position: position}
			return turningpoint.TurningPoint{}, false, nil
		}
		if value-f.current.value > f.params.H {
			return f.reverse(value, position, slopeRising)
		}
		return turningpoint.TurningPoint{}, false, nil
	}

	// Reached only if advance is called while slope is flat, which
	// Feed never does.
	return turningpoint.TurningPoint{}, false, nil
}

// reverse emits the current extremum as a turning point, then starts a
// fresh running extremum at (value, position) under the new slope.
func (f *Filter) reverse(value float64, position uint64, next slope) (turningpoint.TurningPoint, bool, error) {
	class, err := f.params.ClassOf(f.current.value)
	if err != nil {
		return turningpoint.TurningPoint{}, false, err
	}

	tp := turningpoint.TurningPoint{
		Value:    f.current.value,
		Class:    class,
		Position: f.current.position,
	}
	f.current = extremum{value: value, position: position}
	f.slope = next

	return tp, true, nil
}

// HasPending reports whether the filter holds a running extremum that
// has not yet been emitted as a turning point — the condition the
// engine's BUSY_INTERIM state tracks.
func (f *Filter) HasPending() bool {
	return f.started
}

// FlushInterim emits the current running extremum as a turning point,
// for use at finalize. Returns ok=false if no sample has been fed yet.
func (f *Filter) FlushInterim() (turningpoint.TurningPoint, bool, error) {
	if !f.started {
		return turningpoint.TurningPoint{}, false, nil
	}

	class, err := f.params.ClassOf(f.current.value)
	if err != nil {
		return turningpoint.TurningPoint{}, false, err
	}

	return turningpoint.TurningPoint{
		Value:    f.current.value,
		Class:    class,
		Position: f.current.position,
	}, true, nil
}
