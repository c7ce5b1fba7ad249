package policy

import (
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/residue"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// Apply commits the residue in *stack per the chosen policy, updating
// m and acc as needed. It returns an error for out-of-range class
// indices (which cannot occur for points that already passed through
// the filter) or for not-yet-implemented standards variants.
func Apply(p ResiduePolicy, stack *residue.Stack, m *matrix.Matrix, acc *damage.Accumulator, w damage.Wohler) error {
	switch p {
	case None, Ignore:
		return nil // leave the residue as-is; no further counting

	case Discard:
		stack.Reset()
		return nil

	case HalfCycles:
		return countAdjacentPairs(stack.Points, m, acc, w, false)

	case FullCycles:
		return countAdjacentPairs(stack.Points, m, acc, w, true)

	case Repeated:
		return applyRepeated(stack, m, acc, w)

	case ClormannSeeger, RPDIN45667:
		return ErrNotImplemented

	default:
		return ErrUnknownPolicy
	}
}

func countAdjacentPairs(points []turningpoint.TurningPoint, m *matrix.Matrix, acc *damage.Accumulator, w damage.Wohler, full bool) error {
	for i := 0; i+1 < len(points); i++ {
		from, to := points[i], points[i+1]
		sa := amplitude(from, to)
		if full {
			if err := m.AddFull(from.Class, to.Class); err != nil {
				return err
			}
			*acc = acc.AddFull(w, sa)
		} else {
			if err := m.AddHalf(from.Class, to.Class); err != nil {
				return err
			}
			*acc = acc.AddHalf(w, sa)
		}
	}
	return nil
}

// applyRepeated appends a copy of the residue to itself and re-runs
// the four-point matcher against the doubled sequence; this always
// terminates because the doubled residue either closes every interior
// pair or is itself monotone.
func applyRepeated(stack *residue.Stack, m *matrix.Matrix, acc *damage.Accumulator, w damage.Wohler) error {
	original := append([]turningpoint.TurningPoint(nil), stack.Points...)
	if len(original) == 0 {
		return nil
	}

	doubled := residue.New(uint32(len(original)), nil)
	for _, p := range append(append([]turningpoint.TurningPoint(nil), original...), original...) {
		closures, err := doubled.Push(p)
		if err != nil {
			return err
		}
		for _, c := range closures {
			sa := amplitude(c.From, c.To)
			if err := m.AddFull(c.From.Class, c.To.Class); err != nil {
				return err
			}
			*acc = acc.AddFull(w, sa)
		}
	}
	stack.Points = doubled.Points

	return nil
}

func amplitude(from, to turningpoint.TurningPoint) float64 {
	diff := from.Value - to.Value
	if diff < 0 {
		diff = -diff
	}
	return diff / 2
}
