package residue

import "github.com/katalvlaran/rainflow/turningpoint"

// Push appends tp to the residue and greedily applies the four-point
// closure test to the trailing window until it no longer matches,
// returning every cycle closed along the way (zero or more).
//
// Closure test, on the last four points A, B, C, D (in stream order):
//
//	loInner, hiInner = min/max(B.Class, C.Class)
//	loOuter, hiOuter = min/max(A.Class, D.Class)
//	closes iff loInner >= loOuter && hiInner <= hiOuter
//
// The test nests class indices, not raw values: the stack's 2*N bound
// is a theorem about the class lattice (at most 2*N open points can
// exist before some window closes), and only holds when the
// comparison is over classes. Comparing raw values lets a strictly
// expanding zigzag grow the stack without bound even though every
// sample maps into the same N classes.
//
// On closure, B and C are removed (A and D become adjacent) and the
// test repeats against the new trailing window.
func (s *Stack) Push(tp turningpoint.TurningPoint) ([]Closure, error) {
	if s.store != nil {
		if err := s.store.Append(tp); err != nil {
			return nil, err
		}
	}
	s.Points = append(s.Points, tp)

	var closures []Closure
	for len(s.Points) >= 4 {
		n := len(s.Points)
		a, b, c, d := s.Points[n-4], s.Points[n-3], s.Points[n-2], s.Points[n-1]

		loInner, hiInner := minMaxClass(b.Class, c.Class)
		loOuter, hiOuter := minMaxClass(a.Class, d.Class)

		if loInner < loOuter || hiInner > hiOuter {
			break // outer pair does not contain the inner pair; wait for more input
		}

		closures = append(closures, Closure{From: b, To: c})
		// Remove B and C only; A and D become adjacent.
		s.Points = append(s.Points[:n-3], s.Points[n-1:]...)
	}

	return closures, nil
}
