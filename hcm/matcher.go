package hcm

import "github.com/katalvlaran/rainflow/turningpoint"

// Closure mirrors residue.Closure but keeps hcm free of a dependency
// on the four-point package.
type Closure struct {
	From turningpoint.TurningPoint
	To   turningpoint.TurningPoint
}

// Matcher is the three-point method's running stack. A zero Matcher is
// ready to use.
type Matcher struct {
	points []turningpoint.TurningPoint
}

// New returns an empty Matcher.
func New() *Matcher {
	return &Matcher{}
}

// Push appends tp and repeatedly applies the three-point test to the
// last three entries: given A, B, C in stream order, the pair (A, B)
// closes whenever |B-A| <= |C-B|. Closed pairs are removed (C becomes
// adjacent to whatever preceded A) and the test repeats.
func (m *Matcher) Push(tp turningpoint.TurningPoint) []Closure {
	m.points = append(m.points, tp)

	var closures []Closure
	for len(m.points) >= 3 {
		n := len(m.points)
		a, b, c := m.points[n-3], m.points[n-2], m.points[n-1]

		rangeAB := absDiff(a.Value, b.Value)
		rangeBC := absDiff(b.Value, c.Value)
		if rangeAB > rangeBC {
			break
		}

		closures = append(closures, Closure{From: a, To: b})
		m.points = append(m.points[:n-3], c)
	}

	return closures
}

// Residue returns a snapshot of the turning points still open.
func (m *Matcher) Residue() []turningpoint.TurningPoint {
	out := make([]turningpoint.TurningPoint, len(m.points))
	copy(out, m.points)
	return out
}

// Len reports the number of turning points currently held.
func (m *Matcher) Len() int {
	return len(m.points)
}

func absDiff(a, b float64) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff
}
