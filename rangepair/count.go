package rangepair

import (
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// Count builds a matrix.Matrix by treating every adjacent pair of
// turning points as one half cycle, the classical range-pair method.
// floatMode selects NewFloat over NewInt for the returned matrix.
func Count(points []turningpoint.TurningPoint, n uint32, floatMode bool) (*matrix.Matrix, error) {
	var m *matrix.Matrix
	if floatMode {
		m = matrix.NewFloat(n)
	} else {
		m = matrix.NewInt(n)
	}

	for i := 0; i+1 < len(points); i++ {
		if err := m.AddHalf(points[i].Class, points[i+1].Class); err != nil {
			return nil, err
		}
	}

	return m, nil
}
