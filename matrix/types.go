// Package matrix implements the rainflow matrix: a row-major N×N
// histogram of closed cycles indexed by (from-class, to-class), backed
// by a saturating counter.Counter per cell.
package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rainflow/counter"
)

// ErrIndexOutOfRange indicates a from/to class index is outside [0,N).
var ErrIndexOutOfRange = errors.New("matrix: index out of range")

// newCounter constructs the zero counter.Counter for a cell; Matrix
// remembers which kind via the factory rather than a mode flag so
// integer- and float-mode matrices share one code path.
type newCounter func() counter.Counter

// Matrix is a row-major N×N histogram: cell [from][to] lives at linear
// offset from*N+to.
type Matrix struct {
	n       uint32
	cells   []counter.Counter
	fresh   newCounter
	fullInc float64
}

// NewInt returns an N×N Matrix backed by counter.IntCounter (full
// cycle = 2, half cycle = 1).
func NewInt(n uint32) *Matrix {
	fresh := func() counter.Counter { return counter.NewIntCounter() }
	return newMatrix(n, fresh, 2)
}

// NewFloat returns an N×N Matrix backed by counter.FloatCounter (full
// cycle = 1.0, half cycle = 0.5).
func NewFloat(n uint32) *Matrix {
	fresh := func() counter.Counter { return counter.NewFloatCounter() }
	return newMatrix(n, fresh, 1)
}

func newMatrix(n uint32, fresh newCounter, fullInc float64) *Matrix {
	cells := make([]counter.Counter, int(n)*int(n))
	for i := range cells {
		cells[i] = fresh()
	}
	return &Matrix{n: n, cells: cells, fresh: fresh, fullInc: fullInc}
}

// N returns the class count the Matrix was constructed with.
func (m *Matrix) N() uint32 {
	return m.n
}

// FullIncrement reports the counter unit one full cycle adds (2 for
// integer mode, 1.0 for float mode) — divide raw counter units by this
// to recover a cycle count.
func (m *Matrix) FullIncrement() float64 {
	return m.fullInc
}

func (m *Matrix) index(from, to uint32) (int, error) {
	if from >= m.n || to >= m.n {
		return 0, fmt.Errorf("index: from=%d to=%d N=%d: %w", from, to, m.n, ErrIndexOutOfRange)
	}
	return int(from)*int(m.n) + int(to), nil
}
