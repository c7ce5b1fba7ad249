package matrix

import "math"

// RowSums returns, for each from-class, the total cycle count leaving
// that class.
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, m.n)
	for from := uint32(0); from < m.n; from++ {
		var total float64
		for to := uint32(0); to < m.n; to++ {
			total += m.cells[from*m.n+to].Cycles()
		}
		sums[from] = total
	}
	return sums
}

// ColSums returns, for each to-class, the total cycle count arriving
// at that class.
func (m *Matrix) ColSums() []float64 {
	sums := make([]float64, m.n)
	for from := uint32(0); from < m.n; from++ {
		for to := uint32(0); to < m.n; to++ {
			sums[to] += m.cells[from*m.n+to].Cycles()
		}
	}
	return sums
}

// TotalCycles sums every cell.
func (m *Matrix) TotalCycles() float64 {
	var total float64
	for _, c := range m.cells {
		total += c.Cycles()
	}
	return total
}

// Symmetric reports whether cell [i][j] and [j][i] agree within eps
// for every pair — a sanity check rather than a requirement, since a
// rainflow matrix from a fully-closed stream tends toward range-pair
// symmetry but is not guaranteed to reach it exactly.
func (m *Matrix) Symmetric(eps float64) bool {
	for i := uint32(0); i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			a := m.cells[i*m.n+j].Cycles()
			b := m.cells[j*m.n+i].Cycles()
			if math.Abs(a-b) > eps {
				return false
			}
		}
	}
	return true
}
