package spread

import (
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/matrix"
)

// Spread computes, for every cell of m with a nonzero cycle count, the
// pseudo-damage that cell contributes under w, and distributes it in
// equal shares across sub sub-classes of the to-class's width. The
// returned slice has len(N)*sub entries ordered by ascending mean.
func Spread(m *matrix.Matrix, p class.Params, w damage.Wohler, sub uint32) ([]Bin, error) {
	if sub == 0 {
		return nil, ErrInvalidSubdivision
	}

	n := m.N()
	width := p.W / float64(sub)
	bins := make([]Bin, uint64(n)*uint64(sub))
	for i := range bins {
		bins[i].Mean = p.O + (float64(i)+0.5)*width
	}

	for from := uint32(0); from < n; from++ {
		for to := uint32(0); to < n; to++ {
			cycles, err := m.Cycles(from, to)
			if err != nil {
				return nil, err
			}
			if cycles == 0 {
				continue
			}

			sa := amplitude(p.Mean(from), p.Mean(to))
			share := cycles * w.PerCycle(sa) / float64(sub)
			base := uint64(to) * uint64(sub)
			for k := uint64(0); k < uint64(sub); k++ {
				bins[base+k].Damage += share
			}
		}
	}

	return bins, nil
}

func amplitude(a, b float64) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff / 2
}
