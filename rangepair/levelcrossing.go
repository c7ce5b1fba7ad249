package rangepair

import (
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// LevelCrossings counts, for each of the p.N+1 class boundaries, how
// many times the signal crosses that boundary on a rising segment,
// approximating each consecutive pair of turning points as a straight
// line. Index i holds the count for the boundary at p.O + i*p.W.
func LevelCrossings(points []turningpoint.TurningPoint, p class.Params) []uint64 {
	counts := make([]uint64, p.N+1)
	for i := 0; i+1 < len(points); i++ {
		lo, hi := points[i].Value, points[i+1].Value
		rising := hi >= lo
		if !rising {
			lo, hi = hi, lo
		}

		for level := uint32(0); level <= p.N; level++ {
			boundary := p.O + float64(level)*p.W
			if boundary > lo && boundary <= hi && rising {
				counts[level]++
			}
		}
	}

	return counts
}
