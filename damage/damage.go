package damage

import "math"

// PerCycle computes the pseudo-damage contributed by one full cycle of
// amplitude Sa: (Sa/SD)^k / ND when Sa > 0, else 0.
func (w Wohler) PerCycle(sa float64) float64 {
	if sa <= 0 {
		return 0
	}
	return math.Pow(sa/w.SD, w.K) / w.ND
}

// AddFull accrues one full cycle's damage at amplitude sa and returns
// the updated Accumulator.
func (a Accumulator) AddFull(w Wohler, sa float64) Accumulator {
	return Accumulator{value: a.value + w.PerCycle(sa)}
}

// AddHalf accrues one half cycle's damage (half of PerCycle) at
// amplitude sa and returns the updated Accumulator.
func (a Accumulator) AddHalf(w Wohler, sa float64) Accumulator {
	return Accumulator{value: a.value + w.PerCycle(sa)/2}
}
