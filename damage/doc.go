// Package damage implements the Wöhler/Basquin curve
// N*Sa^k = const via Wohler{SD, ND, K} and an Accumulator that sums
// per-cycle pseudo-damage.
//
// "Pseudo" because the total is relative to the chosen curve, not a
// physical life prediction: D_cycle = (Sa/SD)^k / ND for Sa > 0, else
// 0. Half cycles contribute D_cycle/2.
package damage
