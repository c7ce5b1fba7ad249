// See engine.go for the Engine lifecycle, state.go for State, and
// errors.go for the sentinel errors. Subpackages:
//
//	class/        — discretization lattice and hysteresis threshold
//	turningpoint/ — TurningPoint value and the Store capability
//	filter/       — hysteresis + peak/valley turning-point extraction
//	residue/      — four-point closure test and residue stack
//	counter/      — saturating cycle-count representations
//	matrix/       — N×N cycle histogram and derived statistics
//	damage/       — Wöhler/Basquin pseudo-damage accumulation
//	policy/       — finalize-time residue policies
//	hcm/          — three-point hysteresis-count-method matcher
//	meanstress/   — mean-stress correction models
//	spread/       — damage-history spreading for exported reports
//	rangepair/    — range-pair and level-crossing derived counts
//	report/       — CSV export of a finished engine's matrix
package rainflow

