// Package hcm implements the three-point hysteresis counting method
// (Clormann-Seeger style), an alternative to the four-point matcher in
// residue that trades residue-bound precision for a simpler one-pass
// rule: a candidate cycle closes whenever its range does not exceed
// the range that follows it.
//
// hcm is independent of residue: it keeps its own stack and produces
// its own matrix.Matrix, so a caller can run both matchers side by
// side over the same turning-point stream for comparison.
package hcm
