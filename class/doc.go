// Package class (rainflow/class) turns a raw load value into a bounded
// class index.
//
// A Params value fixes four numbers for the lifetime of a counting run:
//
//	N — class count (>= 2)
//	W — class width (> 0)
//	O — lower bound of class 0
//	H — hysteresis threshold (0 <= H < N*W)
//
// Class i spans [O+i*W, O+(i+1)*W). ClassOf maps a value to its class,
// rejecting anything outside [O, O+N*W) with ErrOutOfRange.
package class
