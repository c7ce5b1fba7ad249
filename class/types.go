// Package class defines the discretization scheme that turns a continuous
// load value into a bounded class index, and the hysteresis threshold that
// rides alongside it.
//
// Params is immutable once constructed: N, W, and O fix the class lattice,
// H is the hysteresis amplitude the filter package reads from it. Its
// consumers (filter, the rainflow engine, and the rangepair, spread and
// report post-processors) treat a class.Params value as a read-only,
// comparable configuration object; residue and matrix take only N.
package class

import (
	"errors"
	"fmt"
)

// Sentinel errors for class.Params construction and lookups.
var (
	// ErrInvalidParams indicates N, W, O, or H violate the constraints in
	// NewParams's contract.
	ErrInvalidParams = errors.New("class: invalid parameters")

	// ErrOutOfRange indicates a value lies outside [O, O+N*W).
	ErrOutOfRange = errors.New("class: value out of range")
)

// Params describes the immutable class lattice and hysteresis threshold
// shared by the whole counting pipeline.
//
//   - N is the number of classes, N >= 2.
//   - W is the class width, W > 0.
//   - O is the lower bound of class 0.
//   - H is the hysteresis threshold, 0 <= H < N*W.
type Params struct {
	N uint32
	W float64
	O float64
	H float64
}

// NewParams validates and constructs a Params.
//
// Rejects N < 2, W <= 0, H < 0, and H >= N*W with ErrInvalidParams,
// mirroring the init() contract in the counting engine's lifecycle.
func NewParams(n uint32, w, o, h float64) (Params, error) {
	if n < 2 {
		return Params{}, fmt.Errorf("NewParams: N=%d must be >= 2: %w", n, ErrInvalidParams)
	}
	if w <= 0 {
		return Params{}, fmt.Errorf("NewParams: W=%g must be > 0: %w", w, ErrInvalidParams)
	}
	if h < 0 {
		return Params{}, fmt.Errorf("NewParams: H=%g must be >= 0: %w", h, ErrInvalidParams)
	}
	if span := float64(n) * w; h >= span {
		return Params{}, fmt.Errorf("NewParams: H=%g must be < N*W=%g: %w", h, span, ErrInvalidParams)
	}

	return Params{N: n, W: w, O: o, H: h}, nil
}

// Span returns the upper bound (exclusive) of the valid sample range,
// O + N*W.
func (p Params) Span() float64 {
	return p.O + float64(p.N)*p.W
}
