// Package meanstress implements mean-stress correction models that
// re-derive a fully-reversed (zero-mean) equivalent amplitude from a
// closed cycle's amplitude and mean, before it is handed to damage's
// Wöhler curve. Two models are supported: Goodman (amplitude scaled
// against an ultimate tensile strength) and FKM (amplitude scaled by a
// mean-stress sensitivity factor, asymmetric between tensile and
// compressive mean).
package meanstress

import "errors"

// ErrInvalidParams indicates Params failed a model's own constraints
// (missing Su for Goodman, negative M for FKM).
var ErrInvalidParams = errors.New("meanstress: invalid parameters")

// ErrMeanStressExceedsLimit indicates a Goodman correction was asked
// to correct a mean stress at or beyond the ultimate strength, which
// has no finite equivalent amplitude.
var ErrMeanStressExceedsLimit = errors.New("meanstress: mean stress exceeds ultimate strength")

// ErrUnknownModel indicates a Model value outside the defined enum.
var ErrUnknownModel = errors.New("meanstress: unknown model")

// Model selects the correction applied by EquivalentAmplitude.
type Model int

const (
	// None passes the amplitude through unchanged.
	None Model = iota
	// Goodman applies Sa / (1 - Sm/Su).
	Goodman
	// FKM applies a mean-stress sensitivity factor, asymmetric between
	// tensile (Sm >= 0) and compressive (Sm < 0) mean stress.
	FKM
)

// Params holds the model-specific constants EquivalentAmplitude needs.
type Params struct {
	// Su is the ultimate tensile strength, required by Goodman.
	Su float64
	// M is the mean-stress sensitivity factor, required by FKM.
	M float64
}
