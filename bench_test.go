package rainflow_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rainflow"
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/policy"
)

// BenchmarkEngine_Feed drives a wide sawtooth stream through a single
// long-lived Engine, the shape expected in the CLI's streaming mode.
func BenchmarkEngine_Feed(b *testing.B) {
	params, err := class.NewParams(64, 1, 0, 0.5)
	if err != nil {
		b.Fatal(err)
	}
	e, err := rainflow.New(params)
	if err != nil {
		b.Fatal(err)
	}

	samples := make([]float64, 4096)
	for i := range samples {
		samples[i] = math.Mod(float64(i), 60) + 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Feed(samples); err != nil {
			b.Fatal(err)
		}
		e.Reinit()
	}
	_ = e.Finalize(policy.Discard)
}
