package hcm_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/hcm"
	"github.com/katalvlaran/rainflow/turningpoint"
	"github.com/stretchr/testify/assert"
)

func push(m *hcm.Matcher, value float64, pos uint64) []hcm.Closure {
	return m.Push(turningpoint.TurningPoint{Value: value, Class: uint32(value), Position: pos})
}

func TestMatcher_ClosesNestedRange(t *testing.T) {
	m := hcm.New()

	assert.Empty(t, push(m, 1, 1))
	assert.Empty(t, push(m, 6, 2))
	assert.Empty(t, push(m, 2, 3), "5 > 4: the 1-6 range does not close")

	closures := push(m, 8, 4)
	assert.Len(t, closures, 1)
	assert.Equal(t, 6.0, closures[0].From.Value)
	assert.Equal(t, 2.0, closures[0].To.Value)

	residue := m.Residue()
	assert.Equal(t, []float64{1, 8}, []float64{residue[0].Value, residue[1].Value})
}

func TestMatcher_ShrinkingGapsNeverClose(t *testing.T) {
	// Each successive gap (8,4,2,1) is strictly smaller than the one
	// before it, so rangeAB > rangeBC holds for every triple and the
	// three-point test never finds a closure.
	m := hcm.New()
	for i, v := range []float64{0, 8, 12, 14, 15} {
		assert.Empty(t, push(m, v, uint64(i+1)))
	}
	assert.Equal(t, 5, m.Len())
}
