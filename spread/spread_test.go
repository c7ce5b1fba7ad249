package spread_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/spread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpread_UniformAcrossSubclasses(t *testing.T) {
	p, err := class.NewParams(2, 2, 0, 0.5)
	require.NoError(t, err)

	m := matrix.NewInt(2)
	require.NoError(t, m.AddFull(0, 1))

	w := damage.DefaultWohler()
	bins, err := spread.Spread(m, p, w, 2)
	require.NoError(t, err)
	require.Len(t, bins, 4)

	assert.Equal(t, 0.0, bins[0].Damage)
	assert.Equal(t, 0.0, bins[1].Damage)
	assert.Equal(t, bins[2].Damage, bins[3].Damage)
	assert.Greater(t, bins[2].Damage, 0.0)

	expected := w.PerCycle(1.0) // amplitude = |mean(0)-mean(1)|/2 = |1-3|/2 = 1
	assert.InDelta(t, expected, bins[2].Damage+bins[3].Damage, expected*1e-9)

	assert.Equal(t, 0.5, bins[0].Mean)
	assert.Equal(t, 3.5, bins[3].Mean)
}

func TestSpread_RejectsZeroSubdivision(t *testing.T) {
	p, err := class.NewParams(2, 1, 0, 0.5)
	require.NoError(t, err)
	m := matrix.NewInt(2)
	_, err = spread.Spread(m, p, damage.DefaultWohler(), 0)
	assert.ErrorIs(t, err, spread.ErrInvalidSubdivision)
}
