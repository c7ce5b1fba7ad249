package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_AddFullAndCycles(t *testing.T) {
	m := matrix.NewInt(4)
	require.NoError(t, m.AddFull(2, 1))
	c, err := m.Cycles(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)

	c, err = m.Cycles(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)
}

func TestMatrix_IndexOutOfRange(t *testing.T) {
	m := matrix.NewInt(4)
	assert.ErrorIs(t, m.AddFull(4, 0), matrix.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.AddFull(0, 4), matrix.ErrIndexOutOfRange)
}

func TestMatrix_FloatHalfCycle(t *testing.T) {
	m := matrix.NewFloat(2)
	require.NoError(t, m.AddHalf(0, 1))
	c, err := m.Cycles(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c)
}

func TestMatrix_Statistics(t *testing.T) {
	m := matrix.NewInt(3)
	require.NoError(t, m.AddFull(0, 1))
	require.NoError(t, m.AddFull(0, 2))
	require.NoError(t, m.AddFull(1, 0))

	assert.Equal(t, []float64{2, 1, 0}, m.RowSums())
	assert.Equal(t, []float64{1, 1, 1}, m.ColSums())
	assert.Equal(t, 3.0, m.TotalCycles())
}

func TestMatrix_Overflowed(t *testing.T) {
	m := matrix.NewInt(2)
	assert.False(t, m.Overflowed())
}
