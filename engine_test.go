package rainflow_test

import (
	"testing"

	"github.com/katalvlaran/rainflow"
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, n uint32, w, o, h float64) class.Params {
	t.Helper()
	p, err := class.NewParams(n, w, o, h)
	require.NoError(t, err)
	return p
}

func TestEngine_NewRejectsInvalidParams(t *testing.T) {
	_, err := rainflow.New(class.Params{N: 1})
	assert.ErrorIs(t, err, rainflow.ErrInvalidParams)
}

func TestEngine_LifecycleStates(t *testing.T) {
	e, err := rainflow.New(mustParams(t, 4, 1, 0.5, 0.5))
	require.NoError(t, err)
	assert.Equal(t, rainflow.StateInit, e.State())
	assert.Equal(t, 2.0, e.FullIncrement(), "default engine matrix is integer-mode")

	require.NoError(t, e.Feed([]float64{1, 3}))
	assert.Equal(t, rainflow.StateBusyInterim, e.State(), "a running extremum is still pending after 2 samples")

	require.NoError(t, e.Finalize(policy.None))
	assert.Equal(t, rainflow.StateFinished, e.State())
	require.NoError(t, e.Finalize(policy.None), "Finalize is idempotent once finished")

	assert.ErrorIs(t, e.Feed([]float64{1}), rainflow.ErrInvalidState)

	e.Deinit()
	assert.Equal(t, rainflow.StateInit0, e.State())
	assert.ErrorIs(t, e.Feed([]float64{1}), rainflow.ErrInvalidState)

	e.Reinit()
	assert.Equal(t, rainflow.StateInit, e.State())
	require.NoError(t, e.Feed([]float64{1}))
}

// TestEngine_ScenarioTwo drives [1,3,2,4] (N=4, W=1, O=0.5, H=0.5) end
// to end: the interior pair (3,2) closes when Finalize flushes the
// pending point 4, and FullCycles then also closes the outer residue
// pair (1,4).
func TestEngine_ScenarioTwo(t *testing.T) {
	e, err := rainflow.New(mustParams(t, 4, 1, 0.5, 0.5))
	require.NoError(t, err)

	require.NoError(t, e.Feed([]float64{1, 3, 2, 4}))
	assert.Equal(t, rainflow.StateBusyInterim, e.State())

	require.NoError(t, e.Finalize(policy.FullCycles))

	m := e.Matrix()
	c, err := m.Cycles(2, 1) // class(3)=2, class(2)=1
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "the interior 3->2 pair closes naturally")

	c, err = m.Cycles(0, 3) // class(1)=0, class(4)=3
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "FullCycles commits the remaining outer residue pair")

	assert.Greater(t, e.Damage(), 0.0)
}

// TestEngine_MonotoneStreamLeavesEdgeResidue verifies that a strictly
// increasing stream, once finalized, leaves exactly the first and last
// samples as residue: the filter never reverses, so only the engine's
// own first-sample seed and the finalize-time interim flush ever reach
// the residue stack.
func TestEngine_MonotoneStreamLeavesEdgeResidue(t *testing.T) {
	e, err := rainflow.New(mustParams(t, 10, 1, 0, 0.25))
	require.NoError(t, err)

	require.NoError(t, e.Feed([]float64{1, 2, 3, 4, 5}))
	require.NoError(t, e.Finalize(policy.None))

	residue := e.Residue()
	require.Len(t, residue, 2)
	assert.Equal(t, 1.0, residue[0].Value)
	assert.Equal(t, 5.0, residue[1].Value)
}

func TestEngine_OutOfRangeLatchesError(t *testing.T) {
	e, err := rainflow.New(mustParams(t, 4, 1, 0, 1))
	require.NoError(t, err)

	err = e.Feed([]float64{1, 50})
	assert.ErrorIs(t, err, rainflow.ErrOutOfRange)
	assert.Equal(t, rainflow.StateError, e.State())

	assert.ErrorIs(t, e.Feed([]float64{1}), rainflow.ErrOutOfRange)
	assert.ErrorIs(t, e.Finalize(policy.None), rainflow.ErrOutOfRange)
}

func TestEngine_EmptyStreamFinalizeIsNoop(t *testing.T) {
	e, err := rainflow.New(mustParams(t, 4, 1, 0, 0.5))
	require.NoError(t, err)

	require.NoError(t, e.Finalize(policy.None))
	assert.Equal(t, rainflow.StateFinished, e.State())
	assert.Empty(t, e.Residue())
	assert.Equal(t, 0.0, e.Damage())
}

func TestEngine_WithFloatMatrixAndWohler(t *testing.T) {
	w, err := damage.NewWohler(800, 2e6, 4)
	require.NoError(t, err)

	e, err := rainflow.New(mustParams(t, 4, 1, 0.5, 0.5), rainflow.WithFloatMatrix(), rainflow.WithWohler(w))
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.FullIncrement(), "float-mode matrix")
	require.NoError(t, e.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, e.Finalize(policy.HalfCycles))

	c, err := e.Matrix().Cycles(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "the interior pair already closed as a full cycle before the residue policy ran")
}
