package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/report"
	"github.com/katalvlaran/rainflow/turningpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMatrix(t *testing.T) {
	p, err := class.NewParams(4, 1, 0.5, 0.5)
	require.NoError(t, err)

	m := matrix.NewInt(4)
	require.NoError(t, m.AddFull(2, 1))

	residue := []turningpoint.TurningPoint{
		{Value: 1, Class: 0, Position: 1},
		{Value: 4, Class: 3, Position: 4},
	}

	var buf bytes.Buffer
	runID, err := report.WriteMatrix(&buf, p, m, 0.125, residue)
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	require.NoError(t, err, "WriteMatrix must return a parseable run id")

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1 // header, cycle and residue rows differ in width
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"run_id", runID}, rows[0])
	assert.Equal(t, []string{"total_damage", "0.125"}, rows[1])
	assert.Equal(t, []string{"from_class", "to_class", "from_mean", "to_mean", "cycles"}, rows[3])
	assert.Equal(t, []string{"2", "1", "3", "2", "1"}, rows[4])
	assert.Equal(t, []string{"residue_count", "2"}, rows[5])
	assert.Equal(t, []string{"residue", "0", "1", "1"}, rows[6])
	assert.Equal(t, []string{"residue", "3", "4", "4"}, rows[7])
}
