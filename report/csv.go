package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/matrix"
	"github.com/katalvlaran/rainflow/turningpoint"
)

// WriteMatrix writes m, residue, and totalDamage as CSV to w: a run-id
// and damage header, a nonzero-cell cycle table keyed by class means,
// and a trailing residue table. Returns the generated run id.
func WriteMatrix(w io.Writer, p class.Params, m *matrix.Matrix, totalDamage float64, residue []turningpoint.TurningPoint) (string, error) {
	runID := uuid.NewString()

	cw := csv.NewWriter(w)
	rows := [][]string{
		{"run_id", runID},
		{"total_damage", fmt.Sprintf("%g", totalDamage)},
		{"overflowed", fmt.Sprintf("%t", m.Overflowed())},
		{"from_class", "to_class", "from_mean", "to_mean", "cycles"},
	}
	if err := cw.WriteAll(rows); err != nil {
		return "", err
	}

	n := m.N()
	for from := uint32(0); from < n; from++ {
		for to := uint32(0); to < n; to++ {
			cycles, err := m.Cycles(from, to)
			if err != nil {
				return "", err
			}
			if cycles == 0 {
				continue
			}
			row := []string{
				fmt.Sprint(from),
				fmt.Sprint(to),
				fmt.Sprintf("%g", p.Mean(from)),
				fmt.Sprintf("%g", p.Mean(to)),
				fmt.Sprintf("%g", cycles),
			}
			if err := cw.Write(row); err != nil {
				return "", err
			}
		}
	}

	if err := cw.Write([]string{"residue_count", fmt.Sprint(len(residue))}); err != nil {
		return "", err
	}
	for _, tp := range residue {
		row := []string{"residue", fmt.Sprint(tp.Class), fmt.Sprintf("%g", tp.Value), fmt.Sprint(tp.Position)}
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}

	cw.Flush()
	return runID, cw.Error()
}
