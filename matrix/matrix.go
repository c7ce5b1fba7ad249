package matrix

// AddFull increments cell [from][to] by one full cycle, saturating.
func (m *Matrix) AddFull(from, to uint32) error {
	idx, err := m.index(from, to)
	if err != nil {
		return err
	}
	m.cells[idx] = m.cells[idx].AddFull()
	return nil
}

// AddHalf increments cell [from][to] by one half cycle, saturating.
func (m *Matrix) AddHalf(from, to uint32) error {
	idx, err := m.index(from, to)
	if err != nil {
		return err
	}
	m.cells[idx] = m.cells[idx].AddHalf()
	return nil
}

// Cycles returns cell [from][to] expressed as a cycle count.
func (m *Matrix) Cycles(from, to uint32) (float64, error) {
	idx, err := m.index(from, to)
	if err != nil {
		return 0, err
	}
	return m.cells[idx].Cycles(), nil
}

// Overflowed reports whether any cell has saturated.
func (m *Matrix) Overflowed() bool {
	for _, c := range m.cells {
		if c.Saturated() {
			return true
		}
	}
	return false
}
