package turningpoint_test

import (
	"testing"

	"github.com/katalvlaran/rainflow/turningpoint"
	"github.com/stretchr/testify/assert"
)

// memStore is a minimal turningpoint.Store used only to exercise the
// interface contract; the residue package has its own default path
// that needs no Store at all.
type memStore struct {
	points map[uint64]turningpoint.TurningPoint
	damage map[uint64]float64
}

func newMemStore() *memStore {
	return &memStore{
		points: make(map[uint64]turningpoint.TurningPoint),
		damage: make(map[uint64]float64),
	}
}

func (s *memStore) Append(tp turningpoint.TurningPoint) error {
	s.points[tp.Position] = tp
	return nil
}

func (s *memStore) At(position uint64) (turningpoint.TurningPoint, bool) {
	tp, ok := s.points[position]
	return tp, ok
}

func (s *memStore) AddDamage(position uint64, d float64) error {
	if _, ok := s.points[position]; !ok {
		return turningpoint.ErrNotFound
	}
	s.damage[position] += d
	return nil
}

func TestMemStore_RoundTrip(t *testing.T) {
	var store turningpoint.Store = newMemStore()

	tp := turningpoint.TurningPoint{Value: 3.5, Class: 2, Position: 7}
	assert.NoError(t, store.Append(tp))

	got, ok := store.At(7)
	assert.True(t, ok)
	assert.Equal(t, tp, got)

	assert.NoError(t, store.AddDamage(7, 0.5))
	assert.ErrorIs(t, store.AddDamage(99, 0.5), turningpoint.ErrNotFound)

	_, ok = store.At(99)
	assert.False(t, ok)
}
