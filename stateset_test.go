package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	s := NewStateSet(8)
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.GetArray())

	s.Add(5)
	s.Add(1)
	s.Add(5)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []int{1, 5}, s.GetArray())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))

	before := s.Hash()
	s.Add(3)
	assert.NotEqual(t, before, s.Hash())

	s.Reset()
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, hashArray(nil), s.Hash())
}

func TestStateSetFreeze(t *testing.T) {
	s := NewStateSet(4)
	s.Add(2)
	s.Add(0)

	f := s.Freeze(7)
	assert.Equal(t, 7, f.State())
	assert.Equal(t, []int{0, 2}, f.GetArray())
	assert.Equal(t, s.Hash(), f.Hash())
	assert.True(t, s.Equals(f))
	assert.True(t, f.Equals(s))

	// the frozen copy does not follow later changes
	s.Add(1)
	assert.Equal(t, []int{0, 2}, f.GetArray())
	assert.False(t, s.Equals(f))
	assert.False(t, f.Equals(s))
}

func TestStateSetAsMapKey(t *testing.T) {
	m := NewHashMap[int]()
	s := NewStateSet(16)
	for i := 0; i < 16; i++ {
		s.Reset()
		s.Add(i)
		s.Add((i + 3) % 16)
		m.Set(s.Freeze(i), i)
	}
	assert.Equal(t, 16, m.Size())

	probe := NewStateSet(16)
	probe.Add(7)
	probe.Add(4)
	got, ok := m.Get(probe)
	assert.True(t, ok)
	assert.Equal(t, 4, got)

	probe.Add(5)
	_, ok = m.Get(probe)
	assert.False(t, ok)
}
