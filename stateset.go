package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &StateSet{}

// StateSet collects NFA states while a DFA transition is being computed. It hashes like the
// FrozenIntSet it freezes into, so it can be used to probe a HashMap before freezing.
type StateSet struct {
	inner       *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		inner: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashArray(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f, ok := other.(*FrozenIntSet); ok && f == nil {
		return false
	}
	return s.Hash() == is.Hash() && equalArrays(s.GetArray(), is.GetArray())
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.inner.Count())
	for k, ok := s.inner.NextSet(0); ok; k, ok = s.inner.NextSet(k + 1) {
		keys = append(keys, int(k))
	}
	return keys
}

func (s *StateSet) Size() int {
	return int(s.inner.Count())
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add Adds state to the set.
func (s *StateSet) Add(state int) {
	if !s.inner.Test(uint(state)) {
		s.inner.Set(uint(state))
		s.keyChanged()
	}
}

// Contains Reports whether state is a member.
func (s *StateSet) Contains(state int) bool {
	return s.inner.Test(uint(state))
}

// Reset Empties the set for reuse.
func (s *StateSet) Reset() {
	s.inner.ClearAll()
	s.keyChanged()
}

// Freeze Returns an immutable copy of the set tagged with the given DFA state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
