package automaton

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of NFA states tagged with the DFA state it became during
// subset construction.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Reports whether other holds exactly the same states.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch o := other.(type) {
		case *FrozenIntSet:
			return o == nil
		case *StateSet:
			return o == nil
		default:
			return false
		}
	}

	switch o := other.(type) {
	case *FrozenIntSet:
		if o == nil {
			return false
		}
	case *StateSet:
		if o == nil {
			return false
		}
	}
	iset, ok := other.(IntSet)
	if !ok {
		return false
	}
	return iset.Hash() == f.Hash() && equalArrays(f.values, iset.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the DFA state this set was assigned.
func (f *FrozenIntSet) State() int {
	return f.state
}

// Contains Reports whether state is a member.
func (f *FrozenIntSet) Contains(state int) bool {
	lo, hi := 0, len(f.values)
	for lo < hi {
		mid := (lo + hi) >> 1
		switch {
		case f.values[mid] == state:
			return true
		case f.values[mid] < state:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
