package automaton

// IntSet is a set of NFA states usable as a HashMap key.
type IntSet interface {
	Hashable

	// GetArray Returns the members in ascending order.
	GetArray() []int

	Size() int
}

func equalArrays(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hashArray combines the mixed members, so equal sets hash alike regardless of how they were built.
func hashArray(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}
