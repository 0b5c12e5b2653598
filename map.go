package automaton

// Hashable is a key type that supplies its own hash and equality.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. Subset construction uses it to find the
// DFA state of an NFA state set by value, probing with a mutable StateSet and storing the frozen
// copy. It is not safe for concurrent mutation.
type HashMap[T any] struct {
	buckets []*bucketEntry[T]
	size    int
}

type bucketEntry[T any] struct {
	key   Hashable
	value T
	next  *bucketEntry[T]
}

type hashMapOptions struct {
	capacity int
}

type HashMapOption func(*hashMapOptions)

// WithCapacity sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

// NewHashMap creates an empty map.
func NewHashMap[T any](options ...HashMapOption) *HashMap[T] {
	opts := &hashMapOptions{capacity: 1}
	for _, fn := range options {
		fn(opts)
	}

	n := 1
	for n < opts.capacity {
		n <<= 1
	}
	return &HashMap[T]{buckets: make([]*bucketEntry[T], n)}
}

func (m *HashMap[T]) slot(hash uint64) uint64 {
	return hash & uint64(len(m.buckets)-1)
}

func (m *HashMap[T]) find(key Hashable) *bucketEntry[T] {
	for e := m.buckets[m.slot(key.Hash())]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// Set inserts or replaces the value stored under key. The table doubles once it is more than three
// quarters full.
func (m *HashMap[T]) Set(key Hashable, value T) {
	if e := m.find(key); e != nil {
		e.value = value
		return
	}

	i := m.slot(key.Hash())
	m.buckets[i] = &bucketEntry[T]{key: key, value: value, next: m.buckets[i]}
	m.size++
	if 4*m.size > 3*len(m.buckets) {
		m.grow()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Size returns the number of keys.
func (m *HashMap[T]) Size() int {
	return m.size
}

func (m *HashMap[T]) grow() {
	old := m.buckets
	m.buckets = make([]*bucketEntry[T], 2*len(old))
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			i := m.slot(e.key.Hash())
			e.next = m.buckets[i]
			m.buckets[i] = e
			e = next
		}
	}
}
