package automaton

import (
	"fmt"
	"slices"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the label carried by transitions that consume no input.
const Epsilon rune = -1

// Transition is a directed edge between two states. A Label of Epsilon marks an
// epsilon transition.
type Transition struct {
	Source int
	Dest   int
	Label  rune
}

// IsEpsilon Returns true if this transition consumes no input symbol.
func (t Transition) IsEpsilon() bool {
	return t.Label == Epsilon
}

func (t Transition) shift(offset int) Transition {
	return Transition{Source: t.Source + offset, Dest: t.Dest + offset, Label: t.Label}
}

// Automaton Represents an automaton and all its states and transitions. States are dense integers
// created using CreateState; state 0 is always the initial state. Symbol transitions and epsilon
// transitions are kept apart. Mark a state as an accept state using SetAccept.
//
// The deterministic flag is only ever set by subset construction and minimization, which also record
// the alphabet the automaton is complete over.
type Automaton struct {
	numStates int

	// Symbol transitions, in insertion order.
	transitions []Transition

	// Epsilon transitions, in insertion order.
	epsilons []Transition

	isAccept *bitset.BitSet

	// True if every state has exactly one transition per symbol of alphabet and there are no
	// epsilon transitions.
	deterministic bool
	alphabet      []rune

	// Per-state outgoing transitions, built on first query and dropped on mutation.
	mu    sync.Mutex
	index *stateIndex
}

type stateIndex struct {
	symbols  [][]Transition
	epsilons [][]int
}

func NewAutomaton() *Automaton {
	return NewAutomatonV1(2, 2)
}

// NewAutomatonV1 Creates an empty automaton with room for numStates states and numTransitions
// symbol transitions.
func NewAutomatonV1(numStates, numTransitions int) *Automaton {
	return &Automaton{
		isAccept:    bitset.New(uint(numStates)),
		transitions: make([]Transition, 0, numTransitions),
	}
}

// newAutomatonStates creates an automaton that already holds n states.
func newAutomatonStates(n int) *Automaton {
	a := NewAutomatonV1(n, n)
	a.numStates = n
	return a
}

// CreateState Create a new state. The new state has no transitions yet, so a deterministic
// automaton stops being complete and loses its flag.
func (a *Automaton) CreateState() int {
	state := a.numStates
	a.numStates++
	a.markNondeterministic()
	a.changed()
	return state
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

func (a *Automaton) clearAccept() {
	a.isAccept.ClearAll()
}

// GetAcceptStates Returns the accept states in ascending order.
func (a *Automaton) GetAcceptStates() []int {
	states := make([]int, 0, a.isAccept.Count())
	for s, ok := a.isAccept.NextSet(0); ok && s < uint(a.numStates); s, ok = a.isAccept.NextSet(s + 1) {
		states = append(states, int(s))
	}
	return states
}

func (a *Automaton) checkState(state int) error {
	if state < 0 || state >= a.numStates {
		return fmt.Errorf("state %d out of range [0, %d)", state, a.numStates)
	}
	return nil
}

// AddTransitionLabel Add a new transition from source to dest on label.
func (a *Automaton) AddTransitionLabel(source, dest int, label rune) error {
	if label < 0 {
		return fmt.Errorf("invalid label %d", label)
	}
	if err := a.checkState(source); err != nil {
		return err
	}
	if err := a.checkState(dest); err != nil {
		return err
	}
	// a second edge on (source, label), or a symbol the automaton is not complete over, breaks
	// determinism
	if a.deterministic && (a.Step(source, label) != -1 || !slices.Contains(a.alphabet, label)) {
		a.markNondeterministic()
	}
	a.transitions = append(a.transitions, Transition{Source: source, Dest: dest, Label: label})
	a.changed()
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (a *Automaton) AddEpsilon(source, dest int) error {
	if err := a.checkState(source); err != nil {
		return err
	}
	if err := a.checkState(dest); err != nil {
		return err
	}
	a.epsilons = append(a.epsilons, Transition{Source: source, Dest: dest, Label: Epsilon})
	a.markNondeterministic()
	a.changed()
	return nil
}

// addShifted appends other's transitions with every endpoint moved by offset. Endpoints are
// trusted to be in range; callers size the automaton first.
func (a *Automaton) addShifted(other *Automaton, offset int) {
	for _, t := range other.transitions {
		a.transitions = append(a.transitions, t.shift(offset))
	}
	for _, t := range other.epsilons {
		a.epsilons = append(a.epsilons, t.shift(offset))
	}
	a.changed()
}

func (a *Automaton) addEpsilon(source, dest int) {
	a.epsilons = append(a.epsilons, Transition{Source: source, Dest: dest, Label: Epsilon})
}

func (a *Automaton) markNondeterministic() {
	a.deterministic = false
	a.alphabet = nil
}

func (a *Automaton) changed() {
	a.mu.Lock()
	a.index = nil
	a.mu.Unlock()
}

// IsDeterministic Returns true if this automaton is deterministic (for every state there is exactly
// one transition for each symbol of Alphabet).
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// Alphabet Returns the symbols a deterministic automaton is complete over, or nil.
func (a *Automaton) Alphabet() []rune {
	return slices.Clone(a.alphabet)
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return a.numStates
}

// GetNumTransitions How many symbol transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions)
}

// GetNumEpsilons How many epsilon transitions this automaton has.
func (a *Automaton) GetNumEpsilons() int {
	return len(a.epsilons)
}

// GetNumTransitionsWithState How many symbol transitions leave this state.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	return len(a.outgoing().symbols[state])
}

// GetTransitions Returns a copy of the symbol transitions.
func (a *Automaton) GetTransitions() []Transition {
	return slices.Clone(a.transitions)
}

// GetEpsilons Returns a copy of the epsilon transitions.
func (a *Automaton) GetEpsilons() []Transition {
	return slices.Clone(a.epsilons)
}

func (a *Automaton) outgoing() *stateIndex {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.index != nil {
		return a.index
	}
	idx := &stateIndex{
		symbols:  make([][]Transition, a.numStates),
		epsilons: make([][]int, a.numStates),
	}
	for _, t := range a.transitions {
		idx.symbols[t.Source] = append(idx.symbols[t.Source], t)
	}
	for _, t := range a.epsilons {
		idx.epsilons[t.Source] = append(idx.epsilons[t.Source], t.Dest)
	}
	a.index = idx
	return idx
}

// EpsilonClosure Returns the states reachable from state through zero or more epsilon transitions,
// state itself included.
func (a *Automaton) EpsilonClosure(state int) *bitset.BitSet {
	idx := a.outgoing()
	closure := bitset.New(uint(a.numStates))
	closure.Set(uint(state))

	stack := []int{state}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dest := range idx.epsilons[s] {
			if !closure.Test(uint(dest)) {
				closure.Set(uint(dest))
				stack = append(stack, dest)
			}
		}
	}
	return closure
}

// Step Performs lookup in transitions, assuming determinism.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state int, label rune) int {
	for _, t := range a.outgoing().symbols[state] {
		if t.Label == label {
			return t.Dest
		}
	}
	return -1
}
