package automaton

import (
	"fmt"
	"slices"
)

// DefaultDeterminizeWorkLimit is the largest number of DFA states subset construction creates before
// giving up with ErrTooComplexToDeterminize.
const DefaultDeterminizeWorkLimit = 10000

// Subsets records, for each state of a DFA built by subset construction, the NFA states it stands
// for. It only means something for that DFA; minimization does not carry it over.
type Subsets []*FrozenIntSet

// Of Returns the NFA states of DFA state in ascending order.
func (s Subsets) Of(state int) []int {
	return slices.Clone(s[state].GetArray())
}

// Determinize Determinizes the given automaton over alphabet.
// Worst case complexity: exponential in number of states.
// Params: 	workLimit – Maximum number of DFA states to create; zero or negative means no limit.
func Determinize(a *Automaton, alphabet []rune, workLimit int) (*Automaton, error) {
	d, _, err := DeterminizeSubsets(a, alphabet, workLimit)
	return d, err
}

// DeterminizeSubsets runs subset construction and also returns the NFA state set behind every DFA
// state. Epsilon transitions are eliminated first if a still has any. Every state of the result has
// exactly one transition per symbol of alphabet; the empty subset, when reached, becomes a
// non-accepting sink.
func DeterminizeSubsets(a *Automaton, alphabet []rune, workLimit int) (*Automaton, Subsets, error) {
	if a.GetNumEpsilons() > 0 {
		a = RemoveEpsilons(a)
	}
	alphabet = NormalizeAlphabet(alphabet)

	numStates := a.GetNumStates()
	idx := a.outgoing()

	b := NewAutomatonV1(numStates, numStates*len(alphabet))
	newState := NewHashMap[int](WithCapacity(16))

	// Create state 0:
	b.CreateState()
	initial := NewStateSet(numStates)
	if numStates > 0 {
		initial.Add(0)
		b.SetAccept(0, a.IsAccept(0))
	}
	initialSet := initial.Freeze(0)
	newState.Set(initialSet, 0)
	subsets := Subsets{initialSet}

	scratch := NewStateSet(numStates)
	for i := 0; i < len(subsets); i++ {
		for _, c := range alphabet {
			scratch.Reset()
			for _, s := range subsets[i].GetArray() {
				for _, t := range idx.symbols[s] {
					if t.Label == c {
						scratch.Add(t.Dest)
					}
				}
			}

			dest, ok := newState.Get(scratch)
			if !ok {
				if workLimit > 0 && len(subsets) >= workLimit {
					return nil, nil, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, workLimit)
				}
				dest = b.CreateState()
				frozen := scratch.Freeze(dest)
				subsets = append(subsets, frozen)
				newState.Set(frozen, dest)
				for _, s := range frozen.GetArray() {
					if a.IsAccept(s) {
						b.SetAccept(dest, true)
						break
					}
				}
			}
			b.transitions = append(b.transitions, Transition{Source: i, Dest: dest, Label: c})
		}
	}

	b.changed()
	b.deterministic = true
	b.alphabet = alphabet
	return b, subsets, nil
}
