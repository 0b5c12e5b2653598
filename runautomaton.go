package automaton

import (
	"errors"
	"unicode/utf8"
)

// RunAutomaton is a deterministic automaton flattened into a states × alphabet lookup table. It never
// changes after construction and may be shared between goroutines.
type RunAutomaton struct {
	alphabet    []rune
	symbols     map[rune]int
	size        int
	transitions []int
	accept      []bool
}

// NewRunAutomaton Builds the lookup table for a deterministic automaton.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, errors.New("input automaton must be deterministic")
	}

	alphabet := a.Alphabet()
	r := &RunAutomaton{
		alphabet:    alphabet,
		symbols:     make(map[rune]int, len(alphabet)),
		size:        a.GetNumStates(),
		transitions: make([]int, a.GetNumStates()*len(alphabet)),
		accept:      make([]bool, a.GetNumStates()),
	}
	for i, c := range alphabet {
		r.symbols[c] = i
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for _, t := range a.transitions {
		r.transitions[t.Source*len(alphabet)+r.symbols[t.Label]] = t.Dest
	}
	for s := 0; s < r.size; s++ {
		r.accept[s] = a.IsAccept(s)
	}
	return r, nil
}

// GetSize Returns the number of states.
func (r *RunAutomaton) GetSize() int {
	return r.size
}

// IsAccept Returns true if state is an accept state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step Returns the state reached from state on c, or -1 when c is not in the alphabet.
func (r *RunAutomaton) Step(state int, c rune) int {
	ci, ok := r.symbols[c]
	if !ok {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+ci]
}

// Run Returns true if the given string is accepted by this automaton
func (r *RunAutomaton) Run(s string) bool {
	if r.size == 0 {
		return false
	}
	p := 0
	for _, c := range s {
		p = r.Step(p, c)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}

// RunBytes Returns true if the given UTF-8 text is accepted by this automaton. Invalid encodings
// reject.
func (r *RunAutomaton) RunBytes(s []byte) bool {
	if r.size == 0 {
		return false
	}
	p := 0
	for len(s) > 0 {
		c, n := utf8.DecodeRune(s)
		if c == utf8.RuneError && n <= 1 {
			return false
		}
		p = r.Step(p, c)
		if p == -1 {
			return false
		}
		s = s[n:]
	}
	return r.accept[p]
}
