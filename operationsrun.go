package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Run Returns true if a accepts s. Deterministic automata are walked one transition per symbol;
// anything else goes through RunBacktracking.
func Run(a *Automaton, s string) bool {
	if !a.IsDeterministic() {
		return RunBacktracking(a, s)
	}
	if a.GetNumStates() == 0 {
		return false
	}
	state := 0
	for _, v := range s {
		nextState := a.Step(state, v)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}

// RunBacktracking Returns true if a accepts s, searching depth first through symbol moves and then
// epsilon moves from every state. Each (state, position) pair is explored at most once per call,
// which bounds the search and makes epsilon cycles harmless.
func RunBacktracking(a *Automaton, s string) bool {
	if a.GetNumStates() == 0 {
		return false
	}
	input := []rune(s)
	b := &backtracker{
		a:       a,
		idx:     a.outgoing(),
		input:   input,
		visited: bitset.New(uint(a.GetNumStates() * (len(input) + 1))),
	}
	return b.accepts(0, 0)
}

type backtracker struct {
	a       *Automaton
	idx     *stateIndex
	input   []rune
	visited *bitset.BitSet
}

// accepts reports whether some path from state consumes input[pos:] and ends in an accept state. A
// pair seen before either failed already or is on the current path, so it yields false either way.
func (b *backtracker) accepts(state, pos int) bool {
	key := uint(pos*b.a.GetNumStates() + state)
	if b.visited.Test(key) {
		return false
	}
	b.visited.Set(key)

	if pos == len(b.input) {
		if b.a.IsAccept(state) {
			return true
		}
		for _, dest := range b.idx.epsilons[state] {
			if b.accepts(dest, pos) {
				return true
			}
		}
		return false
	}

	c := b.input[pos]
	for _, t := range b.idx.symbols[state] {
		if t.Label == c && b.accepts(t.Dest, pos+1) {
			return true
		}
	}
	for _, dest := range b.idx.epsilons[state] {
		if b.accepts(dest, pos) {
			return true
		}
	}
	return false
}
