package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// The combinators below work on Thompson fragments: automata whose only accept state is their last
// state, whose initial state has no incoming transitions and whose final state has no outgoing
// ones. Every automaton built by Automata and by these functions keeps that shape.

func finalState(a *Automaton) int {
	return a.GetNumStates() - 1
}

// repeat returns the Kleene closure of n in |n|+2 states. State 0 is a new initial state, n is shifted
// by one, and |n|+1 is the new final state.
func repeat(n *Automaton) *Automaton {
	size := n.GetNumStates()
	last := size + 1

	result := newAutomatonStates(size + 2)
	result.addEpsilon(0, 1)
	result.addEpsilon(0, last)
	result.addShifted(n, 1)
	result.addEpsilon(size, 1)
	result.addEpsilon(size, last)
	result.SetAccept(last, true)
	return result
}

// concatenate identifies m's initial state with n's final state. m's states other than 0 are appended
// to n, so the result has |n|+|m|-1 states. n is modified in place and returned; neither argument
// may be used by the caller afterwards.
func concatenate(n, m *Automaton) *Automaton {
	offset := finalState(n)
	n.numStates += m.GetNumStates() - 1
	n.addShifted(m, offset)
	n.clearAccept()
	n.SetAccept(finalState(n), true)
	return n
}

// union returns an automaton of |n|+|m|+2 states: state 0 branches by epsilon into n (shifted by 1)
// and m (shifted by |n|+1), whose final states converge on the new final state |n|+|m|+1.
func union(n, m *Automaton) *Automaton {
	nSize := n.GetNumStates()
	mSize := m.GetNumStates()
	last := nSize + mSize + 1

	result := newAutomatonStates(nSize + mSize + 2)
	result.addEpsilon(0, 1)
	result.addEpsilon(0, nSize+1)
	result.addShifted(n, 1)
	result.addShifted(m, nSize+1)
	result.addEpsilon(finalState(n)+1, last)
	result.addEpsilon(finalState(m)+nSize+1, last)
	result.SetAccept(last, true)
	return result
}

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings. Both symbol and epsilon transitions are
// followed.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.GetNumStates() == 0 {
		// Common case: no states
		return true
	}
	if a.IsAccept(0) {
		return false
	}

	idx := a.outgoing()
	workList := make([]int, 0)
	seen := bitset.New(uint(a.GetNumStates()))
	workList = append(workList, 0)
	seen.Set(0)

	visit := func(dest int) {
		if !seen.Test(uint(dest)) {
			workList = append(workList, dest)
			seen.Set(uint(dest))
		}
	}

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.IsAccept(state) {
			return false
		}
		for _, t := range idx.symbols[state] {
			visit(t.Dest)
		}
		for _, dest := range idx.epsilons[state] {
			visit(dest)
		}
	}
	return true
}
