package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEpsilonsUnion(t *testing.T) {
	nfa := mustCompile("a|b", []rune("ab"))
	a := RemoveEpsilons(nfa)

	assert.Equal(t, nfa.GetNumStates(), a.GetNumStates())
	assert.Equal(t, 0, a.GetNumEpsilons())
	// states 1 and 3 are only entered by epsilon moves, so their own copies are pruned
	assert.Equal(t, []Transition{{0, 2, 'a'}, {0, 4, 'b'}}, a.GetTransitions())
	assert.Equal(t, []int{2, 4, 5}, a.GetAcceptStates())

	// the input is left untouched
	assert.Equal(t, 4, nfa.GetNumEpsilons())
}

func TestRemoveEpsilonsAcceptPropagation(t *testing.T) {
	a := RemoveEpsilons(mustCompile("a*", []rune("a")))

	assert.True(t, a.IsAccept(0), "initial state reaches the final state through epsilons")
	assert.True(t, RunBacktracking(a, ""))
	assert.True(t, RunBacktracking(a, "aaa"))
}

func TestRemoveEpsilonsPrunesDeadStatesTransitively(t *testing.T) {
	a := NewAutomaton()
	for i := 0; i < 5; i++ {
		a.CreateState()
	}
	a.SetAccept(4, true)
	assert.Nil(t, a.AddTransitionLabel(0, 1, 'a'))
	assert.Nil(t, a.AddTransitionLabel(2, 3, 'a'))
	assert.Nil(t, a.AddTransitionLabel(3, 4, 'a'))

	r := RemoveEpsilons(a)
	assert.Equal(t, []Transition{{0, 1, 'a'}}, r.GetTransitions())
	assert.Equal(t, 5, r.GetNumStates())
}

func TestRemoveEpsilonsKeepsSelfLoops(t *testing.T) {
	a := NewAutomaton()
	a.CreateState()
	a.CreateState()
	a.SetAccept(1, true)
	assert.Nil(t, a.AddTransitionLabel(0, 1, 'a'))
	assert.Nil(t, a.AddTransitionLabel(1, 1, 'b'))

	r := RemoveEpsilons(a)
	assert.ElementsMatch(t, a.GetTransitions(), r.GetTransitions())
}

func TestRemoveEpsilonsPreservesLanguage(t *testing.T) {
	alphabet := []rune("abc")
	patterns := []string{
		"a", "abc", "a|b|c", "a*", "(a|b)*c", "(ab|c)*", "a*b*c*", "((a|b)c)*|b",
		"(a*)*", "(a|())*b", "()", "", "(a|b)(a|c)*(b|c)",
	}
	inputs := allStrings(alphabet, 4)

	for _, pattern := range patterns {
		nfa := mustCompile(pattern, alphabet)
		free := RemoveEpsilons(nfa)
		assert.Equalf(t, 0, free.GetNumEpsilons(), "%q", pattern)
		for _, s := range inputs {
			assert.Equalf(t, RunBacktracking(nfa, s), RunBacktracking(free, s), "%q on %q", pattern, s)
		}
	}
}
