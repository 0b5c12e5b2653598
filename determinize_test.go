package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminizeSubsets(t *testing.T) {
	alphabet := []rune("ab")
	nfa := RemoveEpsilons(mustCompile("a|b", alphabet))

	dfa, subsets, err := DeterminizeSubsets(nfa, alphabet, DefaultDeterminizeWorkLimit)
	if !assert.Nil(t, err) {
		return
	}

	assert.True(t, dfa.IsDeterministic())
	assert.Equal(t, alphabet, dfa.Alphabet())
	assert.Equal(t, 4, dfa.GetNumStates())
	assert.Len(t, subsets, 4)
	assert.Equal(t, []int{0}, subsets.Of(0))
	assert.Equal(t, []int{2}, subsets.Of(1))
	assert.Equal(t, []int{4}, subsets.Of(2))
	assert.Empty(t, subsets.Of(3))
	assert.Equal(t, []int{1, 2}, dfa.GetAcceptStates())

	for i, subset := range subsets {
		assert.Equal(t, i, subset.State())
	}
}

func TestDeterminizeIsComplete(t *testing.T) {
	alphabet := []rune("abc")
	patterns := []string{"a", "(a|b)*c", "a*b*c*", "((a|b)c)*|b", "(a*)*", "", "ax"}

	for _, pattern := range patterns {
		dfa, err := Determinize(mustCompile(pattern, alphabet), alphabet, DefaultDeterminizeWorkLimit)
		if !assert.Nil(t, err) {
			continue
		}
		assert.Equal(t, 0, dfa.GetNumEpsilons())
		for s := 0; s < dfa.GetNumStates(); s++ {
			assert.Equalf(t, len(alphabet), dfa.GetNumTransitionsWithState(s), "%q state %d", pattern, s)
			for _, c := range alphabet {
				assert.NotEqualf(t, -1, dfa.Step(s, c), "%q state %d on %q", pattern, s, c)
			}
		}
	}
}

func TestDeterminizeAgreesWithNFA(t *testing.T) {
	alphabet := []rune("ab")
	patterns := []string{"(a|b)*abb", "(ab|ba)*", "a*|b*", "(a|())(b|())", "((a*)b)*"}
	inputs := allStrings(alphabet, 6)

	for _, pattern := range patterns {
		nfa := mustCompile(pattern, alphabet)
		dfa, err := Determinize(nfa, alphabet, DefaultDeterminizeWorkLimit)
		if !assert.Nil(t, err) {
			continue
		}
		for _, s := range inputs {
			assert.Equalf(t, RunBacktracking(nfa, s), Run(dfa, s), "%q on %q", pattern, s)
		}
	}
}

func TestDeterminizeDuplicateAlphabet(t *testing.T) {
	dfa, err := Determinize(mustCompile("ab", []rune("ab")), []rune("abba"), 0)
	assert.Nil(t, err)
	assert.Equal(t, []rune("ab"), dfa.Alphabet())
	assert.Equal(t, 2, dfa.GetNumTransitionsWithState(0))
}

func TestDeterminizeWorkLimit(t *testing.T) {
	alphabet := []rune("ab")
	_, err := Determinize(mustCompile("a|b", alphabet), alphabet, 2)
	assert.True(t, errors.Is(err, ErrTooComplexToDeterminize))

	_, err = Determinize(mustCompile("a|b", alphabet), alphabet, 4)
	assert.Nil(t, err)
}
