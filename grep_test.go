package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrepFilter(t *testing.T) {
	tests := []struct {
		regex string
		lines []string
		want  []string
	}{
		{
			regex: "test",
			lines: []string{"test", "tast", "teest", "tost"},
			want:  []string{"test"},
		},
		{
			regex: "te*st",
			lines: []string{"test", "tast", "teest", "tost"},
			want:  []string{"test", "teest"},
		},
		{
			regex: "(a|b)*c",
			lines: []string{"c", "abbac", "abca", "", "ab"},
			want:  []string{"c", "abbac"},
		},
		{
			regex: "",
			lines: []string{"a", "", "b", ""},
			want:  []string{"", ""},
		},
		{
			regex: "ax",
			lines: []string{"a", "aa", "b"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.regex, func(t *testing.T) {
			g, err := NewGrep(tt.regex, AlphabetOf(tt.lines))
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tt.want, g.Filter(tt.lines))

			b, err := NewGrep(tt.regex, AlphabetOf(tt.lines), WithBacktracking())
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tt.want, b.Filter(tt.lines))
		})
	}
}

func TestGrepStages(t *testing.T) {
	g, err := NewGrep("(a|b)*c", []rune("abcab"))
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, "(a|b)*c", g.Pattern())
	assert.Equal(t, []rune("abc"), g.Alphabet())
	assert.NotZero(t, g.NFA().GetNumEpsilons())
	assert.Zero(t, g.EpsilonFree().GetNumEpsilons())
	assert.Equal(t, g.NFA().GetNumStates(), g.EpsilonFree().GetNumStates())
	assert.True(t, g.DFA().IsDeterministic())
	assert.True(t, g.Minimal().IsDeterministic())
	assert.Equal(t, 3, g.Minimal().GetNumStates())
	assert.LessOrEqual(t, g.Minimal().GetNumStates(), g.DFA().GetNumStates())
}

func TestGrepAgreesWithBacktracking(t *testing.T) {
	alphabet := []rune("abc")
	inputs := allStrings(alphabet, 5)
	for _, pattern := range []string{"(ab|c)*", "((a|b)c)*|b", "a*b*c*", "(a|())*b"} {
		g, err := NewGrep(pattern, alphabet)
		if !assert.Nil(t, err) {
			continue
		}
		for _, s := range inputs {
			assert.Equalf(t, RunBacktracking(g.NFA(), s), g.Match(s), "%q on %q", pattern, s)
		}
	}
}

func TestGrepErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := NewGrep("(ab", []rune("ab"))
		var syntaxErr *SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("strict alphabet", func(t *testing.T) {
		_, err := NewGrep("ax", []rune("a"), WithStrictAlphabet())
		var syntaxErr *SyntaxError
		if assert.ErrorAs(t, err, &syntaxErr) {
			assert.Equal(t, 1, syntaxErr.Pos)
		}

		_, err = NewGrep("ax", []rune("ax"), WithStrictAlphabet())
		assert.Nil(t, err)
	})

	t.Run("work limit", func(t *testing.T) {
		_, err := NewGrep("(a|b)*abb", []rune("ab"), WithDeterminizeWorkLimit(2))
		assert.True(t, errors.Is(err, ErrTooComplexToDeterminize))

		_, err = NewGrep("(a|b)*abb", []rune("ab"), WithDeterminizeWorkLimit(0))
		assert.Nil(t, err)
	})
}

func TestGrepEmptyLanguage(t *testing.T) {
	g, err := NewGrep("ax", []rune("a"))
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, IsEmptyAutomaton(g.Minimal()))
	assert.False(t, g.Match("ax"))
	assert.False(t, g.Match("a"))
}
