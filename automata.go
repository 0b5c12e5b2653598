package automaton

// Automata builds the leaf automata the Thompson combinators start from.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	a := NewAutomaton()
	a.CreateState()
	return a
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string. Its single state is both initial
// and final.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	a.CreateState()
	a.SetAccept(0, true)
	return a
}

// MakeChar
// Returns a new automaton that accepts a single codepoint: two states, 0 -c-> 1, accepting {1}.
func (*Automata) MakeChar(c rune) (*Automaton, error) {
	a := NewAutomaton()
	s0 := a.CreateState()
	s1 := a.CreateState()
	a.SetAccept(s1, true)
	if err := a.AddTransitionLabel(s0, s1, c); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeString
// Returns a new automaton that accepts exactly s, built as a chain of concatenated literals.
func (m *Automata) MakeString(s string) (*Automaton, error) {
	result := m.MakeEmptyString()
	for _, c := range s {
		a, err := m.MakeChar(c)
		if err != nil {
			return nil, err
		}
		result = concatenate(result, a)
	}
	return result, nil
}
