package automaton

import (
	"slices"

	u "github.com/araddon/gou"
)

type grepOptions struct {
	determinizeWorkLimit int
	syntaxFlags          int
	backtracking         bool
}

type GrepOption func(*grepOptions)

// WithDeterminizeWorkLimit caps the number of DFA states subset construction may create.
func WithDeterminizeWorkLimit(limit int) GrepOption {
	return func(o *grepOptions) {
		o.determinizeWorkLimit = limit
	}
}

// WithStrictAlphabet rejects patterns with unescaped literals outside the alphabet.
func WithStrictAlphabet() GrepOption {
	return func(o *grepOptions) {
		o.syntaxFlags |= STRICT_ALPHABET
	}
}

// WithBacktracking matches lines with the epsilon-free NFA instead of the minimal DFA.
func WithBacktracking() GrepOption {
	return func(o *grepOptions) {
		o.backtracking = true
	}
}

// Grep holds every stage of the pipeline for one pattern: the Thompson NFA, its epsilon-free form,
// the subset-constructed DFA and the minimal DFA with its lookup table. Once built it is read-only
// and Match may be called from several goroutines.
type Grep struct {
	pattern      string
	alphabet     []rune
	backtracking bool

	nfa         *Automaton
	epsilonFree *Automaton
	dfa         *Automaton
	minimal     *Automaton
	run         *RunAutomaton
}

// NewGrep compiles pattern over alphabet down to a minimal DFA.
func NewGrep(pattern string, alphabet []rune, options ...GrepOption) (*Grep, error) {
	opts := &grepOptions{
		determinizeWorkLimit: DefaultDeterminizeWorkLimit,
		syntaxFlags:          NONE,
	}
	for _, fn := range options {
		fn(opts)
	}
	alphabet = NormalizeAlphabet(alphabet)

	nfa, err := Compile(pattern, alphabet, WithSyntaxFlags(opts.syntaxFlags))
	if err != nil {
		return nil, err
	}
	u.Debugf("nfa for %q: states=%d transitions=%d epsilons=%d",
		pattern, nfa.GetNumStates(), nfa.GetNumTransitions(), nfa.GetNumEpsilons())

	epsilonFree := RemoveEpsilons(nfa)
	u.Debugf("epsilon-free nfa: transitions=%d accept=%v", epsilonFree.GetNumTransitions(), epsilonFree.GetAcceptStates())

	dfa, err := Determinize(epsilonFree, alphabet, opts.determinizeWorkLimit)
	if err != nil {
		return nil, err
	}
	u.Debugf("dfa: states=%d alphabet=%q", dfa.GetNumStates(), string(alphabet))

	minimal, err := Minimize(dfa, alphabet, opts.determinizeWorkLimit)
	if err != nil {
		return nil, err
	}
	u.Debugf("minimal dfa: states=%d accept=%v", minimal.GetNumStates(), minimal.GetAcceptStates())
	if IsEmptyAutomaton(minimal) {
		u.Warnf("pattern %q cannot match any line over alphabet %q", pattern, string(alphabet))
	}

	run, err := NewRunAutomaton(minimal)
	if err != nil {
		return nil, err
	}

	return &Grep{
		pattern:      pattern,
		alphabet:     alphabet,
		backtracking: opts.backtracking,
		nfa:          nfa,
		epsilonFree:  epsilonFree,
		dfa:          dfa,
		minimal:      minimal,
		run:          run,
	}, nil
}

// Pattern Returns the regular expression the matcher was built from.
func (g *Grep) Pattern() string {
	return g.pattern
}

// Alphabet Returns the normalized alphabet every stage was built over.
func (g *Grep) Alphabet() []rune {
	return slices.Clone(g.alphabet)
}

// NFA Returns the Thompson NFA.
func (g *Grep) NFA() *Automaton {
	return g.nfa
}

// EpsilonFree Returns the NFA after epsilon elimination.
func (g *Grep) EpsilonFree() *Automaton {
	return g.epsilonFree
}

// DFA Returns the automaton built by subset construction.
func (g *Grep) DFA() *Automaton {
	return g.dfa
}

// Minimal Returns the minimal DFA.
func (g *Grep) Minimal() *Automaton {
	return g.minimal
}

// Match reports whether the whole line is in the pattern's language.
func (g *Grep) Match(line string) bool {
	if g.backtracking {
		return RunBacktracking(g.epsilonFree, line)
	}
	return g.run.Run(line)
}

// Filter returns the matching lines in their original order.
func (g *Grep) Filter(lines []string) []string {
	matched := make([]string, 0)
	for _, line := range lines {
		if g.Match(line) {
			matched = append(matched, line)
		}
	}
	return matched
}
