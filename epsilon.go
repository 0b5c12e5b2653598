package automaton

// RemoveEpsilons
// Returns an epsilon-free automaton accepting the same language as a. Every state i takes over the
// symbol transitions of all states in its epsilon closure, and becomes an accept state when its
// closure holds one. Non-initial states left without any incoming transition lose their outgoing
// transitions; state numbers are kept as they are.
func RemoveEpsilons(a *Automaton) *Automaton {
	numStates := a.GetNumStates()
	idx := a.outgoing()
	result := NewAutomatonV1(numStates, len(a.transitions))
	result.numStates = numStates

	for i := 0; i < numStates; i++ {
		closure := a.EpsilonClosure(i)
		if closure.IntersectionCardinality(a.isAccept) > 0 {
			result.SetAccept(i, true)
		}

		seen := make(map[Transition]struct{})
		for s, ok := closure.NextSet(0); ok; s, ok = closure.NextSet(s + 1) {
			for _, t := range idx.symbols[s] {
				direct := Transition{Source: i, Dest: t.Dest, Label: t.Label}
				if _, dup := seen[direct]; dup {
					continue
				}
				seen[direct] = struct{}{}
				result.transitions = append(result.transitions, direct)
			}
		}
	}

	result.transitions = pruneUnreachableSources(numStates, result.transitions)
	result.changed()
	return result
}

// pruneUnreachableSources drops the transitions leaving non-initial states that have no incoming
// transition, repeating until no further state becomes dead.
func pruneUnreachableSources(numStates int, transitions []Transition) []Transition {
	for {
		incoming := make([]int, numStates)
		for _, t := range transitions {
			incoming[t.Dest]++
		}

		kept := transitions[:0:0]
		for _, t := range transitions {
			if t.Source != 0 && incoming[t.Source] == 0 {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == len(transitions) {
			return kept
		}
		transitions = kept
	}
}
