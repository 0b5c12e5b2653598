package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Minimizes (and determinizes over alphabet if not already deterministic) the given automaton using
// Hopcroft's algorithm. A deterministic automaton is minimized over its own alphabet and the
// alphabet argument is ignored. The class holding the original initial state becomes state 0.
func Minimize(a *Automaton, alphabet []rune, determinizeWorkLimit int) (*Automaton, error) {
	if !a.IsDeterministic() {
		var err error
		a, err = Determinize(a, alphabet, determinizeWorkLimit)
		if err != nil {
			return nil, err
		}
	}

	blocks := refinePartition(a)
	return mergeStates(a, blocks)
}

// refinePartition splits {accept states, other states} until every block is an equivalence class.
func refinePartition(a *Automaton) []*bitset.BitSet {
	numStates := uint(a.GetNumStates())
	alphabet := a.alphabet

	// inverse[c][dest] lists the states reaching dest on alphabet[c].
	inverse := make([][][]int, len(alphabet))
	symbolIndex := make(map[rune]int, len(alphabet))
	for ci, c := range alphabet {
		inverse[ci] = make([][]int, numStates)
		symbolIndex[c] = ci
	}
	for _, t := range a.transitions {
		ci := symbolIndex[t.Label]
		inverse[ci][t.Dest] = append(inverse[ci][t.Dest], t.Source)
	}

	accept := bitset.New(numStates)
	reject := bitset.New(numStates)
	for s := uint(0); s < numStates; s++ {
		if a.IsAccept(int(s)) {
			accept.Set(s)
		} else {
			reject.Set(s)
		}
	}

	partition := make([]*bitset.BitSet, 0, 2)
	waiting := make([]*bitset.BitSet, 0)
	if accept.Any() {
		partition = append(partition, accept)
		waiting = append(waiting, accept)
	}
	if reject.Any() {
		partition = append(partition, reject)
	}

	for len(waiting) > 0 {
		splitter := waiting[0]
		waiting = waiting[1:]

		for ci := range alphabet {
			// states with a transition on alphabet[ci] into the splitter
			x := bitset.New(numStates)
			for dest, ok := splitter.NextSet(0); ok; dest, ok = splitter.NextSet(dest + 1) {
				for _, src := range inverse[ci][dest] {
					x.Set(uint(src))
				}
			}
			if x.None() {
				continue
			}

			for i, count := 0, len(partition); i < count; i++ {
				y := partition[i]
				inter := y.Intersection(x)
				if inter.None() {
					continue
				}
				diff := y.Difference(x)
				if diff.None() {
					continue
				}

				partition[i] = inter
				partition = append(partition, diff)

				if j := indexOfBlock(waiting, y); j >= 0 {
					waiting[j] = inter
					waiting = append(waiting, diff)
				} else if inter.Count() <= diff.Count() {
					waiting = append(waiting, inter)
				} else {
					waiting = append(waiting, diff)
				}
			}
		}
	}
	return partition
}

func indexOfBlock(blocks []*bitset.BitSet, block *bitset.BitSet) int {
	for i, b := range blocks {
		if b == block {
			return i
		}
	}
	return -1
}

// mergeStates builds one state per block. Any member stands for its block since all members agree on
// the target block of every symbol.
func mergeStates(a *Automaton, blocks []*bitset.BitSet) (*Automaton, error) {
	for i, block := range blocks {
		if block.Test(0) {
			blocks[0], blocks[i] = blocks[i], blocks[0]
			break
		}
	}

	numStates := a.GetNumStates()
	classOf := make([]int, numStates)
	for i, block := range blocks {
		for s, ok := block.NextSet(0); ok; s, ok = block.NextSet(s + 1) {
			classOf[s] = i
		}
	}

	result := NewAutomatonV1(len(blocks), len(blocks)*len(a.alphabet))
	result.numStates = len(blocks)
	for i, block := range blocks {
		if block.IntersectionCardinality(a.isAccept) > 0 {
			result.SetAccept(i, true)
		}

		rep, ok := block.NextSet(0)
		if !ok {
			return nil, fmt.Errorf("%w: empty equivalence class %d", ErrInvariantViolation, i)
		}
		for _, c := range a.alphabet {
			dest := a.Step(int(rep), c)
			if dest < 0 {
				return nil, fmt.Errorf("%w: state %d has no transition on %q", ErrInvariantViolation, rep, c)
			}
			result.transitions = append(result.transitions, Transition{Source: i, Dest: classOf[dest], Label: c})
		}
	}

	result.changed()
	result.deterministic = true
	result.alphabet = a.Alphabet()
	return result, nil
}
