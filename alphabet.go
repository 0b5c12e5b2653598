package automaton

// NormalizeAlphabet Returns the symbols of alphabet in order of first appearance, without duplicates.
// Negative values are not symbols and are dropped.
func NormalizeAlphabet(alphabet []rune) []rune {
	seen := make(map[rune]struct{}, len(alphabet))
	result := make([]rune, 0, len(alphabet))
	for _, c := range alphabet {
		if c < 0 {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}

// AlphabetOf Returns the distinct characters of lines in order of first appearance.
func AlphabetOf(lines []string) []rune {
	var all []rune
	for _, line := range lines {
		all = append(all, []rune(line)...)
	}
	return NormalizeAlphabet(all)
}
