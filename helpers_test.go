package automaton

// allStrings enumerates every string over alphabet of length at most maxLen, shortest first.
func allStrings(alphabet []rune, maxLen int) []string {
	result := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(layer)*len(alphabet))
		for _, prefix := range layer {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

func mustCompile(pattern string, alphabet []rune) *Automaton {
	a, err := Compile(pattern, alphabet)
	if err != nil {
		panic(err)
	}
	return a
}
