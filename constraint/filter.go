package constraint

// Filter returns the candidates consistent with every round recorded in the model, in their
// original order.  An empty result means no word in the list fits, it is not an error.
func Filter(m *Model, candidates []string) []string {
	ret := []string{}
	for _, word := range candidates {
		if Allows(m, word) {
			ret = append(ret, word)
		}
	}
	return ret
}

// Allows reports whether word could be the solution given the model.  A word that is not
// 5 letters is never allowed.
func Allows(m *Model, word string) bool {
	if len(word) != WordLength {
		return false
	}
	wordCount := [26]int{}
	for i := range WordLength {
		letter := word[i]
		if letter < 'a' || letter > 'z' {
			return false
		}
		if m.IsAbsent(letter) {
			return false
		}
		wordCount[letter-'a']++
	}

	for i := range WordLength {
		if correct, ok := m.Correct(i); ok && word[i] != correct {
			return false
		}
	}

	for i := range WordLength {
		for _, letter := range m.Misplaced(i) {
			if word[i] == letter {
				return false
			}
			if !presentElsewhere(m, word, letter, i) {
				return false
			}
		}
	}

	// each required copy of a letter needs its own position
	for l, n := range wordCount {
		if n < m.minCount[l] {
			return false
		}
	}
	return true
}

// presentElsewhere is true if letter is in word at a position other than exclude.  A position
// pinned to a different letter can not hold it.
func presentElsewhere(m *Model, word string, letter byte, exclude int) bool {
	for j := range WordLength {
		if j == exclude || word[j] != letter {
			continue
		}
		if correct, ok := m.Correct(j); ok && correct != letter {
			continue
		}
		return true
	}
	return false
}
