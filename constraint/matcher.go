package constraint

import (
	"github.com/bits-and-blooms/bitset"
)

/*
Index answers Filter for a fixed word list using bitsets, a word is represented by its index
into words.

	letters[0]['a'-'a'] set of words whose first letter is an a, [1] second letter is an a, ...
	count['a'-'a'][0] set of words with 1 or more a, count['b'-'a'][1] words with 2 or more b
*/
type Index struct {
	words   []string
	letters [WordLength][26]*bitset.BitSet
	count   [26][WordLength]*bitset.BitSet
}

// NewIndex builds the bitsets for words.  Every word must pass ValidateWord.
func NewIndex(words []string) *Index {
	ret := &Index{words: words}
	length := uint(len(words))
	for l := range 26 {
		for i := range WordLength {
			ret.letters[i][l] = bitset.New(length)
			ret.count[l][i] = bitset.New(length)
		}
	}
	for w, word := range words {
		if err := ValidateWord(word); err != nil {
			panic(err.Error())
		}
		wordLetters := [26]int{}
		for i := range WordLength {
			letter := word[i] - 'a'
			ret.letters[i][letter].Set(uint(w))
			wordLetters[letter]++
		}
		for letter, n := range wordLetters {
			for c := range n {
				ret.count[letter][c].Set(uint(w))
			}
		}
	}
	return ret
}

func (ix *Index) Len() int {
	return len(ix.words)
}

func (ix *Index) Words() []string {
	return ix.words
}

// Matching returns the words allowed by the model in word list order, the same result as
// Filter(m, ix.Words()).
func (ix *Index) Matching(m *Model) []string {
	if len(ix.words) == 0 {
		return []string{}
	}
	ret := bitset.New(uint(len(ix.words))).Complement()

	// greens: only words with the letter at the position
	for i := range WordLength {
		if letter, ok := m.Correct(i); ok {
			ret.InPlaceIntersection(ix.letters[i][letter-'a'])
		}
	}

	// absent letters remove every word that has one or more
	for _, letter := range m.Absent() {
		ret.InPlaceDifference(ix.count[letter-'a'][0])
	}

	// yellows: remove the words with the letter at the position, those would have been green
	for i := range WordLength {
		for _, letter := range m.Misplaced(i) {
			ret.InPlaceDifference(ix.letters[i][letter-'a'])
		}
	}

	// the word has at least this many of the letter
	for l := range 26 {
		n := m.MinCount(byte('a' + l))
		if n == 0 {
			continue
		}
		ret.InPlaceIntersection(ix.count[l][n-1])
	}

	// the remaining words need the exact check for letters that must be elsewhere
	words := []string{}
	for w, ok := ret.NextSet(0); ok; w, ok = ret.NextSet(w + 1) {
		word := ix.words[w]
		if Allows(m, word) {
			words = append(words, word)
		}
	}
	return words
}
