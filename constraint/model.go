package constraint

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// Round is one guess and the feedback the game returned for it
type Round struct {
	Word    string
	Pattern Pattern
}

// Model is the knowledge accumulated from the rounds of one game.
// The zero value is not usable, create with NewModel.
type Model struct {
	rounds      []Round
	correct     [WordLength]byte       // 0 until a round reports the position correct
	misplaced   [WordLength]mapset.Set // misplaced[2] letters in the word but not at position 2
	absent      mapset.Set             // letters not in the word
	mustContain mapset.Set             // letters ever reported correct or misplaced
	minCount    [26]int                // minCount['e'-'a'] == 2 the word has at least two e's
}

func NewModel() *Model {
	ret := &Model{
		absent:      mapset.NewThreadUnsafeSet(),
		mustContain: mapset.NewThreadUnsafeSet(),
	}
	for i := range ret.misplaced {
		ret.misplaced[i] = mapset.NewThreadUnsafeSet()
	}
	return ret
}

// RecordRound adds the knowledge from one guess.  The word must be 5 lowercase letters,
// callers validate with ValidateWord first.
//
// Correct letters are recorded before misplaced letters, and both before absent letters,
// so a letter that is correct or misplaced anywhere (this round or earlier) is never
// considered absent.  An absent mark for such a letter only means the word has no
// additional copies of it.
func (m *Model) RecordRound(word string, pattern Pattern) {
	if len(word) != WordLength {
		panic("not 5 letter word:" + word)
	}
	m.rounds = append(m.rounds, Round{Word: word, Pattern: pattern})

	present := [26]int{}
	for i, f := range pattern {
		if f != Correct {
			continue
		}
		letter := word[i]
		// a solved position keeps its first letter
		if m.correct[i] == 0 {
			m.correct[i] = letter
		}
		m.addPresent(letter)
		present[letter-'a']++
	}
	for i, f := range pattern {
		if f != Misplaced {
			continue
		}
		letter := word[i]
		m.misplaced[i].Add(letter)
		m.addPresent(letter)
		present[letter-'a']++
	}
	for i, f := range pattern {
		if f != Absent {
			continue
		}
		letter := word[i]
		if !m.mustContain.Contains(letter) {
			m.absent.Add(letter)
		}
	}
	for l, n := range present {
		if n > m.minCount[l] {
			m.minCount[l] = n
		}
	}
}

func (m *Model) addPresent(letter byte) {
	m.mustContain.Add(letter)
	// contradictory feedback, keep absent and must contain disjoint
	m.absent.Remove(letter)
}

// IsSolved is true once every position has been reported correct
func (m *Model) IsSolved() bool {
	for _, letter := range m.correct {
		if letter == 0 {
			return false
		}
	}
	return true
}

// SolvedWord returns the correct letters in order, ok is false until IsSolved.
func (m *Model) SolvedWord() (string, bool) {
	if !m.IsSolved() {
		return "", false
	}
	return string(m.correct[:]), true
}

// Correct returns the letter known to be at position
func (m *Model) Correct(position int) (byte, bool) {
	letter := m.correct[position]
	return letter, letter != 0
}

// Misplaced returns, sorted, the letters known to be in the word but not at position
func (m *Model) Misplaced(position int) []byte {
	return sortedLetters(m.misplaced[position])
}

// Absent returns, sorted, the letters known not to be in the word
func (m *Model) Absent() []byte {
	return sortedLetters(m.absent)
}

// MustContain returns, sorted, the letters known to be in the word
func (m *Model) MustContain() []byte {
	return sortedLetters(m.mustContain)
}

func (m *Model) IsAbsent(letter byte) bool {
	return m.absent.Contains(letter)
}

// MinCount is the fewest copies of letter the word can have.  A single round that
// reports two e's as correct or misplaced means the word has two e's.
func (m *Model) MinCount(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return m.minCount[letter-'a']
}

// Rounds returns a copy of the rounds recorded so far
func (m *Model) Rounds() []Round {
	ret := make([]Round, len(m.rounds))
	copy(ret, m.rounds)
	return ret
}

// GuessCount is the number of rounds recorded
func (m *Model) GuessCount() int {
	return len(m.rounds)
}

func sortedLetters(set mapset.Set) []byte {
	ret := make([]byte, 0, set.Cardinality())
	for _, item := range set.ToSlice() {
		ret = append(ret, item.(byte))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// String is a multi line summary of the current state
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString("=== Current Game State ===\n")
	fmt.Fprintf(&b, "Guesses: %d\n", len(m.rounds))
	fmt.Fprintf(&b, "Not in word: %s\n", string(m.Absent()))
	b.WriteString("Correct positions: ")
	for _, letter := range m.correct {
		if letter == 0 {
			b.WriteByte('_')
		} else {
			b.WriteByte(letter)
		}
	}
	b.WriteString("\nMisplaced letters:")
	for i := range WordLength {
		if letters := m.Misplaced(i); len(letters) > 0 {
			fmt.Fprintf(&b, " %d:%s", i+1, string(letters))
		}
	}
	fmt.Fprintf(&b, "\nMust contain: %s\n", string(m.MustContain()))
	b.WriteString("==========================")
	return b.String()
}
