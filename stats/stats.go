package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Positions is the number of letters in a word
const Positions = 5

// Letters is the size of the alphabet, 'a'..'z'
const Letters = 26

var (
	ErrNegativeCount = errors.New("negative letter count")
	ErrBadShape      = errors.New("letter statistics must have 5 counts per letter")
)

// LetterStatistics counts how often each letter appears at each position of a reference corpus.
// counts['b'-'a'][2] is the number of words with a 'b' as the third letter.
// The zero value is all zero counts.  Once built it is not modified.
type LetterStatistics struct {
	counts [Letters][Positions]int
}

// Build tallies the letters of every 5 letter word.  Words of other lengths are skipped,
// characters outside 'a'..'z' are not counted.
func Build(words []string) *LetterStatistics {
	ret := &LetterStatistics{}
	for _, word := range words {
		if len(word) != Positions {
			continue
		}
		for i := range Positions {
			letter := word[i]
			if letter < 'a' || letter > 'z' {
				continue
			}
			ret.counts[letter-'a'][i]++
		}
	}
	return ret
}

// FromCounts builds statistics from per letter counts, used by tests and by the JSON reader.
// Letters missing from the map are zero.
func FromCounts(counts map[rune][Positions]int) (*LetterStatistics, error) {
	ret := &LetterStatistics{}
	for letter, c := range counts {
		if letter < 'a' || letter > 'z' {
			return nil, fmt.Errorf("letter %q is not in a-z", letter)
		}
		for i, n := range c {
			if n < 0 {
				return nil, fmt.Errorf("letter %c position %d: %w", letter, i, ErrNegativeCount)
			}
		}
		ret.counts[letter-'a'] = c
	}
	return ret, nil
}

// Count returns the number of times letter occurs at position.  Letters outside 'a'..'z' are 0.
func (s *LetterStatistics) Count(letter byte, position int) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return s.counts[letter-'a'][position]
}

// Counts returns all five positional counts for the letter.
func (s *LetterStatistics) Counts(letter byte) [Positions]int {
	if letter < 'a' || letter > 'z' {
		return [Positions]int{}
	}
	return s.counts[letter-'a']
}

// Total is the number of occurrences of letter in any position.
func (s *LetterStatistics) Total(letter byte) int {
	total := 0
	for _, n := range s.Counts(letter) {
		total += n
	}
	return total
}

// PositionTotals sums every letter at each position.
func (s *LetterStatistics) PositionTotals() [Positions]int {
	var ret [Positions]int
	for _, c := range s.counts {
		for i, n := range c {
			ret[i] += n
		}
	}
	return ret
}

// GrandTotal sums every letter in every position.
func (s *LetterStatistics) GrandTotal() int {
	total := 0
	for _, n := range s.PositionTotals() {
		total += n
	}
	return total
}

// the file format: {"counts": {"a": [1, 2, 3, 4, 5], ...}}
type statsFile struct {
	Counts map[string][]int `json:"counts"`
}

func (s *LetterStatistics) MarshalJSON() ([]byte, error) {
	file := statsFile{Counts: make(map[string][]int, Letters)}
	for l, c := range s.counts {
		file.Counts[string(rune('a'+l))] = c[:]
	}
	return json.Marshal(file)
}

func (s *LetterStatistics) UnmarshalJSON(data []byte) error {
	var file statsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	counts := make(map[rune][Positions]int, len(file.Counts))
	for key, c := range file.Counts {
		if len(key) != 1 {
			return fmt.Errorf("letter key %q: %w", key, ErrBadShape)
		}
		if len(c) != Positions {
			return fmt.Errorf("letter %s has %d counts: %w", key, len(c), ErrBadShape)
		}
		counts[rune(key[0])] = [Positions]int(c)
	}
	parsed, err := FromCounts(counts)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// ReadFile loads statistics written by WriteFile.
func ReadFile(path string) (*LetterStatistics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret := &LetterStatistics{}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

// WriteFile stores the statistics as indented JSON.
func (s *LetterStatistics) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
