package wordle

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/powellquiring/wordlebot/constraint"
)

//go:embed words.txt
var defaultWords string

// DefaultWords is the built in word list, one 5 letter word per line
func DefaultWords() []string {
	words, err := ReadWords(strings.NewReader(defaultWords))
	if err != nil {
		panic("embedded word list: " + err.Error())
	}
	return words
}

// ReadWords reads one word per line.  Lines are trimmed and lower cased, words that are
// not 5 letters a-z and repeats are dropped.
func ReadWords(r io.Reader) ([]string, error) {
	ret := []string{}
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if constraint.ValidateWord(word) != nil || seen[word] {
			continue
		}
		seen[word] = true
		ret = append(ret, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadWords reads the word list file at path
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// Dictionary is the reference word list of a game
type Dictionary struct {
	words        []string
	stringToWord map[string]int
	index        *constraint.Index
}

// NewDictionary takes words that have been through ReadWords
func NewDictionary(words []string) *Dictionary {
	ret := &Dictionary{words: words}
	ret.stringToWord = make(map[string]int, len(words))
	for i, word := range words {
		ret.stringToWord[word] = i
	}
	ret.index = constraint.NewIndex(words)
	return ret
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.stringToWord[word]
	return ok
}

// Matching returns the dictionary words allowed by the model
func (d *Dictionary) Matching(m *constraint.Model) []string {
	return d.index.Matching(m)
}
