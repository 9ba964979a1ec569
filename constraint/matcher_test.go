package constraint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIndexEmptyModel(t *testing.T) {
	ix := NewIndex(testWords)
	assert.Equal(t, len(testWords), ix.Len())
	assert.Equal(t, testWords, ix.Matching(NewModel()))
}

func TestIndexEmptyWords(t *testing.T) {
	ix := NewIndex(nil)
	assert.Empty(t, ix.Matching(NewModel()))
}

func TestIndexPanicsOnBadWord(t *testing.T) {
	assert.Panics(t, func() { NewIndex([]string{"crane", "toolong"}) })
}

func TestIndexMatchesFilter(t *testing.T) {
	ix := NewIndex(testWords)
	guesses := []string{"eerie", "robot", "slate", "geese", "aback"}
	for _, target := range testWords {
		m := NewModel()
		for _, guess := range guesses {
			m.RecordRound(guess, Answer(target, guess))
			if diff := cmp.Diff(Filter(m, testWords), ix.Matching(m)); diff != "" {
				t.Errorf("target %s guess %s (-filter +index):\n%s", target, guess, diff)
			}
		}
	}
}

func TestIndexDuplicates(t *testing.T) {
	ix := NewIndex([]string{"speed", "spend", "elope", "sheep", "beset", "sweet"})
	m := NewModel()
	m.RecordRound("eerie", Answer("speed", "eerie"))
	assert.Equal(t, []string{"speed", "sheep", "sweet"}, ix.Matching(m))
}

func BenchmarkIndexMatching(b *testing.B) {
	ix := NewIndex(testWords)
	m := NewModel()
	m.RecordRound("robot", Answer("arrow", "robot"))
	for b.Loop() {
		ix.Matching(m)
	}
}
