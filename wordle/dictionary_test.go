package wordle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	assert.Len(t, words, 334)
	for _, word := range words {
		assert.NoError(t, constraint.ValidateWord(word))
	}
	assert.Contains(t, words, "crane")
	assert.Equal(t, "cigar", words[0])
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader(" Crane\nslate\ntoolong\ncrane\n\nab1de\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, words)
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("trace\ncrane\n"), 0o644))
	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "crane"}, words)

	_, err = LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDictionary(t *testing.T) {
	d := NewDictionary([]string{"arrow", "robot", "floor", "igloo", "error", "motor"})
	assert.Equal(t, 6, d.Len())
	assert.True(t, d.Contains("robot"))
	assert.False(t, d.Contains("crane"))
	m := constraint.NewModel()
	m.RecordRound("robot", constraint.Answer("arrow", "robot"))
	assert.Equal(t, []string{"arrow", "floor", "error"}, d.Matching(m))
}
