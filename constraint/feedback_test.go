package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func P(t *testing.T, colors string) Pattern {
	t.Helper()
	p, err := ParsePattern(colors)
	require.NoError(t, err)
	return p
}

func TestParsePattern(t *testing.T) {
	assert := assert.New(t)
	p, err := ParsePattern("cmwwc")
	assert.NoError(err)
	assert.Equal(Pattern{Correct, Misplaced, Absent, Absent, Correct}, p)

	p, err = ParsePattern("GYRRG")
	assert.NoError(err)
	assert.Equal(Pattern{Correct, Misplaced, Absent, Absent, Correct}, p)
	assert.Equal("cmwwc", p.String())

	_, err = ParsePattern("cmw")
	assert.ErrorIs(err, ErrInvalidPattern)
	assert.ErrorIs(err, ErrInvalidWordLength)

	_, err = ParsePattern("cmwzz")
	assert.ErrorIs(err, ErrInvalidPattern)
}

func TestValidateWord(t *testing.T) {
	assert.NoError(t, ValidateWord("crane"))
	assert.ErrorIs(t, ValidateWord("cranes"), ErrInvalidWordLength)
	assert.ErrorIs(t, ValidateWord(""), ErrInvalidWordLength)
	assert.ErrorIs(t, ValidateWord("Crane"), ErrInvalidLetter)
	assert.ErrorIs(t, ValidateWord("cr4ne"), ErrInvalidLetter)
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		solution, guess, want string
	}{
		{"crane", "crane", "ccccc"},
		{"crane", "fghij", "wwwww"},
		{"arrow", "robot", "mwwcw"},
		{"abbbb", "bxxac", "mwwmw"},
		{"abazz", "axxaa", "cwwmw"},
		{"abazz", "xabxx", "wmmww"},
		{"speed", "eerie", "mmwww"},
		{"eerie", "speed", "wwmmw"},
	}
	for _, test := range tests {
		t.Run(test.solution+"/"+test.guess, func(t *testing.T) {
			assert.Equal(t, test.want, Answer(test.solution, test.guess).String())
		})
	}
}
