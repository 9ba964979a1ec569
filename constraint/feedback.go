package constraint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WordLength is the number of letters in every guess and candidate
const WordLength = 5

var (
	ErrInvalidWordLength = errors.New("must be exactly 5 letters")
	ErrInvalidLetter     = errors.New("must contain only the letters a-z")
	ErrInvalidPattern    = errors.New("invalid feedback pattern")
)

// Feedback is the color given to one letter of a guess
type Feedback uint8

const (
	Absent    Feedback = iota // not in the word, subject to the duplicate letter rule
	Misplaced                 // in the word, not at this position
	Correct                   // at this position
)

func (f Feedback) String() string {
	switch f {
	case Absent:
		return "w"
	case Misplaced:
		return "m"
	case Correct:
		return "c"
	default:
		panic("Can not parse Feedback: " + strconv.Itoa(int(f)))
	}
}

// Pattern is the feedback for each letter of a guess
type Pattern [WordLength]Feedback

// AllCorrect is the pattern of a solved game
var AllCorrect = Pattern{Correct, Correct, Correct, Correct, Correct}

// ParsePattern reads one feedback letter per position.
// c/g is correct (green), m/y is misplaced (yellow), w/r/x is absent.
func ParsePattern(colors string) (Pattern, error) {
	var ret Pattern
	colors = strings.ToLower(strings.TrimSpace(colors))
	if len(colors) != WordLength {
		return ret, fmt.Errorf("%w %q: %w", ErrInvalidPattern, colors, ErrInvalidWordLength)
	}
	for i := range WordLength {
		switch colors[i] {
		case 'c', 'g':
			ret[i] = Correct
		case 'm', 'y':
			ret[i] = Misplaced
		case 'w', 'r', 'x':
			ret[i] = Absent
		default:
			return ret, fmt.Errorf("%w %q: letter %q is not one of c,m,w", ErrInvalidPattern, colors, colors[i])
		}
	}
	return ret, nil
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, f := range p {
		b.WriteString(f.String())
	}
	return b.String()
}

// ValidateWord checks that word is 5 lowercase ascii letters.
func ValidateWord(word string) error {
	if len(word) != WordLength {
		return fmt.Errorf("word %q %w", word, ErrInvalidWordLength)
	}
	for i := range WordLength {
		if word[i] < 'a' || word[i] > 'z' {
			return fmt.Errorf("word %q %w", word, ErrInvalidLetter)
		}
	}
	return nil
}

// Answer returns the feedback the game gives for guess when the target is solution.
// Greens are assigned first.  The remaining guess letters, left to right, are misplaced while
// the solution still has an unmatched copy of the letter, absent otherwise.
func Answer(solution, guess string) Pattern {
	if len(solution) != WordLength || len(guess) != WordLength {
		panic("not 5 letter word:" + solution + "/" + guess)
	}
	var ret Pattern
	solutionNotGreenCount := [26]int{}
	for i := range WordLength {
		if solution[i] == guess[i] {
			ret[i] = Correct
		} else {
			solutionNotGreenCount[solution[i]-'a']++
		}
	}
	// turn the absent to misplaced if in the word but not green
	for i := range WordLength {
		if ret[i] == Correct {
			continue
		}
		letter := guess[i] - 'a'
		if solutionNotGreenCount[letter] > 0 {
			ret[i] = Misplaced
			solutionNotGreenCount[letter]--
		}
	}
	return ret
}
