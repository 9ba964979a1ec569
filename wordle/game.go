package wordle

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/powellquiring/wordlebot/constraint"
	"github.com/powellquiring/wordlebot/ranking"
	"github.com/powellquiring/wordlebot/stats"
)

// MaxGuesses is the number of guesses the game allows
const MaxGuesses = 6

// Game is one session: the rounds played so far and the words still possible
type Game struct {
	dictionary *Dictionary
	stats      *stats.LetterStatistics
	table      ranking.Table
	model      *constraint.Model
	candidates []string
}

func NewGame(dictionary *Dictionary, s *stats.LetterStatistics, table ranking.Table) (*Game, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		dictionary: dictionary,
		stats:      s,
		table:      table,
		model:      constraint.NewModel(),
		candidates: dictionary.Words(),
	}, nil
}

// Record adds a guess and the game's feedback, then narrows the candidates.
func (g *Game) Record(guess string, pattern constraint.Pattern) error {
	if err := constraint.ValidateWord(guess); err != nil {
		return err
	}
	g.model.RecordRound(guess, pattern)
	if g.model.GuessCount() == 1 {
		// first round, the index over the whole dictionary is fastest
		g.candidates = g.dictionary.Matching(g.model)
	} else {
		g.candidates = constraint.Filter(g.model, g.candidates)
	}
	return nil
}

// Candidates are the dictionary words consistent with every round, in dictionary order
func (g *Game) Candidates() []string {
	return g.candidates
}

func (g *Game) Model() *constraint.Model {
	return g.model
}

// Solved returns the solution once every position has been reported correct
func (g *Game) Solved() (string, bool) {
	return g.model.SolvedWord()
}

// Suggest ranks the candidates with the weights for the next guess and returns the best k,
// k < 0 returns all of them.  No candidates is an empty result, not an error.
func (g *Game) Suggest(ctx context.Context, k int) ([]ranking.Scored, error) {
	weights, err := g.table.Select(g.model.GuessCount())
	if err != nil {
		return nil, err
	}
	if len(g.candidates) == 0 {
		return []ranking.Scored{}, nil
	}
	ranked, err := ranking.RankParallel(ctx, g.candidates, g.stats, weights, runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, err
	}
	return ranking.Top(ranked, k), nil
}

// SimulateResult is the outcome of one self played game
type SimulateResult struct {
	Solution string
	Guesses  []string
	Solved   bool
}

// Simulate plays against a known solution.  The initial guesses are used first, then the
// best suggestion each round.  The game ends when solved, when maxGuesses are used, or when
// no word in the dictionary fits the feedback.
func Simulate(ctx context.Context, dictionary *Dictionary, s *stats.LetterStatistics, table ranking.Table, solution string, initialGuesses []string, maxGuesses int) (SimulateResult, error) {
	ret := SimulateResult{Solution: solution}
	if err := constraint.ValidateWord(solution); err != nil {
		return ret, fmt.Errorf("solution: %w", err)
	}
	game, err := NewGame(dictionary, s, table)
	if err != nil {
		return ret, err
	}
	for guessCount := range maxGuesses {
		var guess string
		if guessCount < len(initialGuesses) {
			guess = initialGuesses[guessCount]
		} else {
			suggestions, err := game.Suggest(ctx, -1)
			if err != nil {
				return ret, err
			}
			// an absent mark on a letter that is also present does not rule out the
			// guess itself, never play the same word twice
			for _, suggestion := range suggestions {
				if !slices.Contains(ret.Guesses, suggestion.Word) {
					guess = suggestion.Word
					break
				}
			}
			if guess == "" {
				return ret, nil
			}
		}
		if err := constraint.ValidateWord(guess); err != nil {
			return ret, fmt.Errorf("guess %d: %w", guessCount+1, err)
		}
		ret.Guesses = append(ret.Guesses, guess)
		pattern := constraint.Answer(solution, guess)
		if err := game.Record(guess, pattern); err != nil {
			return ret, err
		}
		if pattern == constraint.AllCorrect {
			ret.Solved = true
			return ret, nil
		}
	}
	return ret, nil
}
