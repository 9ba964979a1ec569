package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"sort"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/powellquiring/wordlebot/constraint"
	"github.com/powellquiring/wordlebot/ranking"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

var feedbackColors = map[constraint.Feedback]string{
	constraint.Correct:   color.Green,
	constraint.Misplaced: color.Yellow,
	constraint.Absent:    color.Gray,
}

// renderRound prints the guess with each letter colored by its feedback
func renderRound(round constraint.Round) string {
	var b strings.Builder
	for i := range constraint.WordLength {
		letter := strings.ToUpper(round.Word[i : i+1])
		b.WriteString(color.Ize(feedbackColors[round.Pattern[i]], letter))
	}
	return b.String()
}

func printSuggestions(w io.Writer, suggestions []ranking.Scored) {
	for _, s := range suggestions {
		fmt.Fprintf(w, "%-10s %.4f\n", s.Word, s.Score)
	}
}

func printGame(ctx context.Context, globalConfig GlobalConfiguration, w io.Writer, game *wordle.Game) error {
	for _, round := range game.Model().Rounds() {
		fmt.Fprintln(w, renderRound(round))
	}
	fmt.Fprintln(w, game.Model())
	if word, ok := game.Solved(); ok {
		fmt.Fprintln(w, "Solved:", word)
		return nil
	}
	candidates := game.Candidates()
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No matches: no word in the list fits the feedback")
		return nil
	}
	fmt.Fprintf(w, "%d possible words\n", len(candidates))
	suggestions, err := game.Suggest(ctx, globalConfig.top)
	if err != nil {
		return err
	}
	printSuggestions(w, suggestions)
	return nil
}

func rank(ctx context.Context, globalConfig GlobalConfiguration, w io.Writer, guessCount int) error {
	weights, err := globalConfig.table.Select(guessCount)
	if err != nil {
		return err
	}
	ranked, err := ranking.RankParallel(ctx, globalConfig.dictionary.Words(), globalConfig.stats, weights, runtime.GOMAXPROCS(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Top %d words for guess %d, weights %+v\n", globalConfig.top, guessCount+1, weights)
	printSuggestions(w, ranking.Top(ranked, globalConfig.top))
	return nil
}

// play with guess/pattern pairs provided
func play(ctx context.Context, globalConfig GlobalConfiguration, w io.Writer, args []string) error {
	game, err := wordle.NewGame(globalConfig.dictionary, globalConfig.stats, globalConfig.table)
	if err != nil {
		return err
	}
	for i := 0; i < len(args); i += 2 {
		guess := strings.ToLower(args[i])
		pattern, err := constraint.ParsePattern(args[i+1])
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if err := game.Record(guess, pattern); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if !globalConfig.dictionary.Contains(guess) {
			fmt.Fprintln(w, "note: guess not in word list:", guess)
		}
	}
	return printGame(ctx, globalConfig, w, game)
}

// solve prompts for each guess and pattern until solved, out of words, or exit
func solve(ctx context.Context, globalConfig GlobalConfiguration, r io.Reader, w io.Writer) error {
	game, err := wordle.NewGame(globalConfig.dictionary, globalConfig.stats, globalConfig.table)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	prompt := func(text string) (string, bool) {
		fmt.Fprint(w, text)
		if !scanner.Scan() {
			return "", false
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return line, line != "exit"
	}
	for {
		guess, ok := prompt("Enter your 5-letter guess (or 'exit'): ")
		if !ok {
			break
		}
		if err := constraint.ValidateWord(guess); err != nil {
			fmt.Fprintln(w, "Please enter a 5-letter word:", err)
			continue
		}
		line, ok := prompt("Enter pattern (w = wrong, m = misplaced, c = correct): ")
		if !ok {
			break
		}
		pattern, err := constraint.ParsePattern(line)
		if err != nil {
			fmt.Fprintln(w, "Invalid pattern. Use only w, m, c:", err)
			continue
		}
		if err := game.Record(guess, pattern); err != nil {
			return err
		}
		if err := printGame(ctx, globalConfig, w, game); err != nil {
			return err
		}
		if _, solved := game.Solved(); solved || len(game.Candidates()) == 0 {
			break
		}
	}
	fmt.Fprintln(w, "Exiting solver.")
	return scanner.Err()
}

func simulate(ctx context.Context, globalConfig GlobalConfiguration, w io.Writer, all bool, firstWords []string, solutions []string) error {
	d := globalConfig.dictionary
	if all {
		solutions = d.Words()
	} else if len(solutions) == 0 {
		if d.Len() == 0 {
			return cli.Exit("word list is empty", 1)
		}
		solutions = []string{d.Words()[rand.IntN(d.Len())]}
	}
	for i, word := range firstWords {
		firstWords[i] = strings.ToLower(word)
	}

	var bar *progressbar.ProgressBar
	if globalConfig.progress {
		bar = progressbar.Default(int64(len(solutions)), "simulating")
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	sortedGames := make(map[int][]wordle.SimulateResult)
	unsolved := []wordle.SimulateResult{}
	for _, solution := range solutions {
		result, err := wordle.Simulate(ctx, d, globalConfig.stats, globalConfig.table, strings.ToLower(solution), firstWords, wordle.MaxGuesses)
		if err != nil {
			return err
		}
		bar.Add(1)
		if !result.Solved {
			unsolved = append(unsolved, result)
			continue
		}
		sortedGames[len(result.Guesses)] = append(sortedGames[len(result.Guesses)], result)
	}
	fmt.Fprintln(w)

	// create slice of number of guesses
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	solved := 0
	totalGuesses := 0
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		solved += len(games)
		totalGuesses += numGuesses * len(games)
		fmt.Fprintln(w, numGuesses, len(games), "---------------------")
		for _, game := range games {
			fmt.Fprintln(w, game.Solution+":", strings.Join(game.Guesses, " "))
		}
	}
	if len(unsolved) > 0 {
		fmt.Fprintln(w, "unsolved", len(unsolved), "---------------------")
		for _, game := range unsolved {
			fmt.Fprintln(w, game.Solution+":", strings.Join(game.Guesses, " "))
		}
	}
	if solved > 0 {
		fmt.Fprintf(w, "solved %d/%d, average %.3f guesses\n", solved, len(solutions), float64(totalGuesses)/float64(solved))
	}
	return nil
}
