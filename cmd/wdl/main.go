package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/powellquiring/wordlebot/ranking"
	"github.com/powellquiring/wordlebot/stats"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

type GlobalConfiguration struct {
	dictionary *wordle.Dictionary
	stats      *stats.LetterStatistics
	table      ranking.Table
	top        int
	progress   bool
}

// globalConfiguration loads the word list, statistics and weights.  An empty path uses the
// built in word list, statistics computed from the word list, and the default weights.
func globalConfiguration(wordsPath, statsPath, weightsPath string, top int, progress bool) (GlobalConfiguration, error) {
	ret := GlobalConfiguration{top: top, progress: progress}
	words := wordle.DefaultWords()
	if wordsPath != "" {
		var err error
		if words, err = wordle.LoadWords(wordsPath); err != nil {
			return ret, err
		}
	}
	ret.dictionary = wordle.NewDictionary(words)

	if statsPath != "" {
		s, err := stats.ReadFile(statsPath)
		if err != nil {
			return ret, err
		}
		ret.stats = s
	} else {
		ret.stats = stats.Build(words)
	}

	ret.table = ranking.DefaultTable()
	if weightsPath != "" {
		table, err := ranking.LoadTable(weightsPath)
		if err != nil {
			return ret, err
		}
		ret.table = table
	}
	return ret, nil
}

func main() {
	wordsPath := ""
	statsPath := ""
	weightsPath := ""
	top := 10
	progress := false
	profile := false
	// command specific flags
	guess := 0
	out := ""
	all := false

	config := func() (GlobalConfiguration, error) {
		return globalConfiguration(wordsPath, statsPath, weightsPath, top, progress)
	}
	withProfile := func(action func(ctx context.Context, cmd *cli.Command) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if profile {
				def := cpuProfile()
				defer def()
			}
			return action(ctx, cmd)
		}
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle assistant, filter the word list by the feedback so far and suggest the next guess",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "word list file, one word per line, default is the built in list",
				Destination: &wordsPath,
			},
			&cli.StringFlag{
				Name:        "stats",
				Aliases:     []string{"s"},
				Usage:       "letter statistics json written by analyze, default is computed from the word list",
				Destination: &statsPath,
			},
			&cli.StringFlag{
				Name:        "weights",
				Usage:       "yaml weight table, one {pos, overall, unique} entry per guess",
				Destination: &weightsPath,
			},
			&cli.IntFlag{
				Name:        "top",
				Value:       10,
				Aliases:     []string{"t"},
				Usage:       "number of suggestions to show",
				Destination: &top,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "count letters per position in the word list and write the statistics file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Value:       "letter_stats.json",
						Usage:       "statistics file to write",
						Destination: &out,
					},
				},
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return analyze(globalConfig, out)
				}),
			},
			{
				Name:  "rank",
				Usage: "rank the whole word list using the weights for the given guess",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "guess",
						Aliases:     []string{"g"},
						Value:       0,
						Usage:       "number of guesses already made, selects the weights",
						Destination: &guess,
					},
				},
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return rank(ctx, globalConfig, os.Stdout, guess)
				}),
			},
			{
				Name: "first",
				Usage: `first
				Sort first words by score
				`,
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return rank(ctx, globalConfig, os.Stdout, 0)
				}),
			},
			{
				Name: "play",
				Usage: `play guess pattern [guess pattern]...
				Enter pairs of guess and feedback, c (or g) correct, m (or y) misplaced, w (or r) not in word:
				wdl play raise wwmww hotly mwmww
				`,
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess pattern", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess pattern", 2)
					}
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return play(ctx, globalConfig, os.Stdout, cmd.Args().Slice())
				}),
			},
			{
				Name:  "solve",
				Usage: "interactive, enter each guess and its feedback as the game is played",
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return solve(ctx, globalConfig, os.Stdin, os.Stdout)
				}),
			},
			{
				Name: "sim",
				Usage: `sim [solution]...
				Simulate games against each solution.  With no solutions a random word is chosen,
				with --all every word in the list is played.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ...",
						Name:    "first",
						Aliases: []string{"f"},
					},
					&cli.BoolFlag{
						Name:        "all",
						Value:       false,
						Usage:       "simulate every word in the word list",
						Destination: &all,
					},
				},
				Action: withProfile(func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := config()
					if err != nil {
						return err
					}
					return simulate(ctx, globalConfig, os.Stdout, all, cmd.StringSlice("first"), cmd.Args().Slice())
				}),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyze(globalConfig GlobalConfiguration, out string) error {
	s := stats.Build(globalConfig.dictionary.Words())
	if err := s.WriteFile(out); err != nil {
		return err
	}
	fmt.Println("Saved letter stats to", out)
	return nil
}
