package ranking

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyWeightConfiguration = errors.New("weight configuration has no entries")
	ErrNegativeWeight           = errors.New("weights must not be negative")
)

// Weights blends the three parts of a word's score
type Weights struct {
	Pos     float64 `yaml:"pos"`     // positional letter frequency
	Overall float64 `yaml:"overall"` // letter frequency in any position
	Unique  float64 `yaml:"unique"`  // fraction of distinct letters
}

func (w Weights) validate() error {
	if w.Pos < 0 || w.Overall < 0 || w.Unique < 0 {
		return fmt.Errorf("%+v: %w", w, ErrNegativeWeight)
	}
	return nil
}

// Table holds the weights for each guess, [0] for the first guess, [1] after one guess, ...
// Guesses past the end use the last entry.
type Table []Weights

// DefaultTable favors distinct letters early to spread out the information, then
// moves toward positional frequency as the candidates narrow.
func DefaultTable() Table {
	return Table{
		{Pos: 0.2, Overall: 0.1, Unique: 0.7},
		{Pos: 0.4, Overall: 0.2, Unique: 0.4},
		{Pos: 0.6, Overall: 0.2, Unique: 0.2},
		{Pos: 0.8, Overall: 0.1, Unique: 0.1},
	}
}

// Select returns the weights for the guess after guessCount completed guesses.
func (t Table) Select(guessCount int) (Weights, error) {
	if len(t) == 0 {
		return Weights{}, ErrEmptyWeightConfiguration
	}
	guessCount = max(guessCount, 0)
	return t[min(guessCount, len(t)-1)], nil
}

// Validate checks that the table has at least one entry and no negative weights.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyWeightConfiguration
	}
	for i, w := range t {
		if err := w.validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

type tableFile struct {
	Weights Table `yaml:"weights"`
}

// ParseTable reads a YAML weight table:
//
//	weights:
//	  - {pos: 0.2, overall: 0.1, unique: 0.7}
//	  - {pos: 0.6, overall: 0.2, unique: 0.2}
func ParseTable(data []byte) (Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if err := file.Weights.Validate(); err != nil {
		return nil, err
	}
	return file.Weights, nil
}

// LoadTable reads the weight table file at path.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
