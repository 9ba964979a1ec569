package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration(t *testing.T) GlobalConfiguration {
	t.Helper()
	globalConfig, err := globalConfiguration("", "", "", 5, false)
	require.NoError(t, err)
	return globalConfig
}

func TestGlobalConfigurationFiles(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "wordlist.txt")
	weightsPath := filepath.Join(dir, "weights.yaml")
	statsPath := filepath.Join(dir, "letter_stats.json")
	require.NoError(t, os.WriteFile(wordsPath, []byte("crane\nslate\ntrace\n"), 0o644))
	require.NoError(t, os.WriteFile(weightsPath, []byte("weights:\n  - {pos: 1, overall: 0, unique: 0}\n"), 0o644))

	globalConfig, err := globalConfiguration(wordsPath, "", weightsPath, 3, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, globalConfig.dictionary.Words())
	assert.Equal(t, ranking.Table{{Pos: 1}}, globalConfig.table)

	require.NoError(t, analyze(globalConfig, statsPath))
	withStats, err := globalConfiguration(wordsPath, statsPath, weightsPath, 3, false)
	require.NoError(t, err)
	assert.Equal(t, globalConfig.stats, withStats.stats)

	var out bytes.Buffer
	require.NoError(t, rank(context.Background(), withStats, &out, 0))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "crane"))
	assert.True(t, strings.HasPrefix(lines[2], "trace"))
	assert.True(t, strings.HasPrefix(lines[3], "slate"))
}

func TestGlobalConfigurationErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := globalConfiguration(filepath.Join(dir, "missing.txt"), "", "", 3, false)
	assert.Error(t, err)

	emptyWeights := filepath.Join(dir, "weights.yaml")
	require.NoError(t, os.WriteFile(emptyWeights, []byte("weights: []\n"), 0o644))
	_, err = globalConfiguration("", "", emptyWeights, 3, false)
	assert.ErrorIs(t, err, ranking.ErrEmptyWeightConfiguration)
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	err := play(context.Background(), testConfiguration(t), &out, []string{"robot", "mwwcw"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Not in word: bt")
	assert.Contains(t, out.String(), "possible words")
	assert.Contains(t, out.String(), "Misplaced letters: 1:r")
}

func TestPlayBadPattern(t *testing.T) {
	var out bytes.Buffer
	err := play(context.Background(), testConfiguration(t), &out, []string{"robot", "mwwc"})
	assert.Error(t, err)
}

func TestPlaySolved(t *testing.T) {
	var out bytes.Buffer
	err := play(context.Background(), testConfiguration(t), &out, []string{"crane", "ccccc"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Solved: crane")
}

func TestSolve(t *testing.T) {
	in := strings.NewReader("toolong\nrobot\nzzz\nrobot\nmwwcw\nexit\n")
	var out bytes.Buffer
	require.NoError(t, solve(context.Background(), testConfiguration(t), in, &out))
	s := out.String()
	assert.Contains(t, s, "Please enter a 5-letter word")
	assert.Contains(t, s, "Invalid pattern")
	assert.Contains(t, s, "Must contain: or")
	assert.Contains(t, s, "Exiting solver.")
}

func TestSolveSolved(t *testing.T) {
	in := strings.NewReader("zzzzz\nccccc\n")
	var out bytes.Buffer
	require.NoError(t, solve(context.Background(), testConfiguration(t), in, &out))
	assert.Contains(t, out.String(), "Solved: zzzzz")
}

func TestSimulate(t *testing.T) {
	var out bytes.Buffer
	err := simulate(context.Background(), testConfiguration(t), &out, false, []string{"CRANE"}, []string{"crane"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "crane: crane")
	assert.Contains(t, out.String(), "solved 1/1, average 1.000 guesses")
}

func TestSimulateRandom(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, simulate(context.Background(), testConfiguration(t), &out, false, nil, nil))
	assert.Contains(t, out.String(), "---------------------")
}
