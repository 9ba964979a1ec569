package ranking

import (
	"context"
	"sort"

	"github.com/powellquiring/wordlebot/stats"
	"golang.org/x/sync/errgroup"
)

// Scored is a candidate and its blended score, higher is better.
type Scored struct {
	Word  string
	Score float64
}

// scorer holds the totals shared by every word
type scorer struct {
	stats      *stats.LetterStatistics
	weights    Weights
	totals     [stats.Positions]float64
	overall    [stats.Letters]float64
	grandTotal float64
}

func newScorer(s *stats.LetterStatistics, w Weights) *scorer {
	ret := &scorer{stats: s, weights: w}
	for i, n := range s.PositionTotals() {
		ret.totals[i] = float64(n)
	}
	for l := range stats.Letters {
		sum := float64(s.Total(byte('a' + l)))
		ret.overall[l] = sum
		ret.grandTotal += sum
	}
	return ret
}

// valid is false for anything other than 5 lowercase ascii letters
func valid(word string) bool {
	if len(word) != stats.Positions {
		return false
	}
	for i := range stats.Positions {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

func (s *scorer) score(word string) float64 {
	scorePos := 0.0
	scoreOverall := 0.0
	seen := [stats.Letters]bool{}
	unique := 0
	for i := range stats.Positions {
		letter := word[i]
		if s.totals[i] > 0 {
			scorePos += float64(s.stats.Count(letter, i)) / s.totals[i]
		}
		if s.grandTotal > 0 {
			scoreOverall += s.overall[letter-'a'] / s.grandTotal
		}
		if !seen[letter-'a'] {
			seen[letter-'a'] = true
			unique++
		}
	}
	// normalize by length so the three parts are all in 0..1
	scorePos /= stats.Positions
	scoreOverall /= stats.Positions
	uniqueness := float64(unique) / stats.Positions
	return s.weights.Pos*scorePos + s.weights.Overall*scoreOverall + s.weights.Unique*uniqueness
}

// sortScores orders by descending score, ties keep the candidate order
func sortScores(scores []Scored) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

// Rank scores every candidate that is 5 lowercase letters and returns them best first.
// Malformed candidates are skipped.  Equal scores keep their input order.
func Rank(candidates []string, s *stats.LetterStatistics, w Weights) []Scored {
	sc := newScorer(s, w)
	ret := make([]Scored, 0, len(candidates))
	for _, word := range candidates {
		if !valid(word) {
			continue
		}
		ret = append(ret, Scored{Word: word, Score: sc.score(word)})
	}
	sortScores(ret)
	return ret
}

// RankParallel is Rank with the scoring split across workers.  Each candidate's score is
// stored at its input index, so the stable sort sees the same order as Rank and the
// results are identical.
func RankParallel(ctx context.Context, candidates []string, s *stats.LetterStatistics, w Weights, workers int) ([]Scored, error) {
	if workers < 1 {
		workers = 1
	}
	sc := newScorer(s, w)
	scores := make([]Scored, len(candidates))
	ok := make([]bool, len(candidates))
	chunk := (len(candidates) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				word := candidates[i]
				if !valid(word) {
					continue
				}
				scores[i] = Scored{Word: word, Score: sc.score(word)}
				ok[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ret := make([]Scored, 0, len(candidates))
	for i, scored := range scores {
		if ok[i] {
			ret = append(ret, scored)
		}
	}
	sortScores(ret)
	return ret, nil
}

// Top returns at most k of the ranked words.
func Top(scored []Scored, k int) []Scored {
	if k < 0 || k >= len(scored) {
		return scored
	}
	return scored[:k]
}
