package strategy

import (
	"math"
	"math/rand"
	"sort"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/profile"
	"github.com/marchenko/lexrec/internal/vocab"
)

// Strategy names one of the personalized scoring heuristics. The set is
// closed: adding a heuristic means adding a constant and a Func, not a
// runtime registration.
type Strategy int

const (
	Frequency Strategy = iota
	Similarity
	Progress
	Exploration
)

func (s Strategy) String() string {
	switch s {
	case Frequency:
		return "frequency"
	case Similarity:
		return "similarity"
	case Progress:
		return "progress"
	case Exploration:
		return "exploration"
	default:
		return "unknown"
	}
}

// Order is the fixed pipeline order used when blending.
var Order = []Strategy{Frequency, Similarity, Progress, Exploration}

// Pick is a single scored recommendation from one strategy.
type Pick struct {
	Word   vocab.WordItem
	Reason string
	Score  float64
}

// Input carries everything a strategy function may consult.
type Input struct {
	Pool    *candidate.Pool
	Profile *profile.Profile

	// Recent holds the words studied in the trailing week, for
	// similarity scoring.
	Recent []vocab.WordItem

	// Rand drives exploration sampling. Callers inject a seeded source
	// for deterministic runs.
	Rand *rand.Rand
}

// Func is the common shape of all strategy implementations.
type Func func(in Input, count int) []Pick

// funcFor maps each variant to its implementation.
func funcFor(s Strategy) Func {
	switch s {
	case Frequency:
		return byFrequency
	case Similarity:
		return bySimilarity
	case Progress:
		return byProgress
	case Exploration:
		return byExploration
	default:
		return func(Input, int) []Pick { return nil }
	}
}

// Weights sets the share of the requested count each strategy fills.
type Weights map[Strategy]float64

// DefaultWeights returns the standard personalized blend.
func DefaultWeights() Weights {
	return Weights{
		Frequency:   0.30,
		Similarity:  0.25,
		Progress:    0.25,
		Exploration: 0.20,
	}
}

// Blend runs every strategy in fixed order, concatenates their picks,
// removes duplicate words keeping the first occurrence, and truncates
// to count. When overlapping nominations leave the result short, the
// remaining pool backfills it, so the only cap is the pool itself: a
// request for more words than exist yields the whole pool, never
// repeats.
func Blend(in Input, count int, weights Weights) []Pick {
	var merged []Pick
	for _, s := range Order {
		quota := int(math.Round(float64(count) * weights[s]))
		if quota <= 0 {
			continue
		}
		merged = append(merged, funcFor(s)(in, quota)...)
	}

	seen := make(map[string]bool, len(merged))
	out := merged[:0]
	for _, p := range merged {
		if seen[p.Word.ID] {
			continue
		}
		seen[p.Word.ID] = true
		out = append(out, p)
		if len(out) == count {
			return out
		}
	}
	for _, w := range in.Pool.Words {
		if len(out) == count {
			break
		}
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		out = append(out, Pick{Word: w, Reason: reasonExploration, Score: newWordPriority})
	}
	return out
}

// sortStable orders picks by score descending with word ID as the
// deterministic tiebreaker.
func sortStable(picks []Pick) {
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Score != picks[j].Score {
			return picks[i].Score > picks[j].Score
		}
		return picks[i].Word.ID < picks[j].Word.ID
	})
}

func head(picks []Pick, count int) []Pick {
	if len(picks) > count {
		return picks[:count]
	}
	return picks
}
