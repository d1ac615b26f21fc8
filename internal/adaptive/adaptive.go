// Package adaptive estimates learner ability from recent performance
// and selects candidates in a matching difficulty band.
package adaptive

import (
	"math"
	"sort"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/vocab"
)

// Level is the coarse ability classification.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

const (
	advancedThreshold      = 80.0
	intermediateThreshold  = 60.0
	fullConfidenceEvents   = 50
	minSelectionConfidence = 0.3
	bandShare              = 0.7
)

// Estimate is the ability assessment derived from the event window.
type Estimate struct {
	Level      Level
	Score      float64 // 0–100
	Confidence float64 // min(events/50, 1)
	EventCount int

	// LevelProgress is the percentage position of Score within the
	// current level's threshold range.
	LevelProgress float64

	// PointsToNext is the score still needed to reach the next level.
	// Zero at the advanced level.
	PointsToNext float64
}

// EstimateAbility computes the ability estimate from recent events.
// Zero events yield a beginner estimate with zero confidence.
func EstimateAbility(events []vocab.LearningEvent) Estimate {
	if len(events) == 0 {
		est := Estimate{Level: LevelBeginner, EventCount: 0}
		est.LevelProgress, est.PointsToNext = levelPosition(est.Level, 0)
		return est
	}

	correct := 0
	var totalRT float64
	for _, e := range events {
		if e.Correct {
			correct++
		}
		totalRT += e.ResponseTime
	}
	accuracy := float64(correct) / float64(len(events))
	avgRT := totalRT / float64(len(events))

	score := (accuracy*0.6 + (1/math.Max(avgRT, 1))*0.4) * 100

	est := Estimate{
		Score:      score,
		Confidence: math.Min(float64(len(events))/fullConfidenceEvents, 1.0),
		EventCount: len(events),
	}
	switch {
	case score >= advancedThreshold:
		est.Level = LevelAdvanced
	case score >= intermediateThreshold:
		est.Level = LevelIntermediate
	default:
		est.Level = LevelBeginner
	}
	est.LevelProgress, est.PointsToNext = levelPosition(est.Level, score)
	return est
}

// levelPosition returns the percentage position within the level's
// threshold range and the points remaining to the next level.
func levelPosition(level Level, score float64) (progress, toNext float64) {
	var lo, hi float64
	switch level {
	case LevelAdvanced:
		lo, hi = advancedThreshold, 100
	case LevelIntermediate:
		lo, hi = intermediateThreshold, advancedThreshold
	default:
		lo, hi = 0, intermediateThreshold
	}
	progress = (score - lo) / (hi - lo) * 100
	progress = math.Min(100, math.Max(0, progress))
	if level != LevelAdvanced {
		toNext = hi - score
	}
	return progress, toNext
}

// Band returns the difficulty-grade range matched to a level.
func Band(level Level) (min, max int) {
	switch level {
	case LevelAdvanced:
		return 5, 7
	case LevelIntermediate:
		return 3, 5
	default:
		return 1, 3
	}
}

// ChallengeBand returns the next-tier grade range used for stretch items.
func ChallengeBand(level Level) (min, max int) {
	min, max = Band(level)
	return min + 2, max + 2
}

// Selection is one word chosen by the difficulty engine.
type Selection struct {
	Word      vocab.WordItem
	Reason    string
	Score     float64
	Challenge bool
}

// Select picks count candidates for the estimated level. With a shaky
// estimate it stays inside the matched band; otherwise it mixes 70%
// in-band items with 30% next-tier challenge items.
func Select(pool *candidate.Pool, est Estimate, count int) []Selection {
	lo, hi := Band(est.Level)
	band := byPracticality(pool.Grades(lo, hi))

	if est.Confidence < minSelectionConfidence {
		return take(band, count, "fits your current level", bandShare, false)
	}

	bandCount := int(math.Round(float64(count) * bandShare))
	selections := take(band, bandCount, "fits your current level", bandShare, false)

	clo, chi := ChallengeBand(est.Level)
	challenge := byPracticality(pool.Grades(clo, chi))

	seen := make(map[string]bool, len(selections))
	for _, s := range selections {
		seen[s.Word.ID] = true
	}
	for _, w := range challenge {
		if len(selections) >= count {
			break
		}
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		selections = append(selections, Selection{
			Word:      w,
			Reason:    "one step up — challenge",
			Score:     1 - bandShare,
			Challenge: true,
		})
	}
	if len(selections) > count {
		selections = selections[:count]
	}
	return selections
}

// byPracticality orders words by frequency descending so the most
// useful words in a band come first. Deterministic via ID tiebreak.
func byPracticality(words []vocab.WordItem) []vocab.WordItem {
	out := make([]vocab.WordItem, len(words))
	copy(out, words)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func take(words []vocab.WordItem, count int, reason string, score float64, challenge bool) []Selection {
	if count > len(words) {
		count = len(words)
	}
	out := make([]Selection, 0, count)
	for _, w := range words[:count] {
		out = append(out, Selection{Word: w, Reason: reason, Score: score, Challenge: challenge})
	}
	return out
}
