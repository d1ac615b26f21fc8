package strategy

import (
	"github.com/marchenko/lexrec/internal/vocab"
)

const (
	posMatchBonus   = 0.3
	gradeNearBonus  = 0.2
	gradeNearSpan   = 1
	reviewingWeight = 0.9
	learningWeight  = 0.8
	newWordPriority = 0.5
	weakAccuracy    = 0.6
	strongAccuracy  = 0.9
	accuracyDelta   = 0.1
)

const (
	reasonFrequency   = "high-frequency, practical"
	reasonSimilarity  = "related to recent study"
	reasonExploration = "exploration"
)

// byFrequency favors the most common words in the pool.
func byFrequency(in Input, count int) []Pick {
	picks := make([]Pick, 0, len(in.Pool.Words))
	maxFreq := 0
	for _, w := range in.Pool.Words {
		if w.Frequency > maxFreq {
			maxFreq = w.Frequency
		}
	}
	for _, w := range in.Pool.Words {
		score := 0.0
		if maxFreq > 0 {
			score = float64(w.Frequency) / float64(maxFreq)
		}
		picks = append(picks, Pick{Word: w, Reason: reasonFrequency, Score: score})
	}
	sortStable(picks)
	return head(picks, count)
}

// bySimilarity scores candidates against the words studied in the last
// week: a fixed bonus per shared part of speech and per near grade.
// With no recent study it falls back to exploration.
func bySimilarity(in Input, count int) []Pick {
	if len(in.Recent) == 0 {
		return byExploration(in, count)
	}

	var picks []Pick
	for _, w := range in.Pool.Words {
		score := 0.0
		for _, r := range in.Recent {
			if w.POS == r.POS {
				score += posMatchBonus
			}
			if diff := w.Grade - r.Grade; diff >= -gradeNearSpan && diff <= gradeNearSpan {
				score += gradeNearBonus
			}
		}
		if score > 0 {
			picks = append(picks, Pick{Word: w, Reason: reasonSimilarity, Score: score})
		}
	}
	sortStable(picks)
	return head(picks, count)
}

// byProgress prioritizes words already in flight, backfilled with brand
// new words at a fixed low priority.
func byProgress(in Input, count int) []Pick {
	var active, fresh []Pick
	for _, w := range in.Pool.Words {
		row, ok := in.Pool.Progress[w.ID]
		if !ok || row.State == vocab.StateNew {
			fresh = append(fresh, Pick{Word: w, Reason: progressReason(newWordPriority), Score: newWordPriority})
			continue
		}

		var base float64
		switch row.State {
		case vocab.StateReviewing:
			base = reviewingWeight
		case vocab.StateLearning:
			base = learningWeight
		default:
			continue // forgotten words belong to the review pipeline
		}
		switch {
		case row.Accuracy < weakAccuracy:
			base += accuracyDelta
		case row.Accuracy >= strongAccuracy:
			base -= accuracyDelta
		}
		active = append(active, Pick{Word: w, Reason: progressReason(base), Score: base})
	}
	sortStable(active)
	sortStable(fresh)
	return head(append(active, fresh...), count)
}

// progressReason picks a reason string by priority tier.
func progressReason(priority float64) string {
	switch {
	case priority >= 0.95:
		return "weak spot — needs extra reps"
	case priority >= 0.85:
		return "in review — keep momentum"
	case priority >= 0.7:
		return "still learning — continue"
	default:
		return "new word to start"
	}
}

// byExploration draws a uniform random sample from the pool.
func byExploration(in Input, count int) []Pick {
	n := len(in.Pool.Words)
	if n == 0 {
		return nil
	}
	perm := in.Rand.Perm(n)
	if count > n {
		count = n
	}
	picks := make([]Pick, 0, count)
	for _, idx := range perm[:count] {
		picks = append(picks, Pick{
			Word:   in.Pool.Words[idx],
			Reason: reasonExploration,
			Score:  newWordPriority,
		})
	}
	return picks
}
