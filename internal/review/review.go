// Package review computes review urgency for words whose spaced
// repetition schedule has come due.
package review

import (
	"sort"
	"time"

	"github.com/marchenko/lexrec/internal/vocab"
)

const (
	urgencyWeight   = 0.4
	forgottenWeight = 0.6
	reviewingWeight = 0.4
	learningWeight  = 0.2
	weakAccuracy    = 0.6
	accuracyPenalty = 0.2
	overdueDayline  = 24 * time.Hour
)

// Candidate is a due word with its computed review priority.
type Candidate struct {
	Progress vocab.WordProgress
	Urgency  float64
	Priority float64
	Reason   string
}

// Urgency maps how far past due a review is onto [0, 1].
func Urgency(p vocab.WordProgress, now time.Time) float64 {
	if p.NextReviewDue == nil {
		return 0.5
	}
	overdue := now.Sub(*p.NextReviewDue)
	switch {
	case overdue > overdueDayline:
		return 1.0
	case overdue >= 0:
		return 0.8
	default:
		// Not yet due; Prioritize filters these out before scoring.
		return 0.5
	}
}

// Prioritize filters progress rows down to due reviews and orders them
// by priority descending; equal priorities break toward the earlier due
// date, so the longest overdue word surfaces first.
func Prioritize(rows []vocab.WordProgress, now time.Time) []Candidate {
	var due []Candidate
	for _, p := range rows {
		if !p.State.NeedsReview() || p.NextReviewDue == nil {
			continue
		}
		if p.NextReviewDue.After(now) {
			continue
		}
		due = append(due, score(p, now))
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Priority != due[j].Priority {
			return due[i].Priority > due[j].Priority
		}
		di, dj := *due[i].Progress.NextReviewDue, *due[j].Progress.NextReviewDue
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return due[i].Progress.WordID < due[j].Progress.WordID
	})
	return due
}

func score(p vocab.WordProgress, now time.Time) Candidate {
	urgency := Urgency(p, now)
	priority := urgencyWeight * urgency

	switch p.State {
	case vocab.StateForgotten:
		priority += forgottenWeight
	case vocab.StateReviewing:
		priority += reviewingWeight
	case vocab.StateLearning:
		priority += learningWeight
	}

	weak := p.Accuracy < weakAccuracy
	if weak {
		priority += accuracyPenalty
	}

	return Candidate{
		Progress: p,
		Urgency:  urgency,
		Priority: priority,
		Reason:   reason(p.State, urgency, weak),
	}
}

func reason(state vocab.MasteryState, urgency float64, weak bool) string {
	switch {
	case state == vocab.StateForgotten:
		return "already forgotten — relearn"
	case urgency >= 1.0:
		return "overdue — prevent forgetting"
	case weak:
		return "weak accuracy — reinforce"
	default:
		return "routine review"
	}
}
