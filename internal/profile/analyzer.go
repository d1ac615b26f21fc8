package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/marchenko/lexrec/internal/vocab"
)

// Engagement thresholds: distinct sessions within the trailing week.
const (
	highEngagementSessions   = 10
	mediumEngagementSessions = 5
	engagementWindow         = 7 * 24 * time.Hour
)

// Analyzer builds learner profiles from historical events.
type Analyzer struct {
	events  vocab.EventRepo
	catalog vocab.Catalog
}

// NewAnalyzer creates an Analyzer reading through the given adapters.
func NewAnalyzer(events vocab.EventRepo, catalog vocab.Catalog) *Analyzer {
	return &Analyzer{events: events, catalog: catalog}
}

// Build aggregates the user's events from the window ending at now into
// a Profile. Zero events yield a Neutral profile, not an error; only
// adapter failures are returned.
func (a *Analyzer) Build(ctx context.Context, userID string, now time.Time, window time.Duration) (*Profile, error) {
	events, err := a.events.Events(ctx, userID, now.Add(-window))
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	if len(events) == 0 {
		return Neutral(userID), nil
	}

	p := &Profile{
		UserID:          userID,
		TimePreferences: map[TimeBucket]float64{},
		TotalAttempts:   len(events),
	}

	correct := 0
	var totalRT float64
	for _, e := range events {
		if e.Correct {
			correct++
		}
		totalRT += e.ResponseTime
	}
	p.Accuracy = float64(correct) / float64(len(events))
	avg := totalRT / float64(len(events))
	p.AvgResponseTime = &avg

	sessions := sessionStarts(events)
	bucketCounts := map[TimeBucket]int{}
	dayCounts := map[string]int{}
	recentSessions := 0
	for _, start := range sessions {
		bucketCounts[BucketFor(start.Hour())]++
		dayCounts[start.Format("2006-01-02")]++
		if now.Sub(start) <= engagementWindow {
			recentSessions++
		}
	}
	for bucket, n := range bucketCounts {
		p.TimePreferences[bucket] = float64(n) / float64(len(sessions)) * 100
	}

	p.Consistency = consistencyScore(dayCounts)
	p.Engagement = engagementFor(recentSessions)

	prefs, err := a.difficultyPreferences(ctx, events)
	if err != nil {
		return nil, err
	}
	p.DifficultyPreferences = prefs

	return p, nil
}

// sessionStarts returns the first event time of each distinct session.
// Events arrive ordered oldest first, so the first sighting wins.
func sessionStarts(events []vocab.LearningEvent) []time.Time {
	seen := map[string]bool{}
	var starts []time.Time
	for _, e := range events {
		if seen[e.SessionID] {
			continue
		}
		seen[e.SessionID] = true
		starts = append(starts, e.Timestamp)
	}
	return starts
}

// consistencyScore maps the coefficient of variation of daily session
// counts onto a 0–100 scale. Perfectly even days score 100.
func consistencyScore(dayCounts map[string]int) float64 {
	if len(dayCounts) == 0 {
		return 0
	}
	var sum float64
	for _, n := range dayCounts {
		sum += float64(n)
	}
	mean := sum / float64(len(dayCounts))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, n := range dayCounts {
		d := float64(n) - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(dayCounts)))

	score := 100 - (stddev/mean)*100
	return math.Min(100, math.Max(0, score))
}

func engagementFor(recentSessions int) Engagement {
	switch {
	case recentSessions >= highEngagementSessions:
		return EngagementHigh
	case recentSessions >= mediumEngagementSessions:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// difficultyPreferences groups event accuracy by the word's difficulty grade.
func (a *Analyzer) difficultyPreferences(ctx context.Context, events []vocab.LearningEvent) (map[int]GradeStats, error) {
	ids := make([]string, 0, len(events))
	seen := map[string]bool{}
	for _, e := range events {
		if !seen[e.WordID] {
			seen[e.WordID] = true
			ids = append(ids, e.WordID)
		}
	}

	words, err := a.catalog.Words(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}
	grades := make(map[string]int, len(words))
	for _, w := range words {
		grades[w.ID] = w.Grade
	}

	type tally struct{ attempts, correct int }
	byGrade := map[int]*tally{}
	for _, e := range events {
		grade, ok := grades[e.WordID]
		if !ok {
			continue // word no longer in catalog
		}
		t := byGrade[grade]
		if t == nil {
			t = &tally{}
			byGrade[grade] = t
		}
		t.attempts++
		if e.Correct {
			t.correct++
		}
	}

	prefs := make(map[int]GradeStats, len(byGrade))
	for grade, t := range byGrade {
		prefs[grade] = GradeStats{
			Attempts: t.attempts,
			Accuracy: float64(t.correct) / float64(t.attempts),
		}
	}
	return prefs, nil
}
