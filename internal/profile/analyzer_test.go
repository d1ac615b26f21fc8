package profile

import (
	"context"
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/vocab"
)

// mockEventRepo serves a fixed event slice regardless of window.
type mockEventRepo struct {
	events []vocab.LearningEvent
}

func (m *mockEventRepo) Events(_ context.Context, _ string, since time.Time) ([]vocab.LearningEvent, error) {
	var out []vocab.LearningEvent
	for _, e := range m.events {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockCatalog struct {
	words map[string]vocab.WordItem
}

func (m *mockCatalog) WordsInGoal(_ context.Context, _ string) ([]vocab.WordItem, error) {
	return nil, nil
}

func (m *mockCatalog) Words(_ context.Context, ids []string) ([]vocab.WordItem, error) {
	var out []vocab.WordItem
	for _, id := range ids {
		if w, ok := m.words[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func event(wordID, sessionID string, ts time.Time, correct bool, rt float64) vocab.LearningEvent {
	return vocab.LearningEvent{
		UserID:       "u1",
		WordID:       wordID,
		SessionID:    sessionID,
		Timestamp:    ts,
		Correct:      correct,
		ResponseTime: rt,
	}
}

func TestBuild_NoEvents(t *testing.T) {
	a := NewAnalyzer(&mockEventRepo{}, &mockCatalog{})
	p, err := a.Build(context.Background(), "u1", time.Now(), 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.NoHistory {
		t.Error("expected NoHistory profile")
	}
	if p.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", p.Accuracy)
	}
	if p.AvgResponseTime != nil {
		t.Errorf("AvgResponseTime = %v, want nil", *p.AvgResponseTime)
	}
	if p.Engagement != EngagementLow {
		t.Errorf("Engagement = %s, want low", p.Engagement)
	}
}

func TestBuild_AccuracyAndResponseTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		event("w1", "s1", now.Add(-2*time.Hour), true, 2.0),
		event("w2", "s1", now.Add(-time.Hour), false, 4.0),
		event("w1", "s1", now.Add(-30*time.Minute), true, 3.0),
		event("w2", "s1", now.Add(-10*time.Minute), true, 3.0),
	}}
	catalog := &mockCatalog{words: map[string]vocab.WordItem{
		"w1": {ID: "w1", Grade: 2},
		"w2": {ID: "w2", Grade: 5},
	}}

	a := NewAnalyzer(repo, catalog)
	p, err := a.Build(context.Background(), "u1", now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", p.Accuracy)
	}
	if p.AvgResponseTime == nil || *p.AvgResponseTime != 3.0 {
		t.Errorf("AvgResponseTime = %v, want 3.0", p.AvgResponseTime)
	}
	if p.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", p.TotalAttempts)
	}
	if p.NoHistory {
		t.Error("NoHistory set on a profile with events")
	}
}

func TestBuild_WindowExcludesOldEvents(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		event("w1", "s0", now.Add(-40*24*time.Hour), false, 9.0), // outside window
		event("w1", "s1", now.Add(-time.Hour), true, 2.0),
	}}
	a := NewAnalyzer(repo, &mockCatalog{words: map[string]vocab.WordItem{"w1": {ID: "w1", Grade: 1}}})

	p, err := a.Build(context.Background(), "u1", now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", p.TotalAttempts)
	}
	if p.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", p.Accuracy)
	}
}

func TestBuild_TimePreferences(t *testing.T) {
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		event("w1", "s1", morning, true, 2),
		event("w1", "s1", morning.Add(5*time.Minute), true, 2), // same session
		event("w1", "s2", evening, true, 2),
		event("w1", "s3", evening.Add(time.Hour), false, 2),
	}}
	a := NewAnalyzer(repo, &mockCatalog{words: map[string]vocab.WordItem{"w1": {ID: "w1", Grade: 1}}})

	p, err := a.Build(context.Background(), "u1", now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 sessions: one morning start, two evening starts.
	if got := p.TimePreferences[BucketMorning]; got < 33.2 || got > 33.4 {
		t.Errorf("morning share = %v, want ~33.3", got)
	}
	if got := p.TimePreferences[BucketEvening]; got < 66.5 || got > 66.8 {
		t.Errorf("evening share = %v, want ~66.7", got)
	}
}

func TestBuild_Engagement(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	makeRepo := func(sessions int) *mockEventRepo {
		repo := &mockEventRepo{}
		for i := 0; i < sessions; i++ {
			ts := now.Add(-time.Duration(i+1) * 12 * time.Hour)
			repo.events = append(repo.events, event("w1", string(rune('a'+i)), ts, true, 2))
		}
		return repo
	}
	catalog := &mockCatalog{words: map[string]vocab.WordItem{"w1": {ID: "w1", Grade: 1}}}

	tests := []struct {
		sessions int
		want     Engagement
	}{
		{2, EngagementLow},
		{5, EngagementMedium},
		{10, EngagementHigh},
	}
	for _, tt := range tests {
		a := NewAnalyzer(makeRepo(tt.sessions), catalog)
		p, err := a.Build(context.Background(), "u1", now, 30*24*time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Engagement != tt.want {
			t.Errorf("%d sessions: Engagement = %s, want %s", tt.sessions, p.Engagement, tt.want)
		}
	}
}

func TestBuild_DifficultyPreferences(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		event("easy", "s1", now.Add(-3*time.Hour), true, 2),
		event("easy", "s1", now.Add(-2*time.Hour), true, 2),
		event("hard", "s1", now.Add(-time.Hour), false, 6),
		event("hard", "s1", now.Add(-30*time.Minute), true, 5),
		event("gone", "s1", now.Add(-10*time.Minute), true, 2), // not in catalog
	}}
	catalog := &mockCatalog{words: map[string]vocab.WordItem{
		"easy": {ID: "easy", Grade: 2},
		"hard": {ID: "hard", Grade: 8},
	}}

	a := NewAnalyzer(repo, catalog)
	p, err := a.Build(context.Background(), "u1", now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g2 := p.DifficultyPreferences[2]
	if g2.Attempts != 2 || g2.Accuracy != 1.0 {
		t.Errorf("grade 2 stats = %+v, want {2 1}", g2)
	}
	g8 := p.DifficultyPreferences[8]
	if g8.Attempts != 2 || g8.Accuracy != 0.5 {
		t.Errorf("grade 8 stats = %+v, want {2 0.5}", g8)
	}
	if len(p.DifficultyPreferences) != 2 {
		t.Errorf("grades tracked = %d, want 2 (unknown word skipped)", len(p.DifficultyPreferences))
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := consistencyScore(map[string]int{}); got != 0 {
		t.Errorf("empty day counts = %v, want 0", got)
	}

	even := map[string]int{"d1": 3, "d2": 3, "d3": 3}
	if got := consistencyScore(even); got != 100 {
		t.Errorf("even days = %v, want 100", got)
	}

	uneven := map[string]int{"d1": 3, "d2": 2, "d3": 1}
	got := consistencyScore(uneven)
	if got <= 0 || got >= 100 {
		t.Errorf("uneven days = %v, want strictly between 0 and 100", got)
	}

	wild := map[string]int{"d1": 30, "d2": 1, "d3": 1}
	if got := consistencyScore(wild); got != 0 {
		t.Errorf("wildly uneven days = %v, want clamped to 0", got)
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		hour int
		want TimeBucket
	}{
		{6, BucketMorning},
		{11, BucketMorning},
		{12, BucketAfternoon},
		{17, BucketAfternoon},
		{18, BucketEvening},
		{23, BucketEvening},
		{0, BucketNight},
		{5, BucketNight},
	}
	for _, tt := range tests {
		if got := BucketFor(tt.hour); got != tt.want {
			t.Errorf("BucketFor(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}
