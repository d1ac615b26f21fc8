package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/adaptive"
	"github.com/marchenko/lexrec/internal/cache"
	"github.com/marchenko/lexrec/internal/vocab"
)

// mockStore implements all four read adapters over fixtures.
type mockStore struct {
	goal     string
	words    map[string][]vocab.WordItem // by goal
	byID     map[string]vocab.WordItem
	progress []vocab.WordProgress
	events   []vocab.LearningEvent

	eventsErr error
	goalErr   error
}

func (m *mockStore) WordsInGoal(_ context.Context, goalID string) ([]vocab.WordItem, error) {
	return m.words[goalID], nil
}

func (m *mockStore) Words(_ context.Context, ids []string) ([]vocab.WordItem, error) {
	var out []vocab.WordItem
	for _, id := range ids {
		if w, ok := m.byID[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockStore) Progress(_ context.Context, _ string, wordIDs []string) ([]vocab.WordProgress, error) {
	if len(wordIDs) == 0 {
		return m.progress, nil
	}
	want := make(map[string]bool, len(wordIDs))
	for _, id := range wordIDs {
		want[id] = true
	}
	var out []vocab.WordProgress
	for _, p := range m.progress {
		if want[p.WordID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) Events(_ context.Context, _ string, since time.Time) ([]vocab.LearningEvent, error) {
	if m.eventsErr != nil {
		return nil, m.eventsErr
	}
	var out []vocab.LearningEvent
	for _, e := range m.events {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockStore) CurrentGoal(_ context.Context, _ string) (string, error) {
	if m.goalErr != nil {
		return "", m.goalErr
	}
	return m.goal, nil
}

func word(id string, pos vocab.PartOfSpeech, freq, grade int) vocab.WordItem {
	return vocab.WordItem{ID: id, Text: id, POS: pos, Frequency: freq, Grade: grade}
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixtureStore() *mockStore {
	words := []vocab.WordItem{
		word("w1", vocab.POSNoun, 900, 2),
		word("w2", vocab.POSVerb, 700, 3),
		word("w3", vocab.POSNoun, 500, 4),
		word("w4", vocab.POSAdjective, 300, 5),
		word("w5", vocab.POSVerb, 100, 6),
	}
	byID := make(map[string]vocab.WordItem, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}
	return &mockStore{
		goal:  "g1",
		words: map[string][]vocab.WordItem{"g1": words},
		byID:  byID,
	}
}

func newTestEngine(t *testing.T, m *mockStore, mutate ...func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	for _, fn := range mutate {
		fn(&cfg)
	}
	e, err := New(cfg, Deps{Catalog: m, Progress: m, Events: m, Goals: m},
		WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinCount = 0
	if _, err := New(cfg, Deps{}); err == nil {
		t.Error("expected error for MinCount 0")
	}

	cfg = DefaultConfig()
	cfg.Weights = nil
	if _, err := New(cfg, Deps{}); err == nil {
		t.Error("expected error for empty weights")
	}
}

func TestRecommend_UnknownMode(t *testing.T) {
	e := newTestEngine(t, fixtureStore())
	if _, err := e.Recommend(context.Background(), Mode(99), Request{UserID: "u1"}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestRecommend_MissingUser(t *testing.T) {
	e := newTestEngine(t, fixtureStore())
	if _, err := e.Personalized(context.Background(), Request{}); !errors.Is(err, ErrMissingUser) {
		t.Errorf("err = %v, want ErrMissingUser", err)
	}
}

func TestRecommend_NegativeCount(t *testing.T) {
	e := newTestEngine(t, fixtureStore())
	if _, err := e.Personalized(context.Background(), Request{UserID: "u1", Count: -1}); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("err = %v, want ErrInvalidCount", err)
	}
}

func TestPersonalized_SmallPoolNeverPads(t *testing.T) {
	e := newTestEngine(t, fixtureStore())

	res, err := e.Personalized(context.Background(), Request{UserID: "u1", Count: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyPersonalized {
		t.Errorf("Strategy = %s, want personalized", res.Strategy)
	}
	if len(res.Items) != 5 {
		t.Errorf("items = %d, want the whole 5-word pool and nothing more", len(res.Items))
	}
	seen := map[string]bool{}
	for _, it := range res.Items {
		if seen[it.Word.ID] {
			t.Errorf("duplicate word %s", it.Word.ID)
		}
		seen[it.Word.ID] = true
		if it.Reason == "" {
			t.Errorf("word %s has no reason", it.Word.ID)
		}
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		t.Errorf("Confidence = %v, want within [0, 1]", res.Confidence)
	}
}

func TestPersonalized_NoGoal(t *testing.T) {
	m := fixtureStore()
	m.goal = ""
	e := newTestEngine(t, m)

	res, err := e.Personalized(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyNoGoal {
		t.Errorf("Strategy = %s, want no_goal", res.Strategy)
	}
	if len(res.Items) != 0 {
		t.Errorf("items = %d, want 0", len(res.Items))
	}
}

func TestPersonalized_FullyMasteredPool(t *testing.T) {
	m := fixtureStore()
	for _, w := range m.words["g1"] {
		m.progress = append(m.progress, vocab.WordProgress{
			UserID: "u1", WordID: w.ID, State: vocab.StateMastered,
		})
	}
	e := newTestEngine(t, m)

	res, err := e.Personalized(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyNoCandidates {
		t.Errorf("Strategy = %s, want no_candidates", res.Strategy)
	}
}

func TestPersonalized_ExcludesMastered(t *testing.T) {
	m := fixtureStore()
	m.progress = []vocab.WordProgress{
		{UserID: "u1", WordID: "w1", State: vocab.StateMastered},
	}
	e := newTestEngine(t, m)

	res, err := e.Personalized(context.Background(), Request{UserID: "u1", Count: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range res.Items {
		if it.Word.ID == "w1" {
			t.Error("mastered word w1 recommended")
		}
	}
}

func TestPersonalized_AdapterFailureDegrades(t *testing.T) {
	m := fixtureStore()
	m.eventsErr = errors.New("events table locked")
	e := newTestEngine(t, m)

	res, err := e.Personalized(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("adapter failure leaked as error: %v", err)
	}
	if res.Strategy != StrategyUnavailable {
		t.Errorf("Strategy = %s, want unavailable", res.Strategy)
	}
	if len(res.Items) != 0 {
		t.Errorf("items = %d, want 0", len(res.Items))
	}
}

func TestPersonalized_DifficultyFilter(t *testing.T) {
	e := newTestEngine(t, fixtureStore())

	res, err := e.Personalized(context.Background(), Request{UserID: "u1", Count: 10, Difficulty: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range res.Items {
		if it.Word.Grade > 4 {
			t.Errorf("word %s grade %d outside the easy band", it.Word.ID, it.Word.Grade)
		}
	}
}

func TestPersonalized_DifficultyFilterFallsBackWhenEmpty(t *testing.T) {
	m := fixtureStore()
	hard := []vocab.WordItem{word("h1", vocab.POSNoun, 100, 11)}
	m.words["g1"] = hard
	m.byID = map[string]vocab.WordItem{"h1": hard[0]}
	e := newTestEngine(t, m)

	res, err := e.Personalized(context.Background(), Request{UserID: "u1", Difficulty: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) == 0 {
		t.Error("empty result; the filter should yield to the unfiltered pool")
	}
}

func TestPersonalized_CacheHit(t *testing.T) {
	m := fixtureStore()
	c := cache.NewMemory()
	cfg := DefaultConfig()
	cfg.Seed = 42
	e, err := New(cfg, Deps{Catalog: m, Progress: m, Events: m, Goals: m, Cache: c},
		WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := e.Personalized(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Personalized(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("second call missed the cache")
	}

	bypassed, err := e.Personalized(context.Background(), Request{UserID: "u1", BypassCache: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bypassed == first {
		t.Error("BypassCache still served the cached result")
	}
}

func TestReviews_PrioritizesDue(t *testing.T) {
	m := fixtureStore()
	overdue := testNow.Add(-48 * time.Hour)
	recent := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)
	m.progress = []vocab.WordProgress{
		{UserID: "u1", WordID: "w1", State: vocab.StateReviewing, ReviewCount: 4, Accuracy: 0.8, NextReviewDue: &overdue},
		{UserID: "u1", WordID: "w2", State: vocab.StateLearning, ReviewCount: 2, Accuracy: 0.7, NextReviewDue: &recent},
		{UserID: "u1", WordID: "w3", State: vocab.StateReviewing, ReviewCount: 3, Accuracy: 0.8, NextReviewDue: &future},
	}
	e := newTestEngine(t, m)

	res, err := e.Reviews(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyReview {
		t.Errorf("Strategy = %s, want review", res.Strategy)
	}
	if len(res.Items) != 2 {
		t.Fatalf("items = %d, want 2 (w3 not yet due)", len(res.Items))
	}
	// w1: 0.4*1.0 + 0.4 = 0.8; w2: 0.4*0.8 + 0.2 = 0.52.
	if res.Items[0].Word.ID != "w1" {
		t.Errorf("top review = %s, want w1", res.Items[0].Word.ID)
	}
	for i := 1; i < len(res.Items); i++ {
		if res.Items[i].Score > res.Items[i-1].Score {
			t.Error("review items not ordered by priority")
		}
	}
}

func TestReviews_NothingDue(t *testing.T) {
	e := newTestEngine(t, fixtureStore())

	res, err := e.Reviews(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyNoCandidates {
		t.Errorf("Strategy = %s, want no_candidates", res.Strategy)
	}
}

func TestReviews_TruncatesToCount(t *testing.T) {
	m := fixtureStore()
	due := testNow.Add(-time.Hour)
	for _, id := range []string{"w1", "w2", "w3", "w4", "w5"} {
		d := due
		m.progress = append(m.progress, vocab.WordProgress{
			UserID: "u1", WordID: id, State: vocab.StateReviewing, ReviewCount: 1, Accuracy: 0.8, NextReviewDue: &d,
		})
	}
	e := newTestEngine(t, m)

	res, err := e.Reviews(context.Background(), Request{UserID: "u1", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 2 {
		t.Errorf("items = %d, want 2", len(res.Items))
	}
}

func TestAdaptive_NoHistory(t *testing.T) {
	e := newTestEngine(t, fixtureStore())

	res, err := e.Adaptive(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyAdaptive {
		t.Errorf("Strategy = %s, want adaptive", res.Strategy)
	}
	if res.Ability == nil {
		t.Fatal("Ability missing from adaptive result")
	}
	if res.Ability.Level != adaptive.LevelBeginner {
		t.Errorf("Level = %s, want beginner", res.Ability.Level)
	}
	if res.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 with no history", res.Confidence)
	}
	// The beginner band 1–3 still yields material.
	if len(res.Items) == 0 {
		t.Error("expected in-band items for a new learner")
	}
	for _, it := range res.Items {
		if it.Word.Grade > 3 {
			t.Errorf("word %s grade %d outside the beginner band", it.Word.ID, it.Word.Grade)
		}
	}
}

func TestAdaptive_AdvancedLearner(t *testing.T) {
	m := fixtureStore()
	for i := 0; i < 60; i++ {
		m.events = append(m.events, vocab.LearningEvent{
			UserID: "u1", WordID: "w1", SessionID: "s",
			Timestamp: testNow.Add(-time.Duration(i) * time.Hour),
			Correct:   true, ResponseTime: 1.0,
		})
	}
	e := newTestEngine(t, m)

	res, err := e.Adaptive(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ability.Level != adaptive.LevelAdvanced {
		t.Errorf("Level = %s, want advanced", res.Ability.Level)
	}
	for _, it := range res.Items {
		if it.Word.Grade < 5 {
			t.Errorf("word %s grade %d below the advanced band", it.Word.ID, it.Word.Grade)
		}
	}
}

func TestWeakness_FocusAreas(t *testing.T) {
	m := fixtureStore()
	at := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		m.events = append(m.events, vocab.LearningEvent{
			UserID: "u1", WordID: "w2", SessionID: "s",
			Timestamp: at.Add(time.Duration(i) * time.Minute),
			Correct:   false, ResponseTime: 6,
		})
	}
	e := newTestEngine(t, m)

	res, err := e.WeaknessFocused(context.Background(), Request{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strategy != StrategyWeakness {
		t.Errorf("Strategy = %s, want weakness", res.Strategy)
	}
	if len(res.FocusAreas) == 0 {
		t.Fatal("expected focus areas")
	}
	if res.FocusAreas[0] != "verb practice" {
		t.Errorf("FocusAreas[0] = %q, want verb practice", res.FocusAreas[0])
	}
	for _, it := range res.Items {
		if it.Word.ID == "w2" && it.Reason == "verb practice" {
			t.Error("error word w2 chosen as a focused target")
			break
		}
	}
}

func TestClampCount(t *testing.T) {
	e := newTestEngine(t, fixtureStore())
	tests := []struct {
		in   int
		mode Mode
		want int
	}{
		{0, ModePersonalized, 10},
		{0, ModeReview, 10},
		{0, ModeAdaptive, 15},
		{0, ModeWeakness, 12},
		{100, ModePersonalized, 50},
		{3, ModePersonalized, 3},
	}
	for _, tt := range tests {
		got, err := e.clampCount(tt.in, tt.mode)
		if err != nil {
			t.Fatalf("clampCount(%d): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("clampCount(%d, %s) = %d, want %d", tt.in, tt.mode, got, tt.want)
		}
	}
}

func TestCacheKey_Shape(t *testing.T) {
	e := newTestEngine(t, fixtureStore())
	got := e.CacheKey(ModePersonalized, Request{UserID: "u1", GoalID: "g9", Count: 7})
	want := "u1|personalized|g9|7|adaptive"
	if got != want {
		t.Errorf("CacheKey = %q, want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"personalized", "review", "adaptive", "weakness"} {
		m, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", name, err)
		}
		if m.String() != name {
			t.Errorf("round trip = %s, want %s", m.String(), name)
		}
	}
	if _, err := ParseMode("bogus"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}
