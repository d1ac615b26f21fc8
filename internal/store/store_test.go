package store

import (
	"context"
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/cache"
	"github.com/marchenko/lexrec/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedWord(t *testing.T, s *Store, id string, pos vocab.PartOfSpeech, freq, grade int) {
	t.Helper()
	err := s.UpsertWord(context.Background(), vocab.WordItem{
		ID: id, Text: id, POS: pos, Frequency: freq, Grade: grade,
	})
	if err != nil {
		t.Fatalf("seed word %s: %v", id, err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is covered by file-based usage only.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUpsertWord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedWord(t, s, "apple", vocab.POSNoun, 500, 2)

	items, err := s.Words(ctx, []string{"apple"})
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("words = %d, want 1", len(items))
	}
	if items[0].Frequency != 500 {
		t.Errorf("frequency = %d, want 500", items[0].Frequency)
	}

	// Upserting again replaces the fields rather than duplicating.
	seedWord(t, s, "apple", vocab.POSNoun, 600, 3)
	items, err = s.Words(ctx, []string{"apple"})
	if err != nil {
		t.Fatalf("words after upsert: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("words after upsert = %d, want 1", len(items))
	}
	if items[0].Frequency != 600 || items[0].Grade != 3 {
		t.Errorf("updated word = %+v, want frequency 600 grade 3", items[0])
	}
}

func TestWords_UnknownIDsOmitted(t *testing.T) {
	s := openTestStore(t)
	seedWord(t, s, "known", vocab.POSNoun, 1, 1)

	items, err := s.Words(context.Background(), []string{"known", "missing"})
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("words = %d, want 1 (unknown omitted)", len(items))
	}
}

func TestCreateGoalAndResolve(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedWord(t, s, "w1", vocab.POSNoun, 10, 1)
	seedWord(t, s, "w2", vocab.POSVerb, 20, 2)

	if err := s.CreateGoal(ctx, "g1", "u1", "starter", []string{"w1", "w2"}, true); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	goalID, err := s.CurrentGoal(ctx, "u1")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goalID != "g1" {
		t.Errorf("current goal = %q, want g1", goalID)
	}

	words, err := s.WordsInGoal(ctx, "g1")
	if err != nil {
		t.Fatalf("words in goal: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("goal words = %d, want 2", len(words))
	}

	n, err := s.GoalWordCount(ctx, "g1")
	if err != nil {
		t.Fatalf("goal word count: %v", err)
	}
	if n != 2 {
		t.Errorf("goal word count = %d, want 2", n)
	}
}

func TestCreateGoal_DeactivatesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateGoal(ctx, "g1", "u1", "first", nil, true); err != nil {
		t.Fatalf("create g1: %v", err)
	}
	if err := s.CreateGoal(ctx, "g2", "u1", "second", nil, true); err != nil {
		t.Fatalf("create g2: %v", err)
	}

	goalID, err := s.CurrentGoal(ctx, "u1")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goalID != "g2" {
		t.Errorf("current goal = %q, want g2", goalID)
	}
}

func TestCurrentGoal_NoneActive(t *testing.T) {
	s := openTestStore(t)

	goalID, err := s.CurrentGoal(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goalID != "" {
		t.Errorf("current goal = %q, want empty", goalID)
	}
}

func TestRecordResult_AppendsEventAndProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedWord(t, s, "w1", vocab.POSNoun, 10, 1)

	if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 2.5); err != nil {
		t.Fatalf("record result: %v", err)
	}

	events, err := s.Events(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if !events[0].Correct || events[0].ResponseTime != 2.5 {
		t.Errorf("event = %+v, want correct with 2.5s response", events[0])
	}

	rows, err := s.Progress(ctx, "u1", []string{"w1"})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	p := rows[0]
	if p.State != vocab.StateLearning {
		t.Errorf("state = %s, want learning", p.State)
	}
	if p.ReviewCount != 1 || p.Accuracy != 1.0 {
		t.Errorf("progress = %+v, want 1 review at full accuracy", p)
	}
	if p.NextReviewDue == nil {
		t.Error("learning word missing a next review date")
	}
}

func TestRecordResult_EventsOrderedOldestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWord(t, s, "w1", vocab.POSNoun, 10, 1)

	for i := 0; i < 3; i++ {
		if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 1); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	events, err := s.Events(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Error("events not ordered oldest first")
		}
	}
}

func TestMasteryLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWord(t, s, "w1", vocab.POSNoun, 10, 1)

	state := func() vocab.MasteryState {
		rows, err := s.Progress(ctx, "u1", []string{"w1"})
		if err != nil {
			t.Fatalf("progress: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("progress rows = %d, want 1", len(rows))
		}
		return rows[0].State
	}

	// Three correct answers promote learning → reviewing.
	for i := 0; i < 3; i++ {
		if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 1); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if got := state(); got != vocab.StateReviewing {
		t.Fatalf("state after 3 correct = %s, want reviewing", got)
	}

	// Three more correct answers reach mastered.
	for i := 0; i < 3; i++ {
		if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 1); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if got := state(); got != vocab.StateMastered {
		t.Fatalf("state after 6 correct = %s, want mastered", got)
	}

	// A miss on a mastered word drops it to forgotten.
	if err := s.RecordResult(ctx, "u1", "w1", "s1", false, 4); err != nil {
		t.Fatalf("record miss: %v", err)
	}
	if got := state(); got != vocab.StateForgotten {
		t.Fatalf("state after miss = %s, want forgotten", got)
	}

	// Recovery starts over at learning.
	if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 2); err != nil {
		t.Fatalf("record recovery: %v", err)
	}
	if got := state(); got != vocab.StateLearning {
		t.Fatalf("state after recovery = %s, want learning", got)
	}
}

func TestRecordResult_InvalidatesUserCache(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedWord(t, s, "w1", vocab.POSNoun, 10, 1)

	c := cache.NewMemory()
	c.Set(cache.Key("u1", "personalized"), "cached", time.Minute)
	c.Set(cache.Key("u2", "personalized"), "cached", time.Minute)
	s.SetCache(c)

	if err := s.RecordResult(ctx, "u1", "w1", "s1", true, 1); err != nil {
		t.Fatalf("record result: %v", err)
	}

	if _, ok := c.Get(cache.Key("u1", "personalized")); ok {
		t.Error("u1 cache entry survived a write")
	}
	if _, ok := c.Get(cache.Key("u2", "personalized")); !ok {
		t.Error("u2 cache entry dropped by a u1 write")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestNextDue_WrongAnswerResets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := nextDue(now, 5, false); !got.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("wrong answer due = %v, want next day", got)
	}
	if got := nextDue(now, 2, true); !got.Equal(now.AddDate(0, 0, 4)) {
		t.Errorf("2-correct due = %v, want +4d", got)
	}
	// Long correct runs stay at the longest interval.
	if got := nextDue(now, 50, true); !got.Equal(now.AddDate(0, 0, 30)) {
		t.Errorf("long run due = %v, want +30d", got)
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name     string
		current  vocab.MasteryState
		reviews  int
		accuracy float64
		correct  bool
		want     vocab.MasteryState
	}{
		{"new answered", vocab.StateNew, 1, 1.0, true, vocab.StateLearning},
		{"learning below threshold", vocab.StateLearning, 2, 1.0, true, vocab.StateLearning},
		{"learning promoted", vocab.StateLearning, 3, 0.67, true, vocab.StateReviewing},
		{"learning weak accuracy", vocab.StateLearning, 5, 0.4, true, vocab.StateLearning},
		{"reviewing promoted", vocab.StateReviewing, 6, 0.92, true, vocab.StateMastered},
		{"reviewing miss", vocab.StateReviewing, 4, 0.75, false, vocab.StateForgotten},
		{"mastered miss", vocab.StateMastered, 8, 0.9, false, vocab.StateForgotten},
		{"forgotten recovery", vocab.StateForgotten, 5, 0.6, true, vocab.StateLearning},
		{"forgotten still wrong", vocab.StateForgotten, 5, 0.5, false, vocab.StateForgotten},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextState(tt.current, tt.reviews, tt.accuracy, tt.correct)
			if got != tt.want {
				t.Errorf("nextState = %s, want %s", got, tt.want)
			}
		})
	}
}
