package weakness

import (
	"context"
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/vocab"
)

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

func errEvent(wordID string, ts time.Time) vocab.LearningEvent {
	return vocab.LearningEvent{UserID: "u1", WordID: wordID, SessionID: "s", Timestamp: ts, Correct: false, ResponseTime: 5}
}

func okEvent(wordID string, ts time.Time) vocab.LearningEvent {
	return vocab.LearningEvent{UserID: "u1", WordID: wordID, SessionID: "s", Timestamp: ts, Correct: true, ResponseTime: 2}
}

func TestScan_NoErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		okEvent("w1", now.Add(-time.Hour)),
	}}
	d := NewDetector(repo, &mockCatalog{})

	r, err := d.Scan(context.Background(), "u1", now, 14*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalErrors != 0 {
		t.Errorf("TotalErrors = %d, want 0", r.TotalErrors)
	}
	if r.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1", r.TotalEvents)
	}
	if r.WorstPOS != "" {
		t.Errorf("WorstPOS = %s, want empty", r.WorstPOS)
	}
	if r.PeakHour != -1 {
		t.Errorf("PeakHour = %d, want -1", r.PeakHour)
	}
}

func TestScan_WorstPOSAndPeakHour(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 9, hour, 0, 0, 0, time.UTC)
	}
	repo := &mockEventRepo{events: []vocab.LearningEvent{
		errEvent("v1", at(20)),
		errEvent("v2", at(20)),
		errEvent("v1", at(21)),
		errEvent("n1", at(9)),
		okEvent("n2", at(9)),
	}}
	catalog := &mockCatalog{words: map[string]vocab.WordItem{
		"v1": {ID: "v1", POS: vocab.POSVerb},
		"v2": {ID: "v2", POS: vocab.POSVerb},
		"n1": {ID: "n1", POS: vocab.POSNoun},
	}}
	d := NewDetector(repo, catalog)

	r, err := d.Scan(context.Background(), "u1", now, 14*24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalErrors != 4 {
		t.Errorf("TotalErrors = %d, want 4", r.TotalErrors)
	}
	if r.WorstPOS != vocab.POSVerb {
		t.Errorf("WorstPOS = %s, want verb", r.WorstPOS)
	}
	if r.PeakHour != 20 {
		t.Errorf("PeakHour = %d, want 20", r.PeakHour)
	}
	if !r.ErrorWords["v1"] || !r.ErrorWords["n1"] {
		t.Error("error words missing from report")
	}
	if r.ErrorWords["n2"] {
		t.Error("correctly answered word marked as error word")
	}
}

func word(id string, pos vocab.PartOfSpeech, freq int) vocab.WordItem {
	return vocab.WordItem{ID: id, Text: id, POS: pos, Frequency: freq, Grade: 3}
}

func TestTargets_FocusedPlusGeneral(t *testing.T) {
	pool := &candidate.Pool{Words: []vocab.WordItem{
		word("verbFresh1", vocab.POSVerb, 500),
		word("verbFresh2", vocab.POSVerb, 400),
		word("verbErr", vocab.POSVerb, 999),
		word("noun1", vocab.POSNoun, 300),
		word("noun2", vocab.POSNoun, 200),
	}}
	r := &Report{
		WorstPOS:   vocab.POSVerb,
		PeakHour:   20,
		ErrorWords: map[string]bool{"verbErr": true},
	}

	targets, areas := Targets(pool, r, 4)
	if len(targets) != 4 {
		t.Fatalf("targets = %d, want 4", len(targets))
	}

	// Half the set comes from the weak part of speech, skipping the
	// word the learner already missed.
	if targets[0].Word.ID != "verbFresh1" || targets[1].Word.ID != "verbFresh2" {
		t.Errorf("focused picks = [%s %s], want the fresh verbs",
			targets[0].Word.ID, targets[1].Word.ID)
	}
	if targets[0].Reason != "verb practice" {
		t.Errorf("focused reason = %q, want verb practice", targets[0].Reason)
	}
	if targets[2].Reason != "general improvement" {
		t.Errorf("filler reason = %q, want general improvement", targets[2].Reason)
	}

	wantAreas := []string{"verb practice", "general improvement", "extra care in evening sessions"}
	if len(areas) != len(wantAreas) {
		t.Fatalf("areas = %v, want %v", areas, wantAreas)
	}
	for i := range wantAreas {
		if areas[i] != wantAreas[i] {
			t.Errorf("areas[%d] = %q, want %q", i, areas[i], wantAreas[i])
		}
	}
}

func TestTargets_NoWorstPOS(t *testing.T) {
	pool := &candidate.Pool{Words: []vocab.WordItem{
		word("w1", vocab.POSNoun, 100),
		word("w2", vocab.POSVerb, 90),
	}}
	r := &Report{PeakHour: -1, ErrorWords: map[string]bool{}}

	targets, areas := Targets(pool, r, 5)
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(targets))
	}
	for _, tgt := range targets {
		if tgt.Reason != "general improvement" {
			t.Errorf("Reason = %q, want general improvement", tgt.Reason)
		}
	}
	if len(areas) != 1 || areas[0] != "general improvement" {
		t.Errorf("areas = %v, want [general improvement]", areas)
	}
}

func TestTargets_EmptyPool(t *testing.T) {
	pool := &candidate.Pool{}
	r := &Report{WorstPOS: vocab.POSVerb, PeakHour: 9, ErrorWords: map[string]bool{}}

	targets, areas := Targets(pool, r, 5)
	if len(targets) != 0 {
		t.Errorf("targets = %d, want 0", len(targets))
	}
	for _, a := range areas {
		if a == "general improvement" {
			t.Error("general improvement label without any targets")
		}
	}
}
