package review

import (
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/vocab"
)

func progressRow(wordID string, state vocab.MasteryState, due time.Time, accuracy float64) vocab.WordProgress {
	return vocab.WordProgress{
		UserID:        "u1",
		WordID:        wordID,
		State:         state,
		Accuracy:      accuracy,
		NextReviewDue: &due,
	}
}

func TestUrgency(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  time.Time
		want float64
	}{
		{"two days overdue", now.Add(-48 * time.Hour), 1.0},
		{"just past the dayline", now.Add(-25 * time.Hour), 1.0},
		{"three hours overdue", now.Add(-3 * time.Hour), 0.8},
		{"due right now", now, 0.8},
		{"not yet due", now.Add(time.Hour), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := progressRow("w", vocab.StateReviewing, tt.due, 0.8)
			if got := Urgency(p, now); got != tt.want {
				t.Errorf("Urgency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUrgency_NoDueDate(t *testing.T) {
	p := vocab.WordProgress{WordID: "w", State: vocab.StateLearning}
	if got := Urgency(p, time.Now()); got != 0.5 {
		t.Errorf("Urgency = %v, want 0.5", got)
	}
}

func TestPrioritize_FiltersNotDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []vocab.WordProgress{
		progressRow("due", vocab.StateReviewing, now.Add(-time.Hour), 0.8),
		progressRow("future", vocab.StateReviewing, now.Add(time.Hour), 0.8),
		progressRow("mastered", vocab.StateMastered, now.Add(-time.Hour), 0.95),
		{WordID: "noDue", State: vocab.StateLearning},
	}

	due := Prioritize(rows, now)
	if len(due) != 1 {
		t.Fatalf("due count = %d, want 1", len(due))
	}
	if due[0].Progress.WordID != "due" {
		t.Errorf("due word = %s, want due", due[0].Progress.WordID)
	}
}

func TestPrioritize_ForgottenOutranksOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []vocab.WordProgress{
		progressRow("longOverdue", vocab.StateReviewing, now.Add(-2*24*time.Hour), 0.8),
		progressRow("forgotten", vocab.StateForgotten, now.Add(-3*time.Hour), 0.8),
	}

	due := Prioritize(rows, now)
	if len(due) != 2 {
		t.Fatalf("due count = %d, want 2", len(due))
	}
	// forgotten: 0.4*0.8 + 0.6 = 0.92; long overdue reviewing: 0.4*1.0 + 0.4 = 0.8.
	if due[0].Progress.WordID != "forgotten" {
		t.Errorf("top = %s, want forgotten", due[0].Progress.WordID)
	}
	if due[0].Reason != "already forgotten — relearn" {
		t.Errorf("Reason = %q, want the forgotten reason", due[0].Reason)
	}
}

func TestPrioritize_WeakAccuracyBoost(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []vocab.WordProgress{
		progressRow("strong", vocab.StateReviewing, now.Add(-time.Hour), 0.9),
		progressRow("weak", vocab.StateReviewing, now.Add(-time.Hour), 0.4),
	}

	due := Prioritize(rows, now)
	if due[0].Progress.WordID != "weak" {
		t.Errorf("top = %s, want weak", due[0].Progress.WordID)
	}
	if due[0].Reason != "weak accuracy — reinforce" {
		t.Errorf("Reason = %q, want the weak-accuracy reason", due[0].Reason)
	}
	if due[1].Reason != "routine review" {
		t.Errorf("Reason = %q, want routine", due[1].Reason)
	}
}

func TestPrioritize_TieBreaksOnEarlierDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []vocab.WordProgress{
		progressRow("later", vocab.StateReviewing, now.Add(-26*time.Hour), 0.8),
		progressRow("earlier", vocab.StateReviewing, now.Add(-48*time.Hour), 0.8),
	}

	due := Prioritize(rows, now)
	// Both score 0.4*1.0 + 0.4 = 0.8; the longer-overdue word wins.
	if due[0].Progress.WordID != "earlier" {
		t.Errorf("top = %s, want earlier (longest overdue first)", due[0].Progress.WordID)
	}
}

func TestPrioritize_OverdueReason(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []vocab.WordProgress{
		progressRow("w", vocab.StateReviewing, now.Add(-30*time.Hour), 0.8),
	}
	due := Prioritize(rows, now)
	if due[0].Reason != "overdue — prevent forgetting" {
		t.Errorf("Reason = %q, want the overdue reason", due[0].Reason)
	}
}
