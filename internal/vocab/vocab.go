package vocab

import (
	"context"
	"time"
)

// PartOfSpeech classifies a word grammatically.
type PartOfSpeech string

const (
	POSNoun      PartOfSpeech = "noun"
	POSVerb      PartOfSpeech = "verb"
	POSAdjective PartOfSpeech = "adjective"
	POSAdverb    PartOfSpeech = "adverb"
	POSOther     PartOfSpeech = "other"
)

// WordItem is an immutable vocabulary entry from the external catalog.
type WordItem struct {
	ID        string
	Text      string
	POS       PartOfSpeech
	Frequency int // corpus frequency score, higher = more common
	Grade     int // difficulty grade, ordinal 1–12
}

// LearningEvent records a single study interaction. Append-only;
// produced by the session-tracking collaborator, never written here.
type LearningEvent struct {
	UserID       string
	WordID       string
	SessionID    string
	Timestamp    time.Time
	Correct      bool
	ResponseTime float64 // seconds
}

// MasteryState represents a word's position in the learner's mastery lifecycle.
type MasteryState string

const (
	StateNew       MasteryState = "new"
	StateLearning  MasteryState = "learning"
	StateReviewing MasteryState = "reviewing"
	StateMastered  MasteryState = "mastered"
	StateForgotten MasteryState = "forgotten"
)

// NeedsReview reports whether the state participates in review scheduling.
// NextReviewDue is defined exactly for these states.
func (s MasteryState) NeedsReview() bool {
	return s == StateLearning || s == StateReviewing || s == StateForgotten
}

// WordProgress is the per-word learning record, mutated externally after
// each study interaction. The engine reads a snapshot per request.
type WordProgress struct {
	UserID        string
	WordID        string
	State         MasteryState
	ReviewCount   int
	Accuracy      float64 // 0.0–1.0
	LastReviewed  *time.Time
	NextReviewDue *time.Time // set whenever State.NeedsReview()
}

// Catalog looks up immutable word reference data.
type Catalog interface {
	// WordsInGoal returns the full word universe of a learning goal.
	WordsInGoal(ctx context.Context, goalID string) ([]WordItem, error)

	// Words resolves word items by ID. Unknown IDs are omitted.
	Words(ctx context.Context, ids []string) ([]WordItem, error)
}

// ProgressRepo reads per-word progress snapshots.
type ProgressRepo interface {
	// Progress returns progress rows for the given words.
	// A nil or empty wordIDs slice returns all rows for the user.
	Progress(ctx context.Context, userID string, wordIDs []string) ([]WordProgress, error)
}

// EventRepo reads historical learning events.
type EventRepo interface {
	// Events returns the user's events with timestamp >= since,
	// ordered oldest first.
	Events(ctx context.Context, userID string, since time.Time) ([]LearningEvent, error)
}

// GoalResolver resolves the user's active learning goal.
type GoalResolver interface {
	// CurrentGoal returns the active goal ID, or "" if the user has none.
	CurrentGoal(ctx context.Context, userID string) (string, error)
}
