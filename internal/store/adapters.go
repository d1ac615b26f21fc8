package store

import (
	"context"
	"fmt"
	"time"

	"github.com/marchenko/lexrec/ent"
	"github.com/marchenko/lexrec/ent/goal"
	"github.com/marchenko/lexrec/ent/goalword"
	"github.com/marchenko/lexrec/ent/learningevent"
	"github.com/marchenko/lexrec/ent/word"
	"github.com/marchenko/lexrec/ent/wordprogress"
	"github.com/marchenko/lexrec/internal/vocab"
)

// The Store implements the engine's four read adapters directly.
var (
	_ vocab.Catalog      = (*Store)(nil)
	_ vocab.ProgressRepo = (*Store)(nil)
	_ vocab.EventRepo    = (*Store)(nil)
	_ vocab.GoalResolver = (*Store)(nil)
)

// WordsInGoal returns the full word universe of a goal.
func (s *Store) WordsInGoal(ctx context.Context, goalID string) ([]vocab.WordItem, error) {
	links, err := s.client.GoalWord.Query().
		Where(goalword.GoalID(goalID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query goal words: %w", err)
	}
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.WordID
	}
	return s.Words(ctx, ids)
}

// Words resolves word items by catalog ID, omitting unknown IDs.
func (s *Store) Words(ctx context.Context, ids []string) ([]vocab.WordItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.client.Word.Query().
		Where(word.WordIDIn(ids...)).
		Order(ent.Asc(word.FieldWordID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	items := make([]vocab.WordItem, len(rows))
	for i, r := range rows {
		items[i] = vocab.WordItem{
			ID:        r.WordID,
			Text:      r.Text,
			POS:       vocab.PartOfSpeech(r.Pos),
			Frequency: r.Frequency,
			Grade:     r.Grade,
		}
	}
	return items, nil
}

// Progress returns progress snapshots for the given words, or all rows
// for the user when wordIDs is empty.
func (s *Store) Progress(ctx context.Context, userID string, wordIDs []string) ([]vocab.WordProgress, error) {
	q := s.client.WordProgress.Query().
		Where(wordprogress.UserID(userID))
	if len(wordIDs) > 0 {
		q = q.Where(wordprogress.WordIDIn(wordIDs...))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	out := make([]vocab.WordProgress, len(rows))
	for i, r := range rows {
		out[i] = vocab.WordProgress{
			UserID:        r.UserID,
			WordID:        r.WordID,
			State:         vocab.MasteryState(r.MasteryState),
			ReviewCount:   r.ReviewCount,
			Accuracy:      r.Accuracy,
			LastReviewed:  r.LastReviewedAt,
			NextReviewDue: r.NextReviewDueAt,
		}
	}
	return out, nil
}

// Events returns the user's learning events since the given time,
// ordered oldest first.
func (s *Store) Events(ctx context.Context, userID string, since time.Time) ([]vocab.LearningEvent, error) {
	rows, err := s.client.LearningEvent.Query().
		Where(
			learningevent.UserID(userID),
			learningevent.TimestampGTE(since),
		).
		Order(ent.Asc(learningevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	out := make([]vocab.LearningEvent, len(rows))
	for i, r := range rows {
		out[i] = vocab.LearningEvent{
			UserID:       r.UserID,
			WordID:       r.WordID,
			SessionID:    r.SessionID,
			Timestamp:    r.Timestamp,
			Correct:      r.Correct,
			ResponseTime: r.ResponseTime,
		}
	}
	return out, nil
}

// CurrentGoal returns the user's active goal ID, or "" when none is set.
func (s *Store) CurrentGoal(ctx context.Context, userID string) (string, error) {
	g, err := s.client.Goal.Query().
		Where(goal.UserID(userID), goal.Active(true)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query active goal: %w", err)
	}
	return g.GoalID, nil
}
