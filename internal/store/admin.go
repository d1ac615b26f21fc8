package store

import (
	"context"
	"fmt"

	"github.com/marchenko/lexrec/ent"
	"github.com/marchenko/lexrec/ent/goal"
	"github.com/marchenko/lexrec/ent/goalword"
	"github.com/marchenko/lexrec/ent/word"
	"github.com/marchenko/lexrec/internal/vocab"
)

// UpsertWord creates or refreshes a catalog entry.
func (s *Store) UpsertWord(ctx context.Context, w vocab.WordItem) error {
	existing, err := s.client.Word.Query().
		Where(word.WordID(w.ID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query word: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetText(w.Text).
			SetPos(string(w.POS)).
			SetFrequency(w.Frequency).
			SetGrade(w.Grade).
			Save(ctx)
	} else {
		_, err = s.client.Word.Create().
			SetWordID(w.ID).
			SetText(w.Text).
			SetPos(string(w.POS)).
			SetFrequency(w.Frequency).
			SetGrade(w.Grade).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert word %s: %w", w.ID, err)
	}
	return nil
}

// CreateGoal creates a goal owning the given words. When activate is
// set, any previously active goal for the user is deactivated first.
func (s *Store) CreateGoal(ctx context.Context, goalID, userID, name string, wordIDs []string, activate bool) error {
	if activate {
		_, err := s.client.Goal.Update().
			Where(goal.UserID(userID), goal.Active(true)).
			SetActive(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("deactivate goals: %w", err)
		}
	}

	_, err := s.client.Goal.Create().
		SetGoalID(goalID).
		SetUserID(userID).
		SetName(name).
		SetActive(activate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	for _, id := range wordIDs {
		_, err := s.client.GoalWord.Create().
			SetGoalID(goalID).
			SetWordID(id).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("link word %s: %w", id, err)
		}
	}
	return nil
}

// GoalWordCount reports how many words a goal contains.
func (s *Store) GoalWordCount(ctx context.Context, goalID string) (int, error) {
	n, err := s.client.GoalWord.Query().
		Where(goalword.GoalID(goalID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count goal words: %w", err)
	}
	return n, nil
}
