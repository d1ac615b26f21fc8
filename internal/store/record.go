package store

import (
	"context"
	"fmt"
	"time"

	"github.com/marchenko/lexrec/ent"
	"github.com/marchenko/lexrec/ent/wordprogress"
	"github.com/marchenko/lexrec/internal/cache"
	"github.com/marchenko/lexrec/internal/vocab"
)

// Review intervals in days, indexed by how often the word has been
// answered correctly. Longer runs stretch the schedule out.
var baseIntervals = []int{1, 2, 4, 7, 15, 30}

// Promotion thresholds for the mastery lifecycle.
const (
	reviewingMinReviews  = 3
	reviewingMinAccuracy = 0.6
	masteredMinReviews   = 6
	masteredMinAccuracy  = 0.9
)

// SetCache attaches the result cache so writes invalidate the user's
// cached recommendations.
func (s *Store) SetCache(c cache.Cache) {
	s.resultCache = c
}

// RecordResult is the study-session write path: it appends a
// LearningEvent, advances the word's progress record, and invalidates
// the user's cached recommendations. The engine itself never calls
// this; it belongs to the session-tracking collaborator.
func (s *Store) RecordResult(ctx context.Context, userID, wordID, sessionID string, correct bool, responseTime float64) error {
	seq, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.LearningEvent.Create().
		SetSequence(seq).
		SetUserID(userID).
		SetWordID(wordID).
		SetSessionID(sessionID).
		SetCorrect(correct).
		SetResponseTime(responseTime).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save learning event: %w", err)
	}

	if err := s.advanceProgress(ctx, userID, wordID, correct); err != nil {
		return err
	}

	if s.resultCache != nil {
		s.resultCache.InvalidateUser(userID)
	}
	return nil
}

// advanceProgress applies one answer to the word's progress record.
func (s *Store) advanceProgress(ctx context.Context, userID, wordID string, correct bool) error {
	now := time.Now().UTC()

	row, err := s.client.WordProgress.Query().
		Where(wordprogress.UserID(userID), wordprogress.WordID(wordID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	reviews, corrects := 1, 0
	state := vocab.StateLearning
	if correct {
		corrects = 1
	}
	if row != nil {
		reviews = row.ReviewCount + 1
		corrects = row.CorrectCount
		if correct {
			corrects++
		}
		state = nextState(vocab.MasteryState(row.MasteryState), reviews, float64(corrects)/float64(reviews), correct)
	}
	accuracy := float64(corrects) / float64(reviews)

	if row != nil {
		return s.updateProgress(ctx, row, state, reviews, corrects, accuracy, correct, now)
	}

	create := s.client.WordProgress.Create().
		SetUserID(userID).
		SetWordID(wordID).
		SetMasteryState(string(state)).
		SetReviewCount(reviews).
		SetCorrectCount(corrects).
		SetAccuracy(accuracy).
		SetLastReviewedAt(now)
	if state.NeedsReview() {
		create = create.SetNextReviewDueAt(nextDue(now, corrects, correct))
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (s *Store) updateProgress(ctx context.Context, row *ent.WordProgress, state vocab.MasteryState, reviews, corrects int, accuracy float64, correct bool, now time.Time) error {
	update := row.Update().
		SetMasteryState(string(state)).
		SetReviewCount(reviews).
		SetCorrectCount(corrects).
		SetAccuracy(accuracy).
		SetLastReviewedAt(now)
	if state.NeedsReview() {
		update = update.SetNextReviewDueAt(nextDue(now, corrects, correct))
	} else {
		update = update.ClearNextReviewDueAt()
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// nextState advances the mastery lifecycle after one answer.
func nextState(current vocab.MasteryState, reviews int, accuracy float64, correct bool) vocab.MasteryState {
	switch current {
	case vocab.StateNew:
		return vocab.StateLearning
	case vocab.StateForgotten:
		if correct {
			return vocab.StateLearning
		}
		return vocab.StateForgotten
	case vocab.StateLearning:
		if correct && reviews >= reviewingMinReviews && accuracy >= reviewingMinAccuracy {
			return vocab.StateReviewing
		}
		return vocab.StateLearning
	case vocab.StateReviewing:
		if !correct {
			return vocab.StateForgotten
		}
		if reviews >= masteredMinReviews && accuracy >= masteredMinAccuracy {
			return vocab.StateMastered
		}
		return vocab.StateReviewing
	case vocab.StateMastered:
		if !correct {
			return vocab.StateForgotten
		}
		return vocab.StateMastered
	default:
		return vocab.StateLearning
	}
}

// nextDue schedules the next review. A wrong answer resets to the
// shortest interval; correct runs walk the interval ladder.
func nextDue(now time.Time, corrects int, correct bool) time.Time {
	idx := 0
	if correct {
		idx = corrects
		if idx >= len(baseIntervals) {
			idx = len(baseIntervals) - 1
		}
	}
	return now.AddDate(0, 0, baseIntervals[idx])
}
