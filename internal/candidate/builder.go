package candidate

import (
	"context"
	"fmt"

	"github.com/marchenko/lexrec/internal/vocab"
)

// Pool is the set of words eligible for recommendation: the goal's word
// universe minus mastered items, with the user's progress rows attached.
type Pool struct {
	GoalID string

	// Words are the eligible candidates. May legitimately be empty.
	Words []vocab.WordItem

	// Progress holds the user's progress rows for pool words, keyed by
	// word ID. Words with no row yet are brand new.
	Progress map[string]vocab.WordProgress
}

// Empty reports whether the pool has no eligible candidates.
func (p *Pool) Empty() bool { return len(p.Words) == 0 }

// Grades returns the subset of the pool within [min, max] difficulty
// grade, inclusive. Order is preserved.
func (p *Pool) Grades(min, max int) []vocab.WordItem {
	var out []vocab.WordItem
	for _, w := range p.Words {
		if w.Grade >= min && w.Grade <= max {
			out = append(out, w)
		}
	}
	return out
}

// Builder resolves candidate pools for learning goals.
type Builder struct {
	catalog  vocab.Catalog
	progress vocab.ProgressRepo
	goals    vocab.GoalResolver
}

// NewBuilder creates a Builder reading through the given adapters.
func NewBuilder(catalog vocab.Catalog, progress vocab.ProgressRepo, goals vocab.GoalResolver) *Builder {
	return &Builder{catalog: catalog, progress: progress, goals: goals}
}

// Build resolves the pool for goalID, or for the user's current goal
// when goalID is empty. A pool with GoalID == "" means no resolvable
// goal; an empty Words slice means the goal is fully mastered. Neither
// is an error.
func (b *Builder) Build(ctx context.Context, userID, goalID string) (*Pool, error) {
	if goalID == "" {
		resolved, err := b.goals.CurrentGoal(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve current goal: %w", err)
		}
		if resolved == "" {
			return &Pool{}, nil
		}
		goalID = resolved
	}

	words, err := b.catalog.WordsInGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("fetch goal words: %w", err)
	}

	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	rows, err := b.progress.Progress(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch progress: %w", err)
	}
	byWord := make(map[string]vocab.WordProgress, len(rows))
	for _, r := range rows {
		byWord[r.WordID] = r
	}

	pool := &Pool{
		GoalID:   goalID,
		Progress: make(map[string]vocab.WordProgress),
	}
	for _, w := range words {
		if row, ok := byWord[w.ID]; ok {
			if row.State == vocab.StateMastered {
				continue
			}
			pool.Progress[w.ID] = row
		}
		pool.Words = append(pool.Words, w)
	}
	return pool, nil
}
