package candidate

import (
	"context"
	"testing"

	"github.com/marchenko/lexrec/internal/vocab"
)

type mockCatalog struct {
	goals map[string][]vocab.WordItem
}

func (m *mockCatalog) WordsInGoal(_ context.Context, goalID string) ([]vocab.WordItem, error) {
	return m.goals[goalID], nil
}

func (m *mockCatalog) Words(_ context.Context, _ []string) ([]vocab.WordItem, error) {
	return nil, nil
}

type mockProgressRepo struct {
	rows []vocab.WordProgress
}

func (m *mockProgressRepo) Progress(_ context.Context, _ string, _ []string) ([]vocab.WordProgress, error) {
	return m.rows, nil
}

type mockGoalResolver struct {
	goal string
}

func (m *mockGoalResolver) CurrentGoal(_ context.Context, _ string) (string, error) {
	return m.goal, nil
}

func word(id string, grade int) vocab.WordItem {
	return vocab.WordItem{ID: id, Text: id, POS: vocab.POSNoun, Grade: grade}
}

func TestBuild_ExcludesMastered(t *testing.T) {
	catalog := &mockCatalog{goals: map[string][]vocab.WordItem{
		"g1": {word("w1", 2), word("w2", 3), word("w3", 4)},
	}}
	progress := &mockProgressRepo{rows: []vocab.WordProgress{
		{WordID: "w1", State: vocab.StateMastered},
		{WordID: "w2", State: vocab.StateLearning},
	}}
	b := NewBuilder(catalog, progress, &mockGoalResolver{})

	pool, err := b.Build(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pool.Words) != 2 {
		t.Fatalf("pool size = %d, want 2", len(pool.Words))
	}
	for _, w := range pool.Words {
		if w.ID == "w1" {
			t.Error("mastered word w1 present in pool")
		}
	}
	if _, ok := pool.Progress["w2"]; !ok {
		t.Error("progress row for w2 missing from pool")
	}
	if _, ok := pool.Progress["w3"]; ok {
		t.Error("w3 has no progress row yet, pool should not invent one")
	}
}

func TestBuild_ResolvesCurrentGoal(t *testing.T) {
	catalog := &mockCatalog{goals: map[string][]vocab.WordItem{
		"active": {word("w1", 1)},
	}}
	b := NewBuilder(catalog, &mockProgressRepo{}, &mockGoalResolver{goal: "active"})

	pool, err := b.Build(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.GoalID != "active" {
		t.Errorf("GoalID = %q, want %q", pool.GoalID, "active")
	}
	if len(pool.Words) != 1 {
		t.Errorf("pool size = %d, want 1", len(pool.Words))
	}
}

func TestBuild_NoGoal(t *testing.T) {
	b := NewBuilder(&mockCatalog{}, &mockProgressRepo{}, &mockGoalResolver{goal: ""})

	pool, err := b.Build(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.GoalID != "" {
		t.Errorf("GoalID = %q, want empty", pool.GoalID)
	}
	if !pool.Empty() {
		t.Error("expected empty pool without a goal")
	}
}

func TestBuild_FullyMasteredGoal(t *testing.T) {
	catalog := &mockCatalog{goals: map[string][]vocab.WordItem{
		"g1": {word("w1", 1)},
	}}
	progress := &mockProgressRepo{rows: []vocab.WordProgress{
		{WordID: "w1", State: vocab.StateMastered},
	}}
	b := NewBuilder(catalog, progress, &mockGoalResolver{})

	pool, err := b.Build(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.GoalID != "g1" {
		t.Errorf("GoalID = %q, want g1", pool.GoalID)
	}
	if !pool.Empty() {
		t.Errorf("pool size = %d, want 0 for a fully mastered goal", len(pool.Words))
	}
}

func TestGrades(t *testing.T) {
	pool := &Pool{Words: []vocab.WordItem{
		word("a", 1), word("b", 3), word("c", 5), word("d", 7),
	}}
	got := pool.Grades(3, 5)
	if len(got) != 2 {
		t.Fatalf("Grades(3, 5) returned %d words, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("Grades(3, 5) = [%s %s], want [b c]", got[0].ID, got[1].ID)
	}
}
