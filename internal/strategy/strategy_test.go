package strategy

import (
	"math/rand"
	"testing"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/profile"
	"github.com/marchenko/lexrec/internal/vocab"
)

func word(id string, pos vocab.PartOfSpeech, freq, grade int) vocab.WordItem {
	return vocab.WordItem{ID: id, Text: id, POS: pos, Frequency: freq, Grade: grade}
}

func testInput(words ...vocab.WordItem) Input {
	return Input{
		Pool:    &candidate.Pool{GoalID: "g1", Words: words, Progress: map[string]vocab.WordProgress{}},
		Profile: profile.Neutral("u1"),
		Rand:    rand.New(rand.NewSource(42)),
	}
}

func TestByFrequency_OrdersByCorpusFrequency(t *testing.T) {
	in := testInput(
		word("rare", vocab.POSNoun, 10, 3),
		word("common", vocab.POSNoun, 900, 3),
		word("mid", vocab.POSNoun, 400, 3),
	)
	picks := byFrequency(in, 3)
	if len(picks) != 3 {
		t.Fatalf("picks = %d, want 3", len(picks))
	}
	if picks[0].Word.ID != "common" || picks[2].Word.ID != "rare" {
		t.Errorf("order = [%s %s %s], want common first and rare last",
			picks[0].Word.ID, picks[1].Word.ID, picks[2].Word.ID)
	}
	if picks[0].Score != 1.0 {
		t.Errorf("top frequency score = %v, want 1.0 (normalized)", picks[0].Score)
	}
	if picks[0].Reason != reasonFrequency {
		t.Errorf("Reason = %q, want %q", picks[0].Reason, reasonFrequency)
	}
}

func TestBySimilarity_MatchesPOSAndGrade(t *testing.T) {
	in := testInput(
		word("near", vocab.POSVerb, 100, 4),  // POS match + grade within 1
		word("posOnly", vocab.POSVerb, 100, 9),
		word("far", vocab.POSAdverb, 100, 12),
	)
	in.Recent = []vocab.WordItem{word("studied", vocab.POSVerb, 50, 4)}

	picks := bySimilarity(in, 5)
	if len(picks) != 2 {
		t.Fatalf("picks = %d, want 2 (zero-score words filtered)", len(picks))
	}
	if picks[0].Word.ID != "near" {
		t.Errorf("top pick = %s, want near", picks[0].Word.ID)
	}
	if picks[0].Score != posMatchBonus+gradeNearBonus {
		t.Errorf("near score = %v, want %v", picks[0].Score, posMatchBonus+gradeNearBonus)
	}
	if picks[1].Score != posMatchBonus {
		t.Errorf("posOnly score = %v, want %v", picks[1].Score, posMatchBonus)
	}
}

func TestBySimilarity_NoRecentFallsBackToExploration(t *testing.T) {
	in := testInput(word("w1", vocab.POSNoun, 1, 1), word("w2", vocab.POSNoun, 1, 1))
	picks := bySimilarity(in, 2)
	if len(picks) != 2 {
		t.Fatalf("picks = %d, want 2", len(picks))
	}
	for _, p := range picks {
		if p.Reason != reasonExploration {
			t.Errorf("Reason = %q, want %q", p.Reason, reasonExploration)
		}
	}
}

func TestByProgress_ActiveBeforeFresh(t *testing.T) {
	in := testInput(
		word("fresh", vocab.POSNoun, 1, 1),
		word("learning", vocab.POSNoun, 1, 1),
		word("reviewing", vocab.POSNoun, 1, 1),
		word("weak", vocab.POSNoun, 1, 1),
	)
	in.Pool.Progress = map[string]vocab.WordProgress{
		"learning":  {WordID: "learning", State: vocab.StateLearning, Accuracy: 0.7},
		"reviewing": {WordID: "reviewing", State: vocab.StateReviewing, Accuracy: 0.7},
		"weak":      {WordID: "weak", State: vocab.StateReviewing, Accuracy: 0.4},
	}

	picks := byProgress(in, 4)
	if len(picks) != 4 {
		t.Fatalf("picks = %d, want 4", len(picks))
	}
	// weak reviewing word boosted to 1.0, plain reviewing 0.9,
	// learning 0.8, fresh 0.5.
	wantOrder := []string{"weak", "reviewing", "learning", "fresh"}
	for i, want := range wantOrder {
		if picks[i].Word.ID != want {
			t.Errorf("picks[%d] = %s, want %s", i, picks[i].Word.ID, want)
		}
	}
	if picks[3].Reason != "new word to start" {
		t.Errorf("fresh reason = %q, want %q", picks[3].Reason, "new word to start")
	}
}

func TestByProgress_SkipsForgotten(t *testing.T) {
	in := testInput(word("gone", vocab.POSNoun, 1, 1))
	in.Pool.Progress = map[string]vocab.WordProgress{
		"gone": {WordID: "gone", State: vocab.StateForgotten},
	}
	picks := byProgress(in, 5)
	if len(picks) != 0 {
		t.Errorf("picks = %d, want 0 (forgotten words are review territory)", len(picks))
	}
}

func TestByExploration_Deterministic(t *testing.T) {
	words := []vocab.WordItem{
		word("a", vocab.POSNoun, 1, 1),
		word("b", vocab.POSNoun, 1, 1),
		word("c", vocab.POSNoun, 1, 1),
		word("d", vocab.POSNoun, 1, 1),
	}

	first := byExploration(testInput(words...), 2)
	second := byExploration(testInput(words...), 2)
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("sample sizes = %d, %d, want 2 each", len(first), len(second))
	}
	for i := range first {
		if first[i].Word.ID != second[i].Word.ID {
			t.Errorf("same seed produced different samples: %s vs %s",
				first[i].Word.ID, second[i].Word.ID)
		}
	}
}

func TestByExploration_CountExceedsPool(t *testing.T) {
	picks := byExploration(testInput(word("only", vocab.POSNoun, 1, 1)), 10)
	if len(picks) != 1 {
		t.Errorf("picks = %d, want 1", len(picks))
	}
}

func TestBlend_TruncatesToCount(t *testing.T) {
	var words []vocab.WordItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		words = append(words, word(id, vocab.POSNoun, 1, 1))
	}
	in := testInput(words...)

	picks := Blend(in, 10, Weights{Frequency: 1.0})
	if len(picks) != 10 {
		t.Errorf("blend size = %d, want 10", len(picks))
	}
}

func TestBlend_DefaultWeightsFillsCount(t *testing.T) {
	var words []vocab.WordItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		words = append(words, word(id, vocab.POSNoun, 1, 1))
	}
	in := testInput(words...)

	// Overlapping nominations dedupe, but the backfill tops the result
	// up from the pool until count is reached.
	picks := Blend(in, 10, DefaultWeights())
	if len(picks) != 10 {
		t.Errorf("blend size = %d, want 10", len(picks))
	}
	seen := map[string]bool{}
	for _, p := range picks {
		if seen[p.Word.ID] {
			t.Errorf("duplicate word %s in blend", p.Word.ID)
		}
		seen[p.Word.ID] = true
	}
}

func TestBlend_DedupeKeepsFirst(t *testing.T) {
	// A two-word pool makes every strategy nominate the same words; the
	// blend must not repeat them.
	in := testInput(
		word("w1", vocab.POSNoun, 100, 1),
		word("w2", vocab.POSNoun, 50, 1),
	)
	picks := Blend(in, 10, DefaultWeights())
	if len(picks) != 2 {
		t.Fatalf("blend size = %d, want 2 (no padding)", len(picks))
	}
	seen := map[string]bool{}
	for _, p := range picks {
		if seen[p.Word.ID] {
			t.Errorf("duplicate word %s in blend", p.Word.ID)
		}
		seen[p.Word.ID] = true
	}
	// w1 arrives first via the frequency strategy, so it keeps the
	// frequency reason even if later strategies also nominate it.
	if picks[0].Word.ID != "w1" || picks[0].Reason != reasonFrequency {
		t.Errorf("first pick = %s (%q), want w1 with the frequency reason",
			picks[0].Word.ID, picks[0].Reason)
	}
}

func TestBlend_EmptyPool(t *testing.T) {
	in := testInput()
	picks := Blend(in, 10, DefaultWeights())
	if len(picks) != 0 {
		t.Errorf("blend size = %d, want 0", len(picks))
	}
}

func TestBlend_ZeroWeightSkipsStrategy(t *testing.T) {
	in := testInput(word("w1", vocab.POSNoun, 100, 1))
	picks := Blend(in, 10, Weights{Frequency: 1.0})
	if len(picks) != 1 {
		t.Fatalf("blend size = %d, want 1", len(picks))
	}
	if picks[0].Reason != reasonFrequency {
		t.Errorf("Reason = %q, want %q", picks[0].Reason, reasonFrequency)
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{Frequency, "frequency"},
		{Similarity, "similarity"},
		{Progress, "progress"},
		{Exploration, "exploration"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
