package adaptive

import (
	"testing"
	"time"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/vocab"
)

func events(n int, correct bool, rt float64) []vocab.LearningEvent {
	out := make([]vocab.LearningEvent, n)
	for i := range out {
		out[i] = vocab.LearningEvent{
			UserID:       "u1",
			WordID:       "w",
			SessionID:    "s",
			Timestamp:    time.Now(),
			Correct:      correct,
			ResponseTime: rt,
		}
	}
	return out
}

func TestEstimateAbility_NoEvents(t *testing.T) {
	est := EstimateAbility(nil)
	if est.Level != LevelBeginner {
		t.Errorf("Level = %s, want beginner", est.Level)
	}
	if est.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", est.Confidence)
	}
	if est.Score != 0 {
		t.Errorf("Score = %v, want 0", est.Score)
	}
	if est.PointsToNext != intermediateThreshold {
		t.Errorf("PointsToNext = %v, want %v", est.PointsToNext, intermediateThreshold)
	}
}

func TestEstimateAbility_Levels(t *testing.T) {
	tests := []struct {
		name string
		evts []vocab.LearningEvent
		want Level
	}{
		// all correct at 1s: (1*0.6 + 1*0.4)*100 = 100
		{"fast and flawless", events(20, true, 1.0), LevelAdvanced},
		// all correct at 2s: (0.6 + 0.2)*100 = 80, boundary inclusive
		{"advanced boundary", events(20, true, 2.0), LevelAdvanced},
		// all correct at 10s: (0.6 + 0.04)*100 = 64
		{"accurate but slow", events(20, true, 10.0), LevelIntermediate},
		// all wrong: score = (0 + 0.4/rt)*100 small
		{"struggling", events(20, false, 5.0), LevelBeginner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimateAbility(tt.evts)
			if est.Level != tt.want {
				t.Errorf("Level = %s (score %.1f), want %s", est.Level, est.Score, tt.want)
			}
		})
	}
}

func TestEstimateAbility_SubSecondResponseClamped(t *testing.T) {
	// Response times under a second do not inflate the speed term.
	est := EstimateAbility(events(10, true, 0.2))
	if est.Score > 100 {
		t.Errorf("Score = %v, want at most 100", est.Score)
	}
	if est.Level != LevelAdvanced {
		t.Errorf("Level = %s, want advanced", est.Level)
	}
}

func TestEstimateAbility_Confidence(t *testing.T) {
	if got := EstimateAbility(events(25, true, 2)).Confidence; got != 0.5 {
		t.Errorf("Confidence at 25 events = %v, want 0.5", got)
	}
	if got := EstimateAbility(events(50, true, 2)).Confidence; got != 1.0 {
		t.Errorf("Confidence at 50 events = %v, want 1.0", got)
	}
	if got := EstimateAbility(events(200, true, 2)).Confidence; got != 1.0 {
		t.Errorf("Confidence at 200 events = %v, want 1.0 (capped)", got)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		level    Level
		min, max int
	}{
		{LevelBeginner, 1, 3},
		{LevelIntermediate, 3, 5},
		{LevelAdvanced, 5, 7},
	}
	for _, tt := range tests {
		if lo, hi := Band(tt.level); lo != tt.min || hi != tt.max {
			t.Errorf("Band(%s) = [%d, %d], want [%d, %d]", tt.level, lo, hi, tt.min, tt.max)
		}
		clo, chi := ChallengeBand(tt.level)
		lo, hi := Band(tt.level)
		if clo != lo+2 || chi != hi+2 {
			t.Errorf("ChallengeBand(%s) = [%d, %d], want [%d, %d]", tt.level, clo, chi, lo+2, hi+2)
		}
	}
}

func poolOf(words ...vocab.WordItem) *candidate.Pool {
	return &candidate.Pool{GoalID: "g1", Words: words, Progress: map[string]vocab.WordProgress{}}
}

func word(id string, freq, grade int) vocab.WordItem {
	return vocab.WordItem{ID: id, Text: id, POS: vocab.POSNoun, Frequency: freq, Grade: grade}
}

func TestSelect_LowConfidenceStaysInBand(t *testing.T) {
	pool := poolOf(
		word("inBand1", 100, 2),
		word("inBand2", 50, 3),
		word("stretch", 999, 5),
	)
	est := Estimate{Level: LevelBeginner, Confidence: 0.1}

	got := Select(pool, est, 10)
	if len(got) != 2 {
		t.Fatalf("selections = %d, want 2 (band only)", len(got))
	}
	for _, s := range got {
		if s.Challenge {
			t.Errorf("challenge item %s selected despite low confidence", s.Word.ID)
		}
		if s.Word.Grade > 3 {
			t.Errorf("word %s grade %d outside the beginner band", s.Word.ID, s.Word.Grade)
		}
	}
}

func TestSelect_MixesChallengeItems(t *testing.T) {
	pool := poolOf(
		word("b1", 500, 1), word("b2", 400, 2), word("b3", 300, 2),
		word("b4", 200, 3), word("b5", 100, 3), word("b6", 90, 1),
		word("b7", 80, 2),
		word("c1", 70, 4), word("c2", 60, 5),
	)
	est := Estimate{Level: LevelBeginner, Confidence: 0.9}

	got := Select(pool, est, 10)
	var band, challenge int
	for _, s := range got {
		if s.Challenge {
			challenge++
			if s.Word.Grade < 3 || s.Word.Grade > 5 {
				t.Errorf("challenge word %s grade %d outside next tier", s.Word.ID, s.Word.Grade)
			}
		} else {
			band++
		}
	}
	if band != 7 {
		t.Errorf("in-band count = %d, want 7 (70%% of 10)", band)
	}
	if challenge == 0 {
		t.Error("expected challenge items with a confident estimate")
	}
}

func TestSelect_PracticalityOrder(t *testing.T) {
	pool := poolOf(
		word("rare", 5, 2),
		word("common", 900, 2),
	)
	est := Estimate{Level: LevelBeginner, Confidence: 0.1}

	got := Select(pool, est, 2)
	if got[0].Word.ID != "common" {
		t.Errorf("first selection = %s, want common (highest frequency)", got[0].Word.ID)
	}
}

func TestSelect_EmptyBand(t *testing.T) {
	pool := poolOf(word("hard", 100, 10))
	est := Estimate{Level: LevelBeginner, Confidence: 0.9}

	got := Select(pool, est, 5)
	if len(got) != 0 {
		t.Errorf("selections = %d, want 0 when nothing fits the bands", len(got))
	}
}

func TestLevelPosition(t *testing.T) {
	progress, toNext := levelPosition(LevelBeginner, 30)
	if progress != 50 {
		t.Errorf("beginner progress at 30 = %v, want 50", progress)
	}
	if toNext != 30 {
		t.Errorf("points to next = %v, want 30", toNext)
	}

	progress, toNext = levelPosition(LevelAdvanced, 90)
	if progress != 50 {
		t.Errorf("advanced progress at 90 = %v, want 50", progress)
	}
	if toNext != 0 {
		t.Errorf("advanced points to next = %v, want 0", toNext)
	}
}
