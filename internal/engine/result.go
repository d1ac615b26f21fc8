package engine

import (
	"fmt"
	"time"

	"github.com/marchenko/lexrec/internal/adaptive"
	"github.com/marchenko/lexrec/internal/vocab"
)

// Mode selects which recommendation pipeline runs.
type Mode int

const (
	ModePersonalized Mode = iota
	ModeReview
	ModeAdaptive
	ModeWeakness
)

func (m Mode) String() string {
	switch m {
	case ModePersonalized:
		return "personalized"
	case ModeReview:
		return "review"
	case ModeAdaptive:
		return "adaptive"
	case ModeWeakness:
		return "weakness"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name from user input.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "personalized":
		return ModePersonalized, nil
	case "review":
		return ModeReview, nil
	case "adaptive":
		return ModeAdaptive, nil
	case "weakness":
		return ModeWeakness, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Strategy tags carried on Result. The no-data and degraded conditions
// are explicit result states, not errors.
const (
	StrategyPersonalized = "personalized"
	StrategyReview       = "review"
	StrategyAdaptive     = "adaptive"
	StrategyWeakness     = "weakness"
	StrategyNoGoal       = "no_goal"
	StrategyNoCandidates = "no_candidates"
	StrategyUnavailable  = "unavailable"
)

// Recommendation is one ranked word with the reason it was chosen.
type Recommendation struct {
	Word   vocab.WordItem
	Reason string
	Score  float64
}

// Ability reports the adaptive mode's level estimate.
type Ability struct {
	Level         adaptive.Level
	Score         float64
	Confidence    float64
	LevelProgress float64
	PointsToNext  float64
}

// Result is the immutable value returned to callers. The engine never
// persists it.
type Result struct {
	Strategy   string
	Items      []Recommendation
	Confidence float64

	// Ability is set in adaptive mode only.
	Ability *Ability

	// FocusAreas is set in weakness mode only.
	FocusAreas []string

	GeneratedAt time.Time
}

// WordIDs returns the ordered identifiers of the recommended words.
func (r *Result) WordIDs() []string {
	ids := make([]string, len(r.Items))
	for i, it := range r.Items {
		ids[i] = it.Word.ID
	}
	return ids
}
