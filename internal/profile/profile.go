package profile

// TimeBucket partitions the day into study-time segments.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 06:00–12:00
	BucketAfternoon TimeBucket = "afternoon" // 12:00–18:00
	BucketEvening   TimeBucket = "evening"   // 18:00–24:00
	BucketNight     TimeBucket = "night"     // everything else
)

// Engagement describes how actively the learner has studied recently.
type Engagement string

const (
	EngagementLow    Engagement = "low"
	EngagementMedium Engagement = "medium"
	EngagementHigh   Engagement = "high"
)

// GradeStats aggregates performance inside one difficulty grade.
type GradeStats struct {
	Attempts int
	Accuracy float64
}

// Profile is the learner's behavioral profile, rebuilt fresh from the
// event window on every request. It is never persisted.
type Profile struct {
	UserID string

	// Accuracy is the overall correct/total ratio, 0 with no events.
	Accuracy float64

	// AvgResponseTime is the mean response time in seconds.
	// Nil when there are no events to average over.
	AvgResponseTime *float64

	// TimePreferences maps each bucket to the percentage of sessions
	// that started in it.
	TimePreferences map[TimeBucket]float64

	// DifficultyPreferences maps difficulty grade to performance there.
	DifficultyPreferences map[int]GradeStats

	// Consistency scores day-to-day regularity on a 0–100 scale.
	Consistency float64

	Engagement Engagement

	// TotalAttempts is the number of events in the window.
	TotalAttempts int

	// NoHistory marks a profile built from zero events. Downstream
	// consumers fall back to conservative defaults when set.
	NoHistory bool
}

// Neutral returns the all-zero profile used when the learner has no
// recorded history.
func Neutral(userID string) *Profile {
	return &Profile{
		UserID:                userID,
		TimePreferences:       map[TimeBucket]float64{},
		DifficultyPreferences: map[int]GradeStats{},
		Engagement:            EngagementLow,
		NoHistory:             true,
	}
}

// BucketFor returns the time bucket containing the given hour of day.
func BucketFor(hour int) TimeBucket {
	switch {
	case hour >= 6 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketAfternoon
	case hour >= 18 && hour < 24:
		return BucketEvening
	default:
		return BucketNight
	}
}
