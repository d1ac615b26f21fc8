package profile

// Attempt-count thresholds for confidence bonuses.
const (
	confidenceBase        = 0.5
	strongHistoryAttempts = 100
	solidHistoryAttempts  = 50
	someHistoryAttempts   = 20
	consistencyThreshold  = 70.0
)

// Confidence estimates how reliable a recommendation is given the
// volume and regularity of the learner's history. Monotonic in both
// arguments and bounded to [0, 1].
func Confidence(attempts int, consistency float64) float64 {
	c := confidenceBase
	switch {
	case attempts >= strongHistoryAttempts:
		c += 0.3
	case attempts >= solidHistoryAttempts:
		c += 0.2
	case attempts >= someHistoryAttempts:
		c += 0.1
	}
	if consistency > consistencyThreshold {
		c += 0.2
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}
