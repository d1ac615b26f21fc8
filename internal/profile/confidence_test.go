package profile

import "testing"

func TestConfidence_AttemptTiers(t *testing.T) {
	tests := []struct {
		name        string
		attempts    int
		consistency float64
		want        float64
	}{
		{"no history", 0, 0, 0.5},
		{"below first tier", 19, 0, 0.5},
		{"some history", 20, 0, 0.6},
		{"solid history", 50, 0, 0.7},
		{"strong history", 100, 0, 0.8},
		{"way past strong", 5000, 0, 0.8},
		{"consistency bonus alone", 0, 80, 0.7},
		{"capped at one", 100, 95, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confidence(tt.attempts, tt.consistency)
			if got != tt.want {
				t.Errorf("Confidence(%d, %.0f) = %v, want %v", tt.attempts, tt.consistency, got, tt.want)
			}
		})
	}
}

func TestConfidence_Monotonic(t *testing.T) {
	prev := 0.0
	for _, attempts := range []int{0, 10, 20, 50, 100, 200} {
		got := Confidence(attempts, 0)
		if got < prev {
			t.Errorf("Confidence(%d, 0) = %v, decreased from %v", attempts, got, prev)
		}
		prev = got
	}
}

func TestConfidence_ConsistencyBoundary(t *testing.T) {
	// The bonus applies strictly above 70, not at it.
	if got := Confidence(0, 70); got != 0.5 {
		t.Errorf("Confidence(0, 70) = %v, want 0.5", got)
	}
	if got := Confidence(0, 70.1); got != 0.7 {
		t.Errorf("Confidence(0, 70.1) = %v, want 0.7", got)
	}
}
