// Package weakness mines recent mistakes for systematic patterns and
// builds targeted practice sets.
package weakness

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/profile"
	"github.com/marchenko/lexrec/internal/vocab"
)

// Report summarizes where the learner's recent errors cluster.
type Report struct {
	TotalEvents int
	TotalErrors int
	ByPOS       map[vocab.PartOfSpeech]int
	ByHour      map[int]int

	// WorstPOS is the single most error-prone part of speech,
	// empty when no errors exist.
	WorstPOS vocab.PartOfSpeech

	// PeakHour is the hour of day with the most errors, -1 without data.
	PeakHour int

	// ErrorWords holds the IDs of words answered incorrectly, excluded
	// from targeted candidates so practice brings in fresh material.
	ErrorWords map[string]bool
}

// Detector scans historical errors through the read adapters.
type Detector struct {
	events  vocab.EventRepo
	catalog vocab.Catalog
}

// NewDetector creates a Detector.
func NewDetector(events vocab.EventRepo, catalog vocab.Catalog) *Detector {
	return &Detector{events: events, catalog: catalog}
}

// Scan tallies the user's incorrect events from the window ending at
// now. Zero errors produce an empty report, not an error.
func (d *Detector) Scan(ctx context.Context, userID string, now time.Time, window time.Duration) (*Report, error) {
	events, err := d.events.Events(ctx, userID, now.Add(-window))
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	r := &Report{
		ByPOS:      map[vocab.PartOfSpeech]int{},
		ByHour:     map[int]int{},
		PeakHour:   -1,
		ErrorWords: map[string]bool{},
	}

	r.TotalEvents = len(events)

	var errorIDs []string
	for _, e := range events {
		if e.Correct {
			continue
		}
		r.TotalErrors++
		r.ByHour[e.Timestamp.Hour()]++
		if !r.ErrorWords[e.WordID] {
			r.ErrorWords[e.WordID] = true
			errorIDs = append(errorIDs, e.WordID)
		}
	}
	if r.TotalErrors == 0 {
		return r, nil
	}

	words, err := d.catalog.Words(ctx, errorIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}
	pos := make(map[string]vocab.PartOfSpeech, len(words))
	for _, w := range words {
		pos[w.ID] = w.POS
	}
	for _, e := range events {
		if e.Correct {
			continue
		}
		if p, ok := pos[e.WordID]; ok {
			r.ByPOS[p]++
		}
	}

	r.WorstPOS = worstPOS(r.ByPOS)
	r.PeakHour = peakHour(r.ByHour)
	return r, nil
}

func worstPOS(byPOS map[vocab.PartOfSpeech]int) vocab.PartOfSpeech {
	var worst vocab.PartOfSpeech
	max := 0
	keys := make([]string, 0, len(byPOS))
	for p := range byPOS {
		keys = append(keys, string(p))
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := vocab.PartOfSpeech(k)
		if byPOS[p] > max {
			max = byPOS[p]
			worst = p
		}
	}
	return worst
}

func peakHour(byHour map[int]int) int {
	peak, max := -1, 0
	for h := 0; h < 24; h++ {
		if byHour[h] > max {
			max = byHour[h]
			peak = h
		}
	}
	return peak
}

// Target is one word chosen for remediation practice.
type Target struct {
	Word   vocab.WordItem
	Reason string
	Score  float64
}

// Targets assembles the practice set: up to half of count drawn from
// the weakest part of speech (excluding the error words themselves),
// the rest filled with general candidates. Returns the words plus the
// improvement-area labels to surface alongside them.
func Targets(pool *candidate.Pool, r *Report, count int) ([]Target, []string) {
	var targets []Target
	var areas []string
	seen := map[string]bool{}

	if r.WorstPOS != "" {
		focused := 0
		for _, w := range byPracticality(pool.Words) {
			if focused >= count/2 {
				break
			}
			if w.POS != r.WorstPOS || r.ErrorWords[w.ID] || seen[w.ID] {
				continue
			}
			seen[w.ID] = true
			focused++
			targets = append(targets, Target{
				Word:   w,
				Reason: fmt.Sprintf("%s practice", r.WorstPOS),
				Score:  0.8,
			})
		}
		if focused > 0 {
			areas = append(areas, fmt.Sprintf("%s practice", r.WorstPOS))
		}
	}

	for _, w := range byPracticality(pool.Words) {
		if len(targets) >= count {
			break
		}
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		targets = append(targets, Target{Word: w, Reason: "general improvement", Score: 0.5})
	}
	if len(targets) > 0 {
		areas = append(areas, "general improvement")
	}

	if r.PeakHour >= 0 {
		areas = append(areas, fmt.Sprintf("extra care in %s sessions", profile.BucketFor(r.PeakHour)))
	}
	return targets, areas
}

func byPracticality(words []vocab.WordItem) []vocab.WordItem {
	out := make([]vocab.WordItem, len(words))
	copy(out, words)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].ID < out[j].ID
	})
	return out
}
