// Package engine selects which vocabulary items a learner should study
// next, blending new-item discovery, spaced-repetition review, adaptive
// difficulty calibration, and weakness-targeted remediation.
//
// The engine is stateless per request: every invocation reads a bounded
// snapshot through the injected adapters and produces a value result.
// Concurrent requests share no mutable state beyond the cache and the
// guarded exploration RNG.
package engine

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/marchenko/lexrec/internal/adaptive"
	"github.com/marchenko/lexrec/internal/cache"
	"github.com/marchenko/lexrec/internal/candidate"
	"github.com/marchenko/lexrec/internal/profile"
	"github.com/marchenko/lexrec/internal/review"
	"github.com/marchenko/lexrec/internal/strategy"
	"github.com/marchenko/lexrec/internal/vocab"
	"github.com/marchenko/lexrec/internal/weakness"
)

// Deps are the external collaborators the engine reads through. The
// engine never writes to any of them.
type Deps struct {
	Catalog  vocab.Catalog
	Progress vocab.ProgressRepo
	Events   vocab.EventRepo
	Goals    vocab.GoalResolver

	// Cache is optional; nil disables result caching.
	Cache cache.Cache
}

// Request carries the caller's parameters for any mode.
type Request struct {
	UserID string

	// GoalID is optional; empty resolves the user's current goal.
	GoalID string

	// Count is clamped to the configured range. Zero means the mode
	// default; negative is a programming error.
	Count int

	// Difficulty applies to personalized mode: "easy", "medium",
	// "hard", or "adaptive" (default).
	Difficulty string

	BypassCache bool
}

// Engine is the recommendation facade. Safe for concurrent use.
type Engine struct {
	cfg      Config
	deps     Deps
	log      zerolog.Logger
	analyzer *profile.Analyzer
	builder  *candidate.Builder
	detector *weakness.Detector

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log.With().Str("component", "engine").Logger() }
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine. The config is validated once here; an invalid
// config is a startup error, not a per-request one.
func New(cfg Config, deps Deps, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		cfg:      cfg,
		deps:     deps,
		log:      zerolog.Nop(),
		analyzer: profile.NewAnalyzer(deps.Events, deps.Catalog),
		builder:  candidate.NewBuilder(deps.Catalog, deps.Progress, deps.Goals),
		detector: weakness.NewDetector(deps.Events, deps.Catalog),
		rng:      rand.New(rand.NewSource(seed)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Recommend dispatches to the pipeline for mode.
func (e *Engine) Recommend(ctx context.Context, mode Mode, req Request) (*Result, error) {
	switch mode {
	case ModePersonalized:
		return e.Personalized(ctx, req)
	case ModeReview:
		return e.Reviews(ctx, req)
	case ModeAdaptive:
		return e.Adaptive(ctx, req)
	case ModeWeakness:
		return e.WeaknessFocused(ctx, req)
	default:
		return nil, ErrUnknownMode
	}
}

// CacheKey returns the key under which a request's result is cached.
// Exposed so the owning collaborator can reason about invalidation.
func (e *Engine) CacheKey(mode Mode, req Request) string {
	count, _ := e.clampCount(req.Count, mode)
	return cache.Key(req.UserID, mode.String(), req.GoalID,
		strconv.Itoa(count), difficultyOrDefault(req.Difficulty))
}

// Personalized runs the multi-strategy blend for new study material.
func (e *Engine) Personalized(ctx context.Context, req Request) (*Result, error) {
	count, err := e.validate(req, ModePersonalized)
	if err != nil {
		return nil, err
	}
	key := e.CacheKey(ModePersonalized, req)
	if res, ok := e.cached(key, req.BypassCache); ok {
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()
	now := e.now()

	pool, err := e.builder.Build(ctx, req.UserID, req.GoalID)
	if err != nil {
		return e.unavailable(req.UserID, ModePersonalized, err), nil
	}
	if pool.GoalID == "" {
		return e.emptyResult(StrategyNoGoal, now), nil
	}
	applyDifficultyFilter(pool, difficultyOrDefault(req.Difficulty))
	if pool.Empty() {
		return e.emptyResult(StrategyNoCandidates, now), nil
	}

	prof, err := e.analyzer.Build(ctx, req.UserID, now, e.cfg.ProfileWindow)
	if err != nil {
		return e.unavailable(req.UserID, ModePersonalized, err), nil
	}
	if prof.TotalAttempts < e.cfg.MinHistoryEvents {
		// Too little history to trust the derived preferences.
		prof = profile.Neutral(req.UserID)
	}
	recent, err := e.recentWords(ctx, req.UserID, now)
	if err != nil {
		return e.unavailable(req.UserID, ModePersonalized, err), nil
	}

	e.rngMu.Lock()
	picks := strategy.Blend(strategy.Input{
		Pool:    pool,
		Profile: prof,
		Recent:  recent,
		Rand:    e.rng,
	}, count, e.cfg.Weights)
	e.rngMu.Unlock()

	res := &Result{
		Strategy:    StrategyPersonalized,
		Confidence:  profile.Confidence(prof.TotalAttempts, prof.Consistency),
		GeneratedAt: now,
	}
	for _, p := range picks {
		res.Items = append(res.Items, Recommendation{Word: p.Word, Reason: p.Reason, Score: p.Score})
	}
	e.store(key, res)
	return res, nil
}

// Reviews runs the spaced-repetition pipeline over everything due.
func (e *Engine) Reviews(ctx context.Context, req Request) (*Result, error) {
	count, err := e.validate(req, ModeReview)
	if err != nil {
		return nil, err
	}
	key := e.CacheKey(ModeReview, req)
	if res, ok := e.cached(key, req.BypassCache); ok {
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()
	now := e.now()

	rows, err := e.deps.Progress.Progress(ctx, req.UserID, nil)
	if err != nil {
		return e.unavailable(req.UserID, ModeReview, err), nil
	}

	due := review.Prioritize(rows, now)
	if len(due) == 0 {
		return e.emptyResult(StrategyNoCandidates, now), nil
	}
	if len(due) > count {
		due = due[:count]
	}

	ids := make([]string, len(due))
	for i, c := range due {
		ids[i] = c.Progress.WordID
	}
	words, err := e.deps.Catalog.Words(ctx, ids)
	if err != nil {
		return e.unavailable(req.UserID, ModeReview, err), nil
	}
	byID := make(map[string]vocab.WordItem, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}

	totalReviews := 0
	res := &Result{Strategy: StrategyReview, GeneratedAt: now}
	for _, c := range due {
		w, ok := byID[c.Progress.WordID]
		if !ok {
			continue // word removed from catalog since scheduling
		}
		totalReviews += c.Progress.ReviewCount
		res.Items = append(res.Items, Recommendation{Word: w, Reason: c.Reason, Score: c.Priority})
	}
	res.Confidence = profile.Confidence(totalReviews, 0)
	e.store(key, res)
	return res, nil
}

// Adaptive estimates ability and selects difficulty-banded candidates.
func (e *Engine) Adaptive(ctx context.Context, req Request) (*Result, error) {
	count, err := e.validate(req, ModeAdaptive)
	if err != nil {
		return nil, err
	}
	key := e.CacheKey(ModeAdaptive, req)
	if res, ok := e.cached(key, req.BypassCache); ok {
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()
	now := e.now()

	pool, err := e.builder.Build(ctx, req.UserID, req.GoalID)
	if err != nil {
		return e.unavailable(req.UserID, ModeAdaptive, err), nil
	}
	if pool.GoalID == "" {
		return e.emptyResult(StrategyNoGoal, now), nil
	}
	if pool.Empty() {
		return e.emptyResult(StrategyNoCandidates, now), nil
	}

	events, err := e.deps.Events.Events(ctx, req.UserID, now.Add(-e.cfg.AbilityWindow))
	if err != nil {
		return e.unavailable(req.UserID, ModeAdaptive, err), nil
	}
	est := adaptive.EstimateAbility(events)

	res := &Result{
		Strategy: StrategyAdaptive,
		Ability: &Ability{
			Level:         est.Level,
			Score:         est.Score,
			Confidence:    est.Confidence,
			LevelProgress: est.LevelProgress,
			PointsToNext:  est.PointsToNext,
		},
		Confidence:  minFloat(est.Confidence, profile.Confidence(est.EventCount, 0)),
		GeneratedAt: now,
	}
	for _, s := range adaptive.Select(pool, est, count) {
		res.Items = append(res.Items, Recommendation{Word: s.Word, Reason: s.Reason, Score: s.Score})
	}
	e.store(key, res)
	return res, nil
}

// WeaknessFocused targets the learner's most error-prone patterns.
func (e *Engine) WeaknessFocused(ctx context.Context, req Request) (*Result, error) {
	count, err := e.validate(req, ModeWeakness)
	if err != nil {
		return nil, err
	}
	key := e.CacheKey(ModeWeakness, req)
	if res, ok := e.cached(key, req.BypassCache); ok {
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()
	now := e.now()

	pool, err := e.builder.Build(ctx, req.UserID, req.GoalID)
	if err != nil {
		return e.unavailable(req.UserID, ModeWeakness, err), nil
	}
	if pool.GoalID == "" {
		return e.emptyResult(StrategyNoGoal, now), nil
	}
	if pool.Empty() {
		return e.emptyResult(StrategyNoCandidates, now), nil
	}

	report, err := e.detector.Scan(ctx, req.UserID, now, e.cfg.ProfileWindow)
	if err != nil {
		return e.unavailable(req.UserID, ModeWeakness, err), nil
	}

	targets, areas := weakness.Targets(pool, report, count)
	res := &Result{
		Strategy:    StrategyWeakness,
		FocusAreas:  areas,
		Confidence:  profile.Confidence(report.TotalEvents, 0),
		GeneratedAt: now,
	}
	for _, t := range targets {
		res.Items = append(res.Items, Recommendation{Word: t.Word, Reason: t.Reason, Score: t.Score})
	}
	e.store(key, res)
	return res, nil
}

// recentWords resolves the words studied within the recent window.
func (e *Engine) recentWords(ctx context.Context, userID string, now time.Time) ([]vocab.WordItem, error) {
	events, err := e.deps.Events.Events(ctx, userID, now.Add(-e.cfg.RecentWindow))
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var ids []string
	for _, ev := range events {
		if !seen[ev.WordID] {
			seen[ev.WordID] = true
			ids = append(ids, ev.WordID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return e.deps.Catalog.Words(ctx, ids)
}

func (e *Engine) validate(req Request, mode Mode) (int, error) {
	if req.UserID == "" {
		return 0, ErrMissingUser
	}
	return e.clampCount(req.Count, mode)
}

// clampCount applies the mode default and the configured range.
// Negative counts are rejected rather than clamped.
func (e *Engine) clampCount(count int, mode Mode) (int, error) {
	if count < 0 {
		return 0, ErrInvalidCount
	}
	if count == 0 {
		switch mode {
		case ModeReview:
			count = e.cfg.ReviewCount
		case ModeAdaptive:
			count = e.cfg.AdaptiveCount
		case ModeWeakness:
			count = e.cfg.WeaknessCount
		default:
			count = e.cfg.PersonalizedCount
		}
	}
	if count < e.cfg.MinCount {
		count = e.cfg.MinCount
	}
	if count > e.cfg.MaxCount {
		count = e.cfg.MaxCount
	}
	return count, nil
}

func (e *Engine) cached(key string, bypass bool) (*Result, bool) {
	if bypass || e.deps.Cache == nil || e.cfg.CacheTTL <= 0 {
		return nil, false
	}
	v, ok := e.deps.Cache.Get(key)
	if !ok {
		return nil, false
	}
	res, ok := v.(*Result)
	return res, ok
}

func (e *Engine) store(key string, res *Result) {
	if e.deps.Cache == nil || e.cfg.CacheTTL <= 0 {
		return
	}
	e.deps.Cache.Set(key, res, e.cfg.CacheTTL)
}

// unavailable logs the adapter failure and degrades to an empty result.
// The raw error never reaches the caller.
func (e *Engine) unavailable(userID string, mode Mode, err error) *Result {
	e.log.Error().
		Err(err).
		Str("user_id", userID).
		Str("mode", mode.String()).
		Msg("adapter failure, returning degraded result")
	return e.emptyResult(StrategyUnavailable, e.now())
}

func (e *Engine) emptyResult(tag string, now time.Time) *Result {
	return &Result{Strategy: tag, GeneratedAt: now}
}

// applyDifficultyFilter narrows the pool by the caller's stated
// preference. "adaptive" leaves the pool alone; a filter that would
// empty the pool is ignored so the caller still gets material.
func applyDifficultyFilter(pool *candidate.Pool, pref string) {
	var lo, hi int
	switch pref {
	case "easy":
		lo, hi = 1, 4
	case "medium":
		lo, hi = 4, 8
	case "hard":
		lo, hi = 8, 12
	default:
		return
	}
	filtered := pool.Grades(lo, hi)
	if len(filtered) > 0 {
		pool.Words = filtered
	}
}

func difficultyOrDefault(d string) string {
	if d == "" {
		return "adaptive"
	}
	return d
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
