package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/gramlens/internal/gems"
	"github.com/abhisek/gramlens/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is the read-only data store the engine aggregates from.
type Source interface {
	// Overview returns the per-(student, language) aggregate, or nil when
	// the student has no attempts.
	Overview(ctx context.Context, studentID, language string, now time.Time) (*store.OverviewRow, error)

	// GrammarAttempts returns the tense-only attempt stream.
	GrammarAttempts(ctx context.Context, q store.AttemptQuery) ([]store.GrammarAttempt, error)

	// PracticeAttempts returns the person-level attempt stream joined to
	// the verb reference table.
	PracticeAttempts(ctx context.Context, q store.AttemptQuery) ([]store.PracticeAttempt, error)

	// Weaknesses is the weakness ranking procedure.
	Weaknesses(ctx context.Context, studentID, language string, q store.WeaknessQuery) ([]store.WeaknessRow, error)

	// CommonMistakes is the mistake ranking procedure.
	CommonMistakes(ctx context.Context, studentID, language string, since time.Time, limit int) ([]store.MistakeRow, error)

	// RewardSummary returns the gems/XP summary, or nil when nothing was
	// ever awarded.
	RewardSummary(ctx context.Context, studentID string, now time.Time) (*store.RewardRow, error)

	// CompletedSessions returns the completed practice sessions.
	CompletedSessions(ctx context.Context, studentID, language string) ([]store.SessionRecord, error)
}

// Data source names used in errors and logs.
const (
	SourceOverview          = "overview"
	SourceTensePerformance  = "tense_performance"
	SourceVerbTypes         = "verb_type_performance"
	SourceConjugationMatrix = "conjugation_matrix"
	SourceWeaknesses        = "weaknesses"
	SourceCommonMistakes    = "common_mistakes"
	SourceGems              = "gems"
	SourceSessions          = "sessions"
)

// failureStrategy decides what a failed read does to the whole aggregate.
type failureStrategy int

const (
	// failHard fails the aggregate.
	failHard failureStrategy = iota
	// degradeEmpty logs the failure and leaves the section empty.
	degradeEmpty
)

// sourceStrategies lists the sources that may degrade. Ranking data is
// optional; everything else must load.
var sourceStrategies = map[string]failureStrategy{
	SourceWeaknesses:     degradeEmpty,
	SourceCommonMistakes: degradeEmpty,
}

func strategyFor(source string) failureStrategy {
	if s, ok := sourceStrategies[source]; ok {
		return s
	}
	return failHard
}

// Engine computes grammar analytics. It keeps no state between calls and
// is safe for concurrent use across students.
type Engine struct {
	src    Source
	policy Policy
	log    *zap.SugaredLogger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy replaces DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLogger sets the logger used for degraded reads and timings.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the clock anchoring every time window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine reading from src.
func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{
		src:    src,
		policy: DefaultPolicy(),
		log:    zap.NewNop().Sugar(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the thresholds in use.
func (e *Engine) Policy() Policy {
	return e.policy
}

// StudentGrammarAnalytics runs every aggregation for one student and
// language. The reads run concurrently; recommendations are computed only
// after all of them resolved. A failed required read fails the whole call.
func (e *Engine) StudentGrammarAnalytics(ctx context.Context, studentID, language string) (*StudentGrammarAnalytics, error) {
	if strings.TrimSpace(language) == "" {
		return nil, ErrMissingLanguage
	}

	now := e.now().UTC()
	p := e.policy
	window := store.AttemptQuery{StudentID: studentID, Language: language, Since: now.Add(-p.analysisWindow())}

	out := &StudentGrammarAnalytics{
		TensePerformance:    []TensePerformance{},
		VerbTypePerformance: []VerbTypePerformance{},
		ConjugationMatrix:   []MatrixCell{},
		Weaknesses:          []Weakness{},
		CommonMistakes:      []MistakePattern{},
		Recommendations:     []string{},
	}
	log := e.log.With("student", studentID, "language", language)

	g, gctx := errgroup.WithContext(ctx)
	e.fetch(g, gctx, log, SourceOverview, func(ctx context.Context) error {
		row, err := e.src.Overview(ctx, studentID, language, now)
		if err != nil {
			return err
		}
		out.Overview = BuildOverview(row)
		return nil
	})
	e.fetch(g, gctx, log, SourceTensePerformance, func(ctx context.Context) error {
		attempts, err := e.src.GrammarAttempts(ctx, window)
		if err != nil {
			return err
		}
		out.TensePerformance = TensePerformanceFrom(attempts)
		return nil
	})
	e.fetch(g, gctx, log, SourceVerbTypes, func(ctx context.Context) error {
		attempts, err := e.src.GrammarAttempts(ctx, window)
		if err != nil {
			return err
		}
		out.VerbTypePerformance = VerbTypePerformanceFrom(attempts)
		return nil
	})
	e.fetch(g, gctx, log, SourceConjugationMatrix, func(ctx context.Context) error {
		attempts, err := e.src.PracticeAttempts(ctx, window)
		if err != nil {
			return err
		}
		out.ConjugationMatrix = ConjugationMatrixFrom(attempts, p)
		return nil
	})
	e.fetch(g, gctx, log, SourceWeaknesses, func(ctx context.Context) error {
		rows, err := e.src.Weaknesses(ctx, studentID, language, store.WeaknessQuery{
			Since:       now.Add(-p.weaknessWindow()),
			MinAttempts: p.WeaknessMinAttempts,
			Limit:       p.WeaknessLimit,
		})
		if err != nil {
			return err
		}
		out.Weaknesses = BuildWeaknesses(rows, p)
		return nil
	})
	e.fetch(g, gctx, log, SourceCommonMistakes, func(ctx context.Context) error {
		var since time.Time
		if p.MistakeDays > 0 {
			since = now.Add(-p.mistakeWindow())
		}
		rows, err := e.src.CommonMistakes(ctx, studentID, language, since, p.MistakeLimit)
		if err != nil {
			return err
		}
		out.CommonMistakes = MistakesFrom(rows)
		return nil
	})
	e.fetch(g, gctx, log, SourceGems, func(ctx context.Context) error {
		row, err := e.src.RewardSummary(ctx, studentID, now)
		if err != nil {
			return err
		}
		out.GemsAnalytics = gems.Summarize(row)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A degraded read may have hidden a cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out.Recommendations = Recommend(out.Overview, out.Weaknesses, out.CommonMistakes, p)
	return out, nil
}

// fetch runs one read in the group and applies the source's failure
// strategy to its error.
func (e *Engine) fetch(g *errgroup.Group, ctx context.Context, log *zap.SugaredLogger, source string, read func(context.Context) error) {
	g.Go(func() error {
		start := time.Now()
		err := read(ctx)
		if err == nil {
			log.Debugw("fetched", "source", source, "elapsed", time.Since(start))
			return nil
		}
		if strategyFor(source) == degradeEmpty && ctx.Err() == nil {
			log.Warnw("ranking data unavailable, continuing without it", "source", source, "error", err)
			return nil
		}
		return &ErrSourceFailed{Source: source, Err: err}
	})
}
