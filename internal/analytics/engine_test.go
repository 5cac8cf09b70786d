package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gramlens/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(src Source, opts ...Option) *Engine {
	return NewEngine(src, append([]Option{WithClock(fixedClock)}, opts...)...)
}

// populatedSource returns a source with data in every section.
func populatedSource() *fakeSource {
	src := newFakeSource()
	first, last := ms(fixedNow.AddDate(0, 0, -20)), ms(fixedNow.Add(-time.Hour))
	src.overview = &store.OverviewRow{
		TotalAttempts:     20,
		CorrectAttempts:   13,
		AvgResponseTimeMs: float64p(4200),
		FirstPracticeMs:   &first,
		LastPracticeMs:    &last,
		AttemptsThisWeek:  6,
		AttemptsToday:     2,
	}
	for i := 0; i < 20; i++ {
		src.attempts = append(src.attempts, attempt([]string{"present", "preterite"}[i%2], "irregular", i%3 != 0, 4200, i))
	}
	src.practice = []store.PracticeAttempt{
		practice("preterite", "yo", false),
		practice("preterite", "yo", false),
		practice("preterite", "yo", true),
		practice("present", "tú", true),
	}
	src.weak = []store.WeaknessRow{
		{Dimension: store.DimensionTense, Name: "preterite", TotalAttempts: 10, CorrectAttempts: 5},
	}
	src.mistakes = []store.MistakeRow{
		{BaseVerb: strp("tener"), Tense: "preterite", Person: "yo", ExpectedAnswer: "tuve", UserAnswer: "tení", OccurrenceCount: 2, LastMistakeMs: last},
		{BaseVerb: nil, Tense: "preterite", Person: "yo", ExpectedAnswer: "fui", UserAnswer: "iba", OccurrenceCount: 1, LastMistakeMs: last},
	}
	src.rewards = &store.RewardRow{Awards: 13, TotalGems: 15, TotalXP: 155, AvgStreak: float64p(2.46), LastAwardMs: &last}
	return src
}

func TestStudentGrammarAnalyticsMissingLanguage(t *testing.T) {
	e := newTestEngine(newFakeSource())
	_, err := e.StudentGrammarAnalytics(context.Background(), "s1", " ")
	assert.ErrorIs(t, err, ErrMissingLanguage)
}

func TestStudentGrammarAnalyticsScenarioA(t *testing.T) {
	e := newTestEngine(newFakeSource())

	got, err := e.StudentGrammarAnalytics(context.Background(), "new-student", "es")
	require.NoError(t, err)

	assert.Equal(t, Overview{}, got.Overview)
	assert.NotNil(t, got.TensePerformance)
	assert.Empty(t, got.TensePerformance)
	assert.NotNil(t, got.VerbTypePerformance)
	assert.NotNil(t, got.ConjugationMatrix)
	assert.NotNil(t, got.Weaknesses)
	assert.NotNil(t, got.CommonMistakes)
	assert.Zero(t, got.GemsAnalytics.TotalGems)
	require.Len(t, got.Recommendations, 2)
	assert.Contains(t, got.Recommendations[0], "fundamentals")

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tensePerformance":[]`)
	assert.Contains(t, string(raw), `"commonMistakes":[]`)
	assert.Contains(t, string(raw), `"firstPracticeAt":null`)
}

func TestStudentGrammarAnalyticsPopulated(t *testing.T) {
	src := populatedSource()
	e := newTestEngine(src)

	got, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)

	assert.Equal(t, 65, got.Overview.AccuracyPercentage)
	assert.Len(t, got.TensePerformance, 2)
	assert.Len(t, got.VerbTypePerformance, 1)
	assert.Len(t, got.ConjugationMatrix, 2)
	require.Len(t, got.Weaknesses, 1)
	assert.True(t, got.Weaknesses[0].IsWeakness)
	require.Len(t, got.CommonMistakes, 1, "dangling verb dropped")
	assert.Equal(t, "tener", got.CommonMistakes[0].BaseVerb)
	assert.Equal(t, 15, got.GemsAnalytics.TotalGems)
	assert.Equal(t, 2.5, got.GemsAnalytics.AverageStreak)

	require.Len(t, got.Recommendations, 4)
	assert.Contains(t, got.Recommendations[0], "Good progress")
	assert.Contains(t, got.Recommendations[1], "preterite tense")
	assert.Contains(t, got.Recommendations[2], "tener")
	assert.Contains(t, got.Recommendations[3], "this week")
}

func TestStudentGrammarAnalyticsWindows(t *testing.T) {
	src := newFakeSource()
	p := DefaultPolicy()
	p.AnalysisDays = 14
	p.MistakeDays = 60
	e := newTestEngine(src, WithPolicy(p))

	_, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)

	assert.Equal(t, fixedNow.AddDate(0, 0, -14), src.lastAttemptQuery.Since)
	assert.Equal(t, fixedNow.AddDate(0, 0, -90), src.lastWeaknessQuery.Since)
	assert.Equal(t, 5, src.lastWeaknessQuery.MinAttempts)
	assert.Equal(t, fixedNow.AddDate(0, 0, -60), src.lastMistakeSince)
}

func TestStudentGrammarAnalyticsWholeHistoryMistakes(t *testing.T) {
	src := newFakeSource()
	e := newTestEngine(src)

	_, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)
	assert.True(t, src.lastMistakeSince.IsZero())
}

func TestStudentGrammarAnalyticsRoundTrip(t *testing.T) {
	e := newTestEngine(populatedSource())

	first, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)
	second, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestStudentGrammarAnalyticsRequiredSourceFails(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		read   string
		source []string
	}{
		{"overview", []string{SourceOverview}},
		{"grammar_attempts", []string{SourceTensePerformance, SourceVerbTypes}},
		{"practice_attempts", []string{SourceConjugationMatrix}},
		{"rewards", []string{SourceGems}},
	}
	for _, tt := range tests {
		t.Run(tt.read, func(t *testing.T) {
			src := populatedSource()
			src.errs[tt.read] = boom
			e := newTestEngine(src)

			got, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, boom)

			var failed *ErrSourceFailed
			require.ErrorAs(t, err, &failed)
			assert.Contains(t, tt.source, failed.Source)
		})
	}
}

func TestStudentGrammarAnalyticsRankingDegrades(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := populatedSource()
	src.errs["weaknesses"] = errors.New("procedure missing")
	src.errs["common_mistakes"] = errors.New("procedure missing")
	e := newTestEngine(src, WithLogger(zap.New(core).Sugar()))

	got, err := e.StudentGrammarAnalytics(context.Background(), "s1", "es")
	require.NoError(t, err)

	assert.NotNil(t, got.Weaknesses)
	assert.Empty(t, got.Weaknesses)
	assert.NotNil(t, got.CommonMistakes)
	assert.Empty(t, got.CommonMistakes)
	assert.Equal(t, 65, got.Overview.AccuracyPercentage)
	assert.NotEmpty(t, got.Recommendations)

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		fields := entry.ContextMap()
		assert.Contains(t, []any{SourceWeaknesses, SourceCommonMistakes}, fields["source"])
		assert.Equal(t, "s1", fields["student"])
		assert.Equal(t, "es", fields["language"])
		assert.Contains(t, fields, "error")
	}
}

func TestStudentGrammarAnalyticsCancelled(t *testing.T) {
	src := populatedSource()
	src.errs["weaknesses"] = context.Canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(src).StudentGrammarAnalytics(ctx, "s1", "es")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, degradeEmpty, strategyFor(SourceWeaknesses))
	assert.Equal(t, degradeEmpty, strategyFor(SourceCommonMistakes))
	for _, s := range []string{SourceOverview, SourceTensePerformance, SourceVerbTypes, SourceConjugationMatrix, SourceGems, SourceSessions} {
		assert.Equal(t, failHard, strategyFor(s), s)
	}
}
