package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/gramlens/internal/store"
)

// fakeSource implements Source with canned data. Setting an error for a
// read makes that read fail.
type fakeSource struct {
	mu sync.Mutex

	overview *store.OverviewRow
	attempts []store.GrammarAttempt
	practice []store.PracticeAttempt
	weak     []store.WeaknessRow
	mistakes []store.MistakeRow
	rewards  *store.RewardRow
	sessions []store.SessionRecord

	errs  map[string]error
	calls map[string]int

	lastWeaknessQuery store.WeaknessQuery
	lastMistakeSince  time.Time
	lastAttemptQuery  store.AttemptQuery
}

func newFakeSource() *fakeSource {
	return &fakeSource{errs: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeSource) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeSource) Overview(_ context.Context, _, _ string, _ time.Time) (*store.OverviewRow, error) {
	if err := f.record("overview"); err != nil {
		return nil, err
	}
	return f.overview, nil
}

func (f *fakeSource) GrammarAttempts(_ context.Context, q store.AttemptQuery) ([]store.GrammarAttempt, error) {
	if err := f.record("grammar_attempts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastAttemptQuery = q
	f.mu.Unlock()
	return f.attempts, nil
}

func (f *fakeSource) PracticeAttempts(_ context.Context, _ store.AttemptQuery) ([]store.PracticeAttempt, error) {
	if err := f.record("practice_attempts"); err != nil {
		return nil, err
	}
	return f.practice, nil
}

func (f *fakeSource) Weaknesses(_ context.Context, _, _ string, q store.WeaknessQuery) ([]store.WeaknessRow, error) {
	if err := f.record("weaknesses"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastWeaknessQuery = q
	f.mu.Unlock()
	return f.weak, nil
}

func (f *fakeSource) CommonMistakes(_ context.Context, _, _ string, since time.Time, _ int) ([]store.MistakeRow, error) {
	if err := f.record("common_mistakes"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastMistakeSince = since
	f.mu.Unlock()
	return f.mistakes, nil
}

func (f *fakeSource) RewardSummary(_ context.Context, _ string, _ time.Time) (*store.RewardRow, error) {
	if err := f.record("rewards"); err != nil {
		return nil, err
	}
	return f.rewards, nil
}

func (f *fakeSource) CompletedSessions(_ context.Context, _, _ string) ([]store.SessionRecord, error) {
	if err := f.record("sessions"); err != nil {
		return nil, err
	}
	return f.sessions, nil
}

var fixedNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ms(t time.Time) int64 { return t.UnixMilli() }

func int64p(v int64) *int64 { return &v }

func float64p(v float64) *float64 { return &v }

func strp(s string) *string { return &s }

// attempt builds a tense-only attempt d days before fixedNow.
func attempt(tense, verbType string, correct bool, responseMs int64, d int) store.GrammarAttempt {
	a := store.GrammarAttempt{
		StudentID:   "s1",
		Language:    "es",
		Tense:       tense,
		VerbType:    verbType,
		Correct:     correct,
		CreatedAtMs: ms(fixedNow.AddDate(0, 0, -d)),
	}
	if responseMs > 0 {
		a.ResponseTimeMs = int64p(responseMs)
	}
	return a
}

func practice(tense, person string, correct bool) store.PracticeAttempt {
	return store.PracticeAttempt{
		StudentID:   "s1",
		Language:    "es",
		Tense:       tense,
		Person:      person,
		Correct:     correct,
		CreatedAtMs: ms(fixedNow),
	}
}
