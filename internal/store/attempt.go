package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AppendAttempt records one tense-only attempt. A missing ID is generated.
func (s *Store) AppendAttempt(ctx context.Context, a GrammarAttempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	ins := s.builder().Insert(attemptsTable).
		Columns(
			"id", "student_id", "language", "tense", "verb_type", "base_verb",
			"correct", "user_answer", "expected_answer", "hint_used",
			"response_time_ms", "complexity_score", "created_at",
		).
		Values(
			a.ID, a.StudentID, a.Language, a.Tense, a.VerbType, a.BaseVerb,
			a.Correct, a.UserAnswer, a.ExpectedAnswer, a.HintUsed,
			a.ResponseTimeMs, a.ComplexityScore, a.CreatedAtMs,
		)
	if _, err := s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save grammar attempt: %w", err)
	}
	return nil
}

// GrammarAttempts returns the tense-only attempts matching q, oldest first.
func (s *Store) GrammarAttempts(ctx context.Context, q AttemptQuery) ([]GrammarAttempt, error) {
	t := s.builder().Table(attemptsTable)
	sel := s.builder().
		Select(
			t.C("id"), t.C("student_id"), t.C("language"), t.C("tense"), t.C("verb_type"),
			t.C("base_verb"), t.C("correct"), t.C("user_answer"), t.C("expected_answer"),
			t.C("hint_used"), t.C("response_time_ms"), t.C("complexity_score"), t.C("created_at"),
		).
		From(t).
		Where(attemptFilter(t, q)).
		OrderBy(t.C("created_at"), t.C("id"))

	query, args := sel.Query()
	var out []GrammarAttempt
	if err := s.x.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("query grammar attempts: %w", err)
	}
	return out, nil
}

// Overview aggregates every attempt of the student in the language. The
// week and today counts use rolling windows anchored at now (7 days and
// 24 hours). Returns nil when the student has no attempts.
func (s *Store) Overview(ctx context.Context, studentID, language string, now time.Time) (*OverviewRow, error) {
	t := s.builder().Table(attemptsTable)
	base := AttemptQuery{StudentID: studentID, Language: language}

	sel := s.builder().
		Select(
			entsql.As(entsql.Count("*"), "total_attempts"),
			entsql.As(correctSum(t), "correct_attempts"),
			entsql.As(entsql.Avg(t.C("response_time_ms")), "avg_response_time_ms"),
			entsql.As(entsql.Avg(t.C("complexity_score")), "avg_complexity"),
			entsql.As(entsql.Min(t.C("created_at")), "first_practice_at"),
			entsql.As(entsql.Max(t.C("created_at")), "last_practice_at"),
		).
		From(t).
		Where(attemptFilter(t, base))

	query, args := sel.Query()
	var row OverviewRow
	if err := s.x.GetContext(ctx, &row, query, args...); err != nil {
		return nil, fmt.Errorf("query overview: %w", err)
	}
	if row.TotalAttempts == 0 {
		return nil, nil
	}

	week, err := s.countAttempts(ctx, AttemptQuery{StudentID: studentID, Language: language, Since: now.Add(-7 * 24 * time.Hour)})
	if err != nil {
		return nil, err
	}
	today, err := s.countAttempts(ctx, AttemptQuery{StudentID: studentID, Language: language, Since: now.Add(-24 * time.Hour)})
	if err != nil {
		return nil, err
	}
	row.AttemptsThisWeek = week
	row.AttemptsToday = today
	return &row, nil
}

func (s *Store) countAttempts(ctx context.Context, q AttemptQuery) (int, error) {
	t := s.builder().Table(attemptsTable)
	query, args := s.builder().
		Select(entsql.Count("*")).
		From(t).
		Where(attemptFilter(t, q)).
		Query()

	var n int
	if err := s.x.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

// attemptFilter restricts a tense-only stream selection to q.
func attemptFilter(t *entsql.SelectTable, q AttemptQuery) *entsql.Predicate {
	preds := []*entsql.Predicate{
		entsql.EQ(t.C("student_id"), q.StudentID),
		entsql.EQ(t.C("language"), q.Language),
	}
	if !q.Since.IsZero() {
		preds = append(preds, entsql.GTE(t.C("created_at"), toMillis(q.Since)))
	}
	return entsql.And(preds...)
}

// correctSum counts correct rows, yielding 0 rather than NULL on empty input.
func correctSum(t *entsql.SelectTable) string {
	return fmt.Sprintf("COALESCE(SUM(CASE WHEN %s THEN 1 ELSE 0 END), 0)", t.C("correct"))
}
