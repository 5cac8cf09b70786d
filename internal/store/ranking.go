package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Weaknesses ranks the student's tense and verb-type groups by accuracy,
// lowest first, across both dimensions. Groups with fewer than MinAttempts
// attempts since q.Since are never returned. Ties are broken by more
// attempts first, then dimension and name.
func (s *Store) Weaknesses(ctx context.Context, studentID, language string, q WeaknessQuery) ([]WeaknessRow, error) {
	var rows []WeaknessRow
	for _, dim := range []string{DimensionTense, DimensionVerbType} {
		group, err := s.weaknessGroups(ctx, studentID, language, dim, q)
		if err != nil {
			return nil, err
		}
		rows = append(rows, group...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		// Cross-multiplied to compare ratios without rounding.
		li := rows[i].CorrectAttempts * rows[j].TotalAttempts
		lj := rows[j].CorrectAttempts * rows[i].TotalAttempts
		if li != lj {
			return li < lj
		}
		if rows[i].TotalAttempts != rows[j].TotalAttempts {
			return rows[i].TotalAttempts > rows[j].TotalAttempts
		}
		if rows[i].Dimension != rows[j].Dimension {
			return rows[i].Dimension < rows[j].Dimension
		}
		return rows[i].Name < rows[j].Name
	})

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (s *Store) weaknessGroups(ctx context.Context, studentID, language, column string, q WeaknessQuery) ([]WeaknessRow, error) {
	t := s.builder().Table(attemptsTable)
	filter := attemptFilter(t, AttemptQuery{StudentID: studentID, Language: language, Since: q.Since})

	sel := s.builder().
		Select(
			entsql.As(t.C(column), "name"),
			entsql.As(entsql.Count("*"), "total_attempts"),
			entsql.As(correctSum(t), "correct_attempts"),
		).
		From(t).
		Where(entsql.And(filter, entsql.NEQ(t.C(column), ""))).
		GroupBy(t.C(column))
	if q.MinAttempts > 0 {
		sel = sel.Having(entsql.GTE(entsql.Count("*"), q.MinAttempts))
	}

	query, args := sel.Query()
	var rows []WeaknessRow
	if err := s.x.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query %s weaknesses: %w", column, err)
	}
	for i := range rows {
		rows[i].Dimension = column
	}
	return rows, nil
}

// CommonMistakes groups the student's wrong person-level answers by
// (verb, tense, person, expected, given) and ranks them by occurrence count,
// most recent first on ties. Attempts whose verb was deleted are kept with a
// nil BaseVerb; callers decide what to do with incomplete rows. A zero since
// means the whole history.
func (s *Store) CommonMistakes(ctx context.Context, studentID, language string, since time.Time, limit int) ([]MistakeRow, error) {
	p := s.builder().Table(practiceAttemptsTable).As("p")
	v := s.builder().Table(verbsTable).As("v")

	preds := []*entsql.Predicate{
		entsql.EQ(p.C("student_id"), studentID),
		entsql.EQ(p.C("correct"), false),
		entsql.Or(entsql.EQ(v.C("language"), language), entsql.IsNull(v.C("language"))),
	}
	if !since.IsZero() {
		preds = append(preds, entsql.GTE(p.C("created_at"), toMillis(since)))
	}

	sel := s.builder().
		Select(
			entsql.As(v.C("infinitive"), "base_verb"),
			entsql.As(p.C("tense"), "tense"),
			entsql.As(p.C("person"), "person"),
			entsql.As(p.C("expected_answer"), "expected_answer"),
			entsql.As(p.C("user_answer"), "user_answer"),
			entsql.As(entsql.Count("*"), "occurrence_count"),
			entsql.As(entsql.Max(p.C("created_at")), "last_mistake_at"),
		).
		From(p).
		LeftJoin(v).On(p.C("verb_id"), v.C("id")).
		Where(entsql.And(preds...)).
		GroupBy(v.C("infinitive"), p.C("tense"), p.C("person"), p.C("expected_answer"), p.C("user_answer")).
		OrderBy(
			entsql.Desc("occurrence_count"),
			entsql.Desc("last_mistake_at"),
			entsql.Asc("base_verb"),
			entsql.Asc("tense"),
			entsql.Asc("person"),
		)
	if limit > 0 {
		sel = sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows []MistakeRow
	if err := s.x.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query common mistakes: %w", err)
	}
	return rows, nil
}
