package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// UpsertVerb stores a verb reference row, replacing any previous row for
// the same (language, infinitive). It returns the verb ID.
func (s *Store) UpsertVerb(ctx context.Context, v Verb) (string, error) {
	existing, err := s.verbID(ctx, v.Language, v.Infinitive)
	if err != nil {
		return "", err
	}
	if existing != "" {
		upd := s.builder().Update(verbsTable).
			Set("verb_type", v.VerbType).
			Set("complexity_score", v.ComplexityScore).
			Where(entsql.EQ("id", existing))
		if _, err := s.exec(ctx, upd); err != nil {
			return "", fmt.Errorf("update verb: %w", err)
		}
		return existing, nil
	}

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	ins := s.builder().Insert(verbsTable).
		Columns("id", "language", "infinitive", "verb_type", "complexity_score").
		Values(v.ID, v.Language, v.Infinitive, v.VerbType, v.ComplexityScore)
	if _, err := s.exec(ctx, ins); err != nil {
		return "", fmt.Errorf("save verb: %w", err)
	}
	return v.ID, nil
}

// DeleteVerb removes a verb reference row. Practice attempts pointing at it
// are left in place.
func (s *Store) DeleteVerb(ctx context.Context, id string) error {
	del := s.builder().Delete(verbsTable).Where(entsql.EQ("id", id))
	if _, err := s.exec(ctx, del); err != nil {
		return fmt.Errorf("delete verb: %w", err)
	}
	return nil
}

func (s *Store) verbID(ctx context.Context, language, infinitive string) (string, error) {
	query, args := s.builder().
		Select("id").
		From(s.builder().Table(verbsTable)).
		Where(entsql.And(entsql.EQ("language", language), entsql.EQ("infinitive", infinitive))).
		Query()

	var ids []string
	if err := s.x.SelectContext(ctx, &ids, query, args...); err != nil {
		return "", fmt.Errorf("query verb: %w", err)
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// AppendPracticeAttempt records one person-level attempt.
func (s *Store) AppendPracticeAttempt(ctx context.Context, data PracticeAttemptData) error {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	ins := s.builder().Insert(practiceAttemptsTable).
		Columns(
			"id", "student_id", "verb_id", "tense", "person", "correct",
			"user_answer", "expected_answer", "hint_used", "response_time_ms", "created_at",
		).
		Values(
			data.ID, data.StudentID, data.VerbID, data.Tense, data.Person, data.Correct,
			data.UserAnswer, data.ExpectedAnswer, data.HintUsed, data.ResponseTimeMs, toMillis(data.CreatedAt),
		)
	if _, err := s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save practice attempt: %w", err)
	}
	return nil
}

// PracticeAttempts returns the person-level attempts matching q joined to
// their verb. The language filter applies to the verb, so attempts whose verb
// was deleted are not returned.
func (s *Store) PracticeAttempts(ctx context.Context, q AttemptQuery) ([]PracticeAttempt, error) {
	p := s.builder().Table(practiceAttemptsTable).As("p")
	v := s.builder().Table(verbsTable).As("v")

	preds := []*entsql.Predicate{
		entsql.EQ(p.C("student_id"), q.StudentID),
		entsql.EQ(v.C("language"), q.Language),
	}
	if !q.Since.IsZero() {
		preds = append(preds, entsql.GTE(p.C("created_at"), toMillis(q.Since)))
	}

	sel := s.builder().
		Select(
			p.C("id"), p.C("student_id"), p.C("tense"), p.C("person"), p.C("correct"),
			p.C("response_time_ms"), p.C("created_at"), v.C("language"),
			entsql.As(v.C("infinitive"), "base_verb"), v.C("verb_type"), v.C("complexity_score"),
		).
		From(p).
		Join(v).On(p.C("verb_id"), v.C("id")).
		Where(entsql.And(preds...)).
		OrderBy(p.C("created_at"), p.C("id"))

	query, args := sel.Query()
	var out []PracticeAttempt
	if err := s.x.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("query practice attempts: %w", err)
	}
	return out, nil
}
