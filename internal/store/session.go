package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AppendSession records one practice session.
func (s *Store) AppendSession(ctx context.Context, r SessionRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	ins := s.builder().Insert(sessionsTable).
		Columns(
			"id", "student_id", "language", "topic_slug", "topic_title", "category",
			"completed", "final_score", "questions", "correct_answers",
			"duration_seconds", "gems_earned", "xp_earned", "created_at",
		).
		Values(
			r.ID, r.StudentID, r.Language, r.TopicSlug, r.TopicTitle, r.Category,
			r.Completed, r.FinalScore, r.Questions, r.CorrectAnswers,
			r.DurationSeconds, r.GemsEarned, r.XPEarned, r.CreatedAtMs,
		)
	if _, err := s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// CompletedSessions returns the student's completed sessions in the
// language, newest first.
func (s *Store) CompletedSessions(ctx context.Context, studentID, language string) ([]SessionRecord, error) {
	t := s.builder().Table(sessionsTable)
	query, args := s.builder().
		Select(
			t.C("id"), t.C("student_id"), t.C("language"), t.C("topic_slug"), t.C("topic_title"),
			t.C("category"), t.C("completed"), t.C("final_score"), t.C("questions"),
			t.C("correct_answers"), t.C("duration_seconds"), t.C("gems_earned"),
			t.C("xp_earned"), t.C("created_at"),
		).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("student_id"), studentID),
			entsql.EQ(t.C("language"), language),
			entsql.EQ(t.C("completed"), true),
		)).
		OrderBy(entsql.Desc(t.C("created_at")), t.C("id")).
		Query()

	var out []SessionRecord
	if err := s.x.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return out, nil
}

// DeleteStudent removes every record belonging to the student and returns
// the number of rows deleted.
func (s *Store) DeleteStudent(ctx context.Context, studentID string) (int64, error) {
	tx, err := s.x.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for _, table := range []string{attemptsTable, practiceAttemptsTable, rewardsTable, sessionsTable} {
		query, args := s.builder().Delete(table).Where(entsql.EQ("student_id", studentID)).Query()
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("delete from %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}
