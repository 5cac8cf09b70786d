package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AppendReward records one gems/XP award.
func (s *Store) AppendReward(ctx context.Context, data RewardData) error {
	ins := s.builder().Insert(rewardsTable).
		Columns("id", "student_id", "gems", "xp", "streak", "awarded_at").
		Values(uuid.NewString(), data.StudentID, data.Gems, data.XP, data.Streak, toMillis(data.AwardedAt))
	if _, err := s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save reward: %w", err)
	}
	return nil
}

// RewardSummary totals the student's gems and XP. Today and this week are
// rolling windows anchored at now, matching Overview. Returns nil when the
// student has never been awarded anything.
func (s *Store) RewardSummary(ctx context.Context, studentID string, now time.Time) (*RewardRow, error) {
	t := s.builder().Table(rewardsTable)
	sel := s.builder().
		Select(
			entsql.As(entsql.Count("*"), "awards"),
			entsql.As(coalesceSum(t.C("gems")), "total_gems"),
			entsql.As(coalesceSum(t.C("xp")), "total_xp"),
			entsql.As(entsql.Avg(t.C("streak")), "avg_streak"),
			entsql.As(entsql.Max(t.C("awarded_at")), "last_award_at"),
		).
		From(t).
		Where(entsql.EQ(t.C("student_id"), studentID))

	query, args := sel.Query()
	var row RewardRow
	if err := s.x.GetContext(ctx, &row, query, args...); err != nil {
		return nil, fmt.Errorf("query reward summary: %w", err)
	}
	if row.Awards == 0 {
		return nil, nil
	}

	var err error
	if row.GemsThisWeek, row.XPThisWeek, err = s.rewardsSince(ctx, studentID, now.Add(-7*24*time.Hour)); err != nil {
		return nil, err
	}
	if row.GemsToday, row.XPToday, err = s.rewardsSince(ctx, studentID, now.Add(-24*time.Hour)); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) rewardsSince(ctx context.Context, studentID string, since time.Time) (gems, xp int, err error) {
	t := s.builder().Table(rewardsTable)
	query, args := s.builder().
		Select(
			entsql.As(coalesceSum(t.C("gems")), "gems"),
			entsql.As(coalesceSum(t.C("xp")), "xp"),
		).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("student_id"), studentID),
			entsql.GTE(t.C("awarded_at"), toMillis(since)),
		)).
		Query()

	var sums struct {
		Gems int `db:"gems"`
		XP   int `db:"xp"`
	}
	if err := s.x.GetContext(ctx, &sums, query, args...); err != nil {
		return 0, 0, fmt.Errorf("query rewards since: %w", err)
	}
	return sums.Gems, sums.XP, nil
}

func coalesceSum(column string) string {
	return fmt.Sprintf("COALESCE(%s, 0)", entsql.Sum(column))
}
