package gems

import (
	"context"
	"time"

	"github.com/abhisek/gramlens/internal/store"
)

// Recorder persists reward awards.
type Recorder interface {
	AppendReward(ctx context.Context, data store.RewardData) error
}

// Service tracks a student's correct-answer streak during a practice
// session and records the resulting awards.
type Service struct {
	recorder  Recorder
	studentID string
	streak    int

	// SessionAwards accumulates awards made during the current session.
	SessionAwards []Award
}

// NewService creates a Service recording awards for studentID.
func NewService(recorder Recorder, studentID string) *Service {
	return &Service{recorder: recorder, studentID: studentID}
}

// RecordAnswer updates the streak and persists an award for a correct
// answer. It returns the award, or nil for a wrong answer.
func (s *Service) RecordAnswer(ctx context.Context, correct bool, at time.Time) (*Award, error) {
	if !correct {
		s.streak = 0
		return nil, nil
	}
	s.streak++

	award, _ := ForAnswer(true, s.streak, at)
	if s.recorder != nil {
		err := s.recorder.AppendReward(ctx, store.RewardData{
			StudentID: s.studentID,
			Gems:      award.Gems,
			XP:        award.XP,
			Streak:    award.Streak,
			AwardedAt: award.AwardedAt,
		})
		if err != nil {
			return nil, err
		}
	}
	s.SessionAwards = append(s.SessionAwards, award)
	return &award, nil
}

// Streak returns the current correct-answer streak.
func (s *Service) Streak() int {
	return s.streak
}

// SessionTotals sums the gems and XP awarded in the current session.
func (s *Service) SessionTotals() (gems, xp int) {
	for _, a := range s.SessionAwards {
		gems += a.Gems
		xp += a.XP
	}
	return gems, xp
}

// ResetSession clears the streak and the session accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.streak = 0
	s.SessionAwards = nil
}
