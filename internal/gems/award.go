package gems

import (
	"fmt"
	"time"
)

// Per-answer payouts.
const (
	GemsPerCorrect = 1
	XPPerCorrect   = 10
	XPPerMilestone = 25
)

// Award is the gems/XP earned by a single correct answer.
type Award struct {
	Gems      int
	XP        int
	Streak    int
	Rarity    Rarity // empty unless the answer hit a streak milestone
	Reason    string
	AwardedAt time.Time
}

// ForAnswer computes the award for an answer given the correct-answer
// streak including this answer. Wrong answers earn nothing.
func ForAnswer(correct bool, streak int, at time.Time) (Award, bool) {
	if !correct {
		return Award{}, false
	}

	award := Award{
		Gems:      GemsPerCorrect,
		XP:        XPPerCorrect,
		Streak:    streak,
		Reason:    "Correct answer",
		AwardedAt: at,
	}
	if IsMilestone(streak) {
		award.Rarity = StreakRarity(streak)
		award.Gems += award.Rarity.BonusGems()
		award.XP += XPPerMilestone
		award.Reason = fmt.Sprintf("%d correct in a row!", streak)
	}
	return award, true
}
