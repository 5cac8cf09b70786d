package gems

import (
	"math"
	"time"

	"github.com/abhisek/gramlens/internal/store"
)

// Summary is the gems/XP rollup shown on the analytics dashboard.
type Summary struct {
	TotalGems       int        `json:"totalGems"`
	TotalXP         int        `json:"totalXp"`
	GemsToday       int        `json:"gemsToday"`
	XPToday         int        `json:"xpToday"`
	GemsThisWeek    int        `json:"gemsThisWeek"`
	XPThisWeek      int        `json:"xpThisWeek"`
	AverageStreak   float64    `json:"averageStreak"`
	LastGemEarnedAt *time.Time `json:"lastGemEarnedAt"`
}

// Summarize converts a reward summary row. A nil row is a student who has
// never earned anything and yields the zero Summary.
func Summarize(row *store.RewardRow) Summary {
	if row == nil {
		return Summary{}
	}
	s := Summary{
		TotalGems:       row.TotalGems,
		TotalXP:         row.TotalXP,
		GemsToday:       row.GemsToday,
		XPToday:         row.XPToday,
		GemsThisWeek:    row.GemsThisWeek,
		XPThisWeek:      row.XPThisWeek,
		LastGemEarnedAt: store.MillisPtr(row.LastAwardMs),
	}
	if row.AvgStreak != nil {
		s.AverageStreak = math.Round(*row.AvgStreak*10) / 10
	}
	return s
}
