package gems

import (
	"testing"

	"github.com/abhisek/gramlens/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeNilIsZero(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize(t *testing.T) {
	avg := 3.4567
	last := at.UnixMilli()
	s := Summarize(&store.RewardRow{
		Awards:       12,
		TotalGems:    40,
		TotalXP:      300,
		AvgStreak:    &avg,
		LastAwardMs:  &last,
		GemsToday:    4,
		XPToday:      35,
		GemsThisWeek: 20,
		XPThisWeek:   150,
	})

	assert.Equal(t, 40, s.TotalGems)
	assert.Equal(t, 300, s.TotalXP)
	assert.Equal(t, 4, s.GemsToday)
	assert.Equal(t, 35, s.XPToday)
	assert.Equal(t, 20, s.GemsThisWeek)
	assert.Equal(t, 150, s.XPThisWeek)
	assert.InDelta(t, 3.5, s.AverageStreak, 1e-9)
	require.NotNil(t, s.LastGemEarnedAt)
	assert.True(t, s.LastGemEarnedAt.Equal(at))
}

func TestSummarizeMissingAverages(t *testing.T) {
	s := Summarize(&store.RewardRow{Awards: 1, TotalGems: 1})
	assert.Zero(t, s.AverageStreak)
	assert.Nil(t, s.LastGemEarnedAt)
}
