package gems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakRarity(t *testing.T) {
	tests := []struct {
		length int
		want   Rarity
	}{
		{5, RarityCommon},
		{7, RarityCommon},
		{9, RarityCommon},
		{10, RarityRare},
		{12, RarityRare},
		{15, RarityEpic},
		{19, RarityEpic},
		{20, RarityLegendary},
		{25, RarityLegendary},
		{100, RarityLegendary},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakRarity(tt.length), "StreakRarity(%d)", tt.length)
	}
}

func TestAllRaritiesOrder(t *testing.T) {
	assert.Equal(t, []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}, AllRarities())
}

func TestBonusGemsIncreaseWithRarity(t *testing.T) {
	prev := 0
	for _, r := range AllRarities() {
		assert.Greater(t, r.BonusGems(), prev, "rarity %s", r)
		prev = r.BonusGems()
	}
}

func TestNamesAndFallbacks(t *testing.T) {
	assert.Equal(t, 2, Rarity("mythic").BonusGems())
	assert.Equal(t, "XP", CurrencyXP.DisplayName())
	assert.Equal(t, "💎", CurrencyGems.Icon())
}
