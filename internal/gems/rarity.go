package gems

// Rarity is the tier of a streak milestone. Rarer milestones pay more
// bonus gems.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityTiers is ordered from the longest streak down.
var rarityTiers = []struct {
	rarity    Rarity
	minStreak int
	bonus     int
}{
	{RarityLegendary, 20, 5},
	{RarityEpic, 15, 4},
	{RarityRare, 10, 3},
	{RarityCommon, 0, 2},
}

// AllRarities returns all rarities from lowest to highest.
func AllRarities() []Rarity {
	out := make([]Rarity, len(rarityTiers))
	for i, t := range rarityTiers {
		out[len(out)-1-i] = t.rarity
	}
	return out
}

// StreakRarity returns the rarity earned by a streak of the given length.
func StreakRarity(length int) Rarity {
	for _, t := range rarityTiers {
		if length >= t.minStreak {
			return t.rarity
		}
	}
	return RarityCommon
}

// BonusGems returns the extra gems paid for a milestone of this rarity.
// Unknown rarities pay the common bonus.
func (r Rarity) BonusGems() int {
	for _, t := range rarityTiers {
		if t.rarity == r {
			return t.bonus
		}
	}
	return rarityTiers[len(rarityTiers)-1].bonus
}
