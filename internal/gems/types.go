package gems

// Currency identifies one of the two independently tracked rewards.
type Currency string

const (
	CurrencyGems Currency = "gems"
	CurrencyXP   Currency = "xp"
)

// AllCurrencies returns the reward currencies in display order.
func AllCurrencies() []Currency {
	return []Currency{CurrencyGems, CurrencyXP}
}

// DisplayName returns a human-readable label for the currency.
func (c Currency) DisplayName() string {
	switch c {
	case CurrencyGems:
		return "Gems"
	case CurrencyXP:
		return "XP"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the currency.
func (c Currency) Icon() string {
	switch c {
	case CurrencyGems:
		return "💎"
	case CurrencyXP:
		return "⚡"
	default:
		return "✦"
	}
}
