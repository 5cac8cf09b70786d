package report

import (
	"fmt"
	"strings"
)

// AccuracyBar displays an accuracy percentage as a horizontal bar.
type AccuracyBar struct {
	Label   string
	Percent int
	Width   int
}

// View renders the bar followed by the percentage.
func (b AccuracyBar) View() string {
	var result string
	if b.Label != "" {
		result += Label.Render(b.Label)
	}

	barWidth := b.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * b.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += BarFilled.Render(strings.Repeat("█", filled))
	result += BarEmpty.Render(strings.Repeat("░", barWidth-filled))
	result += Hint.Render(fmt.Sprintf("  %d%%", b.Percent))
	return result
}
