package analytics

import (
	"strings"

	"github.com/abhisek/gramlens/internal/store"
)

// PlaceholderValue is what upstream writes into a field it could not fill.
const PlaceholderValue = "unknown"

// BuildWeaknesses converts ranked weakness rows, keeping their order. A row
// is flagged as a weakness when its accuracy is below the policy threshold.
func BuildWeaknesses(rows []store.WeaknessRow, p Policy) []Weakness {
	out := make([]Weakness, 0, len(rows))
	for _, r := range rows {
		acc := Percentage(r.CorrectAttempts, r.TotalAttempts)
		out = append(out, Weakness{
			Type:               r.Dimension,
			Name:               r.Name,
			TotalAttempts:      r.TotalAttempts,
			CorrectAttempts:    r.CorrectAttempts,
			AccuracyPercentage: acc,
			IsWeakness:         acc < p.WeaknessAccuracyBelow,
		})
	}
	return out
}

// MistakesFrom converts grouped mistake rows and drops incomplete ones.
func MistakesFrom(rows []store.MistakeRow) []MistakePattern {
	patterns := make([]MistakePattern, 0, len(rows))
	for _, r := range rows {
		m := MistakePattern{
			Tense:           r.Tense,
			Person:          r.Person,
			ExpectedAnswer:  r.ExpectedAnswer,
			UserAnswer:      r.UserAnswer,
			OccurrenceCount: r.OccurrenceCount,
			LastMistakeAt:   r.LastMistakeAt(),
		}
		if r.BaseVerb != nil {
			m.BaseVerb = *r.BaseVerb
		}
		patterns = append(patterns, m)
	}
	return FilterMistakes(patterns)
}

// FilterMistakes silently drops patterns missing a verb, tense, expected or
// given answer. Order is preserved and filtering twice changes nothing.
func FilterMistakes(patterns []MistakePattern) []MistakePattern {
	out := make([]MistakePattern, 0, len(patterns))
	for _, m := range patterns {
		if m.Complete() {
			out = append(out, m)
		}
	}
	return out
}

// Complete reports whether all four key fields carry a real value.
func (m MistakePattern) Complete() bool {
	return present(m.BaseVerb) && present(m.Tense) && present(m.ExpectedAnswer) && present(m.UserAnswer)
}

func present(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, PlaceholderValue)
}
