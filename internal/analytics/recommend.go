package analytics

import (
	"fmt"

	"github.com/abhisek/gramlens/internal/store"
)

// Recommend turns the aggregates into coaching suggestions. Rules run in a
// fixed order and the list is cut to p.MaxRecommendations, so the global
// advice from the first rules always survives:
//
//  1. overall accuracy band (exactly one of foundational, encouragement, stretch)
//  2. speed practice when the mean response time is slow
//  3. one sentence per weakness, in the order given
//  4. the single most frequent complete mistake
//  5. practice frequency when this week's attempts are below target
func Recommend(o Overview, weaknesses []Weakness, mistakes []MistakePattern, p Policy) []string {
	recs := make([]string, 0, p.MaxRecommendations+len(weaknesses))

	switch {
	case o.AccuracyPercentage < p.FoundationalBelow:
		recs = append(recs, "Focus on the fundamentals: review the conjugation rules of the tenses you practice most before moving on to new ones.")
	case o.AccuracyPercentage < p.StretchFrom:
		recs = append(recs, fmt.Sprintf("Good progress! Keep practicing regularly to push your accuracy above %d%%.", p.StretchFrom))
	default:
		recs = append(recs, "Excellent accuracy! Stretch yourself with irregular verbs and more advanced tenses.")
	}

	if o.AverageResponseTimeMs > p.SlowResponseMs {
		recs = append(recs, fmt.Sprintf("Try short timed rounds to build speed; your answers take %.1f seconds on average.", float64(o.AverageResponseTimeMs)/1000))
	}

	for _, w := range weaknesses {
		switch w.Type {
		case store.DimensionVerbType:
			recs = append(recs, fmt.Sprintf("Review %s verbs: your accuracy with them is %d%%.", VerbType(w.Name).DisplayName(), w.AccuracyPercentage))
		default:
			recs = append(recs, fmt.Sprintf("Practice the %s tense more: your accuracy there is %d%%.", w.Name, w.AccuracyPercentage))
		}
	}

	if len(mistakes) > 0 && mistakes[0].Complete() {
		m := mistakes[0]
		recs = append(recs, fmt.Sprintf("Watch out for %q in the %s of %q: you wrote %q instead.", m.ExpectedAnswer, m.Tense, m.BaseVerb, m.UserAnswer))
	}

	if o.AttemptsThisWeek < p.WeeklyTargetAttempts {
		recs = append(recs, fmt.Sprintf("Aim for at least %d practice attempts this week to build a steady habit.", p.WeeklyTargetAttempts))
	}

	if p.MaxRecommendations > 0 && len(recs) > p.MaxRecommendations {
		recs = recs[:p.MaxRecommendations]
	}
	return recs
}
