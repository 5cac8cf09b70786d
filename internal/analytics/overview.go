package analytics

import (
	"math"

	"github.com/abhisek/gramlens/internal/store"
)

// BuildOverview converts the aggregate row for a student and language. A
// nil row is a new student and yields the zero Overview.
func BuildOverview(row *store.OverviewRow) Overview {
	if row == nil {
		return Overview{}
	}
	o := Overview{
		TotalAttempts:    row.TotalAttempts,
		CorrectAttempts:  row.CorrectAttempts,
		AttemptsThisWeek: row.AttemptsThisWeek,
		AttemptsToday:    row.AttemptsToday,
		FirstPracticeAt:  store.MillisPtr(row.FirstPracticeMs),
		LastPracticeAt:   store.MillisPtr(row.LastPracticeMs),
	}
	o.AccuracyPercentage = Percentage(o.CorrectAttempts, o.TotalAttempts)
	if row.AvgResponseTimeMs != nil {
		o.AverageResponseTimeMs = int(math.Round(*row.AvgResponseTimeMs))
	}
	if row.AvgComplexity != nil {
		o.AverageComplexity = round2(*row.AvgComplexity)
	}
	return o
}
