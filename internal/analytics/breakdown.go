package analytics

import (
	"strings"

	"github.com/abhisek/gramlens/internal/store"
)

// TensePerformanceFrom groups attempts by their raw tense label. Labels are
// not checked against a fixed list: a new tense is simply a new row.
// Attempts without a tense are skipped. Rows are ordered most practiced
// first.
func TensePerformanceFrom(attempts []store.GrammarAttempt) []TensePerformance {
	g := newGroups()
	for _, a := range attempts {
		if strings.TrimSpace(a.Tense) == "" {
			continue
		}
		g.get(a.Tense).add(a.Correct, a.ResponseTimeMs, a.ComplexityScore, a.CreatedAtMs)
	}

	rows := make([]TensePerformance, 0, len(g.keys))
	for _, key := range g.byVolume() {
		t := g.byKey[key]
		last := t.lastAtMs
		rows = append(rows, TensePerformance{
			Tense:                 key,
			TotalAttempts:         t.total,
			CorrectAttempts:       t.correct,
			AccuracyPercentage:    t.accuracy(),
			AverageResponseTimeMs: t.avgResponseMs(),
			TimedAttempts:         t.timed,
			LastPracticed:         store.MillisPtr(&last),
		})
	}
	return rows
}

// VerbTypePerformanceFrom groups attempts by verb class. Attempts whose
// class is not one of the known values are skipped.
func VerbTypePerformanceFrom(attempts []store.GrammarAttempt) []VerbTypePerformance {
	g := newGroups()
	for _, a := range attempts {
		if !VerbType(a.VerbType).Valid() {
			continue
		}
		g.get(a.VerbType).add(a.Correct, a.ResponseTimeMs, a.ComplexityScore, a.CreatedAtMs)
	}

	rows := make([]VerbTypePerformance, 0, len(g.keys))
	for _, key := range g.byVolume() {
		t := g.byKey[key]
		rows = append(rows, VerbTypePerformance{
			VerbType:              VerbType(key),
			TotalAttempts:         t.total,
			CorrectAttempts:       t.correct,
			AccuracyPercentage:    t.accuracy(),
			AverageResponseTimeMs: t.avgResponseMs(),
			TimedAttempts:         t.timed,
			AverageComplexity:     t.avgComplexity(),
		})
	}
	return rows
}
