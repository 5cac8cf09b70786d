package analytics

import (
	"sort"
	"strings"

	"github.com/abhisek/gramlens/internal/store"
)

type cellKey struct {
	tense  string
	person string
}

// ConjugationMatrixFrom builds one cell per (tense, person) pair present in
// the person-level attempts. The matrix is sparse; attempts missing either
// label are skipped. Cells are ordered by tense, then person.
func ConjugationMatrixFrom(attempts []store.PracticeAttempt, p Policy) []MatrixCell {
	tallies := make(map[cellKey]*tally)
	for _, a := range attempts {
		if strings.TrimSpace(a.Tense) == "" || strings.TrimSpace(a.Person) == "" {
			continue
		}
		k := cellKey{tense: a.Tense, person: a.Person}
		t, ok := tallies[k]
		if !ok {
			t = &tally{}
			tallies[k] = t
		}
		t.add(a.Correct, a.ResponseTimeMs, nil, a.CreatedAtMs)
	}

	cells := make([]MatrixCell, 0, len(tallies))
	for k, t := range tallies {
		acc := t.accuracy()
		cells = append(cells, MatrixCell{
			Tense:                 k.tense,
			Person:                k.person,
			TotalAttempts:         t.total,
			CorrectAttempts:       t.correct,
			AccuracyPercentage:    acc,
			AverageResponseTimeMs: t.avgResponseMs(),
			TimedAttempts:         t.timed,
			NeedsPractice:         p.NeedsPractice(acc, t.total),
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Tense != cells[j].Tense {
			return cells[i].Tense < cells[j].Tense
		}
		return cells[i].Person < cells[j].Person
	})
	return cells
}
