package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gramlens/internal/analytics"
)

func TestTextWrite(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(analytics.DefaultPolicy())
	h := Header{StudentID: "s1", Language: "es", Generated: reportTime}
	require.NoError(t, r.Write(&buf, h, sampleAnalytics(), sampleSessions()))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "non-terminal output is plain")
	for _, want := range []string{
		"Grammar report · s1 · es",
		"Overview", "65%", "4.3s",
		"Tenses", "present", "preterite",
		"Verb types", "stem-changing",
		"Conjugation matrix", "practice",
		"Weak spots", "preterite",
		"Common mistakes", "tuve", "tení",
		"Rewards", "💎 31", "⚡ 310", "2.4",
		"Sessions", "Irregular preterite", "4m30s",
		"Recommendations", "1. Good progress!", "2. Practice the preterite tense",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTextEmptyStudent(t *testing.T) {
	a := &analytics.StudentGrammarAnalytics{
		TensePerformance:    []analytics.TensePerformance{},
		VerbTypePerformance: []analytics.VerbTypePerformance{},
		ConjugationMatrix:   []analytics.MatrixCell{},
		Weaknesses:          []analytics.Weakness{},
		CommonMistakes:      []analytics.MistakePattern{},
		Recommendations:     []string{"Focus on the fundamentals."},
	}
	out := NewText(analytics.DefaultPolicy()).Render(Header{StudentID: "new", Language: "es"}, a, nil)
	assert.Contains(t, out, "No attempts yet.")
	assert.Contains(t, out, "Nothing yet.")
	assert.NotContains(t, out, "Sessions")
	assert.NotContains(t, out, "generated")
}

func TestAccuracyBar(t *testing.T) {
	tests := []struct {
		pct    int
		filled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
	}
	for _, tt := range tests {
		view := AccuracyBar{Percent: tt.pct, Width: 10}.View()
		assert.Equal(t, tt.filled, bytes.Count([]byte(view), []byte("█")), "percent %d", tt.pct)
		assert.Equal(t, 10-tt.filled, bytes.Count([]byte(view), []byte("░")), "percent %d", tt.pct)
	}
}

func TestTiming(t *testing.T) {
	assert.Equal(t, "-", timing(0, 0))
	assert.Equal(t, "-", timing(1200, 0))
	assert.Equal(t, "1.2s", timing(1200, 4))
}
