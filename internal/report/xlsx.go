package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/gramlens/internal/analytics"
)

// Workbook sheet names.
const (
	SheetOverview        = "Overview"
	SheetTenses          = "Tenses"
	SheetVerbTypes       = "Verb types"
	SheetMatrix          = "Matrix"
	SheetWeaknesses      = "Weaknesses"
	SheetMistakes        = "Mistakes"
	SheetRecommendations = "Recommendations"
	SheetSessions        = "Sessions"
)

const sheetTimeLayout = "2006-01-02 15:04:05"

// WriteWorkbook exports a as an xlsx workbook with one sheet per section.
// sessions may be nil.
func WriteWorkbook(w io.Writer, h Header, a *analytics.StudentGrammarAnalytics, sessions *analytics.SessionBreakdown) error {
	f, err := buildWorkbook(h, a, sessions)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(h Header, a *analytics.StudentGrammarAnalytics, sessions *analytics.SessionBreakdown) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "8B5CF6"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"EDE9FE"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	sw := &sheetWriter{f: f, headerStyle: headerStyle}

	o, g := a.Overview, a.GemsAnalytics
	sw.keyValues(SheetOverview, [][]any{
		{"Student", h.StudentID},
		{"Language", h.Language},
		{"Generated", formatCellTime(&h.Generated)},
		{"Total attempts", o.TotalAttempts},
		{"Correct attempts", o.CorrectAttempts},
		{"Accuracy %", o.AccuracyPercentage},
		{"Attempts this week", o.AttemptsThisWeek},
		{"Attempts today", o.AttemptsToday},
		{"Avg response (ms)", o.AverageResponseTimeMs},
		{"Avg complexity", o.AverageComplexity},
		{"First practice", formatCellTime(o.FirstPracticeAt)},
		{"Last practice", formatCellTime(o.LastPracticeAt)},
		{"Total gems", g.TotalGems},
		{"Total XP", g.TotalXP},
		{"Gems this week", g.GemsThisWeek},
		{"XP this week", g.XPThisWeek},
		{"Gems today", g.GemsToday},
		{"XP today", g.XPToday},
		{"Average streak", g.AverageStreak},
		{"Last gem earned", formatCellTime(g.LastGemEarnedAt)},
	})

	tenses := make([][]any, 0, len(a.TensePerformance))
	for _, r := range a.TensePerformance {
		tenses = append(tenses, []any{r.Tense, r.TotalAttempts, r.CorrectAttempts, r.AccuracyPercentage, r.AverageResponseTimeMs, r.TimedAttempts, formatCellTime(r.LastPracticed)})
	}
	sw.table(SheetTenses, []string{"Tense", "Attempts", "Correct", "Accuracy %", "Avg response (ms)", "Timed attempts", "Last practiced"}, tenses)

	types := make([][]any, 0, len(a.VerbTypePerformance))
	for _, r := range a.VerbTypePerformance {
		types = append(types, []any{string(r.VerbType), r.TotalAttempts, r.CorrectAttempts, r.AccuracyPercentage, r.AverageResponseTimeMs, r.TimedAttempts, r.AverageComplexity})
	}
	sw.table(SheetVerbTypes, []string{"Verb type", "Attempts", "Correct", "Accuracy %", "Avg response (ms)", "Timed attempts", "Avg complexity"}, types)

	cells := make([][]any, 0, len(a.ConjugationMatrix))
	for _, c := range a.ConjugationMatrix {
		cells = append(cells, []any{c.Tense, c.Person, c.TotalAttempts, c.CorrectAttempts, c.AccuracyPercentage, c.AverageResponseTimeMs, c.NeedsPractice})
	}
	sw.table(SheetMatrix, []string{"Tense", "Person", "Attempts", "Correct", "Accuracy %", "Avg response (ms)", "Needs practice"}, cells)

	weak := make([][]any, 0, len(a.Weaknesses))
	for _, wk := range a.Weaknesses {
		weak = append(weak, []any{wk.Type, wk.Name, wk.TotalAttempts, wk.CorrectAttempts, wk.AccuracyPercentage, wk.IsWeakness})
	}
	sw.table(SheetWeaknesses, []string{"Type", "Name", "Attempts", "Correct", "Accuracy %", "Is weakness"}, weak)

	mistakes := make([][]any, 0, len(a.CommonMistakes))
	for _, m := range a.CommonMistakes {
		last := m.LastMistakeAt
		mistakes = append(mistakes, []any{m.BaseVerb, m.Tense, m.Person, m.ExpectedAnswer, m.UserAnswer, m.OccurrenceCount, formatCellTime(&last)})
	}
	sw.table(SheetMistakes, []string{"Verb", "Tense", "Person", "Expected", "Given", "Occurrences", "Last mistake"}, mistakes)

	recs := make([][]any, 0, len(a.Recommendations))
	for i, r := range a.Recommendations {
		recs = append(recs, []any{i + 1, r})
	}
	sw.table(SheetRecommendations, []string{"#", "Recommendation"}, recs)

	if sessions != nil {
		topics := make([][]any, 0, len(sessions.Topics))
		for _, t := range sessions.Topics {
			last := t.LastPracticed
			topics = append(topics, []any{t.TopicSlug, t.TopicTitle, t.Category, t.Sessions, t.Questions, t.CorrectAnswers, t.AccuracyPercentage, t.GemsEarned, t.XPEarned, t.AverageScore, formatCellTime(&last)})
		}
		sw.table(SheetSessions, []string{"Topic", "Title", "Category", "Sessions", "Questions", "Correct", "Accuracy %", "Gems", "XP", "Avg score", "Last practiced"}, topics)
	}

	if sw.err != nil {
		f.Close()
		return nil, sw.err
	}
	return f, nil
}

// sheetWriter keeps the first error so sheets can be written back to back.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (s *sheetWriter) ensure(sheet string) {
	if s.err != nil || sheet == SheetOverview {
		return
	}
	if _, err := s.f.NewSheet(sheet); err != nil {
		s.err = fmt.Errorf("create sheet %s: %w", sheet, err)
	}
}

func (s *sheetWriter) row(sheet string, n int, values []any) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(sheet, cell, &values); err != nil {
		s.err = fmt.Errorf("write %s row %d: %w", sheet, n, err)
	}
}

func (s *sheetWriter) keyValues(sheet string, rows [][]any) {
	s.ensure(sheet)
	for i, r := range rows {
		s.row(sheet, i+1, r)
	}
	if s.err == nil {
		s.err = s.f.SetColWidth(sheet, "A", "A", 22)
	}
}

func (s *sheetWriter) table(sheet string, headers []string, rows [][]any) {
	s.ensure(sheet)
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	s.row(sheet, 1, hdr)
	for i, r := range rows {
		s.row(sheet, i+2, r)
	}
	if s.err != nil {
		return
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellStyle(sheet, "A1", last, s.headerStyle); err != nil {
		s.err = fmt.Errorf("style %s header: %w", sheet, err)
		return
	}
	if err := s.f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		s.err = fmt.Errorf("freeze %s header: %w", sheet, err)
		return
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetColWidth(sheet, "A", lastCol, 16)
}

func formatCellTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(sheetTimeLayout)
}
