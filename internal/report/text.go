package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/gramlens/internal/analytics"
	"github.com/abhisek/gramlens/internal/gems"
)

// Header identifies whose report is being rendered.
type Header struct {
	StudentID string
	Language  string
	Generated time.Time
}

// Text renders analytics as a terminal report.
type Text struct {
	Policy analytics.Policy
	// Width of accuracy bars.
	BarWidth int
}

// NewText creates a text renderer using the policy's accuracy bands.
func NewText(p analytics.Policy) *Text {
	return &Text{Policy: p, BarWidth: 30}
}

// Write renders a to w. sessions may be nil. Colors are downsampled to what
// w supports, so redirected output is plain text.
func (t *Text) Write(w io.Writer, h Header, a *analytics.StudentGrammarAnalytics, sessions *analytics.SessionBreakdown) error {
	_, err := lipgloss.Fprint(w, t.Render(h, a, sessions))
	return err
}

// Render returns the styled report.
func (t *Text) Render(h Header, a *analytics.StudentGrammarAnalytics, sessions *analytics.SessionBreakdown) string {
	var b strings.Builder

	b.WriteString(Title.Render(fmt.Sprintf("Grammar report · %s · %s", h.StudentID, h.Language)))
	b.WriteString("\n")
	if !h.Generated.IsZero() {
		b.WriteString(Hint.Render("generated " + h.Generated.Format(time.RFC1123)))
		b.WriteString("\n")
	}

	t.overview(&b, a.Overview)
	t.tenses(&b, a.TensePerformance)
	t.verbTypes(&b, a.VerbTypePerformance)
	t.matrix(&b, a.ConjugationMatrix)
	t.weaknesses(&b, a.Weaknesses)
	t.mistakes(&b, a.CommonMistakes)
	t.rewards(&b, a.GemsAnalytics)
	if sessions != nil {
		t.sessions(&b, sessions)
	}
	t.recommendations(&b, a.Recommendations)

	return b.String()
}

func (t *Text) overview(b *strings.Builder, o analytics.Overview) {
	section(b, "Overview")
	if o.TotalAttempts == 0 {
		b.WriteString(Hint.Render("No attempts yet."))
		b.WriteString("\n")
		return
	}
	bar := AccuracyBar{Label: "Accuracy", Percent: o.AccuracyPercentage, Width: t.BarWidth}
	b.WriteString(bar.View())
	b.WriteString("\n")
	field(b, "Attempts", fmt.Sprintf("%d (%d correct)", o.TotalAttempts, o.CorrectAttempts))
	field(b, "This week", strconv.Itoa(o.AttemptsThisWeek))
	field(b, "Today", strconv.Itoa(o.AttemptsToday))
	field(b, "Avg response", formatMs(o.AverageResponseTimeMs))
	field(b, "Avg complexity", fmt.Sprintf("%.2f", o.AverageComplexity))
	field(b, "First practice", formatTime(o.FirstPracticeAt))
	field(b, "Last practice", formatTime(o.LastPracticeAt))
}

func (t *Text) tenses(b *strings.Builder, rows []analytics.TensePerformance) {
	section(b, "Tenses")
	if len(rows) == 0 {
		empty(b)
		return
	}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Tense,
			strconv.Itoa(r.TotalAttempts),
			strconv.Itoa(r.CorrectAttempts),
			pct(r.AccuracyPercentage),
			timing(r.AverageResponseTimeMs, r.TimedAttempts),
			formatTime(r.LastPracticed),
		})
	}
	b.WriteString(t.table([]string{"Tense", "Attempts", "Correct", "Accuracy", "Avg time", "Last practiced"}, data, 3, nil))
	b.WriteString("\n")
}

func (t *Text) verbTypes(b *strings.Builder, rows []analytics.VerbTypePerformance) {
	section(b, "Verb types")
	if len(rows) == 0 {
		empty(b)
		return
	}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.VerbType.DisplayName(),
			strconv.Itoa(r.TotalAttempts),
			pct(r.AccuracyPercentage),
			timing(r.AverageResponseTimeMs, r.TimedAttempts),
			fmt.Sprintf("%.2f", r.AverageComplexity),
		})
	}
	b.WriteString(t.table([]string{"Verb type", "Attempts", "Accuracy", "Avg time", "Complexity"}, data, 2, nil))
	b.WriteString("\n")
}

func (t *Text) matrix(b *strings.Builder, cells []analytics.MatrixCell) {
	section(b, "Conjugation matrix")
	if len(cells) == 0 {
		empty(b)
		return
	}
	data := make([][]string, 0, len(cells))
	flagged := make(map[int]bool)
	for i, c := range cells {
		mark := ""
		if c.NeedsPractice {
			mark = "practice"
			flagged[i] = true
		}
		data = append(data, []string{
			c.Tense,
			c.Person,
			strconv.Itoa(c.TotalAttempts),
			pct(c.AccuracyPercentage),
			timing(c.AverageResponseTimeMs, c.TimedAttempts),
			mark,
		})
	}
	b.WriteString(t.table([]string{"Tense", "Person", "Attempts", "Accuracy", "Avg time", ""}, data, 3, flagged))
	b.WriteString("\n")
}

func (t *Text) weaknesses(b *strings.Builder, rows []analytics.Weakness) {
	section(b, "Weak spots")
	if len(rows) == 0 {
		empty(b)
		return
	}
	data := make([][]string, 0, len(rows))
	flagged := make(map[int]bool)
	for i, w := range rows {
		name := w.Name
		if w.Type == "verb_type" {
			name = analytics.VerbType(w.Name).DisplayName() + " verbs"
		}
		data = append(data, []string{
			strings.ReplaceAll(w.Type, "_", " "),
			name,
			strconv.Itoa(w.TotalAttempts),
			pct(w.AccuracyPercentage),
		})
		flagged[i] = w.IsWeakness
	}
	b.WriteString(t.table([]string{"Kind", "Name", "Attempts", "Accuracy"}, data, 3, flagged))
	b.WriteString("\n")
}

func (t *Text) mistakes(b *strings.Builder, rows []analytics.MistakePattern) {
	section(b, "Common mistakes")
	if len(rows) == 0 {
		empty(b)
		return
	}
	data := make([][]string, 0, len(rows))
	for _, m := range rows {
		data = append(data, []string{
			m.BaseVerb,
			m.Tense,
			m.Person,
			m.ExpectedAnswer,
			m.UserAnswer,
			strconv.Itoa(m.OccurrenceCount),
			m.LastMistakeAt.Format("2006-01-02"),
		})
	}
	b.WriteString(t.table([]string{"Verb", "Tense", "Person", "Expected", "Given", "Times", "Last"}, data, -1, nil))
	b.WriteString("\n")
}

func (t *Text) rewards(b *strings.Builder, s gems.Summary) {
	section(b, "Rewards")
	gemIcon, xpIcon := gems.CurrencyGems.Icon(), gems.CurrencyXP.Icon()
	field(b, "Total", fmt.Sprintf("%s %d   %s %d", gemIcon, s.TotalGems, xpIcon, s.TotalXP))
	field(b, "This week", fmt.Sprintf("%s %d   %s %d", gemIcon, s.GemsThisWeek, xpIcon, s.XPThisWeek))
	field(b, "Today", fmt.Sprintf("%s %d   %s %d", gemIcon, s.GemsToday, xpIcon, s.XPToday))
	field(b, "Average streak", fmt.Sprintf("%.1f", s.AverageStreak))
	field(b, "Last earned", formatTime(s.LastGemEarnedAt))
}

func (t *Text) sessions(b *strings.Builder, s *analytics.SessionBreakdown) {
	section(b, "Sessions")
	if s.Totals.Sessions == 0 {
		empty(b)
		return
	}
	field(b, "Completed", strconv.Itoa(s.Totals.Sessions))
	field(b, "Questions", fmt.Sprintf("%d (%s correct)", s.Totals.Questions, pct(s.Totals.AccuracyPercentage)))
	field(b, "Avg duration", (time.Duration(s.Totals.AverageDurationSec) * time.Second).String())

	data := make([][]string, 0, len(s.Topics))
	for _, tp := range s.Topics {
		data = append(data, []string{
			tp.TopicTitle,
			tp.Category,
			strconv.Itoa(tp.Sessions),
			pct(tp.AccuracyPercentage),
			fmt.Sprintf("%.1f", tp.AverageScore),
			strconv.Itoa(tp.GemsEarned),
		})
	}
	b.WriteString(t.table([]string{"Topic", "Category", "Sessions", "Accuracy", "Avg score", "Gems"}, data, 3, nil))
	b.WriteString("\n")
}

func (t *Text) recommendations(b *strings.Builder, recs []string) {
	section(b, "Recommendations")
	for i, r := range recs {
		b.WriteString(Value.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteString(" ")
		b.WriteString(r)
		b.WriteString("\n")
	}
}

// table renders rows with the shared cell styles. accuracyCol, when not
// negative, is colored by band; flagged rows are highlighted.
func (t *Text) table(headers []string, rows [][]string, accuracyCol int, flagged map[int]bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderCell
			case flagged[row]:
				return FlaggedCell
			case col == accuracyCol:
				n, _ := strconv.Atoi(strings.TrimSuffix(rows[row][col], "%"))
				return accuracyColor(n, t.Policy.FoundationalBelow, t.Policy.StretchFrom).Padding(0, 1)
			default:
				return Cell
			}
		}).
		String()
}

func section(b *strings.Builder, name string) {
	b.WriteString(Section.Render(name))
	b.WriteString("\n")
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(Label.Render(label))
	b.WriteString(Value.Render(value))
	b.WriteString("\n")
}

func empty(b *strings.Builder) {
	b.WriteString(Hint.Render("Nothing yet."))
	b.WriteString("\n")
}

func pct(v int) string { return strconv.Itoa(v) + "%" }

func formatMs(ms int) string {
	if ms == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

// timing shows "-" when no attempt carried a response time.
func timing(ms, timed int) string {
	if timed == 0 {
		return "-"
	}
	return formatMs(ms)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
