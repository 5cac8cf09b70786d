package analytics

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/gramlens/internal/store"
)

// TopicStats rolls up the completed sessions of one topic.
type TopicStats struct {
	TopicSlug          string    `json:"topicSlug"`
	TopicTitle         string    `json:"topicTitle"`
	Category           string    `json:"category"`
	Sessions           int       `json:"sessions"`
	Questions          int       `json:"questions"`
	CorrectAnswers     int       `json:"correctAnswers"`
	AccuracyPercentage int       `json:"accuracyPercentage"`
	GemsEarned         int       `json:"gemsEarned"`
	XPEarned           int       `json:"xpEarned"`
	AverageScore       float64   `json:"averageScore"`
	LastPracticed      time.Time `json:"lastPracticed"`
}

// CategoryStats rolls up the completed sessions of one topic category.
type CategoryStats struct {
	Category           string `json:"category"`
	Sessions           int    `json:"sessions"`
	Questions          int    `json:"questions"`
	CorrectAnswers     int    `json:"correctAnswers"`
	AccuracyPercentage int    `json:"accuracyPercentage"`
	GemsEarned         int    `json:"gemsEarned"`
	Topics             int    `json:"topics"`
}

// SessionTotals sums every completed session.
type SessionTotals struct {
	Sessions           int `json:"sessions"`
	Questions          int `json:"questions"`
	CorrectAnswers     int `json:"correctAnswers"`
	AccuracyPercentage int `json:"accuracyPercentage"`
	GemsEarned         int `json:"gemsEarned"`
	XPEarned           int `json:"xpEarned"`
	AverageDurationSec int `json:"averageDurationSeconds"`
}

// SessionBreakdown is the per-topic and per-category view of completed
// practice sessions.
type SessionBreakdown struct {
	Topics     []TopicStats    `json:"topics"`
	Categories []CategoryStats `json:"categories"`
	Totals     SessionTotals   `json:"totals"`
}

// SessionBreakdown loads the student's completed sessions and rolls them up.
func (e *Engine) SessionBreakdown(ctx context.Context, studentID, language string) (*SessionBreakdown, error) {
	if strings.TrimSpace(language) == "" {
		return nil, ErrMissingLanguage
	}
	records, err := e.src.CompletedSessions(ctx, studentID, language)
	if err != nil {
		return nil, &ErrSourceFailed{Source: SourceSessions, Err: err}
	}
	b := BreakdownSessions(records)
	return &b, nil
}

// BreakdownSessions rolls up session records. Incomplete sessions are
// ignored. Topics are ordered by session count, categories by gems earned.
func BreakdownSessions(records []store.SessionRecord) SessionBreakdown {
	topics := map[string]*TopicStats{}
	scores := map[string]int{}
	categories := map[string]*CategoryStats{}
	categoryTopics := map[string]map[string]struct{}{}
	var totals SessionTotals
	var duration int

	for _, r := range records {
		if !r.Completed {
			continue
		}

		t, ok := topics[r.TopicSlug]
		if !ok {
			t = &TopicStats{TopicSlug: r.TopicSlug, TopicTitle: r.TopicTitle, Category: r.Category}
			topics[r.TopicSlug] = t
		}
		t.Sessions++
		t.Questions += r.Questions
		t.CorrectAnswers += r.CorrectAnswers
		t.GemsEarned += r.GemsEarned
		t.XPEarned += r.XPEarned
		scores[r.TopicSlug] += r.FinalScore
		if at := r.CreatedAt(); at.After(t.LastPracticed) {
			t.LastPracticed = at
		}

		c, ok := categories[r.Category]
		if !ok {
			c = &CategoryStats{Category: r.Category}
			categories[r.Category] = c
			categoryTopics[r.Category] = map[string]struct{}{}
		}
		c.Sessions++
		c.Questions += r.Questions
		c.CorrectAnswers += r.CorrectAnswers
		c.GemsEarned += r.GemsEarned
		categoryTopics[r.Category][r.TopicSlug] = struct{}{}

		totals.Sessions++
		totals.Questions += r.Questions
		totals.CorrectAnswers += r.CorrectAnswers
		totals.GemsEarned += r.GemsEarned
		totals.XPEarned += r.XPEarned
		duration += r.DurationSeconds
	}

	out := SessionBreakdown{
		Topics:     make([]TopicStats, 0, len(topics)),
		Categories: make([]CategoryStats, 0, len(categories)),
	}
	for slug, t := range topics {
		t.AccuracyPercentage = Percentage(t.CorrectAnswers, t.Questions)
		t.AverageScore = math.Round(float64(scores[slug])/float64(t.Sessions)*10) / 10
		out.Topics = append(out.Topics, *t)
	}
	for name, c := range categories {
		c.AccuracyPercentage = Percentage(c.CorrectAnswers, c.Questions)
		c.Topics = len(categoryTopics[name])
		out.Categories = append(out.Categories, *c)
	}

	sort.Slice(out.Topics, func(i, j int) bool {
		if out.Topics[i].Sessions != out.Topics[j].Sessions {
			return out.Topics[i].Sessions > out.Topics[j].Sessions
		}
		return out.Topics[i].TopicSlug < out.Topics[j].TopicSlug
	})
	sort.Slice(out.Categories, func(i, j int) bool {
		if out.Categories[i].GemsEarned != out.Categories[j].GemsEarned {
			return out.Categories[i].GemsEarned > out.Categories[j].GemsEarned
		}
		return out.Categories[i].Category < out.Categories[j].Category
	})

	totals.AccuracyPercentage = Percentage(totals.CorrectAnswers, totals.Questions)
	if totals.Sessions > 0 {
		totals.AverageDurationSec = int(math.Round(float64(duration) / float64(totals.Sessions)))
	}
	out.Totals = totals
	return out
}
