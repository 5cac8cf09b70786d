package report

import (
	"time"

	"github.com/abhisek/gramlens/internal/analytics"
	"github.com/abhisek/gramlens/internal/gems"
)

var reportTime = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func sampleAnalytics() *analytics.StudentGrammarAnalytics {
	last := reportTime.Add(-time.Hour)
	first := reportTime.AddDate(0, 0, -12)
	return &analytics.StudentGrammarAnalytics{
		Overview: analytics.Overview{
			TotalAttempts:         40,
			CorrectAttempts:       26,
			AccuracyPercentage:    65,
			AttemptsThisWeek:      12,
			AttemptsToday:         3,
			AverageResponseTimeMs: 4300,
			AverageComplexity:     2.1,
			FirstPracticeAt:       &first,
			LastPracticeAt:        &last,
		},
		TensePerformance: []analytics.TensePerformance{
			{Tense: "present", TotalAttempts: 25, CorrectAttempts: 20, AccuracyPercentage: 80, AverageResponseTimeMs: 3500, TimedAttempts: 25, LastPracticed: &last},
			{Tense: "preterite", TotalAttempts: 15, CorrectAttempts: 6, AccuracyPercentage: 40},
		},
		VerbTypePerformance: []analytics.VerbTypePerformance{
			{VerbType: analytics.VerbStemChanging, TotalAttempts: 40, CorrectAttempts: 26, AccuracyPercentage: 65, AverageComplexity: 2.1},
		},
		ConjugationMatrix: []analytics.MatrixCell{
			{Tense: "preterite", Person: "yo", TotalAttempts: 5, CorrectAttempts: 1, AccuracyPercentage: 20, NeedsPractice: true},
			{Tense: "present", Person: "tú", TotalAttempts: 6, CorrectAttempts: 6, AccuracyPercentage: 100},
		},
		Weaknesses: []analytics.Weakness{
			{Type: "tense", Name: "preterite", TotalAttempts: 15, CorrectAttempts: 6, AccuracyPercentage: 40, IsWeakness: true},
		},
		CommonMistakes: []analytics.MistakePattern{
			{BaseVerb: "tener", Tense: "preterite", Person: "yo", ExpectedAnswer: "tuve", UserAnswer: "tení", OccurrenceCount: 3, LastMistakeAt: last},
		},
		GemsAnalytics: gems.Summary{TotalGems: 31, TotalXP: 310, GemsThisWeek: 9, XPThisWeek: 90, AverageStreak: 2.4, LastGemEarnedAt: &last},
		Recommendations: []string{
			"Good progress! Keep practicing regularly to push your accuracy above 80%.",
			"Practice the preterite tense more: your accuracy there is 40%.",
		},
	}
}

func sampleSessions() *analytics.SessionBreakdown {
	return &analytics.SessionBreakdown{
		Topics: []analytics.TopicStats{
			{TopicSlug: "preterite-irregular", TopicTitle: "Irregular preterite", Category: "past", Sessions: 2, Questions: 20, CorrectAnswers: 15, AccuracyPercentage: 75, GemsEarned: 15, XPEarned: 150, AverageScore: 75, LastPracticed: reportTime},
		},
		Categories: []analytics.CategoryStats{
			{Category: "past", Sessions: 2, Questions: 20, CorrectAnswers: 15, AccuracyPercentage: 75, GemsEarned: 15, Topics: 1},
		},
		Totals: analytics.SessionTotals{Sessions: 2, Questions: 20, CorrectAnswers: 15, AccuracyPercentage: 75, GemsEarned: 15, XPEarned: 150, AverageDurationSec: 270},
	}
}
