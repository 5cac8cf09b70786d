package analytics

import (
	"time"

	"github.com/abhisek/gramlens/internal/gems"
)

// VerbType is the morphological class of a verb.
type VerbType string

const (
	VerbRegular      VerbType = "regular"
	VerbIrregular    VerbType = "irregular"
	VerbStemChanging VerbType = "stem_changing"
)

// AllVerbTypes returns the verb classes in display order.
func AllVerbTypes() []VerbType {
	return []VerbType{VerbRegular, VerbIrregular, VerbStemChanging}
}

// Valid reports whether t is one of the known verb classes.
func (t VerbType) Valid() bool {
	switch t {
	case VerbRegular, VerbIrregular, VerbStemChanging:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the verb class.
func (t VerbType) DisplayName() string {
	switch t {
	case VerbStemChanging:
		return "stem-changing"
	default:
		return string(t)
	}
}

// Overview holds the top-line numbers for one student and language.
type Overview struct {
	TotalAttempts         int        `json:"totalAttempts"`
	CorrectAttempts       int        `json:"correctAttempts"`
	AccuracyPercentage    int        `json:"accuracyPercentage"`
	AttemptsThisWeek      int        `json:"attemptsThisWeek"`
	AttemptsToday         int        `json:"attemptsToday"`
	AverageResponseTimeMs int        `json:"averageResponseTimeMs"`
	AverageComplexity     float64    `json:"averageComplexity"`
	FirstPracticeAt       *time.Time `json:"firstPracticeAt"`
	LastPracticeAt        *time.Time `json:"lastPracticeAt"`
}

// TensePerformance is one row of the tense breakdown. TimedAttempts counts
// the attempts that carried a response time; when it is zero the average
// is 0 because there is no timing data.
type TensePerformance struct {
	Tense                 string     `json:"tense"`
	TotalAttempts         int        `json:"totalAttempts"`
	CorrectAttempts       int        `json:"correctAttempts"`
	AccuracyPercentage    int        `json:"accuracyPercentage"`
	AverageResponseTimeMs int        `json:"averageResponseTimeMs"`
	TimedAttempts         int        `json:"timedAttempts"`
	LastPracticed         *time.Time `json:"lastPracticed"`
}

// VerbTypePerformance is one row of the verb class breakdown.
type VerbTypePerformance struct {
	VerbType              VerbType `json:"verbType"`
	TotalAttempts         int      `json:"totalAttempts"`
	CorrectAttempts       int      `json:"correctAttempts"`
	AccuracyPercentage    int      `json:"accuracyPercentage"`
	AverageResponseTimeMs int      `json:"averageResponseTimeMs"`
	TimedAttempts         int      `json:"timedAttempts"`
	AverageComplexity     float64  `json:"averageComplexity"`
}

// MatrixCell is one observed (tense, person) combination.
type MatrixCell struct {
	Tense                 string `json:"tense"`
	Person                string `json:"person"`
	TotalAttempts         int    `json:"totalAttempts"`
	CorrectAttempts       int    `json:"correctAttempts"`
	AccuracyPercentage    int    `json:"accuracyPercentage"`
	AverageResponseTimeMs int    `json:"averageResponseTimeMs"`
	TimedAttempts         int    `json:"timedAttempts"`
	NeedsPractice         bool   `json:"needsPractice"`
}

// Weakness is a low-ranked tense or verb class.
type Weakness struct {
	Type               string `json:"type"` // "tense" or "verb_type"
	Name               string `json:"name"`
	TotalAttempts      int    `json:"totalAttempts"`
	CorrectAttempts    int    `json:"correctAttempts"`
	AccuracyPercentage int    `json:"accuracyPercentage"`
	IsWeakness         bool   `json:"isWeakness"`
}

// MistakePattern is a recurring wrong answer for one verb form.
type MistakePattern struct {
	BaseVerb        string    `json:"baseVerb"`
	Tense           string    `json:"tense"`
	Person          string    `json:"person"`
	ExpectedAnswer  string    `json:"expectedAnswer"`
	UserAnswer      string    `json:"userAnswer"`
	OccurrenceCount int       `json:"occurrenceCount"`
	LastMistakeAt   time.Time `json:"lastMistakeAt"`
}

// StudentGrammarAnalytics is the full analytics payload for one student and
// language. Every slice is non-nil.
type StudentGrammarAnalytics struct {
	Overview            Overview              `json:"overview"`
	TensePerformance    []TensePerformance    `json:"tensePerformance"`
	VerbTypePerformance []VerbTypePerformance `json:"verbTypePerformance"`
	ConjugationMatrix   []MatrixCell          `json:"conjugationMatrix"`
	Weaknesses          []Weakness            `json:"weaknesses"`
	CommonMistakes      []MistakePattern      `json:"commonMistakes"`
	GemsAnalytics       gems.Summary          `json:"gemsAnalytics"`
	Recommendations     []string              `json:"recommendations"`
}
