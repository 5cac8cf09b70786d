package store

import "time"

// AttemptQuery selects one student's attempts in a language created at or
// after Since. A zero Since means no lower bound.
type AttemptQuery struct {
	StudentID string
	Language  string
	Since     time.Time
}

// GrammarAttempt is one row of the tense-only attempt stream.
type GrammarAttempt struct {
	ID              string   `db:"id"`
	StudentID       string   `db:"student_id"`
	Language        string   `db:"language"`
	Tense           string   `db:"tense"`
	VerbType        string   `db:"verb_type"`
	BaseVerb        string   `db:"base_verb"`
	Correct         bool     `db:"correct"`
	UserAnswer      string   `db:"user_answer"`
	ExpectedAnswer  string   `db:"expected_answer"`
	HintUsed        bool     `db:"hint_used"`
	ResponseTimeMs  *int64   `db:"response_time_ms"`
	ComplexityScore *float64 `db:"complexity_score"`
	CreatedAtMs     int64    `db:"created_at"`
}

// CreatedAt returns the creation time in UTC.
func (a GrammarAttempt) CreatedAt() time.Time { return fromMillis(a.CreatedAtMs) }

// Verb is one row of the verb reference table.
type Verb struct {
	ID              string   `db:"id"`
	Language        string   `db:"language"`
	Infinitive      string   `db:"infinitive"`
	VerbType        string   `db:"verb_type"`
	ComplexityScore *float64 `db:"complexity_score"`
}

// PracticeAttemptData is the write shape of a person-level attempt.
type PracticeAttemptData struct {
	ID             string
	StudentID      string
	VerbID         string
	Tense          string
	Person         string
	Correct        bool
	UserAnswer     string
	ExpectedAnswer string
	HintUsed       bool
	ResponseTimeMs *int64
	CreatedAt      time.Time
}

// PracticeAttempt is a person-level attempt joined to its verb.
type PracticeAttempt struct {
	ID              string   `db:"id"`
	StudentID       string   `db:"student_id"`
	Tense           string   `db:"tense"`
	Person          string   `db:"person"`
	Correct         bool     `db:"correct"`
	ResponseTimeMs  *int64   `db:"response_time_ms"`
	CreatedAtMs     int64    `db:"created_at"`
	Language        string   `db:"language"`
	BaseVerb        string   `db:"base_verb"`
	VerbType        string   `db:"verb_type"`
	ComplexityScore *float64 `db:"complexity_score"`
}

// CreatedAt returns the creation time in UTC.
func (a PracticeAttempt) CreatedAt() time.Time { return fromMillis(a.CreatedAtMs) }

// OverviewRow is the per-(student, language) aggregate. Averages are nil
// when no attempt carried the measurement.
type OverviewRow struct {
	TotalAttempts     int      `db:"total_attempts"`
	CorrectAttempts   int      `db:"correct_attempts"`
	AvgResponseTimeMs *float64 `db:"avg_response_time_ms"`
	AvgComplexity     *float64 `db:"avg_complexity"`
	FirstPracticeMs   *int64   `db:"first_practice_at"`
	LastPracticeMs    *int64   `db:"last_practice_at"`
	AttemptsThisWeek  int      `db:"-"`
	AttemptsToday     int      `db:"-"`
}

// WeaknessQuery parameterizes the weakness ranking procedure.
type WeaknessQuery struct {
	Since       time.Time
	MinAttempts int
	Limit       int
}

// Weakness dimensions.
const (
	DimensionTense    = "tense"
	DimensionVerbType = "verb_type"
)

// WeaknessRow is one ranked dimension group.
type WeaknessRow struct {
	Dimension       string `db:"-"`
	Name            string `db:"name"`
	TotalAttempts   int    `db:"total_attempts"`
	CorrectAttempts int    `db:"correct_attempts"`
}

// MistakeRow is one grouped wrong-answer pattern. BaseVerb is nil when the
// referenced verb no longer exists.
type MistakeRow struct {
	BaseVerb        *string `db:"base_verb"`
	Tense           string  `db:"tense"`
	Person          string  `db:"person"`
	ExpectedAnswer  string  `db:"expected_answer"`
	UserAnswer      string  `db:"user_answer"`
	OccurrenceCount int     `db:"occurrence_count"`
	LastMistakeMs   int64   `db:"last_mistake_at"`
}

// LastMistakeAt returns the most recent occurrence in UTC.
func (m MistakeRow) LastMistakeAt() time.Time { return fromMillis(m.LastMistakeMs) }

// RewardData is the write shape of a gems/XP award.
type RewardData struct {
	StudentID string
	Gems      int
	XP        int
	Streak    int
	AwardedAt time.Time
}

// RewardRow is the per-student reward currency summary.
type RewardRow struct {
	Awards       int      `db:"awards"`
	TotalGems    int      `db:"total_gems"`
	TotalXP      int      `db:"total_xp"`
	AvgStreak    *float64 `db:"avg_streak"`
	LastAwardMs  *int64   `db:"last_award_at"`
	GemsToday    int      `db:"-"`
	XPToday      int      `db:"-"`
	GemsThisWeek int      `db:"-"`
	XPThisWeek   int      `db:"-"`
}

// SessionRecord is one practice session.
type SessionRecord struct {
	ID              string `db:"id"`
	StudentID       string `db:"student_id"`
	Language        string `db:"language"`
	TopicSlug       string `db:"topic_slug"`
	TopicTitle      string `db:"topic_title"`
	Category        string `db:"category"`
	Completed       bool   `db:"completed"`
	FinalScore      int    `db:"final_score"`
	Questions       int    `db:"questions"`
	CorrectAnswers  int    `db:"correct_answers"`
	DurationSeconds int    `db:"duration_seconds"`
	GemsEarned      int    `db:"gems_earned"`
	XPEarned        int    `db:"xp_earned"`
	CreatedAtMs     int64  `db:"created_at"`
}

// CreatedAt returns the session time in UTC.
func (r SessionRecord) CreatedAt() time.Time { return fromMillis(r.CreatedAtMs) }

// MillisPtr converts an optional timestamp to UTC.
func MillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMillis(*ms)
	return &t
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}
