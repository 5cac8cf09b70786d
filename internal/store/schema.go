package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	attemptsTable         = "grammar_attempts"
	verbsTable            = "grammar_verbs"
	practiceAttemptsTable = "grammar_practice_attempts"
	rewardsTable          = "grammar_rewards"
	sessionsTable         = "grammar_sessions"
)

// Timestamps are stored as unix milliseconds (BIGINT) so range filters
// compare integers on every driver.

var (
	// GrammarAttemptsColumns holds the tense-only attempt stream.
	GrammarAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString, Default: ""},
		{Name: "verb_type", Type: field.TypeString, Default: ""},
		{Name: "base_verb", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "expected_answer", Type: field.TypeString, Default: ""},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
		{Name: "response_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "complexity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// GrammarAttemptsTable is the table for the tense-only stream.
	GrammarAttemptsTable = &schema.Table{
		Name:       attemptsTable,
		Columns:    GrammarAttemptsColumns,
		PrimaryKey: []*schema.Column{GrammarAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarattempt_student_id_language_created_at",
				Unique:  false,
				Columns: []*schema.Column{GrammarAttemptsColumns[1], GrammarAttemptsColumns[2], GrammarAttemptsColumns[12]},
			},
		},
	}

	// GrammarVerbsColumns holds the verb reference table.
	GrammarVerbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "infinitive", Type: field.TypeString},
		{Name: "verb_type", Type: field.TypeString},
		{Name: "complexity_score", Type: field.TypeFloat64, Nullable: true},
	}
	// GrammarVerbsTable is the verb reference table.
	GrammarVerbsTable = &schema.Table{
		Name:       verbsTable,
		Columns:    GrammarVerbsColumns,
		PrimaryKey: []*schema.Column{GrammarVerbsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarverb_language_infinitive",
				Unique:  true,
				Columns: []*schema.Column{GrammarVerbsColumns[1], GrammarVerbsColumns[2]},
			},
		},
	}

	// GrammarPracticeAttemptsColumns holds the person-level attempt stream.
	// verb_id deliberately carries no foreign key: deleting a verb leaves
	// dangling attempts behind.
	GrammarPracticeAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "verb_id", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString, Default: ""},
		{Name: "person", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "expected_answer", Type: field.TypeString, Default: ""},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
		{Name: "response_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// GrammarPracticeAttemptsTable is the table for the person-level stream.
	GrammarPracticeAttemptsTable = &schema.Table{
		Name:       practiceAttemptsTable,
		Columns:    GrammarPracticeAttemptsColumns,
		PrimaryKey: []*schema.Column{GrammarPracticeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarpracticeattempt_student_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GrammarPracticeAttemptsColumns[1], GrammarPracticeAttemptsColumns[10]},
			},
			{
				Name:    "grammarpracticeattempt_verb_id",
				Unique:  false,
				Columns: []*schema.Column{GrammarPracticeAttemptsColumns[2]},
			},
		},
	}

	// GrammarRewardsColumns holds the gems/XP award ledger.
	GrammarRewardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "gems", Type: field.TypeInt},
		{Name: "xp", Type: field.TypeInt},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "awarded_at", Type: field.TypeInt64},
	}
	// GrammarRewardsTable is the gems/XP award ledger.
	GrammarRewardsTable = &schema.Table{
		Name:       rewardsTable,
		Columns:    GrammarRewardsColumns,
		PrimaryKey: []*schema.Column{GrammarRewardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarreward_student_id_awarded_at",
				Unique:  false,
				Columns: []*schema.Column{GrammarRewardsColumns[1], GrammarRewardsColumns[5]},
			},
		},
	}

	// GrammarSessionsColumns holds completed practice sessions.
	GrammarSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "topic_slug", Type: field.TypeString, Default: ""},
		{Name: "topic_title", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "final_score", Type: field.TypeInt, Default: 0},
		{Name: "questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "gems_earned", Type: field.TypeInt, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// GrammarSessionsTable is the table of practice sessions.
	GrammarSessionsTable = &schema.Table{
		Name:       sessionsTable,
		Columns:    GrammarSessionsColumns,
		PrimaryKey: []*schema.Column{GrammarSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "grammarsession_student_id_language",
				Unique:  false,
				Columns: []*schema.Column{GrammarSessionsColumns[1], GrammarSessionsColumns[2]},
			},
		},
	}

	// Tables holds every table migrated by Open.
	Tables = []*schema.Table{
		GrammarAttemptsTable,
		GrammarVerbsTable,
		GrammarPracticeAttemptsTable,
		GrammarRewardsTable,
		GrammarSessionsTable,
	}
)
