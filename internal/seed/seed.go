// Package seed writes deterministic demo practice data through the store so
// the analytics have something to show.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/gramlens/internal/gems"
	"github.com/abhisek/gramlens/internal/store"
)

// ErrUnsupportedLanguage is returned for a language without a demo catalog.
var ErrUnsupportedLanguage = errors.New("no demo catalog for language")

// Store is the write side the generator needs.
type Store interface {
	gems.Recorder
	UpsertVerb(ctx context.Context, v store.Verb) (string, error)
	AppendAttempt(ctx context.Context, a store.GrammarAttempt) error
	AppendPracticeAttempt(ctx context.Context, data store.PracticeAttemptData) error
	AppendSession(ctx context.Context, r store.SessionRecord) error
}

// Config controls what gets generated. The same Config always produces the
// same data.
type Config struct {
	// StudentID is generated from Seed when empty.
	StudentID string
	Language  string
	// Days is how far back the first session starts.
	Days int
	// Attempts is the total number of answers.
	Attempts int
	// SessionSize is the number of answers per session.
	SessionSize int
	Seed        int64
	// Now anchors the time span; the zero value means time.Now.
	Now time.Time
}

// DefaultConfig returns a month of practice in Spanish.
func DefaultConfig() Config {
	return Config{
		Language:    "es",
		Days:        30,
		Attempts:    200,
		SessionSize: 10,
		Seed:        1,
	}
}

// Result summarizes what was written.
type Result struct {
	StudentID string
	Attempts  int
	Correct   int
	Sessions  int
	Gems      int
	XP        int
}

// Generator writes demo data.
type Generator struct {
	store Store
	log   *zap.SugaredLogger
}

// NewGenerator creates a Generator writing to s.
func NewGenerator(s Store, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{store: s, log: log}
}

// Run generates cfg.Attempts answers grouped into practice sessions spread
// evenly over cfg.Days. Every answer is written to both attempt streams and
// correct answers earn rewards.
func (g *Generator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Language != "es" {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedLanguage, cfg.Language)
	}
	if cfg.Attempts <= 0 {
		return nil, fmt.Errorf("attempts must be positive, got %d", cfg.Attempts)
	}
	if cfg.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cfg.Days)
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultConfig().SessionSize
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.StudentID == "" {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generate student id: %w", err)
		}
		cfg.StudentID = id.String()
	}

	verbIDs := make(map[string]string, len(spanishVerbs))
	for _, v := range spanishVerbs {
		complexity := v.Complexity
		id, err := g.store.UpsertVerb(ctx, store.Verb{
			Language:        cfg.Language,
			Infinitive:      v.Infinitive,
			VerbType:        v.VerbType,
			ComplexityScore: &complexity,
		})
		if err != nil {
			return nil, fmt.Errorf("seed verb %s: %w", v.Infinitive, err)
		}
		verbIDs[v.Infinitive] = id
	}

	res := &Result{StudentID: cfg.StudentID}
	rewards := gems.NewService(g.store, cfg.StudentID)
	topics := spanishTopics()

	sessions := (cfg.Attempts + cfg.SessionSize - 1) / cfg.SessionSize
	span := time.Duration(cfg.Days) * 24 * time.Hour
	step := span / time.Duration(sessions)
	start := now.Add(-span)

	for s := 0; s < sessions; s++ {
		questions := cfg.SessionSize
		if remaining := cfg.Attempts - res.Attempts; remaining < questions {
			questions = remaining
		}
		tense := spanishTenses[rng.Intn(len(spanishTenses))]
		at := start.Add(time.Duration(s)*step + time.Duration(rng.Intn(3600))*time.Second)
		// Students get a little better over the month.
		progress := 0.1 * float64(s) / float64(sessions)

		rewards.ResetSession()
		var correct, durationMs int
		for q := 0; q < questions; q++ {
			a := g.answer(rng, tense, progress)
			var responseMs *int64
			if rng.Float64() >= 0.1 {
				ms := int64(1500 + rng.Intn(7000))
				if !a.correct {
					ms += 2000
				}
				responseMs = &ms
				durationMs += int(ms)
			}
			hint := rng.Float64() < 0.05

			complexity := a.verb.Complexity
			err := g.store.AppendAttempt(ctx, store.GrammarAttempt{
				StudentID:       cfg.StudentID,
				Language:        cfg.Language,
				Tense:           tense,
				VerbType:        a.verb.VerbType,
				BaseVerb:        a.verb.Infinitive,
				Correct:         a.correct,
				UserAnswer:      a.given,
				ExpectedAnswer:  a.expected,
				HintUsed:        hint,
				ResponseTimeMs:  responseMs,
				ComplexityScore: &complexity,
				CreatedAtMs:     at.UnixMilli(),
			})
			if err != nil {
				return nil, err
			}
			err = g.store.AppendPracticeAttempt(ctx, store.PracticeAttemptData{
				StudentID:      cfg.StudentID,
				VerbID:         verbIDs[a.verb.Infinitive],
				Tense:          tense,
				Person:         spanishPersons[a.person],
				Correct:        a.correct,
				UserAnswer:     a.given,
				ExpectedAnswer: a.expected,
				HintUsed:       hint,
				ResponseTimeMs: responseMs,
				CreatedAt:      at,
			})
			if err != nil {
				return nil, err
			}
			if _, err := rewards.RecordAnswer(ctx, a.correct, at); err != nil {
				return nil, fmt.Errorf("record reward: %w", err)
			}

			if a.correct {
				correct++
			}
			res.Attempts++
			at = at.Add(time.Duration(5+rng.Intn(25)) * time.Second)
		}

		gemsEarned, xpEarned := rewards.SessionTotals()
		t := topics[tense]
		err := g.store.AppendSession(ctx, store.SessionRecord{
			StudentID:       cfg.StudentID,
			Language:        cfg.Language,
			TopicSlug:       t.Slug,
			TopicTitle:      t.Title,
			Category:        t.Category,
			Completed:       rng.Float64() >= 0.05,
			FinalScore:      int(math.Round(float64(correct) * 100 / float64(questions))),
			Questions:       questions,
			CorrectAnswers:  correct,
			DurationSeconds: durationMs/1000 + 5*questions,
			GemsEarned:      gemsEarned,
			XPEarned:        xpEarned,
			CreatedAtMs:     at.UnixMilli(),
		})
		if err != nil {
			return nil, err
		}

		res.Correct += correct
		res.Sessions++
		res.Gems += gemsEarned
		res.XP += xpEarned
		g.log.Debugw("seeded session", "student", cfg.StudentID, "topic", t.Slug, "questions", questions, "correct", correct)
	}

	g.log.Infow("seed complete", "student", cfg.StudentID, "attempts", res.Attempts, "sessions", res.Sessions)
	return res, nil
}

type answer struct {
	verb     verbEntry
	person   int
	correct  bool
	expected string
	given    string
}

func (g *Generator) answer(rng *rand.Rand, tense string, progress float64) answer {
	v := spanishVerbs[rng.Intn(len(spanishVerbs))]
	person := rng.Intn(len(spanishPersons))
	p := tenseSkill[tense] + verbTypeSkill[v.VerbType] + progress
	p = math.Max(0.05, math.Min(0.98, p))

	a := answer{verb: v, person: person, expected: v.Forms[tense][person]}
	a.correct = rng.Float64() < p
	if a.correct {
		a.given = a.expected
		return a
	}
	a.given = wrongForm(v, tense, person)
	return a
}

// wrongForm returns a plausible mistake: a known slip when there is one,
// otherwise the form of the next person.
func wrongForm(v verbEntry, tense string, person int) string {
	expected := v.Forms[tense][person]
	if slips, ok := spanishSlips[v.Infinitive][tense]; ok && slips[person] != expected {
		return slips[person]
	}
	forms := v.Forms[tense]
	for i := 1; i < len(forms); i++ {
		if f := forms[(person+i)%len(forms)]; f != expected {
			return f
		}
	}
	return expected + "s"
}
