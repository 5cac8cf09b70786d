package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Policy holds every pedagogical threshold the engine applies. Changing a
// threshold never requires touching aggregation code.
type Policy struct {
	// AnalysisDays is the lookback window of the breakdowns and the matrix.
	AnalysisDays int `yaml:"analysisDays" json:"analysisDays"`

	// A matrix cell needs practice when its accuracy is below
	// PracticeAccuracyThreshold and it has at least PracticeMinAttempts.
	PracticeAccuracyThreshold int `yaml:"practiceAccuracyThreshold" json:"practiceAccuracyThreshold"`
	PracticeMinAttempts       int `yaml:"practiceMinAttempts" json:"practiceMinAttempts"`

	// SlowResponseMs is the mean response time above which speed practice
	// is suggested.
	SlowResponseMs int `yaml:"slowResponseMs" json:"slowResponseMs"`

	// Overall accuracy bands: below FoundationalBelow is foundational,
	// from StretchFrom up is stretch, anything between is encouragement.
	FoundationalBelow int `yaml:"foundationalBelow" json:"foundationalBelow"`
	StretchFrom       int `yaml:"stretchFrom" json:"stretchFrom"`

	MaxRecommendations   int `yaml:"maxRecommendations" json:"maxRecommendations"`
	WeeklyTargetAttempts int `yaml:"weeklyTargetAttempts" json:"weeklyTargetAttempts"`

	// Weakness ranking procedure parameters. Groups with fewer than
	// WeaknessMinAttempts attempts are never ranked.
	WeaknessLimit         int `yaml:"weaknessLimit" json:"weaknessLimit"`
	WeaknessDays          int `yaml:"weaknessDays" json:"weaknessDays"`
	WeaknessMinAttempts   int `yaml:"weaknessMinAttempts" json:"weaknessMinAttempts"`
	WeaknessAccuracyBelow int `yaml:"weaknessAccuracyBelow" json:"weaknessAccuracyBelow"`

	// Common mistakes procedure parameters. MistakeDays of 0 means the whole
	// history.
	MistakeLimit int `yaml:"mistakeLimit" json:"mistakeLimit"`
	MistakeDays  int `yaml:"mistakeDays" json:"mistakeDays"`
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		AnalysisDays:              30,
		PracticeAccuracyThreshold: 70,
		PracticeMinAttempts:       3,
		SlowResponseMs:            8000,
		FoundationalBelow:         60,
		StretchFrom:               80,
		MaxRecommendations:        5,
		WeeklyTargetAttempts:      10,
		WeaknessLimit:             5,
		WeaknessDays:              90,
		WeaknessMinAttempts:       5,
		WeaknessAccuracyBelow:     70,
		MistakeLimit:              10,
		MistakeDays:               0,
	}
}

// NeedsPractice reports whether a matrix cell with these numbers should be
// flagged for practice.
func (p Policy) NeedsPractice(accuracy, total int) bool {
	return accuracy < p.PracticeAccuracyThreshold && total >= p.PracticeMinAttempts
}

func (p Policy) analysisWindow() time.Duration { return days(p.AnalysisDays) }
func (p Policy) weaknessWindow() time.Duration { return days(p.WeaknessDays) }
func (p Policy) mistakeWindow() time.Duration  { return days(p.MistakeDays) }

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// LoadPolicy reads a YAML (or JSON) policy file, validates it against the
// policy schema and overlays it on DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy: %w", err)
	}
	p, err := ParsePolicy(raw)
	if err != nil {
		return Policy{}, &ErrInvalidPolicy{Path: path, Err: err}
	}
	return p, nil
}

// ParsePolicy decodes and validates policy bytes. Keys that are absent keep
// their default values.
func ParsePolicy(raw []byte) (Policy, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Policy{}, fmt.Errorf("decode: %w", err)
	}
	if doc == nil {
		return DefaultPolicy(), nil
	}

	compiled, err := policySchema()
	if err != nil {
		return Policy{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(normalizeYAML(doc)); err != nil {
		return Policy{}, fmt.Errorf("schema validation failed: %w", err)
	}

	p := DefaultPolicy()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Policy{}, fmt.Errorf("decode: %w", err)
	}
	if p.FoundationalBelow > p.StretchFrom {
		return Policy{}, fmt.Errorf("foundationalBelow (%d) must not exceed stretchFrom (%d)", p.FoundationalBelow, p.StretchFrom)
	}
	return p, nil
}

// policySchemaDefinition constrains policy files.
var policySchemaDefinition = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"analysisDays":              intRange(1, 3650),
		"practiceAccuracyThreshold": intRange(0, 100),
		"practiceMinAttempts":       intRange(1, 1000),
		"slowResponseMs":            intRange(0, 600000),
		"foundationalBelow":         intRange(0, 100),
		"stretchFrom":               intRange(0, 100),
		"maxRecommendations":        intRange(1, 50),
		"weeklyTargetAttempts":      intRange(0, 10000),
		"weaknessLimit":             intRange(0, 100),
		"weaknessDays":              intRange(1, 3650),
		"weaknessMinAttempts":       intRange(1, 1000),
		"weaknessAccuracyBelow":     intRange(0, 100),
		"mistakeLimit":              intRange(0, 100),
		"mistakeDays":               intRange(0, 3650),
	},
}

func intRange(lo, hi int) map[string]any {
	return map[string]any{"type": "integer", "minimum": lo, "maximum": hi}
}

var (
	compiledOnce   sync.Once
	compiledPolicy *jsonschema.Schema
	compileErr     error
)

func policySchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go
		// maps with int values, so round-trip through encoding/json.
		defBytes, err := json.Marshal(policySchemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://policy.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledPolicy, compileErr = c.Compile(url)
	})
	return compiledPolicy, compileErr
}

// normalizeYAML converts a decoded YAML document into the JSON value model
// the validator understands.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	case int:
		return json.Number(fmt.Sprint(t))
	case float64:
		return json.Number(fmt.Sprint(t))
	default:
		return v
	}
}
