package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/gramlens/internal/analytics"
	"github.com/abhisek/gramlens/internal/report"
)

// Output formats of the stats command.
const (
	formatText = "text"
	formatJSON = "json"
	formatXLSX = "xlsx"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a student's grammar analytics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("student", "", "Student ID (required)")
	statsCmd.Flags().StringP("language", "l", "es", "Language code")
	statsCmd.Flags().StringP("format", "f", formatText, "Output format: text, json or xlsx")
	statsCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout (required for xlsx)")
	statsCmd.Flags().String("policy", "", "YAML or JSON policy file overriding the default thresholds")
	statsCmd.Flags().Bool("sessions", false, "Include the practice session breakdown")
	_ = statsCmd.MarkFlagRequired("student")
}

// statsOutput is the JSON shape of the stats command.
type statsOutput struct {
	*analytics.StudentGrammarAnalytics
	Sessions *analytics.SessionBreakdown `json:"sessions,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	student, _ := cmd.Flags().GetString("student")
	language, _ := cmd.Flags().GetString("language")
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	policyPath, _ := cmd.Flags().GetString("policy")
	withSessions, _ := cmd.Flags().GetBool("sessions")

	switch format {
	case formatText, formatJSON:
	case formatXLSX:
		if out == "" {
			return fmt.Errorf("--out is required for %s output", formatXLSX)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	policy := analytics.DefaultPolicy()
	if policyPath != "" {
		p, err := analytics.LoadPolicy(policyPath)
		if err != nil {
			return err
		}
		policy = p
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	engine := analytics.NewEngine(s, analytics.WithPolicy(policy), analytics.WithLogger(log))
	result, err := engine.StudentGrammarAnalytics(ctx, student, language)
	if err != nil {
		return fmt.Errorf("compute analytics: %w", err)
	}

	var sessions *analytics.SessionBreakdown
	if withSessions {
		sessions, err = engine.SessionBreakdown(ctx, student, language)
		if err != nil {
			return fmt.Errorf("compute session breakdown: %w", err)
		}
	}

	w := cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	h := report.Header{StudentID: student, Language: language, Generated: time.Now()}
	if err := render(w, format, h, policy, result, sessions); err != nil {
		return err
	}
	if out != "" {
		log.Infow("report written", "path", out, "format", format)
	}
	return nil
}

func render(w io.Writer, format string, h report.Header, p analytics.Policy, a *analytics.StudentGrammarAnalytics, sessions *analytics.SessionBreakdown) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statsOutput{StudentGrammarAnalytics: a, Sessions: sessions})
	case formatXLSX:
		return report.WriteWorkbook(w, h, a, sessions)
	default:
		return report.NewText(p).Write(w, h, a, sessions)
	}
}
