package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gramlens/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write deterministic demo practice data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := seed.DefaultConfig()
		cfg.StudentID, _ = cmd.Flags().GetString("student")
		cfg.Language, _ = cmd.Flags().GetString("language")
		cfg.Days, _ = cmd.Flags().GetInt("days")
		cfg.Attempts, _ = cmd.Flags().GetInt("attempts")
		cfg.SessionSize, _ = cmd.Flags().GetInt("session-size")
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")

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

		res, err := seed.NewGenerator(s, log).Run(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Seeded %d attempts (%d correct) in %d sessions, %d gems, %d XP.\n",
			res.Attempts, res.Correct, res.Sessions, res.Gems, res.XP)
		fmt.Fprintln(cmd.OutOrStdout(), res.StudentID)
		return nil
	},
}

func init() {
	d := seed.DefaultConfig()
	seedCmd.Flags().String("student", "", "Student ID (generated from --seed when empty)")
	seedCmd.Flags().StringP("language", "l", d.Language, "Language code")
	seedCmd.Flags().Int("days", d.Days, "Days of practice history")
	seedCmd.Flags().Int("attempts", d.Attempts, "Number of answers")
	seedCmd.Flags().Int("session-size", d.SessionSize, "Answers per practice session")
	seedCmd.Flags().Int64("seed", d.Seed, "Random seed")
}
