package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all of a student's data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete every record of student %s? [y/N] ", student)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.DeleteStudent(cmd.Context(), student)
		if err != nil {
			return fmt.Errorf("reset student: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d records.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("student", "", "Student ID (required)")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	_ = resetCmd.MarkFlagRequired("student")
}
