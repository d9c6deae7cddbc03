package cmd

import (
	"context"
	"fmt"

	"github.com/nlebele/dyscreen/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <subject-id>",
	Short: "Remove a subject's screening result and survey",
	Long:  "Deletes the stored result and survey response for one subject so they can be screened again.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.ResultRepo().Delete(ctx, subjectID); err != nil {
			return fmt.Errorf("delete result: %w", err)
		}
		if err := s.SurveyRepo().Delete(ctx, subjectID); err != nil {
			return fmt.Errorf("delete survey: %w", err)
		}

		fmt.Printf("Cleared screening data for subject %s\n", subjectID)
		return nil
	},
}
