package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/api"
	"github.com/danialhaz/gigmate/internal/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

var (
	applyCoverMessage string
	applyExpectedRate float64
)

func init() {
	applyCmd.Flags().StringVarP(&applyCoverMessage, "message", "m", "", "Cover message sent with the application")
	applyCmd.Flags().Float64Var(&applyExpectedRate, "rate", 0, "Expected hourly rate")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, args []string) error {
	jobID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	req := types.ApplicationRequest{
		JobID:        jobID,
		CoverMessage: applyCoverMessage,
	}
	if applyExpectedRate > 0 {
		req.ExpectedRate = &applyExpectedRate
	}

	record, err := client.Apply(context.Background(), req)
	if err != nil {
		if api.IsKind(err, api.KindValidation) {
			return fmt.Errorf("application rejected: %w", err)
		}
		return fmt.Errorf("failed to apply: %w", err)
	}

	printer.Success("Applied to %s (status: %s)", record.JobTitle, record.Status)
	return nil
}
