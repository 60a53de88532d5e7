package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/output"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate <id>",
	Short: "Show the full record behind a candidate search result",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidate,
}

func init() {
	rootCmd.AddCommand(candidateCmd)
}

func runCandidate(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid candidate id: %w", err)
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

	detail, err := client.GetCandidate(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch candidate: %w", err)
	}

	output.RenderCandidateDetail(printer, detail)
	return nil
}
