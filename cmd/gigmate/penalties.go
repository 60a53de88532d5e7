package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/output"
)

var penaltiesCmd = &cobra.Command{
	Use:   "penalties",
	Short: "List penalties on your account",
	RunE:  runPenalties,
}

func init() {
	rootCmd.AddCommand(penaltiesCmd)
}

func runPenalties(_ *cobra.Command, _ []string) error {
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

	penalties, err := client.Penalties(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list penalties: %w", err)
	}

	output.RenderPenalties(os.Stdout, printer, penalties)
	return nil
}
