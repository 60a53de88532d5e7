package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/output"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List your submitted applications",
	RunE:  runApplications,
}

func init() {
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(_ *cobra.Command, _ []string) error {
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

	records, err := client.MyApplications(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	output.RenderApplications(os.Stdout, printer, records)
	return nil
}
