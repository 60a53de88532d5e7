package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show scored job recommendations",
	Long:  "Fetches AI-scored job suggestions for your profile, with a per-factor match breakdown.",
	RunE:  runRecommend,
}

var (
	recommendCount    int
	recommendPoolSize int
	recommendDetails  bool
)

// detailFetchConcurrency bounds parallel posting fetches when --details is set.
const detailFetchConcurrency = 4

func init() {
	recommendCmd.Flags().IntVar(&recommendCount, "count", 5, "Number of recommendations to fetch")
	recommendCmd.Flags().IntVar(&recommendPoolSize, "pool-size", 0, "Candidate posting pool size considered by the backend")
	recommendCmd.Flags().BoolVar(&recommendDetails, "details", false, "Fetch each recommended posting's full description")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
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
	ctx := context.Background()

	recs, err := client.GetRecommendations(ctx, recommendCount, recommendPoolSize)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	output.RenderRecommendations(os.Stdout, printer, recs)
	if !recommendDetails || len(recs) == 0 {
		return nil
	}

	details := make([]*types.JobDetail, len(recs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(detailFetchConcurrency)
	for i, rec := range recs {
		i, rec := i, rec
		group.Go(func() error {
			detail, err := client.GetJob(ctx, rec.Job.ID)
			if err != nil {
				return fmt.Errorf("failed to fetch posting %s: %w", rec.Job.ID, err)
			}
			details[i] = detail
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, detail := range details {
		printer.Header(detail.Title)
		printer.Print("Why: %s", recs[i].Reason)
		if len(detail.RequiredSkills) > 0 {
			printer.Print("Skills: %s", strings.Join(detail.RequiredSkills, ", "))
		}
		if len(recs[i].MissingSkills) > 0 {
			printer.Print("You are missing: %s", printer.Dim(strings.Join(recs[i].MissingSkills, ", ")))
		}
		if detail.Description != "" {
			printer.Print("\n%s", detail.Description)
		}
	}
	return nil
}
