package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/format"
	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs [query]",
	Short: "Search job postings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobs,
}

var jobCmd = &cobra.Command{
	Use:   "job <id>",
	Short: "Show a full job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

var (
	jobsLocation string
	jobsType     string
	jobsPage     int
	jobsPageSize int
)

func init() {
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Filter by location text")
	jobsCmd.Flags().StringVar(&jobsType, "type", "", "Filter by job type: gig, part_time, full_time, contract")
	jobsCmd.Flags().IntVar(&jobsPage, "page", 1, "Page to fetch")
	jobsCmd.Flags().IntVar(&jobsPageSize, "page-size", 0, "Results per page")

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobs(_ *cobra.Command, args []string) error {
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

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	pageSize := jobsPageSize
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}

	page, err := client.SearchJobs(context.Background(), types.JobQuery{
		Query:    query,
		Location: jobsLocation,
		Type:     types.JobType(jobsType),
		Page:     jobsPage,
		PageSize: pageSize,
	})
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}

	output.RenderJobs(os.Stdout, printer, page)
	return nil
}

func runJob(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
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

	job, err := client.GetJob(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch job: %w", err)
	}

	printer.Header(job.Title)
	printer.Print("Company:    %s", job.CompanyName)
	printer.Print("Type:       %s", job.Type)
	printer.Print("Salary:     %s", format.SalaryRange(job.SalaryMin, job.SalaryMax, job.Currency, job.Period))
	if job.Location != "" {
		printer.Print("Location:   %s %s", job.Location, printer.Dim(format.Distance(job.DistanceKM)))
	}
	printer.Print("Posted:     %s", job.PostedAt.Format("2006-01-02"))
	printer.Print("Applicants: %d", job.Applicants)
	if len(job.RequiredSkills) > 0 {
		printer.Print("Skills:     %s", strings.Join(job.RequiredSkills, ", "))
	}
	if job.Description != "" {
		printer.Print("\n%s", job.Description)
	}
	return nil
}
