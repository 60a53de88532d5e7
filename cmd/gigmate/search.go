package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/demo"
	"github.com/danialhaz/gigmate/internal/geo"
	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/search"
	"github.com/danialhaz/gigmate/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search candidates on the marketplace",
	Long:  "Searches candidates by free text and skill filters. Comma-separated query text is treated as skill name hints, e.g. 'barista, cash handling'.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

var (
	searchSkillIDs       []string
	searchAvailability   string
	searchMinProficiency string
	searchSort           string
	searchPageSize       int
	searchPages          int
	searchAll            bool
	searchLocation       string
	searchLat            float64
	searchLng            float64
	searchRadius         float64
)

func init() {
	searchCmd.Flags().StringSliceVar(&searchSkillIDs, "skill-id", nil, "Skill UUID to filter by (repeatable)")
	searchCmd.Flags().StringVar(&searchAvailability, "availability", "", "Filter by availability: available, busy, not_available")
	searchCmd.Flags().StringVar(&searchMinProficiency, "min-proficiency", "", "Minimum skill proficiency: beginner, intermediate, advanced, expert")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "Sort order: match_score, rating, experience, rate_low, rate_high, recent")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 0, "Results per page")
	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "Number of pages to load")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "Load every page of results")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Free-text location to search near (requires a geocoder URL)")
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "Latitude to search near")
	searchCmd.Flags().Float64Var(&searchLng, "lng", 0, "Longitude to search near")
	searchCmd.Flags().Float64Var(&searchRadius, "radius", 25, "Search radius in kilometers")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	ctx := context.Background()

	text := ""
	if len(args) > 0 {
		text = args[0]
	}

	skills, err := parseSkillIDs(searchSkillIDs)
	if err != nil {
		return err
	}

	location, err := resolveSearchLocation(ctx, cfg.GeocoderURL)
	if err != nil {
		return err
	}

	pageSize := searchPageSize
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}

	filters, err := search.BuildSearchPayload(search.QueryInput{
		Text:           text,
		Skills:         skills,
		Location:       location,
		Availability:   types.Availability(searchAvailability),
		MinProficiency: types.Proficiency(searchMinProficiency),
		Sort:           types.SortKey(searchSort),
		PageSize:       pageSize,
	})
	if errors.Is(err, search.ErrNoQuery) {
		printer.Info("Enter a search query or pick at least one skill, e.g. gigmate search 'barista, cash handling'")
		return nil
	}
	if err != nil {
		return err
	}
	if err := filters.Validate(); err != nil {
		return fmt.Errorf("invalid search filters: %w", err)
	}

	var searcher search.Searcher
	if cfg.DemoMode {
		printer.Warning("Demo mode: showing fixture data, not live results")
		searcher = demo.NewSearcher()
	} else {
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		searcher = client
	}

	var opts []search.Option
	if cfg.Verbose {
		opts = append(opts, search.WithDiagnostics(printer.Info))
	}
	session := search.NewSession(searcher, opts...)

	if err := session.Search(ctx, filters); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	for session.HasMore() && (searchAll || session.CurrentPage() < searchPages) {
		if err := session.LoadMore(ctx); err != nil {
			printer.Warning("stopped at page %d: %v", session.CurrentPage(), err)
			break
		}
	}

	output.RenderCandidates(os.Stdout, printer, &types.CandidatePage{
		Total:      session.Total(),
		Page:       session.CurrentPage(),
		PageSize:   pageSize,
		TotalPages: session.TotalPages(),
		Results:    session.Results(),
	})
	return nil
}

// parseSkillIDs converts --skill-id values into selected skills.
func parseSkillIDs(raw []string) ([]search.SelectedSkill, error) {
	skills := make([]search.SelectedSkill, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid skill id %q: %w", s, err)
		}
		skills = append(skills, search.SelectedSkill{ID: id})
	}
	return skills, nil
}

// resolveSearchLocation builds a location filter from --location or --lat/--lng.
func resolveSearchLocation(ctx context.Context, geocoderURL string) (*types.LocationFilter, error) {
	if searchLocation != "" {
		if geocoderURL == "" {
			return nil, fmt.Errorf("--location requires a geocoder URL (set %q in the config file or the GIGMATE_GEOCODER_URL environment variable)", "geocoder_url")
		}
		point, err := geo.NewGeocoder(geocoderURL).Forward(ctx, searchLocation)
		if err != nil {
			return nil, err
		}
		return &types.LocationFilter{Latitude: point.Latitude, Longitude: point.Longitude, RadiusKM: searchRadius}, nil
	}
	if searchLat != 0 || searchLng != 0 {
		return &types.LocationFilter{Latitude: searchLat, Longitude: searchLng, RadiusKM: searchRadius}, nil
	}
	return nil, nil
}
