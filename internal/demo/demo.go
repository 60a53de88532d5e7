// Package demo serves canned candidate data for offline walkthroughs. Demo
// mode is only ever entered through an explicit flag or environment variable;
// a live search that fails reports its error instead of silently falling back
// to fixtures.
package demo

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/types"
)

// Searcher answers candidate searches from an in-memory fixture set. It
// implements the same contract as the live API client's SearchCandidates.
type Searcher struct {
	candidates []types.CandidateResult
}

// NewSearcher returns a Searcher backed by the built-in fixture candidates.
func NewSearcher() *Searcher {
	return &Searcher{candidates: fixtureCandidates()}
}

// SearchCandidates filters, ranks and paginates the fixture set. It honors the
// query text, skill name filters and availability facet; location scoring is
// baked into the fixtures.
func (s *Searcher) SearchCandidates(_ context.Context, filters types.SearchFilters) (*types.CandidatePage, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	var matched []types.CandidateResult
	for _, c := range s.candidates {
		if matches(c, filters) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	total := len(matched)
	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize

	start := (filters.Page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &types.CandidatePage{
		Total:      total,
		Page:       filters.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Results:    matched[start:end],
	}, nil
}

func matches(c types.CandidateResult, filters types.SearchFilters) bool {
	if filters.Availability != "" && c.Availability != filters.Availability {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(filters.Query)); q != "" {
		haystack := strings.ToLower(c.Name + " " + c.Headline + " " + strings.Join(c.MatchedSkills, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	for _, want := range filters.SkillNames {
		if !hasSkill(c, want) {
			return false
		}
	}
	return true
}

func hasSkill(c types.CandidateResult, name string) bool {
	for _, s := range c.MatchedSkills {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func ptr(v float64) *float64 { return &v }

func fixtureCandidates() []types.CandidateResult {
	return []types.CandidateResult{
		{
			ID:            uuid.MustParse("a1f5e8d2-3b64-4c9a-8f17-02d4e6b9a301"),
			Name:          "Aisyah Rahman",
			Headline:      "Event crew lead, 6 years on the KL circuit",
			Location:      "Kuala Lumpur",
			DistanceKM:    ptr(2.4),
			Availability:  types.AvailabilityAvailable,
			MatchScore:    92,
			Breakdown:     types.ScoreBreakdown{Skills: 95, Location: 98, Rate: 82},
			MatchedSkills: []string{"Event Setup", "Crowd Control", "First Aid"},
			HourlyRate:    ptr(28),
			Currency:      "MYR",
			Rating:        ptr(4.8),
		},
		{
			ID:            uuid.MustParse("b2c6f9e3-4c75-5d0b-9028-13e5f7c0b412"),
			Name:          "Daniel Wong",
			Headline:      "Barista and cafe floor supervisor",
			Location:      "Petaling Jaya",
			DistanceKM:    ptr(8.1),
			Availability:  types.AvailabilityAvailable,
			MatchScore:    84,
			Breakdown:     types.ScoreBreakdown{Skills: 88, Location: 80, Rate: 79},
			MatchedSkills: []string{"Barista", "Cash Handling", "Customer Service"},
			MissingSkills: []string{"Latte Art"},
			HourlyRate:    ptr(18),
			Currency:      "MYR",
			Rating:        ptr(4.6),
		},
		{
			ID:            uuid.MustParse("c3d70af4-5d86-6e1c-a139-24f608d1c523"),
			Name:          "Priya Nair",
			Headline:      "Warehouse picker, forklift certified",
			Location:      "Shah Alam",
			DistanceKM:    ptr(14.9),
			Availability:  types.AvailabilityBusy,
			MatchScore:    71,
			Breakdown:     types.ScoreBreakdown{Skills: 78, Location: 62, Rate: 70},
			MatchedSkills: []string{"Forklift", "Inventory", "Packing"},
			HourlyRate:    ptr(22),
			Currency:      "MYR",
			Rating:        ptr(4.3),
		},
		{
			ID:            uuid.MustParse("d4e81b05-6e97-7f2d-b24a-3507a9e2d634"),
			Name:          "Hafiz Ismail",
			Headline:      "Delivery rider covering Klang Valley",
			Location:      "Subang Jaya",
			DistanceKM:    ptr(11.2),
			Availability:  types.AvailabilityAvailable,
			MatchScore:    66,
			Breakdown:     types.ScoreBreakdown{Skills: 60, Location: 74, Rate: 68},
			MatchedSkills: []string{"Motorbike License", "Navigation"},
			MissingSkills: []string{"Cold Chain Handling"},
			HourlyRate:    ptr(15),
			Currency:      "MYR",
			Rating:        ptr(4.1),
		},
		{
			ID:            uuid.MustParse("e5f92c16-7fa8-803e-c35b-4618baf3e745"),
			Name:          "Mei Lin Tan",
			Headline:      "Retail merchandiser and promoter",
			Location:      "Kuala Lumpur",
			DistanceKM:    ptr(4.7),
			Availability:  types.AvailabilityAvailable,
			MatchScore:    58,
			Breakdown:     types.ScoreBreakdown{Skills: 52, Location: 90, Rate: 45},
			MatchedSkills: []string{"Merchandising", "Customer Service"},
			MissingSkills: []string{"POS Systems", "Visual Display"},
			HourlyRate:    ptr(16),
			Currency:      "MYR",
			Rating:        ptr(3.9),
		},
		{
			ID:            uuid.MustParse("f60a3d27-80b9-914f-d46c-5729cb04f856"),
			Name:          "Arjun Kumar",
			Headline:      "Kitchen helper, halal certified kitchens",
			Location:      "Klang",
			DistanceKM:    ptr(27.3),
			Availability:  types.AvailabilityNotAvailable,
			MatchScore:    43,
			Breakdown:     types.ScoreBreakdown{Skills: 48, Location: 30, Rate: 55},
			MatchedSkills: []string{"Food Prep", "Dishwashing"},
			MissingSkills: []string{"Commercial Cooking"},
			HourlyRate:    ptr(14),
			Currency:      "MYR",
			Rating:        ptr(4.0),
		},
		{
			ID:            uuid.MustParse("071b4e38-91ca-a250-e57d-683adc15f967"),
			Name:          "Sofia Lim",
			Headline:      "Part-time usher and ticketing crew",
			Location:      "Kuala Lumpur",
			DistanceKM:    ptr(0.8),
			Availability:  types.AvailabilityAvailable,
			MatchScore:    37,
			Breakdown:     types.ScoreBreakdown{Skills: 25, Location: 99, Rate: 40},
			MatchedSkills: []string{"Ticketing"},
			MissingSkills: []string{"Event Setup", "Crowd Control"},
			HourlyRate:    ptr(12),
			Currency:      "MYR",
			Rating:        ptr(3.7),
		},
	}
}
