// Package types provides type definitions for the records exchanged with the GigMate
// marketplace API.
package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultPageSize is the number of results requested per page when none is specified.
const DefaultPageSize = 20

// Availability describes whether a candidate is currently taking work.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityBusy         Availability = "busy"
	AvailabilityNotAvailable Availability = "not_available"
)

// Proficiency is a candidate's self-reported skill level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// SortKey selects the server-side ordering of search results.
type SortKey string

const (
	SortMatchScore SortKey = "match_score"
	SortRating     SortKey = "rating"
	SortExperience SortKey = "experience"
	SortRateLow    SortKey = "rate_low"
	SortRateHigh   SortKey = "rate_high"
	SortRecent     SortKey = "recent"
)

// LocationFilter biases a search toward a point with a radius in kilometers.
type LocationFilter struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusKM  float64 `json:"radius_km" validate:"gt=0"`
}

// SearchFilters is the filter payload sent to the candidate search endpoint.
// Page is 1-based; SkillIDs entries are unique.
type SearchFilters struct {
	Query          string          `json:"q,omitempty"`
	SkillIDs       []uuid.UUID     `json:"skills,omitempty" validate:"unique"`
	SkillNames     []string        `json:"skill_names,omitempty"`
	Location       *LocationFilter `json:"location,omitempty"`
	Availability   Availability    `json:"availability,omitempty" validate:"omitempty,oneof=available busy not_available"`
	MinProficiency Proficiency     `json:"min_proficiency,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Sort           SortKey         `json:"sort,omitempty" validate:"omitempty,oneof=match_score rating experience rate_low rate_high recent"`
	Page           int             `json:"page" validate:"min=1"`
	PageSize       int             `json:"page_size" validate:"min=1,max=100"`
}

// Validate validates the SearchFilters using the validator.
func (f *SearchFilters) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// Key returns a canonical snapshot of every facet except the page number.
// Two filter sets with equal keys belong to the same search session; a response
// whose originating key no longer matches the session's key is stale.
func (f *SearchFilters) Key() string {
	ids := make([]string, len(f.SkillIDs))
	for i, id := range f.SkillIDs {
		ids[i] = id.String()
	}
	sort.Strings(ids)

	names := append([]string(nil), f.SkillNames...)
	sort.Strings(names)

	loc := ""
	if f.Location != nil {
		loc = fmt.Sprintf("%.5f,%.5f,%.1f", f.Location.Latitude, f.Location.Longitude, f.Location.RadiusKM)
	}

	return strings.Join([]string{
		f.Query,
		strings.Join(ids, ","),
		strings.Join(names, ","),
		loc,
		string(f.Availability),
		string(f.MinProficiency),
		string(f.Sort),
		fmt.Sprintf("%d", f.PageSize),
	}, "|")
}

// WithPage returns a copy of the filters targeting the given page.
func (f SearchFilters) WithPage(page int) SearchFilters {
	f.Page = page
	return f
}
