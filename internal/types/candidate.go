package types

import "github.com/google/uuid"

// ScoreBreakdown holds the per-factor sub-scores behind a match score, each 0-100.
type ScoreBreakdown struct {
	Skills   float64 `json:"skills"`
	Location float64 `json:"location"`
	Rate     float64 `json:"rate"`
}

// CandidateResult is one entry of a candidate search page. Entries are created
// fresh from every response and never mutated in place.
type CandidateResult struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Headline      string         `json:"headline,omitempty"`
	Location      string         `json:"location,omitempty"`
	DistanceKM    *float64       `json:"distance_km,omitempty"`
	Availability  Availability   `json:"availability"`
	MatchScore    float64        `json:"match_score"`
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	MatchedSkills []string       `json:"matched_skills,omitempty"`
	MissingSkills []string       `json:"missing_skills,omitempty"`
	HourlyRate    *float64       `json:"hourly_rate,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Rating        *float64       `json:"rating,omitempty"`
}

// CandidatePage is one page of candidate search results.
type CandidatePage struct {
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages,omitempty"`
	Results    []CandidateResult `json:"results"`
}

// CandidateDetail is the full record behind a search result.
type CandidateDetail struct {
	CandidateResult
	Bio             string           `json:"bio,omitempty"`
	Skills          []CandidateSkill `json:"skills,omitempty"`
	YearsExperience *int             `json:"years_experience,omitempty"`
	CompletedJobs   int              `json:"completed_jobs"`
}

// CandidateSkill is a skill attached to a candidate profile.
type CandidateSkill struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}
