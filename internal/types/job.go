package types

import (
	"time"

	"github.com/google/uuid"
)

// SalaryPeriod is the unit a posted salary refers to.
type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

// JobType describes the engagement model of a posting.
type JobType string

const (
	JobTypeGig      JobType = "gig"
	JobTypePartTime JobType = "part_time"
	JobTypeFullTime JobType = "full_time"
	JobTypeContract JobType = "contract"
)

// JobQuery holds the query parameters for the job search endpoint.
type JobQuery struct {
	Query    string  `json:"q,omitempty"`
	Location string  `json:"location,omitempty"`
	Type     JobType `json:"type,omitempty" validate:"omitempty,oneof=gig part_time full_time contract"`
	Page     int     `json:"page" validate:"min=1"`
	PageSize int     `json:"page_size" validate:"min=1,max=100"`
}

// JobResult is one entry of a job search page.
type JobResult struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	CompanyName string       `json:"company_name"`
	Location    string       `json:"location,omitempty"`
	DistanceKM  *float64     `json:"distance_km,omitempty"`
	Type        JobType      `json:"type"`
	SalaryMin   *float64     `json:"salary_min,omitempty"`
	SalaryMax   *float64     `json:"salary_max,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	Period      SalaryPeriod `json:"salary_period,omitempty"`
	PostedAt    time.Time    `json:"posted_at"`
}

// JobPage is one page of job search results.
type JobPage struct {
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages,omitempty"`
	Results    []JobResult `json:"results"`
}

// JobDetail is the full posting behind a search result or recommendation.
type JobDetail struct {
	JobResult
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Applicants     int      `json:"applicants"`
}

// JobRecommendation is an AI-scored job suggestion with a per-factor breakdown.
type JobRecommendation struct {
	Job           JobResult      `json:"job"`
	MatchScore    float64        `json:"match_score"`
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	MatchedSkills []string       `json:"matched_skills,omitempty"`
	MissingSkills []string       `json:"missing_skills,omitempty"`
	Reason        string         `json:"reason,omitempty"`
}
