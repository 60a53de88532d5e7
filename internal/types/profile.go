package types

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the signed-in user's marketplace profile. Optional fields are
// pointers so the absent case is handled explicitly at the formatting boundary
// instead of through scattered nil guards on dynamic shapes.
type Profile struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	Headline        *string          `json:"headline,omitempty"`
	Bio             *string          `json:"bio,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Availability    Availability     `json:"availability"`
	HourlyRate      *float64         `json:"hourly_rate,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Rating          *float64         `json:"rating,omitempty"`
	Skills          []CandidateSkill `json:"skills,omitempty"`
	YearsExperience *int             `json:"years_experience,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ProfileUpdate carries the mutable profile fields; nil fields are left unchanged.
type ProfileUpdate struct {
	Headline     *string      `json:"headline,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Location     *string      `json:"location,omitempty"`
	Availability Availability `json:"availability,omitempty" validate:"omitempty,oneof=available busy not_available"`
	HourlyRate   *float64     `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
}
