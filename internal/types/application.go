package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationRequest is the body of a job application submission.
type ApplicationRequest struct {
	JobID        uuid.UUID `json:"job_id" validate:"required"`
	CoverMessage string    `json:"cover_message,omitempty" validate:"max=2000"`
	ExpectedRate *float64  `json:"expected_rate,omitempty" validate:"omitempty,gt=0"`
}

// Validate validates the ApplicationRequest using the validator.
func (r *ApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ApplicationStatus tracks the server-side lifecycle of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationViewed   ApplicationStatus = "viewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ApplicationRecord is a submitted application as returned by the API.
type ApplicationRecord struct {
	ID        uuid.UUID         `json:"id"`
	JobID     uuid.UUID         `json:"job_id"`
	JobTitle  string            `json:"job_title,omitempty"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}
