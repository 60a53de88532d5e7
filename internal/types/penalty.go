package types

import (
	"time"

	"github.com/google/uuid"
)

// PenaltyStatus tracks whether a penalty is still in effect.
type PenaltyStatus string

const (
	PenaltyActive   PenaltyStatus = "active"
	PenaltyResolved PenaltyStatus = "resolved"
	PenaltyAppealed PenaltyStatus = "appealed"
)

// Penalty is a sanction applied to the account, such as a no-show deduction.
type Penalty struct {
	ID          uuid.UUID     `json:"id"`
	Reason      string        `json:"reason"`
	Points      int           `json:"points"`
	Status      PenaltyStatus `json:"status"`
	IssuedAt    time.Time     `json:"issued_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
	Description string        `json:"description,omitempty"`
}
