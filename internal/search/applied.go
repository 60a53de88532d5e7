package search

import (
	"sync"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/types"
)

// AppliedSet tracks which jobs the user has applied to within one session, so
// the UI can show "Already Applied" instead of the apply affordance. Ids enter
// only after a successful apply call or from the my-applications endpoint and
// are never removed during the session.
type AppliedSet struct {
	mu  sync.RWMutex
	ids map[uuid.UUID]bool
}

// NewAppliedSet returns an empty set.
func NewAppliedSet() *AppliedSet {
	return &AppliedSet{ids: make(map[uuid.UUID]bool)}
}

// Add records a successful application.
func (a *AppliedSet) Add(jobID uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ids[jobID] = true
}

// Seed loads the set from records returned by the my-applications endpoint.
func (a *AppliedSet) Seed(records []types.ApplicationRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, record := range records {
		a.ids[record.JobID] = true
	}
}

// Contains reports whether the user already applied to a job.
func (a *AppliedSet) Contains(jobID uuid.UUID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ids[jobID]
}

// Len returns how many jobs have been applied to this session.
func (a *AppliedSet) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.ids)
}
