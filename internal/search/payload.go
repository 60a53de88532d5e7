// Package search implements the client-side search session: filter payload
// building, page accumulation and the state machine that orders requests.
package search

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/types"
)

// ErrNoQuery signals that the user submitted a search with no text and no
// selected skills. It is a guidance state, not a failure: callers short-circuit
// and show a prompt instead of issuing an unbounded match-everything query.
var ErrNoQuery = errors.New("no search query or skill selection")

// SelectedSkill is one skill facet picked in the UI.
type SelectedSkill struct {
	ID   uuid.UUID
	Name string
}

// QueryInput is the raw UI filter state handed to BuildSearchPayload.
type QueryInput struct {
	Text           string
	Skills         []SelectedSkill
	Location       *types.LocationFilter
	Availability   types.Availability
	MinProficiency types.Proficiency
	Sort           types.SortKey
	PageSize       int
}

// BuildSearchPayload converts UI filter state into a search payload.
// Free text is comma-split into trimmed name hints (skill_names) that ride
// alongside any explicitly selected skill ids; the backend reconciles the two.
// The output always targets page 1; load-more passes a later page explicitly.
func BuildSearchPayload(in QueryInput) (types.SearchFilters, error) {
	names := splitSkillNames(in.Text)

	ids := make([]uuid.UUID, 0, len(in.Skills))
	seen := make(map[uuid.UUID]bool, len(in.Skills))
	for _, skill := range in.Skills {
		if skill.ID == uuid.Nil || seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		ids = append(ids, skill.ID)
	}

	if len(names) == 0 && len(ids) == 0 {
		return types.SearchFilters{}, ErrNoQuery
	}

	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	return types.SearchFilters{
		Query:          strings.TrimSpace(in.Text),
		SkillIDs:       ids,
		SkillNames:     names,
		Location:       in.Location,
		Availability:   in.Availability,
		MinProficiency: in.MinProficiency,
		Sort:           in.Sort,
		Page:           1,
		PageSize:       pageSize,
	}, nil
}

// splitSkillNames comma-splits free text, trimming segments and discarding
// empty ones.
func splitSkillNames(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var names []string
	for _, segment := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
