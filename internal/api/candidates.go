package api

import (
	"context"
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/schemas"
	"github.com/danialhaz/gigmate/internal/types"
)

// SearchCandidates runs one page of a candidate search.
func (c *Client) SearchCandidates(ctx context.Context, filters types.SearchFilters) (*types.CandidatePage, error) {
	var page types.CandidatePage
	if err := c.do(ctx, http.MethodPost, "/v1/candidates/search", nil, filters, &page, schemas.CandidatePage); err != nil {
		return nil, err
	}
	fillTotalPages(&page.TotalPages, page.Total, page.PageSize)
	return &page, nil
}

// GetCandidate fetches the full record behind a search result.
func (c *Client) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateDetail, error) {
	var detail types.CandidateDetail
	if err := c.do(ctx, http.MethodGet, "/v1/candidates/"+id.String(), nil, nil, &detail, ""); err != nil {
		return nil, err
	}
	return &detail, nil
}

// fillTotalPages derives total pages as ceil(total/pageSize) when the server
// omits the field.
func fillTotalPages(totalPages *int, total, pageSize int) {
	if *totalPages > 0 || pageSize <= 0 {
		return
	}
	*totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
}
