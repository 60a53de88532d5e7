package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/schemas"
	"github.com/danialhaz/gigmate/internal/types"
)

// SearchJobs runs one page of a job search. Unlike candidate search this is a
// GET with query parameters.
func (c *Client) SearchJobs(ctx context.Context, q types.JobQuery) (*types.JobPage, error) {
	query := url.Values{}
	if q.Query != "" {
		query.Set("q", q.Query)
	}
	if q.Location != "" {
		query.Set("location", q.Location)
	}
	if q.Type != "" {
		query.Set("type", string(q.Type))
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result types.JobPage
	if err := c.do(ctx, http.MethodGet, "/v1/jobs", query, nil, &result, schemas.JobPage); err != nil {
		return nil, err
	}
	fillTotalPages(&result.TotalPages, result.Total, result.PageSize)
	return &result, nil
}

// GetJob fetches a full job posting.
func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (*types.JobDetail, error) {
	var detail types.JobDetail
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+id.String(), nil, nil, &detail, ""); err != nil {
		return nil, err
	}
	return &detail, nil
}
