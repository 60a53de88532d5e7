package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danialhaz/gigmate/internal/schemas"
	"github.com/danialhaz/gigmate/internal/types"
)

// GetRecommendations fetches AI job recommendations. count is how many scored
// suggestions to return; poolSize bounds how many postings the backend considers.
func (c *Client) GetRecommendations(ctx context.Context, count, poolSize int) ([]types.JobRecommendation, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}
	if poolSize > 0 {
		query.Set("pool_size", strconv.Itoa(poolSize))
	}

	var recs []types.JobRecommendation
	if err := c.do(ctx, http.MethodGet, "/v1/recommendations/jobs", query, nil, &recs, schemas.JobRecommendations); err != nil {
		return nil, err
	}
	return recs, nil
}
