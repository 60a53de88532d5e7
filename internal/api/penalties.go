package api

import (
	"context"
	"net/http"

	"github.com/danialhaz/gigmate/internal/types"
)

// Penalties lists sanctions applied to the account.
func (c *Client) Penalties(ctx context.Context) ([]types.Penalty, error) {
	var penalties []types.Penalty
	if err := c.do(ctx, http.MethodGet, "/v1/penalties", nil, nil, &penalties, ""); err != nil {
		return nil, err
	}
	return penalties, nil
}
