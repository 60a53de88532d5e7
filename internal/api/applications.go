package api

import (
	"context"
	"net/http"

	"github.com/danialhaz/gigmate/internal/types"
)

// Apply submits a job application. The request is validated locally before any
// network traffic.
func (c *Client) Apply(ctx context.Context, req types.ApplicationRequest) (*types.ApplicationRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Kind: KindValidation, Message: "invalid application", Cause: err}
	}

	var record types.ApplicationRecord
	if err := c.do(ctx, http.MethodPost, "/v1/applications", nil, req, &record, ""); err != nil {
		return nil, err
	}
	return &record, nil
}

// MyApplications lists the signed-in user's submitted applications.
func (c *Client) MyApplications(ctx context.Context) ([]types.ApplicationRecord, error) {
	var records []types.ApplicationRecord
	if err := c.do(ctx, http.MethodGet, "/v1/applications/mine", nil, nil, &records, ""); err != nil {
		return nil, err
	}
	return records, nil
}
