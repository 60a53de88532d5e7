package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/danialhaz/gigmate/internal/types"
)

// GetProfile fetches the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context) (*types.Profile, error) {
	var profile types.Profile
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, nil, &profile, ""); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches the mutable profile fields; nil fields are left unchanged.
func (c *Client) UpdateProfile(ctx context.Context, update types.ProfileUpdate) (*types.Profile, error) {
	if err := validator.New().Struct(&update); err != nil {
		return nil, &Error{Kind: KindValidation, Message: "invalid profile update", Cause: err}
	}

	var profile types.Profile
	if err := c.do(ctx, http.MethodPatch, "/v1/profile", nil, update, &profile, ""); err != nil {
		return nil, err
	}
	return &profile, nil
}
