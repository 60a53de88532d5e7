package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danialhaz/gigmate/internal/types"
)

// WalletBalance fetches the current points and cash balance.
func (c *Client) WalletBalance(ctx context.Context) (*types.WalletBalance, error) {
	var balance types.WalletBalance
	if err := c.do(ctx, http.MethodGet, "/v1/wallet/balance", nil, nil, &balance, ""); err != nil {
		return nil, err
	}
	return &balance, nil
}

// PointHistory lists recent point transactions, newest first.
func (c *Client) PointHistory(ctx context.Context, limit int) ([]types.PointTransaction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var history []types.PointTransaction
	if err := c.do(ctx, http.MethodGet, "/v1/wallet/transactions", query, nil, &history, ""); err != nil {
		return nil, err
	}
	return history, nil
}
