package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chucky-1/finfine/internal/model"
)

func (c *Client) Summary(ctx context.Context, token string) (*model.DashboardSummary, error) {
	var resp model.DashboardSummary
	if err := c.get(ctx, "/dashboard/summary", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, summary error: %w", err)
	}
	return &resp, nil
}

func (c *Client) Accounts(ctx context.Context, token string) (*model.AccountsResponse, error) {
	var resp model.AccountsResponse
	if err := c.get(ctx, "/dashboard/accounts", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, accounts error: %w", err)
	}
	return &resp, nil
}

// Transactions lists transactions. Zero or empty params are left out of the query.
func (c *Client) Transactions(ctx context.Context, token string, params model.TransactionsParams) (*model.TransactionsResponse, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Skip > 0 {
		query.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}

	var resp model.TransactionsResponse
	if err := c.get(ctx, "/dashboard/transactions", token, query, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, transactions error: %w", err)
	}
	return &resp, nil
}

func (c *Client) Budgets(ctx context.Context, token string) (*model.BudgetsResponse, error) {
	var resp model.BudgetsResponse
	if err := c.get(ctx, "/dashboard/budgets", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, budgets error: %w", err)
	}
	return &resp, nil
}

func (c *Client) Goals(ctx context.Context, token string) (*model.GoalsResponse, error) {
	var resp model.GoalsResponse
	if err := c.get(ctx, "/dashboard/goals", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, goals error: %w", err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	if token == "" {
		return ErrMissingToken
	}
	return c.do(ctx, http.MethodGet, path, token, query, nil, out)
}
