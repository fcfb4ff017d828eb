package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chucky-1/finfine/internal/model"
)

func (c *Client) Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, register error: %w", err)
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, login error: %w", err)
	}
	return &resp, nil
}

// CurrentUser validates token and returns the user it belongs to.
func (c *Client) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	var resp model.UserResponse
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, current user error: %w", err)
	}
	return &resp.User, nil
}
