package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chucky-1/finfine/internal/model"
)

func (c *Client) Settings(ctx context.Context, token string) (*model.Settings, error) {
	var resp model.Settings
	if err := c.get(ctx, "/settings", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client, settings error: %w", err)
	}
	return &resp, nil
}

// UpdateSetting changes one single-valued section: theme, currency or language.
// The API answers 304 when nothing changed, which is not an error.
func (c *Client) UpdateSetting(ctx context.Context, token, section, value string) error {
	if token == "" {
		return ErrMissingToken
	}
	switch section {
	case model.SettingTheme, model.SettingCurrency, model.SettingLanguage:
	default:
		return fmt.Errorf("api.Client, update setting error: unknown section %q", section)
	}
	err := c.do(ctx, http.MethodPut, "/settings/"+section, token, nil, map[string]string{section: value}, nil)
	if apiErr, ok := err.(*Error); ok && apiErr.Status == http.StatusNotModified {
		return nil
	}
	if err != nil {
		return fmt.Errorf("api.Client, update setting error: %w", err)
	}
	return nil
}
