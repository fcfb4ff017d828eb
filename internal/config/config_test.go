package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, env.Parse(&cfg))

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	require.Equal(t, 10*time.Second, cfg.APITimeout)
	require.Equal(t, 1500*time.Millisecond, cfg.AuthCheckWait)
	require.Equal(t, time.Second, cfg.AssistantDelay)
	require.Equal(t, time.Hour, cfg.SessionCleanInterval)
	require.Equal(t, 60, cfg.Telegram.Timeout)
	require.Empty(t, cfg.PostgresEndpoint)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/api")
	t.Setenv("AUTH_CHECK_WAIT", "2s")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TG_TOKEN", "123:abc")

	cfg := Config{}
	require.NoError(t, env.Parse(&cfg))
	require.Equal(t, "https://api.example.com/api", cfg.APIURL)
	require.Equal(t, 2*time.Second, cfg.AuthCheckWait)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, "123:abc", cfg.Telegram.Token)
}
