package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBackendURL_PrefersInternal(t *testing.T) {
	t.Setenv("BACKEND_INTERNAL_URL", "http://backend.internal:1337/")
	t.Setenv("PUBLIC_API_URL", "https://api.example.com")

	assert.Equal(t, "http://backend.internal:1337", resolveBackendURL())
}

func TestResolveBackendURL_FallsBackToPublic(t *testing.T) {
	t.Setenv("BACKEND_INTERNAL_URL", "")
	t.Setenv("PUBLIC_API_URL", "https://api.example.com/")

	assert.Equal(t, "https://api.example.com", resolveBackendURL())
}

func TestResolveBackendURL_LocalhostDefault(t *testing.T) {
	t.Setenv("BACKEND_INTERNAL_URL", "")
	t.Setenv("PUBLIC_API_URL", "")

	assert.Equal(t, "http://localhost:1337", resolveBackendURL())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND_INTERNAL_URL", "")
	t.Setenv("PUBLIC_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("AUTH_COOKIE_NAME", "")
	t.Setenv("STOREFRONT_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "auth_token", cfg.Auth.CookieName)
	assert.Equal(t, "http://localhost:1337", cfg.Backend.BaseURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, int(cfg.Backend.Timeout.Seconds()))
}

func TestLoad_OriginsList(t *testing.T) {
	t.Setenv("STOREFRONT_ORIGINS", "https://shop.example.com, https://www.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://shop.example.com", "https://www.example.com"}, cfg.CORS.AllowedOrigins)
}
