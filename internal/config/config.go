package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Auth    AuthConfig
	Backend BackendConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

// AuthConfig configures verification of the storefront's auth token. The
// token itself is issued by the commerce backend; this service only checks
// the signature and forwards the raw token on backend calls.
type AuthConfig struct {
	JWTSecret  string
	CookieName string
}

// BackendConfig points at the commerce backend. The base URL is resolved in
// order: BACKEND_INTERNAL_URL, PUBLIC_API_URL, localhost fallback, so that
// in-cluster deployments can talk to the backend over the internal network.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			CookieName: getEnv("AUTH_COOKIE_NAME", "auth_token"),
		},
		Backend: BackendConfig{
			BaseURL: resolveBackendURL(),
			Timeout: time.Duration(getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("STOREFRONT_ORIGINS", []string{"http://localhost:3000"}),
		},
	}

	return config, nil
}

// resolveBackendURL picks the commerce backend base URL, preferring the
// internal address when one is configured.
func resolveBackendURL() string {
	if internal := os.Getenv("BACKEND_INTERNAL_URL"); internal != "" {
		return strings.TrimRight(internal, "/")
	}
	if public := os.Getenv("PUBLIC_API_URL"); public != "" {
		return strings.TrimRight(public, "/")
	}
	return "http://localhost:1337"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
