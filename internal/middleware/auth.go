package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cbd-storefront/internal/config"
	"cbd-storefront/internal/models"
	"cbd-storefront/internal/services"

	"github.com/golang-jwt/jwt"
)

type contextKey string

const (
	CustomerContextKey contextKey = "customer"
	TokenContextKey    contextKey = "auth_token"
)

// AuthMiddleware resolves the customer behind the storefront's auth cookie.
// The token is verified locally (HS256 signature and expiry) and the identity
// is looked up at the commerce backend; the raw token stays in the request
// context so handlers can forward it on further backend calls.
type AuthMiddleware struct {
	backend services.BackendInterface
	config  config.AuthConfig
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(backend services.BackendInterface, cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		backend: backend,
		config:  cfg,
	}
}

// LoadCustomer middleware loads the current customer into the request
// context. Requests without a valid token pass through anonymously.
func (m *AuthMiddleware) LoadCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.ExtractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		if err := m.verifyToken(token); err != nil {
			// Invalid or expired token: continue anonymously rather
			// than failing the whole request.
			next.ServeHTTP(w, r)
			return
		}

		customer, err := m.backend.CurrentCustomer(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), CustomerContextKey, customer)
		ctx = context.WithValue(ctx, TokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken pulls the auth token from the configured cookie, falling back
// to a bearer Authorization header.
func (m *AuthMiddleware) ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.config.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// verifyToken checks the token signature and registered claims.
func (m *AuthMiddleware) verifyToken(tokenString string) error {
	if m.config.JWTSecret == "" {
		// No local secret configured; the backend remains the
		// authority on token validity.
		return nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.config.JWTSecret), nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if !token.Valid {
		return models.ErrInvalidToken
	}
	return nil
}

// GetCustomerFromContext retrieves the customer from request context.
func GetCustomerFromContext(ctx context.Context) *models.Customer {
	customer, ok := ctx.Value(CustomerContextKey).(*models.Customer)
	if !ok {
		return nil
	}
	return customer
}

// GetTokenFromContext retrieves the raw auth token from request context.
func GetTokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(TokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}

// SetCustomerContext sets customer and token in the context (for testing).
func SetCustomerContext(ctx context.Context, customer *models.Customer, token string) context.Context {
	ctx = context.WithValue(ctx, CustomerContextKey, customer)
	return context.WithValue(ctx, TokenContextKey, token)
}
