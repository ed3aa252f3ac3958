package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cbd-storefront/internal/config"
	"cbd-storefront/internal/models"
	"cbd-storefront/internal/services"

	"github.com/golang-jwt/jwt"
)

const testJWTSecret = "test-jwt-secret"

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "cust-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newAuthFixture() (*AuthMiddleware, *services.MockBackendService) {
	backend := services.NewMockBackendService()
	backend.Customer = &models.Customer{ID: "cust-1", Email: "a@b.fr"}
	m := NewAuthMiddleware(backend, config.AuthConfig{
		JWTSecret:  testJWTSecret,
		CookieName: "auth_token",
	})
	return m, backend
}

func loadedCustomer(m *AuthMiddleware, req *http.Request) *models.Customer {
	var got *models.Customer
	handler := m.LoadCustomer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetCustomerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLoadCustomer_ValidCookie(t *testing.T) {
	m, _ := newAuthFixture()

	req := httptest.NewRequest("GET", "/api/cart/sync", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, testJWTSecret, time.Now().Add(time.Hour))})

	customer := loadedCustomer(m, req)
	if customer == nil || customer.ID != "cust-1" {
		t.Errorf("expected customer cust-1 in context, got %+v", customer)
	}
}

func TestLoadCustomer_NoCookieStaysAnonymous(t *testing.T) {
	m, _ := newAuthFixture()

	req := httptest.NewRequest("GET", "/api/cart/sync", nil)
	if customer := loadedCustomer(m, req); customer != nil {
		t.Errorf("expected anonymous request, got customer %+v", customer)
	}
}

func TestLoadCustomer_ExpiredTokenStaysAnonymous(t *testing.T) {
	m, _ := newAuthFixture()

	req := httptest.NewRequest("GET", "/api/cart/sync", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, testJWTSecret, time.Now().Add(-time.Hour))})

	if customer := loadedCustomer(m, req); customer != nil {
		t.Errorf("expired token should not authenticate, got %+v", customer)
	}
}

func TestLoadCustomer_WrongSignatureStaysAnonymous(t *testing.T) {
	m, _ := newAuthFixture()

	req := httptest.NewRequest("GET", "/api/cart/sync", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, "other-secret", time.Now().Add(time.Hour))})

	if customer := loadedCustomer(m, req); customer != nil {
		t.Errorf("badly signed token should not authenticate, got %+v", customer)
	}
}

func TestExtractToken_BearerHeaderFallback(t *testing.T) {
	m, _ := newAuthFixture()

	req := httptest.NewRequest("POST", "/api/checkout/apply-loyalty", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	if token := m.ExtractToken(req); token != "abc123" {
		t.Errorf("expected bearer token, got %q", token)
	}
}
