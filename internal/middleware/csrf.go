package middleware

import (
	"encoding/json"
	"net/http"

	"cbd-storefront/internal/utils"

	"github.com/gorilla/sessions"
)

// CSRFMiddleware issues and validates HMAC-signed CSRF tokens. The token is
// stored in the session and must be echoed back in the X-CSRF-Token header on
// protected state-changing requests.
type CSRFMiddleware struct {
	store  sessions.Store
	secret []byte
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(store sessions.Store, secret []byte) *CSRFMiddleware {
	return &CSRFMiddleware{
		store:  store,
		secret: secret,
	}
}

// Protect validates the CSRF token on state-changing requests.
func (m *CSRFMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip CSRF check for safe methods
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.store.Get(r, "session")
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		sessionToken, _ := session.Values["csrf_token"].(string)
		requestToken := r.Header.Get("X-CSRF-Token")

		if sessionToken == "" || requestToken != sessionToken || !utils.VerifyCSRFToken(requestToken, m.secret) {
			http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenHandler issues a fresh signed token and binds it to the session.
func (m *CSRFMiddleware) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, "session")
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		token, err := utils.SignCSRFToken(m.secret)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		session.Values["csrf_token"] = token
		if err := session.Save(r, w); err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}
