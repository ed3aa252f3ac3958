package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cbd-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_Unauthenticated(t *testing.T) {
	handler := NewAccountHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/account/wallet", nil)
	w := httptest.NewRecorder()
	handler.Wallet(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWallet_ReturnsBalance(t *testing.T) {
	handler := NewAccountHandler()

	customer := &models.Customer{ID: "cust-1", WalletBalance: 12.3456}
	req := asCustomer(httptest.NewRequest(http.MethodGet, "/api/account/wallet", nil), customer)
	w := httptest.NewRecorder()
	handler.Wallet(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 12.35, body["balance"])
	assert.Equal(t, 1235.0, body["balanceCents"])
	assert.Equal(t, "EUR", body["currency"])
}
