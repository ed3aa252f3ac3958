package handlers

import (
	"net/http"

	"cbd-storefront/internal/middleware"
	"cbd-storefront/internal/models"
	"cbd-storefront/internal/pricing"
)

// AccountHandler serves account-scoped reads proxied from the backend.
type AccountHandler struct{}

// NewAccountHandler creates a new account handler.
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Wallet handles GET /api/account/wallet: the customer's cagnotte balance.
// The balance is display-only here; it never enters the pricing sequence.
func (h *AccountHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomerFromContext(r.Context())
	if customer == nil {
		errorJSON(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	balance := pricing.Round2(customer.WalletBalance.Float())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"balance":      balance,
		"balanceCents": pricing.ToCents(balance),
		"currency":     models.Currency,
	})
}
