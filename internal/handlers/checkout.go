package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"cbd-storefront/internal/models"
	"cbd-storefront/internal/services"
)

// CheckoutHandler handles checkout-time discount application.
type CheckoutHandler struct {
	loyalty services.LoyaltyInterface
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(loyalty services.LoyaltyInterface) *CheckoutHandler {
	return &CheckoutHandler{loyalty: loyalty}
}

// applyLoyaltyRequest is the POST /api/checkout/apply-loyalty payload.
type applyLoyaltyRequest struct {
	CartTotal    models.Amount     `json:"cartTotal"`
	ShippingCost models.Amount     `json:"shippingCost"`
	Items        []models.CartItem `json:"items"`
}

// applyLoyaltyResponse mirrors the storefront's checkout contract.
type applyLoyaltyResponse struct {
	Success bool `json:"success"`
	services.LoyaltyApplication
}

// ApplyLoyalty handles POST /api/checkout/apply-loyalty. Unlike the sync
// endpoints it takes the token from the Authorization header: checkout runs
// in a context where the storefront holds the token directly.
func (h *CheckoutHandler) ApplyLoyalty(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		errorJSON(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req applyLoyaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	application, err := h.loyalty.Apply(r.Context(), token, req.CartTotal.Float(), req.ShippingCost.Float())
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			errorJSON(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		log.Printf("loyalty application failed: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, applyLoyaltyResponse{
		Success:            true,
		LoyaltyApplication: *application,
	})
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
