package handlers

import (
	"net/http"

	"cbd-storefront/internal/models"
	"cbd-storefront/internal/pricing"
)

// PricingHandler answers cart pricing requests. The endpoint is pure and
// stateless: it recomputes everything from the submitted line items and the
// caller-supplied discounts, persists nothing, and needs no authentication
// (guest carts are priced too).
type PricingHandler struct{}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// PricingResponse is the POST /api/pricing response body.
type PricingResponse struct {
	Success bool `json:"success"`
	models.PricingResult
}

// ComputePricing handles POST /api/pricing.
func (h *PricingHandler) ComputePricing(w http.ResponseWriter, r *http.Request) {
	var req models.PricingRequest
	decodeLenient(r, &req)

	result := pricing.Quote(
		req.Items,
		req.Country,
		req.LoyaltyDiscount.Float(),
		req.PromoDiscount.Float(),
		req.ReferralDiscount.Float(),
	)

	writeJSON(w, http.StatusOK, PricingResponse{
		Success:       true,
		PricingResult: result,
	})
}
