package handlers

import (
	"log"
	"net/http"
	"strings"

	"cbd-storefront/internal/middleware"
	"cbd-storefront/internal/models"
	"cbd-storefront/internal/pricing"
	"cbd-storefront/internal/services"
)

// CartHandler handles cart synchronization and discount-code requests.
type CartHandler struct {
	sync    services.CartSyncInterface
	backend services.BackendInterface
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(sync services.CartSyncInterface, backend services.BackendInterface) *CartHandler {
	return &CartHandler{
		sync:    sync,
		backend: backend,
	}
}

// GetSync handles GET /api/cart/sync. Without a valid session the client gets
// a 401 carrying the empty cart shape so its local cart stays authoritative.
func (h *CartHandler) GetSync(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomerFromContext(r.Context())
	if customer == nil {
		writeJSON(w, http.StatusUnauthorized, models.EmptyCartSyncResponse())
		return
	}

	cart, err := h.sync.Fetch(r.Context(), customer.ID)
	if err != nil {
		// Degrade to the empty shape rather than crash the storefront
		log.Printf("cart sync fetch failed for customer %s: %v", customer.ID, err)
		writeJSON(w, http.StatusOK, models.EmptyCartSyncResponse())
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// PostSync handles POST /api/cart/sync with full-replace semantics.
func (h *CartHandler) PostSync(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomerFromContext(r.Context())
	if customer == nil {
		errorJSON(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CartSyncRequest
	decodeLenient(r, &req)

	if err := h.sync.Replace(r.Context(), customer.ID, req); err != nil {
		log.Printf("cart sync write failed for customer %s: %v", customer.ID, err)
		errorJSON(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// applyCodeRequest is the shared payload of the apply-promo and
// apply-referral endpoints.
type applyCodeRequest struct {
	Code     string        `json:"code"`
	Subtotal models.Amount `json:"subtotal"`
}

// applyCodeResponse reports the discount granted by a code.
type applyCodeResponse struct {
	Success       bool    `json:"success"`
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"`
	DiscountCents int64   `json:"discountCents"`
}

// ApplyPromo handles POST /api/cart/apply-promo.
func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req applyCodeRequest
	decodeLenient(r, &req)

	code := strings.TrimSpace(req.Code)
	if code == "" {
		errorJSON(w, http.StatusBadRequest, "Promo code is required")
		return
	}

	promo, err := h.backend.FindPromoCode(r.Context(), code)
	if err != nil {
		if services.IsNotFound(err) {
			errorJSON(w, http.StatusNotFound, "Unknown promo code")
			return
		}
		log.Printf("promo lookup failed for %q: %v", code, err)
		errorJSON(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if !promo.Active {
		errorJSON(w, http.StatusNotFound, "Unknown promo code")
		return
	}

	subtotal := req.Subtotal.Float()
	var discount float64
	switch promo.Kind {
	case models.PromoKindPercentage:
		discount = subtotal * promo.Value.Float() / 100
	case models.PromoKindAmount:
		discount = promo.Value.Float()
	}
	discount = pricing.ClampNonNegative(pricing.Round2(discount))

	writeJSON(w, http.StatusOK, applyCodeResponse{
		Success:       true,
		Code:          promo.Code,
		Discount:      discount,
		DiscountCents: pricing.ToCents(discount),
	})
}

// ApplyReferral handles POST /api/cart/apply-referral.
func (h *CartHandler) ApplyReferral(w http.ResponseWriter, r *http.Request) {
	var req applyCodeRequest
	decodeLenient(r, &req)

	code := strings.TrimSpace(req.Code)
	if code == "" {
		errorJSON(w, http.StatusBadRequest, "Referral code is required")
		return
	}

	referral, err := h.backend.ValidateReferral(r.Context(), code)
	if err != nil {
		if services.IsNotFound(err) {
			errorJSON(w, http.StatusNotFound, "Unknown referral code")
			return
		}
		log.Printf("referral lookup failed for %q: %v", code, err)
		errorJSON(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if !referral.Valid {
		errorJSON(w, http.StatusNotFound, "Unknown referral code")
		return
	}

	discount := pricing.ClampNonNegative(pricing.Round2(req.Subtotal.Float() * referral.Rate))

	writeJSON(w, http.StatusOK, applyCodeResponse{
		Success:       true,
		Code:          referral.Code,
		Discount:      discount,
		DiscountCents: pricing.ToCents(discount),
	})
}
