package models

import "time"

// CartItem represents a line item in the shopping cart. The pricing endpoint
// only reads Price and Quantity; the product reference fields travel through
// cart sync untouched.
type CartItem struct {
	ProductID string   `json:"productId,omitempty"`
	VariantID string   `json:"variantId,omitempty"`
	Name      string   `json:"name,omitempty"`
	Price     Amount   `json:"price"`
	Quantity  Quantity `json:"quantity"`
	IsGift    bool     `json:"isGift,omitempty"`
}

// CartShipping is the shipping method selected for a cart.
type CartShipping struct {
	Method string `json:"method"`
	Cost   Amount `json:"cost"`
}

// Cart is the server-persisted cart record, one per customer, owned by the
// commerce backend. Writes are full replaces of Items/Shipping/PromoCode.
type Cart struct {
	ID          string        `json:"id,omitempty"`
	CustomerID  string        `json:"customerId"`
	Items       []CartItem    `json:"items"`
	Shipping    *CartShipping `json:"shipping"`
	PromoCode   *string       `json:"promoCode"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// CartSyncRequest is the POST /api/cart/sync payload.
type CartSyncRequest struct {
	Items     []CartItem    `json:"items"`
	Shipping  *CartShipping `json:"shipping"`
	PromoCode *string       `json:"promoCode"`
}

// CartSyncResponse is the GET /api/cart/sync payload. When no cart exists the
// zero value (empty items, nil shipping and promo code) is returned as-is.
type CartSyncResponse struct {
	Items       []CartItem    `json:"items"`
	Shipping    *CartShipping `json:"shipping"`
	PromoCode   *string       `json:"promoCode"`
	LastUpdated *time.Time    `json:"lastUpdated,omitempty"`
}

// EmptyCartSyncResponse returns the shape clients receive when no persisted
// cart exists for the customer.
func EmptyCartSyncResponse() CartSyncResponse {
	return CartSyncResponse{Items: []CartItem{}}
}
