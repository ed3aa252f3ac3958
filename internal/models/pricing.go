package models

// Fixed figures for the storefront. All prices are in euros; shipping is a
// single flat-rate method.
const (
	Currency       = "EUR"
	ShippingMethod = "standard"
)

// PricingRequest is the POST /api/pricing payload. Discounts are computed by
// their dedicated apply-* endpoints and passed back in here by the client.
type PricingRequest struct {
	Items            []CartItem `json:"items"`
	Country          string     `json:"country"`
	LoyaltyDiscount  Amount     `json:"loyaltyDiscount"`
	PromoDiscount    Amount     `json:"promoDiscount"`
	ReferralDiscount Amount     `json:"referralDiscount"`
}

// PricingResult carries every figure of a priced cart in both decimal euros
// and integer cents. Total is never negative.
type PricingResult struct {
	Subtotal              float64 `json:"subtotal"`
	SubtotalCents         int64   `json:"subtotalCents"`
	ShippingCost          float64 `json:"shippingCost"`
	ShippingCostCents     int64   `json:"shippingCostCents"`
	LoyaltyDiscount       float64 `json:"loyaltyDiscount"`
	LoyaltyDiscountCents  int64   `json:"loyaltyDiscountCents"`
	PromoDiscount         float64 `json:"promoDiscount"`
	PromoDiscountCents    int64   `json:"promoDiscountCents"`
	ReferralDiscount      float64 `json:"referralDiscount"`
	ReferralDiscountCents int64   `json:"referralDiscountCents"`
	Total                 float64 `json:"total"`
	TotalCents            int64   `json:"totalCents"`
	Currency              string  `json:"currency"`
	ShippingMethod        string  `json:"shippingMethod"`
}
