package models

// RewardType classifies a loyalty reward. Only RewardNone and RewardDiscount
// are produced today; the remaining types exist because the storefront's
// reward display code consumes the field, but no tier yields them.
type RewardType string

const (
	RewardNone         RewardType = "none"
	RewardDiscount     RewardType = "discount"
	RewardSample       RewardType = "sample"
	RewardFreeShipping RewardType = "free_shipping"
	RewardFreeProduct  RewardType = "free_product"
)

// Reward describes the loyalty outcome for an order. Message is display-only.
type Reward struct {
	Type    RewardType `json:"type"`
	Message string     `json:"message"`
}

// LoyaltyStatus is the customer's loyalty state, derived fresh from order
// history on every computation and never cached.
type LoyaltyStatus struct {
	OrdersCount  int     `json:"ordersCount"`
	DiscountRate float64 `json:"discountRate"`
	Message      string  `json:"message"`
}
