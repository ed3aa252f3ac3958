package models

import "time"

// Customer is the backend's view of an authenticated customer.
type Customer struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName,omitempty"`
	ReferralCode  string `json:"referralCode,omitempty"`
	WalletBalance Amount `json:"walletBalance"`
}

// Order statuses as reported by the commerce backend. Only delivered and
// shipped orders count toward loyalty tiers.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a completed or in-flight order from the customer's history.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     Amount    `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsCompleted reports whether the order counts toward loyalty tiers.
func (o Order) IsCompleted() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusShipped
}

// PromoCode is a backend-managed discount code.
type PromoCode struct {
	Code   string `json:"code"`
	Kind   string `json:"kind"` // "percentage" or "amount"
	Value  Amount `json:"value"`
	Active bool   `json:"active"`
}

// Promo code kinds.
const (
	PromoKindPercentage = "percentage"
	PromoKindAmount     = "amount"
)

// Referral is the backend's answer to a referral code validation.
type Referral struct {
	Code  string  `json:"code"`
	Valid bool    `json:"valid"`
	Rate  float64 `json:"rate"`
}
