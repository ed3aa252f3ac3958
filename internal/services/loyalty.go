package services

import (
	"context"
	"fmt"

	"cbd-storefront/internal/models"
	"cbd-storefront/internal/pricing"
)

// LoyaltyService derives loyalty state from a customer's order history and
// applies tier discounts at checkout. State is computed fresh on every call;
// nothing is cached.
type LoyaltyService struct {
	backend BackendInterface
}

// NewLoyaltyService creates a new loyalty service.
func NewLoyaltyService(backend BackendInterface) *LoyaltyService {
	return &LoyaltyService{backend: backend}
}

// LoyaltyApplication is the result of applying the customer's loyalty tier to
// a checkout total.
type LoyaltyApplication struct {
	OriginalTotal    float64       `json:"originalTotal"`
	Discount         float64       `json:"discount"`
	ShippingCost     float64       `json:"shippingCost"`
	NewTotal         float64       `json:"newTotal"`
	FreeProductAdded bool          `json:"freeProductAdded"`
	Reward           models.Reward `json:"reward"`
	NextOrderReward  string        `json:"nextOrderReward"`
}

// Status returns the customer's current loyalty state.
func (s *LoyaltyService) Status(ctx context.Context, token string) (*models.LoyaltyStatus, error) {
	count, err := s.completedOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	rate, message := pricing.TierRate(count)
	return &models.LoyaltyStatus{
		OrdersCount:  count,
		DiscountRate: rate,
		Message:      message,
	}, nil
}

// Apply computes the loyalty discount for a checkout. cartTotal is the cart
// subtotal before shipping; shippingCost is echoed into the new total.
func (s *LoyaltyService) Apply(ctx context.Context, token string, cartTotal, shippingCost float64) (*LoyaltyApplication, error) {
	count, err := s.completedOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	cartTotal = pricing.Round2(cartTotal)
	shippingCost = pricing.ClampNonNegative(pricing.Round2(shippingCost))
	discount := pricing.LoyaltyDiscount(cartTotal, count)
	newTotal := pricing.Round2(pricing.ClampNonNegative(cartTotal + shippingCost - discount))

	return &LoyaltyApplication{
		OriginalTotal:    cartTotal,
		Discount:         discount,
		ShippingCost:     shippingCost,
		NewTotal:         newTotal,
		FreeProductAdded: false,
		Reward:           pricing.DetermineReward(count),
		NextOrderReward:  pricing.NextOrderReward(count),
	}, nil
}

// completedOrders counts the customer's delivered and shipped orders.
func (s *LoyaltyService) completedOrders(ctx context.Context, token string) (int, error) {
	orders, err := s.backend.CustomerOrders(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to load order history: %w", err)
	}

	count := 0
	for _, order := range orders {
		if order.IsCompleted() {
			count++
		}
	}
	return count, nil
}
