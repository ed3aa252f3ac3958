package pricing

import (
	"fmt"

	"cbd-storefront/internal/models"
)

// Loyalty tier thresholds. Tiers are checked highest first; the first match
// wins. Counts include only delivered or shipped orders.
const (
	goldTierOrders   = 5
	silverTierOrders = 3
	goldTierRate     = 0.10
	silverTierRate   = 0.05
)

// TierRate returns the loyalty discount rate and a display message for a
// customer with the given completed-order count.
func TierRate(ordersCount int) (float64, string) {
	switch {
	case ordersCount >= goldTierOrders:
		return goldTierRate, fmt.Sprintf("Loyal customer: 10%% off for your %d completed orders", ordersCount)
	case ordersCount >= silverTierOrders:
		return silverTierRate, fmt.Sprintf("Thank you for coming back: 5%% off for your %d completed orders", ordersCount)
	default:
		return 0, "No loyalty discount yet"
	}
}

// LoyaltyDiscount computes the discount amount for a subtotal at the tier
// reached with ordersCount completed orders.
func LoyaltyDiscount(subtotal float64, ordersCount int) float64 {
	rate, _ := TierRate(ordersCount)
	return Round2(subtotal * rate)
}

// DetermineReward builds the reward attached to a loyalty application. Only
// the none and discount types are produced; the sample/free-shipping/
// free-product tiers in the taxonomy are not implemented.
func DetermineReward(ordersCount int) models.Reward {
	rate, message := TierRate(ordersCount)
	if rate == 0 {
		return models.Reward{Type: models.RewardNone, Message: message}
	}
	return models.Reward{Type: models.RewardDiscount, Message: message}
}

// NextOrderReward describes what the customer unlocks with future orders,
// for display next to the cart.
func NextOrderReward(ordersCount int) string {
	switch {
	case ordersCount >= goldTierOrders:
		return "You are at the highest loyalty tier: 10% off every order"
	case ordersCount >= silverTierOrders:
		remaining := goldTierOrders - ordersCount
		return fmt.Sprintf("%d more completed orders until 10%% off", remaining)
	default:
		remaining := silverTierOrders - ordersCount
		return fmt.Sprintf("%d more completed orders until 5%% off", remaining)
	}
}
