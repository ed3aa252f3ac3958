package pricing

import (
	"testing"

	"cbd-storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTierRate(t *testing.T) {
	tests := []struct {
		orders int
		rate   float64
	}{
		{0, 0},
		{2, 0},
		{3, 0.05},
		{4, 0.05},
		{5, 0.10},
		{12, 0.10},
	}

	for _, tt := range tests {
		rate, _ := TierRate(tt.orders)
		assert.Equal(t, tt.rate, rate, "orders=%d", tt.orders)
	}
}

func TestLoyaltyDiscount(t *testing.T) {
	assert.Equal(t, 0.0, LoyaltyDiscount(100, 2))
	assert.Equal(t, 5.0, LoyaltyDiscount(100, 3))
	assert.Equal(t, 10.0, LoyaltyDiscount(100, 5))

	// Rounded to cents exactly
	assert.Equal(t, 1.0, LoyaltyDiscount(19.99, 3))
	assert.Equal(t, 2.0, LoyaltyDiscount(19.99, 5))
}

func TestDetermineReward(t *testing.T) {
	assert.Equal(t, models.RewardNone, DetermineReward(0).Type)
	assert.Equal(t, models.RewardNone, DetermineReward(2).Type)
	assert.Equal(t, models.RewardDiscount, DetermineReward(3).Type)
	assert.Equal(t, models.RewardDiscount, DetermineReward(7).Type)

	// Message always present for display
	assert.NotEmpty(t, DetermineReward(0).Message)
	assert.NotEmpty(t, DetermineReward(5).Message)
}

func TestNextOrderReward(t *testing.T) {
	assert.Contains(t, NextOrderReward(0), "3 more")
	assert.Contains(t, NextOrderReward(2), "1 more")
	assert.Contains(t, NextOrderReward(3), "2 more")
	assert.Contains(t, NextOrderReward(5), "highest")
}
