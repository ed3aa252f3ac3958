package pricing

import "cbd-storefront/internal/models"

// Subtotal sums price times quantity over the submitted line items, rounded
// to cents. Prices come straight from the client; the pricing endpoint does
// not validate them against the catalog.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price.Float() * float64(item.Quantity)
	}
	return Round2(sum)
}

// Quote computes the full pricing breakdown for a cart. The three discounts
// are supplied by the caller (each computed by its own apply-* endpoint) and
// are defensively rounded and clamped before stacking. Every intermediate
// figure is rounded to cents before the final summation so repeated quotes
// never drift.
func Quote(items []models.CartItem, country string, loyalty, promo, referral float64) models.PricingResult {
	subtotal := Subtotal(items)
	shipping := Round2(ShippingCost(subtotal, country))

	loyalty = ClampNonNegative(Round2(loyalty))
	promo = ClampNonNegative(Round2(promo))
	referral = ClampNonNegative(Round2(referral))

	total := Round2(ClampNonNegative(subtotal + shipping - (loyalty + promo + referral)))

	return models.PricingResult{
		Subtotal:              subtotal,
		SubtotalCents:         ToCents(subtotal),
		ShippingCost:          shipping,
		ShippingCostCents:     ToCents(shipping),
		LoyaltyDiscount:       loyalty,
		LoyaltyDiscountCents:  ToCents(loyalty),
		PromoDiscount:         promo,
		PromoDiscountCents:    ToCents(promo),
		ReferralDiscount:      referral,
		ReferralDiscountCents: ToCents(referral),
		Total:                 total,
		TotalCents:            ToCents(total),
		Currency:              models.Currency,
		ShippingMethod:        models.ShippingMethod,
	}
}
