package pricing

import "strings"

// Shipping thresholds and flat rates in euros. Belgium gets its own tier;
// every other destination, recognized or not, uses the domestic one.
const (
	domesticFreeThreshold = 50
	domesticFlatRate      = 5
	belgiumFreeThreshold  = 200
	belgiumFlatRate       = 10
)

var belgiumAliases = map[string]bool{
	"belgique": true,
	"belgium":  true,
	"be":       true,
}

// ShippingCost returns the shipping cost for a cart subtotal shipped to the
// given destination country. The country string is free text from the
// storefront; it is trimmed and lowercased before matching.
func ShippingCost(subtotal float64, country string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(country))

	if belgiumAliases[normalized] {
		if subtotal >= belgiumFreeThreshold {
			return 0
		}
		return belgiumFlatRate
	}

	if subtotal >= domesticFreeThreshold {
		return 0
	}
	return domesticFlatRate
}
