package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value that decodes leniently. Numbers are taken as-is,
// numeric strings are parsed, and everything else (null, objects, garbage)
// becomes 0. Decoding never fails; callers rely on this when the storefront
// submits partially filled carts.
type Amount float64

// UnmarshalJSON implements fail-open decoding for Amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(parseLenientFloat(data))
	return nil
}

// Float returns the amount as a plain float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// Quantity is an item count that decodes leniently the same way Amount does.
// Fractional values are truncated toward zero.
type Quantity int

// UnmarshalJSON implements fail-open decoding for Quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity(parseLenientFloat(data))
	return nil
}

// parseLenientFloat extracts a finite float from arbitrary JSON, defaulting
// to 0 on anything it cannot read.
func parseLenientFloat(data []byte) float64 {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return 0
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return sanitizeFloat(f)
	}

	// Quoted numbers ("19.90") are accepted too
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			return sanitizeFloat(f)
		}
	}

	return 0
}

func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
