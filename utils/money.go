package utils

import (
	"github.com/shopspring/decimal"
)

// Placeholders for result slots that have no value
const (
	PlaceholderCount    = "-"
	PlaceholderOptional = "—"
)

// FormatPrice formats a currency amount with two decimals, like "$12.50"
func FormatPrice(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatOptionalPrice formats amount or returns the placeholder when nil
func FormatOptionalPrice(amount *decimal.Decimal) string {
	if amount == nil {
		return PlaceholderOptional
	}
	return FormatPrice(*amount)
}

// FormatOptionalWeight formats a weight in kilograms, like "1214.4 kg", or the placeholder when nil
func FormatOptionalWeight(kg *decimal.Decimal) string {
	if kg == nil {
		return PlaceholderOptional
	}
	return kg.String() + " kg"
}
