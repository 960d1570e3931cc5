package format

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NotSpecified is the display fallback for absent values.
const NotSpecified = "Not specified"

// Currency renders an amount as US dollars with thousands separators.
func Currency(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// OptionalCurrency renders a nullable amount, falling back to
// NotSpecified when the value is absent.
func OptionalCurrency(amount *decimal.Decimal) string {
	if amount == nil {
		return NotSpecified
	}
	return Currency(*amount)
}
