package domain

import "github.com/shopspring/decimal"

// MinorUnitPlaces is the currency minor-unit precision amounts are held at.
const MinorUnitPlaces int32 = 2

// Amount bounds. MaxAmountIntegerDigits matches the NUMERIC(20,2) line columns.
const (
	MaxAmountIntegerDigits = 18
	MaxAmountScale         = 18
)

// NormalizeAmount rounds an incoming amount to MinorUnitPlaces using
// round-half-even. It is applied once, where amounts enter the ledger.
// Callers check AmountInRange first; rounding rescales the coefficient by 10^exponent.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MinorUnitPlaces)
}

// AmountInRange reports whether d has at most MaxAmountIntegerDigits integer digits
// and an exponent within MaxAmountScale. It reads only the coefficient and exponent.
func AmountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxAmountScale || exp > MaxAmountIntegerDigits {
		return false
	}
	if d.IsZero() {
		return true
	}
	return int64(d.NumDigits())+exp <= MaxAmountIntegerDigits
}
