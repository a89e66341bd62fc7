package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Chip amounts go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// AmountScale is the number of fractional digits accepted on chip amounts
const AmountScale = 2

// Exponent bounds checked before any arithmetic on an incoming amount.
// Rescaling a decimal costs 10^|exponent|, so "1e-20000000" must never reach Truncate.
const (
	minAmountExponent = -(AmountScale + 2)
	maxAmountExponent = 9
)

var (
	// RakeRate is the share of the pot taken by the house
	RakeRate = decimal.RequireFromString("0.05")
	// RakeCap is the most rake taken from a single pot
	RakeCap = decimal.NewFromInt(10)
	// MaxChipAmount bounds any single chip amount
	MaxChipAmount = decimal.NewFromInt(1_000_000_000)
)

// RakeResult is the outcome of completing a hand
type RakeResult struct {
	Pot          decimal.Decimal
	Rake         decimal.Decimal
	PotAfterRake decimal.Decimal
}

// CalculateRake computes rake = min(pot*RakeRate, RakeCap) and what is left of the pot.
// Negative pots are treated as empty.
func CalculateRake(pot decimal.Decimal) RakeResult {
	if pot.IsNegative() {
		pot = decimal.Zero
	}
	rake := decimal.Min(pot.Mul(RakeRate), RakeCap)
	return RakeResult{
		Pot:          pot,
		Rake:         rake,
		PotAfterRake: pot.Sub(rake),
	}
}

// ValidateAmount records a field error unless amount is within [0, MaxChipAmount]
// (strictly positive when positive is set) and has at most AmountScale fractional digits.
func ValidateAmount(v *ValidationError, field string, amount decimal.Decimal, positive bool) {
	switch {
	case positive && !amount.IsPositive():
		v.Add(field, "must be greater than 0")
	case amount.IsNegative():
		v.Add(field, "must not be negative")
	case amount.Exponent() > maxAmountExponent:
		v.Addf(field, "must not exceed %s", MaxChipAmount.String())
	case amount.Exponent() < minAmountExponent:
		v.Addf(field, "must have at most %d decimal places", AmountScale)
	case amount.GreaterThan(MaxChipAmount):
		v.Addf(field, "must not exceed %s", MaxChipAmount.String())
	case !amount.Equal(amount.Truncate(AmountScale)):
		v.Addf(field, "must have at most %d decimal places", AmountScale)
	}
}
