package pricing

import "github.com/shopspring/decimal"

// Rate snapshot sources
const (
	RateSourceStored  = "stored"
	RateSourceDefault = "default"
)

// RateSnapshot captures the exchange rate reference data consumed by one
// calculation run. A missing stored rate is recovered with the platform
// default and marked as such; it is never an error.
type RateSnapshot struct {
	BaseRate decimal.Decimal
	Source   string
}

var hundred = decimal.NewFromInt(100)

// SafeRate applies the operator's exchange safety margin to a base rate:
// base * (1 + margin/100). The margin is unclamped; a negative value models a
// pessimistic buffer against currency swings before settlement.
func SafeRate(baseRate, marginPercent decimal.Decimal) decimal.Decimal {
	return baseRate.Mul(decimal.NewFromInt(1).Add(marginPercent.Div(hundred)))
}
