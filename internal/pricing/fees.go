package pricing

import "github.com/shopspring/decimal"

// FeeBreakdown decomposes the marketplace fees charged on one sale. All
// amounts are in the marketplace-local currency and are computed on gross
// revenue (sell price + shipping), before any duty deduction.
type FeeBreakdown struct {
	// eBay components
	FinalValueFee    decimal.Decimal
	FVFRate          decimal.Decimal // fractional rate actually applied
	PaymentFee       decimal.Decimal
	InternationalFee decimal.Decimal

	// Shopee components
	CommissionFee   decimal.Decimal
	CommissionRate  decimal.Decimal // percent
	TransactionFee  decimal.Decimal
	TransactionRate decimal.Decimal // percent

	Total decimal.Decimal
}

// FVFRate resolves the final-value-fee rate for a category, falling back to
// the "other" bucket for categories not in the table.
func (s EbayFeeSchedule) FVFRate(category string) decimal.Decimal {
	if rate, ok := s.FVFRates[category]; ok {
		return rate
	}
	return s.FVFRates[CategoryOther]
}

// EbayFees computes the three eBay fee components on gross revenue:
// final value fee, payment processing fee (rate + fixed), international fee.
func EbayFees(revenue decimal.Decimal, category string) FeeBreakdown {
	fvfRate := ebayFees.FVFRate(category)

	fvf := revenue.Mul(fvfRate)
	payment := revenue.Mul(ebayFees.PaymentFeeRate).Add(ebayFees.PaymentFeeFixed)
	intl := revenue.Mul(ebayFees.InternationalFeeRate)

	return FeeBreakdown{
		FinalValueFee:    fvf,
		FVFRate:          fvfRate,
		PaymentFee:       payment,
		InternationalFee: intl,
		Total:            fvf.Add(payment).Add(intl),
	}
}

// ShopeeFees computes commission and transaction fees from the country
// profile's percent rates.
func ShopeeFees(revenue decimal.Decimal, profile CountryProfile) FeeBreakdown {
	commission := revenue.Mul(profile.CommissionRate).Div(hundred)
	transaction := revenue.Mul(profile.TransactionRate).Div(hundred)

	return FeeBreakdown{
		CommissionFee:   commission,
		CommissionRate:  profile.CommissionRate,
		TransactionFee:  transaction,
		TransactionRate: profile.TransactionRate,
		Total:           commission.Add(transaction),
	}
}
