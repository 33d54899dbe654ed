package pricing

import "github.com/shopspring/decimal"

// DutyBreakdown decomposes the import duty/tax charged on one sale, in the
// marketplace-local currency.
type DutyBreakdown struct {
	Duty decimal.Decimal

	// eBay
	TariffRate decimal.Decimal // percent actually applied (0 for DDU)

	// Shopee cascade intermediates
	TaxableAmount  decimal.Decimal
	TariffAmount   decimal.Decimal
	VATAmount      decimal.Decimal
	VATRate        decimal.Decimal // percent
	DutyFreeAmount decimal.Decimal
}

// EbayTariffRate resolves the DDP tariff percent for a category:
// request override for the category, then the request's "other" override,
// then the builtin defaults (same category-then-other order).
func EbayTariffRate(category string, overrides map[string]decimal.Decimal) decimal.Decimal {
	if rate, ok := overrides[category]; ok {
		return rate
	}
	if rate, ok := overrides[CategoryOther]; ok {
		return rate
	}
	if rate, ok := ebayTariffDefaults[category]; ok {
		return rate
	}
	return ebayTariffDefaults[CategoryOther]
}

// EbayDuty computes seller-borne import duty for eBay. Under DDU the buyer
// bears the duty, so the seller-side figure is zero by business policy.
func EbayDuty(revenue decimal.Decimal, shippingMode, category string, overrides map[string]decimal.Decimal) DutyBreakdown {
	if shippingMode == ShippingModeDDU {
		return DutyBreakdown{Duty: decimal.Zero, TariffRate: decimal.Zero}
	}

	rate := EbayTariffRate(category, overrides)
	return DutyBreakdown{
		Duty:       revenue.Mul(rate).Div(hundred),
		TariffRate: rate,
	}
}

// ShopeeDuty runs the threshold -> tariff -> VAT cascade:
//
//	taxable = max(0, revenue - dutyFree)
//	tariff  = taxable * tariffRate/100
//	vat     = (taxable + tariff) * vatRate/100
//
// Revenue at or below the duty-free threshold yields zero tariff and zero VAT.
// Override rates from TariffSettings are applied as given, without clamping.
func ShopeeDuty(revenue decimal.Decimal, profile CountryProfile, settings *TariffSettings) DutyBreakdown {
	tariffRate := profile.TariffRate
	vatRate := profile.VATRate
	dutyFree := profile.DutyFreeAmount

	if settings != nil {
		if settings.TariffRate != nil {
			tariffRate = *settings.TariffRate
		}
		if settings.VATRate != nil {
			vatRate = *settings.VATRate
		}
		if settings.DutyFreeAmount != nil {
			dutyFree = *settings.DutyFreeAmount
		}
	}

	taxable := revenue.Sub(dutyFree)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	tariff := taxable.Mul(tariffRate).Div(hundred)
	// VAT base includes the tariff itself, not taxable alone.
	vat := taxable.Add(tariff).Mul(vatRate).Div(hundred)

	return DutyBreakdown{
		Duty:           tariff.Add(vat),
		TariffRate:     tariffRate,
		TaxableAmount:  taxable,
		TariffAmount:   tariff,
		VATAmount:      vat,
		VATRate:        vatRate,
		DutyFreeAmount: dutyFree,
	}
}
