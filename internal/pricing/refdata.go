package pricing

import "github.com/shopspring/decimal"

// Static reference data for both marketplaces. Loaded once at startup and
// never mutated; per-request overrides are applied in the calculators, not
// written back here.

// CountryProfile holds the fixed per-country parameters for a Shopee market.
type CountryProfile struct {
	Code            string
	Name            string
	Currency        string
	BaseRate        decimal.Decimal // JPY per 1 unit of local currency
	TariffRate      decimal.Decimal // percent
	VATRate         decimal.Decimal // percent
	DutyFreeAmount  decimal.Decimal // local currency
	CommissionRate  decimal.Decimal // percent
	TransactionRate decimal.Decimal // percent
}

// EbayFeeSchedule holds the marketplace-wide eBay fee constants plus the
// per-category final-value-fee table.
type EbayFeeSchedule struct {
	FVFRates             map[string]decimal.Decimal // fractional, e.g. 0.129
	PaymentFeeRate       decimal.Decimal            // fractional
	PaymentFeeFixed      decimal.Decimal            // USD
	InternationalFeeRate decimal.Decimal            // fractional
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const (
	// Fallback key for category lookups on the eBay tables.
	CategoryOther = "other"

	// Fallback JPY/USD rate when no stored rate exists.
	DefaultUSDJPYRate = 150.0
)

// Platform-fixed shipping cost baked into total landed cost (JPY).
var (
	DomesticShippingJPY      = decimal.NewFromInt(300) // eBay: domestic leg to forwarder
	InternationalShippingJPY = decimal.NewFromInt(500) // Shopee: cross-border small packet
)

var ebayFees = EbayFeeSchedule{
	FVFRates: map[string]decimal.Decimal{
		"electronics":  dec("0.129"),
		"cameras":      dec("0.129"),
		"fashion":      dec("0.135"),
		"collectibles": dec("0.1325"),
		"music":        dec("0.1325"),
		"toys":         dec("0.1335"),
		CategoryOther:  dec("0.1325"),
	},
	PaymentFeeRate:       dec("0.0349"),
	PaymentFeeFixed:      dec("0.49"),
	InternationalFeeRate: dec("0.015"),
}

// Builtin DDP tariff defaults (percent), used when the request supplies no
// override for the category nor an "other" override.
var ebayTariffDefaults = map[string]decimal.Decimal{
	"electronics": dec("7.5"),
	"textiles":    dec("12.0"),
	CategoryOther: dec("5.0"),
}

var countryProfiles = map[string]CountryProfile{
	"sg": {Code: "sg", Name: "Singapore", Currency: "SGD", BaseRate: dec("113.0"),
		TariffRate: dec("0"), VATRate: dec("9"), DutyFreeAmount: dec("400"),
		CommissionRate: dec("6.0"), TransactionRate: dec("2.0")},
	"my": {Code: "my", Name: "Malaysia", Currency: "MYR", BaseRate: dec("34.0"),
		TariffRate: dec("5"), VATRate: dec("10"), DutyFreeAmount: dec("500"),
		CommissionRate: dec("7.0"), TransactionRate: dec("2.12")},
	"th": {Code: "th", Name: "Thailand", Currency: "THB", BaseRate: dec("4.3"),
		TariffRate: dec("10"), VATRate: dec("7"), DutyFreeAmount: dec("1500"),
		CommissionRate: dec("8.0"), TransactionRate: dec("3.21")},
	"ph": {Code: "ph", Name: "Philippines", Currency: "PHP", BaseRate: dec("2.65"),
		TariffRate: dec("5"), VATRate: dec("12"), DutyFreeAmount: dec("10000"),
		CommissionRate: dec("6.0"), TransactionRate: dec("2.24")},
	"vn": {Code: "vn", Name: "Vietnam", Currency: "VND", BaseRate: dec("0.0062"),
		TariffRate: dec("10"), VATRate: dec("10"), DutyFreeAmount: dec("1000000"),
		CommissionRate: dec("9.0"), TransactionRate: dec("5.0")},
	"id": {Code: "id", Name: "Indonesia", Currency: "IDR", BaseRate: dec("0.0095"),
		TariffRate: dec("7.5"), VATRate: dec("11"), DutyFreeAmount: dec("45000"),
		CommissionRate: dec("8.0"), TransactionRate: dec("2.0")},
	"tw": {Code: "tw", Name: "Taiwan", Currency: "TWD", BaseRate: dec("4.8"),
		TariffRate: dec("6.35"), VATRate: dec("5"), DutyFreeAmount: dec("2000"),
		CommissionRate: dec("5.5"), TransactionRate: dec("2.2")},
}

// CountryProfileFor returns the fixed profile for a Shopee country code.
func CountryProfileFor(code string) (CountryProfile, bool) {
	p, ok := countryProfiles[code]
	return p, ok
}
