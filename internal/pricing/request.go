package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Platform enum constants
const (
	PlatformEbayUSA = "ebay_usa"
	PlatformShopee  = "shopee"
)

// Shipping mode enum constants (eBay only)
const (
	ShippingModeDDP = "ddp" // seller pays import duty
	ShippingModeDDU = "ddu" // buyer pays import duty
)

// AdditionalCosts holds operator-side cost adjustments in JPY plus the
// exchange safety margin in percent.
type AdditionalCosts struct {
	OutsourceFee   decimal.Decimal `json:"outsource_fee"`
	PackagingFee   decimal.Decimal `json:"packaging_fee"`
	ExchangeMargin decimal.Decimal `json:"exchange_margin"` // percent, may be negative
}

// TariffSettings carries optional per-request overrides of a Shopee country
// profile's duty parameters. Nil fields fall back to the profile defaults.
type TariffSettings struct {
	TariffRate     *decimal.Decimal `json:"tariff_rate,omitempty"`
	VATRate        *decimal.Decimal `json:"vat_rate,omitempty"`
	DutyFreeAmount *decimal.Decimal `json:"duty_free_amount,omitempty"`
}

// CalculationRequest is the marketplace-agnostic envelope for one profit
// calculation. The variant is discriminated by Platform: eBay requests use
// ShippingMode and TariffRates, Shopee requests use Country and TariffSettings.
type CalculationRequest struct {
	Platform     string `json:"platform"`
	Country      string `json:"country,omitempty"`
	ShippingMode string `json:"shipping_mode,omitempty"`

	ItemTitle     string          `json:"item_title"`
	PurchasePrice decimal.Decimal `json:"purchase_price"` // JPY
	SellPrice     decimal.Decimal `json:"sell_price"`     // marketplace currency
	Shipping      decimal.Decimal `json:"shipping"`       // marketplace currency
	Category      string          `json:"category"`

	AdditionalCosts AdditionalCosts `json:"additional_costs"`

	// eBay: category -> tariff percent overrides
	TariffRates map[string]decimal.Decimal `json:"tariff_rates,omitempty"`
	// Shopee: duty parameter overrides
	TariffSettings *TariffSettings `json:"tariff_settings,omitempty"`
}

// ValidationError reports a request rejected at the boundary. The calculation
// never runs and no history record is written for these.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the request before it reaches the calculators. Reference
// data misses (unknown category) are not validation errors; they resolve to
// defaults downstream.
func (r *CalculationRequest) Validate() error {
	if r.ItemTitle == "" {
		return &ValidationError{Field: "item_title", Message: "item title is required"}
	}
	if !r.PurchasePrice.IsPositive() {
		return &ValidationError{Field: "purchase_price", Message: "purchase price must be greater than zero"}
	}
	if !r.SellPrice.IsPositive() {
		return &ValidationError{Field: "sell_price", Message: "sell price must be greater than zero"}
	}
	if r.Shipping.IsNegative() {
		return &ValidationError{Field: "shipping", Message: "shipping cost cannot be negative"}
	}
	if r.AdditionalCosts.OutsourceFee.IsNegative() {
		return &ValidationError{Field: "additional_costs.outsource_fee", Message: "outsource fee cannot be negative"}
	}
	if r.AdditionalCosts.PackagingFee.IsNegative() {
		return &ValidationError{Field: "additional_costs.packaging_fee", Message: "packaging fee cannot be negative"}
	}

	switch r.Platform {
	case PlatformEbayUSA:
		if r.ShippingMode != ShippingModeDDP && r.ShippingMode != ShippingModeDDU {
			return &ValidationError{Field: "shipping_mode", Message: "shipping mode must be 'ddp' or 'ddu'"}
		}
	case PlatformShopee:
		if _, ok := CountryProfileFor(r.Country); !ok {
			return &ValidationError{Field: "country", Message: fmt.Sprintf("unknown shopee country '%s'", r.Country)}
		}
	default:
		return &ValidationError{Field: "platform", Message: fmt.Sprintf("unknown platform '%s'", r.Platform)}
	}

	return nil
}
