package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BreakdownRow is one human-readable line of the calculation explanation.
// Operators use these rows to sanity-check automated pricing, so they are a
// first-class output of the engine, kept in a fixed order.
type BreakdownRow struct {
	Label   string `json:"label"`
	Amount  string `json:"amount"`
	Formula string `json:"formula"`
	Note    string `json:"note,omitempty"`
}

// CalculationResult is the full outcome of one profit calculation. JPY
// amounts are rounded to 0 decimals, local-currency amounts to 2.
type CalculationResult struct {
	ProfitLocal   decimal.Decimal `json:"profit_local"`
	ProfitJPY     decimal.Decimal `json:"profit_jpy"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	ROIPercent    decimal.Decimal `json:"roi_percent"`

	NetRevenueLocal decimal.Decimal `json:"net_revenue_local"`
	NetRevenueJPY   decimal.Decimal `json:"net_revenue_jpy"`
	TotalCostJPY    decimal.Decimal `json:"total_cost_jpy"`

	DutyLocal decimal.Decimal `json:"duty_local"`
	DutyJPY   decimal.Decimal `json:"duty_jpy"`
	FeesLocal decimal.Decimal `json:"fees_local"`
	FeesJPY   decimal.Decimal `json:"fees_jpy"`

	ExchangeRate          decimal.Decimal `json:"exchange_rate"`      // safe rate actually used
	BaseExchangeRate      decimal.Decimal `json:"base_exchange_rate"` // before margin
	ExchangeMarginPercent decimal.Decimal `json:"exchange_margin_percent"`
	RateSource            string          `json:"rate_source"`
	Currency              string          `json:"currency"`

	Breakdown map[string]decimal.Decimal `json:"breakdown"`
	Details   []BreakdownRow             `json:"details"`
}

// marginFloor is reported instead of the true ratio whenever net revenue in
// JPY is non-positive, so a deeply negative net never blows the figure up.
var marginFloor = decimal.NewFromInt(-100)

// Calculate runs the full landed-cost computation for a validated request and
// a reference-rate snapshot. It is pure: the same request and snapshot always
// produce the same result.
func Calculate(req CalculationRequest, snap RateSnapshot) (*CalculationResult, error) {
	revenue := req.SellPrice.Add(req.Shipping)

	var (
		currency  string
		fees      FeeBreakdown
		duty      DutyBreakdown
		fixedShip decimal.Decimal
	)

	switch req.Platform {
	case PlatformEbayUSA:
		currency = "USD"
		fees = EbayFees(revenue, req.Category)
		duty = EbayDuty(revenue, req.ShippingMode, req.Category, req.TariffRates)
		fixedShip = DomesticShippingJPY
	case PlatformShopee:
		profile, ok := CountryProfileFor(req.Country)
		if !ok {
			return nil, &ValidationError{Field: "country", Message: fmt.Sprintf("unknown shopee country '%s'", req.Country)}
		}
		currency = profile.Currency
		fees = ShopeeFees(revenue, profile)
		duty = ShopeeDuty(revenue, profile, req.TariffSettings)
		fixedShip = InternationalShippingJPY
	default:
		return nil, &ValidationError{Field: "platform", Message: fmt.Sprintf("unknown platform '%s'", req.Platform)}
	}

	safeRate := SafeRate(snap.BaseRate, req.AdditionalCosts.ExchangeMargin)

	netLocal := revenue.Sub(duty.Duty).Sub(fees.Total)
	netJPY := netLocal.Mul(safeRate)

	totalCost := req.PurchasePrice.
		Add(req.AdditionalCosts.OutsourceFee).
		Add(req.AdditionalCosts.PackagingFee).
		Add(fixedShip)
	if !totalCost.IsPositive() {
		return nil, &ValidationError{Field: "purchase_price", Message: "total cost must be greater than zero"}
	}

	netJPYRounded := netJPY.Round(0)
	profitJPY := netJPY.Sub(totalCost).Round(0)

	marginPercent := marginFloor
	if netJPYRounded.IsPositive() {
		marginPercent = profitJPY.Div(netJPYRounded).Mul(hundred).Round(2)
	}
	roiPercent := profitJPY.Div(totalCost).Mul(hundred).Round(2)

	profitLocal := decimal.Zero
	if !safeRate.IsZero() {
		profitLocal = profitJPY.Div(safeRate).Round(2)
	}

	res := &CalculationResult{
		ProfitLocal:   profitLocal,
		ProfitJPY:     profitJPY,
		MarginPercent: marginPercent,
		ROIPercent:    roiPercent,

		NetRevenueLocal: netLocal.Round(2),
		NetRevenueJPY:   netJPYRounded,
		TotalCostJPY:    totalCost.Round(0),

		DutyLocal: duty.Duty.Round(2),
		DutyJPY:   duty.Duty.Mul(safeRate).Round(0),
		FeesLocal: fees.Total.Round(2),
		FeesJPY:   fees.Total.Mul(safeRate).Round(0),

		ExchangeRate:          safeRate,
		BaseExchangeRate:      snap.BaseRate,
		ExchangeMarginPercent: req.AdditionalCosts.ExchangeMargin,
		RateSource:            snap.Source,
		Currency:              currency,
	}

	res.Breakdown = map[string]decimal.Decimal{
		"revenue_local":      revenue.Round(2),
		"fees_local":         res.FeesLocal,
		"duty_local":         res.DutyLocal,
		"net_revenue_local":  res.NetRevenueLocal,
		"net_revenue_jpy":    res.NetRevenueJPY,
		"purchase_price":     req.PurchasePrice.Round(0),
		"outsource_fee":      req.AdditionalCosts.OutsourceFee.Round(0),
		"packaging_fee":      req.AdditionalCosts.PackagingFee.Round(0),
		"fixed_shipping_jpy": fixedShip,
		"total_cost_jpy":     res.TotalCostJPY,
		"profit_jpy":         res.ProfitJPY,
	}

	res.Details = buildDetails(req, revenue, fees, duty, fixedShip, snap, safeRate, res)

	return res, nil
}

func buildDetails(req CalculationRequest, revenue decimal.Decimal, fees FeeBreakdown, duty DutyBreakdown,
	fixedShip decimal.Decimal, snap RateSnapshot, safeRate decimal.Decimal, res *CalculationResult) []BreakdownRow {

	cur := res.Currency
	rows := []BreakdownRow{
		{
			Label:   "Gross revenue",
			Amount:  FormatAmount(revenue, cur),
			Formula: fmt.Sprintf("sell %s + shipping %s", FormatAmount(req.SellPrice, cur), FormatAmount(req.Shipping, cur)),
		},
	}

	switch req.Platform {
	case PlatformEbayUSA:
		rows = append(rows,
			BreakdownRow{
				Label:   "Final value fee",
				Amount:  FormatAmount(fees.FinalValueFee, cur),
				Formula: fmt.Sprintf("%s * %s", FormatAmount(revenue, cur), FormatPercent(fees.FVFRate.Mul(hundred))),
			},
			BreakdownRow{
				Label:   "Payment fee",
				Amount:  FormatAmount(fees.PaymentFee, cur),
				Formula: fmt.Sprintf("%s * 3.49%% + %s", FormatAmount(revenue, cur), FormatAmount(ebayFees.PaymentFeeFixed, cur)),
			},
			BreakdownRow{
				Label:   "International fee",
				Amount:  FormatAmount(fees.InternationalFee, cur),
				Formula: fmt.Sprintf("%s * 1.5%%", FormatAmount(revenue, cur)),
			},
		)
		if req.ShippingMode == ShippingModeDDU {
			rows = append(rows, BreakdownRow{
				Label:   "Import duty (DDU)",
				Amount:  FormatAmount(decimal.Zero, cur),
				Formula: "0",
				Note:    "buyer bears import duty under DDU",
			})
		} else {
			rows = append(rows, BreakdownRow{
				Label:   "Import duty (DDP)",
				Amount:  FormatAmount(duty.Duty, cur),
				Formula: fmt.Sprintf("%s * %s", FormatAmount(revenue, cur), FormatPercent(duty.TariffRate)),
				Note:    "seller bears import duty under DDP",
			})
		}
	case PlatformShopee:
		rows = append(rows,
			BreakdownRow{
				Label:   "Commission fee",
				Amount:  FormatAmount(fees.CommissionFee, cur),
				Formula: fmt.Sprintf("%s * %s", FormatAmount(revenue, cur), FormatPercent(fees.CommissionRate)),
			},
			BreakdownRow{
				Label:   "Transaction fee",
				Amount:  FormatAmount(fees.TransactionFee, cur),
				Formula: fmt.Sprintf("%s * %s", FormatAmount(revenue, cur), FormatPercent(fees.TransactionRate)),
			},
			BreakdownRow{
				Label:   "Import tariff",
				Amount:  FormatAmount(duty.TariffAmount, cur),
				Formula: fmt.Sprintf("max(0, %s - %s) * %s", FormatAmount(revenue, cur), FormatAmount(duty.DutyFreeAmount, cur), FormatPercent(duty.TariffRate)),
				Note:    fmt.Sprintf("duty-free threshold %s", FormatAmount(duty.DutyFreeAmount, cur)),
			},
			BreakdownRow{
				Label:   "VAT",
				Amount:  FormatAmount(duty.VATAmount, cur),
				Formula: fmt.Sprintf("(%s + %s) * %s", FormatAmount(duty.TaxableAmount, cur), FormatAmount(duty.TariffAmount, cur), FormatPercent(duty.VATRate)),
			},
		)
	}

	shipNote := "fixed international shipping"
	if req.Platform == PlatformEbayUSA {
		shipNote = "fixed domestic shipping"
	}

	rows = append(rows,
		BreakdownRow{
			Label:   "Net revenue",
			Amount:  FormatAmount(res.NetRevenueLocal, cur),
			Formula: fmt.Sprintf("%s - %s - %s", FormatAmount(revenue, cur), FormatAmount(res.DutyLocal, cur), FormatAmount(res.FeesLocal, cur)),
		},
		BreakdownRow{
			Label:   "Safe exchange rate",
			Amount:  safeRate.StringFixed(4) + " JPY/" + cur,
			Formula: fmt.Sprintf("%s * (1 + %s)", snap.BaseRate.StringFixed(4), FormatPercent(req.AdditionalCosts.ExchangeMargin)),
			Note:    "base rate source: " + snap.Source,
		},
		BreakdownRow{
			Label:   "Net revenue (JPY)",
			Amount:  FormatAmount(res.NetRevenueJPY, "JPY"),
			Formula: fmt.Sprintf("%s * %s", FormatAmount(res.NetRevenueLocal, cur), safeRate.StringFixed(4)),
		},
		BreakdownRow{
			Label:  "Total cost (JPY)",
			Amount: FormatAmount(res.TotalCostJPY, "JPY"),
			Formula: fmt.Sprintf("purchase %s + outsource %s + packaging %s + shipping %s",
				FormatAmount(req.PurchasePrice, "JPY"),
				FormatAmount(req.AdditionalCosts.OutsourceFee, "JPY"),
				FormatAmount(req.AdditionalCosts.PackagingFee, "JPY"),
				FormatAmount(fixedShip, "JPY")),
			Note: fmt.Sprintf("%s %s", shipNote, FormatAmount(fixedShip, "JPY")),
		},
		BreakdownRow{
			Label:   "Profit (JPY)",
			Amount:  FormatAmount(res.ProfitJPY, "JPY"),
			Formula: fmt.Sprintf("%s - %s", FormatAmount(res.NetRevenueJPY, "JPY"), FormatAmount(res.TotalCostJPY, "JPY")),
		},
		BreakdownRow{
			Label:   "Margin",
			Amount:  res.MarginPercent.StringFixed(2) + "%",
			Formula: "profit / net revenue * 100",
		},
		BreakdownRow{
			Label:   "ROI",
			Amount:  res.ROIPercent.StringFixed(2) + "%",
			Formula: "profit / total cost * 100",
		},
	)

	return rows
}
