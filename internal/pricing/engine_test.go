package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ebayRequest() CalculationRequest {
	return CalculationRequest{
		Platform:      PlatformEbayUSA,
		ShippingMode:  ShippingModeDDP,
		ItemTitle:     "Sony WH-1000XM4 headphones",
		PurchasePrice: decimal.NewFromInt(10000),
		SellPrice:     decimal.NewFromInt(100),
		Shipping:      decimal.NewFromInt(10),
		Category:      "electronics",
		AdditionalCosts: AdditionalCosts{
			OutsourceFee:   decimal.NewFromInt(500),
			PackagingFee:   decimal.NewFromInt(300),
			ExchangeMargin: decimal.NewFromInt(2),
		},
	}
}

func TestCalculateEbayDDPScenario(t *testing.T) {
	snap := RateSnapshot{BaseRate: decimal.NewFromInt(150), Source: RateSourceDefault}

	res, err := Calculate(ebayRequest(), snap)
	require.NoError(t, err)

	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, "11100", res.TotalCostJPY.StringFixed(0))
	assert.Equal(t, "8.25", res.DutyLocal.StringFixed(2))
	assert.Equal(t, "20.17", res.FeesLocal.StringFixed(2))
	assert.Equal(t, "81.58", res.NetRevenueLocal.StringFixed(2))
	assert.Equal(t, "153.00", res.ExchangeRate.StringFixed(2))
	assert.Equal(t, "150.00", res.BaseExchangeRate.StringFixed(2))
	assert.Equal(t, "12482", res.NetRevenueJPY.StringFixed(0))
	assert.Equal(t, "1382", res.ProfitJPY.StringFixed(0))
	assert.Equal(t, "11.07", res.MarginPercent.StringFixed(2))
	assert.Equal(t, "12.45", res.ROIPercent.StringFixed(2))

	require.NotEmpty(t, res.Details)
	assert.Equal(t, "Gross revenue", res.Details[0].Label)
	assert.Equal(t, "$110.00", res.Details[0].Amount)

	for _, key := range []string{"revenue_local", "fees_local", "duty_local", "net_revenue_jpy", "total_cost_jpy", "profit_jpy"} {
		_, ok := res.Breakdown[key]
		assert.True(t, ok, "missing breakdown key %s", key)
	}
}

func TestCalculateEbayDDUHasNoDuty(t *testing.T) {
	req := ebayRequest()
	req.ShippingMode = ShippingModeDDU
	snap := RateSnapshot{BaseRate: decimal.NewFromInt(150), Source: RateSourceDefault}

	res, err := Calculate(req, snap)
	require.NoError(t, err)

	assert.True(t, res.DutyLocal.IsZero())
	// No duty means more net revenue than the DDP run
	ddp, err := Calculate(ebayRequest(), snap)
	require.NoError(t, err)
	assert.True(t, res.NetRevenueLocal.GreaterThan(ddp.NetRevenueLocal))
}

func TestCalculateShopeeBelowDutyFreeThreshold(t *testing.T) {
	req := CalculationRequest{
		Platform:      PlatformShopee,
		Country:       "sg",
		ItemTitle:     "Gundam model kit",
		PurchasePrice: decimal.NewFromInt(5000),
		SellPrice:     decimal.NewFromInt(300),
		Shipping:      decimal.NewFromInt(50),
		Category:      "toys",
	}
	snap := RateSnapshot{BaseRate: decimal.NewFromFloat(113.0), Source: RateSourceDefault}

	res, err := Calculate(req, snap)
	require.NoError(t, err)

	// revenue 350 SGD is under the 400 SGD threshold
	assert.True(t, res.DutyLocal.IsZero())
	assert.Equal(t, "SGD", res.Currency)
	// fees still apply: 350 * (6% + 2%) = 28
	assert.Equal(t, "28.00", res.FeesLocal.StringFixed(2))
	// Shopee carries the fixed international shipping cost
	assert.Equal(t, "5500", res.TotalCostJPY.StringFixed(0))
}

func TestCalculateMarginFloor(t *testing.T) {
	t.Run("ZeroNetRevenueFloorsAtMinus100", func(t *testing.T) {
		req := ebayRequest()
		// -100% margin zeroes the safe rate, so net revenue JPY is 0
		req.AdditionalCosts.ExchangeMargin = decimal.NewFromInt(-100)
		res, err := Calculate(req, RateSnapshot{BaseRate: decimal.NewFromInt(150), Source: RateSourceDefault})
		require.NoError(t, err)

		assert.True(t, res.NetRevenueJPY.IsZero())
		assert.Equal(t, "-100.00", res.MarginPercent.StringFixed(2))
		assert.True(t, res.ProfitLocal.IsZero())
	})

	t.Run("PositiveNetRevenueKeepsTrueRatio", func(t *testing.T) {
		req := ebayRequest()
		req.SellPrice = decimal.NewFromInt(10) // deep loss but positive net revenue
		res, err := Calculate(req, RateSnapshot{BaseRate: decimal.NewFromInt(150), Source: RateSourceDefault})
		require.NoError(t, err)

		assert.True(t, res.NetRevenueJPY.IsPositive())
		assert.True(t, res.MarginPercent.LessThan(decimal.NewFromInt(-100)),
			"true ratio is reported when net revenue is positive, got %s", res.MarginPercent)
	})
}

func TestCalculateIsReproducible(t *testing.T) {
	snap := RateSnapshot{BaseRate: decimal.NewFromFloat(149.32), Source: RateSourceStored}

	a, err := Calculate(ebayRequest(), snap)
	require.NoError(t, err)
	b, err := Calculate(ebayRequest(), snap)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCalculateRejectsUnknownPlatform(t *testing.T) {
	req := ebayRequest()
	req.Platform = "mercari"
	_, err := Calculate(req, RateSnapshot{BaseRate: decimal.NewFromInt(150)})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "platform", vErr.Field)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CalculationRequest)
		field  string
	}{
		{"MissingTitle", func(r *CalculationRequest) { r.ItemTitle = "" }, "item_title"},
		{"ZeroPurchasePrice", func(r *CalculationRequest) { r.PurchasePrice = decimal.Zero }, "purchase_price"},
		{"NegativeSellPrice", func(r *CalculationRequest) { r.SellPrice = decimal.NewFromInt(-5) }, "sell_price"},
		{"NegativeShipping", func(r *CalculationRequest) { r.Shipping = decimal.NewFromInt(-1) }, "shipping"},
		{"BadShippingMode", func(r *CalculationRequest) { r.ShippingMode = "cif" }, "shipping_mode"},
		{"UnknownPlatform", func(r *CalculationRequest) { r.Platform = "rakuten" }, "platform"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ebayRequest()
			tc.mutate(&req)
			err := req.Validate()

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	t.Run("UnknownShopeeCountry", func(t *testing.T) {
		req := ebayRequest()
		req.Platform = PlatformShopee
		req.Country = "jp"
		err := req.Validate()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "country", vErr.Field)
	})

	t.Run("ValidRequestsPass", func(t *testing.T) {
		ebay := ebayRequest()
		assert.NoError(t, ebay.Validate())

		req := ebayRequest()
		req.Platform = PlatformShopee
		req.Country = "th"
		req.ShippingMode = ""
		assert.NoError(t, req.Validate())
	})
}
