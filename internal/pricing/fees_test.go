package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEbayFees(t *testing.T) {
	revenue := decimal.NewFromInt(110)

	t.Run("ElectronicsCategory", func(t *testing.T) {
		fees := EbayFees(revenue, "electronics")
		assert.Equal(t, "14.19", fees.FinalValueFee.StringFixed(2))
		assert.Equal(t, "4.33", fees.PaymentFee.StringFixed(2))
		assert.Equal(t, "1.65", fees.InternationalFee.StringFixed(2))
		assert.Equal(t, "20.17", fees.Total.StringFixed(2))
		assert.Equal(t, "0.129", fees.FVFRate.String())
	})

	t.Run("UnknownCategoryFallsBackToOther", func(t *testing.T) {
		fees := EbayFees(revenue, "vintage-typewriters")
		other := EbayFees(revenue, CategoryOther)
		assert.True(t, fees.FVFRate.Equal(other.FVFRate))
		assert.True(t, fees.Total.Equal(other.Total))
	})

	t.Run("FixedPaymentFeeAppliesOnSmallRevenue", func(t *testing.T) {
		fees := EbayFees(decimal.NewFromInt(1), "other")
		// 1 * 0.0349 + 0.49
		assert.Equal(t, "0.52", fees.PaymentFee.StringFixed(2))
	})
}

func TestShopeeFees(t *testing.T) {
	sg, ok := CountryProfileFor("sg")
	require.True(t, ok)

	t.Run("CommissionAndTransaction", func(t *testing.T) {
		fees := ShopeeFees(decimal.NewFromInt(100), sg)
		assert.Equal(t, "6.00", fees.CommissionFee.StringFixed(2))
		assert.Equal(t, "2.00", fees.TransactionFee.StringFixed(2))
		assert.Equal(t, "8.00", fees.Total.StringFixed(2))
	})

	t.Run("RatesComeFromCountryProfile", func(t *testing.T) {
		my, ok := CountryProfileFor("my")
		require.True(t, ok)
		fees := ShopeeFees(decimal.NewFromInt(1000), my)
		assert.Equal(t, "70.00", fees.CommissionFee.StringFixed(2))
		assert.Equal(t, "21.20", fees.TransactionFee.StringFixed(2))
	})
}

func TestCountryProfiles(t *testing.T) {
	codes := []string{"sg", "my", "th", "ph", "vn", "id", "tw"}
	for _, code := range codes {
		p, ok := CountryProfileFor(code)
		require.True(t, ok, "missing profile for %s", code)
		assert.NotEmpty(t, p.Currency)
		assert.True(t, p.BaseRate.IsPositive())
		assert.True(t, p.DutyFreeAmount.IsPositive())
	}

	_, ok := CountryProfileFor("us")
	assert.False(t, ok)
}
