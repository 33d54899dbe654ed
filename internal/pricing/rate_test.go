package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeRate(t *testing.T) {
	base := decimal.NewFromInt(150)

	t.Run("PositiveMargin", func(t *testing.T) {
		got := SafeRate(base, decimal.NewFromInt(2))
		assert.Equal(t, "153.00", got.StringFixed(2))
	})

	t.Run("ZeroMarginReturnsBase", func(t *testing.T) {
		got := SafeRate(base, decimal.Zero)
		assert.True(t, got.Equal(base), "margin 0 must yield the base rate exactly, got %s", got)
	})

	t.Run("NegativeMargin", func(t *testing.T) {
		got := SafeRate(base, decimal.NewFromInt(-5))
		assert.Equal(t, "142.50", got.StringFixed(2))
	})

	t.Run("FullNegativeMarginZeroesRate", func(t *testing.T) {
		got := SafeRate(base, decimal.NewFromInt(-100))
		assert.True(t, got.IsZero())
	})

	t.Run("FractionalMargin", func(t *testing.T) {
		got := SafeRate(decimal.NewFromFloat(149.85), decimal.NewFromFloat(1.5))
		assert.Equal(t, "152.0978", got.StringFixed(4))
	})
}
