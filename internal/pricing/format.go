package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Presentation helpers for the breakdown rows. The numeric results never pass
// through here; these only render already-computed decimals for operators.

var currencySymbols = map[string]string{
	"JPY": "¥",
	"USD": "$",
	"SGD": "S$",
	"MYR": "RM",
	"THB": "฿",
	"PHP": "₱",
	"VND": "₫",
	"IDR": "Rp",
	"TWD": "NT$",
}

// FormatAmount renders a monetary amount with its currency symbol, grouping
// and the currency's conventional precision (0 decimals for JPY, 2 otherwise).
func FormatAmount(v decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	places := int32(2)
	if currency == "JPY" {
		places = 0
	}

	s := v.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	out := symbol + groupDigits(intPart) + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a percent rate trimming trailing zeros, e.g. "12.9%".
func FormatPercent(v decimal.Decimal) string {
	return v.String() + "%"
}

func groupDigits(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
