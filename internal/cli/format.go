// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with two decimals, thousands separators and an optional
// currency code prefix. e.g., -1234.5, "EUR" -> "EUR -1,234.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	formatted := sign + groupThousands(whole) + "." + frac
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}

// FormatPercent formats a percentage with one decimal. e.g., 81.25 -> "81.3%"
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatShare formats a fraction of income as a whole percentage. e.g., 0.5 -> "50%"
func FormatShare(share decimal.Decimal) string {
	return share.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
