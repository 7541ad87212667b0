package budget

import (
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// monthlyMultipliers converts an amount at a given frequency into its average monthly
// contribution. Weekly, biweekly and daily entries are calendar averages, not simulations.
var monthlyMultipliers = map[domain.Frequency]decimal.Decimal{
	domain.FrequencyDaily:     decimal.NewFromInt(365).Div(decimal.NewFromInt(12)),
	domain.FrequencyWeekly:    decimal.NewFromInt(52).Div(decimal.NewFromInt(12)),
	domain.FrequencyBiweekly:  decimal.NewFromInt(26).Div(decimal.NewFromInt(12)),
	domain.FrequencyMonthly:   decimal.NewFromInt(1),
	domain.FrequencyQuarterly: decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	domain.FrequencyYearly:    decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
}

// MonthlyMultiplier returns the monthly-equivalent factor for f. Unrecognized
// frequencies are treated as monthly.
func MonthlyMultiplier(f domain.Frequency) decimal.Decimal {
	if m, ok := monthlyMultipliers[f]; ok {
		return m
	}
	return monthlyMultipliers[domain.FrequencyMonthly]
}

// MonthlyEquivalent converts amount at frequency f into its monthly average
func MonthlyEquivalent(amount decimal.Decimal, f domain.Frequency) decimal.Decimal {
	return amount.Mul(MonthlyMultiplier(f))
}

// NormalizeFrequency returns f if it is known, monthly otherwise
func NormalizeFrequency(f domain.Frequency) domain.Frequency {
	if _, ok := monthlyMultipliers[f]; ok {
		return f
	}
	return domain.FrequencyMonthly
}
