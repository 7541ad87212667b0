package budget

import (
	"testing"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyEquivalent(t *testing.T) {
	amount := decimal.NewFromInt(1200)

	tests := []struct {
		frequency domain.Frequency
		want      string
	}{
		{domain.FrequencyMonthly, "1200.00"},
		{domain.FrequencyQuarterly, "400.00"},
		{domain.FrequencyYearly, "100.00"},
		// weekly and biweekly are calendar averages (52 and 26 payments a year), not simulations
		{domain.FrequencyWeekly, "5200.00"},
		{domain.FrequencyBiweekly, "2600.00"},
		{domain.FrequencyDaily, "36500.00"},
		{domain.Frequency("fortnightly-ish"), "1200.00"},
		{domain.Frequency(""), "1200.00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.want, MonthlyEquivalent(amount, tt.frequency).StringFixed(2))
		})
	}
}

func TestNormalizeFrequency_UnknownIsMonthly(t *testing.T) {
	assert.Equal(t, domain.FrequencyMonthly, NormalizeFrequency("sometimes"))
	assert.Equal(t, domain.FrequencyYearly, NormalizeFrequency(domain.FrequencyYearly))
}
