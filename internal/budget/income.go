package budget

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyIncome totals the income expected in month: the monthly equivalent of every
// active income source, plus recurring income transactions. Each recurring income counts
// once, using its latest occurrence dated no later than month. A yearly recurring
// transaction only counts in the calendar month it was recorded in; other frequencies count
// every month at their monthly equivalent.
func MonthlyIncome(sources []*domain.IncomeSource, transactions []*domain.Transaction, month time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, src := range sources {
		if src == nil || !src.IsActive {
			continue
		}
		total = total.Add(MonthlyEquivalent(decimal.NewFromFloat(src.Amount), src.Frequency))
	}

	cutoff := time.Date(month.Year(), month.Month()+1, 1, 0, 0, 0, 0, month.Location())
	recorded := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx == nil || tx.Type != domain.TransactionTypeIncome || !tx.Date.Before(cutoff) {
			continue
		}
		recorded = append(recorded, tx)
	}

	for _, tx := range LatestRecurring(recorded) {
		amount := decimal.NewFromFloat(tx.Amount)
		if NormalizeFrequency(tx.RecurringType) == domain.FrequencyYearly {
			if tx.Date.Month() == month.Month() {
				total = total.Add(amount)
			}
			continue
		}
		total = total.Add(MonthlyEquivalent(amount, tx.RecurringType))
	}

	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
