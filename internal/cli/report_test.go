package cli

import (
	"testing"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRenderBreakdown(t *testing.T) {
	rent := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	b := &budget.Breakdown{
		Year:           2024,
		Month:          time.May,
		TotalIncome:    d("2000"),
		TotalBudgeted:  d("2000"),
		TotalSpent:     d("965.99"),
		TotalRemaining: d("1034.01"),
		Needs: &budget.BucketSummary{
			Bucket: budget.BucketNeeds, Share: d("0.5"), Budgeted: d("1000"), Spent: d("950"),
			Remaining: d("50"), PercentUsed: d("95"),
			Items: []budget.LineItem{
				{Name: "Huur", Category: budget.CategoryHousing, Amount: d("950"), Source: budget.SourceTransaction, Date: &rent},
			},
		},
		Wants: &budget.BucketSummary{
			Bucket: budget.BucketWants, Share: d("0.3"), Budgeted: d("600"), Spent: d("15.99"),
			Remaining: d("584.01"), PercentUsed: d("2.665"),
			Items: []budget.LineItem{
				{Name: "Netflix", Category: budget.Category("streaming"), Amount: d("15.99"), Source: budget.SourceConfigured},
			},
		},
		Savings: &budget.BucketSummary{
			Bucket: budget.BucketSavings, Share: d("0.2"), Budgeted: d("400"), Spent: decimal.Zero,
			Remaining: d("400"), PercentUsed: decimal.Zero,
		},
	}

	out := RenderBreakdown(b, "EUR")

	assert.Contains(t, out, "BUDGET  May 2024")
	assert.Contains(t, out, "Income EUR 2,000.00")
	assert.Contains(t, out, "Needs")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "95.0%")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "expected")
	assert.Contains(t, out, "EUR 1,034.01")
	assert.NotContains(t, out, "SAVINGS", "buckets without items get no item table")
}

func TestRenderProjection(t *testing.T) {
	result := &service.ProjectionResult{
		Start:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Accounts: []budget.AccountBalance{{ID: "checking", Name: "Checking", Balance: d("100")}},
		Months: []budget.MonthlySnapshot{
			{
				Month: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), TotalBalance: d("2650"),
				Income: d("2500"), Unallocated: d("50"),
				Accounts: []budget.AccountProjection{{AccountID: "checking", Name: "Checking", Balance: d("2600")}},
			},
		},
	}

	out := RenderProjection(result, "")

	assert.Contains(t, out, "PROJECTION  1 months from Jun 2024")
	assert.Contains(t, out, "Checking")
	assert.Contains(t, out, "Jul 2024")
	assert.Contains(t, out, "2,600.00")
	assert.Contains(t, out, "Includes 50.00 not linked to an account")
}

func TestRenderNetWorth(t *testing.T) {
	summary := service.Summarize([]*service.AccountWithBalance{
		{Account: &domain.Account{Name: "Checking", Type: domain.AccountTypeChecking}, CurrentBalance: d("1500")},
		{Account: &domain.Account{Name: "Studieschuld", Type: domain.AccountTypeDebt}, CurrentBalance: d("-300")},
	})

	out := RenderNetWorth(summary, "EUR")

	assert.Contains(t, out, "NET WORTH")
	assert.Contains(t, out, "Studieschuld")
	assert.Contains(t, out, "EUR 300.00")
	assert.Contains(t, out, "EUR 1,200.00")
	assert.Contains(t, out, "BY TYPE")
	assert.Contains(t, out, "EUR -300.00")
}
