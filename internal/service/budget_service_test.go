package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type budgetFixture struct {
	svc             *BudgetService
	transactionRepo *testutil.MockTransactionRepository
	categoryRepo    *testutil.MockCategoryRepository
	expenseRepo     *testutil.MockRecurringExpenseRepository
	sourceRepo      *testutil.MockIncomeSourceRepository
	goalRepo        *testutil.MockSavingsGoalRepository
	settingsRepo    *testutil.MockSettingsRepository
}

func setupBudgetService() budgetFixture {
	f := budgetFixture{
		transactionRepo: testutil.NewMockTransactionRepository(),
		categoryRepo:    testutil.NewMockCategoryRepository(),
		expenseRepo:     testutil.NewMockRecurringExpenseRepository(),
		sourceRepo:      testutil.NewMockIncomeSourceRepository(),
		goalRepo:        testutil.NewMockSavingsGoalRepository(),
		settingsRepo:    testutil.NewMockSettingsRepository(),
	}
	f.svc = NewBudgetService(f.transactionRepo, f.categoryRepo, f.expenseRepo, f.sourceRepo, f.goalRepo, f.settingsRepo)
	return f
}

// seedMay2024 stores a month of data: 3000 income, rent paid by transaction (category stored
// by id), groceries, a goal contribution that completes its goal, and two configured expenses
// of which one is already paid.
func (f budgetFixture) seedMay2024() {
	f.sourceRepo.AddSource(&domain.IncomeSource{ID: "salary", Name: "Salaris", Amount: 3000, Frequency: domain.FrequencyMonthly, IsActive: true})
	f.categoryRepo.AddCategory(&domain.Category{ID: "c-housing", Name: "Wonen", Type: domain.CategoryTypeExpense})
	f.goalRepo.AddGoal(&domain.SavingsGoal{ID: "g1", Name: "Laptop", TargetAmount: 200})

	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Description: "Huur mei", Amount: -950, Type: domain.TransactionTypeExpense, Category: "c-housing", Date: day(2024, time.May, 1)})
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t2", Description: "Albert Heijn", Amount: -80, Type: domain.TransactionTypeExpense, Category: "Boodschappen", Date: day(2024, time.May, 10)})
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t3", Description: "Savings: Laptop", Amount: 200, Type: domain.TransactionTypeTransfer, SavingsGoalID: strPtr("g1"), Date: day(2024, time.May, 25)})
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t4", Description: "Albert Heijn", Amount: -40, Type: domain.TransactionTypeExpense, Category: "Boodschappen", Date: day(2024, time.April, 30)})

	f.expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e1", Name: "Huur", Amount: 950, Frequency: domain.FrequencyMonthly, Category: "Wonen", IsActive: true})
	f.expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e2", Name: "Netflix", Amount: 15.99, Frequency: domain.FrequencyMonthly, Category: "Streaming", IsActive: true})
}

func TestGetBreakdown(t *testing.T) {
	f := setupBudgetService()
	f.seedMay2024()

	b, err := f.svc.GetBreakdown(2024, time.May)
	require.NoError(t, err)

	assert.Equal(t, 2024, b.Year)
	assert.Equal(t, time.May, b.Month)
	assert.Equal(t, "3000.00", b.TotalIncome.StringFixed(2))

	assert.Equal(t, "1500.00", b.Needs.Budgeted.StringFixed(2))
	assert.Equal(t, "950.00", b.Needs.Spent.StringFixed(2), "configured rent is covered by the actual payment")
	assert.Equal(t, "95.99", b.Wants.Spent.StringFixed(2))
	assert.Equal(t, "200.00", b.Savings.Spent.StringFixed(2), "goal reached this month still counts")
	assert.Equal(t, "1245.99", b.TotalSpent.StringFixed(2))

	require.Len(t, b.Needs.Items, 1)
	assert.Equal(t, budget.CategoryHousing, b.Needs.Items[0].Category)
	assert.Equal(t, budget.SourceTransaction, b.Needs.Items[0].Source)
	require.Len(t, b.Savings.Items, 1)
	assert.Equal(t, budget.SourceSavingsGoal, b.Savings.Items[0].Source)
}

func TestGetBreakdown_RecurringIncomeRecordedMonthly(t *testing.T) {
	f := setupBudgetService()
	for _, month := range []time.Month{time.January, time.February, time.March, time.April, time.May, time.June} {
		amount := 3000.0
		if month == time.June {
			amount = 3200
		}
		f.transactionRepo.AddTransaction(&domain.Transaction{
			ID: "salary-" + month.String(), Description: "Salaris", Amount: amount, Type: domain.TransactionTypeIncome,
			AccountID: "checking", IsRecurring: true, RecurringType: domain.FrequencyMonthly, Date: day(2024, month, 25),
		})
	}

	b, err := f.svc.GetBreakdown(2024, time.May)
	require.NoError(t, err)

	assert.Equal(t, "3000.00", b.TotalIncome.StringFixed(2))
	assert.Equal(t, "1500.00", b.Needs.Budgeted.StringFixed(2))
	assert.Equal(t, "900.00", b.Wants.Budgeted.StringFixed(2))
	assert.Equal(t, "600.00", b.Savings.Budgeted.StringFixed(2))
}

func TestGetBreakdown_UsesStoredPercentages(t *testing.T) {
	f := setupBudgetService()
	f.seedMay2024()
	f.settingsRepo.Settings.BudgetPercentages = &domain.BudgetPercentages{Needs: 60, Wants: 20, Savings: 20}

	b, err := f.svc.GetBreakdown(2024, time.May)
	require.NoError(t, err)

	assert.Equal(t, "1800.00", b.Needs.Budgeted.StringFixed(2))
	assert.Equal(t, "600.00", b.Wants.Budgeted.StringFixed(2))
	assert.Equal(t, "600.00", b.Savings.Budgeted.StringFixed(2))
}

func TestGetBreakdown_EmptyData(t *testing.T) {
	f := setupBudgetService()

	b, err := f.svc.GetBreakdown(2025, time.February)
	require.NoError(t, err)

	assert.True(t, b.TotalIncome.IsZero())
	assert.True(t, b.TotalSpent.IsZero())
	assert.True(t, b.Needs.PercentUsed.IsZero())
	assert.Empty(t, b.Wants.Items)
}

func TestGetBreakdown_InvalidMonth(t *testing.T) {
	f := setupBudgetService()

	_, err := f.svc.GetBreakdown(2024, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	_, err = f.svc.GetBreakdown(2024, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetBreakdown_RepositoryError(t *testing.T) {
	f := setupBudgetService()
	f.transactionRepo.GetAllFn = func(*domain.TransactionFilters) ([]*domain.Transaction, error) {
		return nil, errors.New("read failed")
	}

	_, err := f.svc.GetBreakdown(2024, time.May)
	assert.EqualError(t, err, "read failed")
}

func TestGetBreakdown_ResolvesConfiguredExpenseCategoryIDs(t *testing.T) {
	f := setupBudgetService()
	f.categoryRepo.AddCategory(&domain.Category{ID: "c-ins", Name: "Verzekering", Type: domain.CategoryTypeExpense})
	f.expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e1", Name: "Zorgverzekering", Amount: 140, Frequency: domain.FrequencyMonthly, Category: "c-ins", IsActive: true})

	b, err := f.svc.GetBreakdown(2024, time.May)
	require.NoError(t, err)

	require.Len(t, b.Needs.Items, 1)
	assert.Equal(t, budget.CategoryInsurance, b.Needs.Items[0].Category)
}
