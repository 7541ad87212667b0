package service

import (
	"testing"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectionService(t *testing.T) *ProjectionService {
	t.Helper()

	accountRepo := testutil.NewMockAccountRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	expenseRepo := testutil.NewMockRecurringExpenseRepository()
	sourceRepo := testutil.NewMockIncomeSourceRepository()
	goalRepo := testutil.NewMockSavingsGoalRepository()

	accountRepo.AddAccount(&domain.Account{ID: "checking", Name: "Checking", Type: domain.AccountTypeChecking, StartingBalance: 1000, StartDate: day(2024, time.January, 1)})
	accountRepo.AddAccount(&domain.Account{ID: "savings", Name: "Savings", Type: domain.AccountTypeSavings, StartingBalance: 500, StartDate: day(2024, time.January, 1)})

	// Salary recorded twice as recurring; only the latest occurrence is projected
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t0", Description: "Salaris", Amount: 3000, Type: domain.TransactionTypeIncome, AccountID: "checking", Date: day(2024, time.January, 25), IsRecurring: true, RecurringType: domain.FrequencyMonthly, Completed: true})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Description: "Salaris", Amount: 3000, Type: domain.TransactionTypeIncome, AccountID: "checking", Date: day(2024, time.February, 25), IsRecurring: true, RecurringType: domain.FrequencyMonthly, Completed: true})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t2", Description: "Huur maart", Amount: -1000, Type: domain.TransactionTypeExpense, AccountID: "checking", Date: day(2024, time.March, 1), IsRecurring: true, RecurringType: domain.FrequencyMonthly, Completed: true})

	// Covered by the recurring rent transaction
	expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e1", Name: "Huur", Amount: 1000, Frequency: domain.FrequencyMonthly, IsActive: true, AccountID: strPtr("checking")})
	expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e2", Name: "Autoverzekering", Amount: 600, Frequency: domain.FrequencyYearly, IsActive: true, AccountID: strPtr("checking"), CreatedAt: day(2023, time.June, 3)})
	expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e3", Name: "Oud abonnement", Amount: 20, Frequency: domain.FrequencyMonthly, IsActive: false})

	sourceRepo.AddSource(&domain.IncomeSource{ID: "s1", Name: "Freelance", Amount: 500, Frequency: domain.FrequencyQuarterly, IsActive: true, CreatedAt: day(2023, time.April, 10)})

	goalRepo.AddGoal(&domain.SavingsGoal{ID: "g1", Name: "Buffer", TargetAmount: 10000, MonthlyContribution: 100, FromAccountID: strPtr("checking"), ToAccountID: strPtr("savings")})

	svc := NewProjectionService(accountRepo, transactionRepo, expenseRepo, sourceRepo, goalRepo, 12)
	svc.now = func() time.Time { return time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC) }
	return svc
}

func TestBuildInput(t *testing.T) {
	svc := setupProjectionService(t)

	input, err := svc.BuildInput()
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.March, 1), input.Start)
	require.Len(t, input.Accounts, 2)
	assert.Equal(t, "6000.00", input.Accounts[0].Balance.StringFixed(2))
	assert.Equal(t, "500.00", input.Accounts[1].Balance.StringFixed(2))

	names := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Salaris", "Huur maart", "Autoverzekering", "Freelance", "Buffer", "Buffer"}, names)

	insurance := input.Items[2]
	assert.Equal(t, "-600", insurance.Amount.String())
	assert.Equal(t, time.June, insurance.Anchor)
	assert.Equal(t, "", input.Items[3].AccountID, "income source without account is unallocated")
}

func TestProject(t *testing.T) {
	svc := setupProjectionService(t)

	result, err := svc.Project(3)
	require.NoError(t, err)
	require.Len(t, result.Months, 3)

	april, may, june := result.Months[0], result.Months[1], result.Months[2]

	assert.Equal(t, day(2024, time.April, 1), april.Month)
	assert.Equal(t, "9000.00", april.TotalBalance.StringFixed(2))
	assert.Equal(t, "500.00", april.Unallocated.StringFixed(2))
	assert.Equal(t, "3600.00", april.Income.StringFixed(2))
	assert.Equal(t, "1100.00", april.Expenses.StringFixed(2))
	assert.Equal(t, "7900.00", april.Accounts[0].Balance.StringFixed(2))
	assert.Equal(t, "600.00", april.Accounts[1].Balance.StringFixed(2))

	assert.Equal(t, "11000.00", may.TotalBalance.StringFixed(2))
	assert.Equal(t, "12400.00", june.TotalBalance.StringFixed(2))
}

func TestProject_Horizon(t *testing.T) {
	svc := setupProjectionService(t)

	result, err := svc.ProjectDefault()
	require.NoError(t, err)
	assert.Len(t, result.Months, 12)

	for _, months := range []int{0, -5} {
		result, err = svc.Project(months)
		require.NoError(t, err)
		assert.NotNil(t, result.Months)
		assert.Empty(t, result.Months, "horizon %d", months)
		assert.Len(t, result.Accounts, 2, "current balances are still reported")
	}

	result, err = svc.Project(500)
	require.NoError(t, err)
	assert.Len(t, result.Months, budget.MaxProjectionMonths)
}

func TestNewProjectionService_DefaultMonths(t *testing.T) {
	svc := NewProjectionService(nil, nil, nil, nil, nil, 0)
	assert.Equal(t, budget.DefaultProjectionMonths, svc.defaultMonths)

	svc = NewProjectionService(nil, nil, nil, nil, nil, 24)
	assert.Equal(t, 24, svc.defaultMonths)
}

func TestProject_EmptyData(t *testing.T) {
	svc := NewProjectionService(
		testutil.NewMockAccountRepository(),
		testutil.NewMockTransactionRepository(),
		testutil.NewMockRecurringExpenseRepository(),
		testutil.NewMockIncomeSourceRepository(),
		testutil.NewMockSavingsGoalRepository(),
		6,
	)

	result, err := svc.Project(0)
	require.NoError(t, err)
	require.Len(t, result.Months, 6)
	for _, m := range result.Months {
		assert.True(t, m.TotalBalance.IsZero())
		assert.Empty(t, m.Accounts)
	}
}
