package service

import (
	"testing"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalFixture struct {
	svc             *SavingsGoalService
	goalRepo        *testutil.MockSavingsGoalRepository
	transactionRepo *testutil.MockTransactionRepository
}

func setupSavingsGoalService() goalFixture {
	goalRepo := testutil.NewMockSavingsGoalRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{ID: "checking", Name: "Checking", Type: domain.AccountTypeChecking})
	accountRepo.AddAccount(&domain.Account{ID: "savings", Name: "Savings", Type: domain.AccountTypeSavings})

	transactionService := NewTransactionService(transactionRepo, accountRepo)
	return goalFixture{
		svc:             NewSavingsGoalService(goalRepo, transactionRepo, accountRepo, transactionService),
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

func (f goalFixture) addLinkedGoal(id string, target, contribution float64) {
	f.goalRepo.AddGoal(&domain.SavingsGoal{
		ID:                  id,
		Name:                "Vakantie",
		TargetAmount:        target,
		MonthlyContribution: contribution,
		FromAccountID:       strPtr("checking"),
		ToAccountID:         strPtr("savings"),
		CreatedAt:           day(2024, time.January, 31),
	})
}

func TestCreateGoal(t *testing.T) {
	f := setupSavingsGoalService()

	goal, err := f.svc.CreateGoal(SavingsGoalInput{
		Name:                "Noodfonds",
		TargetAmount:        5000,
		MonthlyContribution: 250,
		FromAccountID:       strPtr("checking"),
		ToAccountID:         strPtr("savings"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Noodfonds", goal.Name)
	assert.Zero(t, goal.CurrentAmount)
	assert.True(t, goal.HasTransferAccounts())
}

func TestCreateGoal_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   SavingsGoalInput
		wantErr error
	}{
		{"missing name", SavingsGoalInput{TargetAmount: 100}, domain.ErrNameRequired},
		{"zero target", SavingsGoalInput{Name: "X"}, domain.ErrInvalidAmount},
		{"negative contribution", SavingsGoalInput{Name: "X", TargetAmount: 100, MonthlyContribution: -1}, domain.ErrInvalidAmount},
		{"same accounts", SavingsGoalInput{Name: "X", TargetAmount: 100, FromAccountID: strPtr("savings"), ToAccountID: strPtr("savings")}, domain.ErrSameAccountTransfer},
		{"unknown account", SavingsGoalInput{Name: "X", TargetAmount: 100, FromAccountID: strPtr("nope")}, domain.ErrAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupSavingsGoalService()
			_, err := f.svc.CreateGoal(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetGoals_DerivesCurrentAmount(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 1000, 100)
	f.goalRepo.Goals["g1"].CurrentAmount = 999 // stored value is ignored
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Amount: 150, SavingsGoalID: strPtr("g1"), Date: day(2024, time.February, 1)})
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t2", Amount: -50.25, SavingsGoalID: strPtr("g1"), Date: day(2024, time.March, 1)})
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t3", Amount: 500, Date: day(2024, time.March, 1)})

	goals, err := f.svc.GetGoals()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 200.25, goals[0].CurrentAmount)
}

func TestWithProgress_Before(t *testing.T) {
	goals := []*domain.SavingsGoal{{ID: "g1", TargetAmount: 100}}
	transactions := []*domain.Transaction{
		{Amount: 40, SavingsGoalID: strPtr("g1"), Date: day(2024, time.May, 31)},
		{Amount: 60, SavingsGoalID: strPtr("g1"), Date: day(2024, time.June, 1)},
	}

	all := WithProgress(goals, transactions, time.Time{})
	beforeJune := WithProgress(goals, transactions, day(2024, time.June, 1))

	assert.Equal(t, 100.0, all[0].CurrentAmount)
	assert.Equal(t, 40.0, beforeJune[0].CurrentAmount)
	assert.Zero(t, goals[0].CurrentAmount, "input goals are not modified")
}

func TestGenerateTransfer(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 1000, 100)

	result, err := f.svc.GenerateTransfer("g1", 2024, time.February)
	require.NoError(t, err)

	assert.True(t, result.Created)
	require.Len(t, result.Transactions, 2)
	in := result.Transactions[1]
	assert.Equal(t, day(2024, time.February, 29), in.Date, "creation day 31 is clamped to the month length")
	assert.Equal(t, 100.0, in.Amount)
	assert.True(t, in.Completed)
	assert.Equal(t, "Savings: Vakantie", in.Description)
	assert.Equal(t, 100.0, result.Goal.CurrentAmount)
}

func TestGenerateTransfer_IsIdempotentPerMonth(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 1000, 100)

	first, err := f.svc.GenerateTransfer("g1", 2024, time.March)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := f.svc.GenerateTransfer("g1", 2024, time.March)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Len(t, f.transactionRepo.Transactions, 2)

	next, err := f.svc.GenerateTransfer("g1", 2024, time.April)
	require.NoError(t, err)
	assert.True(t, next.Created)
	assert.Len(t, f.transactionRepo.Transactions, 4)
}

func TestGenerateTransfer_CapsAtRemainingTarget(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 250, 100)
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Amount: 200, SavingsGoalID: strPtr("g1"), Date: day(2024, time.January, 31)})

	result, err := f.svc.GenerateTransfer("g1", 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Transactions[1].Amount)
	assert.Equal(t, 250.0, result.Goal.CurrentAmount)
}

func TestGenerateTransfer_Errors(t *testing.T) {
	t.Run("no accounts", func(t *testing.T) {
		f := setupSavingsGoalService()
		f.goalRepo.AddGoal(&domain.SavingsGoal{ID: "g1", Name: "X", TargetAmount: 100, MonthlyContribution: 10})
		_, err := f.svc.GenerateTransfer("g1", 2024, time.May)
		assert.ErrorIs(t, err, domain.ErrGoalAccountsRequired)
	})

	t.Run("no contribution", func(t *testing.T) {
		f := setupSavingsGoalService()
		f.addLinkedGoal("g1", 100, 0)
		_, err := f.svc.GenerateTransfer("g1", 2024, time.May)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("target reached", func(t *testing.T) {
		f := setupSavingsGoalService()
		f.addLinkedGoal("g1", 100, 10)
		f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Amount: 100, SavingsGoalID: strPtr("g1"), Date: day(2024, time.April, 1)})
		_, err := f.svc.GenerateTransfer("g1", 2024, time.May)
		assert.ErrorIs(t, err, domain.ErrGoalInactive)
	})

	t.Run("past deadline", func(t *testing.T) {
		f := setupSavingsGoalService()
		f.addLinkedGoal("g1", 100, 10)
		deadline := day(2024, time.March, 31)
		f.goalRepo.Goals["g1"].Deadline = &deadline
		_, err := f.svc.GenerateTransfer("g1", 2024, time.May)
		assert.ErrorIs(t, err, domain.ErrGoalInactive)
	})

	t.Run("invalid month", func(t *testing.T) {
		f := setupSavingsGoalService()
		f.addLinkedGoal("g1", 100, 10)
		_, err := f.svc.GenerateTransfer("g1", 2024, 13)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("unknown goal", func(t *testing.T) {
		f := setupSavingsGoalService()
		_, err := f.svc.GenerateTransfer("missing", 2024, time.May)
		assert.ErrorIs(t, err, domain.ErrSavingsGoalNotFound)
	})
}

func TestGenerateDueTransfers(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 1000, 100)
	f.addLinkedGoal("g2", 1000, 50)
	f.goalRepo.AddGoal(&domain.SavingsGoal{ID: "g3", Name: "Unlinked", TargetAmount: 100, MonthlyContribution: 10})

	now := day(2024, time.June, 15)
	created, failed, err := f.svc.GenerateDueTransfers(now)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Zero(t, failed)

	created, failed, err = f.svc.GenerateDueTransfers(now)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, failed)
}

func TestDeleteGoal(t *testing.T) {
	f := setupSavingsGoalService()
	f.addLinkedGoal("g1", 100, 10)
	f.transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Amount: 10, SavingsGoalID: strPtr("g1")})

	require.NoError(t, f.svc.DeleteGoal("g1"))
	assert.Empty(t, f.goalRepo.Goals)
	assert.Len(t, f.transactionRepo.Transactions, 1, "linked transactions are kept")
}
