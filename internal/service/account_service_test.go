package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func setupAccountService() (*AccountService, *testutil.MockAccountRepository, *testutil.MockTransactionRepository, *testutil.MockActivityRepository) {
	accountRepo := testutil.NewMockAccountRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	activityRepo := testutil.NewMockActivityRepository()

	svc := NewAccountService(accountRepo, transactionRepo)
	svc.SetActivityRecorder(NewActivityService(activityRepo))
	return svc, accountRepo, transactionRepo, activityRepo
}

func TestCreateAccount_Success(t *testing.T) {
	svc, accountRepo, _, activityRepo := setupAccountService()
	start := day(2024, time.January, 1)

	account, err := svc.CreateAccount(AccountInput{
		Name:            "  ING Betaalrekening ",
		Type:            domain.AccountTypeChecking,
		StartingBalance: 1250.50,
		StartDate:       &start,
	})
	require.NoError(t, err)

	assert.Equal(t, "ING Betaalrekening", account.Name)
	assert.Equal(t, domain.AccountTypeChecking, account.Type)
	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromFloat(1250.50)))
	assert.Equal(t, start, account.StartDate)
	assert.Len(t, accountRepo.Accounts, 1)

	require.Len(t, activityRepo.Entries, 1)
	assert.Equal(t, domain.ActivityCreated, activityRepo.Entries[0].Action)
	assert.Equal(t, account.ID, activityRepo.Entries[0].EntityID)
}

func TestCreateAccount_DefaultsStartDateToToday(t *testing.T) {
	svc, _, _, _ := setupAccountService()

	account, err := svc.CreateAccount(AccountInput{Name: "Wallet", Type: domain.AccountTypeOther})
	require.NoError(t, err)

	assert.Equal(t, today(), account.StartDate)
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   AccountInput
		wantErr error
	}{
		{"empty name", AccountInput{Name: "", Type: domain.AccountTypeChecking}, domain.ErrNameRequired},
		{"whitespace name", AccountInput{Name: "   ", Type: domain.AccountTypeChecking}, domain.ErrNameRequired},
		{"name too long", AccountInput{Name: strings.Repeat("a", domain.MaxNameLength+1), Type: domain.AccountTypeChecking}, domain.ErrNameTooLong},
		{"unknown type", AccountInput{Name: "Bank", Type: "credit"}, domain.ErrInvalidAccountType},
		{"empty type", AccountInput{Name: "Bank"}, domain.ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, _, _ := setupAccountService()

			_, err := svc.CreateAccount(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, accountRepo.Accounts)
		})
	}
}

func TestCurrentBalance(t *testing.T) {
	account := &domain.Account{
		ID:              "acc-1",
		StartingBalance: 1000,
		StartDate:       day(2024, time.March, 1),
	}

	transactions := []*domain.Transaction{
		{ID: "t1", AccountID: "acc-1", Amount: -200, Date: day(2024, time.March, 5), Completed: true},
		{ID: "t2", AccountID: "acc-1", Amount: 2500, Date: day(2024, time.March, 25), Completed: true},
		// before the start date
		{ID: "t3", AccountID: "acc-1", Amount: -999, Date: day(2024, time.February, 28), Completed: true},
		// not completed yet
		{ID: "t4", AccountID: "acc-1", Amount: -50, Date: day(2024, time.April, 1), Completed: false},
		// other account
		{ID: "t5", AccountID: "acc-2", Amount: -75, Date: day(2024, time.March, 10), Completed: true},
		// exactly on the start date counts
		{ID: "t6", AccountID: "acc-1", Amount: -0.10, Date: day(2024, time.March, 1), Completed: true},
	}

	balance := CurrentBalance(account, transactions)
	assert.Equal(t, "3299.90", balance.StringFixed(2))
}

func TestGetAccounts_IncludesBalances(t *testing.T) {
	svc, accountRepo, transactionRepo, _ := setupAccountService()
	accountRepo.AddAccount(&domain.Account{ID: "a", Name: "Checking", Type: domain.AccountTypeChecking, StartingBalance: 100, StartDate: day(2024, time.January, 1)})
	accountRepo.AddAccount(&domain.Account{ID: "b", Name: "Savings", Type: domain.AccountTypeSavings, StartingBalance: 5000, StartDate: day(2024, time.January, 1)})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", AccountID: "a", Amount: -40, Date: day(2024, time.February, 1), Completed: true})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t2", AccountID: "b", Amount: 250, Date: day(2024, time.February, 1), Completed: true})

	accounts, err := svc.GetAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "a", accounts[0].ID)
	assert.Equal(t, "60.00", accounts[0].CurrentBalance.StringFixed(2))
	assert.Equal(t, "5250.00", accounts[1].CurrentBalance.StringFixed(2))
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, _, _, _ := setupAccountService()

	_, err := svc.GetAccount("missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateAccount(t *testing.T) {
	svc, accountRepo, transactionRepo, activityRepo := setupAccountService()
	start := day(2024, time.January, 1)
	accountRepo.AddAccount(&domain.Account{ID: "a", Name: "Old", Type: domain.AccountTypeChecking, StartingBalance: 100, StartDate: start})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", AccountID: "a", Amount: -30, Date: day(2024, time.June, 1), Completed: true})

	updated, err := svc.UpdateAccount("a", AccountInput{Name: "New", Type: domain.AccountTypeSavings, StartingBalance: 200})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, domain.AccountTypeSavings, updated.Type)
	assert.Equal(t, start, updated.StartDate, "nil start date keeps the stored one")
	assert.Equal(t, "170.00", updated.CurrentBalance.StringFixed(2))
	require.Len(t, activityRepo.Entries, 1)
	assert.Equal(t, domain.ActivityUpdated, activityRepo.Entries[0].Action)
}

func TestUpdateAccount_MovingStartDateDropsEarlierTransactions(t *testing.T) {
	svc, accountRepo, transactionRepo, _ := setupAccountService()
	accountRepo.AddAccount(&domain.Account{ID: "a", Name: "Bank", Type: domain.AccountTypeChecking, StartingBalance: 100, StartDate: day(2024, time.January, 1)})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", AccountID: "a", Amount: -30, Date: day(2024, time.June, 1), Completed: true})

	newStart := day(2024, time.July, 1)
	updated, err := svc.UpdateAccount("a", AccountInput{Name: "Bank", Type: domain.AccountTypeChecking, StartingBalance: 500, StartDate: &newStart})
	require.NoError(t, err)

	assert.Equal(t, "500.00", updated.CurrentBalance.StringFixed(2))
}

func TestUpdateAccount_NotFound(t *testing.T) {
	svc, _, _, _ := setupAccountService()

	_, err := svc.UpdateAccount("missing", AccountInput{Name: "X", Type: domain.AccountTypeChecking})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDeleteAccount(t *testing.T) {
	svc, accountRepo, _, activityRepo := setupAccountService()
	accountRepo.AddAccount(&domain.Account{ID: "a", Name: "Bank", Type: domain.AccountTypeChecking})

	require.NoError(t, svc.DeleteAccount("a"))

	assert.Empty(t, accountRepo.Accounts)
	require.Len(t, activityRepo.Entries, 1)
	assert.Equal(t, domain.ActivityDeleted, activityRepo.Entries[0].Action)
}

func TestDeleteAccount_InUse(t *testing.T) {
	svc, accountRepo, transactionRepo, _ := setupAccountService()
	accountRepo.AddAccount(&domain.Account{ID: "a", Name: "Bank", Type: domain.AccountTypeChecking})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", AccountID: "a", Amount: -10, Date: day(2024, time.June, 1)})

	err := svc.DeleteAccount("a")
	assert.ErrorIs(t, err, domain.ErrAccountInUse)
	assert.Len(t, accountRepo.Accounts, 1)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	svc, _, _, _ := setupAccountService()

	assert.ErrorIs(t, svc.DeleteAccount("missing"), domain.ErrAccountNotFound)
}
