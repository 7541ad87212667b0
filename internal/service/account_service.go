package service

import (
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountService handles account-related business logic
type AccountService struct {
	activityLog
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// AccountWithBalance is an account together with its derived current balance
type AccountWithBalance struct {
	*domain.Account
	CurrentBalance decimal.Decimal
}

// AccountInput holds the input for creating or updating an account
type AccountInput struct {
	Name            string
	Type            domain.AccountType
	StartingBalance float64
	StartDate       *time.Time
}

// CreateAccount validates and stores a new account. StartDate defaults to today.
func (s *AccountService) CreateAccount(input AccountInput) (*AccountWithBalance, error) {
	name, err := validateAccountInput(input)
	if err != nil {
		return nil, err
	}

	startDate := today()
	if input.StartDate != nil {
		startDate = input.StartDate.UTC()
	}

	account, err := s.accountRepo.Create(&domain.Account{
		Name:            name,
		Type:            input.Type,
		StartingBalance: input.StartingBalance,
		StartDate:       startDate,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityAccount, account.ID, "Created account "+account.Name, account)
	return &AccountWithBalance{Account: account, CurrentBalance: decimal.NewFromFloat(account.StartingBalance)}, nil
}

// GetAccounts returns every account with its current balance
func (s *AccountService) GetAccounts() ([]*AccountWithBalance, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	return withBalances(accounts, transactions), nil
}

// GetAccount returns one account with its current balance
func (s *AccountService) GetAccount(id string) (*AccountWithBalance, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll(&domain.TransactionFilters{AccountID: &id})
	if err != nil {
		return nil, err
	}
	return &AccountWithBalance{Account: account, CurrentBalance: CurrentBalance(account, transactions)}, nil
}

// UpdateAccount replaces the editable fields of an account. A nil StartDate keeps the stored one.
func (s *AccountService) UpdateAccount(id string, input AccountInput) (*AccountWithBalance, error) {
	name, err := validateAccountInput(input)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := *account
	updated.Name = name
	updated.Type = input.Type
	updated.StartingBalance = input.StartingBalance
	if input.StartDate != nil {
		updated.StartDate = input.StartDate.UTC()
	}

	saved, err := s.accountRepo.Update(&updated)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityAccount, saved.ID, "Updated account "+saved.Name, saved)
	return s.GetAccount(saved.ID)
}

// DeleteAccount removes an account. Accounts that still have transactions cannot be deleted.
func (s *AccountService) DeleteAccount(id string) error {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return err
	}

	transactions, err := s.transactionRepo.GetAll(&domain.TransactionFilters{AccountID: &id})
	if err != nil {
		return err
	}
	if len(transactions) > 0 {
		return domain.ErrAccountInUse
	}

	if err := s.accountRepo.Delete(id); err != nil {
		return err
	}

	s.record(domain.ActivityDeleted, domain.EntityAccount, id, "Deleted account "+account.Name, map[string]string{"id": id})
	return nil
}

// CurrentBalance is the starting balance plus every completed transaction on the account dated
// on or after its start date
func CurrentBalance(account *domain.Account, transactions []*domain.Transaction) decimal.Decimal {
	balance := decimal.NewFromFloat(account.StartingBalance)
	for _, tx := range transactions {
		if tx.AccountID != account.ID || !tx.Completed {
			continue
		}
		if tx.Date.Before(account.StartDate) {
			continue
		}
		balance = balance.Add(decimal.NewFromFloat(tx.Amount))
	}
	return balance
}

func withBalances(accounts []*domain.Account, transactions []*domain.Transaction) []*AccountWithBalance {
	byAccount := make(map[string][]*domain.Transaction, len(accounts))
	for _, tx := range transactions {
		byAccount[tx.AccountID] = append(byAccount[tx.AccountID], tx)
	}

	result := make([]*AccountWithBalance, 0, len(accounts))
	for _, acc := range accounts {
		result = append(result, &AccountWithBalance{
			Account:        acc,
			CurrentBalance: CurrentBalance(acc, byAccount[acc.ID]),
		})
	}
	return result
}

func validateAccountInput(input AccountInput) (string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return "", domain.ErrNameTooLong
	}
	if !domain.ValidAccountTypes[input.Type] {
		return "", domain.ErrInvalidAccountType
	}
	return name, nil
}

// today returns the current date at midnight UTC
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
