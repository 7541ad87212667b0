package domain

import "time"

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCrypto   AccountType = "crypto"
	AccountTypeStocks   AccountType = "stocks"
	AccountTypeDebt     AccountType = "debt"
	AccountTypeOther    AccountType = "other"
)

// ValidAccountTypes lists every account type accepted by the API
var ValidAccountTypes = map[AccountType]bool{
	AccountTypeChecking: true,
	AccountTypeSavings:  true,
	AccountTypeCrypto:   true,
	AccountTypeStocks:   true,
	AccountTypeDebt:     true,
	AccountTypeOther:    true,
}

// IsLiability reports whether balances of this type count against net worth
func (t AccountType) IsLiability() bool {
	return t == AccountTypeDebt
}

// Account is a manually tracked balance. StartingBalance is the baseline as of StartDate;
// only completed transactions dated on or after StartDate move the balance.
type Account struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            AccountType `json:"type"`
	StartingBalance float64     `json:"startingBalance"`
	StartDate       time.Time   `json:"startDate"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type AccountRepository interface {
	Create(account *Account) (*Account, error)
	GetByID(id string) (*Account, error)
	GetAll() ([]*Account, error)
	Update(account *Account) (*Account, error)
	Delete(id string) error
}
