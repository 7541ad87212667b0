package domain

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// ValidTransactionTypes lists every transaction type accepted by the API
var ValidTransactionTypes = map[TransactionType]bool{
	TransactionTypeIncome:   true,
	TransactionTypeExpense:  true,
	TransactionTypeTransfer: true,
}

// Transaction amounts are signed: positive is an inflow, negative an outflow.
// Category holds either a category id or a category name; both appear in stored data.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	AccountID     string          `json:"accountId"`
	Date          time.Time       `json:"date"`
	IsRecurring   bool            `json:"isRecurring"`
	RecurringType Frequency       `json:"recurringType,omitempty"`
	Completed     bool            `json:"completed"`
	SavingsGoalID *string         `json:"savingsGoalId,omitempty"`
	TransferID    *string         `json:"transferId,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InMonth reports whether the transaction's year and month equal those of t
func (tx *Transaction) InMonth(t time.Time) bool {
	return tx.Date.Year() == t.Year() && tx.Date.Month() == t.Month()
}

// IsLinkedToGoal reports whether the transaction counts toward the given savings goal
func (tx *Transaction) IsLinkedToGoal(goalID string) bool {
	return tx.SavingsGoalID != nil && *tx.SavingsGoalID == goalID
}

type TransactionFilters struct {
	AccountID   *string
	Category    *string
	Type        *TransactionType
	StartDate   *time.Time
	EndDate     *time.Time
	Completed   *bool
	SavingsGoal *string
}

// Matches reports whether tx passes every filter that is set
func (f *TransactionFilters) Matches(tx *Transaction) bool {
	if f == nil {
		return true
	}
	if f.AccountID != nil && tx.AccountID != *f.AccountID {
		return false
	}
	if f.Category != nil && tx.Category != *f.Category {
		return false
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && tx.Date.After(*f.EndDate) {
		return false
	}
	if f.Completed != nil && tx.Completed != *f.Completed {
		return false
	}
	if f.SavingsGoal != nil && !tx.IsLinkedToGoal(*f.SavingsGoal) {
		return false
	}
	return true
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	CreateBatch(transactions []*Transaction) error
	GetByID(id string) (*Transaction, error)
	GetAll(filters *TransactionFilters) ([]*Transaction, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id string) error
}
