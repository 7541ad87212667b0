package domain

import "time"

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// ValidFrequencies lists every frequency accepted on input. Stored data may still hold
// other strings; calculations treat those as monthly.
var ValidFrequencies = map[Frequency]bool{
	FrequencyDaily:     true,
	FrequencyWeekly:    true,
	FrequencyBiweekly:  true,
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyYearly:    true,
}

// RecurringExpense is a configured expected expense. Amount is a positive magnitude and is
// negated when merged with transactions.
type RecurringExpense struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	AccountID *string   `json:"accountId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IncomeSource is a configured expected income
type IncomeSource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	AccountID *string   `json:"accountId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RecurringExpenseRepository interface {
	Create(expense *RecurringExpense) (*RecurringExpense, error)
	GetByID(id string) (*RecurringExpense, error)
	GetAll() ([]*RecurringExpense, error)
	Update(expense *RecurringExpense) (*RecurringExpense, error)
	Delete(id string) error
}

type IncomeSourceRepository interface {
	Create(source *IncomeSource) (*IncomeSource, error)
	GetByID(id string) (*IncomeSource, error)
	GetAll() ([]*IncomeSource, error)
	Update(source *IncomeSource) (*IncomeSource, error)
	Delete(id string) error
}
