package domain

import (
	"testing"
	"time"
)

func TestTransactionTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected string
	}{
		{"income type", TransactionTypeIncome, "income"},
		{"expense type", TransactionTypeExpense, "expense"},
		{"transfer type", TransactionTypeTransfer, "transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.txType) != tt.expected {
				t.Errorf("TransactionType constant %s = %s, want %s", tt.name, tt.txType, tt.expected)
			}
			if !ValidTransactionTypes[tt.txType] {
				t.Errorf("%s missing from ValidTransactionTypes", tt.txType)
			}
		})
	}
}

func TestTransactionInMonth(t *testing.T) {
	tx := &Transaction{Date: time.Date(2024, time.May, 31, 23, 0, 0, 0, time.UTC)}

	if !tx.InMonth(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("InMonth(May 2024) = false, want true")
	}
	if tx.InMonth(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("InMonth(June 2024) = true, want false")
	}
	if tx.InMonth(time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("InMonth(May 2023) = true, want false")
	}
}

func TestTransactionFiltersMatches(t *testing.T) {
	goal := "g1"
	tx := &Transaction{
		AccountID:     "checking",
		Category:      "Boodschappen",
		Type:          TransactionTypeExpense,
		Date:          time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Completed:     true,
		SavingsGoalID: &goal,
	}

	str := func(s string) *string { return &s }
	txType := func(v TransactionType) *TransactionType { return &v }
	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	boolean := func(b bool) *bool { return &b }

	tests := []struct {
		name    string
		filters *TransactionFilters
		want    bool
	}{
		{"nil filters", nil, true},
		{"empty filters", &TransactionFilters{}, true},
		{"account match", &TransactionFilters{AccountID: str("checking")}, true},
		{"account mismatch", &TransactionFilters{AccountID: str("savings")}, false},
		{"category mismatch", &TransactionFilters{Category: str("Huur")}, false},
		{"type match", &TransactionFilters{Type: txType(TransactionTypeExpense)}, true},
		{"type mismatch", &TransactionFilters{Type: txType(TransactionTypeIncome)}, false},
		{"within range", &TransactionFilters{StartDate: date(2024, time.March, 1), EndDate: date(2024, time.March, 31)}, true},
		{"before start", &TransactionFilters{StartDate: date(2024, time.March, 11)}, false},
		{"after end", &TransactionFilters{EndDate: date(2024, time.March, 9)}, false},
		{"completed mismatch", &TransactionFilters{Completed: boolean(false)}, false},
		{"goal match", &TransactionFilters{SavingsGoal: str("g1")}, true},
		{"goal mismatch", &TransactionFilters{SavingsGoal: str("g2")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(tx); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
