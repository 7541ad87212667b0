package domain

import (
	"testing"
	"time"
)

func TestSavingsGoalIsActiveAt(t *testing.T) {
	june := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	deadline := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name string
		goal SavingsGoal
		want bool
	}{
		{"open goal", SavingsGoal{TargetAmount: 1000, CurrentAmount: 200}, true},
		{"target reached", SavingsGoal{TargetAmount: 1000, CurrentAmount: 1000}, false},
		{"no target", SavingsGoal{CurrentAmount: 50}, true},
		{"deadline later this month", SavingsGoal{TargetAmount: 1000, Deadline: deadline(2024, time.June, 30)}, true},
		{"deadline earlier this month", SavingsGoal{TargetAmount: 1000, Deadline: deadline(2024, time.June, 1)}, true},
		{"deadline last month", SavingsGoal{TargetAmount: 1000, Deadline: deadline(2024, time.May, 31)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.IsActiveAt(june); got != tt.want {
				t.Errorf("IsActiveAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSavingsGoalHasTransferAccounts(t *testing.T) {
	from, to, empty := "checking", "savings", ""

	tests := []struct {
		name string
		goal SavingsGoal
		want bool
	}{
		{"both set", SavingsGoal{FromAccountID: &from, ToAccountID: &to}, true},
		{"missing target", SavingsGoal{FromAccountID: &from}, false},
		{"empty source", SavingsGoal{FromAccountID: &empty, ToAccountID: &to}, false},
		{"none", SavingsGoal{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.HasTransferAccounts(); got != tt.want {
				t.Errorf("HasTransferAccounts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetPercentagesValid(t *testing.T) {
	tests := []struct {
		name string
		p    BudgetPercentages
		want bool
	}{
		{"default split", BudgetPercentages{Needs: 50, Wants: 30, Savings: 20}, true},
		{"all needs", BudgetPercentages{Needs: 100}, true},
		{"fractional", BudgetPercentages{Needs: 33.3, Wants: 33.3, Savings: 33.4}, true},
		{"sum too high", BudgetPercentages{Needs: 50, Wants: 30, Savings: 30}, false},
		{"negative share", BudgetPercentages{Needs: 120, Wants: -20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccountTypeIsLiability(t *testing.T) {
	for typ := range ValidAccountTypes {
		want := typ == AccountTypeDebt
		if got := typ.IsLiability(); got != want {
			t.Errorf("%s.IsLiability() = %v, want %v", typ, got, want)
		}
	}
}
