package domain

import "time"

// SavingsGoal tracks progress toward a target. CurrentAmount is derived from linked
// transactions on read and is never authoritative in storage.
type SavingsGoal struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	TargetAmount        float64    `json:"targetAmount"`
	CurrentAmount       float64    `json:"currentAmount"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	MonthlyContribution float64    `json:"monthlyContribution"`
	FromAccountID       *string    `json:"fromAccountId,omitempty"`
	ToAccountID         *string    `json:"toAccountId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IsActiveAt reports whether the goal still collects contributions in the month of t:
// the target is not yet reached and the deadline, if any, is not before that month.
func (g *SavingsGoal) IsActiveAt(t time.Time) bool {
	if g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount {
		return false
	}
	if g.Deadline != nil {
		monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		if g.Deadline.Before(monthStart) {
			return false
		}
	}
	return true
}

// HasTransferAccounts reports whether automatic transfers can be generated for the goal
func (g *SavingsGoal) HasTransferAccounts() bool {
	return g.FromAccountID != nil && g.ToAccountID != nil && *g.FromAccountID != "" && *g.ToAccountID != ""
}

type SavingsGoalRepository interface {
	Create(goal *SavingsGoal) (*SavingsGoal, error)
	GetByID(id string) (*SavingsGoal, error)
	GetAll() ([]*SavingsGoal, error)
	Update(goal *SavingsGoal) (*SavingsGoal, error)
	Delete(id string) error
}
