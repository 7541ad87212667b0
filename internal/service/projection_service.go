package service

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ProjectionService assembles the stored data into a forward balance projection
type ProjectionService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	expenseRepo     domain.RecurringExpenseRepository
	sourceRepo      domain.IncomeSourceRepository
	goalRepo        domain.SavingsGoalRepository
	defaultMonths   int
	now             func() time.Time
}

// NewProjectionService creates a new ProjectionService. defaultMonths is the horizon used when
// a caller does not ask for one.
func NewProjectionService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	expenseRepo domain.RecurringExpenseRepository,
	sourceRepo domain.IncomeSourceRepository,
	goalRepo domain.SavingsGoalRepository,
	defaultMonths int,
) *ProjectionService {
	if defaultMonths <= 0 || defaultMonths > budget.MaxProjectionMonths {
		defaultMonths = budget.DefaultProjectionMonths
	}
	return &ProjectionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		sourceRepo:      sourceRepo,
		goalRepo:        goalRepo,
		defaultMonths:   defaultMonths,
		now:             time.Now,
	}
}

// ProjectionResult is a projection starting from the current month
type ProjectionResult struct {
	Start    time.Time
	Accounts []budget.AccountBalance
	Months   []budget.MonthlySnapshot
}

// ProjectDefault projects balances over the configured default horizon
func (s *ProjectionService) ProjectDefault() (*ProjectionResult, error) {
	return s.Project(s.defaultMonths)
}

// Project projects balances for the next months. A horizon of zero or less yields no
// months, and the horizon is capped at budget.MaxProjectionMonths.
func (s *ProjectionService) Project(months int) (*ProjectionResult, error) {
	if months > budget.MaxProjectionMonths {
		months = budget.MaxProjectionMonths
	}

	input, err := s.BuildInput()
	if err != nil {
		return nil, err
	}

	projector, err := budget.NewProjector(input)
	if err != nil {
		return nil, err
	}

	return &ProjectionResult{
		Start:    input.Start,
		Accounts: input.Accounts,
		Months:   projector.Generate(months),
	}, nil
}

// BuildInput collects the projection snapshot: current account balances and every recurring
// cash flow. Recurring transactions are taken once per description and account, using the
// latest occurrence. Active configured expenses are negated and skipped when a recurring
// transaction already covers them. Active goals with a linked account pair move their monthly
// contribution from the source to the target account.
func (s *ProjectionService) BuildInput() (budget.ProjectionInput, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return budget.ProjectionInput{}, err
	}
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return budget.ProjectionInput{}, err
	}
	expenses, err := s.expenseRepo.GetAll()
	if err != nil {
		return budget.ProjectionInput{}, err
	}
	sources, err := s.sourceRepo.GetAll()
	if err != nil {
		return budget.ProjectionInput{}, err
	}
	goals, err := s.goalRepo.GetAll()
	if err != nil {
		return budget.ProjectionInput{}, err
	}

	start := util.MonthStart(s.now().UTC())
	input := budget.ProjectionInput{Start: start}

	for _, acc := range withBalances(accounts, transactions) {
		input.Accounts = append(input.Accounts, budget.AccountBalance{
			ID:      acc.ID,
			Name:    acc.Name,
			Type:    acc.Type,
			Balance: acc.CurrentBalance,
		})
	}

	recurring := budget.LatestRecurring(transactions)
	for _, tx := range recurring {
		input.Items = append(input.Items, budget.RecurringItem{
			Name:      tx.Description,
			AccountID: tx.AccountID,
			Amount:    decimal.NewFromFloat(tx.Amount),
			Frequency: tx.RecurringType,
			Anchor:    tx.Date.Month(),
		})
	}

	for _, exp := range expenses {
		if exp == nil || !exp.IsActive || coveredByRecurring(exp.Name, recurring) {
			continue
		}
		input.Items = append(input.Items, budget.RecurringItem{
			Name:      exp.Name,
			AccountID: deref(exp.AccountID),
			Amount:    decimal.NewFromFloat(exp.Amount).Abs().Neg(),
			Frequency: exp.Frequency,
			Anchor:    exp.CreatedAt.Month(),
		})
	}

	for _, src := range sources {
		if src == nil || !src.IsActive {
			continue
		}
		input.Items = append(input.Items, budget.RecurringItem{
			Name:      src.Name,
			AccountID: deref(src.AccountID),
			Amount:    decimal.NewFromFloat(src.Amount).Abs(),
			Frequency: src.Frequency,
			Anchor:    src.CreatedAt.Month(),
		})
	}

	for _, goal := range WithProgress(goals, transactions, time.Time{}) {
		if !goal.HasTransferAccounts() || goal.MonthlyContribution <= 0 || !goal.IsActiveAt(start) {
			continue
		}
		contribution := decimal.NewFromFloat(goal.MonthlyContribution)
		input.Items = append(input.Items,
			budget.RecurringItem{
				Name:      goal.Name,
				AccountID: *goal.FromAccountID,
				Amount:    contribution.Neg(),
				Frequency: domain.FrequencyMonthly,
			},
			budget.RecurringItem{
				Name:      goal.Name,
				AccountID: *goal.ToAccountID,
				Amount:    contribution,
				Frequency: domain.FrequencyMonthly,
			},
		)
	}

	return input, nil
}

func coveredByRecurring(name string, recurring []*domain.Transaction) bool {
	for _, tx := range recurring {
		if budget.NamesMatch(tx.Description, name) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
