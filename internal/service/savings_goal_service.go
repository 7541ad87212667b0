package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SavingsGoalService handles savings goals and their automatic transfers
type SavingsGoalService struct {
	activityLog
	goalRepo           domain.SavingsGoalRepository
	transactionRepo    domain.TransactionRepository
	accountRepo        domain.AccountRepository
	transactionService *TransactionService
}

// NewSavingsGoalService creates a new SavingsGoalService. Transfers are created through
// transactionService so they get the same validation and activity entries as manual ones.
func NewSavingsGoalService(
	goalRepo domain.SavingsGoalRepository,
	transactionRepo domain.TransactionRepository,
	accountRepo domain.AccountRepository,
	transactionService *TransactionService,
) *SavingsGoalService {
	return &SavingsGoalService{
		goalRepo:           goalRepo,
		transactionRepo:    transactionRepo,
		accountRepo:        accountRepo,
		transactionService: transactionService,
	}
}

// SavingsGoalInput holds the input for creating or updating a savings goal
type SavingsGoalInput struct {
	Name                string
	TargetAmount        float64
	Deadline            *time.Time
	MonthlyContribution float64
	FromAccountID       *string
	ToAccountID         *string
}

// GoalTransferResult is the outcome of generating a month's transfer for a goal
type GoalTransferResult struct {
	Goal         *domain.SavingsGoal
	Transactions []*domain.Transaction
	// Created is false when the month already had a contribution
	Created bool
}

// CreateGoal validates and stores a savings goal
func (s *SavingsGoalService) CreateGoal(input SavingsGoalInput) (*domain.SavingsGoal, error) {
	goal, err := s.validateGoalInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.goalRepo.Create(goal)
	if err != nil {
		return nil, err
	}
	created.CurrentAmount = 0

	s.record(domain.ActivityCreated, domain.EntitySavingsGoal, created.ID, "Created savings goal "+created.Name, created)
	return created, nil
}

// GetGoals returns every goal with its current amount derived from linked transactions
func (s *SavingsGoalService) GetGoals() ([]*domain.SavingsGoal, error) {
	goals, err := s.goalRepo.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	return WithProgress(goals, transactions, time.Time{}), nil
}

// GetGoal returns one goal with its current amount
func (s *SavingsGoalService) GetGoal(id string) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll(&domain.TransactionFilters{SavingsGoal: &id})
	if err != nil {
		return nil, err
	}
	return WithProgress([]*domain.SavingsGoal{goal}, transactions, time.Time{})[0], nil
}

// UpdateGoal replaces the fields of a goal
func (s *SavingsGoalService) UpdateGoal(id string, input SavingsGoalInput) (*domain.SavingsGoal, error) {
	existing, err := s.goalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	goal, err := s.validateGoalInput(input)
	if err != nil {
		return nil, err
	}
	goal.ID = existing.ID
	goal.CreatedAt = existing.CreatedAt

	if _, err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	updated, err := s.GetGoal(id)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntitySavingsGoal, updated.ID, "Updated savings goal "+updated.Name, updated)
	return updated, nil
}

// DeleteGoal removes a goal. Linked transactions are kept.
func (s *SavingsGoalService) DeleteGoal(id string) error {
	existing, err := s.goalRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.goalRepo.Delete(id); err != nil {
		return err
	}

	s.record(domain.ActivityDeleted, domain.EntitySavingsGoal, id, "Deleted savings goal "+existing.Name, map[string]string{"id": id})
	return nil
}

// GenerateTransfer creates the goal's contribution for the given month as a transfer from the
// goal's source account to its target account. It is idempotent per month: when a linked
// transaction already exists in that month nothing is created. The contribution never exceeds
// what is left to reach the target. The transfer is dated on the goal's creation day (clamped to
// the month length) and is completed when that date is not in the future.
func (s *SavingsGoalService) GenerateTransfer(id string, year int, month time.Month) (*GoalTransferResult, error) {
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidDate
	}

	goal, err := s.GetGoal(id)
	if err != nil {
		return nil, err
	}
	if !goal.HasTransferAccounts() {
		return nil, domain.ErrGoalAccountsRequired
	}
	if goal.MonthlyContribution <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	linked, err := s.transactionRepo.GetAll(&domain.TransactionFilters{SavingsGoal: &id})
	if err != nil {
		return nil, err
	}
	monthEnd := util.MonthEnd(year, month)
	var existing []*domain.Transaction
	for _, tx := range linked {
		if tx.InMonth(monthEnd) {
			existing = append(existing, tx)
		}
	}
	if len(existing) > 0 {
		return &GoalTransferResult{Goal: goal, Transactions: existing, Created: false}, nil
	}

	if !goal.IsActiveAt(monthEnd) {
		return nil, domain.ErrGoalInactive
	}

	amount := decimal.NewFromFloat(goal.MonthlyContribution)
	if goal.TargetAmount > 0 {
		remaining := decimal.NewFromFloat(goal.TargetAmount).Sub(decimal.NewFromFloat(goal.CurrentAmount))
		amount = decimal.Min(amount, remaining)
	}

	date := util.CalculateActualDate(year, month, goal.CreatedAt.Day())
	goalID := goal.ID
	legs, err := s.transactionService.CreateTransfer(TransferInput{
		FromAccountID: *goal.FromAccountID,
		ToAccountID:   *goal.ToAccountID,
		Amount:        amount.Round(2).InexactFloat64(),
		Description:   fmt.Sprintf("Savings: %s", goal.Name),
		Date:          &date,
		SavingsGoalID: &goalID,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetGoal(id)
	if err != nil {
		return nil, err
	}
	return &GoalTransferResult{Goal: updated, Transactions: legs, Created: true}, nil
}

// GenerateDueTransfers generates the month of now's transfer for every goal that can receive one.
// Failures are logged per goal and counted; they do not stop the other goals.
func (s *SavingsGoalService) GenerateDueTransfers(now time.Time) (created int, failed int, err error) {
	goals, err := s.GetGoals()
	if err != nil {
		return 0, 0, err
	}

	for _, goal := range goals {
		if !goal.HasTransferAccounts() || goal.MonthlyContribution <= 0 || !goal.IsActiveAt(now) {
			continue
		}
		result, err := s.GenerateTransfer(goal.ID, now.Year(), now.Month())
		if err != nil {
			log.Error().Err(err).Str("goal_id", goal.ID).Msg("Failed to generate savings transfer")
			failed++
			continue
		}
		if result.Created {
			created++
		}
	}
	return created, failed, nil
}

func (s *SavingsGoalService) validateGoalInput(input SavingsGoalInput) (*domain.SavingsGoal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.TargetAmount <= 0 || math.IsNaN(input.TargetAmount) || math.IsInf(input.TargetAmount, 0) {
		return nil, domain.ErrInvalidAmount
	}
	if input.MonthlyContribution < 0 || math.IsNaN(input.MonthlyContribution) || math.IsInf(input.MonthlyContribution, 0) {
		return nil, domain.ErrInvalidAmount
	}

	from := emptyToNil(input.FromAccountID)
	to := emptyToNil(input.ToAccountID)
	if from != nil && to != nil && *from == *to {
		return nil, domain.ErrSameAccountTransfer
	}
	for _, accountID := range []*string{from, to} {
		if accountID == nil {
			continue
		}
		if _, err := s.accountRepo.GetByID(*accountID); err != nil {
			return nil, err
		}
	}

	var deadline *time.Time
	if input.Deadline != nil {
		d := input.Deadline.UTC()
		deadline = &d
	}

	return &domain.SavingsGoal{
		Name:                name,
		TargetAmount:        input.TargetAmount,
		Deadline:            deadline,
		MonthlyContribution: input.MonthlyContribution,
		FromAccountID:       from,
		ToAccountID:         to,
	}, nil
}

// WithProgress returns copies of goals with CurrentAmount set to the sum of absolute amounts of
// their linked transactions. When before is non-zero only transactions dated before it count.
func WithProgress(goals []*domain.SavingsGoal, transactions []*domain.Transaction, before time.Time) []*domain.SavingsGoal {
	totals := make(map[string]decimal.Decimal, len(goals))
	for _, tx := range transactions {
		if tx == nil || tx.SavingsGoalID == nil {
			continue
		}
		if !before.IsZero() && !tx.Date.Before(before) {
			continue
		}
		id := *tx.SavingsGoalID
		totals[id] = totals[id].Add(decimal.NewFromFloat(tx.Amount).Abs())
	}

	result := make([]*domain.SavingsGoal, 0, len(goals))
	for _, g := range goals {
		if g == nil {
			continue
		}
		copied := *g
		copied.CurrentAmount = totals[g.ID].Round(2).InexactFloat64()
		result = append(result, &copied)
	}
	return result
}
