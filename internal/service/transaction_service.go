package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// TransferCategory is the category stored on both legs of a transfer
const TransferCategory = "Transfer"

// TransactionService handles transaction-related business logic
type TransactionService struct {
	activityLog
	transactionRepo domain.TransactionRepository
	accountRepo     domain.AccountRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, accountRepo domain.AccountRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// TransactionInput holds the input for creating or updating a transaction
type TransactionInput struct {
	Description   string
	Amount        float64
	Type          domain.TransactionType
	Category      string
	AccountID     string
	Date          *time.Time
	IsRecurring   bool
	RecurringType domain.Frequency
	Completed     *bool
	SavingsGoalID *string
	Tags          []string
}

// TransferInput holds the input for moving money between two accounts
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        float64
	Description   string
	Date          *time.Time
	SavingsGoalID *string
}

// CreateTransaction validates and stores a transaction. Expense amounts are stored negative and
// income amounts positive whatever sign was given. Date defaults to today and completed
// defaults to whether the date is not in the future.
func (s *TransactionService) CreateTransaction(input TransactionInput) (*domain.Transaction, error) {
	tx, err := s.buildTransaction(input)
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(tx)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityTransaction, created.ID, "Added transaction "+created.Description, created)
	return created, nil
}

// GetTransactions returns transactions passing filters, newest first
func (s *TransactionService) GetTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll(filters)
}

// GetTransaction returns one transaction
func (s *TransactionService) GetTransaction(id string) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// UpdateTransaction replaces the editable fields of a transaction. The transfer link is kept.
func (s *TransactionService) UpdateTransaction(id string, input TransactionInput) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tx, err := s.buildTransaction(input)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.TransferID = existing.TransferID
	tx.CreatedAt = existing.CreatedAt
	if input.Completed == nil {
		tx.Completed = existing.Completed
	}

	updated, err := s.transactionRepo.Update(tx)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityTransaction, updated.ID, "Updated transaction "+updated.Description, updated)
	return updated, nil
}

// DeleteTransaction removes a transaction. Deleting one leg of a transfer removes the other leg too.
func (s *TransactionService) DeleteTransaction(id string) error {
	tx, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}

	ids := []string{tx.ID}
	if tx.TransferID != nil {
		legs, err := s.transferLegs(*tx.TransferID)
		if err != nil {
			return err
		}
		for _, leg := range legs {
			if leg.ID != tx.ID {
				ids = append(ids, leg.ID)
			}
		}
	}

	for _, legID := range ids {
		if err := s.transactionRepo.Delete(legID); err != nil {
			return err
		}
	}

	s.record(domain.ActivityDeleted, domain.EntityTransaction, tx.ID, "Deleted transaction "+tx.Description, map[string]any{"ids": ids})
	return nil
}

// ToggleCompleted flips the completed flag of a transaction
func (s *TransactionService) ToggleCompleted(id string) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	toggled := *tx
	toggled.Completed = !tx.Completed

	updated, err := s.transactionRepo.Update(&toggled)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityTransaction, updated.ID, fmt.Sprintf("Marked %s as %s", updated.Description, completedLabel(updated.Completed)), updated)
	return updated, nil
}

// CreateTransfer stores both legs of a transfer in one write: a negative leg on the source
// account and a positive leg on the target account sharing a transfer id. Only the positive
// leg carries the savings goal link so a goal never counts the same transfer twice.
func (s *TransactionService) CreateTransfer(input TransferInput) ([]*domain.Transaction, error) {
	legs, err := s.buildTransfer(input)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.CreateBatch(legs); err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityTransaction, legs[0].ID, "Transferred "+legs[0].Description, legs)
	return legs, nil
}

func (s *TransactionService) buildTransaction(input TransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}
	if !domain.ValidTransactionTypes[input.Type] {
		return nil, domain.ErrInvalidTransactionType
	}
	if input.Amount == 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.accountRepo.GetByID(input.AccountID); err != nil {
		return nil, err
	}

	recurringType := input.RecurringType
	if input.IsRecurring {
		if recurringType == "" {
			recurringType = domain.FrequencyMonthly
		}
		if !domain.ValidFrequencies[recurringType] {
			return nil, domain.ErrInvalidFrequency
		}
	} else {
		recurringType = ""
	}

	amount := input.Amount
	switch input.Type {
	case domain.TransactionTypeExpense:
		amount = -math.Abs(amount)
	case domain.TransactionTypeIncome:
		amount = math.Abs(amount)
	}

	date := today()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	completed := !date.After(today())
	if input.Completed != nil {
		completed = *input.Completed
	}

	return &domain.Transaction{
		Description:   description,
		Amount:        amount,
		Type:          input.Type,
		Category:      strings.TrimSpace(input.Category),
		AccountID:     input.AccountID,
		Date:          date,
		IsRecurring:   input.IsRecurring,
		RecurringType: recurringType,
		Completed:     completed,
		SavingsGoalID: emptyToNil(input.SavingsGoalID),
		Tags:          cleanTags(input.Tags),
	}, nil
}

func (s *TransactionService) buildTransfer(input TransferInput) ([]*domain.Transaction, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccountTransfer
	}
	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, domain.ErrInvalidAmount
	}

	from, err := s.accountRepo.GetByID(input.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := s.accountRepo.GetByID(input.ToAccountID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = fmt.Sprintf("Transfer %s → %s", from.Name, to.Name)
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	date := today()
	if input.Date != nil {
		date = input.Date.UTC()
	}
	completed := !date.After(today())
	transferID := uuid.New().String()

	out := &domain.Transaction{
		Description: description,
		Amount:      -input.Amount,
		Type:        domain.TransactionTypeTransfer,
		Category:    TransferCategory,
		AccountID:   from.ID,
		Date:        date,
		Completed:   completed,
		TransferID:  &transferID,
	}
	in := &domain.Transaction{
		Description:   description,
		Amount:        input.Amount,
		Type:          domain.TransactionTypeTransfer,
		Category:      TransferCategory,
		AccountID:     to.ID,
		Date:          date,
		Completed:     completed,
		TransferID:    &transferID,
		SavingsGoalID: emptyToNil(input.SavingsGoalID),
	}
	return []*domain.Transaction{out, in}, nil
}

func (s *TransactionService) transferLegs(transferID string) ([]*domain.Transaction, error) {
	all, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	var legs []*domain.Transaction
	for _, tx := range all {
		if tx.TransferID != nil && *tx.TransferID == transferID {
			legs = append(legs, tx)
		}
	}
	return legs, nil
}

func completedLabel(completed bool) string {
	if completed {
		return "completed"
	}
	return "pending"
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// cleanTags trims tags and drops empty and duplicate ones, keeping order
func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
