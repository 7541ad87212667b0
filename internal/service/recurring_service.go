package service

import (
	"math"
	"strings"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

// RecurringInput holds the input for creating or updating a recurring expense or an income source
type RecurringInput struct {
	Name      string
	Amount    float64
	Frequency domain.Frequency
	Category  string
	IsActive  *bool
	AccountID *string
}

type validRecurring struct {
	name      string
	amount    float64
	frequency domain.Frequency
	category  string
	isActive  bool
	accountID *string
}

// validateRecurringInput checks the fields shared by expenses and income sources. The amount is
// stored as a positive magnitude. A linked account must exist.
func validateRecurringInput(input RecurringInput, accountRepo domain.AccountRepository) (*validRecurring, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Amount == 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, domain.ErrInvalidAmount
	}

	frequency := input.Frequency
	if frequency == "" {
		frequency = domain.FrequencyMonthly
	}
	if !domain.ValidFrequencies[frequency] {
		return nil, domain.ErrInvalidFrequency
	}

	accountID := emptyToNil(input.AccountID)
	if accountID != nil {
		if _, err := accountRepo.GetByID(*accountID); err != nil {
			return nil, err
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &validRecurring{
		name:      name,
		amount:    math.Abs(input.Amount),
		frequency: frequency,
		category:  strings.TrimSpace(input.Category),
		isActive:  isActive,
		accountID: accountID,
	}, nil
}

// RecurringExpenseService handles configured recurring expenses
type RecurringExpenseService struct {
	activityLog
	expenseRepo domain.RecurringExpenseRepository
	accountRepo domain.AccountRepository
}

// NewRecurringExpenseService creates a new RecurringExpenseService
func NewRecurringExpenseService(expenseRepo domain.RecurringExpenseRepository, accountRepo domain.AccountRepository) *RecurringExpenseService {
	return &RecurringExpenseService{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
	}
}

// CreateExpense validates and stores a recurring expense
func (s *RecurringExpenseService) CreateExpense(input RecurringInput) (*domain.RecurringExpense, error) {
	v, err := validateRecurringInput(input, s.accountRepo)
	if err != nil {
		return nil, err
	}

	created, err := s.expenseRepo.Create(&domain.RecurringExpense{
		Name:      v.name,
		Amount:    v.amount,
		Frequency: v.frequency,
		Category:  v.category,
		IsActive:  v.isActive,
		AccountID: v.accountID,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityRecurringExpense, created.ID, "Created recurring expense "+created.Name, created)
	return created, nil
}

// GetExpenses returns every recurring expense
func (s *RecurringExpenseService) GetExpenses() ([]*domain.RecurringExpense, error) {
	return s.expenseRepo.GetAll()
}

// UpdateExpense replaces the fields of a recurring expense. A nil IsActive keeps the stored flag.
func (s *RecurringExpenseService) UpdateExpense(id string, input RecurringInput) (*domain.RecurringExpense, error) {
	existing, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		input.IsActive = &existing.IsActive
	}

	v, err := validateRecurringInput(input, s.accountRepo)
	if err != nil {
		return nil, err
	}

	updated, err := s.expenseRepo.Update(&domain.RecurringExpense{
		ID:        existing.ID,
		Name:      v.name,
		Amount:    v.amount,
		Frequency: v.frequency,
		Category:  v.category,
		IsActive:  v.isActive,
		AccountID: v.accountID,
		CreatedAt: existing.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityRecurringExpense, updated.ID, "Updated recurring expense "+updated.Name, updated)
	return updated, nil
}

// DeleteExpense removes a recurring expense
func (s *RecurringExpenseService) DeleteExpense(id string) error {
	existing, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}

	s.record(domain.ActivityDeleted, domain.EntityRecurringExpense, id, "Deleted recurring expense "+existing.Name, map[string]string{"id": id})
	return nil
}

// IncomeSourceService handles configured income sources
type IncomeSourceService struct {
	activityLog
	sourceRepo  domain.IncomeSourceRepository
	accountRepo domain.AccountRepository
}

// NewIncomeSourceService creates a new IncomeSourceService
func NewIncomeSourceService(sourceRepo domain.IncomeSourceRepository, accountRepo domain.AccountRepository) *IncomeSourceService {
	return &IncomeSourceService{
		sourceRepo:  sourceRepo,
		accountRepo: accountRepo,
	}
}

// CreateSource validates and stores an income source
func (s *IncomeSourceService) CreateSource(input RecurringInput) (*domain.IncomeSource, error) {
	v, err := validateRecurringInput(input, s.accountRepo)
	if err != nil {
		return nil, err
	}

	created, err := s.sourceRepo.Create(&domain.IncomeSource{
		Name:      v.name,
		Amount:    v.amount,
		Frequency: v.frequency,
		Category:  v.category,
		IsActive:  v.isActive,
		AccountID: v.accountID,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityIncomeSource, created.ID, "Created income source "+created.Name, created)
	return created, nil
}

// GetSources returns every income source
func (s *IncomeSourceService) GetSources() ([]*domain.IncomeSource, error) {
	return s.sourceRepo.GetAll()
}

// UpdateSource replaces the fields of an income source. A nil IsActive keeps the stored flag.
func (s *IncomeSourceService) UpdateSource(id string, input RecurringInput) (*domain.IncomeSource, error) {
	existing, err := s.sourceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		input.IsActive = &existing.IsActive
	}

	v, err := validateRecurringInput(input, s.accountRepo)
	if err != nil {
		return nil, err
	}

	updated, err := s.sourceRepo.Update(&domain.IncomeSource{
		ID:        existing.ID,
		Name:      v.name,
		Amount:    v.amount,
		Frequency: v.frequency,
		Category:  v.category,
		IsActive:  v.isActive,
		AccountID: v.accountID,
		CreatedAt: existing.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityIncomeSource, updated.ID, "Updated income source "+updated.Name, updated)
	return updated, nil
}

// DeleteSource removes an income source
func (s *IncomeSourceService) DeleteSource(id string) error {
	existing, err := s.sourceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.sourceRepo.Delete(id); err != nil {
		return err
	}

	s.record(domain.ActivityDeleted, domain.EntityIncomeSource, id, "Deleted income source "+existing.Name, map[string]string{"id": id})
	return nil
}
