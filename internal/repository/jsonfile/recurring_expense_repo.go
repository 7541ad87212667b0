package jsonfile

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// RecurringExpenseRepository implements domain.RecurringExpenseRepository on recurring-expenses.json
type RecurringExpenseRepository struct {
	c *collection[domain.RecurringExpense]
}

// NewRecurringExpenseRepository creates a new RecurringExpenseRepository
func NewRecurringExpenseRepository(store *Store) *RecurringExpenseRepository {
	return &RecurringExpenseRepository{
		c: newCollection(store, RecurringExpensesFile, func(x *domain.RecurringExpense) string { return x.ID }, domain.ErrRecurringNotFound),
	}
}

// Create assigns an id and timestamps and stores the recurring expense
func (r *RecurringExpenseRepository) Create(expense *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := r.c.insert(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID retrieves a recurring expense by its ID
func (r *RecurringExpenseRepository) GetByID(id string) (*domain.RecurringExpense, error) {
	return r.c.get(id)
}

// GetAll retrieves every recurring expense
func (r *RecurringExpenseRepository) GetAll() ([]*domain.RecurringExpense, error) {
	return r.c.all()
}

// Update replaces a stored recurring expense
func (r *RecurringExpenseRepository) Update(expense *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	expense.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes a recurring expense
func (r *RecurringExpenseRepository) Delete(id string) error {
	return r.c.remove(id)
}
