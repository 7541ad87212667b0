package jsonfile

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// SavingsGoalRepository implements domain.SavingsGoalRepository on savings-goals.json
type SavingsGoalRepository struct {
	c *collection[domain.SavingsGoal]
}

// NewSavingsGoalRepository creates a new SavingsGoalRepository
func NewSavingsGoalRepository(store *Store) *SavingsGoalRepository {
	return &SavingsGoalRepository{
		c: newCollection(store, SavingsGoalsFile, func(x *domain.SavingsGoal) string { return x.ID }, domain.ErrSavingsGoalNotFound),
	}
}

// Create assigns an id and timestamps and stores the savings goal
func (r *SavingsGoalRepository) Create(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := r.c.insert(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetByID retrieves a savings goal by its ID
func (r *SavingsGoalRepository) GetByID(id string) (*domain.SavingsGoal, error) {
	return r.c.get(id)
}

// GetAll retrieves every savings goal
func (r *SavingsGoalRepository) GetAll() ([]*domain.SavingsGoal, error) {
	return r.c.all()
}

// Update replaces a stored savings goal
func (r *SavingsGoalRepository) Update(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	goal.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes a savings goal
func (r *SavingsGoalRepository) Delete(id string) error {
	return r.c.remove(id)
}
