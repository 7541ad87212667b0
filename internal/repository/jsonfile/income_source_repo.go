package jsonfile

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// IncomeSourceRepository implements domain.IncomeSourceRepository on income-sources.json
type IncomeSourceRepository struct {
	c *collection[domain.IncomeSource]
}

// NewIncomeSourceRepository creates a new IncomeSourceRepository
func NewIncomeSourceRepository(store *Store) *IncomeSourceRepository {
	return &IncomeSourceRepository{
		c: newCollection(store, IncomeSourcesFile, func(x *domain.IncomeSource) string { return x.ID }, domain.ErrRecurringNotFound),
	}
}

// Create assigns an id and timestamps and stores the income source
func (r *IncomeSourceRepository) Create(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	if source.ID == "" {
		source.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	source.CreatedAt = now
	source.UpdatedAt = now

	if err := r.c.insert(source); err != nil {
		return nil, err
	}
	return source, nil
}

// GetByID retrieves a income source by its ID
func (r *IncomeSourceRepository) GetByID(id string) (*domain.IncomeSource, error) {
	return r.c.get(id)
}

// GetAll retrieves every income source
func (r *IncomeSourceRepository) GetAll() ([]*domain.IncomeSource, error) {
	return r.c.all()
}

// Update replaces a stored income source
func (r *IncomeSourceRepository) Update(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	source.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(source); err != nil {
		return nil, err
	}
	return source, nil
}

// Delete removes a income source
func (r *IncomeSourceRepository) Delete(id string) error {
	return r.c.remove(id)
}
