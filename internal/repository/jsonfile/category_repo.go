package jsonfile

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// CategoryRepository implements domain.CategoryRepository on categories.json
type CategoryRepository struct {
	c *collection[domain.Category]
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{
		c: newCollection(store, CategoriesFile, func(x *domain.Category) string { return x.ID }, domain.ErrCategoryNotFound),
	}
}

// Create assigns an id and timestamps and stores the category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := r.c.insert(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id string) (*domain.Category, error) {
	return r.c.get(id)
}

// GetAll retrieves every category
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	return r.c.all()
}

// Update replaces a stored category
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	category.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(id string) error {
	return r.c.remove(id)
}
