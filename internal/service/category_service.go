package service

import (
	"regexp"
	"strings"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

// DefaultCategoryColor is used when a category is created without a color
const DefaultCategoryColor = "#6b7280"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// CategoryService handles category-related business logic
type CategoryService struct {
	activityLog
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository, transactionRepo domain.TransactionRepository) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// CategoryInput holds the input for creating or updating a category
type CategoryInput struct {
	Name  string
	Type  domain.CategoryType
	Color string
}

// CreateCategory validates and stores a new category
func (s *CategoryService) CreateCategory(input CategoryInput) (*domain.Category, error) {
	category, err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityCreated, domain.EntityCategory, created.ID, "Created category "+created.Name, created)
	return created, nil
}

// GetCategories returns every category
func (s *CategoryService) GetCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// UpdateCategory replaces the fields of a category
func (s *CategoryService) UpdateCategory(id string, input CategoryInput) (*domain.Category, error) {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	category, err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt

	updated, err := s.categoryRepo.Update(category)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntityCategory, updated.ID, "Updated category "+updated.Name, updated)
	return updated, nil
}

// DeleteCategory removes a category that no transaction refers to, by id or by name
func (s *CategoryService) DeleteCategory(id string) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}

	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		if tx.Category == category.ID || strings.EqualFold(strings.TrimSpace(tx.Category), category.Name) {
			return domain.ErrCategoryInUse
		}
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	s.record(domain.ActivityDeleted, domain.EntityCategory, id, "Deleted category "+category.Name, map[string]string{"id": id})
	return nil
}

func validateCategoryInput(input CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Type != domain.CategoryTypeIncome && input.Type != domain.CategoryTypeExpense {
		return nil, domain.ErrInvalidCategoryType
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = DefaultCategoryColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, domain.ErrInvalidColor
	}

	return &domain.Category{Name: name, Type: input.Type, Color: color}, nil
}

// ResolveCategories returns copies of transactions whose category ids are replaced by the
// category name. Categories that are already names, or unknown ids, are left as they are.
func ResolveCategories(transactions []*domain.Transaction, categories []*domain.Category) []*domain.Transaction {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		resolved := *tx
		if name, ok := names[tx.Category]; ok {
			resolved.Category = name
		}
		result = append(result, &resolved)
	}
	return result
}
