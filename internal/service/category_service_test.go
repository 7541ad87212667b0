package service

import (
	"testing"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryService() (*CategoryService, *testutil.MockCategoryRepository, *testutil.MockTransactionRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	return NewCategoryService(categoryRepo, transactionRepo), categoryRepo, transactionRepo
}

func TestCreateCategory(t *testing.T) {
	svc, categoryRepo, _ := setupCategoryService()

	category, err := svc.CreateCategory(CategoryInput{Name: " Boodschappen ", Type: domain.CategoryTypeExpense})
	require.NoError(t, err)

	assert.Equal(t, "Boodschappen", category.Name)
	assert.Equal(t, DefaultCategoryColor, category.Color)
	assert.Len(t, categoryRepo.Categories, 1)
}

func TestCreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   CategoryInput
		wantErr error
	}{
		{"missing name", CategoryInput{Type: domain.CategoryTypeExpense}, domain.ErrNameRequired},
		{"invalid type", CategoryInput{Name: "Salaris", Type: "transfer"}, domain.ErrInvalidCategoryType},
		{"invalid color", CategoryInput{Name: "Salaris", Type: domain.CategoryTypeIncome, Color: "red"}, domain.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := setupCategoryService()
			_, err := svc.CreateCategory(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateCategory_AcceptsShortHexColor(t *testing.T) {
	svc, _, _ := setupCategoryService()

	category, err := svc.CreateCategory(CategoryInput{Name: "Salaris", Type: domain.CategoryTypeIncome, Color: "#0f0"})
	require.NoError(t, err)
	assert.Equal(t, "#0f0", category.Color)
}

func TestUpdateCategory(t *testing.T) {
	svc, categoryRepo, _ := setupCategoryService()
	categoryRepo.AddCategory(&domain.Category{ID: "c1", Name: "Eten", Type: domain.CategoryTypeExpense, Color: "#ffffff"})

	updated, err := svc.UpdateCategory("c1", CategoryInput{Name: "Uit eten", Type: domain.CategoryTypeExpense, Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, "c1", updated.ID)
	assert.Equal(t, "Uit eten", updated.Name)
	assert.Equal(t, "#000000", categoryRepo.Categories["c1"].Color)
}

func TestDeleteCategory_InUseByID(t *testing.T) {
	svc, categoryRepo, transactionRepo := setupCategoryService()
	categoryRepo.AddCategory(&domain.Category{ID: "c1", Name: "Wonen", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Category: "c1"})

	assert.ErrorIs(t, svc.DeleteCategory("c1"), domain.ErrCategoryInUse)
	assert.Len(t, categoryRepo.Categories, 1)
}

func TestDeleteCategory_InUseByName(t *testing.T) {
	svc, categoryRepo, transactionRepo := setupCategoryService()
	categoryRepo.AddCategory(&domain.Category{ID: "c1", Name: "Wonen", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Category: " wonen"})

	assert.ErrorIs(t, svc.DeleteCategory("c1"), domain.ErrCategoryInUse)
}

func TestDeleteCategory(t *testing.T) {
	svc, categoryRepo, transactionRepo := setupCategoryService()
	categoryRepo.AddCategory(&domain.Category{ID: "c1", Name: "Wonen", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Category: "Vervoer"})

	require.NoError(t, svc.DeleteCategory("c1"))
	assert.Empty(t, categoryRepo.Categories)
}

func TestResolveCategories(t *testing.T) {
	categories := []*domain.Category{
		{ID: "c-housing", Name: "Wonen"},
		{ID: "c-food", Name: "Eten"},
	}
	original := []*domain.Transaction{
		{ID: "t1", Category: "c-housing"},
		{ID: "t2", Category: "Boodschappen"},
		{ID: "t3", Category: "c-unknown"},
		nil,
	}

	resolved := ResolveCategories(original, categories)

	require.Len(t, resolved, 3)
	assert.Equal(t, "Wonen", resolved[0].Category)
	assert.Equal(t, "Boodschappen", resolved[1].Category)
	assert.Equal(t, "c-unknown", resolved[2].Category)
	assert.Equal(t, "c-housing", original[0].Category, "input is not modified")
}
