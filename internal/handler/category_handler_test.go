package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryHandler() (*CategoryHandler, *testutil.MockCategoryRepository, *testutil.MockTransactionRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	return NewCategoryHandler(service.NewCategoryService(categoryRepo, transactionRepo)), categoryRepo, transactionRepo
}

func TestCreateCategory_DefaultColor(t *testing.T) {
	h, _, _ := setupCategoryHandler()
	c, rec := newContext(http.MethodPost, "/api/v1/categories", `{"name": "Boodschappen", "type": "expense"}`)

	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	category := decodeBody[domain.Category](t, rec)
	assert.Equal(t, "Boodschappen", category.Name)
	assert.Equal(t, service.DefaultCategoryColor, category.Color)
}

func TestCreateCategory_InvalidColor(t *testing.T) {
	h, _, _ := setupCategoryHandler()
	c, rec := newContext(http.MethodPost, "/api/v1/categories", `{"name": "Uit eten", "type": "expense", "color": "orange"}`)

	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "color", decodeBody[ProblemDetails](t, rec).Errors[0].Field)
}

func TestDeleteCategory_InUse(t *testing.T) {
	h, categoryRepo, transactionRepo := setupCategoryHandler()
	categoryRepo.AddCategory(&domain.Category{ID: "c1", Name: "Wonen", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{ID: "t1", Category: "wonen", Amount: -950})

	c, rec := newContext(http.MethodDelete, "/api/v1/categories/c1", "", "id", "c1")
	require.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, transactionRepo.Delete("t1"))
	c, rec = newContext(http.MethodDelete, "/api/v1/categories/c1", "", "id", "c1")
	require.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	h, _, _ := setupCategoryHandler()
	c, rec := newContext(http.MethodPut, "/api/v1/categories/nope", `{"name": "X", "type": "income"}`, "id", "nope")

	require.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
