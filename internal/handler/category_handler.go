package handler

import (
	"net/http"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create and update category request body
type CategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(toCategoryInput(req))
	if err != nil {
		return handleServiceError(c, err, "create category")
	}

	log.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("Category created")
	return c.JSON(http.StatusCreated, category)
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return handleServiceError(c, err, "get categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(c.Param("id"), toCategoryInput(req))
	if err != nil {
		return handleServiceError(c, err, "update category")
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id := c.Param("id")
	if err := h.categoryService.DeleteCategory(id); err != nil {
		return handleServiceError(c, err, "delete category")
	}

	log.Info().Str("category_id", id).Msg("Category deleted")
	return c.NoContent(http.StatusNoContent)
}

func toCategoryInput(req CategoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:  req.Name,
		Type:  domain.CategoryType(req.Type),
		Color: req.Color,
	}
}
