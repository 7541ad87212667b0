package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring expense and income source HTTP requests
type RecurringHandler struct {
	expenseService *service.RecurringExpenseService
	sourceService  *service.IncomeSourceService
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(expenseService *service.RecurringExpenseService, sourceService *service.IncomeSourceService) *RecurringHandler {
	return &RecurringHandler{
		expenseService: expenseService,
		sourceService:  sourceService,
	}
}

// RecurringRequest represents the request body shared by recurring expenses and income sources
type RecurringRequest struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency,omitempty"`
	Category  string          `json:"category"`
	IsActive  *bool           `json:"isActive,omitempty"`
	AccountID *string         `json:"accountId,omitempty"`
}

// RecurringResponse represents a recurring expense or income source in API responses
type RecurringResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    string  `json:"amount"`
	Frequency string  `json:"frequency"`
	Category  string  `json:"category"`
	IsActive  bool    `json:"isActive"`
	AccountID *string `json:"accountId,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateExpense handles POST /api/v1/recurring-expenses
func (h *RecurringHandler) CreateExpense(c echo.Context) error {
	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.CreateExpense(toRecurringInput(req))
	if err != nil {
		return handleServiceError(c, err, "create recurring expense")
	}

	log.Info().Str("expense_id", expense.ID).Str("name", expense.Name).Msg("Recurring expense created")
	return c.JSON(http.StatusCreated, expenseResponse(expense))
}

// GetExpenses handles GET /api/v1/recurring-expenses
func (h *RecurringHandler) GetExpenses(c echo.Context) error {
	expenses, err := h.expenseService.GetExpenses()
	if err != nil {
		return handleServiceError(c, err, "get recurring expenses")
	}

	response := make([]RecurringResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = expenseResponse(expense)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateExpense handles PUT /api/v1/recurring-expenses/:id
func (h *RecurringHandler) UpdateExpense(c echo.Context) error {
	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.UpdateExpense(c.Param("id"), toRecurringInput(req))
	if err != nil {
		return handleServiceError(c, err, "update recurring expense")
	}
	return c.JSON(http.StatusOK, expenseResponse(expense))
}

// DeleteExpense handles DELETE /api/v1/recurring-expenses/:id
func (h *RecurringHandler) DeleteExpense(c echo.Context) error {
	id := c.Param("id")
	if err := h.expenseService.DeleteExpense(id); err != nil {
		return handleServiceError(c, err, "delete recurring expense")
	}

	log.Info().Str("expense_id", id).Msg("Recurring expense deleted")
	return c.NoContent(http.StatusNoContent)
}

// CreateSource handles POST /api/v1/income-sources
func (h *RecurringHandler) CreateSource(c echo.Context) error {
	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	source, err := h.sourceService.CreateSource(toRecurringInput(req))
	if err != nil {
		return handleServiceError(c, err, "create income source")
	}

	log.Info().Str("source_id", source.ID).Str("name", source.Name).Msg("Income source created")
	return c.JSON(http.StatusCreated, sourceResponse(source))
}

// GetSources handles GET /api/v1/income-sources
func (h *RecurringHandler) GetSources(c echo.Context) error {
	sources, err := h.sourceService.GetSources()
	if err != nil {
		return handleServiceError(c, err, "get income sources")
	}

	response := make([]RecurringResponse, len(sources))
	for i, source := range sources {
		response[i] = sourceResponse(source)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateSource handles PUT /api/v1/income-sources/:id
func (h *RecurringHandler) UpdateSource(c echo.Context) error {
	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	source, err := h.sourceService.UpdateSource(c.Param("id"), toRecurringInput(req))
	if err != nil {
		return handleServiceError(c, err, "update income source")
	}
	return c.JSON(http.StatusOK, sourceResponse(source))
}

// DeleteSource handles DELETE /api/v1/income-sources/:id
func (h *RecurringHandler) DeleteSource(c echo.Context) error {
	id := c.Param("id")
	if err := h.sourceService.DeleteSource(id); err != nil {
		return handleServiceError(c, err, "delete income source")
	}

	log.Info().Str("source_id", id).Msg("Income source deleted")
	return c.NoContent(http.StatusNoContent)
}

func toRecurringInput(req RecurringRequest) service.RecurringInput {
	return service.RecurringInput{
		Name:      req.Name,
		Amount:    req.Amount.InexactFloat64(),
		Frequency: domain.Frequency(req.Frequency),
		Category:  req.Category,
		IsActive:  req.IsActive,
		AccountID: req.AccountID,
	}
}

func expenseResponse(e *domain.RecurringExpense) RecurringResponse {
	return RecurringResponse{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    moneyFloat(e.Amount),
		Frequency: string(e.Frequency),
		Category:  e.Category,
		IsActive:  e.IsActive,
		AccountID: e.AccountID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func sourceResponse(s *domain.IncomeSource) RecurringResponse {
	return RecurringResponse{
		ID:        s.ID,
		Name:      s.Name,
		Amount:    moneyFloat(s.Amount),
		Frequency: string(s.Frequency),
		Category:  s.Category,
		IsActive:  s.IsActive,
		AccountID: s.AccountID,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
