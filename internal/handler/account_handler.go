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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountRequest represents the create and update account request body
type AccountRequest struct {
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	StartingBalance *decimal.Decimal `json:"startingBalance,omitempty"`
	StartDate       string           `json:"startDate,omitempty"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	StartingBalance string `json:"startingBalance"`
	StartDate       string `json:"startDate"`
	CurrentBalance  string `json:"currentBalance"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// CreateAccount handles POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	input, err := bindAccountInput(c)
	if input == nil {
		return err
	}

	account, err := h.accountService.CreateAccount(*input)
	if err != nil {
		return handleServiceError(c, err, "create account")
	}

	log.Info().Str("account_id", account.ID).Str("name", account.Name).Msg("Account created")
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// GetAccounts handles GET /api/v1/accounts
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAccounts()
	if err != nil {
		return handleServiceError(c, err, "get accounts")
	}

	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountResponse(account)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAccount handles GET /api/v1/accounts/:id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountService.GetAccount(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err, "get account")
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// UpdateAccount handles PUT /api/v1/accounts/:id
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	input, err := bindAccountInput(c)
	if input == nil {
		return err
	}

	id := c.Param("id")
	account, err := h.accountService.UpdateAccount(id, *input)
	if err != nil {
		return handleServiceError(c, err, "update account")
	}

	log.Info().Str("account_id", id).Str("name", account.Name).Msg("Account updated")
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// DeleteAccount handles DELETE /api/v1/accounts/:id
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id := c.Param("id")
	if err := h.accountService.DeleteAccount(id); err != nil {
		return handleServiceError(c, err, "delete account")
	}

	log.Info().Str("account_id", id).Msg("Account deleted")
	return c.NoContent(http.StatusNoContent)
}

// bindAccountInput returns a nil input after writing a validation response
func bindAccountInput(c echo.Context) (*service.AccountInput, error) {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, invalidDate(c, "startDate")
	}

	return &service.AccountInput{
		Name:            req.Name,
		Type:            domain.AccountType(req.Type),
		StartingBalance: floatOrZero(req.StartingBalance),
		StartDate:       startDate,
	}, nil
}

func toAccountResponse(account *service.AccountWithBalance) AccountResponse {
	return AccountResponse{
		ID:              account.ID,
		Name:            account.Name,
		Type:            string(account.Type),
		StartingBalance: moneyFloat(account.StartingBalance),
		StartDate:       formatDate(account.StartDate),
		CurrentBalance:  money(account.CurrentBalance),
		CreatedAt:       account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       account.UpdatedAt.Format(time.RFC3339),
	}
}
