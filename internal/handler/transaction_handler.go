package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the create and update transaction request body
type TransactionRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	AccountID     string          `json:"accountId"`
	Date          string          `json:"date,omitempty"`
	IsRecurring   bool            `json:"isRecurring"`
	RecurringType string          `json:"recurringType,omitempty"`
	Completed     *bool           `json:"completed,omitempty"`
	SavingsGoalID *string         `json:"savingsGoalId,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

// TransferRequest represents the create transfer request body
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date,omitempty"`
	SavingsGoalID *string         `json:"savingsGoalId,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Amount        string   `json:"amount"`
	Type          string   `json:"type"`
	Category      string   `json:"category"`
	AccountID     string   `json:"accountId"`
	Date          string   `json:"date"`
	IsRecurring   bool     `json:"isRecurring"`
	RecurringType string   `json:"recurringType,omitempty"`
	Completed     bool     `json:"completed"`
	SavingsGoalID *string  `json:"savingsGoalId,omitempty"`
	TransferID    *string  `json:"transferId,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	input, err := bindTransactionInput(c)
	if input == nil {
		return err
	}

	tx, err := h.transactionService.CreateTransaction(*input)
	if err != nil {
		return handleServiceError(c, err, "create transaction")
	}

	log.Info().Str("transaction_id", tx.ID).Str("type", string(tx.Type)).Msg("Transaction created")
	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// GetTransactions handles GET /api/v1/transactions
// Query params: accountId, category, type, from, to (YYYY-MM-DD), completed (true/false)
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := &domain.TransactionFilters{}

	if accountID := c.QueryParam("accountId"); accountID != "" {
		filters.AccountID = &accountID
	}
	if category := c.QueryParam("category"); category != "" {
		filters.Category = &category
	}
	if typ := c.QueryParam("type"); typ != "" {
		txType := domain.TransactionType(typ)
		if !domain.ValidTransactionTypes[txType] {
			return handleServiceError(c, domain.ErrInvalidTransactionType, "get transactions")
		}
		filters.Type = &txType
	}

	from, err := parseDate(c.QueryParam("from"))
	if err != nil {
		return invalidDate(c, "from")
	}
	filters.StartDate = from

	to, err := parseDate(c.QueryParam("to"))
	if err != nil {
		return invalidDate(c, "to")
	}
	if to != nil {
		// Inclusive of the whole end day
		end := to.Add(24*time.Hour - time.Nanosecond)
		filters.EndDate = &end
	}

	if completed := c.QueryParam("completed"); completed != "" {
		value, err := strconv.ParseBool(completed)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "completed", Message: "Must be true or false"},
			})
		}
		filters.Completed = &value
	}

	transactions, err := h.transactionService.GetTransactions(filters)
	if err != nil {
		return handleServiceError(c, err, "get transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		response[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	tx, err := h.transactionService.GetTransaction(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err, "get transaction")
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	input, err := bindTransactionInput(c)
	if input == nil {
		return err
	}

	id := c.Param("id")
	tx, err := h.transactionService.UpdateTransaction(id, *input)
	if err != nil {
		return handleServiceError(c, err, "update transaction")
	}

	log.Info().Str("transaction_id", id).Msg("Transaction updated")
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return handleServiceError(c, err, "delete transaction")
	}

	log.Info().Str("transaction_id", id).Msg("Transaction deleted")
	return c.NoContent(http.StatusNoContent)
}

// ToggleCompleted handles PATCH /api/v1/transactions/:id/toggle-completed
func (h *TransactionHandler) ToggleCompleted(c echo.Context) error {
	id := c.Param("id")
	tx, err := h.transactionService.ToggleCompleted(id)
	if err != nil {
		return handleServiceError(c, err, "toggle completed status")
	}

	log.Info().Str("transaction_id", id).Bool("completed", tx.Completed).Msg("Transaction completed status toggled")
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// CreateTransfer handles POST /api/v1/transactions/transfers
func (h *TransactionHandler) CreateTransfer(c echo.Context) error {
	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return invalidDate(c, "date")
	}

	legs, err := h.transactionService.CreateTransfer(service.TransferInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount.InexactFloat64(),
		Description:   req.Description,
		Date:          date,
		SavingsGoalID: req.SavingsGoalID,
	})
	if err != nil {
		return handleServiceError(c, err, "create transfer")
	}

	log.Info().
		Str("from_account_id", req.FromAccountID).
		Str("to_account_id", req.ToAccountID).
		Str("amount", req.Amount.StringFixed(2)).
		Msg("Transfer created")

	response := make([]TransactionResponse, len(legs))
	for i, tx := range legs {
		response[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusCreated, response)
}

// bindTransactionInput returns a nil input after writing a validation response
func bindTransactionInput(c echo.Context) (*service.TransactionInput, error) {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, invalidDate(c, "date")
	}

	return &service.TransactionInput{
		Description:   req.Description,
		Amount:        req.Amount.InexactFloat64(),
		Type:          domain.TransactionType(req.Type),
		Category:      req.Category,
		AccountID:     req.AccountID,
		Date:          date,
		IsRecurring:   req.IsRecurring,
		RecurringType: domain.Frequency(req.RecurringType),
		Completed:     req.Completed,
		SavingsGoalID: req.SavingsGoalID,
		Tags:          req.Tags,
	}, nil
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		Description:   tx.Description,
		Amount:        moneyFloat(tx.Amount),
		Type:          string(tx.Type),
		Category:      tx.Category,
		AccountID:     tx.AccountID,
		Date:          formatDate(tx.Date),
		IsRecurring:   tx.IsRecurring,
		RecurringType: string(tx.RecurringType),
		Completed:     tx.Completed,
		SavingsGoalID: tx.SavingsGoalID,
		TransferID:    tx.TransferID,
		Tags:          tx.Tags,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     tx.UpdatedAt.Format(time.RFC3339),
	}
}
