package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SavingsGoalHandler handles savings goal HTTP requests
type SavingsGoalHandler struct {
	goalService *service.SavingsGoalService
	now         func() time.Time
}

// NewSavingsGoalHandler creates a new SavingsGoalHandler
func NewSavingsGoalHandler(goalService *service.SavingsGoalService) *SavingsGoalHandler {
	return &SavingsGoalHandler{goalService: goalService, now: time.Now}
}

// SavingsGoalRequest represents the create and update savings goal request body
type SavingsGoalRequest struct {
	Name                string           `json:"name"`
	TargetAmount        decimal.Decimal  `json:"targetAmount"`
	Deadline            string           `json:"deadline,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty"`
	FromAccountID       *string          `json:"fromAccountId,omitempty"`
	ToAccountID         *string          `json:"toAccountId,omitempty"`
}

// GenerateTransferRequest selects the month to generate a goal transfer for.
// Both fields default to the current month.
type GenerateTransferRequest struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

// SavingsGoalResponse represents a savings goal in API responses
type SavingsGoalResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	TargetAmount        string  `json:"targetAmount"`
	CurrentAmount       string  `json:"currentAmount"`
	Progress            string  `json:"progress"`
	Deadline            *string `json:"deadline,omitempty"`
	MonthlyContribution string  `json:"monthlyContribution"`
	FromAccountID       *string `json:"fromAccountId,omitempty"`
	ToAccountID         *string `json:"toAccountId,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

// GoalTransferResponse is the outcome of a transfer generation request
type GoalTransferResponse struct {
	Goal         SavingsGoalResponse   `json:"goal"`
	Transactions []TransactionResponse `json:"transactions"`
	Created      bool                  `json:"created"`
}

// CreateGoal handles POST /api/v1/savings-goals
func (h *SavingsGoalHandler) CreateGoal(c echo.Context) error {
	input, err := bindGoalInput(c)
	if input == nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(*input)
	if err != nil {
		return handleServiceError(c, err, "create savings goal")
	}

	log.Info().Str("goal_id", goal.ID).Str("name", goal.Name).Msg("Savings goal created")
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// GetGoals handles GET /api/v1/savings-goals
func (h *SavingsGoalHandler) GetGoals(c echo.Context) error {
	goals, err := h.goalService.GetGoals()
	if err != nil {
		return handleServiceError(c, err, "get savings goals")
	}

	response := make([]SavingsGoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toGoalResponse(goal)
	}
	return c.JSON(http.StatusOK, response)
}

// GetGoal handles GET /api/v1/savings-goals/:id
func (h *SavingsGoalHandler) GetGoal(c echo.Context) error {
	goal, err := h.goalService.GetGoal(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err, "get savings goal")
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// UpdateGoal handles PUT /api/v1/savings-goals/:id
func (h *SavingsGoalHandler) UpdateGoal(c echo.Context) error {
	input, err := bindGoalInput(c)
	if input == nil {
		return err
	}

	goal, err := h.goalService.UpdateGoal(c.Param("id"), *input)
	if err != nil {
		return handleServiceError(c, err, "update savings goal")
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/v1/savings-goals/:id
func (h *SavingsGoalHandler) DeleteGoal(c echo.Context) error {
	id := c.Param("id")
	if err := h.goalService.DeleteGoal(id); err != nil {
		return handleServiceError(c, err, "delete savings goal")
	}

	log.Info().Str("goal_id", id).Msg("Savings goal deleted")
	return c.NoContent(http.StatusNoContent)
}

// GenerateTransfer handles POST /api/v1/savings-goals/:id/transfers
// Returns 201 when a transfer was created and 200 when the month already had one.
func (h *SavingsGoalHandler) GenerateTransfer(c echo.Context) error {
	var req GenerateTransferRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	now := h.now().UTC()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}

	id := c.Param("id")
	result, err := h.goalService.GenerateTransfer(id, req.Year, time.Month(req.Month))
	if err != nil {
		return handleServiceError(c, err, "generate savings transfer")
	}

	response := GoalTransferResponse{
		Goal:         toGoalResponse(result.Goal),
		Transactions: make([]TransactionResponse, len(result.Transactions)),
		Created:      result.Created,
	}
	for i, tx := range result.Transactions {
		response.Transactions[i] = toTransactionResponse(tx)
	}

	if !result.Created {
		return c.JSON(http.StatusOK, response)
	}

	log.Info().
		Str("goal_id", id).
		Str("month", fmt.Sprintf("%04d-%02d", req.Year, req.Month)).
		Msg("Savings transfer generated")
	return c.JSON(http.StatusCreated, response)
}

// bindGoalInput returns a nil input after writing a validation response
func bindGoalInput(c echo.Context) (*service.SavingsGoalInput, error) {
	var req SavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, invalidDate(c, "deadline")
	}

	return &service.SavingsGoalInput{
		Name:                req.Name,
		TargetAmount:        req.TargetAmount.InexactFloat64(),
		Deadline:            deadline,
		MonthlyContribution: floatOrZero(req.MonthlyContribution),
		FromAccountID:       req.FromAccountID,
		ToAccountID:         req.ToAccountID,
	}, nil
}

func toGoalResponse(goal *domain.SavingsGoal) SavingsGoalResponse {
	target := decimal.NewFromFloat(goal.TargetAmount)
	current := decimal.NewFromFloat(goal.CurrentAmount)
	progress := decimal.Zero
	if target.IsPositive() {
		progress = decimal.Min(current.Div(target).Mul(decimal.NewFromInt(100)), decimal.NewFromInt(100))
	}

	return SavingsGoalResponse{
		ID:                  goal.ID,
		Name:                goal.Name,
		TargetAmount:        money(target),
		CurrentAmount:       money(current),
		Progress:            progress.StringFixed(1),
		Deadline:            formatOptionalDate(goal.Deadline),
		MonthlyContribution: moneyFloat(goal.MonthlyContribution),
		FromAccountID:       goal.FromAccountID,
		ToAccountID:         goal.ToAccountID,
		CreatedAt:           goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           goal.UpdatedAt.Format(time.RFC3339),
	}
}
