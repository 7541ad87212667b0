package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ProjectionHandler handles balance projection HTTP requests
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// AccountBalanceResponse represents one account balance in a projection
type AccountBalanceResponse struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
}

// ProjectedMonthResponse represents the projected state at the end of one month
type ProjectedMonthResponse struct {
	Month        string                   `json:"month"`
	TotalBalance string                   `json:"totalBalance"`
	Income       string                   `json:"income"`
	Expenses     string                   `json:"expenses"`
	Unallocated  string                   `json:"unallocated"`
	Accounts     []AccountBalanceResponse `json:"accounts"`
}

// ProjectionResponse represents a multi-month projection
type ProjectionResponse struct {
	Start    string                   `json:"start"`
	Accounts []AccountBalanceResponse `json:"accounts"`
	Months   []ProjectedMonthResponse `json:"months"`
}

// GetProjection handles GET /api/v1/projections?months=N
func (h *ProjectionHandler) GetProjection(c echo.Context) error {
	var (
		result *service.ProjectionResult
		err    error
	)
	if raw := c.QueryParam("months"); raw != "" {
		months, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return NewValidationError(c, "Invalid months", []ValidationError{
				{Field: "months", Message: "Must be a whole number"},
			})
		}
		result, err = h.projectionService.Project(months)
	} else {
		result, err = h.projectionService.ProjectDefault()
	}
	if err != nil {
		return handleServiceError(c, err, "project balances")
	}

	response := ProjectionResponse{
		Start:    result.Start.Format("2006-01"),
		Accounts: make([]AccountBalanceResponse, len(result.Accounts)),
		Months:   make([]ProjectedMonthResponse, len(result.Months)),
	}
	for i, a := range result.Accounts {
		response.Accounts[i] = AccountBalanceResponse{AccountID: a.ID, Name: a.Name, Balance: money(a.Balance)}
	}
	for i, m := range result.Months {
		response.Months[i] = toProjectedMonthResponse(m)
	}
	return c.JSON(http.StatusOK, response)
}

func toProjectedMonthResponse(m budget.MonthlySnapshot) ProjectedMonthResponse {
	accounts := make([]AccountBalanceResponse, len(m.Accounts))
	for i, a := range m.Accounts {
		accounts[i] = AccountBalanceResponse{AccountID: a.AccountID, Name: a.Name, Balance: money(a.Balance)}
	}
	return ProjectedMonthResponse{
		Month:        m.Month.Format("2006-01"),
		TotalBalance: money(m.TotalBalance),
		Income:       money(m.Income),
		Expenses:     money(m.Expenses),
		Unallocated:  money(m.Unallocated),
		Accounts:     accounts,
	}
}
