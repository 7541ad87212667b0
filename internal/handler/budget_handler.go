package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget breakdown HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// LineItemResponse represents one contribution to a bucket
type LineItemResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   string  `json:"amount"`
	Source   string  `json:"source"`
	Date     *string `json:"date,omitempty"`
}

// BucketResponse represents one budget bucket
type BucketResponse struct {
	Bucket      string             `json:"bucket"`
	Share       string             `json:"share"`
	Budgeted    string             `json:"budgeted"`
	Spent       string             `json:"spent"`
	Remaining   string             `json:"remaining"`
	PercentUsed string             `json:"percentUsed"`
	Items       []LineItemResponse `json:"items"`
}

// BreakdownResponse represents a monthly needs/wants/savings breakdown
type BreakdownResponse struct {
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	TotalIncome    string         `json:"totalIncome"`
	TotalBudgeted  string         `json:"totalBudgeted"`
	TotalSpent     string         `json:"totalSpent"`
	TotalRemaining string         `json:"totalRemaining"`
	Needs          BucketResponse `json:"needs"`
	Wants          BucketResponse `json:"wants"`
	Savings        BucketResponse `json:"savings"`
}

// GetBreakdown handles GET /api/v1/budget/:year/:month
func (h *BudgetHandler) GetBreakdown(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return NewValidationError(c, "Invalid year", []ValidationError{
			{Field: "year", Message: "Must be a valid year"},
		})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be between 1 and 12"},
		})
	}

	breakdown, err := h.budgetService.GetBreakdown(year, time.Month(month))
	if err != nil {
		return handleServiceError(c, err, "calculate budget breakdown")
	}

	return c.JSON(http.StatusOK, toBreakdownResponse(breakdown))
}

func toBreakdownResponse(b *budget.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Year:           b.Year,
		Month:          int(b.Month),
		TotalIncome:    money(b.TotalIncome),
		TotalBudgeted:  money(b.TotalBudgeted),
		TotalSpent:     money(b.TotalSpent),
		TotalRemaining: money(b.TotalRemaining),
		Needs:          toBucketResponse(b.Needs),
		Wants:          toBucketResponse(b.Wants),
		Savings:        toBucketResponse(b.Savings),
	}
}

func toBucketResponse(s *budget.BucketSummary) BucketResponse {
	items := make([]LineItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = LineItemResponse{
			Name:     item.Name,
			Category: string(item.Category),
			Amount:   money(item.Amount),
			Source:   string(item.Source),
			Date:     formatOptionalDate(item.Date),
		}
	}

	return BucketResponse{
		Bucket:      string(s.Bucket),
		Share:       s.Share.StringFixed(2),
		Budgeted:    money(s.Budgeted),
		Spent:       money(s.Spent),
		Remaining:   money(s.Remaining),
		PercentUsed: s.PercentUsed.StringFixed(1),
		Items:       items,
	}
}
