package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation  = "https://kasboek.app/errors/validation"
	ErrorTypeNotFound    = "https://kasboek.app/errors/not-found"
	ErrorTypeConflict    = "https://kasboek.app/errors/conflict"
	ErrorTypeUnavailable = "https://kasboek.app/errors/unavailable"
	ErrorTypeInternal    = "https://kasboek.app/errors/internal"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewServiceUnavailableError creates a service unavailable error response
func NewServiceUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps validation sentinels to the request field they concern
var fieldErrors = []struct {
	err   error
	field ValidationError
}{
	{domain.ErrNameRequired, ValidationError{Field: "name", Message: "Name is required"}},
	{domain.ErrNameTooLong, ValidationError{Field: "name", Message: "Name must be 255 characters or less"}},
	{domain.ErrDescriptionRequired, ValidationError{Field: "description", Message: "Description is required"}},
	{domain.ErrDescriptionTooLong, ValidationError{Field: "description", Message: "Description must be 500 characters or less"}},
	{domain.ErrInvalidAccountType, ValidationError{Field: "type", Message: "Type must be one of: checking, savings, crypto, stocks, debt, other"}},
	{domain.ErrInvalidTransactionType, ValidationError{Field: "type", Message: "Type must be one of: income, expense, transfer"}},
	{domain.ErrInvalidCategoryType, ValidationError{Field: "type", Message: "Type must be one of: income, expense"}},
	{domain.ErrInvalidFrequency, ValidationError{Field: "frequency", Message: "Frequency must be one of: daily, weekly, biweekly, monthly, quarterly, yearly"}},
	{domain.ErrInvalidAmount, ValidationError{Field: "amount", Message: "Amount must be a positive number"}},
	{domain.ErrInvalidDate, ValidationError{Field: "date", Message: "Invalid date"}},
	{domain.ErrInvalidPercentages, ValidationError{Field: "budgetPercentages", Message: "Percentages must be between 0 and 100 and add up to 100"}},
	{domain.ErrInvalidTheme, ValidationError{Field: "theme", Message: "Theme must be one of: light, dark, system"}},
	{domain.ErrInvalidCurrency, ValidationError{Field: "currency", Message: "Currency must be a three-letter code"}},
	{domain.ErrSameAccountTransfer, ValidationError{Field: "toAccountId", Message: "Cannot transfer to the same account"}},
	{domain.ErrGoalAccountsRequired, ValidationError{Field: "fromAccountId", Message: "Goal needs a source and a target account"}},
	{domain.ErrInvalidColor, ValidationError{Field: "color", Message: "Color must be a hex code like #6b7280"}},
}

var notFoundErrors = []struct {
	err    error
	detail string
}{
	{domain.ErrAccountNotFound, "Account not found"},
	{domain.ErrTransactionNotFound, "Transaction not found"},
	{domain.ErrCategoryNotFound, "Category not found"},
	{domain.ErrRecurringNotFound, "Recurring item not found"},
	{domain.ErrSavingsGoalNotFound, "Savings goal not found"},
	{domain.ErrNotFound, "Resource not found"},
}

// handleServiceError turns a service error into a problem response. Errors without a
// mapping are logged and reported as internal errors with the given action in the detail.
func handleServiceError(c echo.Context, err error, action string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{fe.field})
		}
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf.err) {
			return NewNotFoundError(c, nf.detail)
		}
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Invalid input", nil)
	case errors.Is(err, domain.ErrAccountInUse):
		return NewConflictError(c, "Account still has transactions")
	case errors.Is(err, domain.ErrCategoryInUse):
		return NewConflictError(c, "Category is used by transactions")
	case errors.Is(err, domain.ErrGoalInactive):
		return NewConflictError(c, "Savings goal is reached or past its deadline")
	case errors.Is(err, domain.ErrBackupNotConfigured):
		return NewServiceUnavailableError(c, "Backup storage is not configured")
	}

	l := logger.FromContext(c.Request().Context())
	l.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// money formats an amount with two decimals
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyFloat(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// parseDate accepts YYYY-MM-DD or RFC 3339. An empty string yields nil.
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// invalidDate reports a date field that did not parse
func invalidDate(c echo.Context, field string) error {
	return NewValidationError(c, "Validation failed", []ValidationError{
		{Field: field, Message: "Must be a date in YYYY-MM-DD format"},
	})
}

func floatOrZero(d *decimal.Decimal) float64 {
	if d == nil {
		return 0
	}
	return d.InexactFloat64()
}
