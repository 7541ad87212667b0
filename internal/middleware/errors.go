package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Error types
const (
	errorTypeRateLimit = "https://kasboek.app/errors/rate-limit"
)

// rateLimitError creates a too many requests response
func rateLimitError(c echo.Context, retryAfter int) error {
	return c.JSON(http.StatusTooManyRequests, problemDetails{
		Type:     errorTypeRateLimit,
		Title:    "Rate Limit Exceeded",
		Status:   http.StatusTooManyRequests,
		Detail:   fmt.Sprintf("Too many requests. Please retry after %d seconds.", retryAfter),
		Instance: c.Request().URL.Path,
	})
}
