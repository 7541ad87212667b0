package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the activity log
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivity handles GET /api/v1/activity?limit=N
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return NewValidationError(c, "Invalid limit", []ValidationError{
				{Field: "limit", Message: "Must be a positive whole number"},
			})
		}
		limit = n
	}

	entries, err := h.activityService.List(limit)
	if err != nil {
		return handleServiceError(c, err, "get activity")
	}
	return c.JSON(http.StatusOK, entries)
}
