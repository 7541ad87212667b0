package handler

import (
	"net/http"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a partial settings update. Omitted fields keep their value.
type UpdateSettingsRequest struct {
	Theme             *string                   `json:"theme,omitempty"`
	Currency          *string                   `json:"currency,omitempty"`
	BudgetPercentages *domain.BudgetPercentages `json:"budgetPercentages,omitempty"`
	ResetPercentages  bool                      `json:"resetPercentages,omitempty"`
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return handleServiceError(c, err, "get settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateSettingsInput{
		Currency:          req.Currency,
		BudgetPercentages: req.BudgetPercentages,
		ResetPercentages:  req.ResetPercentages,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	settings, err := h.settingsService.UpdateSettings(input)
	if err != nil {
		return handleServiceError(c, err, "update settings")
	}

	log.Info().Str("theme", string(settings.Theme)).Str("currency", settings.Currency).Msg("Settings updated")
	return c.JSON(http.StatusOK, settings)
}
