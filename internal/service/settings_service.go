package service

import (
	"strings"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

var validThemes = map[domain.Theme]bool{
	domain.ThemeLight:  true,
	domain.ThemeDark:   true,
	domain.ThemeSystem: true,
}

// SettingsService handles user settings
type SettingsService struct {
	activityLog
	settingsRepo domain.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateSettingsInput holds a partial settings update. Nil fields are left unchanged;
// ResetPercentages drops custom budget percentages in favor of the default split.
type UpdateSettingsInput struct {
	Theme             *domain.Theme
	Currency          *string
	BudgetPercentages *domain.BudgetPercentages
	ResetPercentages  bool
}

// GetSettings returns the stored settings, or the defaults
func (s *SettingsService) GetSettings() (*domain.Settings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings validates and applies a partial update
func (s *SettingsService) UpdateSettings(input UpdateSettingsInput) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		if !validThemes[*input.Theme] {
			return nil, domain.ErrInvalidTheme
		}
		settings.Theme = *input.Theme
	}

	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if !isCurrencyCode(currency) {
			return nil, domain.ErrInvalidCurrency
		}
		settings.Currency = currency
	}

	switch {
	case input.ResetPercentages:
		settings.BudgetPercentages = nil
	case input.BudgetPercentages != nil:
		if !input.BudgetPercentages.Valid() {
			return nil, domain.ErrInvalidPercentages
		}
		p := *input.BudgetPercentages
		settings.BudgetPercentages = &p
	}

	saved, err := s.settingsRepo.Save(settings)
	if err != nil {
		return nil, err
	}

	s.record(domain.ActivityUpdated, domain.EntitySettings, "settings", "Updated settings", saved)
	return saved, nil
}

// isCurrencyCode reports whether code looks like an ISO 4217 code
func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
