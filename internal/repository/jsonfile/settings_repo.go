package jsonfile

import (
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

// SettingsRepository implements domain.SettingsRepository on settings.json
type SettingsRepository struct {
	store *Store
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns stored settings, filling unset fields from the defaults
func (r *SettingsRepository) Get() (*domain.Settings, error) {
	l := r.store.lock(SettingsFile)
	l.Lock()
	defer l.Unlock()

	settings := domain.DefaultSettings()
	if err := r.store.read(SettingsFile, settings); err != nil {
		return nil, err
	}
	if settings.Theme == "" {
		settings.Theme = domain.ThemeSystem
	}
	if settings.Currency == "" {
		settings.Currency = domain.DefaultSettings().Currency
	}
	return settings, nil
}

// Save overwrites the settings document
func (r *SettingsRepository) Save(settings *domain.Settings) (*domain.Settings, error) {
	l := r.store.lock(SettingsFile)
	l.Lock()
	defer l.Unlock()

	if err := r.store.write(SettingsFile, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
