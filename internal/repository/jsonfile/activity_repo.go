package jsonfile

import (
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// ActivityRepository implements domain.ActivityRepository on activity.json.
// Entries are stored newest first.
type ActivityRepository struct {
	c *collection[domain.ActivityEntry]
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{
		c: newCollection(store, ActivityFile, func(e *domain.ActivityEntry) string { return e.ID }, domain.ErrNotFound),
	}
}

// Append prepends the entry and trims the log to domain.MaxActivityEntries
func (r *ActivityRepository) Append(entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.c.modify(func(items []*domain.ActivityEntry) ([]*domain.ActivityEntry, error) {
		items = append([]*domain.ActivityEntry{entry}, items...)
		if len(items) > domain.MaxActivityEntries {
			items = items[:domain.MaxActivityEntries]
		}
		return items, nil
	})
}

// List returns up to limit entries, newest first. A limit of zero or less returns all.
func (r *ActivityRepository) List(limit int) ([]*domain.ActivityEntry, error) {
	items, err := r.c.all()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
