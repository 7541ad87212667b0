package jsonfile

import (
	"sort"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

const monthKeyLayout = "2006-01"

// NetWorthRepository implements domain.NetWorthRepository on networth.json
type NetWorthRepository struct {
	c *collection[domain.NetWorthSnapshot]
}

// NewNetWorthRepository creates a new NetWorthRepository
func NewNetWorthRepository(store *Store) *NetWorthRepository {
	return &NetWorthRepository{
		c: newCollection(store, NetWorthFile, func(s *domain.NetWorthSnapshot) string {
			return s.Month.Format(monthKeyLayout)
		}, domain.ErrNotFound),
	}
}

// Upsert replaces the snapshot of the same month or adds a new one
func (r *NetWorthRepository) Upsert(snapshot *domain.NetWorthSnapshot) error {
	key := snapshot.Month.Format(monthKeyLayout)
	return r.c.modify(func(items []*domain.NetWorthSnapshot) ([]*domain.NetWorthSnapshot, error) {
		for i, existing := range items {
			if existing.Month.Format(monthKeyLayout) == key {
				items[i] = snapshot
				return items, nil
			}
		}
		items = append(items, snapshot)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Month.Before(items[j].Month)
		})
		return items, nil
	})
}

// List returns every snapshot, oldest month first
func (r *NetWorthRepository) List() ([]*domain.NetWorthSnapshot, error) {
	items, err := r.c.all()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Month.Before(items[j].Month)
	})
	return items, nil
}
