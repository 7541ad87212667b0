package domain

import "time"

// NetWorthSnapshot records net worth for one calendar month. Month is the first day.
type NetWorthSnapshot struct {
	Month       time.Time               `json:"month"`
	Assets      float64                 `json:"assets"`
	Liabilities float64                 `json:"liabilities"`
	NetWorth    float64                 `json:"netWorth"`
	ByType      map[AccountType]float64 `json:"byType"`
	RecordedAt  time.Time               `json:"recordedAt"`
}

type NetWorthRepository interface {
	// Upsert replaces the snapshot for the same month, or adds it
	Upsert(snapshot *NetWorthSnapshot) error
	// List returns all snapshots ordered by month ascending
	List() ([]*NetWorthSnapshot, error)
}
