package budget

import (
	"sort"
	"strings"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
)

// LatestRecurring keeps the newest recurring transaction per description and account,
// ordered by date so the result does not depend on storage order. A recurring payment that
// is recorded every period is one flow, not one flow per recorded occurrence.
func LatestRecurring(transactions []*domain.Transaction) []*domain.Transaction {
	latest := make(map[string]*domain.Transaction)
	for _, tx := range transactions {
		if tx == nil || !tx.IsRecurring {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(tx.Description)) + "\x00" + tx.AccountID
		if cur, ok := latest[key]; !ok || tx.Date.After(cur.Date) {
			latest[key] = tx
		}
	}

	result := make([]*domain.Transaction, 0, len(latest))
	for _, tx := range latest {
		result = append(result, tx)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
