package jsonfile

import (
	"sort"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// TransactionRepository implements domain.TransactionRepository on transactions.json
type TransactionRepository struct {
	c *collection[domain.Transaction]
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{
		c: newCollection(store, TransactionsFile, func(t *domain.Transaction) string { return t.ID }, domain.ErrTransactionNotFound),
	}
}

func stampNew(tx *domain.Transaction, now time.Time) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.CreatedAt = now
	tx.UpdatedAt = now
}

// Create stores a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	stampNew(transaction, time.Now().UTC())
	if err := r.c.insert(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// CreateBatch stores several transactions in a single write, e.g. both legs of a transfer
func (r *TransactionRepository) CreateBatch(transactions []*domain.Transaction) error {
	now := time.Now().UTC()
	for _, tx := range transactions {
		stampNew(tx, now)
	}
	return r.c.insert(transactions...)
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(id string) (*domain.Transaction, error) {
	return r.c.get(id)
}

// GetAll returns transactions matching filters, newest first
func (r *TransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	items, err := r.c.all()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Transaction, 0, len(items))
	for _, tx := range items {
		if filters.Matches(tx) {
			result = append(result, tx)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// Update replaces a stored transaction
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	transaction.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id string) error {
	return r.c.remove(id)
}
