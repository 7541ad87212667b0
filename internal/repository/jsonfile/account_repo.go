package jsonfile

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/google/uuid"
)

// AccountRepository implements domain.AccountRepository on accounts.json
type AccountRepository struct {
	c *collection[domain.Account]
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{
		c: newCollection(store, AccountsFile, func(a *domain.Account) string { return a.ID }, domain.ErrAccountNotFound),
	}
}

// Create assigns an id and timestamps and stores the account
func (r *AccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := r.c.insert(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(id string) (*domain.Account, error) {
	return r.c.get(id)
}

// GetAll retrieves all accounts in stored order
func (r *AccountRepository) GetAll() ([]*domain.Account, error) {
	return r.c.all()
}

// Update replaces a stored account
func (r *AccountRepository) Update(account *domain.Account) (*domain.Account, error) {
	account.UpdatedAt = time.Now().UTC()
	if err := r.c.replace(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes an account
func (r *AccountRepository) Delete(id string) error {
	return r.c.remove(id)
}
