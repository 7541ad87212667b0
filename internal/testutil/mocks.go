package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/repository/storage"
	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
)

// MockAccountRepository is a mock implementation of domain.AccountRepository.
// Items keep insertion order.
type MockAccountRepository struct {
	Accounts map[string]*domain.Account
	Order    []string
	NextID   int
	CreateFn func(account *domain.Account) (*domain.Account, error)
	GetAllFn func() ([]*domain.Account, error)
	UpdateFn func(account *domain.Account) (*domain.Account, error)
	DeleteFn func(id string) error
}

// NewMockAccountRepository creates a new MockAccountRepository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		Accounts: make(map[string]*domain.Account),
		NextID:   1,
	}
}

// Create stores a new account, assigning an id when none is set
func (m *MockAccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	if m.CreateFn != nil {
		return m.CreateFn(account)
	}
	if account.ID == "" {
		account.ID = fmt.Sprintf("acc-%d", m.NextID)
		m.NextID++
	}
	m.AddAccount(account)
	return account, nil
}

// GetByID retrieves a account by its ID
func (m *MockAccountRepository) GetByID(id string) (*domain.Account, error) {
	if account, ok := m.Accounts[id]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

// GetAll retrieves every account in insertion order
func (m *MockAccountRepository) GetAll() ([]*domain.Account, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.Account, 0, len(m.Order))
	for _, id := range m.Order {
		result = append(result, m.Accounts[id])
	}
	return result, nil
}

// Update replaces a stored account
func (m *MockAccountRepository) Update(account *domain.Account) (*domain.Account, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(account)
	}
	if _, ok := m.Accounts[account.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	m.Accounts[account.ID] = account
	return account, nil
}

// Delete removes a account
func (m *MockAccountRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.Accounts, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddAccount adds a account directly (for test setup)
func (m *MockAccountRepository) AddAccount(account *domain.Account) {
	if _, exists := m.Accounts[account.ID]; !exists {
		m.Order = append(m.Order, account.ID)
	}
	m.Accounts[account.ID] = account
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository.
// Items keep insertion order.
type MockCategoryRepository struct {
	Categories map[string]*domain.Category
	Order      []string
	NextID     int
	CreateFn   func(category *domain.Category) (*domain.Category, error)
	GetAllFn   func() ([]*domain.Category, error)
	UpdateFn   func(category *domain.Category) (*domain.Category, error)
	DeleteFn   func(id string) error
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[string]*domain.Category),
		NextID:     1,
	}
}

// Create stores a new category, assigning an id when none is set
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(category)
	}
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat-%d", m.NextID)
		m.NextID++
	}
	m.AddCategory(category)
	return category, nil
}

// GetByID retrieves a category by its ID
func (m *MockCategoryRepository) GetByID(id string) (*domain.Category, error) {
	if category, ok := m.Categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves every category in insertion order
func (m *MockCategoryRepository) GetAll() ([]*domain.Category, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.Category, 0, len(m.Order))
	for _, id := range m.Order {
		result = append(result, m.Categories[id])
	}
	return result, nil
}

// Update replaces a stored category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(category)
	}
	if _, ok := m.Categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	m.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddCategory adds a category directly (for test setup)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if _, exists := m.Categories[category.ID]; !exists {
		m.Order = append(m.Order, category.ID)
	}
	m.Categories[category.ID] = category
}

// MockRecurringExpenseRepository is a mock implementation of domain.RecurringExpenseRepository.
// Items keep insertion order.
type MockRecurringExpenseRepository struct {
	Expenses map[string]*domain.RecurringExpense
	Order    []string
	NextID   int
	CreateFn func(expense *domain.RecurringExpense) (*domain.RecurringExpense, error)
	GetAllFn func() ([]*domain.RecurringExpense, error)
	UpdateFn func(expense *domain.RecurringExpense) (*domain.RecurringExpense, error)
	DeleteFn func(id string) error
}

// NewMockRecurringExpenseRepository creates a new MockRecurringExpenseRepository
func NewMockRecurringExpenseRepository() *MockRecurringExpenseRepository {
	return &MockRecurringExpenseRepository{
		Expenses: make(map[string]*domain.RecurringExpense),
		NextID:   1,
	}
}

// Create stores a new recurring expense, assigning an id when none is set
func (m *MockRecurringExpenseRepository) Create(expense *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(expense)
	}
	if expense.ID == "" {
		expense.ID = fmt.Sprintf("exp-%d", m.NextID)
		m.NextID++
	}
	m.AddExpense(expense)
	return expense, nil
}

// GetByID retrieves a recurring expense by its ID
func (m *MockRecurringExpenseRepository) GetByID(id string) (*domain.RecurringExpense, error) {
	if expense, ok := m.Expenses[id]; ok {
		return expense, nil
	}
	return nil, domain.ErrRecurringNotFound
}

// GetAll retrieves every recurring expense in insertion order
func (m *MockRecurringExpenseRepository) GetAll() ([]*domain.RecurringExpense, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.RecurringExpense, 0, len(m.Order))
	for _, id := range m.Order {
		result = append(result, m.Expenses[id])
	}
	return result, nil
}

// Update replaces a stored recurring expense
func (m *MockRecurringExpenseRepository) Update(expense *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(expense)
	}
	if _, ok := m.Expenses[expense.ID]; !ok {
		return nil, domain.ErrRecurringNotFound
	}
	m.Expenses[expense.ID] = expense
	return expense, nil
}

// Delete removes a recurring expense
func (m *MockRecurringExpenseRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Expenses[id]; !ok {
		return domain.ErrRecurringNotFound
	}
	delete(m.Expenses, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddExpense adds a recurring expense directly (for test setup)
func (m *MockRecurringExpenseRepository) AddExpense(expense *domain.RecurringExpense) {
	if _, exists := m.Expenses[expense.ID]; !exists {
		m.Order = append(m.Order, expense.ID)
	}
	m.Expenses[expense.ID] = expense
}

// MockIncomeSourceRepository is a mock implementation of domain.IncomeSourceRepository.
// Items keep insertion order.
type MockIncomeSourceRepository struct {
	Sources  map[string]*domain.IncomeSource
	Order    []string
	NextID   int
	CreateFn func(source *domain.IncomeSource) (*domain.IncomeSource, error)
	GetAllFn func() ([]*domain.IncomeSource, error)
	UpdateFn func(source *domain.IncomeSource) (*domain.IncomeSource, error)
	DeleteFn func(id string) error
}

// NewMockIncomeSourceRepository creates a new MockIncomeSourceRepository
func NewMockIncomeSourceRepository() *MockIncomeSourceRepository {
	return &MockIncomeSourceRepository{
		Sources: make(map[string]*domain.IncomeSource),
		NextID:  1,
	}
}

// Create stores a new income source, assigning an id when none is set
func (m *MockIncomeSourceRepository) Create(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	if m.CreateFn != nil {
		return m.CreateFn(source)
	}
	if source.ID == "" {
		source.ID = fmt.Sprintf("inc-%d", m.NextID)
		m.NextID++
	}
	m.AddSource(source)
	return source, nil
}

// GetByID retrieves a income source by its ID
func (m *MockIncomeSourceRepository) GetByID(id string) (*domain.IncomeSource, error) {
	if source, ok := m.Sources[id]; ok {
		return source, nil
	}
	return nil, domain.ErrRecurringNotFound
}

// GetAll retrieves every income source in insertion order
func (m *MockIncomeSourceRepository) GetAll() ([]*domain.IncomeSource, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.IncomeSource, 0, len(m.Order))
	for _, id := range m.Order {
		result = append(result, m.Sources[id])
	}
	return result, nil
}

// Update replaces a stored income source
func (m *MockIncomeSourceRepository) Update(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(source)
	}
	if _, ok := m.Sources[source.ID]; !ok {
		return nil, domain.ErrRecurringNotFound
	}
	m.Sources[source.ID] = source
	return source, nil
}

// Delete removes a income source
func (m *MockIncomeSourceRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Sources[id]; !ok {
		return domain.ErrRecurringNotFound
	}
	delete(m.Sources, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddSource adds a income source directly (for test setup)
func (m *MockIncomeSourceRepository) AddSource(source *domain.IncomeSource) {
	if _, exists := m.Sources[source.ID]; !exists {
		m.Order = append(m.Order, source.ID)
	}
	m.Sources[source.ID] = source
}

// MockSavingsGoalRepository is a mock implementation of domain.SavingsGoalRepository.
// Items keep insertion order.
type MockSavingsGoalRepository struct {
	Goals    map[string]*domain.SavingsGoal
	Order    []string
	NextID   int
	CreateFn func(goal *domain.SavingsGoal) (*domain.SavingsGoal, error)
	GetAllFn func() ([]*domain.SavingsGoal, error)
	UpdateFn func(goal *domain.SavingsGoal) (*domain.SavingsGoal, error)
	DeleteFn func(id string) error
}

// NewMockSavingsGoalRepository creates a new MockSavingsGoalRepository
func NewMockSavingsGoalRepository() *MockSavingsGoalRepository {
	return &MockSavingsGoalRepository{
		Goals:  make(map[string]*domain.SavingsGoal),
		NextID: 1,
	}
}

// Create stores a new savings goal, assigning an id when none is set
func (m *MockSavingsGoalRepository) Create(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	if m.CreateFn != nil {
		return m.CreateFn(goal)
	}
	if goal.ID == "" {
		goal.ID = fmt.Sprintf("goal-%d", m.NextID)
		m.NextID++
	}
	m.AddGoal(goal)
	return goal, nil
}

// GetByID retrieves a savings goal by its ID
func (m *MockSavingsGoalRepository) GetByID(id string) (*domain.SavingsGoal, error) {
	if goal, ok := m.Goals[id]; ok {
		return goal, nil
	}
	return nil, domain.ErrSavingsGoalNotFound
}

// GetAll retrieves every savings goal in insertion order
func (m *MockSavingsGoalRepository) GetAll() ([]*domain.SavingsGoal, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.SavingsGoal, 0, len(m.Order))
	for _, id := range m.Order {
		result = append(result, m.Goals[id])
	}
	return result, nil
}

// Update replaces a stored savings goal
func (m *MockSavingsGoalRepository) Update(goal *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(goal)
	}
	if _, ok := m.Goals[goal.ID]; !ok {
		return nil, domain.ErrSavingsGoalNotFound
	}
	m.Goals[goal.ID] = goal
	return goal, nil
}

// Delete removes a savings goal
func (m *MockSavingsGoalRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Goals[id]; !ok {
		return domain.ErrSavingsGoalNotFound
	}
	delete(m.Goals, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddGoal adds a savings goal directly (for test setup)
func (m *MockSavingsGoalRepository) AddGoal(goal *domain.SavingsGoal) {
	if _, exists := m.Goals[goal.ID]; !exists {
		m.Order = append(m.Order, goal.ID)
	}
	m.Goals[goal.ID] = goal
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions  map[string]*domain.Transaction
	Order         []string
	NextID        int
	CreateFn      func(transaction *domain.Transaction) (*domain.Transaction, error)
	CreateBatchFn func(transactions []*domain.Transaction) error
	GetAllFn      func(filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	UpdateFn      func(transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteFn      func(id string) error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[string]*domain.Transaction),
		NextID:       1,
	}
}

// Create stores a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	m.assignID(transaction)
	m.AddTransaction(transaction)
	return transaction, nil
}

// CreateBatch stores several transactions at once
func (m *MockTransactionRepository) CreateBatch(transactions []*domain.Transaction) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(transactions)
	}
	for _, tx := range transactions {
		m.assignID(tx)
		m.AddTransaction(tx)
	}
	return nil
}

func (m *MockTransactionRepository) assignID(tx *domain.Transaction) {
	if tx.ID == "" {
		tx.ID = fmt.Sprintf("tx-%d", m.NextID)
		m.NextID++
	}
}

// GetByID retrieves a transaction by its ID
func (m *MockTransactionRepository) GetByID(id string) (*domain.Transaction, error) {
	if tx, ok := m.Transactions[id]; ok {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// GetAll returns transactions passing filters, newest first
func (m *MockTransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(filters)
	}
	result := make([]*domain.Transaction, 0, len(m.Order))
	for _, id := range m.Order {
		if tx := m.Transactions[id]; filters.Matches(tx) {
			result = append(result, tx)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// Update replaces a stored transaction
func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(transaction)
	}
	if _, ok := m.Transactions[transaction.ID]; !ok {
		return nil, domain.ErrTransactionNotFound
	}
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	m.Order = removeID(m.Order, id)
	return nil
}

// AddTransaction adds a transaction directly (for test setup)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if _, exists := m.Transactions[transaction.ID]; !exists {
		m.Order = append(m.Order, transaction.ID)
	}
	m.Transactions[transaction.ID] = transaction
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository
type MockSettingsRepository struct {
	Settings *domain.Settings
	GetErr   error
	SaveErr  error
}

// NewMockSettingsRepository creates a new MockSettingsRepository holding the defaults
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{Settings: domain.DefaultSettings()}
}

// Get returns a copy of the stored settings
func (m *MockSettingsRepository) Get() (*domain.Settings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	copied := *m.Settings
	return &copied, nil
}

// Save stores the settings
func (m *MockSettingsRepository) Save(settings *domain.Settings) (*domain.Settings, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	m.Settings = settings
	return settings, nil
}

// MockActivityRepository is a mock implementation of domain.ActivityRepository
type MockActivityRepository struct {
	Entries   []*domain.ActivityEntry // newest first
	AppendErr error
	mu        sync.Mutex
}

// NewMockActivityRepository creates a new MockActivityRepository
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// Append prepends an entry and applies the log cap
func (m *MockActivityRepository) Append(entry *domain.ActivityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("act-%d", len(m.Entries)+1)
	}
	m.Entries = append([]*domain.ActivityEntry{entry}, m.Entries...)
	if len(m.Entries) > domain.MaxActivityEntries {
		m.Entries = m.Entries[:domain.MaxActivityEntries]
	}
	return nil
}

// List returns up to limit entries, newest first
func (m *MockActivityRepository) List(limit int) ([]*domain.ActivityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.Entries) {
		limit = len(m.Entries)
	}
	result := make([]*domain.ActivityEntry, limit)
	copy(result, m.Entries[:limit])
	return result, nil
}

// MockNetWorthRepository is a mock implementation of domain.NetWorthRepository
type MockNetWorthRepository struct {
	Snapshots map[string]*domain.NetWorthSnapshot
	UpsertErr error
}

// NewMockNetWorthRepository creates a new MockNetWorthRepository
func NewMockNetWorthRepository() *MockNetWorthRepository {
	return &MockNetWorthRepository{Snapshots: make(map[string]*domain.NetWorthSnapshot)}
}

// Upsert stores the snapshot keyed by its month
func (m *MockNetWorthRepository) Upsert(snapshot *domain.NetWorthSnapshot) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.Snapshots[snapshot.Month.Format("2006-01")] = snapshot
	return nil
}

// List returns snapshots ordered by month
func (m *MockNetWorthRepository) List() ([]*domain.NetWorthSnapshot, error) {
	result := make([]*domain.NetWorthSnapshot, 0, len(m.Snapshots))
	for _, s := range m.Snapshots {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})
	return result, nil
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Types returns the combined type of every published event, in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Type
	}
	return types
}

// MockObjectStore is an in-memory storage.ObjectStore
type MockObjectStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	Modified  map[string]time.Time
	UploadErr error
}

// NewMockObjectStore creates a new MockObjectStore
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Objects:  make(map[string][]byte),
		Modified: make(map[string]time.Time),
	}
}

// Upload stores a copy of data under key
func (m *MockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UploadErr != nil {
		return m.UploadErr
	}
	m.Objects[key] = append([]byte(nil), data...)
	m.Modified[key] = time.Now().UTC()
	return nil
}

// List returns objects under prefix sorted by key
func (m *MockObjectStore) List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []storage.ObjectInfo
	for key, data := range m.Objects {
		if strings.HasPrefix(key, prefix) {
			result = append(result, storage.ObjectInfo{Key: key, Size: int64(len(data)), LastModified: m.Modified[key]})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// GeneratePresignedURL returns a fake URL for key
func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://objects.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// Compile-time interface checks
var (
	_ domain.AccountRepository          = (*MockAccountRepository)(nil)
	_ domain.TransactionRepository      = (*MockTransactionRepository)(nil)
	_ domain.CategoryRepository         = (*MockCategoryRepository)(nil)
	_ domain.RecurringExpenseRepository = (*MockRecurringExpenseRepository)(nil)
	_ domain.IncomeSourceRepository     = (*MockIncomeSourceRepository)(nil)
	_ domain.SavingsGoalRepository      = (*MockSavingsGoalRepository)(nil)
	_ domain.SettingsRepository         = (*MockSettingsRepository)(nil)
	_ domain.ActivityRepository         = (*MockActivityRepository)(nil)
	_ domain.NetWorthRepository         = (*MockNetWorthRepository)(nil)
	_ websocket.EventPublisher          = (*MockEventPublisher)(nil)
	_ storage.ObjectStore               = (*MockObjectStore)(nil)
)

func removeID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
