package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Document file names inside the data directory
const (
	AccountsFile          = "accounts.json"
	TransactionsFile      = "transactions.json"
	CategoriesFile        = "categories.json"
	RecurringExpensesFile = "recurring-expenses.json"
	IncomeSourcesFile     = "income-sources.json"
	SavingsGoalsFile      = "savings-goals.json"
	SettingsFile          = "settings.json"
	ActivityFile          = "activity.json"
	NetWorthFile          = "networth.json"
)

// Store reads and writes whole JSON documents in a directory. Each document has its own
// mutex so read-modify-write cycles within the process are serialized per file.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store over it
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the data directory
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// read decodes the named document into v. A missing or empty file leaves v untouched.
func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// write replaces the named document atomically: the data goes to a temp file in the same
// directory which is then renamed over the original.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// Documents lists the JSON documents currently present, sorted by name
func (s *Store) Documents() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Open returns the raw content of a document while holding its lock, so a backup
// never sees a half-written file.
func (s *Store) Open(name string) ([]byte, error) {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// collection is a JSON array document of T keyed by id
type collection[T any] struct {
	store    *Store
	name     string
	idOf     func(*T) string
	notFound error
}

func newCollection[T any](store *Store, name string, idOf func(*T) string, notFound error) *collection[T] {
	return &collection[T]{store: store, name: name, idOf: idOf, notFound: notFound}
}

func (c *collection[T]) all() ([]*T, error) {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	return c.load()
}

func (c *collection[T]) load() ([]*T, error) {
	items := []*T{}
	if err := c.store.read(c.name, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// modify runs fn over the current items under the document lock and writes the result back
func (c *collection[T]) modify(fn func(items []*T) ([]*T, error)) error {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.store.write(c.name, items)
}

func (c *collection[T]) get(id string) (*T, error) {
	items, err := c.all()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	return nil, c.notFound
}

func (c *collection[T]) insert(newItems ...*T) error {
	return c.modify(func(items []*T) ([]*T, error) {
		return append(items, newItems...), nil
	})
}

func (c *collection[T]) replace(item *T) error {
	id := c.idOf(item)
	return c.modify(func(items []*T) ([]*T, error) {
		for i, existing := range items {
			if c.idOf(existing) == id {
				items[i] = item
				return items, nil
			}
		}
		return nil, c.notFound
	})
}

func (c *collection[T]) remove(id string) error {
	return c.modify(func(items []*T) ([]*T, error) {
		for i, existing := range items {
			if c.idOf(existing) == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, c.notFound
	})
}
