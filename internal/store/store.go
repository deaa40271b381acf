// Package store persists the transaction, category and subcategory
// tables as JSON documents under fixed names in the data directory,
// mirroring the key-value contract of the app's original host storage.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// Fixed storage keys. One JSON file per table.
const (
	transactionsFile  = "smart-money-planner-transactions.json"
	categoriesFile    = "smart-money-planner-categories.json"
	subcategoriesFile = "smart-money-planner-subcategories.json"
)

// Store reads and writes the three tables under a data directory.
// Every save replaces the whole value; callers own the tables.
type Store struct {
	root string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the data directory.
func (s *Store) Root() string {
	return s.root
}

// LoadTransactions reads the transaction table. A missing file is an
// empty table, not an error.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := s.load(transactionsFile, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// SaveTransactions writes the transaction table.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	return s.save(transactionsFile, txns)
}

// LoadCategories reads the category table.
func (s *Store) LoadCategories() ([]model.Category, error) {
	var cats []model.Category
	if err := s.load(categoriesFile, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// SaveCategories writes the category table.
func (s *Store) SaveCategories(cats []model.Category) error {
	return s.save(categoriesFile, cats)
}

// LoadSubcategories reads the subcategory table.
func (s *Store) LoadSubcategories() ([]model.Subcategory, error) {
	var subs []model.Subcategory
	if err := s.load(subcategoriesFile, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// SaveSubcategories writes the subcategory table.
func (s *Store) SaveSubcategories(subs []model.Subcategory) error {
	return s.save(subcategoriesFile, subs)
}

func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
