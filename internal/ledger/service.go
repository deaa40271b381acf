// Package ledger is the application service over the stored tables:
// adding, classifying, correcting and listing transactions.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nowhereuri/smartMoneyPlanner/internal/categories"
	"github.com/nowhereuri/smartMoneyPlanner/internal/classify"
	"github.com/nowhereuri/smartMoneyPlanner/internal/id"
	"github.com/nowhereuri/smartMoneyPlanner/internal/learnlog"
	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
	"github.com/nowhereuri/smartMoneyPlanner/internal/store"
)

// Service provides business logic for the transaction ledger.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

// NewService creates a ledger Service.
func NewService(st *store.Store, log zerolog.Logger) *Service {
	return &Service{store: st, log: log}
}

// Tables loads the current category and subcategory tables.
func (s *Service) Tables() (*categories.Service, error) {
	cats, err := s.store.LoadCategories()
	if err != nil {
		return nil, err
	}
	subs, err := s.store.LoadSubcategories()
	if err != nil {
		return nil, err
	}
	return categories.NewService(cats, subs), nil
}

// Add inserts a transaction. A draft without a category is classified
// against the current tables first; a draft without an ID gets one.
func (s *Service) Add(txn model.Transaction) (model.Transaction, error) {
	cats, err := s.store.LoadCategories()
	if err != nil {
		return model.Transaction{}, err
	}
	subs, err := s.store.LoadSubcategories()
	if err != nil {
		return model.Transaction{}, err
	}

	if txn.Category == "" {
		res := classify.Match(txn.Description, cats, subs)
		if res.Category != nil {
			txn.Category = res.Category.ID
			if res.Subcategory != nil {
				txn.Subcategory = res.Subcategory.ID
			}
			s.log.Debug().
				Str("transaction", txn.ID).
				Str("category", txn.Category).
				Str("subcategory", txn.Subcategory).
				Msg("auto-classified")
		}
	}
	if txn.ID == "" {
		txn.ID = id.NewTransactionID(txn.Date)
	}

	if verrs := ValidateTransaction(txn, categories.NewService(cats, subs)); len(verrs) > 0 {
		return model.Transaction{}, validationFailure(verrs)
	}

	txns, err := s.store.LoadTransactions()
	if err != nil {
		return model.Transaction{}, err
	}
	txns = append(txns, txn)
	sortByDateDesc(txns)

	if err := s.store.SaveTransactions(txns); err != nil {
		return model.Transaction{}, err
	}

	s.log.Info().Str("transaction", txn.ID).Str("type", string(txn.Type)).Msg("transaction added")
	return txn, nil
}

// Update replaces a transaction by ID. When the updated transaction
// carries a category, the correction feeds the keyword learner and any
// learned keywords are recorded in the learning log.
func (s *Service) Update(txn model.Transaction) (model.Transaction, []string, error) {
	cats, err := s.store.LoadCategories()
	if err != nil {
		return model.Transaction{}, nil, err
	}
	subs, err := s.store.LoadSubcategories()
	if err != nil {
		return model.Transaction{}, nil, err
	}

	if verrs := ValidateTransaction(txn, categories.NewService(cats, subs)); len(verrs) > 0 {
		return model.Transaction{}, nil, validationFailure(verrs)
	}

	txns, err := s.store.LoadTransactions()
	if err != nil {
		return model.Transaction{}, nil, err
	}
	replaced := false
	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = txn
			replaced = true
			break
		}
	}
	if !replaced {
		return model.Transaction{}, nil, fmt.Errorf("transaction %q not found", txn.ID)
	}
	sortByDateDesc(txns)

	if err := s.store.SaveTransactions(txns); err != nil {
		return model.Transaction{}, nil, err
	}

	var learned []string
	if txn.Category != "" {
		learned, err = s.learn(txn.Description, txn.Category, cats)
		if err != nil {
			return model.Transaction{}, nil, err
		}
	}

	s.log.Info().Str("transaction", txn.ID).Strs("learned", learned).Msg("transaction updated")
	return txn, learned, nil
}

// Categorize assigns a category (and optional subcategory) to an
// existing transaction, then runs the learner on its description.
func (s *Service) Categorize(txnID, categoryID, subcategoryID string) (model.Transaction, []string, error) {
	txn, err := s.Get(txnID)
	if err != nil {
		return model.Transaction{}, nil, err
	}

	txn.Category = categoryID
	txn.Subcategory = subcategoryID
	return s.Update(txn)
}

// learn feeds a confirmed (description, category) pair to the keyword
// learner. The category table is only saved when something new was
// learned; the learning log records what was added.
func (s *Service) learn(description, categoryID string, cats []model.Category) ([]string, error) {
	updated := classify.Learn(description, categoryID, cats)

	var learned []string
	for i := range cats {
		if cats[i].ID == categoryID && i < len(updated) {
			learned = updated[i].Keywords[len(cats[i].Keywords):]
			break
		}
	}
	if len(learned) == 0 {
		return nil, nil
	}

	if err := s.store.SaveCategories(updated); err != nil {
		return nil, err
	}
	entry := learnlog.Entry{
		Timestamp:   time.Now(),
		CategoryID:  categoryID,
		Description: description,
		Keywords:    learned,
	}
	if err := learnlog.Append(s.store.Root(), []learnlog.Entry{entry}); err != nil {
		return nil, err
	}

	s.log.Debug().Str("category", categoryID).Strs("keywords", learned).Msg("keywords learned")
	return learned, nil
}

// Delete removes a transaction by ID.
func (s *Service) Delete(txnID string) error {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, t := range txns {
		if t.ID != txnID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(txns) {
		return fmt.Errorf("transaction %q not found", txnID)
	}

	if err := s.store.SaveTransactions(kept); err != nil {
		return err
	}
	s.log.Info().Str("transaction", txnID).Msg("transaction deleted")
	return nil
}

// List returns all transactions, newest first.
func (s *Service) List() ([]model.Transaction, error) {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	sortByDateDesc(txns)
	return txns, nil
}

// Month returns the transactions of one calendar month, newest first.
func (s *Service) Month(year, month int) ([]model.Transaction, error) {
	txns, err := s.List()
	if err != nil {
		return nil, err
	}
	var result []model.Transaction
	for _, t := range txns {
		if t.Date.Year() == year && int(t.Date.Month()) == month {
			result = append(result, t)
		}
	}
	return result, nil
}

// Get returns a transaction by ID.
func (s *Service) Get(txnID string) (model.Transaction, error) {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return model.Transaction{}, err
	}
	for _, t := range txns {
		if t.ID == txnID {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %q not found", txnID)
}

func sortByDateDesc(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}

func validationFailure(verrs []ValidationError) error {
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
