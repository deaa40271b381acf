package ledger

import (
	"fmt"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// CategoryChecker validates category references on a transaction.
type CategoryChecker interface {
	Exists(id string) bool
	GetSubcategory(id string) (model.Subcategory, bool)
}

// ValidationError describes one invalid field on a transaction.
type ValidationError struct {
	TransactionID string
	Field         string
	Message       string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.TransactionID, e.Field, e.Message)
}

// ValidateTransaction checks a transaction before it enters the ledger.
// An empty category is valid: unclassified is a normal terminal state.
func ValidateTransaction(t model.Transaction, cats CategoryChecker) []ValidationError {
	var errs []ValidationError
	add := func(field, message string) {
		errs = append(errs, ValidationError{TransactionID: t.ID, Field: field, Message: message})
	}

	if t.ID == "" {
		add("id", "must not be empty")
	}
	if t.Date.IsZero() {
		add("date", "must be set")
	}
	if !t.Type.Valid() {
		add("type", fmt.Sprintf("unknown transaction type %q", t.Type))
	}
	if t.Amount.IsNegative() {
		add("amount", "must not be negative")
	}
	if !t.Source.Valid() {
		add("source", fmt.Sprintf("unknown source %q", t.Source))
	}

	if t.Category != "" && !cats.Exists(t.Category) {
		add("category", fmt.Sprintf("unknown category %q", t.Category))
	}
	if t.Subcategory != "" {
		sub, ok := cats.GetSubcategory(t.Subcategory)
		switch {
		case !ok:
			add("subcategory", fmt.Sprintf("unknown subcategory %q", t.Subcategory))
		case t.Category == "":
			add("subcategory", "set without a category")
		case sub.ParentCategoryID != t.Category:
			add("subcategory", fmt.Sprintf("%q is not a child of category %q", t.Subcategory, t.Category))
		}
	}

	return errs
}
