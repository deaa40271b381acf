package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the income/expense polarity of a transaction or category.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Source records how a transaction entered the system.
type Source string

const (
	SourceManual  Source = "manual"
	SourceReceipt Source = "receipt"
	SourceKakao   Source = "kakao"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	return s == SourceManual || s == SourceReceipt || s == SourceKakao
}

// Transaction is a single income or expense entry. A draft produced by
// text parsing may have an empty Category until classification runs.
type Transaction struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory,omitempty"`
	Memo         string          `json:"memo,omitempty"`
	Source       Source          `json:"source"`
	OriginalText string          `json:"originalText,omitempty"`
}
