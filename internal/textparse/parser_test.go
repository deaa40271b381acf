package textparse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func TestReceiptParser_FullText(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	text := "스타벅스 4,500원 결제\n2024-03-05"

	txn := (&ReceiptParser{}).Parse(text, now)

	assert.True(t, decimal.NewFromInt(4500).Equal(txn.Amount), "got %s", txn.Amount)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "스타벅스", txn.Description)
	assert.Equal(t, model.SourceReceipt, txn.Source)
	assert.Equal(t, text, txn.OriginalText)
}

func TestReceiptParser_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	txn := (&ReceiptParser{}).Parse("메모만 있는 텍스트", now)

	assert.True(t, txn.Amount.IsZero())
	assert.Equal(t, now, txn.Date)
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "메모만 있는 텍스트", txn.Description)
	assert.Equal(t, model.SourceReceipt, txn.Source)
}

func TestRegistry_Builtins(t *testing.T) {
	r := DefaultRegistry()

	require.NotNil(t, r.Get("receipt"))
	require.NotNil(t, r.Get("kakao"))
	assert.NotNil(t, r.Get("RECEIPT"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("unknown"))
	assert.Len(t, r.Formats(), 2)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&ReceiptParser{})
	assert.Panics(t, func() { r.Register(&ReceiptParser{}) })
}
