package ledger

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowhereuri/smartMoneyPlanner/internal/categories"
	"github.com/nowhereuri/smartMoneyPlanner/internal/learnlog"
	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
	"github.com/nowhereuri/smartMoneyPlanner/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir())
	require.NoError(t, st.SaveCategories(categories.DefaultCategories()))
	require.NoError(t, st.SaveSubcategories(categories.DefaultSubcategories()))
	return NewService(st, zerolog.Nop()), st
}

func draft(desc string, amount int64) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:        model.TypeExpense,
		Amount:      decimal.NewFromInt(amount),
		Description: desc,
		Source:      model.SourceManual,
	}
}

func TestAdd_AutoClassifies(t *testing.T) {
	svc, _ := newTestService(t)

	txn, err := svc.Add(draft("스타벅스 카페 결제", 5500))
	require.NoError(t, err)

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, "food", txn.Category)

	stored, err := svc.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, stored.ID)
}

func TestAdd_KeepsExplicitCategory(t *testing.T) {
	svc, _ := newTestService(t)

	txn := draft("스타벅스 카페 결제", 5500)
	txn.Category = "shopping"

	added, err := svc.Add(txn)
	require.NoError(t, err)
	assert.Equal(t, "shopping", added.Category)
}

func TestAdd_RejectsNegativeAmount(t *testing.T) {
	svc, _ := newTestService(t)

	txn := draft("편의점", -100)
	txn.Category = "food"

	_, err := svc.Add(txn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestAdd_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	txn := draft("편의점", 3000)
	txn.Category = "no-such-category"

	_, err := svc.Add(txn)
	require.Error(t, err)
}

func TestCategorize_LearnsKeywords(t *testing.T) {
	svc, st := newTestService(t)

	txn, err := svc.Add(draft("넷플릭스 구독료", 17000))
	require.NoError(t, err)
	require.Empty(t, txn.Category)

	updated, learned, err := svc.Categorize(txn.ID, "entertainment", "")
	require.NoError(t, err)
	assert.Equal(t, "entertainment", updated.Category)
	assert.Contains(t, learned, "넷플릭스")

	cats, err := st.LoadCategories()
	require.NoError(t, err)
	for _, c := range cats {
		if c.ID == "entertainment" {
			assert.Contains(t, c.Keywords, "넷플릭스")
		}
	}

	entries, err := learnlog.Read(st.Root())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "entertainment", entries[0].CategoryID)
	assert.Contains(t, entries[0].Keywords, "넷플릭스")
}

func TestCategorize_NothingNewSkipsLog(t *testing.T) {
	svc, st := newTestService(t)

	// Every token is already a food keyword, so nothing is learned.
	txn, err := svc.Add(draft("카페", 2000))
	require.NoError(t, err)

	_, learned, err := svc.Categorize(txn.ID, "food", "")
	require.NoError(t, err)
	assert.Empty(t, learned)

	entries, err := learnlog.Read(st.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	older := draft("첫번째 지출", 1000)
	older.Date = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	older.Category = "others"
	newer := draft("두번째 지출", 2000)
	newer.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	newer.Category = "others"

	_, err := svc.Add(older)
	require.NoError(t, err)
	added, err := svc.Add(newer)
	require.NoError(t, err)

	txns, err := svc.List()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, added.ID, txns[0].ID)
}

func TestMonth(t *testing.T) {
	svc, _ := newTestService(t)

	jan := draft("일월 지출", 1000)
	jan.Date = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan.Category = "others"
	mar := draft("삼월 지출", 2000)
	mar.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	mar.Category = "others"

	_, err := svc.Add(jan)
	require.NoError(t, err)
	_, err = svc.Add(mar)
	require.NoError(t, err)

	txns, err := svc.Month(2025, 3)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "삼월 지출", txns[0].Description)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)

	txn, err := svc.Add(draft("버스 요금", 1500))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(txn.ID))

	_, err = svc.Get(txn.ID)
	assert.Error(t, err)
	assert.Error(t, svc.Delete(txn.ID))
}

func TestGet_Missing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get("txn_20250101_deadbeef")
	assert.Error(t, err)
}

func TestUpdate_Missing(t *testing.T) {
	svc, _ := newTestService(t)

	txn := draft("없는 거래", 1000)
	txn.ID = "txn_20250101_deadbeef"
	txn.Category = "others"

	_, _, err := svc.Update(txn)
	assert.Error(t, err)
}
