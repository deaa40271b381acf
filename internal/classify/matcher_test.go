package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func testCategories() []model.Category {
	return []model.Category{
		{ID: "food", Name: "식비", Type: model.TypeExpense, Keywords: []string{"카페", "커피", "식당"}},
		{ID: "transport", Name: "교통비", Type: model.TypeExpense, Keywords: []string{"택시", "버스"}},
		{ID: "shopping", Name: "쇼핑", Type: model.TypeExpense, Keywords: []string{"쇼핑", "쿠팡"}},
	}
}

func testSubcategories() []model.Subcategory {
	return []model.Subcategory{
		{ID: "food-snack", Name: "간식/음료", ParentCategoryID: "food", Keywords: []string{"커피", "음료"}},
		{ID: "food-lunch", Name: "점심식사", ParentCategoryID: "food", Keywords: []string{"점심"}},
		{ID: "transport-taxi", Name: "택시", ParentCategoryID: "transport", Keywords: []string{"택시"}},
	}
}

func TestMatch_CategoryAndSubcategory(t *testing.T) {
	res := Match("스타벅스 카페 커피 결제", testCategories(), testSubcategories())

	require.NotNil(t, res.Category)
	assert.Equal(t, "food", res.Category.ID)
	require.NotNil(t, res.Subcategory)
	assert.Equal(t, "food-snack", res.Subcategory.ID)
}

func TestMatch_SubcategoryScopedToWinner(t *testing.T) {
	// 택시 appears in the text but belongs to transport; with food
	// winning, the transport subcategory must not be considered.
	res := Match("카페 커피 택시", testCategories(), testSubcategories())

	require.NotNil(t, res.Category)
	assert.Equal(t, "food", res.Category.ID)
	require.NotNil(t, res.Subcategory)
	assert.Equal(t, "food-snack", res.Subcategory.ID)
}

func TestMatch_NoOverlap(t *testing.T) {
	res := Match("전혀 관련 없는 텍스트", testCategories(), testSubcategories())

	assert.Nil(t, res.Category)
	assert.Nil(t, res.Subcategory)
}

func TestMatch_TieKeepsFirstCategory(t *testing.T) {
	cats := []model.Category{
		{ID: "first", Keywords: []string{"커피"}},
		{ID: "second", Keywords: []string{"커피"}},
	}

	res := Match("커피 한 잔", cats, nil)

	require.NotNil(t, res.Category)
	assert.Equal(t, "first", res.Category.ID)
}

func TestMatch_LongerKeywordOutweighsShorter(t *testing.T) {
	cats := []model.Category{
		{ID: "short", Keywords: []string{"커피"}},
		{ID: "long", Keywords: []string{"아메리카노"}},
	}

	res := Match("커피 아메리카노", cats, nil)

	require.NotNil(t, res.Category)
	assert.Equal(t, "long", res.Category.ID)
}

func TestMatch_ScoreSumsAcrossKeywords(t *testing.T) {
	cats := []model.Category{
		{ID: "single", Keywords: []string{"아메리카노"}},    // score 5
		{ID: "double", Keywords: []string{"커피", "카페"}}, // score 4
	}

	res := Match("커피 카페 아메리카노", cats, nil)

	require.NotNil(t, res.Category)
	assert.Equal(t, "single", res.Category.ID)
}

func TestSuggest_OrderedAndCapped(t *testing.T) {
	cats := []model.Category{
		{ID: "a", Keywords: []string{"커피"}},         // score 2
		{ID: "b", Keywords: []string{"아메리카노"}},      // score 5
		{ID: "c", Keywords: []string{"커피", "카페"}},   // score 4
		{ID: "d", Keywords: []string{"스타벅스", "커피"}}, // score 6
		{ID: "e", Keywords: []string{"없는키워드"}},      // score 0
	}

	got := Suggest("스타벅스 카페 커피 아메리카노", cats)

	require.Len(t, got, 3)
	assert.Equal(t, "d", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSuggest_TiesKeepOriginalOrder(t *testing.T) {
	cats := []model.Category{
		{ID: "a", Keywords: []string{"커피"}},
		{ID: "b", Keywords: []string{"카페"}},
	}

	got := Suggest("커피 카페", cats)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestSuggest_NoHits(t *testing.T) {
	assert.Empty(t, Suggest("관련 없음", testCategories()))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	cats := []model.Category{
		{ID: "shopping", Keywords: []string{"Coupang"}},
	}

	res := Match("coupang 결제 내역", cats, nil)

	require.NotNil(t, res.Category)
	assert.Equal(t, "shopping", res.Category.ID)
}
