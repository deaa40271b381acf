package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func learnCategories() []model.Category {
	return []model.Category{
		{ID: "food", Name: "식비", Keywords: []string{"식사", "카페"}},
		{ID: "transport", Name: "교통비", Keywords: []string{"택시"}},
	}
}

func TestLearn_AddsNewTokens(t *testing.T) {
	cats := learnCategories()

	got := Learn("스타벅스 아메리카노", "food", cats)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"식사", "카페", "스타벅스", "아메리카노"}, got[0].Keywords)
	assert.Equal(t, cats[1], got[1], "other entries carried over unchanged")
	assert.Equal(t, []string{"식사", "카페"}, cats[0].Keywords, "input table untouched")
}

func TestLearn_SecondCallIsIdentity(t *testing.T) {
	cats := learnCategories()

	once := Learn("스타벅스 아메리카노", "food", cats)
	twice := Learn("스타벅스 아메리카노", "food", once)

	assert.Equal(t, once, twice)
	assert.Len(t, twice[0].Keywords, 4, "nothing appended on the second pass")
}

func TestLearn_UnknownCategoryIsNoOp(t *testing.T) {
	cats := learnCategories()

	got := Learn("스타벅스", "missing", cats)

	assert.Equal(t, cats, got)
}

func TestLearn_AtMostThreeTokens(t *testing.T) {
	cats := learnCategories()

	got := Learn("하나둘 셋넷 다섯여섯 일곱여덟 아홉열", "food", cats)

	assert.Equal(t, []string{"식사", "카페", "하나둘", "셋넷", "다섯여섯"}, got[0].Keywords)
}

func TestLearn_SubstringRelationSuppresses(t *testing.T) {
	cats := []model.Category{
		{ID: "food", Keywords: []string{"커피"}},
	}

	// 아아커피 contains the existing keyword 커피, so nothing is new.
	got := Learn("아아커피", "food", cats)

	assert.Equal(t, cats, got)
}

func TestLearn_DropsShortTokensAndPunctuation(t *testing.T) {
	cats := []model.Category{
		{ID: "food", Keywords: []string{}},
	}

	got := Learn("a 김!밥 x", "food", cats)

	// Punctuation splits 김!밥 into two single-rune tokens; everything
	// here is too short to learn.
	assert.Equal(t, cats, got)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"스타벅스", "ice2"}, Tokenize("스타벅스, ICE2!"))
	assert.Empty(t, Tokenize("a b !"))
}
