package categories

import (
	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// DefaultCategories returns the starter category catalog, expense
// buckets first. Keyword order matters: the matcher treats the lists
// as ordered and the learner appends at the end.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			ID:       "food",
			Name:     "식비",
			Type:     model.TypeExpense,
			Keywords: []string{"식사", "음식", "카페", "커피", "점심", "저녁", "아침", "배달", "치킨", "피자", "햄버거", "김치찌개", "라면", "밥", "식당", "맛집"},
			Color:    "#FF6B6B",
			Icon:     "utensils",
		},
		{
			ID:       "transport",
			Name:     "교통비",
			Type:     model.TypeExpense,
			Keywords: []string{"지하철", "버스", "택시", "기차", "비행기", "주유", "주차", "톨게이트", "교통카드", "카카오택시", "우버"},
			Color:    "#4ECDC4",
			Icon:     "car",
		},
		{
			ID:       "shopping",
			Name:     "쇼핑",
			Type:     model.TypeExpense,
			Keywords: []string{"쇼핑", "옷", "신발", "가방", "화장품", "온라인", "쿠팡", "11번가", "G마켓", "옥션", "네이버쇼핑", "아마존"},
			Color:    "#45B7D1",
			Icon:     "shopping-bag",
		},
		{
			ID:       "healthcare",
			Name:     "의료비",
			Type:     model.TypeExpense,
			Keywords: []string{"병원", "약국", "약", "치과", "안과", "피부과", "검진", "의료", "건강", "보험"},
			Color:    "#96CEB4",
			Icon:     "heart",
		},
		{
			ID:       "entertainment",
			Name:     "문화생활",
			Type:     model.TypeExpense,
			Keywords: []string{"영화", "게임", "책", "음악", "콘서트", "전시회", "카페", "술", "맥주", "와인", "노래방", "PC방"},
			Color:    "#FFEAA7",
			Icon:     "music",
		},
		{
			ID:       "utilities",
			Name:     "공과금",
			Type:     model.TypeExpense,
			Keywords: []string{"전기", "가스", "수도", "인터넷", "핸드폰", "통신비", "관리비", "아파트", "월세", "전세"},
			Color:    "#DDA0DD",
			Icon:     "home",
		},
		{
			ID:       "education",
			Name:     "교육비",
			Type:     model.TypeExpense,
			Keywords: []string{"학원", "과외", "책", "교재", "학습", "교육", "강의", "온라인강의", "유튜브", "스터디"},
			Color:    "#98D8C8",
			Icon:     "book",
		},
		{
			ID:       "others",
			Name:     "기타",
			Type:     model.TypeExpense,
			Keywords: []string{"기타", "기타지출", "잡비"},
			Color:    "#F7DC6F",
			Icon:     "more-horizontal",
		},
		{
			ID:       "salary",
			Name:     "급여",
			Type:     model.TypeIncome,
			Keywords: []string{"급여", "월급", "연봉", "보너스", "상여금", "급여이체"},
			Color:    "#2ECC71",
			Icon:     "dollar-sign",
		},
		{
			ID:       "freelance",
			Name:     "부업/프리랜서",
			Type:     model.TypeIncome,
			Keywords: []string{"부업", "프리랜서", "외주", "용돈", "알바", "아르바이트", "투잡"},
			Color:    "#3498DB",
			Icon:     "briefcase",
		},
		{
			ID:       "investment",
			Name:     "투자수익",
			Type:     model.TypeIncome,
			Keywords: []string{"주식", "펀드", "적금", "예금", "이자", "배당", "투자", "코인", "비트코인"},
			Color:    "#9B59B6",
			Icon:     "trending-up",
		},
		{
			ID:       "gift",
			Name:     "선물/용돈",
			Type:     model.TypeIncome,
			Keywords: []string{"선물", "용돈", "상금", "보상금", "환급", "적립금"},
			Color:    "#E67E22",
			Icon:     "gift",
		},
	}
}

// DefaultSubcategories returns the starter subcategory catalog.
func DefaultSubcategories() []model.Subcategory {
	return []model.Subcategory{
		{ID: "food-breakfast", Name: "아침식사", ParentCategoryID: "food", Keywords: []string{"아침", "브런치"}},
		{ID: "food-lunch", Name: "점심식사", ParentCategoryID: "food", Keywords: []string{"점심", "런치"}},
		{ID: "food-dinner", Name: "저녁식사", ParentCategoryID: "food", Keywords: []string{"저녁", "디너"}},
		{ID: "food-snack", Name: "간식/음료", ParentCategoryID: "food", Keywords: []string{"간식", "음료", "커피", "차", "과자"}},

		{ID: "transport-public", Name: "대중교통", ParentCategoryID: "transport", Keywords: []string{"지하철", "버스", "교통카드"}},
		{ID: "transport-taxi", Name: "택시", ParentCategoryID: "transport", Keywords: []string{"택시", "카카오택시", "우버"}},
		{ID: "transport-car", Name: "자동차", ParentCategoryID: "transport", Keywords: []string{"주유", "주차", "정비", "보험"}},

		{ID: "shopping-clothes", Name: "의류", ParentCategoryID: "shopping", Keywords: []string{"옷", "신발", "가방", "액세서리"}},
		{ID: "shopping-beauty", Name: "화장품/뷰티", ParentCategoryID: "shopping", Keywords: []string{"화장품", "스킨케어", "메이크업"}},
		{ID: "shopping-online", Name: "온라인쇼핑", ParentCategoryID: "shopping", Keywords: []string{"온라인", "쿠팡", "11번가", "G마켓"}},
	}
}
