package textparse

import (
	"strings"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// incomeKeywords are checked first; expenseKeywords only when no income
// cue is present. Order within each list is significant.
var (
	incomeKeywords  = []string{"입금", "수입", "급여", "월급", "보너스", "용돈", "선물", "환급", "적립"}
	expenseKeywords = []string{"출금", "지출", "결제", "구매", "이용", "이용료", "수수료", "요금"}
)

// DetectType decides income vs expense from keyword cues. Text with no
// cue at all is treated as an expense.
func DetectType(text string) model.TransactionType {
	lower := strings.ToLower(text)

	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return model.TypeIncome
		}
	}
	for _, kw := range expenseKeywords {
		if strings.Contains(lower, kw) {
			return model.TypeExpense
		}
	}
	return model.TypeExpense
}
