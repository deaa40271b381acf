package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.TransactionType
	}{
		{"income keyword", "급여 입금", model.TypeIncome},
		{"expense keyword", "스타벅스 결제", model.TypeExpense},
		{"no keyword defaults to expense", "아무 말", model.TypeExpense},
		{"income wins over expense", "급여 입금 수수료 차감", model.TypeIncome},
		{"refund is income", "쇼핑몰 환급 처리", model.TypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.text))
		})
	}
}
