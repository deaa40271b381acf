package textparse

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// kakaoPatterns match KakaoPay-style chat notifications: name before
// amount, amount before name, and name+amount without a payment word.
var kakaoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([가-힣\w\s]+)\s*(\d{1,3}(?:,\d{3})*)\s*원\s*결제`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*원\s*([가-힣\w\s]+)\s*결제`),
	regexp.MustCompile(`([가-힣\w\s]+)\s*(\d{1,3}(?:,\d{3})*)\s*원`),
}

// KakaoParser handles chat payment notifications. When none of the chat
// patterns hit it falls back to the generic receipt parser and returns
// that draft untouched, source tag included.
type KakaoParser struct{}

// Format returns the parser name.
func (p *KakaoParser) Format() string { return "kakao" }

// Parse builds a draft transaction from a chat message. The amount is
// re-extracted from the matched substring only, not the whole text.
func (p *KakaoParser) Parse(text string, now time.Time) model.Transaction {
	for _, pattern := range kakaoPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		amount, ok := ExtractAmount(m[0])
		if !ok {
			amount = decimal.Zero
		}
		description := firstNonEmpty(m[1:])
		if description == "" {
			description = ExtractDescription(text)
		}
		date, ok := ExtractDate(text, now)
		if !ok {
			date = now
		}

		return model.Transaction{
			Date:         date,
			Type:         DetectType(text),
			Amount:       amount,
			Description:  description,
			Source:       model.SourceKakao,
			OriginalText: text,
		}
	}

	return (&ReceiptParser{}).Parse(text, now)
}

func firstNonEmpty(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}
