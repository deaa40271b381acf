package textparse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPatterns are tried in strict priority order. The first pattern
// with at least one match supplies all candidates; patterns are never
// merged.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*원`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*₩`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*W`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*$`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
}

var nonAmountChars = regexp.MustCompile(`[^\d.,]`)

// ExtractAmount pulls a monetary quantity out of free text. When the
// winning pattern matches more than once the largest value is returned;
// the biggest number on a receipt is usually the total.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		matches := pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}

		best := decimal.Zero
		found := false
		for _, m := range matches {
			clean := nonAmountChars.ReplaceAllString(m, "")
			clean = strings.ReplaceAll(clean, ",", "")
			v, err := decimal.NewFromString(clean)
			if err != nil {
				continue
			}
			if !found || v.GreaterThan(best) {
				best = v
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return decimal.Zero, false
}
