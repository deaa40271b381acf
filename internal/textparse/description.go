package textparse

import (
	"regexp"
	"strings"
)

// descriptionPatterns capture the name-like prefix before an amount or
// a payment cue (결제/이용/구매).
var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([가-힣\w\s]+)\s*\d+[,\d]*원`),
	regexp.MustCompile(`([가-힣\w\s]+)\s*결제`),
	regexp.MustCompile(`([가-힣\w\s]+)\s*이용`),
	regexp.MustCompile(`([가-힣\w\s]+)\s*구매`),
}

// ExtractDescription isolates the merchant/description substring. With
// no pattern hit it falls back to the first non-empty line, then to the
// trimmed text itself.
func ExtractDescription(text string) string {
	for _, p := range descriptionPatterns {
		m := p.FindStringSubmatch(text)
		if m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	return strings.TrimSpace(text)
}
