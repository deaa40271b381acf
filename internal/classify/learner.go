package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// maxLearnedKeywords bounds how many keywords one correction may add.
const maxLearnedKeywords = 3

var tokenCleaner = regexp.MustCompile(`[^\w\s가-힣]`)

// Tokenize lowercases the description, replaces everything that is not
// a word character or Hangul syllable with a space, and splits on
// whitespace, dropping single-rune tokens.
func Tokenize(description string) []string {
	cleaned := tokenCleaner.ReplaceAllString(strings.ToLower(description), " ")

	var tokens []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) > 1 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// Learn mines keywords from a description the user filed under
// categoryID and appends at most three of them to that category's
// keyword list. The table is copy-on-write: callers get a fresh slice
// with one element replaced, or the original slice unchanged when the
// id is unknown or nothing new was found, so a changed table can be
// detected by comparison.
func Learn(description, categoryID string, categories []model.Category) []model.Category {
	idx := -1
	for i := range categories {
		if categories[i].ID == categoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return categories
	}

	category := categories[idx]
	var learned []string
	for _, token := range Tokenize(description) {
		if len(learned) == maxLearnedKeywords {
			break
		}
		if !related(token, category.Keywords) {
			learned = append(learned, token)
		}
	}
	if len(learned) == 0 {
		return categories
	}

	keywords := make([]string, 0, len(category.Keywords)+len(learned))
	keywords = append(keywords, category.Keywords...)
	keywords = append(keywords, learned...)
	category.Keywords = keywords

	updated := make([]model.Category, len(categories))
	copy(updated, categories)
	updated[idx] = category
	return updated
}

// related reports whether token overlaps an existing keyword in either
// direction: the keyword contains the token or the token contains the
// keyword. Deliberately permissive so a learned keyword suppresses its
// own substrings and superstrings later.
func related(token string, keywords []string) bool {
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if strings.Contains(lower, token) || strings.Contains(token, lower) {
			return true
		}
	}
	return false
}
