package classify

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// maxSuggestions caps the interactive suggestion list.
const maxSuggestions = 3

// Result pairs the best-matched category with the best-matched child
// subcategory. Either may be nil; unclassified is a normal outcome.
type Result struct {
	Category    *model.Category
	Subcategory *model.Subcategory
}

// score sums the rune lengths of every keyword whose case-folded form
// is a substring of lowerText. A longer keyword outweighs a shorter
// one; a category accumulates across all of its matching keywords.
func score(lowerText string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			total += utf8.RuneCountInString(kw)
		}
	}
	return total
}

// Match scores every category against the text and, when one wins,
// repeats the scoring over that category's subcategories. Only a
// strictly greater score replaces the current best, so ties keep the
// earliest entry in the supplied tables. Iteration order of the tables
// is significant and must come from the caller's ordered lists.
func Match(text string, categories []model.Category, subcategories []model.Subcategory) Result {
	lower := strings.ToLower(text)

	var best *model.Category
	maxScore := 0
	for i := range categories {
		if s := score(lower, categories[i].Keywords); s > maxScore {
			maxScore = s
			best = &categories[i]
		}
	}

	var bestSub *model.Subcategory
	if best != nil {
		maxSubScore := 0
		for i := range subcategories {
			if subcategories[i].ParentCategoryID != best.ID {
				continue
			}
			if s := score(lower, subcategories[i].Keywords); s > maxSubScore {
				maxSubScore = s
				bestSub = &subcategories[i]
			}
		}
	}

	return Result{Category: best, Subcategory: bestSub}
}

// Suggest returns up to three categories whose keywords hit the
// description, highest score first. Equal scores keep their original
// relative order.
func Suggest(description string, categories []model.Category) []model.Category {
	lower := strings.ToLower(description)

	type scored struct {
		category model.Category
		score    int
	}
	var hits []scored
	for _, c := range categories {
		if s := score(lower, c.Keywords); s > 0 {
			hits = append(hits, scored{category: c, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}

	out := make([]model.Category, len(hits))
	for i, h := range hits {
		out[i] = h.category
	}
	return out
}
