package model

// Category is a top-level classification bucket. Keywords drive
// auto-matching; insertion order matters (earlier entries are the
// user-curated ones, learned keywords append at the end).
type Category struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     TransactionType `json:"type"`
	Keywords []string        `json:"keywords"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon,omitempty"`
}

// Subcategory is scoped under exactly one parent category. It is only
// matchable when its parent is the best-matched category.
type Subcategory struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ParentCategoryID string   `json:"parentCategoryId"`
	Keywords         []string `json:"keywords"`
}
