package categories

import (
	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// Service provides in-memory lookup over the category and subcategory
// tables. The tables themselves stay caller-owned ordered slices; the
// matcher consumes those directly so iteration order is preserved.
type Service struct {
	categories    []model.Category
	subcategories []model.Subcategory
	byID          map[string]model.Category
	subByID       map[string]model.Subcategory
}

// NewService creates a Service from category and subcategory slices.
func NewService(cats []model.Category, subs []model.Subcategory) *Service {
	byID := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	subByID := make(map[string]model.Subcategory, len(subs))
	for _, s := range subs {
		subByID[s.ID] = s
	}
	return &Service{categories: cats, subcategories: subs, byID: byID, subByID: subByID}
}

// All returns the ordered category table.
func (s *Service) All() []model.Category {
	return s.categories
}

// Subcategories returns the ordered subcategory table.
func (s *Service) Subcategories() []model.Subcategory {
	return s.subcategories
}

// Get returns a category by id.
func (s *Service) Get(id string) (model.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// GetSubcategory returns a subcategory by id.
func (s *Service) GetSubcategory(id string) (model.Subcategory, bool) {
	sub, ok := s.subByID[id]
	return sub, ok
}

// Exists reports whether a category id exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all categories of the given polarity.
func (s *Service) ByType(t model.TransactionType) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// Children returns the subcategories scoped under a parent category.
func (s *Service) Children(parentID string) []model.Subcategory {
	var result []model.Subcategory
	for _, sub := range s.subcategories {
		if sub.ParentCategoryID == parentID {
			result = append(result, sub)
		}
	}
	return result
}
