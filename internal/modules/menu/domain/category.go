package domain

import "strings"

// Category identifies a section of the menu. CategoryAll is a filter value only,
// no item carries it.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryAppetizers  Category = "appetizers"
	CategoryMainCourses Category = "main-courses"
	CategorySides       Category = "sides"
	CategoryDesserts    Category = "desserts"
	CategoryBeverages   Category = "beverages"
)

// CategoryInfo pairs a category id with its display name.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

var categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Items"},
	{ID: CategoryAppetizers, Name: "Appetizers"},
	{ID: CategoryMainCourses, Name: "Main Courses"},
	{ID: CategorySides, Name: "Sides"},
	{ID: CategoryDesserts, Name: "Desserts"},
	{ID: CategoryBeverages, Name: "Beverages"},
}

// Categories returns the filter surface in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps raw input onto a known category. Empty input means all.
func ParseCategory(raw string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return CategoryAll, true
	}
	for _, c := range categories {
		if string(c.ID) == key {
			return c.ID, true
		}
	}
	return "", false
}
