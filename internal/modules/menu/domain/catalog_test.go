package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCatalogFilter(t *testing.T) {
	catalog := NewDefaultCatalog()

	cases := []struct {
		name     string
		category Category
		expected []int
	}{
		{name: "all", category: CategoryAll, expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "appetizers", category: CategoryAppetizers, expected: []int{4, 5}},
		{name: "main courses", category: CategoryMainCourses, expected: []int{1, 2, 3}},
		{name: "sides", category: CategorySides, expected: []int{8}},
		{name: "desserts", category: CategoryDesserts, expected: []int{6, 7}},
		{name: "beverages", category: CategoryBeverages, expected: []int{9, 10}},
		{name: "unknown", category: Category("brunch"), expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := catalog.Filter(tc.category)
			if len(items) != len(tc.expected) {
				t.Fatalf("expected %d items, got %d", len(tc.expected), len(items))
			}
			for i, item := range items {
				if item.ID != tc.expected[i] {
					t.Fatalf("expected id %d at %d, got %d", tc.expected[i], i, item.ID)
				}
			}
		})
	}
}

func TestCatalogListIsDeterministic(t *testing.T) {
	catalog := NewDefaultCatalog()
	first := catalog.List()
	first[0].Name = "mutated"
	first[0].DietaryTags[0] = "mutated"

	second := catalog.List()
	if second[0].Name != "Truffle Risotto" || second[0].DietaryTags[0] != "Vegetarian" {
		t.Fatalf("catalog leaked internal state: %+v", second[0])
	}
}

func TestCatalogGetAndUpsert(t *testing.T) {
	catalog := NewDefaultCatalog()

	if _, err := catalog.Get(42); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	item, err := catalog.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item.Price = decimal.RequireFromString("24.00")
	added, err := catalog.Upsert(item)
	if err != nil || added {
		t.Fatalf("expected in-place update, got added=%v err=%v", added, err)
	}
	updated, _ := catalog.Get(1)
	if !updated.Price.Equal(decimal.RequireFromString("24")) {
		t.Fatalf("expected updated price, got %s", updated.Price)
	}
	if catalog.List()[0].ID != 1 {
		t.Fatal("expected upsert to keep position")
	}

	added, err = catalog.Upsert(MenuItem{ID: 11, Name: "Focaccia", Price: decimal.RequireFromString("6.50"), Category: CategorySides})
	if err != nil || !added {
		t.Fatalf("expected new item, got added=%v err=%v", added, err)
	}
	if got := catalog.Filter(CategorySides); len(got) != 2 || got[1].ID != 11 {
		t.Fatalf("unexpected sides %+v", got)
	}
}

func TestMenuItemValidate(t *testing.T) {
	cases := []struct {
		name string
		item MenuItem
	}{
		{name: "zero id", item: MenuItem{Name: "x", Category: CategorySides}},
		{name: "blank name", item: MenuItem{ID: 1, Name: " ", Category: CategorySides}},
		{name: "negative price", item: MenuItem{ID: 1, Name: "x", Price: decimal.NewFromInt(-1), Category: CategorySides}},
		{name: "all category", item: MenuItem{ID: 1, Name: "x", Category: CategoryAll}},
		{name: "unknown category", item: MenuItem{ID: 1, Name: "x", Category: "brunch"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.item.Validate(); !errors.Is(err, ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
		})
	}

	if _, err := NewCatalog([]MenuItem{DefaultItems()[0], DefaultItems()[0]}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected duplicate id to be rejected, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"":               CategoryAll,
		" Main-Courses ": CategoryMainCourses,
		"beverages":      CategoryBeverages,
	}
	for input, expected := range cases {
		got, ok := ParseCategory(input)
		if !ok || got != expected {
			t.Fatalf("ParseCategory(%q) = %q, %v", input, got, ok)
		}
	}
	if _, ok := ParseCategory("brunch"); ok {
		t.Fatal("expected unknown category to be rejected")
	}
	if len(Categories()) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(Categories()))
	}
}

func TestFeatured(t *testing.T) {
	featured := NewDefaultCatalog().Featured()
	if len(featured) != 3 || featured[2].Name != "Braised Short Ribs" {
		t.Fatalf("unexpected featured dishes %+v", featured)
	}
}
