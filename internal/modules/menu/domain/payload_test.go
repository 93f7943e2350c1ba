package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestApplyPayload(t *testing.T) {
	base := DefaultItems()[0]

	cases := []struct {
		name    string
		raw     map[string]any
		wantErr bool
		check   func(MenuItem) bool
	}{
		{
			name:  "price only",
			raw:   map[string]any{"id": float64(1), "price": "24.50"},
			check: func(m MenuItem) bool { return m.Price.Equal(decimal.RequireFromString("24.50")) && m.Name == base.Name },
		},
		{
			name:  "float price and tags",
			raw:   map[string]any{"price": 21.0, "dietary": []any{"vegetarian", " ", "gluten-free"}},
			check: func(m MenuItem) bool { return m.Price.Equal(decimal.NewFromInt(21)) && len(m.DietaryTags) == 2 },
		},
		{
			name:  "recategorized",
			raw:   map[string]any{"category": "Sides", "image": "/img/risotto.jpg"},
			check: func(m MenuItem) bool { return m.Category == CategorySides && m.ImageRef == "/img/risotto.jpg" },
		},
		{name: "negative price", raw: map[string]any{"price": "-1"}, wantErr: true},
		{name: "bad price", raw: map[string]any{"price": true}, wantErr: true},
		{name: "all is not a category", raw: map[string]any{"category": "all"}, wantErr: true},
		{name: "blank name", raw: map[string]any{"name": "  "}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyPayload(base, tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidItem) {
					t.Fatalf("expected ErrInvalidItem, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != base.ID || !tc.check(got) {
				t.Fatalf("unexpected item %+v", got)
			}
		})
	}
}

func TestItemIDFromPayload(t *testing.T) {
	if id, ok := ItemIDFromPayload(map[string]any{"id": "4"}); !ok || id != 4 {
		t.Fatalf("expected 4, got %d %v", id, ok)
	}
	if _, ok := ItemIDFromPayload(map[string]any{"id": float64(0)}); ok {
		t.Fatal("expected zero id rejected")
	}
}
