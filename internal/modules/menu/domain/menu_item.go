package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrInvalidItem  = errors.New("invalid menu item")
)

// MenuItem is an orderable dish. Values are immutable once published in a Catalog.
type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageRef    string          `json:"imageUrl"`
	Category    Category        `json:"category"`
	DietaryTags []string        `json:"dietaryTags"`
}

// Validate checks the invariants a catalog relies on.
func (m MenuItem) Validate() error {
	switch {
	case m.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidItem)
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case m.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	case m.Category == CategoryAll:
		return fmt.Errorf("%w: %q is not an item category", ErrInvalidItem, m.Category)
	}
	if _, ok := ParseCategory(string(m.Category)); !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, m.Category)
	}
	return nil
}

func (m MenuItem) clone() MenuItem {
	tags := make([]string, len(m.DietaryTags))
	copy(tags, m.DietaryTags)
	m.DietaryTags = tags
	return m
}
