package domain

import (
	"fmt"

	"dinesync/internal/shared/normalization"
)

// ItemIDFromPayload reads the id of a loosely typed item payload.
func ItemIDFromPayload(raw map[string]any) (int, bool) {
	id, ok := normalization.AsInt(raw["id"])
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// ApplyPayload overlays the fields present in raw on base. Absent keys keep the base
// value, so partial updates such as a price change are allowed. The id never changes.
func ApplyPayload(base MenuItem, raw map[string]any) (MenuItem, error) {
	item := base.clone()
	if v, ok := raw["name"]; ok {
		item.Name = normalization.AsString(v)
	}
	if v, ok := raw["description"]; ok {
		item.Description = normalization.AsString(v)
	}
	if v, ok := raw["price"]; ok {
		price, ok := normalization.AsDecimal(v)
		if !ok {
			return MenuItem{}, fmt.Errorf("%w: price %v", ErrInvalidItem, v)
		}
		item.Price = price
	}
	for _, key := range []string{"imageUrl", "image"} {
		if v, ok := raw[key]; ok {
			item.ImageRef = normalization.AsString(v)
			break
		}
	}
	if v, ok := raw["category"]; ok {
		category, ok := ParseCategory(normalization.AsString(v))
		if !ok || category == CategoryAll {
			return MenuItem{}, fmt.Errorf("%w: category %v", ErrInvalidItem, v)
		}
		item.Category = category
	}
	for _, key := range []string{"dietaryTags", "dietary"} {
		if v, ok := raw[key]; ok {
			item.DietaryTags = normalization.AsStringSlice(v)
			break
		}
	}
	if err := item.Validate(); err != nil {
		return MenuItem{}, err
	}
	return item, nil
}
