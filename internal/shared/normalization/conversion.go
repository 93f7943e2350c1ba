// Package normalization coerces loosely typed broker payloads into Go values.
package normalization

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AsString trims and returns value when it is a string.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces JSON numbers and numeric strings into an int.
func AsInt(value any) (int, bool) {
	switch typed := value.(type) {
	case float64:
		if typed != float64(int(typed)) {
			return 0, false
		}
		return int(typed), true
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(typed))
		return n, err == nil
	default:
		return 0, false
	}
}

// AsDecimal coerces JSON numbers and numeric strings into a decimal. Strings are
// preferred upstream because they survive the trip without float rounding.
func AsDecimal(value any) (decimal.Decimal, bool) {
	switch typed := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(typed))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(typed), true
	case int:
		return decimal.NewFromInt(int64(typed)), true
	default:
		return decimal.Decimal{}, false
	}
}

// AsStringSlice keeps the non-empty trimmed strings of an arbitrary slice.
func AsStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		if typed, ok := value.([]string); ok {
			items = make([]any, len(typed))
			for i, s := range typed {
				items[i] = s
			}
		}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := AsString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MapFromPayload unwraps {"data": {...}} envelopes into a plain map.
func MapFromPayload(value any) map[string]any {
	typed, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := typed["data"].(map[string]any); ok {
		return data
	}
	return typed
}
