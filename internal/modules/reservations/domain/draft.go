package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dinesync/internal/shared/normalization"
)

const (
	MinPartySize     = 1
	MaxPartySize     = 20
	DefaultPartySize = 2

	// DateLayout is the wire format of Draft.Date.
	DateLayout = "2006-01-02"
)

var (
	ErrUnknownField    = errors.New("unknown reservation field")
	ErrInvalidDate     = errors.New("invalid reservation date")
	ErrDateInPast      = errors.New("reservation date is in the past")
	ErrUnknownTimeSlot = errors.New("unknown time slot")
	ErrInvalidValue    = errors.New("invalid field value")
)

// Field names a draft field using the same keys as the JSON payloads.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldDate            Field = "date"
	FieldTime            Field = "time"
	FieldPartySize       Field = "partySize"
	FieldSpecialRequests Field = "specialRequests"
)

var knownFields = map[Field]struct{}{
	FieldName: {}, FieldEmail: {}, FieldPhone: {}, FieldDate: {},
	FieldTime: {}, FieldPartySize: {}, FieldSpecialRequests: {},
}

// ParseField accepts the exact JSON key of a field.
func ParseField(raw string) (Field, bool) {
	field := Field(strings.TrimSpace(raw))
	_, ok := knownFields[field]
	return field, ok
}

var timeSlots = []string{
	"11:30 AM", "12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM",
	"5:30 PM", "6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM", "8:30 PM",
}

// TimeSlots returns the bookable times in display order.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func isTimeSlot(value string) bool {
	for _, slot := range timeSlots {
		if slot == value {
			return true
		}
	}
	return false
}

// Draft is the editable reservation form.
type Draft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests"`
}

// NewDraft returns an empty form with the default party size.
func NewDraft() Draft {
	return Draft{PartySize: DefaultPartySize}
}

// AdjustPartySize moves the party size by delta, clamped to [MinPartySize, MaxPartySize].
func (d *Draft) AdjustPartySize(delta int) {
	d.PartySize = clampPartySize(d.PartySize + delta)
}

func clampPartySize(n int) int {
	if n < MinPartySize {
		return MinPartySize
	}
	if n > MaxPartySize {
		return MaxPartySize
	}
	return n
}

// Set assigns a single field. Date must be YYYY-MM-DD and not before today; an empty
// value unsets date and time. Party size is clamped.
func (d *Draft) Set(field Field, value string, today time.Time) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldSpecialRequests:
		d.SpecialRequests = value
	case FieldDate:
		date, err := ParseDate(value, today)
		if err != nil {
			return err
		}
		d.Date = date
	case FieldTime:
		value = strings.TrimSpace(value)
		if value != "" && !isTimeSlot(value) {
			return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, value)
		}
		d.Time = value
	case FieldPartySize:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: party size %q", ErrInvalidValue, value)
		}
		d.PartySize = clampPartySize(n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ParseDate validates a YYYY-MM-DD value against the calendar day of today.
func ParseDate(raw string, today time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	date := parsed.Format(DateLayout)
	if date < today.Format(DateLayout) {
		return "", fmt.Errorf("%w: %s", ErrDateInPast, date)
	}
	return date, nil
}

// MinDate is the earliest date the form accepts.
func MinDate(today time.Time) string {
	return today.Format(DateLayout)
}

// FieldsFromPayload extracts field assignments from a loosely typed JSON body. Numbers
// are accepted for partySize; unknown keys are reported.
func FieldsFromPayload(raw map[string]any) (map[Field]string, error) {
	fields := make(map[Field]string, len(raw))
	for key, value := range raw {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if field == FieldPartySize {
			n, ok := normalization.AsInt(value)
			if !ok {
				return nil, fmt.Errorf("%w: party size %v", ErrInvalidValue, value)
			}
			fields[field] = strconv.Itoa(n)
			continue
		}
		text, ok := value.(string)
		if !ok && value != nil {
			return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidValue, key)
		}
		fields[field] = text
	}
	return fields, nil
}
