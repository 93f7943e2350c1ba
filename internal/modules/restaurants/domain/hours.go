package domain

import "time"

// OpeningHours maps each weekday to its display range.
type OpeningHours map[DayOfWeek]string

// HoursEntry is a single row of the hours table.
type HoursEntry struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// DefaultHours returns the house schedule.
func DefaultHours() OpeningHours {
	return OpeningHours{
		Monday:    "11:00 AM - 9:00 PM",
		Tuesday:   "11:00 AM - 9:00 PM",
		Wednesday: "11:00 AM - 9:00 PM",
		Thursday:  "11:00 AM - 10:00 PM",
		Friday:    "11:00 AM - 11:00 PM",
		Saturday:  "10:00 AM - 11:00 PM",
		Sunday:    "10:00 AM - 9:00 PM",
	}
}

// Table returns the schedule Monday first.
func (h OpeningHours) Table() []HoursEntry {
	out := make([]HoursEntry, 0, len(Week))
	for _, day := range Week {
		if hours, ok := h[day]; ok {
			out = append(out, HoursEntry{Day: day.Title(), Hours: hours})
		}
	}
	return out
}

// Today returns the hours for the weekday of now, and false when closed.
func (h OpeningHours) Today(now time.Time) (HoursEntry, bool) {
	day := DayOf(now.Weekday())
	hours, ok := h[day]
	return HoursEntry{Day: day.Title(), Hours: hours}, ok
}
