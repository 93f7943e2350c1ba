package domain

import (
	"strings"
	"time"
)

// DayOfWeek names an opening day using uppercase english names.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Week lists the days in the order the hours table is displayed.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var allowedDays = map[string]DayOfWeek{
	string(Monday):    Monday,
	string(Tuesday):   Tuesday,
	string(Wednesday): Wednesday,
	string(Thursday):  Thursday,
	string(Friday):    Friday,
	string(Saturday):  Saturday,
	string(Sunday):    Sunday,
}

// ParseDay accepts any casing and surrounding spaces.
func ParseDay(raw string) (DayOfWeek, bool) {
	day, ok := allowedDays[strings.ToUpper(strings.TrimSpace(raw))]
	return day, ok
}

// DayOf converts a time.Weekday.
func DayOf(w time.Weekday) DayOfWeek {
	return DayOfWeek(strings.ToUpper(w.String()))
}

// Title renders the day as "Monday".
func (d DayOfWeek) Title() string {
	s := strings.ToLower(string(d))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
