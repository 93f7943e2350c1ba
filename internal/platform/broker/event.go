package broker

import "time"

// Event is a decoded broker record.
type Event struct {
	Topic      string
	Entity     string
	Action     string
	ResourceID string
	Metadata   map[string]string
	Data       any
	Timestamp  time.Time
}
