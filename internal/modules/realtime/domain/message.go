package domain

import "time"

// Message is the envelope written to websocket clients.
type Message struct {
	Topic     string            `json:"topic"`
	Entity    string            `json:"entity"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Data      any               `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// SessionID returns the session the message is addressed to, if any.
func (m *Message) SessionID() string {
	if m == nil || m.Metadata == nil {
		return ""
	}
	return m.Metadata[MetadataSessionID]
}
