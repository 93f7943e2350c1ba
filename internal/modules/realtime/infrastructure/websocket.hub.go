package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"dinesync/internal/modules/realtime/domain"
)

// Hub fans messages out to websocket clients by topic. A message carrying a session id
// in its metadata only reaches clients of that session.
type Hub struct {
	topics  map[string]map[*Client]struct{}
	clients map[string]*Client
	mu      sync.RWMutex
	log     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		topics:  make(map[string]map[*Client]struct{}),
		clients: make(map[string]*Client),
		log:     logger,
	}
}

func (h *Hub) subscribe(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]struct{})
	}
	h.topics[topic][c] = struct{}{}
	c.subscribed[topic] = struct{}{}
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	for topic := range c.subscribed {
		if subs, ok := h.topics[topic]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	delete(h.clients, c.id)
	c.close()
	h.log.Info("ws client detached", slog.String("clientId", c.id), slog.String("sessionId", c.sessionID))
}

// Broadcast delivers msg to the topic's subscribers. Clients whose send buffer is full
// are dropped.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	subs := h.topics[msg.Topic]
	clients := make([]*Client, 0, len(subs))
	for c := range subs {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	targetSession := strings.TrimSpace(msg.SessionID())
	for _, c := range clients {
		if targetSession != "" && c.sessionID != targetSession {
			continue
		}
		if !c.enqueue(data) {
			h.log.Warn("ws send buffer full", slog.String("clientId", c.id), slog.String("sessionId", c.sessionID))
			go h.detachClient(c)
		}
	}
}

// AttachClient registers c and subscribes it to topics.
func (h *Hub) AttachClient(c *Client, topics []string) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	for _, topic := range topics {
		if trimmed := strings.TrimSpace(topic); trimmed != "" {
			h.subscribe(c, trimmed)
		}
	}
	h.log.Info("ws client attached", slog.String("clientId", c.id), slog.String("sessionId", c.sessionID), slog.Any("topics", topics))
}

// DisconnectSession closes every client of the session, e.g. when the session ends.
func (h *Hub) DisconnectSession(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.clients {
		if c.sessionID == sessionID {
			h.detachLocked(c)
			n++
		}
	}
	return n
}

// Close detaches every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		h.detachLocked(c)
	}
}

// ClientCount returns the number of attached clients of sessionID, or of all sessions
// when sessionID is empty.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if sessionID == "" {
		return len(h.clients)
	}
	n := 0
	for _, c := range h.clients {
		if c.sessionID == sessionID {
			n++
		}
	}
	return n
}
