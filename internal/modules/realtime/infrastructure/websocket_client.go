package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"dinesync/internal/modules/realtime/domain"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 1 << 16
)

// Client is one websocket connection bound to a reservation session.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	id         string
	sessionID  string
	commands   *CommandProcessor
	subscribed map[string]struct{}

	sendMu    sync.Mutex
	send      chan []byte
	closed    bool
	closeOnce sync.Once
}

// NewClient wraps conn with a send buffer of buf messages.
func NewClient(hub *Hub, conn *websocket.Conn, sessionID string, buf int, commands *CommandProcessor) *Client {
	if buf <= 0 {
		buf = 1
	}
	return &Client{
		hub:        hub,
		conn:       conn,
		id:         uuid.NewString(),
		sessionID:  sessionID,
		commands:   commands,
		subscribed: make(map[string]struct{}),
		send:       make(chan []byte, buf),
	}
}

func (c *Client) ID() string        { return c.id }
func (c *Client) SessionID() string { return c.sessionID }

// enqueue reports false when the buffer is full. A closed client swallows the message.
func (c *Client) enqueue(data []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.sendMu.Lock()
		c.closed = true
		close(c.send)
		c.sendMu.Unlock()
		_ = c.conn.Close()
	})
}

func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.log.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	if !c.enqueue(data) {
		c.hub.log.Warn("websocket send buffer full", slog.String("clientId", c.id), slog.String("sessionId", c.sessionID))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.hub.log.Warn("websocket write error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.hub.log.Warn("websocket ping error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.hub.log.Debug("websocket read ended", slog.String("clientId", c.id), slog.String("sessionId", c.sessionID), slog.Any("error", err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if c.commands != nil {
			c.commands.Process(c, cmd)
		}
	}
}
