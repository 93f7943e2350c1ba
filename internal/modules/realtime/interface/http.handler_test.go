package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/realtime/application/usecase"
	"dinesync/internal/modules/realtime/domain"
	"dinesync/internal/modules/realtime/infrastructure"
	reservations "dinesync/internal/modules/reservations/domain"
	"dinesync/internal/shared/auth"
)

type liveSessions map[string]bool

func (l liveSessions) Has(id string) bool { return l[id] }

type wsFixture struct {
	server *httptest.Server
	hub    *infrastructure.Hub
	tokens *auth.SessionTokens
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()
	hub := infrastructure.NewHub(nil)
	tokens := auth.NewSessionTokens("test-secret", time.Hour)
	connect := usecase.NewConnectSessionUseCase(tokens, liveSessions{"s-1": true, "s-2": true})

	e := echo.New()
	e.GET("/ws/notifications", NewWebsocketHandler(hub, connect, 8))
	server := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})
	return &wsFixture{server: server, hub: hub, tokens: tokens}
}

func (fx *wsFixture) dial(t *testing.T, sessionID string) *websocket.Conn {
	t.Helper()
	token, _, err := fx.tokens.Issue(sessionID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws/notifications?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestWebsocketStreamsSessionNotifications(t *testing.T) {
	fx := newWSFixture(t)
	conn := fx.dial(t, "s-1")

	if msg := readMessage(t, conn); msg["topic"] != domain.TopicSystemConnected {
		t.Fatalf("expected system.connected first, got %v", msg)
	}

	other := domain.BuildNotificationMessage("s-2", reservations.Notification{Kind: reservations.KindInfo, Message: "not yours"}, time.Now())
	fx.hub.Broadcast(context.Background(), other)
	mine := domain.BuildNotificationMessage("s-1", reservations.Notification{
		Kind:    reservations.KindSuccess,
		Message: reservations.MessageSubmitted,
		State:   reservations.StateSubmitted,
	}, time.Now())
	fx.hub.Broadcast(context.Background(), mine)

	msg := readMessage(t, conn)
	if msg["topic"] != "notification.success" {
		t.Fatalf("expected the session's notification, got %v", msg)
	}
	data, _ := msg["data"].(map[string]any)
	if data["message"] != reservations.MessageSubmitted || data["state"] != "submitted" {
		t.Fatalf("unexpected payload %v", data)
	}
}

func TestWebsocketPingPong(t *testing.T) {
	fx := newWSFixture(t)
	conn := fx.dial(t, "s-2")
	readMessage(t, conn)

	if err := conn.WriteJSON(map[string]string{"action": "PING"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg["topic"] != domain.TopicSystemPong {
		t.Fatalf("expected pong, got %v", msg)
	}

	if err := conn.WriteJSON(map[string]string{"action": "subscribe"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg["topic"] != domain.TopicSystemError {
		t.Fatalf("expected error for unsupported action, got %v", msg)
	}
}

func TestWebsocketRejectsBadTokens(t *testing.T) {
	fx := newWSFixture(t)
	unknown, _, err := fx.tokens.Issue("closed")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing", query: "", status: http.StatusBadRequest},
		{name: "invalid", query: "?token=nope", status: http.StatusUnauthorized},
		{name: "unknown session", query: "?token=" + unknown, status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws/notifications" + tc.query
			_, resp, err := websocket.DefaultDialer.Dial(url, nil)
			if err == nil {
				t.Fatal("expected handshake failure")
			}
			if resp == nil || resp.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %+v", tc.status, resp)
			}
			var body map[string]any
			_ = json.NewDecoder(resp.Body).Decode(&body)
			resp.Body.Close()
			if body["message"] == nil {
				t.Fatalf("expected an error message, got %v", body)
			}
		})
	}
}

func TestHubDisconnectSession(t *testing.T) {
	fx := newWSFixture(t)
	conn := fx.dial(t, "s-1")
	readMessage(t, conn)

	if n := fx.hub.ClientCount("s-1"); n != 1 {
		t.Fatalf("expected 1 client, got %d", n)
	}
	if n := fx.hub.DisconnectSession("s-1"); n != 1 {
		t.Fatalf("expected 1 disconnected client, got %d", n)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected the connection to close")
	}
	if fx.hub.ClientCount("") != 0 {
		t.Fatal("expected no clients left")
	}
}
