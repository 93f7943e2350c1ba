package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"dinesync/internal/modules/realtime/domain"
	"dinesync/internal/shared/logging"
)

// Command is a message sent by the browser over the socket.
type Command struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CommandHandler func(ctx context.Context, client *Client, cmd Command)

// CommandProcessor routes client commands by action. Unknown actions get a
// system.error reply.
type CommandProcessor struct {
	handlers map[string]CommandHandler
	now      func() time.Time
}

func NewCommandProcessor() *CommandProcessor {
	processor := &CommandProcessor{
		handlers: make(map[string]CommandHandler),
		now:      time.Now,
	}
	processor.Register("ping", processor.handlePing)
	return processor
}

func (p *CommandProcessor) Register(action string, handler CommandHandler) {
	key := normalizeAction(action)
	if handler == nil || key == "" {
		return
	}
	p.handlers[key] = handler
}

func (p *CommandProcessor) Process(client *Client, cmd Command) {
	if client == nil {
		return
	}
	action := normalizeAction(cmd.Action)
	if action == "" {
		return
	}
	client.hub.log.Log(context.Background(), logging.LevelTrace, "ws command",
		slog.String("clientId", client.id), slog.String("action", action))

	handler, ok := p.handlers[action]
	if !ok {
		client.SendDomainMessage(domain.BuildErrorMessage("unsupported action "+action, p.now()))
		return
	}
	handler(context.Background(), client, cmd)
}

func (p *CommandProcessor) handlePing(_ context.Context, client *Client, _ Command) {
	client.SendDomainMessage(domain.BuildPongMessage(p.now()))
}

func normalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
