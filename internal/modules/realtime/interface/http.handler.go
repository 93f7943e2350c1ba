package transport

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/realtime/application/usecase"
	"dinesync/internal/modules/realtime/domain"
	"dinesync/internal/modules/realtime/infrastructure"
	"dinesync/internal/shared/auth"
	"dinesync/internal/shared/httputil"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var connectErrors = httputil.NewErrorMapper().
	WithMapping(auth.ErrMissingToken, http.StatusBadRequest, "missing token").
	WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "invalid token").
	WithMapping(usecase.ErrUnknownSession, http.StatusUnauthorized, "unknown session").
	WithDefault(http.StatusInternalServerError, "unable to connect")

// NewWebsocketHandler serves /ws/notifications. The session token is read from the
// Authorization header or the token query parameter.
func NewWebsocketHandler(hub *infrastructure.Hub, connectUC *usecase.ConnectSessionUseCase, sendBuffer int) echo.HandlerFunc {
	commands := infrastructure.NewCommandProcessor()

	return func(c echo.Context) error {
		token := strings.TrimSpace(auth.ExtractToken(c.Request(), "token"))
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		output, err := connectUC.Execute(token)
		if err != nil {
			info := connectErrors.Map(err)
			slog.Warn("ws connect rejected",
				slog.Int("status", info.Status),
				slog.String("ip", c.RealIP()),
				slog.String("requestId", requestID),
				slog.Any("error", err),
			)
			return echo.NewHTTPError(info.Status, info.Message)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("sessionId", output.SessionID), slog.Any("error", err))
			return nil
		}

		client := infrastructure.NewClient(hub, conn, output.SessionID, sendBuffer, commands)
		topics := domain.NotificationTopics()
		// Queued before attaching so it is always the first frame.
		client.SendDomainMessage(domain.BuildConnectedMessage(output.SessionID, topics, time.Now()))
		hub.AttachClient(client, topics)

		go client.WritePump()
		go client.ReadPump()

		slog.Info("ws connected",
			slog.String("sessionId", output.SessionID),
			slog.String("clientId", client.ID()),
			slog.String("ip", c.RealIP()),
			slog.String("requestId", requestID),
		)
		return nil
	}
}
