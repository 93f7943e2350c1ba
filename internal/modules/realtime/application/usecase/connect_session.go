package usecase

import (
	"errors"
	"log/slog"
	"strings"

	"dinesync/internal/modules/realtime/application/port"
	"dinesync/internal/shared/auth"
)

var ErrUnknownSession = errors.New("unknown session")

type ConnectSessionOutput struct {
	Claims    *auth.Claims
	SessionID string
}

// ConnectSessionUseCase authorizes a websocket connection for a live session.
type ConnectSessionUseCase struct {
	Validator auth.TokenValidator
	Sessions  port.SessionDirectory
}

func NewConnectSessionUseCase(validator auth.TokenValidator, sessions port.SessionDirectory) *ConnectSessionUseCase {
	return &ConnectSessionUseCase{Validator: validator, Sessions: sessions}
}

func (uc *ConnectSessionUseCase) Execute(token string) (*ConnectSessionOutput, error) {
	if strings.TrimSpace(token) == "" {
		return nil, auth.ErrMissingToken
	}

	claims, err := uc.Validator.Validate(token)
	if err != nil {
		slog.Warn("connect-session token validation failed", slog.Any("error", err))
		return nil, err
	}
	if !uc.Sessions.Has(claims.SessionID) {
		return nil, ErrUnknownSession
	}
	return &ConnectSessionOutput{Claims: claims, SessionID: claims.SessionID}, nil
}
