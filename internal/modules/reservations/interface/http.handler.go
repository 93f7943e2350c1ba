package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	menu "dinesync/internal/modules/menu/domain"
	ordering "dinesync/internal/modules/ordering/domain"
	"dinesync/internal/modules/reservations/application/usecase"
	"dinesync/internal/modules/reservations/domain"
	"dinesync/internal/shared/auth"
	"dinesync/internal/shared/httputil"
)

const flowContextKey = "reservationFlow"

var sessionErrors = httputil.NewErrorMapper().
	WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "missing token").
	WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "invalid token").
	WithMapping(usecase.ErrSessionNotFound, http.StatusUnauthorized, "unknown session").
	WithDefault(http.StatusInternalServerError, "unable to resolve session")

var flowErrors = httputil.NewErrorMapper().
	WithMapping(usecase.ErrFlowClosed, http.StatusUnauthorized, "unknown session").
	WithMapping(usecase.ErrFormLocked, http.StatusConflict, "").
	WithMapping(usecase.ErrInvalidState, http.StatusConflict, "").
	WithMapping(usecase.ErrEmptyCart, http.StatusConflict, "").
	WithMapping(ordering.ErrCartLineNotFound, http.StatusNotFound, "").
	WithMapping(menu.ErrItemNotFound, http.StatusNotFound, "").
	WithMappings(
		httputil.ErrorMapping{Error: domain.ErrUnknownField, Status: http.StatusBadRequest},
		httputil.ErrorMapping{Error: domain.ErrInvalidDate, Status: http.StatusBadRequest},
		httputil.ErrorMapping{Error: domain.ErrDateInPast, Status: http.StatusBadRequest},
		httputil.ErrorMapping{Error: domain.ErrUnknownTimeSlot, Status: http.StatusBadRequest},
		httputil.ErrorMapping{Error: domain.ErrInvalidValue, Status: http.StatusBadRequest},
	).
	WithDefault(http.StatusInternalServerError, "reservation flow error")

// Tokens issues and validates the bearer tokens bound to a session.
type Tokens interface {
	auth.TokenValidator
	Issue(sessionID string) (string, time.Time, error)
}

// Disconnector drops realtime connections of a torn down session.
type Disconnector interface {
	DisconnectSession(sessionID string) int
}

type Handler struct {
	sessions     *usecase.Sessions
	tokens       Tokens
	disconnector Disconnector
}

// NewHandler serves the reservation flow. disconnector may be nil.
func NewHandler(sessions *usecase.Sessions, tokens Tokens, disconnector Disconnector) *Handler {
	return &Handler{sessions: sessions, tokens: tokens, disconnector: disconnector}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/sessions", h.createSession)

	s := g.Group("/session", h.requireSession)
	s.GET("", h.view)
	s.DELETE("", h.deleteSession)
	s.PATCH("/draft", h.setDraft)
	s.POST("/party-size", h.adjustPartySize)
	s.POST("/submit", h.submit)
	s.POST("/menu", h.action((*usecase.Flow).ProceedToMenu))
	s.POST("/back", h.action((*usecase.Flow).Back))
	s.POST("/finalize", h.finalize)
	s.POST("/new", h.action((*usecase.Flow).StartNew))
	s.POST("/cart/items", h.addItem)
	s.DELETE("/cart/items/:id", h.removeItem)
}

type sessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) createSession(c echo.Context) error {
	flow := h.sessions.Create()
	token, expiresAt, err := h.tokens.Issue(flow.ID())
	if err != nil {
		_ = h.sessions.Close(flow.ID())
		slog.Error("issue session token failed", slog.Any("error", err))
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to create session")
	}
	return c.JSON(http.StatusCreated, sessionResponse{SessionID: flow.ID(), Token: token, ExpiresAt: expiresAt})
}

func (h *Handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := h.tokens.Validate(auth.ExtractToken(c.Request(), "token"))
		if err != nil {
			return sessionErrors.HTTPError(err)
		}
		flow, err := h.sessions.Get(claims.SessionID)
		if err != nil {
			return sessionErrors.HTTPError(err)
		}
		c.Set(flowContextKey, flow)
		return next(c)
	}
}

func flowFrom(c echo.Context) *usecase.Flow {
	return c.Get(flowContextKey).(*usecase.Flow)
}

func (h *Handler) deleteSession(c echo.Context) error {
	id := flowFrom(c).ID()
	if err := h.sessions.Close(id); err != nil {
		return sessionErrors.HTTPError(err)
	}
	if h.disconnector != nil {
		h.disconnector.DisconnectSession(id)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) view(c echo.Context) error {
	return renderView(c, flowFrom(c))
}

func (h *Handler) setDraft(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	fields, err := domain.FieldsFromPayload(payload)
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	flow := flowFrom(c)
	if err := flow.SetFields(fields); err != nil {
		return flowErrors.HTTPError(err)
	}
	return renderView(c, flow)
}

func (h *Handler) adjustPartySize(c echo.Context) error {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	flow := flowFrom(c)
	if _, err := flow.AdjustPartySize(body.Delta); err != nil {
		return flowErrors.HTTPError(err)
	}
	return renderView(c, flow)
}

type validationResponse struct {
	Message string                  `json:"message"`
	Errors  domain.ValidationErrors `json:"errors"`
}

func (h *Handler) submit(c echo.Context) error {
	flow := flowFrom(c)
	err := flow.Submit()
	var invalid domain.ValidationErrors
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{Message: domain.MessageInvalidForm, Errors: invalid})
	}
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	view, err := flow.View()
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	return c.JSON(http.StatusAccepted, view)
}

func (h *Handler) action(op func(*usecase.Flow) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		flow := flowFrom(c)
		if err := op(flow); err != nil {
			return flowErrors.HTTPError(err)
		}
		return renderView(c, flow)
	}
}

func (h *Handler) finalize(c echo.Context) error {
	confirmation, err := flowFrom(c).Finalize()
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, confirmation)
}

type cartResponse struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

func (h *Handler) addItem(c echo.Context) error {
	var body struct {
		ItemID int `json:"itemId"`
	}
	if err := c.Bind(&body); err != nil || body.ItemID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "itemId is required")
	}
	quantity, err := flowFrom(c).AddItem(body.ItemID)
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cartResponse{ItemID: body.ItemID, Quantity: quantity})
}

func (h *Handler) removeItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	remaining, err := flowFrom(c).RemoveItem(id)
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cartResponse{ItemID: id, Quantity: remaining})
}

func renderView(c echo.Context, flow *usecase.Flow) error {
	view, err := flow.View()
	if err != nil {
		return flowErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}
