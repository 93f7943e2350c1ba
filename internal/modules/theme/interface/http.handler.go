package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/theme/application/usecase"
	"dinesync/internal/modules/theme/domain"
	"dinesync/internal/shared/httputil"
)

var themeErrors = httputil.NewErrorMapper().
	WithMapping(domain.ErrInvalidTheme, http.StatusBadRequest, "").
	WithDefault(http.StatusInternalServerError, "unable to persist theme")

type Handler struct {
	prefs *usecase.Preferences
}

func NewHandler(prefs *usecase.Preferences) *Handler {
	return &Handler{prefs: prefs}
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/theme", h.get)
	g.PUT("/theme", h.put)
	g.POST("/theme/toggle", h.toggle)
}

type themeBody struct {
	Theme domain.Theme `json:"theme"`
	Dark  bool         `json:"dark"`
}

func render(theme domain.Theme) themeBody {
	return themeBody{Theme: theme, Dark: theme.IsDark()}
}

func (h *Handler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, render(h.prefs.Get()))
}

func (h *Handler) put(c echo.Context) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	theme, err := domain.ParseTheme(body.Theme)
	if err != nil {
		return themeErrors.HTTPError(err)
	}
	if err := h.prefs.Set(theme); err != nil {
		return themeErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, render(theme))
}

func (h *Handler) toggle(c echo.Context) error {
	theme, err := h.prefs.Toggle()
	if err != nil {
		return themeErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, render(theme))
}
