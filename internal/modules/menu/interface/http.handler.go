package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/menu/domain"
	"dinesync/internal/shared/httputil"
)

var menuErrors = httputil.NewErrorMapper().
	WithMapping(domain.ErrItemNotFound, http.StatusNotFound, "menu item not found")

// Handler serves the read-only menu.
type Handler struct {
	catalog *domain.Catalog
}

func NewHandler(catalog *domain.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Register mounts the menu routes on g.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/menu", h.list)
	g.GET("/menu/categories", h.categories)
	g.GET("/menu/featured", h.featured)
	g.GET("/menu/:id", h.get)
}

func (h *Handler) list(c echo.Context) error {
	category, ok := domain.ParseCategory(c.QueryParam("category"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category "+c.QueryParam("category"))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"category": category,
		"items":    h.catalog.Filter(category),
	})
}

func (h *Handler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Categories())
}

func (h *Handler) featured(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Featured())
}

func (h *Handler) get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}
	item, err := h.catalog.Get(id)
	if err != nil {
		return menuErrors.HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}
