package transport

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dinesync/internal/modules/restaurants/domain"
)

// Handler serves the static restaurant information.
type Handler struct {
	hours    domain.OpeningHours
	location domain.Location
	reviews  []domain.Review
	now      func() time.Time
}

func NewHandler(hours domain.OpeningHours, location domain.Location, reviews []domain.Review) *Handler {
	return &Handler{hours: hours, location: location, reviews: reviews, now: time.Now}
}

// NewDefaultHandler serves the house data.
func NewDefaultHandler() *Handler {
	return NewHandler(domain.DefaultHours(), domain.DefaultLocation(), domain.DefaultReviews())
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/restaurant/hours", h.getHours)
	g.GET("/restaurant/location", h.getLocation)
	g.GET("/restaurant/reviews", h.getReviews)
}

type hoursResponse struct {
	Week      []domain.HoursEntry `json:"week"`
	Today     domain.HoursEntry   `json:"today"`
	OpenToday bool                `json:"openToday"`
}

func (h *Handler) getHours(c echo.Context) error {
	today, open := h.hours.Today(h.now())
	return c.JSON(http.StatusOK, hoursResponse{Week: h.hours.Table(), Today: today, OpenToday: open})
}

func (h *Handler) getLocation(c echo.Context) error {
	return c.JSON(http.StatusOK, h.location)
}

func (h *Handler) getReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Summarize(h.reviews))
}
