package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"dinesync/internal/modules/menu/domain"
	"dinesync/internal/platform/broker"
	"dinesync/internal/shared/normalization"
)

// ItemUpdatedHandler applies menu item updates from the broker to the live catalog.
type ItemUpdatedHandler struct {
	topic   string
	catalog *domain.Catalog
}

func NewItemUpdatedHandler(topic string, catalog *domain.Catalog) *ItemUpdatedHandler {
	return &ItemUpdatedHandler{topic: topic, catalog: catalog}
}

func (h *ItemUpdatedHandler) Topic() string { return h.topic }

func (h *ItemUpdatedHandler) Handle(_ context.Context, event *broker.Event) error {
	raw := normalization.MapFromPayload(event.Data)
	if raw == nil {
		return fmt.Errorf("%w: payload is not an object", domain.ErrInvalidItem)
	}
	id, ok := domain.ItemIDFromPayload(raw)
	if !ok {
		if id, ok = parseResourceID(event.ResourceID); !ok {
			return fmt.Errorf("%w: missing id", domain.ErrInvalidItem)
		}
	}

	base, err := h.catalog.Get(id)
	if errors.Is(err, domain.ErrItemNotFound) {
		base = domain.MenuItem{ID: id}
	} else if err != nil {
		return err
	}

	item, err := domain.ApplyPayload(base, raw)
	if err != nil {
		return err
	}
	created, err := h.catalog.Upsert(item)
	if err != nil {
		return err
	}
	slog.Info("menu item updated",
		slog.Int("itemId", item.ID),
		slog.String("price", item.Price.StringFixed(2)),
		slog.Bool("created", created),
	)
	return nil
}

func parseResourceID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	return id, err == nil && id > 0
}

var _ broker.TopicHandler = (*ItemUpdatedHandler)(nil)
