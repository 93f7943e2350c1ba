package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	reservations "dinesync/internal/modules/reservations/domain"
)

// Confirmation is the copy of draft and cart taken at finalize time. It shares no
// memory with the live flow.
type Confirmation struct {
	OrderID     string             `json:"orderId"`
	Reservation reservations.Draft `json:"reservation"`
	Lines       []PricedLine       `json:"lines"`
	Total       decimal.Decimal    `json:"total"`
	ConfirmedAt time.Time          `json:"confirmedAt"`
}

// NewConfirmation prices the cart and copies everything it needs.
func NewConfirmation(draft reservations.Draft, cart *Cart, catalog PriceLookup, at time.Time) (*Confirmation, error) {
	lines, total, err := cart.Price(catalog)
	if err != nil {
		return nil, err
	}
	return &Confirmation{
		OrderID:     uuid.NewString(),
		Reservation: draft,
		Lines:       lines,
		Total:       total,
		ConfirmedAt: at,
	}, nil
}

// ItemCount sums the quantities of every line.
func (c *Confirmation) ItemCount() int {
	n := 0
	for _, line := range c.Lines {
		n += line.Quantity
	}
	return n
}
