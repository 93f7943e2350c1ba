package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	menu "dinesync/internal/modules/menu/domain"
)

var ErrCartLineNotFound = errors.New("cart line not found")

// Line is one menu item in the cart. Quantity is always at least 1.
type Line struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// Cart keeps at most one line per item, ordered by first add.
type Cart struct {
	lines []Line
}

// Add increments the item's line or appends a new one, returning the new quantity.
func (c *Cart) Add(itemID int) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return c.lines[i].Quantity
		}
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Quantity: 1})
	return 1
}

// Remove decrements the item's line and deletes it once it would drop below 1. It
// returns the remaining quantity, 0 when the line is gone.
func (c *Cart) Remove(itemID int) (int, error) {
	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return c.lines[i].Quantity, nil
		}
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return 0, nil
	}
	return 0, fmt.Errorf("%w: item %d", ErrCartLineNotFound, itemID)
}

// Quantity returns 0 for items not in the cart.
func (c *Cart) Quantity(itemID int) int {
	for _, line := range c.lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Clear() { c.lines = nil }

// PriceLookup resolves the current catalog entry of an item.
type PriceLookup interface {
	Get(id int) (menu.MenuItem, error)
}

// PricedLine is a cart line joined with the catalog data at pricing time.
type PricedLine struct {
	ItemID    int             `json:"itemId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Price joins every line with the live catalog and sums quantity x price. Nothing is
// cached between calls.
func (c *Cart) Price(catalog PriceLookup) ([]PricedLine, decimal.Decimal, error) {
	lines := make([]PricedLine, 0, len(c.lines))
	total := decimal.Zero
	for _, line := range c.lines {
		item, err := catalog.Get(line.ItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, PricedLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return lines, total, nil
}

// Total is Price without the line breakdown.
func (c *Cart) Total(catalog PriceLookup) (decimal.Decimal, error) {
	_, total, err := c.Price(catalog)
	return total, err
}
