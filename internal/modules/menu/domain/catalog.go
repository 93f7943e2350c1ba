package domain

import (
	"fmt"
	"sync"
)

// Catalog is the live, ordered list of menu items. Readers always see whole items;
// Upsert replaces an item atomically and keeps its position.
type Catalog struct {
	mu    sync.RWMutex
	items []MenuItem
	index map[int]int
}

// NewCatalog builds a catalog preserving the order of items.
func NewCatalog(items []MenuItem) (*Catalog, error) {
	c := &Catalog{index: make(map[int]int, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidItem, item.ID)
		}
		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item.clone())
	}
	return c, nil
}

// List returns every item in catalog order.
func (c *Catalog) List() []MenuItem {
	return c.Filter(CategoryAll)
}

// Filter returns the items of category, or every item for CategoryAll.
func (c *Catalog) Filter(category Category) []MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]MenuItem, 0, len(c.items))
	for _, item := range c.items {
		if category == CategoryAll || item.Category == category {
			out = append(out, item.clone())
		}
	}
	return out
}

func (c *Catalog) Get(id int) (MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pos, ok := c.index[id]
	if !ok {
		return MenuItem{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return c.items[pos].clone(), nil
}

// Upsert replaces the item with the same id or appends a new one. It reports
// whether the item was newly added.
func (c *Catalog) Upsert(item MenuItem) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if pos, ok := c.index[item.ID]; ok {
		c.items[pos] = item.clone()
		return false, nil
	}
	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item.clone())
	return true, nil
}

// Featured returns the dishes highlighted on the home page.
func (c *Catalog) Featured() []MenuItem {
	out := make([]MenuItem, 0, len(featuredIDs))
	for _, id := range featuredIDs {
		if item, err := c.Get(id); err == nil {
			out = append(out, item)
		}
	}
	return out
}
