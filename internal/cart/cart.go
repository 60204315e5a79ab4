package cart

import (
	"sync"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
)

// Cart holds one shopper's in-progress selection. Items keep insertion order
// for display; entries are keyed by product id (no two rows share an id).
// Totals are folded from the item slice on every read, never cached.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. If a row with the same id already exists its
// quantity is incremented (repeated adds accumulate, they never duplicate
// rows); otherwise the item is appended. A quantity below 1 is clamped to 1.
func (c *Cart) Add(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity sets an item's quantity directly, clamped to a minimum of 1.
// Removal is a distinct explicit action; this path never drops a row.
// Returns false if no item with the given id is in the cart.
func (c *Cart) UpdateQuantity(id string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally. Called after a successful order
// placement, or by the shopper.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current rows in insertion order. Mutating the
// returned slice does not touch the cart.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no rows.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// ItemCount is the sum of all row quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice is the sum of unit price x quantity over all rows.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
