// internal/cart/implementation.go
package cart

import (
	"sync"

	"brewpos/internal/catalog"
)

// memoryCart implements Cart. The kiosk has a single operator, but handlers
// run on the server's goroutines, so access is mutex-guarded.
type memoryCart struct {
	mu    sync.Mutex
	items []CartItem
}

// New creates an empty cart.
func New() Cart {
	return &memoryCart{}
}

func (c *memoryCart) AddItem(item catalog.Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Item.ID == item.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, CartItem{Item: item, Quantity: quantity})
	return nil
}

func (c *memoryCart) RemoveItem(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *memoryCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *memoryCart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.items...)
}
