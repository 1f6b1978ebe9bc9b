// internal/cart/service.go
package cart

import (
	"errors"

	"brewpos/internal/catalog"
)

// ErrInvalidQuantity is returned when an add is attempted with a quantity
// below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Cart defines the contract for the in-memory order being built. State lives
// only for the duration of one login session.
type Cart interface {
	// AddItem adds quantity of an item. If an entry for the item ID already
	// exists its quantity is increased; a cart never holds two entries for
	// the same item.
	AddItem(item catalog.Item, quantity int) error

	// RemoveItem removes the entry for the given item ID. Removing an
	// absent item is a no-op.
	RemoveItem(itemID int)

	// Clear empties the cart.
	Clear()

	// Items returns a snapshot of the cart contents. Mutating the returned
	// slice does not affect the cart.
	Items() []CartItem
}
