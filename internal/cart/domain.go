// internal/cart/domain.go
package cart

import "brewpos/internal/catalog"

// CartItem pairs a menu item with the quantity the operator is selling.
type CartItem struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}
