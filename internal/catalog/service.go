// internal/catalog/service.go
package catalog

import (
	"context"
	"errors"
)

var (
	// ErrItemNotFound is returned when a menu item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrInsufficientStock is returned when an inventory decrement would
	// take the count below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Catalog defines the interface for the menu data source.
type Catalog interface {
	ItemsByCategory(ctx context.Context, categoryID int) ([]Item, error)
	ItemByID(ctx context.Context, id int) (*Item, error)
	// DecrementInventory subtracts quantity from the item's inventory.
	// It rejects decrements that would take the count below zero with
	// ErrInsufficientStock.
	DecrementInventory(ctx context.Context, itemID, quantity int) error
}

// Categories defines the interface for the category list data source.
type Categories interface {
	All(ctx context.Context) ([]Category, error)
}
