// internal/catalog/domain.go
package catalog

// Item represents a menu item available for sale. Prices are integer cents
// to avoid floating-point rounding drift.
type Item struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Inventory  int    `json:"inventory"`
	CategoryID int    `json:"categoryId"`
}

// Category represents a product category, e.g. "Hot Drinks" or "Pastries".
type Category struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}
