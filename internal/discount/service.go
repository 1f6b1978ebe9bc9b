// internal/discount/service.go
package discount

import "context"

// Service defines the interface for the discount data source.
type Service interface {
	// ActiveDiscounts returns the discounts currently offered, without the
	// synthetic None/Other variants.
	ActiveDiscounts(ctx context.Context) ([]Discount, error)
}
