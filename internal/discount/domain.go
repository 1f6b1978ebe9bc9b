// internal/discount/domain.go
package discount

import "strings"

// Discount represents a reduction that can be applied to an order, either a
// fixed cent amount or a percentage of the subtotal.
type Discount struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Amount       int    `json:"amount"`
	IsPercentage bool   `json:"isPercentage"`
	IsActive     bool   `json:"isActive"`
}

// None and Other are synthetic selections offered alongside the stored
// discounts. They exist only at the orchestration boundary and are never
// persisted.
var (
	// None means no discount is applied.
	None = Discount{ID: 0, Name: "None", IsActive: true}
	// Other means the amount comes from free-form operator input rather
	// than the record itself.
	Other = Discount{ID: -1, Name: "Other", IsActive: true}
)

// IsNone reports whether the selection means "no discount".
func (d Discount) IsNone() bool {
	return d.Name == "" || strings.EqualFold(d.Name, "None")
}

// IsOther reports whether the selection is the free-form variant.
func (d Discount) IsOther() bool {
	return strings.EqualFold(d.Name, "Other")
}
