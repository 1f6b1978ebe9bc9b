// internal/receipt/builder.go
package receipt

import (
	"fmt"
	"strings"
	"time"

	"brewpos/internal/cart"
	"brewpos/internal/discount"
	"brewpos/internal/money"
	"brewpos/internal/order"
)

const rule = "----------------------------------------------------\n"

// Order carries everything the builder needs to render one receipt.
type Order struct {
	CustomerName   string
	EmployeeName   string
	Items          []cart.CartItem
	Discount       *discount.Discount
	DiscountValue  int
	Observations   string
	PaymentMethod  string
	AmountTendered int
	Change         int
}

// Builder renders the fixed-width textual receipt. The layout matches the
// receipts already in the store, so it must not change shape.
type Builder struct {
	ShopName string

	// Now stamps the receipt header; overridable in tests.
	Now func() time.Time
}

// NewBuilder creates a receipt builder for the given shop name.
func NewBuilder(shopName string) *Builder {
	return &Builder{ShopName: shopName, Now: time.Now}
}

// Build renders the receipt content. It recomputes tax and total from the
// order package so the printed figures always agree with what was charged.
func (b *Builder) Build(o Order) []byte {
	subtotal := order.Subtotal(o.Items)
	afterDiscount := subtotal - o.DiscountValue
	tax := order.Tax(afterDiscount)
	total := afterDiscount + tax

	var r strings.Builder
	fmt.Fprintf(&r, "\t%s\n", b.ShopName)
	r.WriteString(rule)
	fmt.Fprintf(&r, "%-25s %s\n", "Date:", b.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&r, "%-25s %s\n", "Served by:", o.EmployeeName)
	fmt.Fprintf(&r, "%-25s %s\n", "Customer:", o.CustomerName)
	r.WriteString(rule)

	for _, ci := range o.Items {
		line := fmt.Sprintf("%d x %s", ci.Quantity, ci.Item.Name)
		fmt.Fprintf(&r, "%-38s %12s\n", line, money.FormatCents(ci.Item.Price*ci.Quantity))
	}

	r.WriteString(rule)
	fmt.Fprintf(&r, "%-38s %12s\n", "Subtotal:", money.FormatCents(subtotal))

	if o.DiscountValue > 0 {
		label := "Discount:"
		if o.Discount != nil && !o.Discount.IsOther() && o.Discount.Name != "" {
			label = fmt.Sprintf("Discount (%s):", o.Discount.Name)
		}
		fmt.Fprintf(&r, "%-38s %12s\n", label, "-"+money.FormatCents(o.DiscountValue))
	}

	fmt.Fprintf(&r, "%-38s %12s\n", fmt.Sprintf("Tax (%d%%):", order.TaxRatePercent), money.FormatCents(tax))
	fmt.Fprintf(&r, "%-38s %12s\n", "TOTAL:", money.FormatCents(total))
	r.WriteString(rule)

	if strings.TrimSpace(o.Observations) != "" {
		fmt.Fprintf(&r, "Observations: %s\n", o.Observations)
		r.WriteString(rule)
	}

	fmt.Fprintf(&r, "%-25s %s\n", "Payment Method:", o.PaymentMethod)
	if o.PaymentMethod == "Cash" {
		fmt.Fprintf(&r, "%-38s %12s\n", "Amount Tendered:", money.FormatCents(o.AmountTendered))
		fmt.Fprintf(&r, "%-38s %12s\n", "Change:", money.FormatCents(o.Change))
	}
	r.WriteString("\n\tThank you for your visit!\n")

	return []byte(r.String())
}
