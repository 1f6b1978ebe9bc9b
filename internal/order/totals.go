// internal/order/totals.go
package order

import (
	"fmt"

	"brewpos/internal/cart"
)

// TaxRatePercent is the fixed sales tax rate applied to the post-discount
// subtotal.
const TaxRatePercent = 7

// Subtotal sums unit price times quantity over all cart entries, in cents.
func Subtotal(items []cart.CartItem) int {
	subtotal := 0
	for _, ci := range items {
		subtotal += ci.Item.Price * ci.Quantity
	}
	return subtotal
}

// Tax computes the tax on a post-discount subtotal, rounding half-up to the
// nearest cent. Half-up is applied uniformly everywhere a tax amount is
// shown or charged.
func Tax(subtotalAfterDiscount int) int {
	if subtotalAfterDiscount < 0 {
		panic(fmt.Sprintf("order: negative subtotal %d", subtotalAfterDiscount))
	}
	return (subtotalAfterDiscount*TaxRatePercent + 50) / 100
}

// FinalTotal applies the discount to the subtotal, then adds tax on the
// discounted amount. The discount is always applied before tax.
func FinalTotal(subtotal, discountValue int) int {
	if subtotal < 0 || discountValue < 0 {
		panic(fmt.Sprintf("order: negative input subtotal=%d discount=%d", subtotal, discountValue))
	}
	afterDiscount := subtotal - discountValue
	return afterDiscount + Tax(afterDiscount)
}
