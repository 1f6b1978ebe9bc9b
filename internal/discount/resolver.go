// internal/discount/resolver.go
package discount

import (
	"strconv"
	"strings"
)

// Resolve computes the discount value in cents for the given subtotal.
//
// A nil selection or the None variant yields zero. The Other variant reads
// the free-form override: an unparseable override silently yields zero so a
// typo never blocks checkout. Percentage amounts are floored; the result is
// always clamped to [0, subtotal] so a discount can neither be negative nor
// exceed the subtotal.
func Resolve(subtotal int, selected *Discount, override string, overrideIsPercentage bool) int {
	if selected == nil || selected.IsNone() {
		return 0
	}

	value := 0
	if selected.IsOther() {
		override = strings.TrimSpace(override)
		if override != "" {
			amount, err := strconv.Atoi(override)
			if err == nil {
				if overrideIsPercentage {
					value = subtotal * amount / 100
				} else {
					value = amount
				}
			}
		}
	} else {
		if selected.IsPercentage {
			value = subtotal * selected.Amount / 100
		} else {
			value = selected.Amount
		}
	}

	if value < 0 {
		value = 0
	}
	if value > subtotal {
		value = subtotal
	}
	return value
}
