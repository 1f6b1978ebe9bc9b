// internal/checkout/errors.go
package checkout

import "errors"

var (
	// ErrEmptyCart rejects starting a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrBlankCustomerName rejects an empty or whitespace-only name.
	ErrBlankCustomerName = errors.New("customer name cannot be blank")

	// ErrInsufficientTender rejects cash below the order total. The
	// checkout stays in the cash step so the operator can re-enter.
	ErrInsufficientTender = errors.New("amount tendered is less than the total due")

	// ErrInvalidState rejects a command that the current checkout state
	// does not accept.
	ErrInvalidState = errors.New("operation not allowed in the current checkout state")

	// ErrPaymentInProgress rejects cancellation while a card charge is
	// in flight with the gateway.
	ErrPaymentInProgress = errors.New("card payment in progress, cannot cancel")
)

// IsValidation reports whether err is an operator input problem rather
// than a system failure. Validation errors never abort the attempt.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrBlankCustomerName) ||
		errors.Is(err, ErrInsufficientTender) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrPaymentInProgress)
}
