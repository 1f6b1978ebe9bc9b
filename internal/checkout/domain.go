// internal/checkout/domain.go
package checkout

import (
	"fmt"

	"github.com/google/uuid"
)

// State is a step of the checkout flow.
type State string

const (
	StateIdle                    State = "IDLE"
	StateCollectingCustomerName  State = "COLLECTING_CUSTOMER_NAME"
	StateCollectingPaymentMethod State = "COLLECTING_PAYMENT_METHOD"
	StateProcessingCash          State = "PROCESSING_CASH"
	StateProcessingCard          State = "PROCESSING_CARD"
	StateProcessingETransfer     State = "PROCESSING_ETRANSFER"
	StateFinalizing              State = "FINALIZING"
)

// PaymentMethod is one of the tender types the kiosk accepts.
type PaymentMethod string

const (
	MethodCash       PaymentMethod = "Cash"
	MethodCreditCard PaymentMethod = "Credit Card"
	MethodDebitCard  PaymentMethod = "Debit Card"
	MethodETransfer  PaymentMethod = "E-transfer"
)

// IsCard reports whether the method settles through the card gateway.
func (m PaymentMethod) IsCard() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

// ParsePaymentMethod validates an operator-supplied method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodETransfer:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Totals is the live calculation for the cart as it stands right now.
type Totals struct {
	Subtotal      int `json:"subtotal"`
	DiscountValue int `json:"discountValue"`
	Tax           int `json:"tax"`
	Total         int `json:"total"`
}

// EventType classifies the events the orchestrator emits for the
// presentation layer.
type EventType string

const (
	EventStateChanged      EventType = "state_changed"
	EventPaymentReference  EventType = "payment_reference"
	EventPaymentFailed     EventType = "payment_failed"
	EventCheckoutFailed    EventType = "checkout_failed"
	EventCheckoutCompleted EventType = "checkout_completed"
)

// Event is a state-change notification for the presentation layer.
type Event struct {
	Type      EventType `json:"type"`
	State     State     `json:"state"`
	AttemptID uuid.UUID `json:"attemptId"`
	Message   string    `json:"message,omitempty"`
	Total     int       `json:"total,omitempty"`
	Change    int       `json:"change,omitempty"`
	Receipt   string    `json:"receipt,omitempty"`
}
