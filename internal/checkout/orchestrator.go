// internal/checkout/orchestrator.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"brewpos/internal/auth"
	"brewpos/internal/cart"
	"brewpos/internal/catalog"
	"brewpos/internal/discount"
	"brewpos/internal/order"
	"brewpos/internal/receipt"
)

// etransferReference is the static payee shown to the customer for
// e-transfer payments.
const etransferReference = "pay@oopcaffee.example"

// Orchestrator drives a single checkout attempt through its states. All
// commands are serialized under one mutex; the card charge is the only
// asynchronous step and re-enters under the same lock when it completes.
type Orchestrator struct {
	mu    sync.Mutex
	state State

	cart          cart.Cart
	catalog       catalog.Catalog
	receipts      receipt.Store
	builder       *receipt.Builder
	gateway       PaymentGateway
	chargeTimeout time.Duration

	events    chan Event
	tracer    trace.Tracer
	completed metric.Int64Counter
	failed    metric.Int64Counter

	// attempt-scoped fields, reset when the attempt ends
	attemptID    uuid.UUID
	session      *auth.Session
	customerName string
	method       PaymentMethod

	// operator selections that survive a failed attempt
	selected     *discount.Discount
	override     string
	overridePct  bool
	observations string
}

func NewOrchestrator(c cart.Cart, cat catalog.Catalog, receipts receipt.Store, builder *receipt.Builder, gateway PaymentGateway, chargeTimeout time.Duration) *Orchestrator {
	meter := otel.Meter("brewpos/checkout")
	completed, _ := meter.Int64Counter("checkout.completed")
	failed, _ := meter.Int64Counter("checkout.failed")
	return &Orchestrator{
		state:         StateIdle,
		cart:          c,
		catalog:       cat,
		receipts:      receipts,
		builder:       builder,
		gateway:       gateway,
		chargeTimeout: chargeTimeout,
		events:        make(chan Event, 32),
		tracer:        otel.Tracer("brewpos/checkout"),
		completed:     completed,
		failed:        failed,
	}
}

// Events is the stream of notifications for the presentation layer.
// Events are dropped, not blocked on, when the consumer lags.
func (o *Orchestrator) Events() <-chan Event {
	return o.events
}

// State returns the current checkout state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Totals computes subtotal, discount, tax and total for the cart as it
// stands right now, with the currently selected discount applied.
func (o *Orchestrator) Totals() Totals {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.totalsLocked()
}

func (o *Orchestrator) totalsLocked() Totals {
	subtotal := order.Subtotal(o.cart.Items())
	value := discount.Resolve(subtotal, o.selected, o.override, o.overridePct)
	return Totals{
		Subtotal:      subtotal,
		DiscountValue: value,
		Tax:           order.Tax(subtotal - value),
		Total:         order.FinalTotal(subtotal, value),
	}
}

// SetDiscount records the discount selection. It may be changed at any
// point before finalization; totals pick it up immediately.
func (o *Orchestrator) SetDiscount(selected *discount.Discount, override string, overrideIsPercentage bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selected = selected
	o.override = override
	o.overridePct = overrideIsPercentage
}

// SetObservations records free-form order notes for the receipt.
func (o *Orchestrator) SetObservations(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observations = text
}

// Start begins a new checkout attempt for the given session.
func (o *Orchestrator) Start(ctx context.Context, sess *auth.Session) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle {
		return ErrInvalidState
	}
	if len(o.cart.Items()) == 0 {
		return ErrEmptyCart
	}
	o.attemptID = uuid.New()
	o.session = sess
	o.setStateLocked(StateCollectingCustomerName)
	return nil
}

// SubmitCustomerName records the customer name and advances to payment
// method selection.
func (o *Orchestrator) SubmitCustomerName(ctx context.Context, name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateCollectingCustomerName {
		return ErrInvalidState
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankCustomerName
	}
	o.customerName = name
	o.setStateLocked(StateCollectingPaymentMethod)
	return nil
}

// SelectPaymentMethod routes the attempt into the chosen tender flow.
// Cash waits for the tendered amount. E-transfer finalizes immediately
// after announcing the payment reference. Cards charge asynchronously.
func (o *Orchestrator) SelectPaymentMethod(ctx context.Context, m PaymentMethod) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateCollectingPaymentMethod {
		return ErrInvalidState
	}
	o.method = m
	switch {
	case m == MethodCash:
		o.setStateLocked(StateProcessingCash)
		return nil
	case m == MethodETransfer:
		o.setStateLocked(StateProcessingETransfer)
		o.emit(Event{Type: EventPaymentReference, Message: etransferReference})
		return o.finalizeLocked(ctx, 0, 0)
	case m.IsCard():
		o.setStateLocked(StateProcessingCard)
		go o.processCard(m, o.attemptID)
		return nil
	}
	return fmt.Errorf("unknown payment method %q", m)
}

// processCard charges the gateway outside the lock, then re-enters to
// finalize or fail the attempt. The attempt ID guards against acting on
// a stale completion.
func (o *Orchestrator) processCard(m PaymentMethod, attemptID uuid.UUID) {
	chargeCtx, cancel := context.WithTimeout(context.Background(), o.chargeTimeout)
	defer cancel()

	o.mu.Lock()
	amount := o.totalsLocked().Total
	o.mu.Unlock()

	err := o.gateway.Charge(chargeCtx, attemptID, amount, m)

	// The charge may have consumed most of its deadline; finalization
	// of an approved payment runs on its own context.
	ctx := context.Background()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateProcessingCard || o.attemptID != attemptID {
		return
	}
	if err != nil {
		o.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "gateway")))
		o.emit(Event{Type: EventPaymentFailed, Message: fmt.Sprintf("card payment failed: %v", err)})
		o.resetAttemptLocked()
		return
	}
	_ = o.finalizeLocked(ctx, 0, 0)
}

// SubmitCashTendered validates the tendered amount and finalizes the
// attempt. An insufficient amount keeps the cash step open for retry.
func (o *Orchestrator) SubmitCashTendered(ctx context.Context, tendered int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateProcessingCash {
		return ErrInvalidState
	}
	total := o.totalsLocked().Total
	if tendered < total {
		return ErrInsufficientTender
	}
	return o.finalizeLocked(ctx, tendered, tendered-total)
}

// Cancel abandons the current attempt without side effects. The cart and
// discount selection are untouched. A card charge in flight cannot be
// cancelled.
func (o *Orchestrator) Cancel() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch o.state {
	case StateIdle:
		return nil
	case StateProcessingCard:
		return ErrPaymentInProgress
	case StateFinalizing:
		return ErrInvalidState
	}
	o.resetAttemptLocked()
	return nil
}

// finalizeLocked recomputes totals from the live cart, builds the
// receipt and runs the two persistence steps. The receipt save and the
// inventory decrements are independent; each is attempted regardless of
// the other's outcome and failures are joined.
func (o *Orchestrator) finalizeLocked(ctx context.Context, tendered, change int) error {
	o.setStateLocked(StateFinalizing)

	ctx, span := o.tracer.Start(ctx, "checkout.finalize",
		trace.WithAttributes(
			attribute.String("attempt.id", o.attemptID.String()),
			attribute.String("payment.method", string(o.method)),
		))
	defer span.End()

	items := o.cart.Items()
	subtotal := order.Subtotal(items)
	value := discount.Resolve(subtotal, o.selected, o.override, o.overridePct)
	total := order.FinalTotal(subtotal, value)
	span.SetAttributes(attribute.Int("order.total", total))

	content := o.builder.Build(receipt.Order{
		CustomerName:   o.customerName,
		EmployeeName:   o.session.EmployeeName,
		Items:          items,
		Discount:       o.selected,
		DiscountValue:  value,
		Observations:   o.observations,
		PaymentMethod:  string(o.method),
		AmountTendered: tendered,
		Change:         change,
	})

	var errs []error
	if err := o.receipts.Save(ctx, o.customerName, o.session, content); err != nil {
		errs = append(errs, fmt.Errorf("save receipt: %w", err))
	}
	for _, line := range items {
		if err := o.catalog.DecrementInventory(ctx, line.Item.ID, line.Quantity); err != nil {
			errs = append(errs, fmt.Errorf("decrement inventory for %q: %w", line.Item.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		o.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "finalize")))
		o.emit(Event{Type: EventCheckoutFailed, Message: err.Error()})
		o.resetAttemptLocked()
		return err
	}

	o.completed.Add(ctx, 1, metric.WithAttributes(attribute.String("payment.method", string(o.method))))
	o.emit(Event{Type: EventCheckoutCompleted, Total: total, Change: change, Receipt: string(content)})
	o.cart.Clear()
	o.selected = nil
	o.override = ""
	o.overridePct = false
	o.observations = ""
	o.resetAttemptLocked()
	return nil
}

// resetAttemptLocked clears attempt-scoped fields and returns to idle.
// The cart and operator selections are left alone so a failed attempt
// can be retried.
func (o *Orchestrator) resetAttemptLocked() {
	o.customerName = ""
	o.method = ""
	o.session = nil
	o.setStateLocked(StateIdle)
	o.attemptID = uuid.Nil
}

func (o *Orchestrator) setStateLocked(s State) {
	o.state = s
	o.emit(Event{Type: EventStateChanged})
}

func (o *Orchestrator) emit(e Event) {
	e.State = o.state
	e.AttemptID = o.attemptID
	select {
	case o.events <- e:
	default:
	}
}
