// internal/checkout/gateway.go
package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// PaymentGateway is the boundary to the external card acquirer.
type PaymentGateway interface {
	Charge(ctx context.Context, attemptID uuid.UUID, amount int, method PaymentMethod) error
}

// SimulatedGateway stands in for a real acquirer. It waits its configured
// latency and then approves every charge.
type SimulatedGateway struct {
	Latency time.Duration
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ uuid.UUID, _ int, _ PaymentMethod) error {
	timer := time.NewTimer(g.Latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BreakerGateway wraps another gateway behind a circuit breaker so a
// failing acquirer fails fast instead of stalling every checkout.
type BreakerGateway struct {
	inner   PaymentGateway
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerGateway(inner PaymentGateway) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerGateway{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

func (g *BreakerGateway) Charge(ctx context.Context, attemptID uuid.UUID, amount int, method PaymentMethod) error {
	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, g.inner.Charge(ctx, attemptID, amount, method)
	})
	return err
}
