// Package gateway submits withdrawal payouts to a payment processor.
//
// No real processor is integrated. Simulator stands in for one with a fixed
// round trip and optional failure injection, and Retrying adds the timeout
// and retry policy a real integration needs.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"earnplay/internal/domain"
)

var (
	// ErrUnavailable is a transient failure; the payout may be retried.
	ErrUnavailable = errors.New("payment gateway unavailable")
	// ErrDeclined is a permanent refusal of the payout.
	ErrDeclined = errors.New("payout declined")
)

// Payout is a request to pay Amount currency units to a destination.
type Payout struct {
	Reference string
	Method    domain.PaymentMethodType
	Amount    decimal.Decimal
	Details   string
}

// Receipt confirms the gateway accepted a payout.
type Receipt struct {
	Reference  string
	AcceptedAt time.Time
}

// Gateway accepts payouts.
type Gateway interface {
	Submit(ctx context.Context, p Payout) (Receipt, error)
}
