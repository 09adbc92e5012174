package gateway

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"earnplay/internal/domain"
)

func payout() Payout {
	return Payout{Reference: "ref-1", Method: domain.MethodPayPal, Amount: decimal.NewFromInt(2), Details: "me@example.com"}
}

func TestSimulatorAcceptsAfterDelay(t *testing.T) {
	sim := NewSimulatorWithRand(SimulatorConfig{Delay: 20 * time.Millisecond}, rand.New(rand.NewPCG(1, 2)))

	start := time.Now()
	rec, err := sim.Submit(context.Background(), payout())
	require.NoError(t, err)
	require.Equal(t, "ref-1", rec.Reference)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSimulatorFailureInjection(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	_, err := NewSimulatorWithRand(SimulatorConfig{FailureRate: 1}, rng).Submit(context.Background(), payout())
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = NewSimulatorWithRand(SimulatorConfig{DeclineRate: 1}, rng).Submit(context.Background(), payout())
	require.ErrorIs(t, err, ErrDeclined)
}

func TestSimulatorStopsOnContext(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{Delay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.Submit(ctx, payout())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

type gatewayFunc func(ctx context.Context, p Payout) (Receipt, error)

func (f gatewayFunc) Submit(ctx context.Context, p Payout) (Receipt, error) { return f(ctx, p) }

func fastRetry(tries uint) RetryConfig {
	return RetryConfig{MaxTries: tries, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryingRecoversFromTransientFailure(t *testing.T) {
	var calls atomic.Int32
	next := gatewayFunc(func(ctx context.Context, p Payout) (Receipt, error) {
		if calls.Add(1) < 3 {
			return Receipt{}, ErrUnavailable
		}
		return Receipt{Reference: p.Reference}, nil
	})

	rec, err := NewRetrying(next, fastRetry(3)).Submit(context.Background(), payout())
	require.NoError(t, err)
	require.Equal(t, "ref-1", rec.Reference)
	require.Equal(t, int32(3), calls.Load())
}

func TestRetryingGivesUp(t *testing.T) {
	var calls atomic.Int32
	next := gatewayFunc(func(ctx context.Context, p Payout) (Receipt, error) {
		calls.Add(1)
		return Receipt{}, ErrUnavailable
	})

	_, err := NewRetrying(next, fastRetry(2)).Submit(context.Background(), payout())
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, int32(2), calls.Load())
}

func TestRetryingDoesNotRetryDecline(t *testing.T) {
	var calls atomic.Int32
	next := gatewayFunc(func(ctx context.Context, p Payout) (Receipt, error) {
		calls.Add(1)
		return Receipt{}, ErrDeclined
	})

	_, err := NewRetrying(next, fastRetry(5)).Submit(context.Background(), payout())
	require.ErrorIs(t, err, ErrDeclined)
	require.Equal(t, int32(1), calls.Load())
}

func TestRetryingAttemptTimeout(t *testing.T) {
	var calls atomic.Int32
	next := gatewayFunc(func(ctx context.Context, p Payout) (Receipt, error) {
		if calls.Add(1) == 1 {
			<-ctx.Done()
			return Receipt{}, ctx.Err()
		}
		return Receipt{Reference: p.Reference}, nil
	})

	cfg := fastRetry(2)
	cfg.AttemptTimeout = 10 * time.Millisecond
	rec, err := NewRetrying(next, cfg).Submit(context.Background(), payout())
	require.NoError(t, err)
	require.Equal(t, "ref-1", rec.Reference)
	require.Equal(t, int32(2), calls.Load())
}

func TestRetryingWithoutAttemptTimeoutWaitsForSlowGateway(t *testing.T) {
	sim := NewSimulator(SimulatorConfig{Delay: 30 * time.Millisecond})
	cfg := fastRetry(1)
	cfg.AttemptTimeout = 0

	start := time.Now()
	rec, err := NewRetrying(sim, cfg).Submit(context.Background(), payout())
	require.NoError(t, err)
	require.Equal(t, "ref-1", rec.Reference)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetryingPassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	next := gatewayFunc(func(ctx context.Context, p Payout) (Receipt, error) {
		return Receipt{}, boom
	})

	_, err := NewRetrying(next, fastRetry(1)).Submit(context.Background(), payout())
	require.ErrorIs(t, err, boom)
}
