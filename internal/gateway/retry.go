package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
)

// RetryConfig is the timeout and retry policy applied around a Gateway.
type RetryConfig struct {
	AttemptTimeout  time.Duration // Deadline of one Submit call, 0 disables it
	MaxTries        uint          // Total attempts, including the first
	InitialInterval time.Duration // First backoff interval
	MaxInterval     time.Duration // Backoff cap
}

// DefaultRetryConfig returns the policy used by the server.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		AttemptTimeout:  5 * time.Second,
		MaxTries:        3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Retrying retries transient failures of the wrapped gateway with
// exponential backoff. Declines are returned immediately.
type Retrying struct {
	next Gateway
	cfg  RetryConfig
}

// NewRetrying wraps next with the given policy.
func NewRetrying(next Gateway, cfg RetryConfig) *Retrying {
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 1
	}
	return &Retrying{next: next, cfg: cfg}
}

// Submit implements Gateway.
func (r *Retrying) Submit(ctx context.Context, p Payout) (Receipt, error) {
	attempt := 0
	op := func() (Receipt, error) {
		attempt++
		actx, cancel := r.attemptContext(ctx)
		defer cancel()
		rec, err := r.next.Submit(actx, p)
		if err == nil {
			return rec, nil
		}
		if errors.Is(err, ErrDeclined) {
			return Receipt{}, backoff.Permanent(err)
		}
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			// The attempt timed out while the caller is still waiting.
			return Receipt{}, ErrUnavailable
		}
		return Receipt{}, err
	}

	eb := backoff.NewExponentialBackOff()
	if r.cfg.InitialInterval > 0 {
		eb.InitialInterval = r.cfg.InitialInterval
	}
	if r.cfg.MaxInterval > 0 {
		eb.MaxInterval = r.cfg.MaxInterval
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(r.cfg.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			logrus.WithFields(logrus.Fields{
				"reference": p.Reference,
				"attempt":   attempt,
				"retry_in":  next.String(),
				"error":     err.Error(),
			}).Warn("Payout attempt failed")
		}),
	)
}

func (r *Retrying) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.AttemptTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.AttemptTimeout)
}
